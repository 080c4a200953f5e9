package lsp

import (
	"go.lsp.dev/protocol"

	jerrors "github.com/tangzhangming/javamin/internal/errors"
	"github.com/tangzhangming/javamin/internal/unparse"
)

// diagnosticSource 诊断来源
const diagnosticSource = "javamin"

// getDiagnostics 获取文档的诊断信息
//
// 语法错误报告为 Error；能解析但含有不支持结构的文档报告为 Warning，
// 这类文档无法格式化。
func (s *Server) getDiagnostics(doc *Document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	if len(doc.ParseErrs) > 0 {
		for _, d := range jerrors.FromParseErrors(doc.ParseErrs, doc.Filename()) {
			diagnostics = append(diagnostics, toProtocol(d, protocol.DiagnosticSeverityError))
		}
		return diagnostics
	}

	if doc.Unit == nil {
		return diagnostics
	}
	if _, err := unparse.Minimal(doc.Unit); err != nil {
		for _, d := range jerrors.FromError(err, doc.Filename()) {
			diagnostics = append(diagnostics, toProtocol(d, protocol.DiagnosticSeverityWarning))
		}
	}

	return diagnostics
}

// toProtocol 把诊断转换成 LSP 格式，LSP 行列从 0 开始
func toProtocol(d *jerrors.Diagnostic, severity protocol.DiagnosticSeverity) protocol.Diagnostic {
	var start protocol.Position
	if d.Line > 0 {
		start.Line = uint32(d.Line - 1)
	}
	if d.Column > 0 {
		start.Character = uint32(d.Column - 1)
	}
	end := start
	if d.EndColumn > d.Column {
		end.Character = uint32(d.EndColumn - 1)
	} else {
		end.Character++
	}

	message := d.Message
	for _, hint := range d.Hints {
		message += "\nhelp: " + hint
	}

	return protocol.Diagnostic{
		Range:    protocol.Range{Start: start, End: end},
		Severity: severity,
		Code:     d.Code,
		Source:   diagnosticSource,
		Message:  message,
	}
}
