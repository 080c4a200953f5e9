package errors

import (
	stderrors "errors"

	"github.com/tangzhangming/javamin/internal/formatter"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/parser"
	"github.com/tangzhangming/javamin/internal/token"
	"github.com/tangzhangming/javamin/internal/unparse"
)

// FromError 把格式化流程返回的错误转换成诊断
//
// 语法错误每条对应一个诊断；反解析错误附带"没有输出"的说明。
// 其他错误（例如文件读写失败）转换成没有位置的 E0001。
func FromError(err error, file string) []*Diagnostic {
	if err == nil {
		return nil
	}

	var pe *formatter.ParseError
	if stderrors.As(err, &pe) {
		if pe.Filename != "" {
			file = pe.Filename
		}
		return FromParseErrors(pe.Errors, file)
	}

	var ue *unparse.UnsupportedError
	if stderrors.As(err, &ue) {
		d := newDiagnostic(U0001, Describe(U0001)+": "+ue.Construct, file, ue.Pos)
		d.Hints = hintsForConstruct(ue.Construct)
		d.Notes = []string{i18n.T(i18n.DiagNoteAllOrNothing)}
		return []*Diagnostic{d}
	}

	var ce *unparse.ContractError
	if stderrors.As(err, &ce) {
		d := newDiagnostic(U0002, Describe(U0002)+": "+ce.Message, file, ce.Pos)
		d.Hints = hintsForCode(U0002)
		d.Notes = []string{i18n.T(i18n.DiagNoteAllOrNothing)}
		return []*Diagnostic{d}
	}

	return []*Diagnostic{{Code: E0001, Level: LevelError, Message: err.Error(), File: file}}
}

// FromParseErrors 把语法错误逐条转换成诊断，错误码从消息推断
func FromParseErrors(errs []parser.Error, file string) []*Diagnostic {
	diags := make([]*Diagnostic, 0, len(errs))
	for _, e := range errs {
		code := inferCode(e.Message)
		d := newDiagnostic(code, e.Message, file, e.Pos)
		d.Hints = hintsForCode(code)
		diags = append(diags, d)
	}
	return diags
}

func newDiagnostic(code, message, file string, pos token.Position) *Diagnostic {
	d := &Diagnostic{Code: code, Level: LevelError, Message: message, File: file}
	if pos.IsValid() {
		d.Line = pos.Line
		d.Column = pos.Column
		if pos.Filename != "" {
			d.File = pos.Filename
		}
	}
	return d
}
