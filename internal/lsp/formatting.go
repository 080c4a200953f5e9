package lsp

import (
	"strings"

	"go.lsp.dev/protocol"

	"github.com/tangzhangming/javamin/internal/formatter"
)

// MinifyParams javamin/minify 请求参数
type MinifyParams struct {
	TextDocument protocol.TextDocumentIdentifier `json:"textDocument"`
}

// MinifyResult javamin/minify 请求结果
type MinifyResult struct {
	Text string `json:"text"`
}

// formattingOptions 把编辑器的格式化选项合并到服务器默认选项上
func (s *Server) formattingOptions(opts protocol.FormattingOptions) *formatter.Options {
	options := *s.options
	options.Mode = formatter.ModePretty

	if opts.TabSize > 0 {
		options.IndentSize = int(opts.TabSize)
	}
	if opts.InsertSpaces {
		options.IndentStyle = "spaces"
	} else {
		options.IndentStyle = "tabs"
	}
	return &options
}

// formatDocument 格式化整个文档，失败或没有变化时返回空编辑
func (s *Server) formatDocument(doc *Document, opts protocol.FormattingOptions) ([]protocol.TextEdit, error) {
	formatted, err := formatter.Format(doc.Content, doc.Filename(), s.formattingOptions(opts))
	if err != nil {
		return nil, err
	}

	if formatted == doc.Content {
		return []protocol.TextEdit{}, nil
	}

	edit := protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 0},
			End:   doc.EndPosition(),
		},
		NewText: formatted,
	}
	return []protocol.TextEdit{edit}, nil
}

// formatRange 格式化选中的整行
//
// 选区被扩展到整行；选区的缩进取第一行的前导空白。
func (s *Server) formatRange(doc *Document, rng protocol.Range, opts protocol.FormattingOptions) ([]protocol.TextEdit, error) {
	startLine := clamp(int(rng.Start.Line), 0, len(doc.Lines)-1)
	endLine := clamp(int(rng.End.Line), startLine, len(doc.Lines)-1)
	// 选区结束在行首时不包含该行
	if endLine > startLine && rng.End.Character == 0 {
		endLine--
	}

	selected := strings.Join(doc.Lines[startLine:endLine+1], "\n")
	if strings.TrimSpace(selected) == "" {
		return []protocol.TextEdit{}, nil
	}

	options := s.formattingOptions(opts)
	depth := indentDepth(doc.Lines[startLine], options)
	formatted, err := formatter.FormatPartial(selected, doc.Filename(), options, depth)
	if err != nil {
		return nil, err
	}
	formatted = strings.TrimSuffix(formatted, "\n")

	if formatted == selected {
		return []protocol.TextEdit{}, nil
	}

	edit := protocol.TextEdit{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(startLine), Character: 0},
			End:   protocol.Position{Line: uint32(endLine), Character: utf16Len(doc.Lines[endLine])},
		},
		NewText: formatted,
	}
	return []protocol.TextEdit{edit}, nil
}

// indentDepth 按缩进单位计算一行的缩进层级，Tab 算一级
func indentDepth(line string, options *formatter.Options) int {
	size := options.IndentSize
	if size <= 0 {
		size = 4
	}
	width := 0
	for _, c := range line {
		switch c {
		case '\t':
			width += size
		case ' ':
			width++
		default:
			return width / size
		}
	}
	return width / size
}

// minifyDocument 以最小模式输出文档
func (s *Server) minifyDocument(doc *Document) (*MinifyResult, error) {
	out, err := formatter.Minify(doc.Content, doc.Filename())
	if err != nil {
		return nil, err
	}
	return &MinifyResult{Text: out}, nil
}
