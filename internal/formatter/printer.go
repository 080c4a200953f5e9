package formatter

import (
	"strings"

	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/unparse"
)

// Printer 把语法树按选项打印成源码
type Printer struct {
	options *Options
	u       *unparse.Unparser
}

// NewPrinter 创建打印器，options 为 nil 时使用默认选项
func NewPrinter(options *Options) *Printer {
	if options == nil {
		options = DefaultOptions()
	}
	return &Printer{
		options: options,
		u:       unparse.New(options.Mode, unparse.WithIndent(options.IndentString())),
	}
}

// Print 打印语法树并返回代码
func (p *Printer) Print(node ast.Node) (string, error) {
	result, err := p.u.Unparse(node)
	if err != nil {
		return "", err
	}
	if p.options.Mode == ModeMinimal {
		return result, nil
	}

	// 移除行尾空格
	if p.options.RemoveTrailingSpace {
		lines := strings.Split(result, "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight(line, " \t")
		}
		result = strings.Join(lines, "\n")
	}

	// 确保文件末尾有换行符
	if p.options.EnsureNewlineAtEOF && result != "" && !strings.HasSuffix(result, "\n") {
		result += "\n"
	}
	if !p.options.EnsureNewlineAtEOF {
		result = strings.TrimRight(result, "\n")
	}

	return result, nil
}
