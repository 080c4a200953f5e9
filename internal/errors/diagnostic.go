package errors

import (
	"fmt"
	"strings"

	"github.com/tangzhangming/javamin/internal/i18n"
)

// ============================================================================
// 诊断
// ============================================================================

// Diagnostic 一条带位置的诊断信息
type Diagnostic struct {
	Code      string   // 错误码 (E0006、U0001)
	Level     Level    // 错误级别
	Message   string   // 主消息
	File      string   // 文件路径
	Line      int      // 行号（1-based，0 表示没有位置）
	Column    int      // 列号（1-based）
	EndColumn int      // 结束列
	Hints     []string // 修复建议
	Notes     []string // 附加说明
}

// Error 实现 error 接口
func (d *Diagnostic) Error() string {
	if d.Line == 0 {
		return fmt.Sprintf("%s: %s", d.File, d.Message)
	}
	return fmt.Sprintf("%s:%d:%d: %s", d.File, d.Line, d.Column, d.Message)
}

// ============================================================================
// 格式化器
// ============================================================================

// Formatter 诊断格式化器
type Formatter struct {
	Colors     bool // 是否使用颜色
	ShowSource bool // 是否显示源代码
	ShowHints  bool // 是否显示修复建议
	TabWidth   int  // Tab 宽度
}

// NewFormatter 创建默认格式化器，颜色取决于终端检测结果
func NewFormatter() *Formatter {
	return &Formatter{
		Colors:     ColorsEnabled(),
		ShowSource: true,
		ShowHints:  true,
		TabWidth:   4,
	}
}

// FormatDiagnostic 格式化一条诊断
//
//	error[E0006]: expected ';'
//	 --> A.java:3:14
//	  |
//	3 | int x = 1
//	  |          ^
//	 = help: ...
func (f *Formatter) FormatDiagnostic(d *Diagnostic, sourceLines []string) string {
	var sb strings.Builder

	// 错误头
	levelStr := f.colorize(d.Level.String(), f.levelColor(d.Level))
	codeStr := f.colorize(fmt.Sprintf("[%s]", d.Code), f.levelColor(d.Level))
	sb.WriteString(fmt.Sprintf("%s%s: %s\n", levelStr, codeStr, d.Message))

	// 位置
	arrow := f.colorize("-->", ColorCyan)
	location := d.File
	if d.Line > 0 {
		location = fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
	}
	sb.WriteString(fmt.Sprintf(" %s %s\n", arrow, f.colorize(location, ColorCyan)))

	// 显示源代码
	if f.ShowSource && d.Line > 0 && d.Line <= len(sourceLines) {
		sb.WriteString(f.formatSourceLine(sourceLines[d.Line-1], d.Line, d.Column, d.EndColumn))
	}

	// 修复建议
	if f.ShowHints {
		for _, hint := range d.Hints {
			sb.WriteString(fmt.Sprintf("%s %s\n", f.colorize(" = help:", ColorCyan), hint))
		}
	}

	// 附加说明
	for _, note := range d.Notes {
		sb.WriteString(fmt.Sprintf("%s %s\n", f.colorize(" = note:", ColorCyan), note))
	}

	return sb.String()
}

// formatSourceLine 源码行加 '^' 标注
func (f *Formatter) formatSourceLine(line string, lineNum, startCol, endCol int) string {
	var sb strings.Builder

	lineNumWidth := len(fmt.Sprintf("%d", lineNum))
	gutter := strings.Repeat(" ", lineNumWidth)
	pipe := f.colorize(" |", ColorBlue)

	sb.WriteString(gutter + pipe + "\n")

	text := f.expandTabs(line)
	if f.Colors {
		text = HighlightLine(text)
	}
	sb.WriteString(fmt.Sprintf("%s%s %s\n", f.colorize(fmt.Sprintf("%d", lineNum), ColorBlue), pipe, text))

	if startCol > 0 {
		if endCol <= startCol {
			endCol = startCol + 1
		}
		actualCol := f.calculateActualColumn(line, startCol)
		underline := gutter + pipe + " " + strings.Repeat(" ", actualCol) +
			f.colorize(strings.Repeat("^", endCol-startCol), ColorRed)
		sb.WriteString(underline + "\n")
	}

	return sb.String()
}

// expandTabs 展开 Tab 为空格
func (f *Formatter) expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", f.TabWidth))
}

// calculateActualColumn 计算列前面的显示宽度（考虑 Tab）
func (f *Formatter) calculateActualColumn(line string, col int) int {
	if col <= 0 {
		return 0
	}
	actual := 0
	for i := 0; i < col-1 && i < len(line); i++ {
		if line[i] == '\t' {
			actual += f.TabWidth
		} else {
			actual++
		}
	}
	return actual
}

// levelColor 获取错误级别对应的颜色
func (f *Formatter) levelColor(level Level) Color {
	switch level {
	case LevelError:
		return ColorBoldRed
	case LevelWarning:
		return ColorBoldYellow
	case LevelNote:
		return ColorCyan
	case LevelHelp:
		return ColorGreen
	default:
		return ColorWhite
	}
}

// colorize 着色字符串
func (f *Formatter) colorize(s string, color Color) string {
	if !f.Colors {
		return s
	}
	return paint(s, color)
}

// FormatDiagnostics 格式化多条诊断并附上错误计数
func (f *Formatter) FormatDiagnostics(diags []*Diagnostic, sourceCache map[string][]string) string {
	var sb strings.Builder

	errorCount := 0
	for i, d := range diags {
		if i > 0 {
			sb.WriteString("\n")
		}
		if d.Level == LevelError {
			errorCount++
		}
		sb.WriteString(f.FormatDiagnostic(d, sourceCache[d.File]))
	}

	if errorCount > 0 {
		sb.WriteString("\n")
		sb.WriteString(f.colorize(i18n.T(i18n.DiagErrorCount, errorCount), ColorBoldRed) + "\n")
	}

	return sb.String()
}
