package errors

import (
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/tangzhangming/javamin/internal/lexer"
	"github.com/tangzhangming/javamin/internal/token"
)

// Color 终端颜色
type Color int

const (
	ColorReset Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBoldRed
	ColorBoldYellow
	ColorBoldWhite
)

// ANSI 颜色代码
var ansiCodes = map[Color]string{
	ColorReset:      "\033[0m",
	ColorRed:        "\033[31m",
	ColorGreen:      "\033[32m",
	ColorYellow:     "\033[33m",
	ColorBlue:       "\033[34m",
	ColorMagenta:    "\033[35m",
	ColorCyan:       "\033[36m",
	ColorWhite:      "\033[37m",
	ColorBoldRed:    "\033[1;31m",
	ColorBoldYellow: "\033[1;33m",
	ColorBoldWhite:  "\033[1;37m",
}

// colorsEnabled 是否启用颜色
var colorsEnabled = DetectColorSupport(os.Stderr)

// DetectColorSupport 检测输出目标是否支持颜色
//
// NO_COLOR 优先；TERM=dumb 不着色；否则要求 f 是终端。
func DetectColorSupport(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// EnableColors 启用颜色
func EnableColors() {
	colorsEnabled = true
}

// DisableColors 禁用颜色
func DisableColors() {
	colorsEnabled = false
}

// ColorsEnabled 检查颜色是否启用
func ColorsEnabled() bool {
	return colorsEnabled
}

// SetColorsEnabled 设置颜色启用状态
func SetColorsEnabled(enabled bool) {
	colorsEnabled = enabled
}

// Colorize 着色字符串
func Colorize(s string, color Color) string {
	if !colorsEnabled {
		return s
	}
	return paint(s, color)
}

func paint(s string, color Color) string {
	code, ok := ansiCodes[color]
	if !ok {
		return s
	}
	return code + s + ansiCodes[ColorReset]
}

// Red 红色
func Red(s string) string {
	return Colorize(s, ColorRed)
}

// Green 绿色
func Green(s string) string {
	return Colorize(s, ColorGreen)
}

// Yellow 黄色
func Yellow(s string) string {
	return Colorize(s, ColorYellow)
}

// Cyan 青色
func Cyan(s string) string {
	return Colorize(s, ColorCyan)
}

// Strip 移除 ANSI 颜色代码
func Strip(s string) string {
	result := s
	for _, code := range ansiCodes {
		result = strings.ReplaceAll(result, code, "")
	}
	return result
}

// ============================================================================
// 代码语法高亮
// ============================================================================

// HighlightLine 用 Java 词法分析器给一行源码着色
//
// 关键字洋红，字符串和字符字面量绿色，数字黄色。行内的词法错误
// （例如跨行的块注释）不影响输出，未识别的部分原样保留。
func HighlightLine(line string) string {
	tokens := lexer.New(line, "").ScanTokens()

	var sb strings.Builder
	offset := 0
	for _, tok := range tokens {
		if tok.Type == token.EOF {
			break
		}
		start := tok.Pos.Offset
		end := tok.End()
		if start < offset || end > len(line) {
			continue
		}
		sb.WriteString(line[offset:start])
		sb.WriteString(paint(line[start:end], tokenColor(tok.Type)))
		offset = end
	}
	sb.WriteString(line[offset:])
	return sb.String()
}

func tokenColor(t token.TokenType) Color {
	switch {
	case token.IsKeyword(t):
		return ColorMagenta
	case t == token.STRING || t == token.CHAR:
		return ColorGreen
	case t == token.INT || t == token.FLOAT:
		return ColorYellow
	}
	return Color(-1)
}
