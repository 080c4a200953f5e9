// Package formatter 把 Java 源码解析后以最小模式或美化模式重新输出
//
// 输出是全有或全无的：解析失败返回 *ParseError，遇到不支持的结构返回
// *unparse.UnsupportedError，这两种情况都不会产生任何部分输出。
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/parser"
	"github.com/tangzhangming/javamin/internal/unparse"
)

// Mode 输出模式
type Mode = unparse.Mode

const (
	ModeMinimal = unparse.ModeMinimal
	ModePretty  = unparse.ModePretty
)

// ParseMode 解析模式名称：min、minimal、pretty
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "minimal", "minify":
		return ModeMinimal, nil
	case "pretty", "fmt", "format":
		return ModePretty, nil
	}
	return ModeMinimal, fmt.Errorf("unknown mode %q (want minimal or pretty)", s)
}

// Parse 解析源码，有语法错误时返回 *ParseError
func Parse(source, filename string) (*ast.CompilationUnit, error) {
	p := parser.New(source, filename)
	unit := p.Parse()
	if p.HasErrors() {
		return nil, newParseError(filename, p.Errors())
	}
	return unit, nil
}

// Minify 以最小模式输出源码
func Minify(source, filename string) (string, error) {
	opts := DefaultOptions()
	opts.Mode = ModeMinimal
	return Format(source, filename, opts)
}

// Pretty 以美化模式输出到 w
//
// 只有全部成功后才会写入 w。
func Pretty(w io.Writer, source, filename string, options *Options) error {
	opts := options.clone()
	opts.Mode = ModePretty

	out, err := Format(source, filename, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Format 按 options.Mode 格式化源代码
func Format(source, filename string, options *Options) (string, error) {
	// 解析源代码
	unit, err := Parse(source, filename)
	if err != nil {
		return "", err
	}

	// 使用打印器生成输出
	return NewPrinter(options).Print(unit)
}

// FormatWithDefaultOptions 使用默认选项格式化
func FormatWithDefaultOptions(source, filename string) (string, error) {
	return Format(source, filename, DefaultOptions())
}

// FormatPartial 格式化代码片段
//
// 先尝试按完整编译单元格式化；失败时把片段当作方法体里的语句包装后再格式化，
// 然后取出原始部分。baseIndent 是结果每一行额外加上的缩进层数。
func FormatPartial(source, filename string, options *Options, baseIndent int) (string, error) {
	if options == nil {
		options = DefaultOptions()
	}

	// 首先尝试直接格式化
	formatted, err := Format(source, filename, options)
	if err == nil {
		return indentLines(formatted, options.IndentString(), baseIndent), nil
	}

	// 包装成方法体后再试，处理语句片段
	wrapped := wrapPartialCode(source)
	opts := options.clone()
	opts.Mode = ModePretty
	formatted, wrapErr := Format(wrapped, filename, opts)
	if wrapErr != nil {
		// 仍然失败时返回原始错误
		return "", err
	}

	extracted := extractFormattedPart(formatted, opts)
	if options.Mode == ModeMinimal {
		return minifyStatements(extracted, filename)
	}
	return indentLines(extracted, options.IndentString(), baseIndent), nil
}

const (
	wrapperClass  = "__Wrapper__"
	wrapperMethod = "__wrapper__"
)

// wrapPartialCode 包装代码片段以便解析
func wrapPartialCode(source string) string {
	return "class " + wrapperClass + " { void " + wrapperMethod + "() {\n" + source + "\n} }"
}

// extractFormattedPart 从包装后的美化输出中取出方法体
//
// 美化输出的前四行是类头、'{'、方法头、'{'，最后两行是两个 '}'，
// 方法体本身带两级缩进。
func extractFormattedPart(formatted string, options *Options) string {
	lines := strings.Split(strings.TrimRight(formatted, "\n"), "\n")
	if len(lines) < 6 {
		return ""
	}

	body := lines[4 : len(lines)-2]
	if len(body) == 0 {
		return ""
	}
	prefix := strings.Repeat(options.IndentString(), 2)
	result := make([]string, 0, len(body))
	for _, line := range body {
		// 移除包装类和包装方法带来的两级缩进
		result = append(result, strings.TrimPrefix(line, prefix))
	}
	return strings.Join(result, "\n") + "\n"
}

// minifyStatements 最小模式下把美化后的语句重新压缩成一行
func minifyStatements(pretty, filename string) (string, error) {
	unit, err := Parse(wrapPartialCode(pretty), filename)
	if err != nil {
		return "", err
	}
	min, err := unparse.Minimal(unit)
	if err != nil {
		return "", err
	}
	head := "class " + wrapperClass + "{void " + wrapperMethod + "(){"
	return strings.TrimSuffix(strings.TrimPrefix(min, head), "}}"), nil
}

// indentLines 给每个非空行加上 depth 层缩进
func indentLines(text, indent string, depth int) string {
	if depth <= 0 || text == "" {
		return text
	}
	prefix := strings.Repeat(indent, depth)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = prefix + line
		}
	}
	return strings.Join(lines, "\n")
}
