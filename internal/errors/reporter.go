package errors

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// ============================================================================
// 错误报告器
// ============================================================================

// Reporter 把诊断格式化后写到输出，并记录错误和警告数量
type Reporter struct {
	out         io.Writer
	formatter   *Formatter
	sourceCache map[string][]string // 源代码缓存
	errors      []*Diagnostic
	warnings    []*Diagnostic
}

// NewReporter 创建错误报告器，out 为 nil 时写到标准错误
func NewReporter(out io.Writer) *Reporter {
	if out == nil {
		out = os.Stderr
	}
	return &Reporter{
		out:         out,
		formatter:   NewFormatter(),
		sourceCache: make(map[string][]string),
	}
}

// SetFormatter 设置格式化器
func (r *Reporter) SetFormatter(f *Formatter) {
	r.formatter = f
}

// LoadSource 加载源文件
func (r *Reporter) LoadSource(filename string) error {
	if _, ok := r.sourceCache[filename]; ok {
		return nil // 已加载
	}

	file, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	r.sourceCache[filename] = lines
	return nil
}

// SetSource 设置源代码（用于测试或内存中的源代码）
func (r *Reporter) SetSource(filename string, content string) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	r.sourceCache[filename] = strings.Split(content, "\n")
}

// GetSourceLine 获取源代码行
func (r *Reporter) GetSourceLine(filename string, line int) string {
	if lines, ok := r.sourceCache[filename]; ok {
		if line > 0 && line <= len(lines) {
			return lines[line-1]
		}
	}
	return ""
}

// ============================================================================
// 报告
// ============================================================================

// Report 输出一条诊断
func (r *Reporter) Report(d *Diagnostic) {
	if _, ok := r.sourceCache[d.File]; !ok && d.File != "" {
		// 源文件读不到时只输出位置
		_ = r.LoadSource(d.File)
	}

	switch d.Level {
	case LevelError:
		r.errors = append(r.errors, d)
	case LevelWarning:
		r.warnings = append(r.warnings, d)
	}

	fmt.Fprint(r.out, r.formatter.FormatDiagnostic(d, r.sourceCache[d.File]))
}

// ReportError 把驱动层返回的错误转换成诊断并全部输出
func (r *Reporter) ReportError(err error, file string) {
	for _, d := range FromError(err, file) {
		r.Report(d)
	}
}

// ReportSimple 报告只有位置和消息的错误，错误码从消息推断
func (r *Reporter) ReportSimple(file string, line, col int, message string) {
	r.Report(&Diagnostic{
		Code:    inferCode(message),
		Level:   LevelError,
		Message: message,
		File:    file,
		Line:    line,
		Column:  col,
	})
}

// ErrorCount 已报告的错误数
func (r *Reporter) ErrorCount() int {
	return len(r.errors)
}

// WarningCount 已报告的警告数
func (r *Reporter) WarningCount() int {
	return len(r.warnings)
}

// HasErrors 是否报告过错误
func (r *Reporter) HasErrors() bool {
	return len(r.errors) > 0
}

// Diagnostics 返回已报告的错误
func (r *Reporter) Diagnostics() []*Diagnostic {
	return r.errors
}

// Clear 清空计数，保留源码缓存
func (r *Reporter) Clear() {
	r.errors = nil
	r.warnings = nil
}

// ============================================================================
// 错误码推断
// ============================================================================

// inferCode 从词法或语法错误消息推断错误码，中英文消息都能识别
func inferCode(message string) string {
	msg := strings.ToLower(message)

	switch {
	case containsAny(msg, "unexpected character", "意外字符"):
		return E0002
	case containsAny(msg, "unterminated block comment", "未闭合的块注释"):
		return E0004
	case containsAny(msg, "unterminated", "empty character", "escape", "未闭合", "空的字符", "转义"):
		return E0003
	case containsAny(msg, "invalid hex", "invalid binary", "invalid number", "无效的十六进制", "无效的二进制", "无效的数字"):
		return E0005
	case containsAny(msg, "unexpected token", "意外的符号"):
		return E0007
	case containsAny(msg, "expected", "需要"):
		return E0006
	}
	return E0001
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
