package errors

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/javamin/internal/formatter"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/token"
	"github.com/tangzhangming/javamin/internal/unparse"
)

func plainFormatter() *Formatter {
	return &Formatter{ShowSource: true, ShowHints: true, TabWidth: 4}
}

func TestFormatDiagnostic(t *testing.T) {
	d := &Diagnostic{
		Code:    E0006,
		Level:   LevelError,
		Message: "expected ';'",
		File:    "A.java",
		Line:    2,
		Column:  11,
		Hints:   []string{"add a semicolon"},
		Notes:   []string{"no output was written"},
	}
	lines := []string{"class A {", "  int x = 1", "}"}

	out := plainFormatter().FormatDiagnostic(d, lines)
	want := "error[E0006]: expected ';'\n" +
		" --> A.java:2:11\n" +
		"  |\n" +
		"2 |   int x = 1\n" +
		"  |           ^\n" +
		" = help: add a semicolon\n" +
		" = note: no output was written\n"
	assert.Equal(t, want, out)
}

func TestFormatDiagnosticTabsAndRange(t *testing.T) {
	d := &Diagnostic{Code: U0001, Level: LevelError, Message: "m", File: "A.java", Line: 1, Column: 2, EndColumn: 5}
	out := plainFormatter().FormatDiagnostic(d, []string{"\tfoo();"})
	assert.Contains(t, out, "1 |     foo();\n")
	assert.Contains(t, out, "  |     ^^^\n")
}

func TestFormatDiagnosticWithoutPosition(t *testing.T) {
	d := &Diagnostic{Code: E0001, Level: LevelError, Message: "read failed", File: "A.java"}
	out := plainFormatter().FormatDiagnostic(d, nil)
	assert.Equal(t, "error[E0001]: read failed\n --> A.java\n", out)
	assert.Equal(t, "A.java: read failed", d.Error())
}

func TestFormatDiagnosticsFooter(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)
	diags := []*Diagnostic{
		{Code: E0006, Level: LevelError, Message: "a", File: "A.java", Line: 1, Column: 1},
		{Code: E0007, Level: LevelWarning, Message: "b", File: "A.java", Line: 1, Column: 1},
	}
	out := plainFormatter().FormatDiagnostics(diags, map[string][]string{"A.java": {"x"}})
	assert.True(t, strings.HasSuffix(out, "found 1 error(s)\n"), out)
	assert.Contains(t, out, "warning[E0007]: b")
}

func TestColoredOutput(t *testing.T) {
	f := plainFormatter()
	f.Colors = true
	d := &Diagnostic{Code: E0006, Level: LevelError, Message: "m", File: "A.java", Line: 1, Column: 1}
	out := f.FormatDiagnostic(d, []string{"int x = 1;"})
	assert.Contains(t, out, "\033[")
	assert.Equal(t, plainFormatter().FormatDiagnostic(d, []string{"int x = 1;"}), Strip(out))
}

func TestHighlightLine(t *testing.T) {
	line := `return "hi" + 42; // done`
	out := HighlightLine(line)
	assert.Equal(t, line, Strip(out))
	assert.Contains(t, out, paint("return", ColorMagenta))
	assert.Contains(t, out, paint(`"hi"`, ColorGreen))
	assert.Contains(t, out, paint("42", ColorYellow))

	// 未闭合的块注释不影响其余部分
	assert.Equal(t, "x /* open", Strip(HighlightLine("x /* open")))
}

func TestInferCode(t *testing.T) {
	tests := []struct {
		msg  string
		code string
	}{
		{"unexpected character '#'", E0002},
		{"意外字符 '#'", E0002},
		{"unterminated string", E0003},
		{"empty character literal", E0003},
		{"未闭合的字符串", E0003},
		{"unterminated block comment", E0004},
		{"invalid hex number: 0x", E0005},
		{"无效的数字: 需要指数部分", E0005},
		{"expected ';'", E0006},
		{"需要表达式", E0006},
		{"unexpected token: )", E0007},
		{"意外的符号: )", E0007},
		{"something else", E0001},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, inferCode(tt.msg), tt.msg)
	}
}

func TestFromParseError(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)
	_, err := formatter.Minify("class A {\n  int x = 1\n}\n", "A.java")
	require.Error(t, err)

	diags := FromError(err, "ignored.java")
	require.NotEmpty(t, diags)
	d := diags[0]
	assert.Equal(t, "A.java", d.File)
	assert.True(t, IsSyntax(d.Code), d.Code)
	assert.Equal(t, LevelError, d.Level)
	assert.Greater(t, d.Line, 0)
}

func TestFromUnsupportedError(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)
	err := &unparse.UnsupportedError{
		Construct: "lambda expression",
		Pos:       token.Position{Filename: "B.java", Line: 3, Column: 7},
	}
	diags := FromError(err, "B.java")
	require.Len(t, diags, 1)
	d := diags[0]
	assert.Equal(t, U0001, d.Code)
	assert.Equal(t, 3, d.Line)
	assert.Equal(t, 7, d.Column)
	assert.Contains(t, d.Message, "lambda expression")
	assert.Equal(t, []string{i18n.T(i18n.DiagHintLambda)}, d.Hints)
	assert.Equal(t, []string{i18n.T(i18n.DiagNoteAllOrNothing)}, d.Notes)

	label := FromError(&unparse.UnsupportedError{Construct: "labeled break"}, "B.java")
	require.Len(t, label, 1)
	assert.Equal(t, 0, label[0].Line)
	assert.Equal(t, []string{i18n.T(i18n.DiagHintLabel)}, label[0].Hints)

	other := FromError(&unparse.UnsupportedError{Construct: "type annotation"}, "B.java")
	assert.Equal(t, []string{i18n.T(i18n.DiagHintUnsupported, "type annotation")}, other[0].Hints)
}

func TestFromContractAndPlainError(t *testing.T) {
	diags := FromError(&unparse.ContractError{Message: "constructor outside class"}, "C.java")
	require.Len(t, diags, 1)
	assert.Equal(t, U0002, diags[0].Code)
	assert.Equal(t, "C.java", diags[0].File)

	diags = FromError(assert.AnError, "D.java")
	require.Len(t, diags, 1)
	assert.Equal(t, E0001, diags[0].Code)
	assert.Equal(t, 0, diags[0].Line)

	assert.Nil(t, FromError(nil, "E.java"))
}

func TestReporter(t *testing.T) {
	i18n.SetLanguage(i18n.LangEnglish)
	var buf bytes.Buffer
	r := NewReporter(&buf)
	r.SetFormatter(plainFormatter())
	r.SetSource("A.java", "class A {\r\n  int x = 1\r\n}")

	assert.Equal(t, "  int x = 1", r.GetSourceLine("A.java", 2))
	assert.Equal(t, "", r.GetSourceLine("A.java", 9))

	r.ReportSimple("A.java", 2, 12, "expected ';'")
	assert.Equal(t, 1, r.ErrorCount())
	assert.True(t, r.HasErrors())
	assert.Contains(t, buf.String(), "error[E0006]: expected ';'")
	assert.Contains(t, buf.String(), "2 |   int x = 1")

	r.Report(&Diagnostic{Code: E0007, Level: LevelWarning, Message: "w", File: "A.java"})
	assert.Equal(t, 1, r.WarningCount())

	_, err := formatter.Minify("class A { void f() { outer: for (;;) { break outer; } } }", "L.java")
	require.Error(t, err)
	r.ReportError(err, "L.java")
	assert.Equal(t, 2, r.ErrorCount())
	assert.Contains(t, buf.String(), "error[U0001]")

	r.Clear()
	assert.False(t, r.HasErrors())
	assert.Zero(t, r.WarningCount())
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "unsupported construct", Describe(U0001))
	assert.Equal(t, "unknown error", Describe("X9999"))
	assert.True(t, IsSyntax(E0003))
	assert.False(t, IsSyntax(U0002))
	assert.Equal(t, "note", LevelNote.String())
}
