package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jerrors "github.com/tangzhangming/javamin/internal/errors"
	"github.com/tangzhangming/javamin/internal/i18n"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	jerrors.DisableColors()
	var stdout, stderr bytes.Buffer
	code := newCLI(strings.NewReader(stdin), &stdout, &stderr).run(context.Background(), append([]string{"-lang", "en"}, args...))
	return result{code, stdout.String(), stderr.String()}
}

func writeJava(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMinFromStdin(t *testing.T) {
	r := runCLI(t, "class A { int x = 1 + 2; }", "min", "-")
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Equal(t, "class A{int x=1+2;}\n", r.stdout)
}

func TestFmtToFile(t *testing.T) {
	dir := t.TempDir()
	in := writeJava(t, dir, "A.java", "class A{int f(){return 1;}}")
	out := filepath.Join(dir, "out.java")

	r := runCLI(t, "", "fmt", "-indent", "spaces", "-indent-size", "2", "-o", out, in)
	require.Equal(t, exitOK, r.code, r.stderr)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "class A\n{\n  int f()\n  {\n    return 1;\n  }\n}\n", string(data))
}

func TestMinInPlaceWithConfig(t *testing.T) {
	dir := t.TempDir()
	writeJava(t, dir, "javamin.toml", "[format]\nmode = \"pretty\"\n")
	in := writeJava(t, dir, "src/A.java", "class A { void f() { g(); } }")

	r := runCLI(t, "", "min", "-w", in)
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Empty(t, r.stdout)
	data, err := os.ReadFile(in)
	require.NoError(t, err)
	assert.Equal(t, "class A{void f(){g();}}", string(data))
}

func TestSyntaxErrorDiagnostics(t *testing.T) {
	r := runCLI(t, "class A {\n  int x = 1\n}\n", "min", "-")
	assert.Equal(t, exitError, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "error[E")
	assert.Contains(t, r.stderr, "--> <stdin>:")
}

func TestUnsupportedDiagnostics(t *testing.T) {
	r := runCLI(t, "class L { void f() { outer: for (;;) { break outer; } } }", "fmt", "-")
	assert.Equal(t, exitError, r.code)
	assert.Empty(t, r.stdout)
	assert.Contains(t, r.stderr, "error[U0001]")
	assert.Contains(t, r.stderr, i18n.T(i18n.DiagNoteAllOrNothing))
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeJava(t, dir, "A.java", "class A { int f(int a) { return a - -1; } }")
	bad := writeJava(t, dir, "B.java", "class B {")

	r := runCLI(t, "", "check", good, bad)
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stdout, good+": ok")
	assert.Contains(t, r.stderr, "B.java")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	writeJava(t, dir, "A.java", "class A {}")
	writeJava(t, dir, "pkg/B.java", "class B { int x; }")
	writeJava(t, dir, "pkg/L.java", "class L { void f() { a: for (;;) { break a; } } }")

	r := runCLI(t, "", "batch", "-mode", "min", dir)
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "3 files, 2 ok, 0 failed, 1 skipped")

	writeJava(t, dir, "pkg/Bad.java", "class Bad {")
	r = runCLI(t, "", "batch", "-json", dir)
	assert.Equal(t, exitError, r.code)
	assert.Contains(t, r.stdout, `"failed": 1`)
}

func TestTokensAndAST(t *testing.T) {
	r := runCLI(t, "class A {}", "tokens", "-")
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "class")

	r = runCLI(t, "class A {}", "ast", "-")
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "A")

	r = runCLI(t, "class A { int x = ; }", "ast", "-")
	assert.Equal(t, exitError, r.code)
}

func TestUsageAndVersion(t *testing.T) {
	r := runCLI(t, "")
	assert.Equal(t, exitOK, r.code)
	assert.Contains(t, r.stdout, "Usage:")

	r = runCLI(t, "", "version")
	assert.Equal(t, "javamin version "+Version+"\n", r.stdout)

	r = runCLI(t, "", "frobnicate")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, "unknown command: frobnicate")

	r = runCLI(t, "", "min")
	assert.Equal(t, exitUsage, r.code)
	assert.Contains(t, r.stderr, i18n.T(i18n.CliMissingFile))
}

func TestPreprocessArgs(t *testing.T) {
	c := newCLI(nil, nil, nil)
	rest := c.preprocessArgs([]string{"min", "-lang=zh", "-config", "x.toml", "-no-color", "-w", "A.java"})
	assert.Equal(t, []string{"min", "-w", "A.java"}, rest)
	assert.Equal(t, "zh", c.lang)
	assert.Equal(t, "x.toml", c.configPath)
	assert.True(t, c.noColor)
}

func TestChineseMessages(t *testing.T) {
	defer i18n.SetLanguage(i18n.LangEnglish)
	var stdout, stderr bytes.Buffer
	code := newCLI(strings.NewReader(""), &stdout, &stderr).run(context.Background(), []string{"--lang", "zh", "version"})
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "javamin 版本 "+Version+"\n", stdout.String())
}
