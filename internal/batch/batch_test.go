package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/javamin/internal/config"
	"github.com/tangzhangming/javamin/internal/formatter"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// newTree 生成一个包含成功、跳过、失败三类文件的目录
func newTree(t *testing.T) string {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "A.java"), "class A { int f(int x) { return x * 2; } }\n")
	writeFile(t, filepath.Join(root, "src", "deep", "B.java"), "class B { int x; B() { this.x = 1; } }\n")
	writeFile(t, filepath.Join(root, "src", "Label.java"),
		"class L { void f() { outer: for (;;) { break outer; } } }\n")
	writeFile(t, filepath.Join(root, "src", "Bad.java"), "class Bad { void f( }\n")
	writeFile(t, filepath.Join(root, "build", "Gen.java"), "class Gen {}\n")
	writeFile(t, filepath.Join(root, "README.md"), "# readme\n")
	return root
}

func minimalOptions() *Options {
	fmtOpts := formatter.DefaultOptions()
	fmtOpts.Mode = formatter.ModeMinimal
	return &Options{
		Format:           fmtOpts,
		Exclude:          []string{"build"},
		Workers:          2,
		CheckIdempotence: true,
	}
}

func TestCollect(t *testing.T) {
	root := newTree(t)
	files, err := Collect(root, minimalOptions())
	require.NoError(t, err)

	var rel []string
	for _, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel = append(rel, filepath.ToSlash(r))
	}
	assert.Equal(t, []string{"src/A.java", "src/Bad.java", "src/Label.java", "src/deep/B.java"}, rel)

	single := filepath.Join(root, "src", "A.java")
	files, err = Collect(single, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{single}, files)

	_, err = Collect(filepath.Join(root, "missing"), nil)
	assert.Error(t, err)
}

func TestRunReportsAndSkips(t *testing.T) {
	root := newTree(t)
	report, err := Run(context.Background(), root, minimalOptions())
	require.NoError(t, err)

	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 2, report.OK)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, "minimal", report.Mode)
	assert.Greater(t, report.InputBytes, report.OutputBytes)

	byName := map[string]FileResult{}
	for _, f := range report.Files {
		byName[filepath.Base(f.Path)] = f
	}
	assert.Equal(t, StatusOK, byName["A.java"].Status)
	assert.Equal(t, len("class A{int f(int x){return x*2;}}"), byName["A.java"].OutputBytes)
	assert.Equal(t, StatusSkipped, byName["Label.java"].Status)
	assert.Contains(t, byName["Label.java"].Error, "labeled")
	assert.Equal(t, StatusFailed, byName["Bad.java"].Status)
	assert.Error(t, byName["Bad.java"].Err())

	failures := report.Failures()
	require.Len(t, failures, 1)
	assert.Equal(t, "Bad.java", filepath.Base(failures[0].Path))

	err = report.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad.java")
	assert.NotContains(t, err.Error(), "Label.java")

	// 源文件保持不变
	data, err := os.ReadFile(filepath.Join(root, "src", "A.java"))
	require.NoError(t, err)
	assert.Equal(t, "class A { int f(int x) { return x * 2; } }\n", string(data))
}

func TestRunWrite(t *testing.T) {
	root := newTree(t)
	opts := minimalOptions()
	opts.Write = true
	_, err := Run(context.Background(), root, opts)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "src", "A.java"))
	require.NoError(t, err)
	assert.Equal(t, "class A{int f(int x){return x*2;}}", string(data))

	// 失败和跳过的文件不被改写
	data, err = os.ReadFile(filepath.Join(root, "src", "Bad.java"))
	require.NoError(t, err)
	assert.Equal(t, "class Bad { void f( }\n", string(data))

	// 第二次运行结果相同
	report, err := Run(context.Background(), root, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, report.OK)
}

func TestRunPretty(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "A.java"), "class A{int f(){return 1;}}")
	report, err := Run(context.Background(), root, &Options{CheckIdempotence: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.OK)
	assert.Equal(t, "pretty", report.Mode)
}

func TestRunCancelled(t *testing.T) {
	root := newTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, root, minimalOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestReportJSON(t *testing.T) {
	root := newTree(t)
	report, err := Run(context.Background(), root, minimalOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.Total, decoded.Total)
	assert.Equal(t, report.Skipped, decoded.Skipped)
	require.Len(t, decoded.Files, len(report.Files))
	assert.Equal(t, report.Files[0].Path, decoded.Files[0].Path)
	assert.Equal(t, report.Files[0].Status, decoded.Files[0].Status)
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Format.Mode = "minimal"
	cfg.Batch.Workers = 3

	opts := OptionsFromConfig(cfg)
	assert.Equal(t, formatter.ModeMinimal, opts.Format.Mode)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, []string{".java"}, opts.Extensions)
	assert.True(t, opts.CheckIdempotence)

	n := (*Options)(nil).normalize()
	assert.Equal(t, 4, n.Workers)
	assert.NotNil(t, n.Logger)
	assert.NotNil(t, n.Format)
}
