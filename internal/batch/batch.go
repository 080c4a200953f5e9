// Package batch 并发地对目录下的 Java 源文件执行格式化或压缩
//
// 单个文件失败只记录在报告里，不会中止整个运行。
package batch

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/encoding/json"
	"go.uber.org/atomic"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tangzhangming/javamin/internal/config"
	"github.com/tangzhangming/javamin/internal/formatter"
	"github.com/tangzhangming/javamin/internal/unparse"
)

// ============================================================================
// 选项
// ============================================================================

// Options 批处理选项
type Options struct {
	Format           *formatter.Options
	Extensions       []string // 处理的扩展名，默认 .java
	Exclude          []string // 跳过的目录名
	Workers          int      // 并发数，0 表示 4
	CheckIdempotence bool     // 检查 Format(Format(P)) == Format(P)
	Write            bool     // 把结果写回源文件
	Logger           *zap.Logger
}

// OptionsFromConfig 从 javamin.toml 构造批处理选项
func OptionsFromConfig(cfg *config.Config) *Options {
	return &Options{
		Format:           cfg.FormatOptions(),
		Extensions:       cfg.Batch.Extensions,
		Exclude:          cfg.Batch.Exclude,
		Workers:          cfg.Batch.Workers,
		CheckIdempotence: cfg.Batch.CheckIdempotence,
	}
}

func (o *Options) normalize() *Options {
	n := Options{}
	if o != nil {
		n = *o
	}
	if n.Format == nil {
		n.Format = formatter.DefaultOptions()
	}
	if len(n.Extensions) == 0 {
		n.Extensions = []string{".java"}
	}
	if n.Workers <= 0 {
		n.Workers = 4
	}
	if n.Logger == nil {
		n.Logger = zap.NewNop()
	}
	return &n
}

// ============================================================================
// 报告
// ============================================================================

// Status 单个文件的处理结果
type Status string

const (
	StatusOK       Status = "ok"       // 成功
	StatusFailed   Status = "failed"   // 语法错误或读写失败
	StatusSkipped  Status = "skipped"  // 含有不支持的结构
	StatusUnstable Status = "unstable" // 再次格式化结果不同
)

// FileResult 单个文件的结果
type FileResult struct {
	Path        string `json:"path"`
	Status      Status `json:"status"`
	Error       string `json:"error,omitempty"`
	InputBytes  int    `json:"input_bytes"`
	OutputBytes int    `json:"output_bytes"`

	err error
}

// Err 返回该文件的原始错误
func (r FileResult) Err() error {
	return r.err
}

// Report 一次批处理的汇总
type Report struct {
	Root        string       `json:"root"`
	Mode        string       `json:"mode"`
	Total       int          `json:"total"`
	OK          int          `json:"ok"`
	Failed      int          `json:"failed"`
	Skipped     int          `json:"skipped"`
	InputBytes  int64        `json:"input_bytes"`
	OutputBytes int64        `json:"output_bytes"`
	Files       []FileResult `json:"files"`
}

// Err 把所有失败文件的错误合并成一个，没有失败时返回 nil
func (r *Report) Err() error {
	var err error
	for i := range r.Files {
		if r.Files[i].err != nil && r.Files[i].Status != StatusSkipped {
			err = multierr.Append(err, fmt.Errorf("%s: %w", r.Files[i].Path, r.Files[i].err))
		}
	}
	return err
}

// Failures 返回失败和不稳定的文件
func (r *Report) Failures() []FileResult {
	var out []FileResult
	for _, f := range r.Files {
		if f.Status == StatusFailed || f.Status == StatusUnstable {
			out = append(out, f)
		}
	}
	return out
}

// WriteJSON 以 JSON 输出报告
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// ErrUnstable 再次格式化的结果与第一次不同
var ErrUnstable = stderrors.New("output is not stable under re-formatting")

// ============================================================================
// 运行
// ============================================================================

// Collect 列出 root 下所有需要处理的文件，按路径排序
//
// root 是文件时直接返回它本身。
func Collect(root string, opts *Options) ([]string, error) {
	opts = opts.normalize()

	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && isExcluded(d.Name(), opts.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if hasExtension(path, opts.Extensions) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// Run 处理 root 下的全部文件
//
// 只有遍历目录失败或 ctx 被取消时才返回错误；单个文件的错误记录在报告里。
func Run(ctx context.Context, root string, opts *Options) (*Report, error) {
	opts = opts.normalize()
	log := opts.Logger.With(zap.String("root", root))

	files, err := Collect(root, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", root, err)
	}
	log.Debug("collected files", zap.Int("count", len(files)), zap.Int("workers", opts.Workers))

	results := make([]FileResult, len(files))
	var (
		done     atomic.Int64
		inBytes  atomic.Int64
		outBytes atomic.Int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := processFile(path, opts)
			results[i] = res
			inBytes.Add(int64(res.InputBytes))
			outBytes.Add(int64(res.OutputBytes))
			n := done.Inc()

			fields := []zap.Field{
				zap.String("file", path),
				zap.String("status", string(res.Status)),
				zap.Int64("done", n),
			}
			if res.err != nil {
				fields = append(fields, zap.Error(res.err))
			}
			log.Debug("processed", fields...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Root:        root,
		Mode:        opts.Format.Mode.String(),
		Total:       len(files),
		InputBytes:  inBytes.Load(),
		OutputBytes: outBytes.Load(),
		Files:       results,
	}
	for _, res := range results {
		switch res.Status {
		case StatusOK:
			report.OK++
		case StatusSkipped:
			report.Skipped++
		default:
			report.Failed++
		}
	}
	log.Info("batch finished",
		zap.Int("total", report.Total),
		zap.Int("ok", report.OK),
		zap.Int("failed", report.Failed),
		zap.Int("skipped", report.Skipped))
	return report, nil
}

// processFile 处理单个文件，错误写进结果
func processFile(path string, opts *Options) FileResult {
	res := FileResult{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return res.fail(StatusFailed, err)
	}
	res.InputBytes = len(data)
	source := string(data)

	out, err := formatter.Format(source, path, opts.Format)
	if err != nil {
		return res.fail(classify(err), err)
	}
	res.OutputBytes = len(out)

	if opts.CheckIdempotence {
		again, err := formatter.Format(out, path, opts.Format)
		if err != nil {
			return res.fail(StatusUnstable, fmt.Errorf("re-formatting failed: %w", err))
		}
		if again != out {
			return res.fail(StatusUnstable, ErrUnstable)
		}
	}

	if opts.Write && out != source {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return res.fail(StatusFailed, err)
		}
	}

	res.Status = StatusOK
	return res
}

func (r FileResult) fail(status Status, err error) FileResult {
	r.Status = status
	r.err = err
	r.Error = err.Error()
	return r
}

// classify 不支持的结构算跳过，其他都算失败
func classify(err error) Status {
	var ue *unparse.UnsupportedError
	if stderrors.As(err, &ue) {
		return StatusSkipped
	}
	return StatusFailed
}

func isExcluded(name string, exclude []string) bool {
	for _, ex := range exclude {
		if name == ex {
			return true
		}
	}
	return false
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
