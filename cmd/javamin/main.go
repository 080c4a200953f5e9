package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/batch"
	"github.com/tangzhangming/javamin/internal/config"
	jerrors "github.com/tangzhangming/javamin/internal/errors"
	"github.com/tangzhangming/javamin/internal/formatter"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/lexer"
)

const (
	Version = "0.1.0"
)

// 退出码
const (
	exitOK    = 0
	exitError = 1 // 输入有错误或检查失败
	exitUsage = 2 // 命令行用法错误
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := newCLI(os.Stdin, os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// cli 命令行上下文
type cli struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// 全局参数
	lang       string
	configPath string
	noColor    bool
}

func newCLI(stdin io.Reader, stdout, stderr io.Writer) *cli {
	return &cli{stdin: stdin, stdout: stdout, stderr: stderr}
}

func (c *cli) run(ctx context.Context, args []string) int {
	// 预扫描全局参数
	args = c.preprocessArgs(args)

	if err := initLanguage(c.lang); err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitUsage
	}
	if c.noColor {
		jerrors.DisableColors()
	}

	if len(args) < 1 {
		c.printUsage(c.stdout)
		return exitOK
	}

	command := args[0]
	switch command {
	case "min", "minify":
		return c.cmdFormat(args[1:], formatter.ModeMinimal)
	case "fmt", "format", "pretty":
		return c.cmdFormat(args[1:], formatter.ModePretty)
	case "check":
		return c.cmdCheck(args[1:])
	case "batch":
		return c.cmdBatch(ctx, args[1:])
	case "tokens":
		return c.cmdTokens(args[1:])
	case "ast":
		return c.cmdAST(args[1:])
	case "version", "-version", "--version":
		fmt.Fprintln(c.stdout, i18n.T(i18n.CliVersion, Version))
		return exitOK
	case "help", "-h", "-help", "--help":
		c.printUsage(c.stdout)
		return exitOK
	}

	fmt.Fprint(c.stderr, i18n.T(i18n.CliUnknownCommand, command), "\n\n")
	c.printUsage(c.stderr)
	return exitUsage
}

// preprocessArgs 提取全局参数 -lang、-config、-no-color，可以出现在任何位置
func (c *cli) preprocessArgs(args []string) []string {
	var result []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if !strings.HasPrefix(arg, "-") {
			result = append(result, arg)
			continue
		}
		switch name {
		case "lang", "config":
			if !hasValue {
				if i+1 >= len(args) {
					result = append(result, arg)
					continue
				}
				value = args[i+1]
				i++
			}
			if name == "lang" {
				c.lang = value
			} else {
				c.configPath = value
			}
		case "no-color":
			c.noColor = true
		default:
			result = append(result, arg)
		}
	}
	return result
}

func (c *cli) printUsage(w io.Writer) {
	fmt.Fprint(w, i18n.T(i18n.CliUsage))
}

// ============================================================================
// 公共辅助
// ============================================================================

// newFlagSet 创建子命令的参数集，错误输出到 stderr
func (c *cli) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// loadConfig 加载配置；startPath 用于向上查找 javamin.toml
func (c *cli) loadConfig(startPath string) (*config.Config, bool) {
	if startPath == "" || startPath == "-" {
		startPath = "."
	}
	cfg, path, err := config.Resolve(c.configPath, startPath)
	if err != nil {
		fmt.Fprintln(c.stderr, i18n.T(i18n.CliConfigFailed, path, err))
		return nil, false
	}
	return cfg, true
}

// readInput 读取文件，"-" 表示标准输入
func (c *cli) readInput(filename string) (string, bool) {
	var (
		data []byte
		err  error
	)
	if filename == "-" {
		data, err = io.ReadAll(c.stdin)
	} else {
		data, err = os.ReadFile(filename)
	}
	if err != nil {
		fmt.Fprintln(c.stderr, i18n.T(i18n.CliReadFailed, filename, err))
		return "", false
	}
	return string(data), true
}

// displayName 诊断里使用的文件名
func displayName(filename string) string {
	if filename == "-" {
		return "<stdin>"
	}
	return filename
}

// reportError 把错误渲染成诊断写到 stderr
func (c *cli) reportError(err error, filename, source string) {
	name := displayName(filename)
	r := jerrors.NewReporter(c.stderr)
	r.SetSource(name, source)
	r.ReportError(err, name)
	if r.ErrorCount() > 1 {
		fmt.Fprintln(c.stderr, i18n.T(i18n.DiagErrorCount, r.ErrorCount()))
	}
}

// ============================================================================
// min / fmt
// ============================================================================

// cmdFormat 以指定模式输出单个文件
func (c *cli) cmdFormat(args []string, mode formatter.Mode) int {
	fs := c.newFlagSet(mode.String())
	output := fs.String("o", "", "write output to file")
	write := fs.Bool("w", false, "rewrite the input file in place")
	indent := fs.String("indent", "", "indent style: tabs or spaces")
	indentSize := fs.Int("indent-size", 0, "spaces per indent level")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(c.stderr, i18n.T(i18n.CliMissingFile))
		return exitUsage
	}
	filename := fs.Arg(0)

	cfg, ok := c.loadConfig(filename)
	if !ok {
		return exitError
	}
	opts := cfg.FormatOptions()
	opts.Mode = mode
	if *indent != "" {
		opts.IndentStyle = *indent
	}
	if *indentSize > 0 {
		opts.IndentSize = *indentSize
	}

	source, ok := c.readInput(filename)
	if !ok {
		return exitError
	}

	out, err := formatter.Format(source, displayName(filename), opts)
	if err != nil {
		c.reportError(err, filename, source)
		return exitError
	}

	target := *output
	if *write && filename != "-" {
		target = filename
	}
	if target == "" {
		fmt.Fprint(c.stdout, out)
		if mode == formatter.ModeMinimal {
			fmt.Fprintln(c.stdout)
		}
		return exitOK
	}
	if err := os.WriteFile(target, []byte(out), 0644); err != nil {
		fmt.Fprintln(c.stderr, i18n.T(i18n.CliWriteFailed, target, err))
		return exitError
	}
	return exitOK
}

// ============================================================================
// check
// ============================================================================

// cmdCheck 检查每个文件的压缩结果是否幂等
func (c *cli) cmdCheck(args []string) int {
	fs := c.newFlagSet("check")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(c.stderr, i18n.T(i18n.CliMissingFile))
		return exitUsage
	}

	code := exitOK
	for _, filename := range fs.Args() {
		source, ok := c.readInput(filename)
		if !ok {
			code = exitError
			continue
		}
		name := displayName(filename)

		once, err := formatter.Minify(source, name)
		if err != nil {
			c.reportError(err, filename, source)
			code = exitError
			continue
		}
		twice, err := formatter.Minify(once, name)
		if err != nil || twice != once {
			fmt.Fprintln(c.stderr, i18n.T(i18n.CliCheckFailed, name))
			code = exitError
			continue
		}
		fmt.Fprintln(c.stdout, i18n.T(i18n.CliCheckOK, name))
	}
	return code
}

// ============================================================================
// batch
// ============================================================================

// cmdBatch 处理整个目录
func (c *cli) cmdBatch(ctx context.Context, args []string) int {
	fs := c.newFlagSet("batch")
	modeName := fs.String("mode", "", "minimal or pretty (default from config)")
	write := fs.Bool("w", false, "rewrite files in place")
	asJSON := fs.Bool("json", false, "print the report as JSON")
	workers := fs.Int("workers", 0, "number of concurrent workers")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	root := "."
	if fs.NArg() > 0 {
		root = fs.Arg(0)
	}

	cfg, ok := c.loadConfig(root)
	if !ok {
		return exitError
	}
	opts := batch.OptionsFromConfig(cfg)
	opts.Write = *write
	if *modeName != "" {
		mode, err := formatter.ParseMode(*modeName)
		if err != nil {
			fmt.Fprintln(c.stderr, err)
			return exitUsage
		}
		opts.Format.Mode = mode
	}
	if *workers > 0 {
		opts.Workers = *workers
	}

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err == nil {
			logger = l
		}
	}
	defer logger.Sync() //nolint:errcheck
	opts.Logger = logger

	report, err := batch.Run(ctx, root, opts)
	if err != nil {
		fmt.Fprintln(c.stderr, err)
		return exitError
	}

	if *asJSON {
		if err := report.WriteJSON(c.stdout); err != nil {
			fmt.Fprintln(c.stderr, err)
			return exitError
		}
	} else {
		for _, f := range report.Failures() {
			if f.Status == batch.StatusUnstable {
				fmt.Fprintln(c.stderr, i18n.T(i18n.CliCheckFailed, f.Path))
				continue
			}
			source, _ := os.ReadFile(f.Path)
			c.reportError(f.Err(), f.Path, string(source))
		}
		fmt.Fprintln(c.stdout, i18n.T(i18n.CliBatchSummary, report.Total, report.OK, report.Failed, report.Skipped))
	}

	if report.Failed > 0 {
		return exitError
	}
	return exitOK
}

// ============================================================================
// tokens / ast
// ============================================================================

// cmdTokens 输出 token 序列
func (c *cli) cmdTokens(args []string) int {
	fs := c.newFlagSet("tokens")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(c.stderr, i18n.T(i18n.CliMissingFile))
		return exitUsage
	}
	filename := fs.Arg(0)
	source, ok := c.readInput(filename)
	if !ok {
		return exitError
	}

	l := lexer.New(source, displayName(filename))
	for _, tok := range l.ScanTokens() {
		fmt.Fprintf(c.stdout, "%s\n", tok)
	}

	if l.HasErrors() {
		r := jerrors.NewReporter(c.stderr)
		r.SetSource(displayName(filename), source)
		for _, e := range l.Errors() {
			r.ReportSimple(displayName(filename), e.Pos.Line, e.Pos.Column, e.Message)
		}
		return exitError
	}
	return exitOK
}

// cmdAST 输出语法树
func (c *cli) cmdAST(args []string) int {
	fs := c.newFlagSet("ast")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(c.stderr, i18n.T(i18n.CliMissingFile))
		return exitUsage
	}
	filename := fs.Arg(0)
	source, ok := c.readInput(filename)
	if !ok {
		return exitError
	}

	unit, err := formatter.Parse(source, displayName(filename))
	if err != nil {
		c.reportError(err, filename, source)
		return exitError
	}
	fmt.Fprintln(c.stdout, ast.Dump(unit))
	return exitOK
}
