package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/tangzhangming/javamin/internal/config"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/lsp"
)

// stdio 把标准输入输出组合成一个连接
type stdio struct {
	io.Reader
	io.Writer
}

func (stdio) Close() error {
	return nil
}

func main() {
	// 解析命令行参数
	showVersion := flag.Bool("version", false, "print version information")
	logFile := flag.String("log", "", "debug log file (requires "+lsp.DebugEnv+"=1)")
	configPath := flag.String("config", "", "javamin.toml to use")
	lang := flag.String("lang", "", "message language: en or zh")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, i18n.T(i18n.CliServerUsage))
	}
	flag.Parse()

	if *lang != "" {
		l, _ := i18n.ParseLanguage(*lang)
		i18n.SetLanguage(l)
	}

	if *showVersion {
		fmt.Printf("%s %s\n", lsp.ServerName, lsp.ServerVersion)
		os.Exit(0)
	}

	cfg, path, err := config.Resolve(*configPath, ".")
	if err != nil {
		fmt.Fprintln(os.Stderr, i18n.T(i18n.CliConfigFailed, path, err))
		os.Exit(1)
	}

	logger, err := lsp.NewLogger(*logFile, lsp.DebugEnabled())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// 创建并启动 LSP 服务器
	server := lsp.NewServer(logger, cfg.FormatOptions())
	if err := server.Serve(ctx, stdio{os.Stdin, os.Stdout}); err != nil && err != context.Canceled {
		logger.Sugar().Errorf("server error: %v", err)
		os.Exit(1)
	}
}
