package lsp

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugEnv 打开调试日志的环境变量
const DebugEnv = "JAVAMIN_LSP_DEBUG"

// DebugEnabled 环境变量是否打开了调试日志
func DebugEnabled() bool {
	switch os.Getenv(DebugEnv) {
	case "1", "true", "on":
		return true
	}
	return false
}

// NewLogger 创建服务器日志
//
// 标准输出被协议占用，日志只写到 logPath 或标准错误。
// 未打开调试时只记录错误。
func NewLogger(logPath string, debug bool) (*zap.Logger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		cfg.Sampling = nil
	}

	cfg.OutputPaths = []string{"stderr"}
	if logPath != "" && debug {
		cfg.OutputPaths = []string{logPath}
	}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Named("javamin-ls"), nil
}
