// Package config 读写 javamin.toml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/tangzhangming/javamin/internal/formatter"
)

// 常量定义
const (
	FileName = "javamin.toml" // 配置文件名
)

// Config 项目配置
type Config struct {
	Format FormatConfig `toml:"format"`
	Batch  BatchConfig  `toml:"batch"`
}

// FormatConfig [format] 段
type FormatConfig struct {
	// Mode 输出模式：minimal 或 pretty
	Mode string `toml:"mode"`

	// IndentStyle 缩进方式：tabs 或 spaces
	IndentStyle string `toml:"indent_style"`

	// IndentSize 使用空格缩进时每级的空格数
	IndentSize int `toml:"indent_size"`

	// NewlineAtEOF 美化输出末尾是否保留换行
	NewlineAtEOF bool `toml:"newline_at_eof"`
}

// BatchConfig [batch] 段
type BatchConfig struct {
	Extensions       []string `toml:"extensions"`
	Exclude          []string `toml:"exclude"`
	Workers          int      `toml:"workers"`
	CheckIdempotence bool     `toml:"check_idempotence"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Format: FormatConfig{
			Mode:         "pretty",
			IndentStyle:  "tabs",
			IndentSize:   4,
			NewlineAtEOF: true,
		},
		Batch: BatchConfig{
			Extensions:       []string{".java"},
			Exclude:          []string{".git", "build", "target"},
			Workers:          4,
			CheckIdempotence: true,
		},
	}
}

// Load 从文件加载配置，缺省的字段取默认值
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate 检查取值范围
func (c *Config) Validate() error {
	if _, err := formatter.ParseMode(c.Format.Mode); err != nil {
		return err
	}
	switch c.Format.IndentStyle {
	case "tabs", "spaces":
	default:
		return fmt.Errorf("indent_style must be \"tabs\" or \"spaces\", got %q", c.Format.IndentStyle)
	}
	if c.Format.IndentSize < 0 {
		return fmt.Errorf("indent_size must not be negative")
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("workers must not be negative")
	}
	return nil
}

// Save 保存配置到文件
func (c *Config) Save(path string) error {
	// 生成带注释的配置文件内容
	content, err := generateConfigWithComments(c)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateConfigWithComments 在 go-toml 的输出前面加上说明
func generateConfigWithComments(c *Config) (string, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode config: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# javamin 配置文件\n")
	sb.WriteString("# format.mode: minimal | pretty\n")
	sb.WriteString("# format.indent_style: tabs | spaces\n\n")
	sb.Write(data)
	return sb.String(), nil
}

// FormatOptions 转换为格式化选项
func (c *Config) FormatOptions() *formatter.Options {
	opts := formatter.DefaultOptions()
	if mode, err := formatter.ParseMode(c.Format.Mode); err == nil {
		opts.Mode = mode
	}
	if c.Format.IndentStyle != "" {
		opts.IndentStyle = c.Format.IndentStyle
	}
	if c.Format.IndentSize > 0 {
		opts.IndentSize = c.Format.IndentSize
	}
	opts.EnsureNewlineAtEOF = c.Format.NewlineAtEOF
	return opts
}

// Find 从指定路径向上查找配置文件
// 返回配置文件的完整路径，如果找不到则返回空字符串
func Find(startPath string) string {
	// 如果是文件，从其所在目录开始
	info, err := os.Stat(startPath)
	if err != nil {
		return ""
	}

	var dir string
	if info.IsDir() {
		dir = startPath
	} else {
		dir = filepath.Dir(startPath)
	}

	// 转换为绝对路径
	dir, err = filepath.Abs(dir)
	if err != nil {
		return ""
	}

	// 向上查找
	for {
		configPath := filepath.Join(dir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到达根目录
			return ""
		}
		dir = parent
	}
}

// Resolve 加载配置：explicit 非空时读取该文件，否则从 startPath 向上查找，
// 都没有时返回默认配置
func Resolve(explicit, startPath string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = Find(startPath)
	}
	if path == "" {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}
