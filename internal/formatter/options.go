package formatter

import (
	"strings"

	"github.com/tangzhangming/javamin/internal/unparse"
)

// Options 格式化选项
type Options struct {
	Mode Mode // 输出模式

	// 缩进设置，只影响美化模式
	IndentStyle string // "tabs" 或 "spaces"
	IndentSize  int    // 空格数（当使用 spaces 时）

	// 其他
	RemoveTrailingSpace bool // 移除行尾空格
	EnsureNewlineAtEOF  bool // 确保文件末尾有换行符，最小模式忽略
}

// DefaultOptions 返回默认格式化选项（美化模式 + 制表符缩进）
func DefaultOptions() *Options {
	return &Options{
		Mode:                ModePretty,
		IndentStyle:         "tabs",
		IndentSize:          4,
		RemoveTrailingSpace: true,
		EnsureNewlineAtEOF:  true,
	}
}

// IndentString 返回一级缩进
func (o *Options) IndentString() string {
	if o == nil || o.IndentStyle != "spaces" {
		return unparse.DefaultIndent
	}
	size := o.IndentSize
	if size <= 0 {
		size = 4
	}
	return strings.Repeat(" ", size)
}

func (o *Options) clone() *Options {
	if o == nil {
		return DefaultOptions()
	}
	c := *o
	return &c
}
