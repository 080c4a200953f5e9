// Package errors 把解析和反解析错误渲染成带错误码、源码摘录和标注的诊断信息
package errors

// ============================================================================
// 错误级别
// ============================================================================

// Level 错误级别
type Level int

const (
	LevelError   Level = iota // 错误
	LevelWarning              // 警告
	LevelNote                 // 提示
	LevelHelp                 // 帮助
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelNote:
		return "note"
	case LevelHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ============================================================================
// 语法错误码 (E 开头)
// ============================================================================

const (
	E0001 = "E0001" // 语法错误
	E0002 = "E0002" // 意外的字符
	E0003 = "E0003" // 未闭合的字符串或字符字面量
	E0004 = "E0004" // 未闭合的注释
	E0005 = "E0005" // 无效的数字
	E0006 = "E0006" // 期望的 token
	E0007 = "E0007" // 意外的 token
)

// ============================================================================
// 反解析错误码 (U 开头)
// ============================================================================

const (
	U0001 = "U0001" // 不支持的语法结构
	U0002 = "U0002" // 语法树不符合输入约定
)

// codeDescriptions 错误码的简短说明
var codeDescriptions = map[string]string{
	E0001: "syntax error",
	E0002: "unexpected character",
	E0003: "unterminated literal",
	E0004: "unterminated comment",
	E0005: "invalid number",
	E0006: "expected token",
	E0007: "unexpected token",
	U0001: "unsupported construct",
	U0002: "malformed syntax tree",
}

// Describe 返回错误码的简短说明
func Describe(code string) string {
	if d, ok := codeDescriptions[code]; ok {
		return d
	}
	return "unknown error"
}

// IsSyntax 是否为语法错误码
func IsSyntax(code string) bool {
	return len(code) == 5 && code[0] == 'E'
}
