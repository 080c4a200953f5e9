package unparse

import (
	"fmt"

	"github.com/tangzhangming/javamin/internal/token"
)

// UnsupportedError 语法树中出现了反解析器不支持的结构
//
// 遇到这种错误时不会产生任何输出。
type UnsupportedError struct {
	Construct string         // 不支持的结构，例如 "labeled statement"、"operator Kind(3)"
	Pos       token.Position // 结构在源码中的位置，手工构造的树可能为空
}

func (e *UnsupportedError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: unsupported construct: %s", e.Pos, e.Construct)
	}
	return "unsupported construct: " + e.Construct
}

// ContractError 语法树违反了反解析器的输入约定
//
// 例如构造器出现在类体之外，或者必需的子节点为 nil。这是上游的缺陷，不可恢复。
type ContractError struct {
	Message string
	Pos     token.Position
}

func (e *ContractError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: malformed syntax tree: %s", e.Pos, e.Message)
	}
	return "malformed syntax tree: " + e.Message
}

// abort 遍历中止信号，只在包内通过 panic 传递，由 Unparse 恢复
type abort struct {
	err error
}

// unsupported 和 malformed 在 pos 无效时退回到外层节点的位置
func (u *Unparser) unsupported(construct string, pos token.Position) {
	if !pos.IsValid() {
		pos = u.at
	}
	panic(abort{&UnsupportedError{Construct: construct, Pos: pos}})
}

func (u *Unparser) malformed(pos token.Position, format string, args ...interface{}) {
	if !pos.IsValid() {
		pos = u.at
	}
	panic(abort{&ContractError{Message: fmt.Sprintf(format, args...), Pos: pos}})
}

// check 把辅助函数返回的错误转成中止信号
func (u *Unparser) check(err error) {
	if err != nil {
		panic(abort{err})
	}
}
