package unparse

import "strings"

// Emitter 最小 token 输出器
//
// Emitter 只记住上一个 token 是单词还是符号：两个单词之间必须有空格，
// 符号与其他 token 之间通常不需要。两个相邻符号如果会被词法器合并成
// 另一个运算符（a - -b 写成 a--b），中间也补一个空格。
type Emitter struct {
	buf      strings.Builder
	lastWord bool
	last     string
}

// Word 输出标识符、关键字或字面量
func (e *Emitter) Word(text string) {
	if e.lastWord {
		e.buf.WriteByte(' ')
	}
	e.buf.WriteString(text)
	e.lastWord = true
	e.last = text
}

// Symbol 输出标点或运算符
func (e *Emitter) Symbol(text string) {
	if !e.lastWord && mergesWith(e.last, text) {
		e.buf.WriteByte(' ')
	}
	e.buf.WriteString(text)
	e.lastWord = false
	e.last = text
}

// String 返回已输出的文本
func (e *Emitter) String() string {
	return e.buf.String()
}

// Len 返回已输出的字节数
func (e *Emitter) Len() int {
	return e.buf.Len()
}
