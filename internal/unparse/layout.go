package unparse

import "strings"

// layout 决定 token 之间的空白
//
// 遍历顺序对两种模式完全相同，walker 只通过 layout 输出文本。
type layout interface {
	word(s string)     // 标识符、关键字、字面量
	symbol(s string)   // 标点，不加额外空白
	prefix(s string)   // 前缀一元运算符
	operator(s string) // 二元运算符、'='、'?'、':'，美化模式两侧加空格
	comma()
	space() // 美化模式下的一个空格，例如 if 与 '(' 之间
	openBlock()
	closeBlock()
	newline()
	blankLine()
	indent()
	dedent()
	String() string
}

// ============================================================================
// 最小模式
// ============================================================================

// minimalLayout 全部交给 Emitter，换行与缩进都是空操作
type minimalLayout struct {
	e Emitter
}

func (l *minimalLayout) word(s string)     { l.e.Word(s) }
func (l *minimalLayout) symbol(s string)   { l.e.Symbol(s) }
func (l *minimalLayout) prefix(s string)   { l.e.Symbol(s) }
func (l *minimalLayout) operator(s string) { l.e.Symbol(s) }
func (l *minimalLayout) comma()            { l.e.Symbol(",") }
func (l *minimalLayout) space()            {}
func (l *minimalLayout) openBlock()        { l.e.Symbol("{") }
func (l *minimalLayout) closeBlock()       { l.e.Symbol("}") }
func (l *minimalLayout) newline()          {}
func (l *minimalLayout) blankLine()        {}
func (l *minimalLayout) indent()           {}
func (l *minimalLayout) dedent()           {}
func (l *minimalLayout) String() string    { return l.e.String() }

// ============================================================================
// 美化模式
// ============================================================================

// prettyLayout Allman 风格：大括号独占一行，每条语句、每个成员一行
type prettyLayout struct {
	buf        strings.Builder
	indentStr  string
	depth      int
	lineStart  bool // 当前行还没有写入任何 token
	afterBrace bool // 刚写完 '}'，下一个 token 通常另起一行
	blank      bool // 上一行是空行
	lastWord   bool
	last       string
}

func newPrettyLayout(indent string) *prettyLayout {
	return &prettyLayout{indentStr: indent, lineStart: true, blank: true}
}

// spaceBeforeWord 这些符号后面跟单词时留一个空格：List<String> x、int[] a、f() throws E
var spaceBeforeWord = map[string]bool{")": true, "]": true, ">": true, "...": true}

// joinsBrace '}' 后面紧跟这些符号时不换行：});、}.run()
var joinsBrace = map[string]bool{";": true, ")": true, ",": true, ".": true}

func (l *prettyLayout) begin(s string, isWord bool) {
	if l.afterBrace {
		l.afterBrace = false
		if isWord || !joinsBrace[s] {
			l.newline()
		}
	}
	if l.lineStart {
		l.writeIndent()
		l.lineStart = false
		return
	}
	switch {
	case isWord && (l.lastWord || spaceBeforeWord[l.last]):
		l.write(" ")
	case !isWord && !l.lastWord && mergesWith(l.last, s):
		l.write(" ")
	}
}

func (l *prettyLayout) word(s string) {
	l.begin(s, true)
	l.write(s)
	l.lastWord, l.last = true, s
}

func (l *prettyLayout) symbol(s string) {
	l.begin(s, false)
	l.write(s)
	l.lastWord, l.last = false, s
}

// prefix return -x、case -1：单词后面的前缀运算符需要空格
func (l *prettyLayout) prefix(s string) {
	if l.lastWord && !l.lineStart && !l.afterBrace {
		l.write(" ")
		l.lastWord, l.last = false, ""
	}
	l.symbol(s)
}

func (l *prettyLayout) operator(s string) {
	l.space()
	l.symbol(s)
	l.space()
}

func (l *prettyLayout) comma() {
	l.symbol(",")
	l.space()
}

func (l *prettyLayout) space() {
	if l.lineStart || l.afterBrace || l.last == "" {
		return
	}
	l.write(" ")
	l.lastWord, l.last = false, ""
}

func (l *prettyLayout) openBlock() {
	l.afterBrace = false
	l.newline()
	l.writeIndent()
	l.write("{")
	l.lineStart = false
	l.last, l.lastWord = "{", false
	l.newline()
	l.depth++
}

func (l *prettyLayout) closeBlock() {
	l.depth--
	l.afterBrace = false
	l.newline()
	l.writeIndent()
	l.write("}")
	l.lineStart = false
	l.last, l.lastWord = "}", false
	l.afterBrace = true
}

func (l *prettyLayout) newline() {
	l.afterBrace = false
	if l.lineStart {
		return
	}
	l.write("\n")
	l.lineStart = true
	l.blank = false
}

// blankLine 在声明之间留一个空行，连续调用只留一个
func (l *prettyLayout) blankLine() {
	l.newline()
	if l.blank {
		return
	}
	l.write("\n")
	l.blank = true
}

func (l *prettyLayout) indent() { l.depth++ }
func (l *prettyLayout) dedent() { l.depth-- }

func (l *prettyLayout) String() string { return l.buf.String() }

func (l *prettyLayout) writeIndent() {
	l.buf.WriteString(strings.Repeat(l.indentStr, l.depth))
}

func (l *prettyLayout) write(s string) {
	l.buf.WriteString(s)
}
