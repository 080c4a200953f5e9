package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/token"
)

// ============================================================================
// Lexer - 词法分析器
// ============================================================================
//
// 词法分析器负责将 Java 源代码字符串转换为 Token 序列。
//
// 约定：
// 1. 注释与空白直接丢弃，不产生 Token
// 2. 字面量保留原始文本（Literal），不做求值
// 3. '>' 总是单独成一个 Token，由语法分析器按相邻位置组合成 >> >>> >= >>= >>>=
//
// ============================================================================

// Lexer 词法分析器结构体
type Lexer struct {
	source   string        // 源代码字符串
	filename string        // 源文件名（用于错误报告）
	tokens   []token.Token // 已扫描的 Token 列表

	start       int // 当前 Token 的起始位置（字节偏移）
	current     int // 当前扫描位置（字节偏移）
	line        int // 当前行号（从1开始）
	column      int // 当前列号（从1开始）
	startLine   int // 当前 Token 起始行号
	startColumn int // 当前 Token 起始列号

	errors []Error // 词法错误列表
}

// Error 表示词法分析错误
type Error struct {
	Pos     token.Position // 错误位置
	Message string         // 错误信息
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// ============================================================================
// 构造函数
// ============================================================================

// New 创建一个新的词法分析器
//
// 参数:
//   - source: 源代码字符串
//   - filename: 源文件名（用于错误报告）
func New(source, filename string) *Lexer {
	// 经验值：平均每 5 个字符产生一个 token
	estimatedTokens := len(source) / 5
	if estimatedTokens < 16 {
		estimatedTokens = 16
	}

	return &Lexer{
		source:   source,
		filename: filename,
		tokens:   make([]token.Token, 0, estimatedTokens),
		line:     1,
		column:   1,
	}
}

// ============================================================================
// 公共方法
// ============================================================================

// ScanTokens 扫描所有 tokens
//
// 最后一个 Token 总是 EOF。
func (l *Lexer) ScanTokens() []token.Token {
	for !l.isAtEnd() {
		l.start = l.current
		l.startLine = l.line
		l.startColumn = l.column
		l.scanToken()
	}

	l.start = l.current
	l.startLine = l.line
	l.startColumn = l.column
	l.tokens = append(l.tokens, token.Token{
		Type: token.EOF,
		Pos:  l.currentPos(),
	})

	return l.tokens
}

// Errors 返回所有词法错误
func (l *Lexer) Errors() []Error {
	return l.errors
}

// HasErrors 检查是否有错误
func (l *Lexer) HasErrors() bool {
	return len(l.errors) > 0
}

// ============================================================================
// 核心扫描逻辑
// ============================================================================

// scanToken 扫描单个 token
func (l *Lexer) scanToken() {
	ch := l.advance()

	switch ch {

	// ----------------------------------------------------------
	// 空白字符
	// ----------------------------------------------------------
	case ' ', '\t', '\r', '\f':
		l.skipWhitespace()

	case '\n':
		l.newLine()
		l.skipWhitespace()

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	case '(':
		l.addToken(token.LPAREN)
	case ')':
		l.addToken(token.RPAREN)
	case '{':
		l.addToken(token.LBRACE)
	case '}':
		l.addToken(token.RBRACE)
	case '[':
		l.addToken(token.LBRACKET)
	case ']':
		l.addToken(token.RBRACKET)
	case ',':
		l.addToken(token.COMMA)
	case ';':
		l.addToken(token.SEMICOLON)
	case '@':
		l.addToken(token.AT)
	case '?':
		l.addToken(token.QUESTION)
	case '~':
		l.addToken(token.BIT_NOT)

	case '.':
		// . 或 ... 或 .5 这样的浮点数
		if isDigit(l.peek()) {
			l.number()
		} else if l.peekByte() == '.' && l.peekNextByte() == '.' {
			l.advance()
			l.advance()
			l.addToken(token.ELLIPSIS)
		} else {
			l.addToken(token.DOT)
		}

	case ':':
		if l.match(':') {
			l.addToken(token.DOUBLE_COLON)
		} else {
			l.addToken(token.COLON)
		}

	// ----------------------------------------------------------
	// 运算符
	// ----------------------------------------------------------
	case '=':
		if l.match('=') {
			l.addToken(token.EQ)
		} else {
			l.addToken(token.ASSIGN)
		}

	case '!':
		if l.match('=') {
			l.addToken(token.NE)
		} else {
			l.addToken(token.NOT)
		}

	case '<':
		if l.match('<') {
			if l.match('=') {
				l.addToken(token.SHL_ASSIGN)
			} else {
				l.addToken(token.LEFT_SHIFT)
			}
		} else if l.match('=') {
			l.addToken(token.LE)
		} else {
			l.addToken(token.LT)
		}

	case '>':
		l.addToken(token.GT)

	case '+':
		if l.match('+') {
			l.addToken(token.INCREMENT)
		} else if l.match('=') {
			l.addToken(token.PLUS_ASSIGN)
		} else {
			l.addToken(token.PLUS)
		}

	case '-':
		if l.match('-') {
			l.addToken(token.DECREMENT)
		} else if l.match('=') {
			l.addToken(token.MINUS_ASSIGN)
		} else if l.match('>') {
			l.addToken(token.ARROW)
		} else {
			l.addToken(token.MINUS)
		}

	case '*':
		if l.match('=') {
			l.addToken(token.STAR_ASSIGN)
		} else {
			l.addToken(token.STAR)
		}

	case '/':
		if l.match('/') {
			l.lineComment()
		} else if l.match('*') {
			l.blockComment()
		} else if l.match('=') {
			l.addToken(token.SLASH_ASSIGN)
		} else {
			l.addToken(token.SLASH)
		}

	case '%':
		if l.match('=') {
			l.addToken(token.PERCENT_ASSIGN)
		} else {
			l.addToken(token.PERCENT)
		}

	case '&':
		if l.match('&') {
			l.addToken(token.AND)
		} else if l.match('=') {
			l.addToken(token.AND_ASSIGN)
		} else {
			l.addToken(token.BIT_AND)
		}

	case '|':
		if l.match('|') {
			l.addToken(token.OR)
		} else if l.match('=') {
			l.addToken(token.OR_ASSIGN)
		} else {
			l.addToken(token.BIT_OR)
		}

	case '^':
		if l.match('=') {
			l.addToken(token.XOR_ASSIGN)
		} else {
			l.addToken(token.BIT_XOR)
		}

	// ----------------------------------------------------------
	// 字面量
	// ----------------------------------------------------------
	case '"':
		if l.peekByte() == '"' && l.peekNextByte() == '"' {
			l.textBlock()
		} else {
			l.string()
		}

	case '\'':
		l.char()

	default:
		if isDigit(ch) {
			l.number()
		} else if isJavaLetter(ch) {
			l.identifier()
		} else {
			l.error(i18n.T(i18n.ErrUnexpectedChar, ch))
		}
	}
}

// skipWhitespace 批量跳过连续空白（包括换行）
func (l *Lexer) skipWhitespace() {
	for !l.isAtEnd() {
		switch l.peekByte() {
		case ' ', '\t', '\r', '\f':
			l.current++
			l.column++
		case '\n':
			l.current++
			l.newLine()
		default:
			return
		}
	}
}

// ============================================================================
// 注释处理
// ============================================================================

// lineComment 处理单行注释 //，不消费结尾换行
func (l *Lexer) lineComment() {
	for !l.isAtEnd() && l.peekByte() != '\n' {
		l.advance()
	}
}

// blockComment 处理块注释 /* */ 和文档注释 /** */
//
// Java 的块注释不可嵌套，遇到第一个 */ 即结束。
func (l *Lexer) blockComment() {
	for !l.isAtEnd() {
		if l.peekByte() == '*' && l.peekNextByte() == '/' {
			l.advance()
			l.advance()
			return
		}
		if l.advance() == '\n' {
			l.newLine()
		}
	}
	l.error(i18n.T(i18n.ErrUnterminatedComment))
}

// ============================================================================
// 字符串与字符
// ============================================================================

// string 处理普通字符串字面量 "..."
//
// 只校验转义的合法性，Literal 保留引号和转义原文。
func (l *Lexer) string() {
	for !l.isAtEnd() {
		ch := l.peekByte()
		switch ch {
		case '"':
			l.advance()
			l.addToken(token.STRING)
			return
		case '\n':
			l.error(i18n.T(i18n.ErrUnterminatedString))
			return
		case '\\':
			l.advance()
			l.escape()
		default:
			l.advance()
		}
	}
	l.error(i18n.T(i18n.ErrUnterminatedString))
}

// textBlock 处理文本块 """ ... """
func (l *Lexer) textBlock() {
	l.advance()
	l.advance()
	for !l.isAtEnd() {
		if l.peekByte() == '"' && l.peekNextByte() == '"' &&
			l.current+2 < len(l.source) && l.source[l.current+2] == '"' {
			l.advance()
			l.advance()
			l.advance()
			l.addToken(token.STRING)
			return
		}
		ch := l.advance()
		switch ch {
		case '\n':
			l.newLine()
		case '\\':
			if !l.isAtEnd() {
				if l.advance() == '\n' {
					l.newLine()
				}
			}
		}
	}
	l.error(i18n.T(i18n.ErrUnterminatedString))
}

// char 处理字符字面量 'a' '\n' 'A'
func (l *Lexer) char() {
	if l.peekByte() == '\'' {
		l.advance()
		l.error(i18n.T(i18n.ErrEmptyChar))
		return
	}
	if l.isAtEnd() || l.peekByte() == '\n' {
		l.error(i18n.T(i18n.ErrUnterminatedChar))
		return
	}
	if l.advance() == '\\' {
		l.escape()
	}
	if !l.match('\'') {
		l.error(i18n.T(i18n.ErrUnterminatedChar))
		return
	}
	l.addToken(token.CHAR)
}

// escape 在读到反斜杠之后校验一个转义序列
func (l *Lexer) escape() {
	if l.isAtEnd() {
		return
	}
	ch := l.advance()
	switch ch {
	case 'b', 't', 'n', 'f', 'r', 's', '"', '\'', '\\':
	case 'u':
		for l.peekByte() == 'u' {
			l.advance()
		}
		for i := 0; i < 4 && isHexDigit(l.peek()); i++ {
			l.advance()
		}
	default:
		if ch >= '0' && ch <= '7' {
			// 八进制转义最多三位
			for i := 0; i < 2 && l.peekByte() >= '0' && l.peekByte() <= '7'; i++ {
				l.advance()
			}
			return
		}
		l.errors = append(l.errors, Error{
			Pos:     l.currentPos(),
			Message: i18n.T(i18n.ErrInvalidEscape, ch),
		})
	}
}

// ============================================================================
// 数字处理
// ============================================================================

// number 处理数字字面量
//
// 支持：
//   - 十进制、八进制 0755、十六进制 0x1F、二进制 0b1010
//   - 下划线分隔 1_000_000
//   - 后缀 L/l（long）、F/f、D/d（浮点）
//   - 小数和指数 1.5e-3，十六进制浮点 0x1.8p3
func (l *Lexer) number() {
	first := l.source[l.start]

	// ==========================================================
	// 十六进制 / 二进制
	// ==========================================================
	if first == '0' && (l.peekByte() == 'x' || l.peekByte() == 'X') {
		l.advance()
		digits := l.digits(isHexDigit)
		isFloat := false
		if l.peekByte() == '.' {
			isFloat = true
			l.advance()
			digits += l.digits(isHexDigit)
		}
		if digits == 0 {
			l.error(i18n.T(i18n.ErrInvalidHexNumber, l.source[l.start:l.current]))
			return
		}
		if l.peekByte() == 'p' || l.peekByte() == 'P' {
			isFloat = true
			if !l.exponent() {
				return
			}
		}
		l.finishNumber(isFloat)
		return
	}

	if first == '0' && (l.peekByte() == 'b' || l.peekByte() == 'B') {
		l.advance()
		if l.digits(func(r rune) bool { return r == '0' || r == '1' }) == 0 {
			l.error(i18n.T(i18n.ErrInvalidBinaryNumber, l.source[l.start:l.current]))
			return
		}
		l.finishNumber(false)
		return
	}

	// ==========================================================
	// 十进制（含以 . 开头的浮点数）
	// ==========================================================
	isFloat := first == '.'
	l.digits(isDigit)

	if !isFloat && l.peekByte() == '.' && !(l.peekNextByte() == '.') && !isJavaLetter(l.peekNextRune()) {
		// 1. 和 1.5 都是浮点数；1.. 与 1.foo 不是
		isFloat = true
		l.advance()
		l.digits(isDigit)
	}

	if l.peekByte() == 'e' || l.peekByte() == 'E' {
		isFloat = true
		if !l.exponent() {
			return
		}
	}

	l.finishNumber(isFloat)
}

// digits 读取一串满足 valid 的数字（允许下划线），返回数字个数
func (l *Lexer) digits(valid func(rune) bool) int {
	n := 0
	for {
		ch := l.peek()
		if valid(ch) {
			n++
		} else if ch != '_' {
			return n
		}
		l.advance()
	}
}

// exponent 读取指数部分 e+10 / p-3
func (l *Lexer) exponent() bool {
	l.advance()
	if l.peekByte() == '+' || l.peekByte() == '-' {
		l.advance()
	}
	if l.digits(isDigit) == 0 {
		l.error(i18n.T(i18n.ErrInvalidExponent))
		return false
	}
	return true
}

// finishNumber 处理类型后缀并生成 Token
func (l *Lexer) finishNumber(isFloat bool) {
	switch l.peekByte() {
	case 'l', 'L':
		if !isFloat {
			l.advance()
		}
	case 'f', 'F', 'd', 'D':
		l.advance()
		isFloat = true
	}

	if isFloat {
		l.addToken(token.FLOAT)
	} else {
		l.addToken(token.INT)
	}
}

// ============================================================================
// 标识符处理
// ============================================================================

// identifier 处理标识符和关键字
func (l *Lexer) identifier() {
	for isJavaLetterOrDigit(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.current]
	l.addToken(token.LookupIdent(text))
}

// ============================================================================
// 字符读取辅助
// ============================================================================

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

// advance 前进一个字符并返回它（ASCII 走快速路径）
func (l *Lexer) advance() rune {
	if l.current >= len(l.source) {
		return 0
	}

	b := l.source[l.current]
	if b < utf8.RuneSelf {
		l.current++
		l.column++
		return rune(b)
	}

	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	l.column++
	return r
}

// peek 查看当前字符但不前进
func (l *Lexer) peek() rune {
	if l.current >= len(l.source) {
		return 0
	}
	b := l.source[l.current]
	if b < utf8.RuneSelf {
		return rune(b)
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current:])
	return r
}

func (l *Lexer) peekByte() byte {
	if l.current >= len(l.source) {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNextByte() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

// peekNextRune 查看下一个字符（用于区分 1.5 与 1.foo）
func (l *Lexer) peekNextRune() rune {
	if l.current+1 >= len(l.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.current+1:])
	return r
}

// match 如果当前字符匹配则前进
func (l *Lexer) match(expected rune) bool {
	if l.isAtEnd() || l.peek() != expected {
		return false
	}
	l.advance()
	return true
}

// ============================================================================
// 位置追踪与 Token 生成
// ============================================================================

func (l *Lexer) newLine() {
	l.line++
	l.column = 1
}

// currentPos 当前 token 的起始位置
func (l *Lexer) currentPos() token.Position {
	return token.Position{
		Filename: l.filename,
		Line:     l.startLine,
		Column:   l.startColumn,
		Offset:   l.start,
	}
}

func (l *Lexer) addToken(tokenType token.TokenType) {
	l.tokens = append(l.tokens, token.Token{
		Type:    tokenType,
		Literal: l.source[l.start:l.current],
		Pos:     l.currentPos(),
	})
}

// error 记录一个词法错误，同时生成一个 ILLEGAL token
//
// 错误会被收集起来，不会中断扫描过程。
func (l *Lexer) error(message string) {
	l.errors = append(l.errors, Error{
		Pos:     l.currentPos(),
		Message: message,
	})
	l.addToken(token.ILLEGAL)
}

// ============================================================================
// 字符分类函数
// ============================================================================

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

// isJavaLetter 判断字符能否作为标识符开头（字母、_、$）
func isJavaLetter(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_' || ch == '$' ||
		(ch >= utf8.RuneSelf && unicode.IsLetter(ch))
}

func isJavaLetterOrDigit(ch rune) bool {
	return isJavaLetter(ch) || isDigit(ch) ||
		(ch >= utf8.RuneSelf && unicode.IsDigit(ch))
}
