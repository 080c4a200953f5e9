package token

import "fmt"

// ============================================================================
// Token 类型定义
// ============================================================================
//
// TokenType 使用 iota 自动编号，按类别分组：
// 1. 特殊标记（ILLEGAL, EOF）
// 2. 字面量（标识符、整数、浮点、字符、字符串）
// 3. 运算符（算术、比较、逻辑、位运算、赋值）
// 4. 分隔符（括号、逗号、分号等）
// 5. 关键字（Java 保留字以及 true/false/null）
//
// 注意：词法器只产出单个 '>'。'>>'、'>>>'、'>=' 等由语法分析器根据相邻位置
// 组合，这样泛型的 List<List<String>> 不需要回退拆分 token。
//
// ============================================================================

// TokenType 表示 Token 的类型
type TokenType int

const (
	// ----------------------------------------------------------
	// 特殊标记
	// ----------------------------------------------------------
	ILLEGAL TokenType = iota // 非法字符
	EOF                      // 文件结束

	// ----------------------------------------------------------
	// 字面量
	// ----------------------------------------------------------
	IDENT  // 标识符
	INT    // 整数字面量 (含 long 后缀)
	FLOAT  // 浮点数字面量 (含 f/d 后缀)
	CHAR   // 字符字面量 'a'
	STRING // 字符串字面量 "abc"

	// ----------------------------------------------------------
	// 算术与赋值运算符
	// ----------------------------------------------------------
	PLUS           // +
	MINUS          // -
	STAR           // *
	SLASH          // /
	PERCENT        // %
	ASSIGN         // =
	PLUS_ASSIGN    // +=
	MINUS_ASSIGN   // -=
	STAR_ASSIGN    // *=
	SLASH_ASSIGN   // /=
	PERCENT_ASSIGN // %=
	AND_ASSIGN     // &=
	OR_ASSIGN      // |=
	XOR_ASSIGN     // ^=
	SHL_ASSIGN     // <<=
	INCREMENT      // ++
	DECREMENT      // --

	// ----------------------------------------------------------
	// 比较运算符
	// ----------------------------------------------------------
	EQ // ==
	NE // !=
	LT // <
	LE // <=
	GT // > (>= >> >>> 由语法分析器组合)

	// ----------------------------------------------------------
	// 逻辑运算符
	// ----------------------------------------------------------
	AND // &&
	OR  // ||
	NOT // !

	// ----------------------------------------------------------
	// 位运算符
	// ----------------------------------------------------------
	BIT_AND    // &
	BIT_OR     // |
	BIT_XOR    // ^
	BIT_NOT    // ~
	LEFT_SHIFT // <<

	// ----------------------------------------------------------
	// 分隔符
	// ----------------------------------------------------------
	LPAREN       // (
	RPAREN       // )
	LBRACE       // {
	RBRACE       // }
	LBRACKET     // [
	RBRACKET     // ]
	COMMA        // ,
	DOT          // .
	SEMICOLON    // ;
	COLON        // :
	QUESTION     // ?
	ARROW        // ->
	DOUBLE_COLON // ::
	AT           // @
	ELLIPSIS     // ...

	// ----------------------------------------------------------
	// 关键字 - 基本类型
	// ----------------------------------------------------------
	keyword_beg // 关键字起始标记（不是实际 token）
	BOOLEAN     // boolean
	BYTE        // byte
	CHAR_TYPE   // char
	SHORT       // short
	INT_TYPE    // int
	LONG        // long
	FLOAT_TYPE  // float
	DOUBLE      // double
	VOID        // void

	// ----------------------------------------------------------
	// 关键字 - 值
	// ----------------------------------------------------------
	TRUE  // true
	FALSE // false
	NULL  // null
	THIS  // this
	SUPER // super

	// ----------------------------------------------------------
	// 关键字 - 声明
	// ----------------------------------------------------------
	PACKAGE    // package
	IMPORT     // import
	CLASS      // class
	INTERFACE  // interface
	ENUM       // enum
	EXTENDS    // extends
	IMPLEMENTS // implements
	THROWS     // throws

	// ----------------------------------------------------------
	// 关键字 - 修饰符
	// ----------------------------------------------------------
	PUBLIC       // public
	PROTECTED    // protected
	PRIVATE      // private
	ABSTRACT     // abstract
	STATIC       // static
	FINAL        // final
	TRANSIENT    // transient
	VOLATILE     // volatile
	SYNCHRONIZED // synchronized
	NATIVE       // native
	STRICTFP     // strictfp

	// ----------------------------------------------------------
	// 关键字 - 控制流
	// ----------------------------------------------------------
	IF       // if
	ELSE     // else
	SWITCH   // switch
	CASE     // case
	DEFAULT  // default
	FOR      // for
	WHILE    // while
	DO       // do
	BREAK    // break
	CONTINUE // continue
	RETURN   // return
	ASSERT   // assert

	// ----------------------------------------------------------
	// 关键字 - 异常处理
	// ----------------------------------------------------------
	TRY     // try
	CATCH   // catch
	FINALLY // finally
	THROW   // throw

	// ----------------------------------------------------------
	// 关键字 - 其他
	// ----------------------------------------------------------
	NEW        // new
	INSTANCEOF // instanceof
	CONST      // const (保留，未使用)
	GOTO       // goto (保留，未使用)
	keyword_end // 关键字结束标记（不是实际 token）
)

// ============================================================================
// Token 类型名称映射
// ============================================================================

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:  "IDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	CHAR:   "CHAR",
	STRING: "STRING",

	PLUS:           "+",
	MINUS:          "-",
	STAR:           "*",
	SLASH:          "/",
	PERCENT:        "%",
	ASSIGN:         "=",
	PLUS_ASSIGN:    "+=",
	MINUS_ASSIGN:   "-=",
	STAR_ASSIGN:    "*=",
	SLASH_ASSIGN:   "/=",
	PERCENT_ASSIGN: "%=",
	AND_ASSIGN:     "&=",
	OR_ASSIGN:      "|=",
	XOR_ASSIGN:     "^=",
	SHL_ASSIGN:     "<<=",
	INCREMENT:      "++",
	DECREMENT:      "--",

	EQ: "==",
	NE: "!=",
	LT: "<",
	LE: "<=",
	GT: ">",

	AND: "&&",
	OR:  "||",
	NOT: "!",

	BIT_AND:    "&",
	BIT_OR:     "|",
	BIT_XOR:    "^",
	BIT_NOT:    "~",
	LEFT_SHIFT: "<<",

	LPAREN:       "(",
	RPAREN:       ")",
	LBRACE:       "{",
	RBRACE:       "}",
	LBRACKET:     "[",
	RBRACKET:     "]",
	COMMA:        ",",
	DOT:          ".",
	SEMICOLON:    ";",
	COLON:        ":",
	QUESTION:     "?",
	ARROW:        "->",
	DOUBLE_COLON: "::",
	AT:           "@",
	ELLIPSIS:     "...",
}

// keywords 关键字映射表，同时用于填充 tokenNames
var keywords = map[string]TokenType{
	// 基本类型
	"boolean": BOOLEAN,
	"byte":    BYTE,
	"char":    CHAR_TYPE,
	"short":   SHORT,
	"int":     INT_TYPE,
	"long":    LONG,
	"float":   FLOAT_TYPE,
	"double":  DOUBLE,
	"void":    VOID,

	// 值关键字
	"true":  TRUE,
	"false": FALSE,
	"null":  NULL,
	"this":  THIS,
	"super": SUPER,

	// 声明关键字
	"package":    PACKAGE,
	"import":     IMPORT,
	"class":      CLASS,
	"interface":  INTERFACE,
	"enum":       ENUM,
	"extends":    EXTENDS,
	"implements": IMPLEMENTS,
	"throws":     THROWS,

	// 修饰符
	"public":       PUBLIC,
	"protected":    PROTECTED,
	"private":      PRIVATE,
	"abstract":     ABSTRACT,
	"static":       STATIC,
	"final":        FINAL,
	"transient":    TRANSIENT,
	"volatile":     VOLATILE,
	"synchronized": SYNCHRONIZED,
	"native":       NATIVE,
	"strictfp":     STRICTFP,

	// 控制流关键字
	"if":       IF,
	"else":     ELSE,
	"switch":   SWITCH,
	"case":     CASE,
	"default":  DEFAULT,
	"for":      FOR,
	"while":    WHILE,
	"do":       DO,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"assert":   ASSERT,

	// 异常处理关键字
	"try":     TRY,
	"catch":   CATCH,
	"finally": FINALLY,
	"throw":   THROW,

	// 其他关键字
	"new":        NEW,
	"instanceof": INSTANCEOF,
	"const":      CONST,
	"goto":       GOTO,
}

func init() {
	for name, tok := range keywords {
		tokenNames[tok] = name
	}
}

// ============================================================================
// 关键字查找函数
// ============================================================================

// LookupIdent 查找标识符是否为关键字
//
// 最常见的短关键字（if, do, for, int, new, try）用 switch 直接匹配，
// 其余走 keywords 映射表。
//
// 返回:
//   - TokenType: 如果是关键字返回对应类型，否则返回 IDENT
func LookupIdent(ident string) TokenType {
	switch len(ident) {
	case 2:
		switch ident {
		case "if":
			return IF
		case "do":
			return DO
		}
	case 3:
		switch ident {
		case "for":
			return FOR
		case "int":
			return INT_TYPE
		case "new":
			return NEW
		case "try":
			return TRY
		}
	}

	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// IsKeyword 判断 TokenType 是否为关键字
func IsKeyword(t TokenType) bool {
	return t > keyword_beg && t < keyword_end
}

// IsPrimitive 判断 TokenType 是否为基本类型关键字（不含 void）
func IsPrimitive(t TokenType) bool {
	return t >= BOOLEAN && t <= DOUBLE
}

// IsModifier 判断 TokenType 是否为声明修饰符关键字
func IsModifier(t TokenType) bool {
	return t >= PUBLIC && t <= STRICTFP
}

// String 返回 TokenType 的字符串表示
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", t)
}

// ============================================================================
// Position - 源代码位置
// ============================================================================

// Position 表示源代码中的位置
type Position struct {
	Filename string // 文件名
	Line     int    // 行号 (从1开始)
	Column   int    // 列号 (从1开始)
	Offset   int    // 字节偏移量 (从0开始)
}

// String 返回位置的字符串表示，格式为 "filename:line:column"
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid 检查位置是否有效
func (p Position) IsValid() bool {
	return p.Line > 0
}

// ============================================================================
// Span - 源代码范围
// ============================================================================

// Span 表示源代码中的一个范围（开始到结束）
type Span struct {
	Start Position // 开始位置
	End   Position // 结束位置
}

// SpanFromToken 从 Token 创建覆盖整个字面量的 Span
func SpanFromToken(t Token) Span {
	endPos := t.Pos
	endPos.Column += len(t.Literal)
	endPos.Offset += len(t.Literal)
	return Span{Start: t.Pos, End: endPos}
}

// ============================================================================
// Token - 词法单元
// ============================================================================

// Token 表示一个词法单元
//
// Literal 保存原始源码文本。数字、字符、字符串字面量不做求值，
// 反解析时按原样输出，保证 0x1F、1_000L、"A" 等写法不被改写。
type Token struct {
	Type    TokenType // Token 类型
	Literal string    // 原始字面量
	Pos     Position  // 位置信息
}

// End 返回紧跟 Token 之后的字节偏移
func (t Token) End() int {
	return t.Pos.Offset + len(t.Literal)
}

// String 返回 Token 的字符串表示（用于调试）
func (t Token) String() string {
	switch t.Type {
	case IDENT, INT, FLOAT, CHAR, STRING:
		return fmt.Sprintf("%s(%s) at %s", t.Type, t.Literal, t.Pos)
	default:
		return fmt.Sprintf("%s at %s", t.Type, t.Pos)
	}
}

// New 创建一个新的 Token
func New(tokenType TokenType, literal string, pos Position) Token {
	return Token{
		Type:    tokenType,
		Literal: literal,
		Pos:     pos,
	}
}
