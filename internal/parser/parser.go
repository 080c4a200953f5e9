// Package parser 把 Java 源码解析为 ast.CompilationUnit
//
// 解析器是手写的递归下降 + Pratt 表达式解析器，覆盖类、接口、方法、字段、
// 泛型以及 Java 8 之前的全部语句和表达式。lambda、方法引用、类型注解等
// 也会被解析成节点，是否支持输出由反解析器决定。
package parser

import (
	"fmt"

	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/lexer"
	"github.com/tangzhangming/javamin/internal/token"
)

// Parser 语法分析器
type Parser struct {
	tokens    []token.Token
	current   int
	errors    []Error
	filename  string
	panicMode bool // 错误恢复模式标志，用于避免级联报错
	exprDepth int  // 表达式解析深度，防止栈溢出
}

// maxExprDepth 最大表达式嵌套深度，防止栈溢出
const maxExprDepth = 200

// maxParseErrors 最大错误数量限制，防止错误爆炸
const maxParseErrors = 50

// Error 语法分析错误
type Error struct {
	Pos     token.Position
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// New 创建一个新的语法分析器
//
// 词法错误会被并入语法错误列表。
func New(source, filename string) *Parser {
	l := lexer.New(source, filename)
	tokens := l.ScanTokens()

	p := &Parser{
		tokens:   tokens,
		filename: filename,
	}
	for _, e := range l.Errors() {
		p.errors = append(p.errors, Error{Pos: e.Pos, Message: e.Message})
	}
	return p
}

// Parse 解析整个源文件
func (p *Parser) Parse() *ast.CompilationUnit {
	unit := &ast.CompilationUnit{Start: p.peek().Pos}

	// package 之前可能有注解
	start := p.peek().Pos
	mods := p.parseModifiers()

	if p.check(token.PACKAGE) {
		p.panicMode = false
		pkg := p.parsePackage(start, mods)
		mods = nil
		if p.panicMode {
			p.synchronize()
		} else {
			unit.Package = pkg
		}
	} else if mods.IsEmpty() {
		mods = nil
	}

	for mods == nil && p.check(token.IMPORT) {
		p.panicMode = false
		imp := p.parseImport()
		if p.panicMode {
			p.synchronize()
		} else {
			unit.Imports = append(unit.Imports, imp)
		}
	}

	for !p.isAtEnd() {
		p.panicMode = false

		if mods == nil {
			if p.match(token.SEMICOLON) {
				continue
			}
			start = p.peek().Pos
			mods = p.parseModifiers()
		}

		decl := p.parseTypeDecl(start, mods)
		mods = nil
		if p.panicMode {
			p.synchronize()
			continue
		}
		if decl != nil {
			unit.Types = append(unit.Types, decl)
		}
	}

	return unit
}

// Errors 返回所有词法和语法错误
func (p *Parser) Errors() []Error {
	return p.errors
}

// HasErrors 检查是否有错误
func (p *Parser) HasErrors() bool {
	return len(p.errors) > 0
}

// Tokens 返回词法分析得到的 token 序列（含 EOF）
func (p *Parser) Tokens() []token.Token {
	return p.tokens
}

// ============================================================================
// 顶层声明
// ============================================================================

func (p *Parser) parsePackage(start token.Position, mods *ast.Modifiers) *ast.PackageDecl {
	p.advance() // package
	pkg := &ast.PackageDecl{Start: start, Name: p.parseQualifiedName()}
	if mods != nil {
		pkg.Annotations = mods.Annotations
		if mods.Flags != 0 {
			p.error(i18n.T(i18n.ErrUnexpectedToken, "modifier"))
		}
	}
	p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
	return pkg
}

// parseImport import [static] a.b.C[.*];
func (p *Parser) parseImport() *ast.Import {
	imp := &ast.Import{Start: p.advance().Pos}
	imp.Static = p.match(token.STATIC)

	tok := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
	var name ast.Expr = &ast.Ident{Start: tok.Pos, Name: tok.Literal}
	for p.match(token.DOT) {
		if p.check(token.STAR) {
			p.advance()
			name = &ast.FieldAccess{Start: imp.Start, X: name, Name: "*"}
			break
		}
		tok = p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
		name = &ast.FieldAccess{Start: name.Pos(), X: name, Name: tok.Literal}
	}
	imp.Name = name

	p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
	return imp
}

// parseQualifiedName a.b.c
func (p *Parser) parseQualifiedName() ast.Expr {
	tok := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
	var name ast.Expr = &ast.Ident{Start: tok.Pos, Name: tok.Literal}
	for p.check(token.DOT) && p.lookAhead(1).Type == token.IDENT {
		p.advance()
		tok = p.advance()
		name = &ast.FieldAccess{Start: name.Pos(), X: name, Name: tok.Literal}
	}
	return name
}

// ============================================================================
// 辅助方法
// ============================================================================

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == token.EOF
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) lookAhead(n int) token.Token {
	if p.current+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+n]
}

// tokenAt 按绝对下标取 token，越界返回 EOF
func (p *Parser) tokenAt(i int) token.Token {
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(t token.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == t
}

func (p *Parser) checkAny(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			return true
		}
	}
	return false
}

func (p *Parser) match(types ...token.TokenType) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(t token.TokenType, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	p.error(message)
	p.panicMode = true
	return token.Token{Type: token.ILLEGAL, Pos: p.peek().Pos}
}

// adjacent 判断第 i 个 token 是否紧贴在第 i-1 个 token 之后（中间没有空白）
func (p *Parser) adjacent(i int) bool {
	if i <= 0 || i >= len(p.tokens) {
		return false
	}
	return p.tokens[i-1].End() == p.tokens[i].Pos.Offset
}

func (p *Parser) error(message string) {
	if p.panicMode {
		return
	}

	pos := p.peek().Pos

	// 避免在同一位置重复报错
	if len(p.errors) > 0 {
		last := p.errors[len(p.errors)-1]
		if last.Pos.Line == pos.Line && last.Pos.Column == pos.Column {
			return
		}
	}

	if len(p.errors) >= maxParseErrors {
		p.errors = append(p.errors, Error{Pos: pos, Message: i18n.T(i18n.ErrTooManyErrors)})
		p.current = len(p.tokens) - 1
		p.panicMode = true
		return
	}

	p.errors = append(p.errors, Error{Pos: pos, Message: message})
}

// synchronize 跳到下一个安全点（分号、右大括号或新语句/声明的开头）
func (p *Parser) synchronize() {
	p.panicMode = false
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON || p.previous().Type == token.RBRACE {
			return
		}

		switch p.peek().Type {
		case token.CLASS, token.INTERFACE, token.ENUM,
			token.ABSTRACT, token.FINAL, token.PUBLIC, token.PROTECTED, token.PRIVATE, token.STATIC,
			token.IF, token.FOR, token.WHILE, token.DO, token.SWITCH,
			token.RETURN, token.TRY, token.THROW, token.BREAK, token.CONTINUE, token.IMPORT:
			return
		case token.RBRACE:
			return
		}

		p.advance()
	}
}
