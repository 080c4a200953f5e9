package parser

import (
	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/token"
)

// ============================================================================
// 语句解析
// ============================================================================

// parseBlock { stmts }
func (p *Parser) parseBlock() *ast.Block {
	lbrace := p.consume(token.LBRACE, i18n.T(i18n.ErrExpectedToken, "'{'"))
	block := &ast.Block{Start: lbrace.Pos, Stmts: []ast.Stmt{}}
	if p.panicMode {
		return block
	}

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		block.Stmts = append(block.Stmts, p.parseBlockStatement()...)
		if p.panicMode {
			p.synchronize()
		}
	}

	p.consume(token.RBRACE, i18n.T(i18n.ErrExpectedToken, "'}'"))
	return block
}

// parseBlockStatement 块内语句：局部类、局部变量声明或普通语句
//
// int a, b; 会产生两个 VarDecl，所以返回切片。
func (p *Parser) parseBlockStatement() []ast.Stmt {
	start := p.peek().Pos

	if p.checkAny(token.CLASS, token.INTERFACE, token.ENUM) {
		if decl := p.parseTypeDecl(start, nil); decl != nil {
			return []ast.Stmt{decl}
		}
		return nil
	}

	if p.startsModifiers() {
		mods := p.parseModifiers()
		if p.checkAny(token.CLASS, token.INTERFACE, token.ENUM) {
			if decl := p.parseTypeDecl(start, mods); decl != nil {
				return []ast.Stmt{decl}
			}
			return nil
		}
		return p.parseLocalVarDecl(start, mods, true)
	}

	if p.isLocalVarDecl() {
		return p.parseLocalVarDecl(start, nil, true)
	}

	return []ast.Stmt{p.parseStatement()}
}

// startsModifiers 当前 token 是否开始一组局部声明修饰符
func (p *Parser) startsModifiers() bool {
	tok := p.peek()
	switch {
	case tok.Type == token.AT:
		return true
	case tok.Type == token.SYNCHRONIZED:
		return p.lookAhead(1).Type != token.LPAREN
	case token.IsModifier(tok.Type):
		return true
	}
	return false
}

// parseLocalVarDecl 解析局部变量声明，withSemicolon 为 false 时用于 for 初始化
func (p *Parser) parseLocalVarDecl(start token.Position, mods *ast.Modifiers, withSemicolon bool) []ast.Stmt {
	typ := p.parseType()
	if p.panicMode {
		return nil
	}
	name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))

	var stmts []ast.Stmt
	for _, v := range p.parseDeclarators(start, mods, typ, name) {
		stmts = append(stmts, v)
	}
	if withSemicolon {
		p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
	}
	return stmts
}

// parseStatement 解析一条语句（不含声明）
func (p *Parser) parseStatement() ast.Stmt {
	tok := p.peek()

	switch tok.Type {
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		p.advance()
		return &ast.Empty{Start: tok.Pos}
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.DO:
		return p.parseDoWhileStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.TRY:
		return p.parseTryStmt()
	case token.SYNCHRONIZED:
		return p.parseSynchronizedStmt()
	case token.RETURN:
		p.advance()
		ret := &ast.Return{Start: tok.Pos}
		if !p.check(token.SEMICOLON) {
			ret.X = p.parseExpression()
		}
		p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
		return ret
	case token.THROW:
		p.advance()
		throw := &ast.Throw{Start: tok.Pos, X: p.parseExpression()}
		p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
		return throw
	case token.BREAK:
		p.advance()
		br := &ast.Break{Start: tok.Pos}
		if p.check(token.IDENT) {
			br.Label = p.advance().Literal
		}
		p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
		return br
	case token.CONTINUE:
		p.advance()
		cont := &ast.Continue{Start: tok.Pos}
		if p.check(token.IDENT) {
			cont.Label = p.advance().Literal
		}
		p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
		return cont
	case token.ASSERT:
		p.advance()
		as := &ast.Assert{Start: tok.Pos, Cond: p.parseExpression()}
		if p.match(token.COLON) {
			as.Detail = p.parseExpression()
		}
		p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
		return as
	case token.IDENT:
		if p.lookAhead(1).Type == token.COLON {
			p.advance()
			p.advance()
			return &ast.Labeled{Start: tok.Pos, Label: tok.Literal, Body: p.parseStatement()}
		}
	case token.ELSE, token.CASE, token.DEFAULT, token.CATCH, token.FINALLY:
		p.error(i18n.T(i18n.ErrExpectedStatement))
		p.panicMode = true
		return &ast.Empty{Start: tok.Pos}
	}

	stmt := &ast.ExprStmt{Start: tok.Pos, X: p.parseExpression()}
	p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
	return stmt
}

// parseParenExpr ( expr )，用于 if/while/switch/synchronized 的条件
//
// 括号本身不进入语法树。
func (p *Parser) parseParenExpr() ast.Expr {
	p.consume(token.LPAREN, i18n.T(i18n.ErrExpectedToken, "'('"))
	x := p.parseExpression()
	p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
	return x
}

func (p *Parser) parseIfStmt() *ast.If {
	stmt := &ast.If{Start: p.advance().Pos}
	stmt.Cond = p.parseParenExpr()
	stmt.Then = p.parseStatement()
	if p.match(token.ELSE) {
		stmt.Else = p.parseStatement()
	}
	return stmt
}

func (p *Parser) parseWhileStmt() *ast.While {
	stmt := &ast.While{Start: p.advance().Pos}
	stmt.Cond = p.parseParenExpr()
	stmt.Body = p.parseStatement()
	return stmt
}

func (p *Parser) parseDoWhileStmt() *ast.DoWhile {
	stmt := &ast.DoWhile{Start: p.advance().Pos}
	stmt.Body = p.parseStatement()
	p.consume(token.WHILE, i18n.T(i18n.ErrExpectedToken, "'while'"))
	stmt.Cond = p.parseParenExpr()
	p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
	return stmt
}

// parseForStmt 经典 for 或增强 for
func (p *Parser) parseForStmt() ast.Stmt {
	start := p.advance().Pos
	p.consume(token.LPAREN, i18n.T(i18n.ErrExpectedToken, "'('"))

	var init []ast.Stmt
	if !p.check(token.SEMICOLON) {
		declStart := p.peek().Pos
		var mods *ast.Modifiers
		if p.startsModifiers() {
			mods = p.parseModifiers()
		}
		if mods != nil || p.isLocalVarDecl() {
			init = p.parseLocalVarDecl(declStart, mods, false)

			// for (T x : xs)
			if p.match(token.COLON) {
				v, _ := init[0].(*ast.VarDecl)
				loop := &ast.ForEach{Start: start, Var: v}
				loop.X = p.parseExpression()
				p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
				loop.Body = p.parseStatement()
				return loop
			}
		} else {
			for _, es := range p.parseExprStmtList() {
				init = append(init, es)
			}
		}
	}
	p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))

	loop := &ast.For{Start: start, Init: init}
	if !p.check(token.SEMICOLON) {
		loop.Cond = p.parseExpression()
	}
	p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))

	if !p.check(token.RPAREN) {
		loop.Update = p.parseExprStmtList()
	}
	p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))

	loop.Body = p.parseStatement()
	return loop
}

// parseExprStmtList a, b, c（for 的初始化和更新部分）
func (p *Parser) parseExprStmtList() []*ast.ExprStmt {
	var list []*ast.ExprStmt
	for {
		start := p.peek().Pos
		list = append(list, &ast.ExprStmt{Start: start, X: p.parseExpression()})
		if p.panicMode || !p.match(token.COMMA) {
			return list
		}
	}
}

// parseSwitchStmt switch (tag) { case X: ... default: ... }
func (p *Parser) parseSwitchStmt() *ast.Switch {
	stmt := &ast.Switch{Start: p.advance().Pos}
	stmt.Tag = p.parseParenExpr()
	p.consume(token.LBRACE, i18n.T(i18n.ErrExpectedToken, "'{'"))
	if p.panicMode {
		return stmt
	}

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		c := &ast.Case{Start: p.peek().Pos, Body: []ast.Stmt{}}
		switch {
		case p.match(token.CASE):
			c.Expr = p.parsePrecedence(precTernary)
		case p.match(token.DEFAULT):
		default:
			p.error(i18n.T(i18n.ErrExpectedCaseDefault))
			p.panicMode = true
		}
		p.consume(token.COLON, i18n.T(i18n.ErrExpectedToken, "':'"))
		if p.panicMode {
			p.synchronize()
			continue
		}

		for !p.checkAny(token.CASE, token.DEFAULT, token.RBRACE) && !p.isAtEnd() {
			c.Body = append(c.Body, p.parseBlockStatement()...)
			if p.panicMode {
				p.synchronize()
			}
		}
		stmt.Cases = append(stmt.Cases, c)
	}

	p.consume(token.RBRACE, i18n.T(i18n.ErrExpectedToken, "'}'"))
	return stmt
}

// parseTryStmt try [(resources)] block {catch} [finally]
func (p *Parser) parseTryStmt() *ast.Try {
	stmt := &ast.Try{Start: p.advance().Pos}

	if p.match(token.LPAREN) {
		for !p.check(token.RPAREN) && !p.isAtEnd() && !p.panicMode {
			stmt.Resources = append(stmt.Resources, p.parseResource())
			if !p.match(token.SEMICOLON) {
				break
			}
		}
		p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
	}

	stmt.Body = p.parseBlock()

	for p.check(token.CATCH) {
		c := &ast.Catch{Start: p.advance().Pos}
		p.consume(token.LPAREN, i18n.T(i18n.ErrExpectedToken, "'('"))

		paramStart := p.peek().Pos
		mods := p.parseModifiers()
		typ := p.parseType()
		if p.check(token.BIT_OR) {
			union := &ast.UnionType{Start: typ.Pos(), Alternatives: []ast.Expr{typ}}
			for p.match(token.BIT_OR) {
				union.Alternatives = append(union.Alternatives, p.parseType())
			}
			typ = union
		}
		name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
		c.Param = &ast.VarDecl{Start: paramStart, Modifiers: mods, Type: typ, Name: name.Literal}

		p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
		c.Body = p.parseBlock()
		stmt.Catches = append(stmt.Catches, c)
		if p.panicMode {
			return stmt
		}
	}

	if p.match(token.FINALLY) {
		stmt.Finally = p.parseBlock()
	}

	if stmt.Catches == nil && stmt.Finally == nil && stmt.Resources == nil {
		p.error(i18n.T(i18n.ErrExpectedToken, "'catch' or 'finally'"))
		p.panicMode = true
	}
	return stmt
}

// parseResource try 资源：变量声明或已有变量的引用
func (p *Parser) parseResource() ast.Node {
	start := p.peek().Pos
	var mods *ast.Modifiers
	if p.startsModifiers() {
		mods = p.parseModifiers()
	}
	if mods != nil || p.isLocalVarDecl() {
		typ := p.parseType()
		name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
		v := &ast.VarDecl{Start: start, Modifiers: mods, Type: typ, Name: name.Literal}
		p.consume(token.ASSIGN, i18n.T(i18n.ErrExpectedToken, "'='"))
		v.Init = p.parseExpression()
		return v
	}
	return p.parseExpression()
}

func (p *Parser) parseSynchronizedStmt() *ast.Synchronized {
	stmt := &ast.Synchronized{Start: p.advance().Pos}
	stmt.Lock = p.parseParenExpr()
	stmt.Body = p.parseBlock()
	return stmt
}
