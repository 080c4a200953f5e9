package parser

import (
	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/token"
)

// ============================================================================
// 修饰符与注解
// ============================================================================

// parseModifiers 解析修饰符关键字和注解，总是返回非 nil
func (p *Parser) parseModifiers() *ast.Modifiers {
	mods := &ast.Modifiers{Start: p.peek().Pos}
	for {
		tok := p.peek()
		switch {
		case token.IsModifier(tok.Type):
			// synchronized ( 是语句而不是修饰符
			if tok.Type == token.SYNCHRONIZED && p.lookAhead(1).Type == token.LPAREN {
				return mods
			}
			p.advance()
			mods.Flags |= ast.FlagForKeyword(tok.Literal)
		case tok.Type == token.DEFAULT && p.lookAhead(1).Type != token.COLON:
			p.advance()
			mods.Flags |= ast.FlagDefault
		case tok.Type == token.AT && p.lookAhead(1).Type != token.INTERFACE:
			mods.Annotations = append(mods.Annotations, p.parseAnnotation())
			if p.panicMode {
				return mods
			}
		default:
			return mods
		}
	}
}

// parseAnnotation @Name 或 @Name(value) 或 @Name(k = v, ...)
func (p *Parser) parseAnnotation() *ast.Annotation {
	at := p.consume(token.AT, i18n.T(i18n.ErrExpectedToken, "'@'"))
	ann := &ast.Annotation{Start: at.Pos, Type: p.parseQualifiedName()}

	if !p.match(token.LPAREN) {
		return ann
	}
	if p.match(token.RPAREN) {
		ann.Args = []ast.Expr{}
		return ann
	}

	for {
		if p.check(token.IDENT) && p.lookAhead(1).Type == token.ASSIGN {
			name := p.advance()
			p.advance()
			ann.Args = append(ann.Args, &ast.Assign{
				Start: name.Pos,
				X:     &ast.Ident{Start: name.Pos, Name: name.Literal},
				Y:     p.parseElementValue(),
			})
		} else {
			ann.Args = append(ann.Args, p.parseElementValue())
		}
		if p.panicMode || !p.match(token.COMMA) {
			break
		}
	}

	p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
	return ann
}

// parseElementValue 注解参数值：注解、数组 {...} 或条件表达式
func (p *Parser) parseElementValue() ast.Expr {
	switch {
	case p.check(token.AT):
		return p.parseAnnotation()
	case p.check(token.LBRACE):
		return p.parseArrayInitializer(nil)
	default:
		return p.parsePrecedence(precTernary)
	}
}

// ============================================================================
// 类型声明
// ============================================================================

// parseTypeDecl 解析 class / interface 声明；enum 和注解类型报错
func (p *Parser) parseTypeDecl(start token.Position, mods *ast.Modifiers) *ast.ClassDecl {
	switch {
	case p.check(token.CLASS):
		return p.parseClassDecl(start, mods)
	case p.check(token.INTERFACE):
		return p.parseInterfaceDecl(start, mods)
	case p.check(token.ENUM):
		p.error(i18n.T(i18n.ErrEnumNotSupported))
		p.panicMode = true
		p.skipDeclaration()
		return nil
	case p.check(token.AT) && p.lookAhead(1).Type == token.INTERFACE:
		p.error(i18n.T(i18n.ErrAnnotationDeclaration))
		p.panicMode = true
		p.skipDeclaration()
		return nil
	default:
		p.error(i18n.T(i18n.ErrExpectedTypeDecl))
		p.panicMode = true
		return nil
	}
}

// skipDeclaration 跳过不支持的声明，直到它的类体结束
func (p *Parser) skipDeclaration() {
	for !p.isAtEnd() && !p.check(token.LBRACE) {
		p.advance()
	}
	depth := 0
	for !p.isAtEnd() {
		switch p.advance().Type {
		case token.LBRACE:
			depth++
		case token.RBRACE:
			depth--
			if depth == 0 {
				return
			}
		}
	}
}

func (p *Parser) parseClassDecl(start token.Position, mods *ast.Modifiers) *ast.ClassDecl {
	p.advance() // class
	name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))

	decl := &ast.ClassDecl{Start: start, Modifiers: mods, Name: name.Literal}
	if p.check(token.LT) {
		decl.TypeParams = p.parseTypeParameters()
	}
	if p.match(token.EXTENDS) {
		decl.Extends = p.parseType()
	}
	if p.match(token.IMPLEMENTS) {
		decl.Implements = p.parseTypeList()
	}
	if p.panicMode {
		return decl
	}

	decl.Members = p.parseClassBody(decl.Name)
	return decl
}

// parseInterfaceDecl 接口继承的父接口记在 Implements 中
func (p *Parser) parseInterfaceDecl(start token.Position, mods *ast.Modifiers) *ast.ClassDecl {
	p.advance() // interface
	name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))

	if mods == nil {
		mods = &ast.Modifiers{Start: start}
	}
	mods.Flags |= ast.FlagInterface

	decl := &ast.ClassDecl{Start: start, Modifiers: mods, Name: name.Literal}
	if p.check(token.LT) {
		decl.TypeParams = p.parseTypeParameters()
	}
	if p.match(token.EXTENDS) {
		decl.Implements = p.parseTypeList()
	}
	if p.panicMode {
		return decl
	}

	decl.Members = p.parseClassBody(decl.Name)
	return decl
}

// parseClassBody { members }
func (p *Parser) parseClassBody(className string) []ast.Member {
	p.consume(token.LBRACE, i18n.T(i18n.ErrExpectedToken, "'{'"))
	if p.panicMode {
		return nil
	}

	members := []ast.Member{}
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		if p.match(token.SEMICOLON) {
			continue
		}
		members = append(members, p.parseMember(className)...)
		if p.panicMode {
			p.synchronize()
		}
	}

	p.consume(token.RBRACE, i18n.T(i18n.ErrExpectedToken, "'}'"))
	return members
}

// ============================================================================
// 类成员
// ============================================================================

// parseMember 解析一个成员声明，字段声明可能产生多个成员
func (p *Parser) parseMember(className string) []ast.Member {
	start := p.peek().Pos

	// 实例初始化块
	if p.check(token.LBRACE) {
		return []ast.Member{&ast.InitializerBlock{Start: start, Body: p.parseBlock()}}
	}
	// 静态初始化块
	if p.check(token.STATIC) && p.lookAhead(1).Type == token.LBRACE {
		p.advance()
		return []ast.Member{&ast.InitializerBlock{Start: start, Static: true, Body: p.parseBlock()}}
	}

	mods := p.parseModifiers()

	if p.checkAny(token.CLASS, token.INTERFACE, token.ENUM) ||
		(p.check(token.AT) && p.lookAhead(1).Type == token.INTERFACE) {
		decl := p.parseTypeDecl(start, mods)
		if decl == nil {
			return nil
		}
		return []ast.Member{decl}
	}

	var typeParams []*ast.TypeParameter
	if p.check(token.LT) {
		typeParams = p.parseTypeParameters()
	}

	// 构造器：类名紧跟 '('
	if p.check(token.IDENT) && p.lookAhead(1).Type == token.LPAREN {
		name := p.peek()
		if name.Literal != className {
			p.error(i18n.T(i18n.ErrExpectedType))
			p.panicMode = true
			return nil
		}
		p.advance()
		ctor := &ast.ConstructorDecl{Start: start, Modifiers: mods, TypeParams: typeParams}
		ctor.Params = p.parseFormalParameters()
		if p.match(token.THROWS) {
			ctor.Throws = p.parseTypeList()
		}
		ctor.Body = p.parseBlock()
		return []ast.Member{ctor}
	}

	typ := p.parseType()
	if p.panicMode {
		return nil
	}
	name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))

	// 方法
	if p.check(token.LPAREN) {
		method := &ast.MethodDecl{
			Start:      start,
			Modifiers:  mods,
			TypeParams: typeParams,
			ReturnType: typ,
			Name:       name.Literal,
		}
		method.Params = p.parseFormalParameters()
		method.ReturnType = p.parseDims(method.ReturnType)
		if p.match(token.THROWS) {
			method.Throws = p.parseTypeList()
		}
		if !p.match(token.SEMICOLON) {
			method.Body = p.parseBlock()
		}
		return []ast.Member{method}
	}

	if typeParams != nil {
		p.error(i18n.T(i18n.ErrExpectedToken, "'('"))
		p.panicMode = true
		return nil
	}

	// 字段
	var members []ast.Member
	for _, v := range p.parseDeclarators(start, mods, typ, name) {
		members = append(members, v)
	}
	p.consume(token.SEMICOLON, i18n.T(i18n.ErrExpectedToken, "';'"))
	return members
}

// parseDeclarators 解析 name [dims] [= init] {, name [dims] [= init]}
//
// 第一个名字已经被调用方读取。每个声明符生成一个独立的 VarDecl，共享修饰符。
func (p *Parser) parseDeclarators(start token.Position, mods *ast.Modifiers, typ ast.Expr, name token.Token) []*ast.VarDecl {
	var vars []*ast.VarDecl
	for {
		v := &ast.VarDecl{
			Start:     start,
			Modifiers: mods,
			Type:      p.parseDims(typ),
			Name:      name.Literal,
		}
		if p.match(token.ASSIGN) {
			v.Init = p.parseVariableInitializer()
		}
		vars = append(vars, v)

		if p.panicMode || !p.match(token.COMMA) {
			return vars
		}
		name = p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
		start = name.Pos
	}
}

// parseVariableInitializer 变量初始值：表达式或 {...}
func (p *Parser) parseVariableInitializer() ast.Expr {
	if p.check(token.LBRACE) {
		return p.parseArrayInitializer(nil)
	}
	return p.parseExpression()
}

// parseArrayInitializer {a, b, {c}}，允许尾随逗号
func (p *Parser) parseArrayInitializer(elem ast.Expr) *ast.NewArray {
	lbrace := p.consume(token.LBRACE, i18n.T(i18n.ErrExpectedToken, "'{'"))
	arr := &ast.NewArray{Start: lbrace.Pos, Elem: elem, HasInit: true, Init: []ast.Expr{}}

	for !p.check(token.RBRACE) && !p.isAtEnd() && !p.panicMode {
		if p.check(token.LBRACE) {
			arr.Init = append(arr.Init, p.parseArrayInitializer(nil))
		} else if p.check(token.AT) {
			arr.Init = append(arr.Init, p.parseAnnotation())
		} else {
			arr.Init = append(arr.Init, p.parseExpression())
		}
		if !p.match(token.COMMA) {
			break
		}
	}

	p.consume(token.RBRACE, i18n.T(i18n.ErrExpectedToken, "'}'"))
	return arr
}

// ============================================================================
// 参数
// ============================================================================

// parseFormalParameters (T a, final U... rest)
func (p *Parser) parseFormalParameters() []*ast.VarDecl {
	p.consume(token.LPAREN, i18n.T(i18n.ErrExpectedToken, "'('"))

	params := []*ast.VarDecl{}
	if p.match(token.RPAREN) {
		return params
	}

	for {
		params = append(params, p.parseFormalParameter())
		if p.panicMode || !p.match(token.COMMA) {
			break
		}
	}

	p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
	return params
}

func (p *Parser) parseFormalParameter() *ast.VarDecl {
	start := p.peek().Pos
	mods := p.parseModifiers()
	typ := p.parseType()
	if p.panicMode {
		return &ast.VarDecl{Start: start, Modifiers: mods}
	}

	if p.match(token.ELLIPSIS) {
		mods.Flags |= ast.FlagVarargs
		typ = &ast.ArrayType{Start: typ.Pos(), Elem: typ}
	}

	name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
	return &ast.VarDecl{
		Start:     start,
		Modifiers: mods,
		Type:      p.parseDims(typ),
		Name:      name.Literal,
	}
}
