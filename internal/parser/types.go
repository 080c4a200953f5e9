package parser

import (
	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/token"
)

// ============================================================================
// 类型解析
// ============================================================================

// parseType 解析完整类型：[注解] (基本类型 | 类类型) {[]}
func (p *Parser) parseType() ast.Expr {
	start := p.peek().Pos

	var annotations []*ast.Annotation
	for p.check(token.AT) {
		annotations = append(annotations, p.parseAnnotation())
	}

	var typ ast.Expr
	switch {
	case token.IsPrimitive(p.peek().Type) || p.check(token.VOID):
		tok := p.advance()
		typ = &ast.PrimitiveType{Start: tok.Pos, Name: tok.Literal}
	case p.check(token.IDENT):
		typ = p.parseClassType()
	default:
		p.error(i18n.T(i18n.ErrExpectedType))
		p.panicMode = true
		return nil
	}

	typ = p.parseDims(typ)

	if len(annotations) > 0 {
		return &ast.AnnotatedType{Start: start, Annotations: annotations, Underlying: typ}
	}
	return typ
}

// parseClassType 解析类类型 A<T>.B<U>（不含数组维度）
//
// 类型实参允许为空（菱形 <>）。
func (p *Parser) parseClassType() ast.Expr {
	tok := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
	var typ ast.Expr = &ast.Ident{Start: tok.Pos, Name: tok.Literal}

	for {
		if p.check(token.LT) {
			args := p.parseTypeArguments()
			typ = &ast.ParameterizedType{Start: typ.Pos(), Type: typ, Args: args}
		}
		if !(p.check(token.DOT) && p.lookAhead(1).Type == token.IDENT) {
			return typ
		}
		p.advance()
		tok = p.advance()
		typ = &ast.FieldAccess{Start: typ.Pos(), X: typ, Name: tok.Literal}
	}
}

// parseDims 解析跟在类型后面的 [] 维度
func (p *Parser) parseDims(typ ast.Expr) ast.Expr {
	for p.check(token.LBRACKET) && p.lookAhead(1).Type == token.RBRACKET {
		p.advance()
		p.advance()
		typ = &ast.ArrayType{Start: typ.Pos(), Elem: typ}
	}
	return typ
}

// parseTypeArguments 解析 <A, ? extends B, ? super C>，<> 返回空切片
func (p *Parser) parseTypeArguments() []ast.Expr {
	p.consume(token.LT, i18n.T(i18n.ErrExpectedToken, "'<'"))

	args := []ast.Expr{}
	if p.match(token.GT) {
		return args
	}

	for {
		args = append(args, p.parseTypeArgument())
		if p.panicMode || !p.match(token.COMMA) {
			break
		}
	}

	p.consume(token.GT, i18n.T(i18n.ErrExpectedToken, "'>'"))
	return args
}

func (p *Parser) parseTypeArgument() ast.Expr {
	if !p.check(token.QUESTION) {
		return p.parseType()
	}

	tok := p.advance()
	wc := &ast.Wildcard{Start: tok.Pos, WildKind: ast.UNBOUNDED_WILDCARD}
	switch {
	case p.match(token.EXTENDS):
		wc.WildKind = ast.EXTENDS_WILDCARD
		wc.Bound = p.parseType()
	case p.match(token.SUPER):
		wc.WildKind = ast.SUPER_WILDCARD
		wc.Bound = p.parseType()
	}
	return wc
}

// parseTypeParameters 解析 <T, U extends A & B>
func (p *Parser) parseTypeParameters() []*ast.TypeParameter {
	p.consume(token.LT, i18n.T(i18n.ErrExpectedToken, "'<'"))

	var params []*ast.TypeParameter
	for {
		start := p.peek().Pos
		var annotations []*ast.Annotation
		for p.check(token.AT) {
			annotations = append(annotations, p.parseAnnotation())
		}

		name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
		tp := &ast.TypeParameter{Start: start, Annotations: annotations, Name: name.Literal}
		if p.match(token.EXTENDS) {
			tp.Bounds = append(tp.Bounds, p.parseType())
			for p.match(token.BIT_AND) {
				tp.Bounds = append(tp.Bounds, p.parseType())
			}
		}
		params = append(params, tp)

		if p.panicMode || !p.match(token.COMMA) {
			break
		}
	}

	p.consume(token.GT, i18n.T(i18n.ErrExpectedToken, "'>'"))
	return params
}

// parseTypeList 解析逗号分隔的类类型列表（implements、throws）
func (p *Parser) parseTypeList() []ast.Expr {
	var types []ast.Expr
	for {
		types = append(types, p.parseType())
		if p.panicMode || !p.match(token.COMMA) {
			return types
		}
	}
}

// ============================================================================
// 类型前瞻
// ============================================================================
//
// scan* 系列函数只移动下标、不构建节点，用于在不回溯的情况下判断
// 接下来是声明还是表达式、是强制转换还是括号表达式。
//
// ============================================================================

// scanType 从下标 i 开始跳过一个类型，返回类型之后的下标
func (p *Parser) scanType(i int) (int, bool) {
	tok := p.tokenAt(i)
	switch {
	case token.IsPrimitive(tok.Type) || tok.Type == token.VOID:
		i++
	case tok.Type == token.IDENT:
		i++
		for {
			if p.tokenAt(i).Type == token.LT {
				next, ok := p.scanTypeArguments(i)
				if !ok {
					return i, false
				}
				i = next
			}
			if p.tokenAt(i).Type == token.DOT && p.tokenAt(i+1).Type == token.IDENT {
				i += 2
				continue
			}
			break
		}
	default:
		return i, false
	}

	for p.tokenAt(i).Type == token.LBRACKET && p.tokenAt(i+1).Type == token.RBRACKET {
		i += 2
	}
	return i, true
}

// scanTypeArguments 跳过 <...>，返回匹配的 '>' 之后的下标
func (p *Parser) scanTypeArguments(i int) (int, bool) {
	depth := 0
	for ; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case token.LT:
			depth++
		case token.GT:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case token.IDENT, token.DOT, token.COMMA, token.QUESTION,
			token.EXTENDS, token.SUPER, token.LBRACKET, token.RBRACKET,
			token.BIT_AND, token.AT:
		default:
			if !token.IsPrimitive(p.tokens[i].Type) {
				return i, false
			}
		}
	}
	return i, false
}

// skipParens 从下标 i 处的 '(' 开始，返回匹配的 ')' 之后的下标
func (p *Parser) skipParens(i int) (int, bool) {
	depth := 0
	for ; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case token.LPAREN:
			depth++
		case token.RPAREN:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case token.EOF:
			return i, false
		}
	}
	return i, false
}

// isLocalVarDecl 判断当前位置是否为局部变量声明 Type name [= ; , [ :]
func (p *Parser) isLocalVarDecl() bool {
	i, ok := p.scanType(p.current)
	if !ok || p.tokenAt(i).Type != token.IDENT {
		return false
	}
	switch p.tokenAt(i + 1).Type {
	case token.ASSIGN, token.SEMICOLON, token.COMMA, token.LBRACKET, token.COLON:
		return true
	}
	return false
}
