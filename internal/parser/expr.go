package parser

import (
	"strings"

	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/i18n"
	"github.com/tangzhangming/javamin/internal/token"
)

// ============================================================================
// 表达式解析（Pratt）
// ============================================================================

// 运算符优先级，从低到高
const (
	precNone       = iota
	precAssignment // = += -= ...
	precTernary    // ?:
	precOr         // ||
	precAnd        // &&
	precBitOr      // |
	precBitXor     // ^
	precBitAnd     // &
	precEquality   // == !=
	precComparison // < > <= >= instanceof
	precShift      // << >> >>>
	precTerm       // + -
	precFactor     // * / %
	precUnary      // ! ~ - + ++ -- 强制转换
)

// infixOp 当前位置的中缀运算符
type infixOp struct {
	kind  ast.Kind
	prec  int
	width int // 占用的 token 数，>>= 由三个 token 组成
}

// simpleInfix 单 token 中缀运算符
var simpleInfix = map[token.TokenType]infixOp{
	token.OR:             {ast.CONDITIONAL_OR, precOr, 1},
	token.AND:            {ast.CONDITIONAL_AND, precAnd, 1},
	token.BIT_OR:         {ast.OR, precBitOr, 1},
	token.BIT_XOR:        {ast.XOR, precBitXor, 1},
	token.BIT_AND:        {ast.AND, precBitAnd, 1},
	token.EQ:             {ast.EQUAL_TO, precEquality, 1},
	token.NE:             {ast.NOT_EQUAL_TO, precEquality, 1},
	token.LT:             {ast.LESS_THAN, precComparison, 1},
	token.LE:             {ast.LESS_THAN_EQUAL, precComparison, 1},
	token.INSTANCEOF:     {ast.INSTANCE_OF, precComparison, 1},
	token.LEFT_SHIFT:     {ast.LEFT_SHIFT, precShift, 1},
	token.PLUS:           {ast.PLUS, precTerm, 1},
	token.MINUS:          {ast.MINUS, precTerm, 1},
	token.STAR:           {ast.MULTIPLY, precFactor, 1},
	token.SLASH:          {ast.DIVIDE, precFactor, 1},
	token.PERCENT:        {ast.REMAINDER, precFactor, 1},
	token.QUESTION:       {ast.CONDITIONAL_EXPRESSION, precTernary, 1},
	token.ASSIGN:         {ast.ASSIGNMENT, precAssignment, 1},
	token.PLUS_ASSIGN:    {ast.PLUS_ASSIGNMENT, precAssignment, 1},
	token.MINUS_ASSIGN:   {ast.MINUS_ASSIGNMENT, precAssignment, 1},
	token.STAR_ASSIGN:    {ast.MULTIPLY_ASSIGNMENT, precAssignment, 1},
	token.SLASH_ASSIGN:   {ast.DIVIDE_ASSIGNMENT, precAssignment, 1},
	token.PERCENT_ASSIGN: {ast.REMAINDER_ASSIGNMENT, precAssignment, 1},
	token.AND_ASSIGN:     {ast.AND_ASSIGNMENT, precAssignment, 1},
	token.OR_ASSIGN:      {ast.OR_ASSIGNMENT, precAssignment, 1},
	token.XOR_ASSIGN:     {ast.XOR_ASSIGNMENT, precAssignment, 1},
	token.SHL_ASSIGN:     {ast.LEFT_SHIFT_ASSIGNMENT, precAssignment, 1},
}

// peekInfix 识别当前位置的中缀运算符
//
// '>' 开头的运算符由相邻的 GT / ASSIGN token 组合而成。
func (p *Parser) peekInfix() (infixOp, bool) {
	tok := p.peek()
	if tok.Type != token.GT {
		op, ok := simpleInfix[tok.Type]
		return op, ok
	}

	i := p.current
	n := 1
	for n < 3 && p.tokenAt(i+n).Type == token.GT && p.adjacent(i+n) {
		n++
	}
	if p.tokenAt(i+n).Type == token.ASSIGN && p.adjacent(i+n) {
		switch n {
		case 1:
			return infixOp{ast.GREATER_THAN_EQUAL, precComparison, 2}, true
		case 2:
			return infixOp{ast.RIGHT_SHIFT_ASSIGNMENT, precAssignment, 3}, true
		default:
			return infixOp{ast.UNSIGNED_RIGHT_SHIFT_ASSIGNMENT, precAssignment, 4}, true
		}
	}
	switch n {
	case 1:
		return infixOp{ast.GREATER_THAN, precComparison, 1}, true
	case 2:
		return infixOp{ast.RIGHT_SHIFT, precShift, 2}, true
	default:
		return infixOp{ast.UNSIGNED_RIGHT_SHIFT, precShift, 3}, true
	}
}

// parseExpression 解析完整表达式（含赋值）
func (p *Parser) parseExpression() ast.Expr {
	return p.parsePrecedence(precAssignment)
}

// parsePrecedence 解析优先级不低于 prec 的表达式
func (p *Parser) parsePrecedence(prec int) ast.Expr {
	if !p.enter() {
		return p.badExpr()
	}
	defer p.leave()

	left := p.parseUnary()
	for !p.panicMode {
		op, ok := p.peekInfix()
		if !ok || op.prec < prec {
			break
		}
		for i := 0; i < op.width; i++ {
			p.advance()
		}

		switch {
		case op.kind == ast.ASSIGNMENT:
			p.checkAssignTarget(left)
			left = &ast.Assign{Start: left.Pos(), X: left, Y: p.parsePrecedence(precAssignment)}
		case op.kind.IsCompoundAssign():
			p.checkAssignTarget(left)
			left = &ast.CompoundAssign{Start: left.Pos(), Op: op.kind, X: left, Y: p.parsePrecedence(precAssignment)}
		case op.kind == ast.CONDITIONAL_EXPRESSION:
			cond := &ast.Conditional{Start: left.Pos(), Cond: left}
			cond.Then = p.parseExpression()
			p.consume(token.COLON, i18n.T(i18n.ErrExpectedToken, "':'"))
			cond.Else = p.parsePrecedence(precTernary)
			left = cond
		case op.kind == ast.INSTANCE_OF:
			left = &ast.InstanceOf{Start: left.Pos(), X: left, Type: p.parseType()}
		default:
			left = &ast.Binary{Start: left.Pos(), Op: op.kind, X: left, Y: p.parsePrecedence(op.prec + 1)}
		}
	}
	return left
}

// checkAssignTarget 赋值左侧必须是变量、字段或数组元素
func (p *Parser) checkAssignTarget(x ast.Expr) {
	switch t := x.(type) {
	case *ast.Ident, *ast.FieldAccess, *ast.ArrayAccess:
		return
	case *ast.Parens:
		p.checkAssignTarget(t.X)
		return
	}
	p.error(i18n.T(i18n.ErrInvalidAssignTarget))
}

// parseUnary 前缀运算、强制转换
func (p *Parser) parseUnary() ast.Expr {
	if !p.enter() {
		return p.badExpr()
	}
	defer p.leave()

	tok := p.peek()
	var op ast.Kind
	switch tok.Type {
	case token.NOT:
		op = ast.LOGICAL_COMPLEMENT
	case token.BIT_NOT:
		op = ast.BITWISE_COMPLEMENT
	case token.MINUS:
		op = ast.UNARY_MINUS
	case token.PLUS:
		op = ast.UNARY_PLUS
	case token.INCREMENT:
		op = ast.PREFIX_INCREMENT
	case token.DECREMENT:
		op = ast.PREFIX_DECREMENT
	case token.LPAREN:
		if !p.isLambda() && p.isCast() {
			p.advance()
			cast := &ast.Cast{Start: tok.Pos, Type: p.parseType()}
			p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
			cast.X = p.parseUnary()
			return cast
		}
		return p.parsePostfix(p.parsePrimary())
	default:
		return p.parsePostfix(p.parsePrimary())
	}

	p.advance()
	return &ast.Unary{Start: tok.Pos, Op: op, X: p.parseUnary()}
}

// isCast 判断当前 '(' 是否开始一个强制转换
//
// (int) x、(int[]) x 只看括号内是否为基本类型；(Foo) x 还要求 ')' 之后
// 是不能跟在括号表达式后面的 token，以区分 (a) + b。
func (p *Parser) isCast() bool {
	first := p.tokenAt(p.current + 1)
	j, ok := p.scanType(p.current + 1)
	if !ok || p.tokenAt(j).Type != token.RPAREN {
		return false
	}
	if token.IsPrimitive(first.Type) {
		return true
	}

	switch next := p.tokenAt(j + 1); next.Type {
	case token.IDENT, token.INT, token.FLOAT, token.CHAR, token.STRING,
		token.TRUE, token.FALSE, token.NULL, token.THIS, token.SUPER, token.NEW,
		token.LPAREN, token.NOT, token.BIT_NOT:
		return true
	default:
		return token.IsPrimitive(next.Type)
	}
}

// isLambda 判断当前位置是否为 x -> ... 或 (...) -> ...
func (p *Parser) isLambda() bool {
	switch p.peek().Type {
	case token.IDENT:
		return p.lookAhead(1).Type == token.ARROW
	case token.LPAREN:
		j, ok := p.skipParens(p.current)
		return ok && p.tokenAt(j).Type == token.ARROW
	}
	return false
}

// parsePostfix 成员访问、调用、下标、后缀自增自减、方法引用
func (p *Parser) parsePostfix(left ast.Expr) ast.Expr {
	for !p.panicMode {
		switch {
		case p.check(token.DOT):
			left = p.parseSelector(left)

		case p.check(token.LPAREN):
			switch left.(type) {
			case *ast.Ident, *ast.FieldAccess:
			default:
				return left
			}
			left = &ast.MethodCall{Start: left.Pos(), Fn: left, Args: p.parseArguments()}

		case p.check(token.LBRACKET):
			// int[].class、String[]::new
			if p.lookAhead(1).Type == token.RBRACKET {
				left = p.parseDims(left)
				continue
			}
			p.advance()
			access := &ast.ArrayAccess{Start: left.Pos(), X: left, Index: p.parseExpression()}
			p.consume(token.RBRACKET, i18n.T(i18n.ErrExpectedToken, "']'"))
			left = access

		case p.check(token.INCREMENT):
			p.advance()
			left = &ast.Unary{Start: left.Pos(), Op: ast.POSTFIX_INCREMENT, X: left}

		case p.check(token.DECREMENT):
			p.advance()
			left = &ast.Unary{Start: left.Pos(), Op: ast.POSTFIX_DECREMENT, X: left}

		case p.check(token.DOUBLE_COLON):
			p.advance()
			ref := &ast.MethodRef{Start: left.Pos(), X: left}
			if p.match(token.NEW) {
				ref.Name = "new"
			} else {
				ref.Name = p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier)).Literal
			}
			left = ref

		default:
			return left
		}
	}
	return left
}

// parseSelector 处理 '.' 之后的部分
func (p *Parser) parseSelector(left ast.Expr) ast.Expr {
	p.advance() // .
	tok := p.peek()

	switch tok.Type {
	case token.IDENT:
		p.advance()
		return &ast.FieldAccess{Start: left.Pos(), X: left, Name: tok.Literal}

	case token.THIS, token.SUPER, token.CLASS:
		p.advance()
		return &ast.FieldAccess{Start: left.Pos(), X: left, Name: tok.Literal}

	case token.NEW:
		return p.parseNew(left)

	case token.LT:
		// obj.<T>method(args)
		typeArgs := p.parseTypeArguments()
		name := p.consume(token.IDENT, i18n.T(i18n.ErrExpectedIdentifier))
		fn := &ast.FieldAccess{Start: left.Pos(), X: left, Name: name.Literal}
		if !p.check(token.LPAREN) {
			p.error(i18n.T(i18n.ErrExpectedToken, "'('"))
			p.panicMode = true
			return fn
		}
		return &ast.MethodCall{Start: left.Pos(), Fn: fn, TypeArgs: typeArgs, Args: p.parseArguments()}
	}

	p.error(i18n.T(i18n.ErrExpectedIdentifier))
	p.panicMode = true
	return left
}

// parseArguments (a, b, c)
func (p *Parser) parseArguments() []ast.Expr {
	p.consume(token.LPAREN, i18n.T(i18n.ErrExpectedToken, "'('"))

	args := []ast.Expr{}
	if p.match(token.RPAREN) {
		return args
	}
	for {
		args = append(args, p.parseExpression())
		if p.panicMode || !p.match(token.COMMA) {
			break
		}
	}
	p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
	return args
}

// parsePrimary 基本表达式
func (p *Parser) parsePrimary() ast.Expr {
	tok := p.peek()

	switch tok.Type {
	case token.INT:
		p.advance()
		kind := ast.INT_LITERAL
		if strings.HasSuffix(tok.Literal, "l") || strings.HasSuffix(tok.Literal, "L") {
			kind = ast.LONG_LITERAL
		}
		return &ast.Literal{Start: tok.Pos, LitKind: kind, Raw: tok.Literal}

	case token.FLOAT:
		p.advance()
		kind := ast.DOUBLE_LITERAL
		if strings.HasSuffix(tok.Literal, "f") || strings.HasSuffix(tok.Literal, "F") {
			kind = ast.FLOAT_LITERAL
		}
		return &ast.Literal{Start: tok.Pos, LitKind: kind, Raw: tok.Literal}

	case token.CHAR:
		p.advance()
		return &ast.Literal{Start: tok.Pos, LitKind: ast.CHAR_LITERAL, Raw: tok.Literal}

	case token.STRING:
		p.advance()
		return &ast.Literal{Start: tok.Pos, LitKind: ast.STRING_LITERAL, Raw: tok.Literal}

	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.Literal{Start: tok.Pos, LitKind: ast.BOOLEAN_LITERAL, Raw: tok.Literal}

	case token.NULL:
		p.advance()
		return &ast.Literal{Start: tok.Pos, LitKind: ast.NULL_LITERAL, Raw: tok.Literal}

	case token.THIS, token.SUPER:
		p.advance()
		return &ast.Ident{Start: tok.Pos, Name: tok.Literal}

	case token.IDENT:
		if p.isLambda() {
			return p.parseLambda()
		}
		p.advance()
		return &ast.Ident{Start: tok.Pos, Name: tok.Literal}

	case token.LPAREN:
		if p.isLambda() {
			return p.parseLambda()
		}
		p.advance()
		parens := &ast.Parens{Start: tok.Pos, X: p.parseExpression()}
		p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
		return parens

	case token.NEW:
		return p.parseNew(nil)
	}

	// int.class、void.class、int[]::clone
	if token.IsPrimitive(tok.Type) || tok.Type == token.VOID {
		p.advance()
		return &ast.PrimitiveType{Start: tok.Pos, Name: tok.Literal}
	}

	p.error(i18n.T(i18n.ErrExpectedExpression))
	p.panicMode = true
	return p.badExpr()
}

// parseNew 解析 new 表达式，outer 非 nil 时为 outer.new Inner()
func (p *Parser) parseNew(outer ast.Expr) ast.Expr {
	newTok := p.advance()
	start := newTok.Pos
	if outer != nil {
		start = outer.Pos()
	}

	var typeArgs []ast.Expr
	if p.check(token.LT) {
		typeArgs = p.parseTypeArguments()
	}

	var typ ast.Expr
	switch {
	case token.IsPrimitive(p.peek().Type):
		tok := p.advance()
		typ = &ast.PrimitiveType{Start: tok.Pos, Name: tok.Literal}
	case p.check(token.IDENT):
		typ = p.parseClassType()
	default:
		p.error(i18n.T(i18n.ErrExpectedType))
		p.panicMode = true
		return p.badExpr()
	}

	if p.check(token.LBRACKET) {
		return p.parseNewArray(start, typ)
	}

	n := &ast.New{Start: start, Outer: outer, TypeArgs: typeArgs, Type: typ}
	n.Args = p.parseArguments()
	if p.check(token.LBRACE) && !p.panicMode {
		body := &ast.ClassDecl{Start: p.peek().Pos}
		body.Members = p.parseClassBody("")
		n.Body = body
	}
	return n
}

// parseNewArray new T[n][m][] 或 new T[][] {...}
//
// Elem 是最外层数组的元素类型：基础类型加上未指定长度的维度，
// 没有长度维度时再去掉一层（那一层就是被创建的数组本身）。
func (p *Parser) parseNewArray(start token.Position, base ast.Expr) ast.Expr {
	var dims []ast.Expr
	for p.check(token.LBRACKET) && p.lookAhead(1).Type != token.RBRACKET {
		p.advance()
		dims = append(dims, p.parseExpression())
		p.consume(token.RBRACKET, i18n.T(i18n.ErrExpectedToken, "']'"))
		if p.panicMode {
			return p.badExpr()
		}
	}

	unsized := 0
	for p.check(token.LBRACKET) && p.lookAhead(1).Type == token.RBRACKET {
		p.advance()
		p.advance()
		unsized++
	}

	wrap := unsized
	if len(dims) == 0 {
		wrap--
	}
	elem := base
	for i := 0; i < wrap; i++ {
		elem = &ast.ArrayType{Start: base.Pos(), Elem: elem}
	}

	if len(dims) > 0 {
		return &ast.NewArray{Start: start, Elem: elem, Dims: dims}
	}

	arr := p.parseArrayInitializer(elem)
	arr.Start = start
	return arr
}

// parseLambda x -> body、(a, b) -> body、(int a) -> { ... }
func (p *Parser) parseLambda() *ast.Lambda {
	lambda := &ast.Lambda{Start: p.peek().Pos, Params: []*ast.VarDecl{}}

	if p.check(token.IDENT) {
		tok := p.advance()
		lambda.Params = append(lambda.Params, &ast.VarDecl{Start: tok.Pos, Name: tok.Literal})
	} else {
		p.advance() // (
		for !p.check(token.RPAREN) && !p.isAtEnd() && !p.panicMode {
			next := p.lookAhead(1).Type
			if p.check(token.IDENT) && (next == token.COMMA || next == token.RPAREN) {
				tok := p.advance()
				lambda.Params = append(lambda.Params, &ast.VarDecl{Start: tok.Pos, Name: tok.Literal})
			} else {
				lambda.Params = append(lambda.Params, p.parseFormalParameter())
			}
			if !p.match(token.COMMA) {
				break
			}
		}
		p.consume(token.RPAREN, i18n.T(i18n.ErrExpectedToken, "')'"))
	}

	p.consume(token.ARROW, i18n.T(i18n.ErrExpectedToken, "'->'"))
	if p.check(token.LBRACE) {
		lambda.Body = p.parseBlock()
	} else {
		lambda.Body = p.parseExpression()
	}
	return lambda
}

// ============================================================================
// 深度控制
// ============================================================================

func (p *Parser) enter() bool {
	p.exprDepth++
	if p.exprDepth > maxExprDepth {
		p.error(i18n.T(i18n.ErrExpressionTooDeep))
		p.panicMode = true
		p.exprDepth--
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.exprDepth--
}

// badExpr 出错时的占位节点，保证调用方拿到的表达式非 nil
func (p *Parser) badExpr() ast.Expr {
	return &ast.Ident{Start: p.peek().Pos}
}
