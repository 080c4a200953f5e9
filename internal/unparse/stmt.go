package unparse

import (
	"github.com/tangzhangming/javamin/internal/ast"
)

// ============================================================================
// 语句
// ============================================================================

// block { stmts }，需要终结符的语句后面补 ';'
func (u *Unparser) block(b *ast.Block) {
	if b == nil {
		u.malformed(u.pos(nil), "missing block")
	}
	u.l.openBlock()
	u.stmtList(b.Stmts)
	u.l.closeBlock()
}

// stmtList 语句序列，空语句不输出
func (u *Unparser) stmtList(stmts []ast.Stmt) {
	for _, s := range stmts {
		if _, ok := s.(*ast.Empty); ok {
			continue
		}
		u.terminated(s)
		u.l.newline()
	}
}

// terminated 输出语句并按需补 ';'。单独出现的空语句输出 ';'，
// 保证 if (x) ; 这样的结构可以被重新解析。
func (u *Unparser) terminated(s ast.Stmt) {
	if _, ok := s.(*ast.Empty); ok {
		u.l.symbol(";")
		return
	}
	u.stmt(s)
	if needsTerminator(s.Kind()) {
		u.l.symbol(";")
	}
}

// body if、循环的子语句：块直接输出，其他语句在美化模式下缩进到下一行
func (u *Unparser) body(s ast.Stmt) {
	if s == nil {
		u.malformed(u.pos(nil), "missing statement body")
	}
	if b, ok := s.(*ast.Block); ok {
		u.block(b)
		return
	}
	u.l.indent()
	u.l.newline()
	u.terminated(s)
	u.l.dedent()
}

func (u *Unparser) stmt(s ast.Stmt) {
	defer u.leave(u.enter(s))

	switch n := s.(type) {
	case nil:
		u.malformed(u.pos(nil), "missing statement")
	case *ast.Block:
		u.block(n)
	case *ast.ExprStmt:
		u.expr(n.X)
	case *ast.VarDecl:
		u.varDecl(n, false)
	case *ast.ClassDecl:
		u.classDecl(n)
	case *ast.If:
		u.ifStmt(n)
	case *ast.For:
		u.forStmt(n)
	case *ast.ForEach:
		u.forEachStmt(n)
	case *ast.While:
		u.l.word("while")
		u.condition(n.Cond)
		u.body(n.Body)
	case *ast.DoWhile:
		u.l.word("do")
		u.body(n.Body)
		u.l.newline()
		u.l.word("while")
		u.condition(n.Cond)
		u.l.symbol(";")
	case *ast.Switch:
		u.switchStmt(n)
	case *ast.Try:
		u.tryStmt(n)
	case *ast.Synchronized:
		u.l.word("synchronized")
		u.condition(n.Lock)
		u.block(n.Body)
	case *ast.Return:
		u.l.word("return")
		if n.X != nil {
			u.expr(n.X)
		}
	case *ast.Throw:
		u.l.word("throw")
		u.expr(n.X)
	case *ast.Break:
		if n.Label != "" {
			u.unsupported("labeled break", n.Pos())
		}
		u.l.word("break")
	case *ast.Continue:
		if n.Label != "" {
			u.unsupported("labeled continue", n.Pos())
		}
		u.l.word("continue")
	case *ast.Assert:
		u.l.word("assert")
		u.expr(n.Cond)
		if n.Detail != nil {
			u.l.operator(":")
			u.expr(n.Detail)
		}
	case *ast.Labeled:
		u.unsupported("labeled statement", n.Pos())
	case *ast.Empty:
	default:
		u.unsupported(s.Kind().String(), s.Pos())
	}
}

// condition ( expr )，语法树中的条件不带括号
func (u *Unparser) condition(e ast.Expr) {
	u.l.space()
	u.l.symbol("(")
	u.expr(e)
	u.l.symbol(")")
}

func (u *Unparser) ifStmt(n *ast.If) {
	u.l.word("if")
	u.condition(n.Cond)
	u.body(n.Then)
	if n.Else == nil {
		return
	}

	u.l.newline()
	u.l.word("else")
	if elseIf, ok := n.Else.(*ast.If); ok {
		u.ifStmt(elseIf)
		return
	}
	u.body(n.Else)
}

// forStmt 只支持一个初始化和一个更新表达式
func (u *Unparser) forStmt(n *ast.For) {
	if len(n.Init) > 1 {
		u.unsupported("multiple for-loop initializers", n.Pos())
	}
	if len(n.Update) > 1 {
		u.unsupported("multiple for-loop updates", n.Pos())
	}

	u.l.word("for")
	u.l.space()
	u.l.symbol("(")
	if len(n.Init) == 1 {
		switch init := n.Init[0].(type) {
		case *ast.VarDecl:
			u.varDecl(init, false)
		case *ast.ExprStmt:
			u.expr(init.X)
		default:
			u.malformed(n.Pos(), "for-loop initializer must be a declaration or expression, got %s", u.kindOf(init))
		}
	}
	u.l.symbol(";")
	if n.Cond != nil {
		u.l.space()
		u.expr(n.Cond)
	}
	u.l.symbol(";")
	if len(n.Update) == 1 {
		u.l.space()
		u.expr(n.Update[0].X)
	}
	u.l.symbol(")")
	u.body(n.Body)
}

func (u *Unparser) forEachStmt(n *ast.ForEach) {
	if n.Var == nil {
		u.malformed(n.Pos(), "enhanced for-loop without a variable")
	}
	u.l.word("for")
	u.l.space()
	u.l.symbol("(")
	u.varDecl(n.Var, false)
	u.l.operator(":")
	u.expr(n.X)
	u.l.symbol(")")
	u.body(n.Body)
}

// switchStmt case 标签比 switch 多一级缩进，case 体再多一级
func (u *Unparser) switchStmt(n *ast.Switch) {
	u.l.word("switch")
	u.condition(n.Tag)
	u.l.openBlock()
	for _, c := range n.Cases {
		u.caseClause(c)
		u.l.newline()
	}
	u.l.closeBlock()
}

func (u *Unparser) caseClause(c *ast.Case) {
	if c == nil {
		u.malformed(u.pos(nil), "nil case")
	}
	if c.Expr != nil {
		u.l.word("case")
		u.expr(c.Expr)
	} else {
		u.l.word("default")
	}
	u.l.symbol(":")

	u.l.indent()
	u.l.newline()
	u.stmtList(c.Body)
	u.l.dedent()
}

func (u *Unparser) tryStmt(n *ast.Try) {
	u.l.word("try")
	if len(n.Resources) > 0 {
		u.l.space()
		u.l.symbol("(")
		for i, r := range n.Resources {
			if i > 0 {
				u.l.symbol(";")
				u.l.space()
			}
			u.resource(r)
		}
		u.l.symbol(")")
	}
	u.block(n.Body)

	for _, c := range n.Catches {
		u.l.newline()
		u.catchClause(c)
	}
	if n.Finally != nil {
		u.l.newline()
		u.l.word("finally")
		u.block(n.Finally)
	}
}

// resource try 资源：变量声明或表达式
func (u *Unparser) resource(r ast.Node) {
	switch n := r.(type) {
	case *ast.VarDecl:
		u.varDecl(n, false)
	case ast.Expr:
		u.expr(n)
	default:
		u.malformed(u.pos(r), "invalid try resource %s", u.kindOf(r))
	}
}

func (u *Unparser) catchClause(c *ast.Catch) {
	if c == nil || c.Param == nil {
		u.malformed(u.pos(nil), "catch clause without a parameter")
	}
	u.l.word("catch")
	u.l.space()
	u.l.symbol("(")
	u.varDecl(c.Param, false)
	u.l.symbol(")")
	u.block(c.Body)
}

// kindOf nil 安全的种类名
func (u *Unparser) kindOf(n ast.Node) string {
	if n == nil {
		return "nil"
	}
	return n.Kind().String()
}
