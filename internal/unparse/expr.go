package unparse

import (
	"github.com/tangzhangming/javamin/internal/ast"
)

// ============================================================================
// 表达式
// ============================================================================

func (u *Unparser) expr(e ast.Expr) {
	defer u.leave(u.enter(e))

	switch n := e.(type) {
	case nil:
		u.malformed(u.pos(nil), "missing expression")

	case *ast.Ident:
		u.l.word(n.Name)

	case *ast.Literal:
		u.l.word(n.Raw)

	case *ast.FieldAccess:
		u.expr(n.X)
		u.l.symbol(".")
		if n.Name == "*" {
			u.l.symbol("*")
		} else {
			u.l.word(n.Name)
		}

	case *ast.Binary:
		if !n.Op.IsBinary() {
			u.unsupported("binary operator "+n.Op.String(), n.Pos())
		}
		text, err := operatorText(n.Op)
		u.check(err)
		u.expr(n.X)
		u.l.operator(text)
		u.expr(n.Y)

	case *ast.Unary:
		u.unary(n)

	case *ast.Assign:
		u.expr(n.X)
		u.l.operator("=")
		u.expr(n.Y)

	case *ast.CompoundAssign:
		if !n.Op.IsCompoundAssign() {
			u.unsupported("compound assignment "+n.Op.String(), n.Pos())
		}
		text, err := operatorText(n.Op)
		u.check(err)
		u.expr(n.X)
		u.l.operator(text)
		u.expr(n.Y)

	case *ast.MethodCall:
		if len(n.TypeArgs) > 0 {
			u.unsupported("explicit method type arguments", n.Pos())
		}
		u.expr(n.Fn)
		u.arguments(n.Args)

	case *ast.New:
		u.newClass(n)

	case *ast.NewArray:
		u.newArray(n)

	case *ast.Conditional:
		u.expr(n.Cond)
		u.l.operator("?")
		u.expr(n.Then)
		u.l.operator(":")
		u.expr(n.Else)

	case *ast.InstanceOf:
		u.expr(n.X)
		u.l.word("instanceof")
		u.typ(n.Type)

	case *ast.Cast:
		u.l.symbol("(")
		u.typ(n.Type)
		u.l.symbol(")")
		u.l.space()
		u.expr(n.X)

	case *ast.Parens:
		u.l.symbol("(")
		u.expr(n.X)
		u.l.symbol(")")

	case *ast.ArrayAccess:
		u.expr(n.X)
		u.l.symbol("[")
		u.expr(n.Index)
		u.l.symbol("]")

	case *ast.Annotation:
		u.annotation(n)

	case *ast.Lambda:
		u.unsupported("lambda expression", n.Pos())

	case *ast.MethodRef:
		u.unsupported("method reference", n.Pos())

	case *ast.PrimitiveType, *ast.ArrayType, *ast.ParameterizedType,
		*ast.Wildcard, *ast.UnionType, *ast.AnnotatedType:
		u.typ(n)

	default:
		u.unsupported(e.Kind().String(), e.Pos())
	}
}

// unary 前缀或后缀位置由运算符种类决定
func (u *Unparser) unary(n *ast.Unary) {
	text, err := operatorText(n.Op)
	u.check(err)
	prefix, err := isPrefix(n.Op)
	u.check(err)

	if prefix {
		u.l.prefix(text)
		u.expr(n.X)
		return
	}
	u.expr(n.X)
	u.l.symbol(text)
}

func (u *Unparser) arguments(args []ast.Expr) {
	u.l.symbol("(")
	for i, a := range args {
		if i > 0 {
			u.l.comma()
		}
		u.expr(a)
	}
	u.l.symbol(")")
}

// newClass [outer.]new Type(args) [{ body }]
func (u *Unparser) newClass(n *ast.New) {
	if len(n.TypeArgs) > 0 {
		u.unsupported("constructor type arguments", n.Pos())
	}
	if n.Outer != nil {
		u.expr(n.Outer)
		u.l.symbol(".")
	}
	u.l.word("new")
	u.typ(n.Type)
	u.arguments(n.Args)
	if n.Body != nil {
		u.classBody(n.Body.Members)
	}
}

// newArray new T[a][b][]...{init}
//
// Elem 是最外层数组的元素类型。先剥掉 Elem 的全部数组层得到基础类型，
// 然后依次输出带长度的维度和不带长度的维度。没有长度维度时被创建的
// 数组本身也是一层 []。只有初始化器的数组（int[] a = {1}）不输出 new。
func (u *Unparser) newArray(n *ast.NewArray) {
	if n.Elem == nil {
		if !n.HasInit {
			u.malformed(n.Pos(), "array creation without element type or initializer")
		}
		u.arrayInit(n.Init)
		return
	}
	if n.HasInit && len(n.Dims) > 0 {
		u.malformed(n.Pos(), "array creation with both dimensions and initializer")
	}

	base, depth := n.Elem, 0
	for {
		arr, ok := base.(*ast.ArrayType)
		if !ok {
			break
		}
		base = arr.Elem
		depth++
	}

	u.l.word("new")
	u.typ(base)
	for _, d := range n.Dims {
		u.l.symbol("[")
		u.expr(d)
		u.l.symbol("]")
	}
	unsized := depth
	if len(n.Dims) == 0 {
		unsized++
	}
	for i := 0; i < unsized; i++ {
		u.l.symbol("[")
		u.l.symbol("]")
	}

	if n.HasInit {
		u.l.space()
		u.arrayInit(n.Init)
	}
}

func (u *Unparser) arrayInit(elems []ast.Expr) {
	u.l.symbol("{")
	for i, e := range elems {
		if i > 0 {
			u.l.comma()
		}
		u.expr(e)
	}
	u.l.symbol("}")
}

// ============================================================================
// 类型
// ============================================================================

func (u *Unparser) typ(e ast.Expr) {
	defer u.leave(u.enter(e))

	switch n := e.(type) {
	case nil:
		u.malformed(u.pos(nil), "missing type")

	case *ast.PrimitiveType:
		u.l.word(n.Name)

	case *ast.Ident, *ast.FieldAccess:
		u.expr(n)

	case *ast.ArrayType:
		u.typ(n.Elem)
		u.l.symbol("[")
		u.l.symbol("]")

	case *ast.ParameterizedType:
		u.typ(n.Type)
		u.l.symbol("<")
		for i, arg := range n.Args {
			if i > 0 {
				u.l.comma()
			}
			u.typ(arg)
		}
		u.l.symbol(">")

	case *ast.Wildcard:
		u.wildcard(n)

	case *ast.UnionType:
		for i, alt := range n.Alternatives {
			if i > 0 {
				u.l.operator("|")
			}
			u.typ(alt)
		}

	case *ast.AnnotatedType:
		u.unsupported("type annotation", n.Pos())

	default:
		u.malformed(e.Pos(), "%s is not a type", e.Kind())
	}
}

// wildcard ?、? extends T、? super T
func (u *Unparser) wildcard(n *ast.Wildcard) {
	text, err := operatorText(n.WildKind)
	u.check(err)
	u.l.symbol(text)

	if n.Bound == nil {
		return
	}
	switch n.WildKind {
	case ast.EXTENDS_WILDCARD:
		u.l.space()
		u.l.word("extends")
	case ast.SUPER_WILDCARD:
		u.l.space()
		u.l.word("super")
	default:
		u.malformed(n.Pos(), "unbounded wildcard with a bound")
	}
	u.typ(n.Bound)
}
