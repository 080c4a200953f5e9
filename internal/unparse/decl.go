package unparse

import (
	"github.com/tangzhangming/javamin/internal/ast"
)

// ============================================================================
// 编译单元
// ============================================================================

func (u *Unparser) unit(n *ast.CompilationUnit) {
	if n.Package != nil {
		u.packageDecl(n.Package)
		u.l.blankLine()
	}

	for _, imp := range n.Imports {
		u.importDecl(imp)
		u.l.newline()
	}
	if len(n.Imports) > 0 {
		u.l.blankLine()
	}

	for i, decl := range n.Types {
		if i > 0 {
			u.l.blankLine()
		}
		u.classDecl(decl)
		u.l.newline()
	}
}

func (u *Unparser) packageDecl(n *ast.PackageDecl) {
	if len(n.Annotations) > 0 {
		u.unsupported("package annotation", n.Pos())
	}
	u.l.word("package")
	u.qualifiedName(n.Name)
	u.l.symbol(";")
}

func (u *Unparser) importDecl(n *ast.Import) {
	u.l.word("import")
	if n.Static {
		u.l.word("static")
	}
	u.qualifiedName(n.Name)
	u.l.symbol(";")
}

// qualifiedName a.b.c，按需导入的最后一段 "*" 作为符号输出
func (u *Unparser) qualifiedName(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Ident:
		u.l.word(n.Name)
	case *ast.FieldAccess:
		u.qualifiedName(n.X)
		u.l.symbol(".")
		if n.Name == "*" {
			u.l.symbol("*")
		} else {
			u.l.word(n.Name)
		}
	case nil:
		u.malformed(u.pos(e), "missing name")
	default:
		u.malformed(e.Pos(), "%s is not a qualified name", e.Kind())
	}
}

// ============================================================================
// 修饰符与注解
// ============================================================================

// modifiers 先输出注解，再按固定顺序输出关键字
//
// ownLine 为 true 时（类型、方法、字段）美化模式下每个注解独占一行。
func (u *Unparser) modifiers(m *ast.Modifiers, ownLine bool) {
	if m == nil {
		return
	}
	for _, a := range m.Annotations {
		u.annotation(a)
		if ownLine {
			u.l.newline()
		} else {
			u.l.space()
		}
	}
	for _, kw := range m.Keywords() {
		u.l.word(kw)
	}
}

func (u *Unparser) annotation(a *ast.Annotation) {
	if a == nil {
		u.malformed(u.pos(nil), "nil annotation")
	}
	u.l.symbol("@")
	u.qualifiedName(a.Type)
	if a.Args == nil {
		return
	}

	u.l.symbol("(")
	for i, arg := range a.Args {
		if i > 0 {
			u.l.comma()
		}
		if assign, ok := arg.(*ast.Assign); ok {
			u.expr(assign.X)
			u.l.operator("=")
			u.elementValue(assign.Y)
			continue
		}
		u.elementValue(arg)
	}
	u.l.symbol(")")
}

// elementValue 注解参数值，数组形式 {a, b} 不支持
func (u *Unparser) elementValue(e ast.Expr) {
	if arr, ok := e.(*ast.NewArray); ok {
		u.unsupported("array-valued annotation argument", arr.Pos())
	}
	u.expr(e)
}

// ============================================================================
// 类型声明
// ============================================================================

func (u *Unparser) classDecl(n *ast.ClassDecl) {
	defer u.leave(u.enter(n))

	if n.Name == "" {
		u.malformed(n.Pos(), "class declaration without a name")
	}

	u.modifiers(n.Modifiers, true)
	if n.IsInterface() {
		u.l.word("interface")
	} else {
		u.l.word("class")
	}
	u.l.word(n.Name)
	u.typeParameters(n.TypeParams)

	if n.IsInterface() {
		// 接口的父接口写在 extends 后面
		supers := n.Implements
		if n.Extends != nil {
			supers = append([]ast.Expr{n.Extends}, supers...)
		}
		if len(supers) > 0 {
			u.l.word("extends")
			u.typeList(supers)
		}
	} else {
		if n.Extends != nil {
			u.l.word("extends")
			u.typ(n.Extends)
		}
		if len(n.Implements) > 0 {
			u.l.word("implements")
			u.typeList(n.Implements)
		}
	}

	depth := u.classes.depth()
	u.classes.push(n.Name)
	u.classBody(n.Members)
	u.classes.pop()
	if u.classes.depth() != depth {
		u.malformed(n.Pos(), "class context of %s not restored", n.Name)
	}
}

// classBody { members }，匿名类体也走这里但不压栈
func (u *Unparser) classBody(members []ast.Member) {
	u.l.openBlock()
	for i, m := range members {
		if i > 0 && !(isField(m) && isField(members[i-1])) {
			u.l.blankLine()
		}
		u.member(m)
		if memberNeedsTerminator(m) {
			u.l.symbol(";")
		}
		u.l.newline()
	}
	u.l.closeBlock()
}

func isField(m ast.Member) bool {
	_, ok := m.(*ast.VarDecl)
	return ok
}

func (u *Unparser) member(m ast.Member) {
	defer u.leave(u.enter(m))

	switch n := m.(type) {
	case *ast.ClassDecl:
		u.classDecl(n)
	case *ast.MethodDecl:
		u.methodDecl(n)
	case *ast.ConstructorDecl:
		u.constructorDecl(n)
	case *ast.InitializerBlock:
		u.initializer(n)
	case *ast.VarDecl:
		u.varDecl(n, true)
	case nil:
		u.malformed(u.pos(nil), "nil member")
	default:
		u.unsupported(m.Kind().String(), m.Pos())
	}
}

// ============================================================================
// 方法与构造器
// ============================================================================

func (u *Unparser) methodDecl(n *ast.MethodDecl) {
	u.modifiers(n.Modifiers, true)
	if len(n.TypeParams) > 0 {
		u.l.space()
		u.typeParameters(n.TypeParams)
	}
	u.typ(n.ReturnType)
	u.l.word(n.Name)
	u.parameters(n.Params)
	u.throws(n.Throws)
	if n.Body != nil {
		u.block(n.Body)
	}
}

// constructorDecl 构造器的名字总是最内层类名
func (u *Unparser) constructorDecl(n *ast.ConstructorDecl) {
	name, err := u.classes.current()
	if err != nil {
		u.malformed(n.Pos(), "constructor outside of a class body")
	}

	u.modifiers(n.Modifiers, true)
	if len(n.TypeParams) > 0 {
		u.l.space()
		u.typeParameters(n.TypeParams)
	}
	u.l.word(name)
	u.parameters(n.Params)
	u.throws(n.Throws)
	if n.Body != nil {
		u.block(n.Body)
	}
}

func (u *Unparser) initializer(n *ast.InitializerBlock) {
	if n.Static {
		u.l.word("static")
	}
	u.block(n.Body)
}

func (u *Unparser) parameters(params []*ast.VarDecl) {
	u.l.symbol("(")
	for i, p := range params {
		if i > 0 {
			u.l.comma()
		}
		u.parameter(p)
	}
	u.l.symbol(")")
}

// parameter 可变参数的 T[] 输出为 T...
func (u *Unparser) parameter(p *ast.VarDecl) {
	if p == nil {
		u.malformed(u.pos(nil), "nil parameter")
	}
	u.modifiers(p.Modifiers, false)

	if p.Modifiers.IsVarargs() {
		arr, ok := p.Type.(*ast.ArrayType)
		if !ok {
			u.malformed(p.Pos(), "varargs parameter %s is not an array type", p.Name)
		}
		u.typ(arr.Elem)
		u.l.symbol("...")
	} else {
		u.typ(p.Type)
	}
	u.l.word(p.Name)
}

func (u *Unparser) throws(types []ast.Expr) {
	if len(types) == 0 {
		return
	}
	u.l.word("throws")
	u.typeList(types)
}

// varDecl 字段、局部变量、资源声明：修饰符 类型 名字 [= 初始值]
//
// 字段的注解在美化模式下独占一行，局部变量的注解留在同一行。
func (u *Unparser) varDecl(n *ast.VarDecl, field bool) {
	u.modifiers(n.Modifiers, field)
	u.typ(n.Type)
	u.l.word(n.Name)
	if n.Init != nil {
		u.l.operator("=")
		u.expr(n.Init)
	}
}

// ============================================================================
// 类型参数
// ============================================================================

func (u *Unparser) typeParameters(params []*ast.TypeParameter) {
	if len(params) == 0 {
		return
	}
	u.l.symbol("<")
	for i, tp := range params {
		if i > 0 {
			u.l.comma()
		}
		u.typeParameter(tp)
	}
	u.l.symbol(">")
}

func (u *Unparser) typeParameter(n *ast.TypeParameter) {
	if len(n.Annotations) > 0 {
		u.unsupported("type parameter annotation", n.Pos())
	}
	if len(n.Bounds) > 1 {
		u.unsupported("multiple type parameter bounds", n.Pos())
	}
	u.l.word(n.Name)
	if len(n.Bounds) == 1 {
		u.l.word("extends")
		u.typ(n.Bounds[0])
	}
}

func (u *Unparser) typeList(types []ast.Expr) {
	for i, t := range types {
		if i > 0 {
			u.l.comma()
		}
		u.typ(t)
	}
}
