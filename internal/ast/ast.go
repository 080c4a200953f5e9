// Package ast 定义 Java 源码的抽象语法树
//
// 节点集合是封闭的：Node 的全部实现都在本文件中，反解析器通过 type switch 分派。
// 节点由语法分析器一次性构建，之后只读。
package ast

import "github.com/tangzhangming/javamin/internal/token"

// Node 是所有 AST 节点的基接口
type Node interface {
	Pos() token.Position // 返回节点在源代码中的起始位置
	Kind() Kind          // 返回节点种类
}

// Expr 表示表达式节点。类型引用（int、List<String>、a.b.C）也是表达式
type Expr interface {
	Node
	exprNode()
}

// Stmt 表示语句节点
type Stmt interface {
	Node
	stmtNode()
}

// Member 表示类体成员
type Member interface {
	Node
	memberNode()
}

// ============================================================================
// 顶层
// ============================================================================

// CompilationUnit 一个源文件
type CompilationUnit struct {
	Start   token.Position
	Package *PackageDecl // 可为 nil
	Imports []*Import
	Types   []*ClassDecl
}

// PackageDecl package a.b.c;
type PackageDecl struct {
	Start       token.Position
	Annotations []*Annotation
	Name        Expr
}

// Import import [static] a.b.C; 按需导入时 Name 的最后一段为 "*"
type Import struct {
	Start  token.Position
	Static bool
	Name   Expr
}

func (n *CompilationUnit) Pos() token.Position { return n.Start }
func (n *PackageDecl) Pos() token.Position     { return n.Start }
func (n *Import) Pos() token.Position          { return n.Start }

func (n *CompilationUnit) Kind() Kind { return COMPILATION_UNIT }
func (n *PackageDecl) Kind() Kind     { return PACKAGE }
func (n *Import) Kind() Kind          { return IMPORT }

// ============================================================================
// 声明
// ============================================================================

// Modifiers 修饰符与注解
type Modifiers struct {
	Start       token.Position
	Flags       Flag
	Annotations []*Annotation
}

// Annotation @Type 或 @Type(args)
//
// 单值参数直接作为 Args 元素；a = v 形式以 *Assign 表示。
type Annotation struct {
	Start token.Position
	Type  Expr
	Args  []Expr
}

// ClassDecl 类或接口声明，也用于匿名类体（Name 为空）
//
// 接口由 Modifiers 中的 FlagInterface 标记，接口继承的父接口放在 Implements。
type ClassDecl struct {
	Start      token.Position
	Modifiers  *Modifiers
	Name       string
	TypeParams []*TypeParameter
	Extends    Expr
	Implements []Expr
	Members    []Member
}

// MethodDecl 方法声明，Body 为 nil 表示抽象方法或接口方法
type MethodDecl struct {
	Start      token.Position
	Modifiers  *Modifiers
	TypeParams []*TypeParameter
	ReturnType Expr
	Name       string
	Params     []*VarDecl
	Throws     []Expr
	Body       *Block
}

// ConstructorDecl 构造器声明
//
// 构造器没有名字字段，输出时使用所在类的名字。
type ConstructorDecl struct {
	Start      token.Position
	Modifiers  *Modifiers
	TypeParams []*TypeParameter
	Params     []*VarDecl
	Throws     []Expr
	Body       *Block
}

// InitializerBlock 实例或静态初始化块
type InitializerBlock struct {
	Start  token.Position
	Static bool
	Body   *Block
}

// VarDecl 变量声明：字段、局部变量、参数、catch 参数、资源
//
// 一条 int a, b; 声明会拆成两个 VarDecl。
type VarDecl struct {
	Start     token.Position
	Modifiers *Modifiers
	Type      Expr
	Name      string
	Init      Expr
}

// TypeParameter 类型参数 T extends Bound
type TypeParameter struct {
	Start       token.Position
	Annotations []*Annotation
	Name        string
	Bounds      []Expr
}

func (n *Modifiers) Pos() token.Position        { return n.Start }
func (n *Annotation) Pos() token.Position       { return n.Start }
func (n *ClassDecl) Pos() token.Position        { return n.Start }
func (n *MethodDecl) Pos() token.Position       { return n.Start }
func (n *ConstructorDecl) Pos() token.Position  { return n.Start }
func (n *InitializerBlock) Pos() token.Position { return n.Start }
func (n *VarDecl) Pos() token.Position          { return n.Start }
func (n *TypeParameter) Pos() token.Position    { return n.Start }

func (n *Modifiers) Kind() Kind        { return MODIFIERS }
func (n *Annotation) Kind() Kind       { return ANNOTATION }
func (n *MethodDecl) Kind() Kind       { return METHOD }
func (n *ConstructorDecl) Kind() Kind  { return CONSTRUCTOR }
func (n *InitializerBlock) Kind() Kind { return INITIALIZER }
func (n *VarDecl) Kind() Kind          { return VARIABLE }
func (n *TypeParameter) Kind() Kind    { return TYPE_PARAMETER }

// Kind 接口返回 INTERFACE，其余返回 CLASS
func (n *ClassDecl) Kind() Kind {
	if n.Modifiers.IsInterface() {
		return INTERFACE
	}
	return CLASS
}

// IsInterface 是否为接口声明
func (n *ClassDecl) IsInterface() bool { return n.Modifiers.IsInterface() }

// ============================================================================
// 类型
// ============================================================================

// PrimitiveType 基本类型或 void
type PrimitiveType struct {
	Start token.Position
	Name  string
}

// ArrayType Elem[]
type ArrayType struct {
	Start token.Position
	Elem  Expr
}

// ParameterizedType Type<Args>，Args 为空表示菱形 <>
type ParameterizedType struct {
	Start token.Position
	Type  Expr
	Args  []Expr
}

// Wildcard ? / ? extends Bound / ? super Bound
type Wildcard struct {
	Start    token.Position
	WildKind Kind // UNBOUNDED_WILDCARD, EXTENDS_WILDCARD 或 SUPER_WILDCARD
	Bound    Expr
}

// UnionType multi-catch 的 A | B
type UnionType struct {
	Start        token.Position
	Alternatives []Expr
}

// AnnotatedType 带类型注解的类型 @NonNull String
type AnnotatedType struct {
	Start       token.Position
	Annotations []*Annotation
	Underlying  Expr
}

func (n *PrimitiveType) Pos() token.Position     { return n.Start }
func (n *ArrayType) Pos() token.Position         { return n.Start }
func (n *ParameterizedType) Pos() token.Position { return n.Start }
func (n *Wildcard) Pos() token.Position          { return n.Start }
func (n *UnionType) Pos() token.Position         { return n.Start }
func (n *AnnotatedType) Pos() token.Position     { return n.Start }

func (n *PrimitiveType) Kind() Kind     { return PRIMITIVE_TYPE }
func (n *ArrayType) Kind() Kind         { return ARRAY_TYPE }
func (n *ParameterizedType) Kind() Kind { return PARAMETERIZED_TYPE }
func (n *Wildcard) Kind() Kind          { return n.WildKind }
func (n *UnionType) Kind() Kind         { return UNION_TYPE }
func (n *AnnotatedType) Kind() Kind     { return ANNOTATED_TYPE }

// ============================================================================
// 语句
// ============================================================================

// Block { stmts }
type Block struct {
	Start token.Position
	Stmts []Stmt
}

// ExprStmt 表达式语句
type ExprStmt struct {
	Start token.Position
	X     Expr
}

// If if (Cond) Then else Else
type If struct {
	Start token.Position
	Cond  Expr
	Then  Stmt
	Else  Stmt // 可为 nil
}

// For 经典三段式 for 循环
type For struct {
	Start  token.Position
	Init   []Stmt
	Cond   Expr // 可为 nil
	Update []*ExprStmt
	Body   Stmt
}

// ForEach for (Var : X) Body
type ForEach struct {
	Start token.Position
	Var   *VarDecl
	X     Expr
	Body  Stmt
}

// While while (Cond) Body
type While struct {
	Start token.Position
	Cond  Expr
	Body  Stmt
}

// DoWhile do Body while (Cond);
type DoWhile struct {
	Start token.Position
	Body  Stmt
	Cond  Expr
}

// Switch switch (Tag) { cases }
type Switch struct {
	Start token.Position
	Tag   Expr
	Cases []*Case
}

// Case case Expr: 或 default:（Expr 为 nil）
type Case struct {
	Start token.Position
	Expr  Expr
	Body  []Stmt
}

// Try try (Resources) Body catch... finally Finally
//
// Resources 的元素是 *VarDecl 或 Expr。
type Try struct {
	Start     token.Position
	Resources []Node
	Body      *Block
	Catches   []*Catch
	Finally   *Block
}

// Catch catch (Param) Body
type Catch struct {
	Start token.Position
	Param *VarDecl
	Body  *Block
}

// Return return X;
type Return struct {
	Start token.Position
	X     Expr // 可为 nil
}

// Throw throw X;
type Throw struct {
	Start token.Position
	X     Expr
}

// Break break [Label];
type Break struct {
	Start token.Position
	Label string
}

// Continue continue [Label];
type Continue struct {
	Start token.Position
	Label string
}

// Assert assert Cond [: Detail];
type Assert struct {
	Start  token.Position
	Cond   Expr
	Detail Expr
}

// Labeled label: Body
type Labeled struct {
	Start token.Position
	Label string
	Body  Stmt
}

// Synchronized synchronized (Lock) Body
type Synchronized struct {
	Start token.Position
	Lock  Expr
	Body  *Block
}

// Empty 空语句 ;
type Empty struct {
	Start token.Position
}

func (n *Block) Pos() token.Position        { return n.Start }
func (n *ExprStmt) Pos() token.Position     { return n.Start }
func (n *If) Pos() token.Position           { return n.Start }
func (n *For) Pos() token.Position          { return n.Start }
func (n *ForEach) Pos() token.Position      { return n.Start }
func (n *While) Pos() token.Position        { return n.Start }
func (n *DoWhile) Pos() token.Position      { return n.Start }
func (n *Switch) Pos() token.Position       { return n.Start }
func (n *Case) Pos() token.Position         { return n.Start }
func (n *Try) Pos() token.Position          { return n.Start }
func (n *Catch) Pos() token.Position        { return n.Start }
func (n *Return) Pos() token.Position       { return n.Start }
func (n *Throw) Pos() token.Position        { return n.Start }
func (n *Break) Pos() token.Position        { return n.Start }
func (n *Continue) Pos() token.Position     { return n.Start }
func (n *Assert) Pos() token.Position       { return n.Start }
func (n *Labeled) Pos() token.Position      { return n.Start }
func (n *Synchronized) Pos() token.Position { return n.Start }
func (n *Empty) Pos() token.Position        { return n.Start }

func (n *Block) Kind() Kind        { return BLOCK }
func (n *ExprStmt) Kind() Kind     { return EXPRESSION_STATEMENT }
func (n *If) Kind() Kind           { return IF }
func (n *For) Kind() Kind          { return FOR_LOOP }
func (n *ForEach) Kind() Kind      { return ENHANCED_FOR_LOOP }
func (n *While) Kind() Kind        { return WHILE_LOOP }
func (n *DoWhile) Kind() Kind      { return DO_WHILE_LOOP }
func (n *Switch) Kind() Kind       { return SWITCH }
func (n *Case) Kind() Kind         { return CASE }
func (n *Try) Kind() Kind          { return TRY }
func (n *Catch) Kind() Kind        { return CATCH }
func (n *Return) Kind() Kind       { return RETURN }
func (n *Throw) Kind() Kind        { return THROW }
func (n *Break) Kind() Kind        { return BREAK }
func (n *Continue) Kind() Kind     { return CONTINUE }
func (n *Assert) Kind() Kind       { return ASSERT }
func (n *Labeled) Kind() Kind      { return LABELED_STATEMENT }
func (n *Synchronized) Kind() Kind { return SYNCHRONIZED }
func (n *Empty) Kind() Kind        { return EMPTY_STATEMENT }

// ============================================================================
// 表达式
// ============================================================================

// Ident 标识符，this 和 super 也以 Ident 表示
type Ident struct {
	Start token.Position
	Name  string
}

// FieldAccess X.Name，也用于限定名、Foo.class、Outer.this
type FieldAccess struct {
	Start token.Position
	X     Expr
	Name  string
}

// Literal 字面量，Raw 是源码原文
type Literal struct {
	Start   token.Position
	LitKind Kind
	Raw     string
}

// Binary X Op Y
type Binary struct {
	Start token.Position
	Op    Kind
	X     Expr
	Y     Expr
}

// Unary 前缀或后缀一元运算
type Unary struct {
	Start token.Position
	Op    Kind
	X     Expr
}

// Assign X = Y
type Assign struct {
	Start token.Position
	X     Expr
	Y     Expr
}

// CompoundAssign X op= Y
type CompoundAssign struct {
	Start token.Position
	Op    Kind
	X     Expr
	Y     Expr
}

// MethodCall Fn(Args)，Fn 可以是 Ident 或 FieldAccess；this(...)/super(...) 同样适用
type MethodCall struct {
	Start    token.Position
	Fn       Expr
	TypeArgs []Expr // 显式类型实参 obj.<T>m()
	Args     []Expr
}

// New [Outer.]new <TypeArgs> Type(Args) [Body]
type New struct {
	Start    token.Position
	Outer    Expr
	TypeArgs []Expr
	Type     Expr
	Args     []Expr
	Body     *ClassDecl // 匿名类体
}

// NewArray 数组创建
//
// Elem 是最外层被创建数组的元素类型：new int[3][] 的 Elem 为 int[]，Dims 为 [3]。
// 只有初始化器的 {1, 2} 形式 Elem 为 nil。
type NewArray struct {
	Start   token.Position
	Elem    Expr
	Dims    []Expr
	Init    []Expr
	HasInit bool
}

// Conditional Cond ? Then : Else
type Conditional struct {
	Start token.Position
	Cond  Expr
	Then  Expr
	Else  Expr
}

// InstanceOf X instanceof Type
type InstanceOf struct {
	Start token.Position
	X     Expr
	Type  Expr
}

// Cast (Type) X
type Cast struct {
	Start token.Position
	Type  Expr
	X     Expr
}

// Parens (X)
type Parens struct {
	Start token.Position
	X     Expr
}

// ArrayAccess X[Index]
type ArrayAccess struct {
	Start token.Position
	X     Expr
	Index Expr
}

// Lambda (Params) -> Body，Body 是 Expr 或 *Block
type Lambda struct {
	Start  token.Position
	Params []*VarDecl
	Body   Node
}

// MethodRef X::Name
type MethodRef struct {
	Start token.Position
	X     Expr
	Name  string
}

func (n *Ident) Pos() token.Position          { return n.Start }
func (n *FieldAccess) Pos() token.Position    { return n.Start }
func (n *Literal) Pos() token.Position        { return n.Start }
func (n *Binary) Pos() token.Position         { return n.Start }
func (n *Unary) Pos() token.Position          { return n.Start }
func (n *Assign) Pos() token.Position         { return n.Start }
func (n *CompoundAssign) Pos() token.Position { return n.Start }
func (n *MethodCall) Pos() token.Position     { return n.Start }
func (n *New) Pos() token.Position            { return n.Start }
func (n *NewArray) Pos() token.Position       { return n.Start }
func (n *Conditional) Pos() token.Position    { return n.Start }
func (n *InstanceOf) Pos() token.Position     { return n.Start }
func (n *Cast) Pos() token.Position           { return n.Start }
func (n *Parens) Pos() token.Position         { return n.Start }
func (n *ArrayAccess) Pos() token.Position    { return n.Start }
func (n *Lambda) Pos() token.Position         { return n.Start }
func (n *MethodRef) Pos() token.Position      { return n.Start }

func (n *Ident) Kind() Kind          { return IDENTIFIER }
func (n *FieldAccess) Kind() Kind    { return MEMBER_SELECT }
func (n *Literal) Kind() Kind        { return n.LitKind }
func (n *Binary) Kind() Kind         { return n.Op }
func (n *Unary) Kind() Kind          { return n.Op }
func (n *Assign) Kind() Kind         { return ASSIGNMENT }
func (n *CompoundAssign) Kind() Kind { return n.Op }
func (n *MethodCall) Kind() Kind     { return METHOD_INVOCATION }
func (n *New) Kind() Kind            { return NEW_CLASS }
func (n *NewArray) Kind() Kind       { return NEW_ARRAY }
func (n *Conditional) Kind() Kind    { return CONDITIONAL_EXPRESSION }
func (n *InstanceOf) Kind() Kind     { return INSTANCE_OF }
func (n *Cast) Kind() Kind           { return TYPE_CAST }
func (n *Parens) Kind() Kind         { return PARENTHESIZED }
func (n *ArrayAccess) Kind() Kind    { return ARRAY_ACCESS }
func (n *Lambda) Kind() Kind         { return LAMBDA_EXPRESSION }
func (n *MethodRef) Kind() Kind      { return MEMBER_REFERENCE }

// ============================================================================
// 接口标记
// ============================================================================

func (*Ident) exprNode()             {}
func (*FieldAccess) exprNode()       {}
func (*Literal) exprNode()           {}
func (*Binary) exprNode()            {}
func (*Unary) exprNode()             {}
func (*Assign) exprNode()            {}
func (*CompoundAssign) exprNode()    {}
func (*MethodCall) exprNode()        {}
func (*New) exprNode()               {}
func (*NewArray) exprNode()          {}
func (*Conditional) exprNode()       {}
func (*InstanceOf) exprNode()        {}
func (*Cast) exprNode()              {}
func (*Parens) exprNode()            {}
func (*ArrayAccess) exprNode()       {}
func (*Lambda) exprNode()            {}
func (*MethodRef) exprNode()         {}
func (*PrimitiveType) exprNode()     {}
func (*ArrayType) exprNode()         {}
func (*ParameterizedType) exprNode() {}
func (*Wildcard) exprNode()          {}
func (*UnionType) exprNode()         {}
func (*AnnotatedType) exprNode()     {}
func (*Annotation) exprNode()        {}

func (*Block) stmtNode()        {}
func (*ExprStmt) stmtNode()     {}
func (*If) stmtNode()           {}
func (*For) stmtNode()          {}
func (*ForEach) stmtNode()      {}
func (*While) stmtNode()        {}
func (*DoWhile) stmtNode()      {}
func (*Switch) stmtNode()       {}
func (*Try) stmtNode()          {}
func (*Return) stmtNode()       {}
func (*Throw) stmtNode()        {}
func (*Break) stmtNode()        {}
func (*Continue) stmtNode()     {}
func (*Assert) stmtNode()       {}
func (*Labeled) stmtNode()      {}
func (*Synchronized) stmtNode() {}
func (*Empty) stmtNode()        {}
func (*ClassDecl) stmtNode()    {}
func (*VarDecl) stmtNode()      {}

func (*ClassDecl) memberNode()        {}
func (*MethodDecl) memberNode()       {}
func (*ConstructorDecl) memberNode()  {}
func (*InitializerBlock) memberNode() {}
func (*VarDecl) memberNode()          {}
