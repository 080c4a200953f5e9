// Package unparse 把 Java 语法树还原为源码
//
// 两种输出模式共用同一次遍历：
//   - ModeMinimal：最少的 token 间空白，只在两个单词之间（或两个会粘连的符号之间）留一个空格
//   - ModePretty：Allman 风格缩进，每条语句、每个成员一行
//
// 不支持的结构（标签语句、多重类型边界、类型注解、lambda 等）返回
// *UnsupportedError，违反输入约定的树返回 *ContractError，两种情况都不产生输出。
package unparse

import (
	"fmt"

	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/token"
)

// Mode 输出模式
type Mode int

const (
	ModeMinimal Mode = iota // 最少 token 间空白
	ModePretty              // 缩进美化
)

func (m Mode) String() string {
	switch m {
	case ModeMinimal:
		return "minimal"
	case ModePretty:
		return "pretty"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// DefaultIndent 美化模式的默认缩进
const DefaultIndent = "\t"

// Option 配置 Unparser
type Option func(*Unparser)

// WithIndent 设置美化模式每一级的缩进字符串
func WithIndent(indent string) Option {
	return func(u *Unparser) {
		u.indent = indent
	}
}

// Unparser 语法树反解析器
//
// 每次 Unparse 都使用全新的输出状态，同一个 Unparser 可以顺序复用，
// 但不能被多个 goroutine 同时使用。
type Unparser struct {
	mode    Mode
	indent  string
	l       layout
	classes classStack
	at      token.Position // 最近一个有位置的外层节点
}

// New 创建反解析器
func New(mode Mode, opts ...Option) *Unparser {
	u := &Unparser{mode: mode, indent: DefaultIndent}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Mode 返回输出模式
func (u *Unparser) Mode() Mode {
	return u.mode
}

// Unparse 输出节点对应的源码
//
// 节点通常是 *ast.CompilationUnit，也可以是任意声明、语句或表达式。
// 语句本身的 ';' 由外层结构补上，单独输出一条语句时不带分号。
func (u *Unparser) Unparse(node ast.Node) (out string, err error) {
	if u.mode == ModePretty {
		u.l = newPrettyLayout(u.indent)
	} else {
		u.l = &minimalLayout{}
	}
	u.classes = classStack{}
	u.at = token.Position{}

	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			out, err = "", a.err
		}
		u.l = nil
	}()

	u.node(node)
	return u.l.String(), nil
}

// Minimal 以最小模式输出
func Minimal(node ast.Node) (string, error) {
	return New(ModeMinimal).Unparse(node)
}

// Pretty 以美化模式输出，indent 为空时使用制表符
func Pretty(node ast.Node, indent string) (string, error) {
	if indent == "" {
		indent = DefaultIndent
	}
	return New(ModePretty, WithIndent(indent)).Unparse(node)
}

// ============================================================================
// 分派
// ============================================================================

// node 按节点种类分派。声明优先于语句和表达式，因为 ClassDecl、VarDecl
// 同时实现了 Stmt 与 Member。
func (u *Unparser) node(n ast.Node) {
	defer u.leave(u.enter(n))

	switch n := n.(type) {
	case nil:
		u.malformed(token.Position{}, "nil node")
	case *ast.CompilationUnit:
		u.unit(n)
	case *ast.PackageDecl:
		u.packageDecl(n)
	case *ast.Import:
		u.importDecl(n)
	case *ast.ClassDecl:
		u.classDecl(n)
	case *ast.MethodDecl:
		u.methodDecl(n)
	case *ast.ConstructorDecl:
		u.constructorDecl(n)
	case *ast.InitializerBlock:
		u.initializer(n)
	case *ast.VarDecl:
		u.varDecl(n, false)
	case *ast.TypeParameter:
		u.typeParameter(n)
	case *ast.Modifiers:
		u.modifiers(n, false)
	case *ast.Case:
		u.caseClause(n)
	case *ast.Catch:
		u.catchClause(n)
	case ast.Stmt:
		u.stmt(n)
	case ast.Expr:
		u.expr(n)
	default:
		u.unsupported(n.Kind().String(), n.Pos())
	}
}

// pos 取节点位置，n 为 nil 时取外层节点的位置
func (u *Unparser) pos(n ast.Node) token.Position {
	if n == nil {
		return u.at
	}
	return n.Pos()
}

// enter 进入节点，返回进入前的外层位置，由 leave 恢复
func (u *Unparser) enter(n ast.Node) token.Position {
	saved := u.at
	if n != nil {
		if p := n.Pos(); p.IsValid() {
			u.at = p
		}
	}
	return saved
}

func (u *Unparser) leave(saved token.Position) {
	u.at = saved
}
