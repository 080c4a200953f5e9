package unparse

import "github.com/tangzhangming/javamin/internal/ast"

// terminated 需要在末尾补 ';' 的语句种类
//
// 其余语句以 '}' 结尾或自带分号（do-while）。
var terminated = map[ast.Kind]bool{
	ast.ASSERT:               true,
	ast.BREAK:                true,
	ast.CONTINUE:             true,
	ast.EXPRESSION_STATEMENT: true,
	ast.RETURN:               true,
	ast.THROW:                true,
	ast.VARIABLE:             true,
}

// needsTerminator 语句后面是否需要 ';'
func needsTerminator(kind ast.Kind) bool {
	return terminated[kind]
}

// memberNeedsTerminator 类成员后面是否需要 ';'
//
// 字段以及没有方法体的方法、构造器需要；有方法体的方法、初始化块、嵌套类型不需要。
func memberNeedsTerminator(m ast.Member) bool {
	switch m := m.(type) {
	case *ast.VarDecl:
		return true
	case *ast.MethodDecl:
		return m.Body == nil
	case *ast.ConstructorDecl:
		return m.Body == nil
	}
	return false
}
