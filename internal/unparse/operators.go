package unparse

import (
	"strings"

	"github.com/tangzhangming/javamin/internal/ast"
)

// ============================================================================
// 运算符表
// ============================================================================

var operatorTexts = map[ast.Kind]string{
	// 二元
	ast.MULTIPLY:             "*",
	ast.DIVIDE:               "/",
	ast.REMAINDER:            "%",
	ast.PLUS:                 "+",
	ast.MINUS:                "-",
	ast.LEFT_SHIFT:           "<<",
	ast.RIGHT_SHIFT:          ">>",
	ast.UNSIGNED_RIGHT_SHIFT: ">>>",
	ast.LESS_THAN:            "<",
	ast.GREATER_THAN:         ">",
	ast.LESS_THAN_EQUAL:      "<=",
	ast.GREATER_THAN_EQUAL:   ">=",
	ast.EQUAL_TO:             "==",
	ast.NOT_EQUAL_TO:         "!=",
	ast.AND:                  "&",
	ast.XOR:                  "^",
	ast.OR:                   "|",
	ast.CONDITIONAL_AND:      "&&",
	ast.CONDITIONAL_OR:       "||",

	// 一元
	ast.POSTFIX_INCREMENT:  "++",
	ast.POSTFIX_DECREMENT:  "--",
	ast.PREFIX_INCREMENT:   "++",
	ast.PREFIX_DECREMENT:   "--",
	ast.UNARY_PLUS:         "+",
	ast.UNARY_MINUS:        "-",
	ast.BITWISE_COMPLEMENT: "~",
	ast.LOGICAL_COMPLEMENT: "!",

	// 复合赋值
	ast.MULTIPLY_ASSIGNMENT:             "*=",
	ast.DIVIDE_ASSIGNMENT:               "/=",
	ast.REMAINDER_ASSIGNMENT:            "%=",
	ast.PLUS_ASSIGNMENT:                 "+=",
	ast.MINUS_ASSIGNMENT:                "-=",
	ast.LEFT_SHIFT_ASSIGNMENT:           "<<=",
	ast.RIGHT_SHIFT_ASSIGNMENT:          ">>=",
	ast.UNSIGNED_RIGHT_SHIFT_ASSIGNMENT: ">>>=",
	ast.AND_ASSIGNMENT:                  "&=",
	ast.XOR_ASSIGNMENT:                  "^=",
	ast.OR_ASSIGNMENT:                   "|=",

	// 通配符的边界关键字单独输出
	ast.UNBOUNDED_WILDCARD: "?",
	ast.EXTENDS_WILDCARD:   "?",
	ast.SUPER_WILDCARD:     "?",
}

// operatorText 返回运算符种类的源码文本
func operatorText(kind ast.Kind) (string, error) {
	text, ok := operatorTexts[kind]
	if !ok {
		return "", &UnsupportedError{Construct: "operator " + kind.String()}
	}
	return text, nil
}

// isPrefix 一元运算符写在操作数之前还是之后
func isPrefix(kind ast.Kind) (bool, error) {
	switch kind {
	case ast.BITWISE_COMPLEMENT, ast.UNARY_MINUS, ast.UNARY_PLUS, ast.LOGICAL_COMPLEMENT,
		ast.PREFIX_INCREMENT, ast.PREFIX_DECREMENT:
		return true, nil
	case ast.POSTFIX_INCREMENT, ast.POSTFIX_DECREMENT:
		return false, nil
	}
	return false, &UnsupportedError{Construct: "unary operator " + kind.String()}
}

// mergesWith 判断两个紧挨着的符号是否会被词法器读成别的 token
//
// 例如 "-" 后接 "-" 会变成 "--"，"+" 后接 "++" 会变成 "++" "+"。
func mergesWith(prev, next string) bool {
	if prev == "" || next == "" {
		return false
	}
	a, b := prev[len(prev)-1], next[0]
	switch {
	case a == b:
		return strings.IndexByte("+-&|<=", a) >= 0
	case b == '=':
		return strings.IndexByte("+-*/%&|^!<>", a) >= 0
	case a == '-' && b == '>':
		return true
	case a == '/' && (b == '/' || b == '*'):
		return true
	}
	return false
}
