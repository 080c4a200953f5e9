package ast

import "fmt"

// ============================================================================
// Kind - 节点种类
// ============================================================================
//
// Kind 覆盖所有节点种类以及所有运算符种类。二元、一元、复合赋值节点的 Kind()
// 直接返回其运算符种类（例如 Binary 的 Kind 可能是 PLUS 或 CONDITIONAL_AND），
// 这样反解析器只需要一张 Kind -> 文本 的运算符表。
//
// ============================================================================

// Kind 节点种类
type Kind int

const (
	INVALID Kind = iota

	// ----------------------------------------------------------
	// 顶层与声明
	// ----------------------------------------------------------
	COMPILATION_UNIT
	PACKAGE
	IMPORT
	CLASS
	INTERFACE
	ENUM
	METHOD
	CONSTRUCTOR
	INITIALIZER
	VARIABLE
	TYPE_PARAMETER
	MODIFIERS
	ANNOTATION

	// ----------------------------------------------------------
	// 类型
	// ----------------------------------------------------------
	PRIMITIVE_TYPE
	ARRAY_TYPE
	PARAMETERIZED_TYPE
	UNBOUNDED_WILDCARD
	EXTENDS_WILDCARD
	SUPER_WILDCARD
	UNION_TYPE
	ANNOTATED_TYPE

	// ----------------------------------------------------------
	// 语句
	// ----------------------------------------------------------
	BLOCK
	EXPRESSION_STATEMENT
	IF
	FOR_LOOP
	ENHANCED_FOR_LOOP
	WHILE_LOOP
	DO_WHILE_LOOP
	SWITCH
	CASE
	TRY
	CATCH
	RETURN
	THROW
	BREAK
	CONTINUE
	ASSERT
	LABELED_STATEMENT
	SYNCHRONIZED
	EMPTY_STATEMENT

	// ----------------------------------------------------------
	// 表达式
	// ----------------------------------------------------------
	IDENTIFIER
	MEMBER_SELECT
	INT_LITERAL
	LONG_LITERAL
	FLOAT_LITERAL
	DOUBLE_LITERAL
	BOOLEAN_LITERAL
	CHAR_LITERAL
	STRING_LITERAL
	NULL_LITERAL
	METHOD_INVOCATION
	NEW_CLASS
	NEW_ARRAY
	CONDITIONAL_EXPRESSION
	INSTANCE_OF
	TYPE_CAST
	PARENTHESIZED
	ARRAY_ACCESS
	LAMBDA_EXPRESSION
	MEMBER_REFERENCE
	ASSIGNMENT

	// ----------------------------------------------------------
	// 二元运算符
	// ----------------------------------------------------------
	binary_beg
	MULTIPLY
	DIVIDE
	REMAINDER
	PLUS
	MINUS
	LEFT_SHIFT
	RIGHT_SHIFT
	UNSIGNED_RIGHT_SHIFT
	LESS_THAN
	GREATER_THAN
	LESS_THAN_EQUAL
	GREATER_THAN_EQUAL
	EQUAL_TO
	NOT_EQUAL_TO
	AND
	XOR
	OR
	CONDITIONAL_AND
	CONDITIONAL_OR
	binary_end

	// ----------------------------------------------------------
	// 一元运算符
	// ----------------------------------------------------------
	unary_beg
	POSTFIX_INCREMENT
	POSTFIX_DECREMENT
	PREFIX_INCREMENT
	PREFIX_DECREMENT
	UNARY_PLUS
	UNARY_MINUS
	BITWISE_COMPLEMENT
	LOGICAL_COMPLEMENT
	unary_end

	// ----------------------------------------------------------
	// 复合赋值
	// ----------------------------------------------------------
	compound_beg
	MULTIPLY_ASSIGNMENT
	DIVIDE_ASSIGNMENT
	REMAINDER_ASSIGNMENT
	PLUS_ASSIGNMENT
	MINUS_ASSIGNMENT
	LEFT_SHIFT_ASSIGNMENT
	RIGHT_SHIFT_ASSIGNMENT
	UNSIGNED_RIGHT_SHIFT_ASSIGNMENT
	AND_ASSIGNMENT
	XOR_ASSIGNMENT
	OR_ASSIGNMENT
	compound_end
)

var kindNames = [...]string{
	INVALID:                         "INVALID",
	COMPILATION_UNIT:                "COMPILATION_UNIT",
	PACKAGE:                         "PACKAGE",
	IMPORT:                          "IMPORT",
	CLASS:                           "CLASS",
	INTERFACE:                       "INTERFACE",
	ENUM:                            "ENUM",
	METHOD:                          "METHOD",
	CONSTRUCTOR:                     "CONSTRUCTOR",
	INITIALIZER:                     "INITIALIZER",
	VARIABLE:                        "VARIABLE",
	TYPE_PARAMETER:                  "TYPE_PARAMETER",
	MODIFIERS:                       "MODIFIERS",
	ANNOTATION:                      "ANNOTATION",
	PRIMITIVE_TYPE:                  "PRIMITIVE_TYPE",
	ARRAY_TYPE:                      "ARRAY_TYPE",
	PARAMETERIZED_TYPE:              "PARAMETERIZED_TYPE",
	UNBOUNDED_WILDCARD:              "UNBOUNDED_WILDCARD",
	EXTENDS_WILDCARD:                "EXTENDS_WILDCARD",
	SUPER_WILDCARD:                  "SUPER_WILDCARD",
	UNION_TYPE:                      "UNION_TYPE",
	ANNOTATED_TYPE:                  "ANNOTATED_TYPE",
	BLOCK:                           "BLOCK",
	EXPRESSION_STATEMENT:            "EXPRESSION_STATEMENT",
	IF:                              "IF",
	FOR_LOOP:                        "FOR_LOOP",
	ENHANCED_FOR_LOOP:               "ENHANCED_FOR_LOOP",
	WHILE_LOOP:                      "WHILE_LOOP",
	DO_WHILE_LOOP:                   "DO_WHILE_LOOP",
	SWITCH:                          "SWITCH",
	CASE:                            "CASE",
	TRY:                             "TRY",
	CATCH:                           "CATCH",
	RETURN:                          "RETURN",
	THROW:                           "THROW",
	BREAK:                           "BREAK",
	CONTINUE:                        "CONTINUE",
	ASSERT:                          "ASSERT",
	LABELED_STATEMENT:               "LABELED_STATEMENT",
	SYNCHRONIZED:                    "SYNCHRONIZED",
	EMPTY_STATEMENT:                 "EMPTY_STATEMENT",
	IDENTIFIER:                      "IDENTIFIER",
	MEMBER_SELECT:                   "MEMBER_SELECT",
	INT_LITERAL:                     "INT_LITERAL",
	LONG_LITERAL:                    "LONG_LITERAL",
	FLOAT_LITERAL:                   "FLOAT_LITERAL",
	DOUBLE_LITERAL:                  "DOUBLE_LITERAL",
	BOOLEAN_LITERAL:                 "BOOLEAN_LITERAL",
	CHAR_LITERAL:                    "CHAR_LITERAL",
	STRING_LITERAL:                  "STRING_LITERAL",
	NULL_LITERAL:                    "NULL_LITERAL",
	METHOD_INVOCATION:               "METHOD_INVOCATION",
	NEW_CLASS:                       "NEW_CLASS",
	NEW_ARRAY:                       "NEW_ARRAY",
	CONDITIONAL_EXPRESSION:          "CONDITIONAL_EXPRESSION",
	INSTANCE_OF:                     "INSTANCE_OF",
	TYPE_CAST:                       "TYPE_CAST",
	PARENTHESIZED:                   "PARENTHESIZED",
	ARRAY_ACCESS:                    "ARRAY_ACCESS",
	LAMBDA_EXPRESSION:               "LAMBDA_EXPRESSION",
	MEMBER_REFERENCE:                "MEMBER_REFERENCE",
	ASSIGNMENT:                      "ASSIGNMENT",
	MULTIPLY:                        "MULTIPLY",
	DIVIDE:                          "DIVIDE",
	REMAINDER:                       "REMAINDER",
	PLUS:                            "PLUS",
	MINUS:                           "MINUS",
	LEFT_SHIFT:                      "LEFT_SHIFT",
	RIGHT_SHIFT:                     "RIGHT_SHIFT",
	UNSIGNED_RIGHT_SHIFT:            "UNSIGNED_RIGHT_SHIFT",
	LESS_THAN:                       "LESS_THAN",
	GREATER_THAN:                    "GREATER_THAN",
	LESS_THAN_EQUAL:                 "LESS_THAN_EQUAL",
	GREATER_THAN_EQUAL:              "GREATER_THAN_EQUAL",
	EQUAL_TO:                        "EQUAL_TO",
	NOT_EQUAL_TO:                    "NOT_EQUAL_TO",
	AND:                             "AND",
	XOR:                             "XOR",
	OR:                              "OR",
	CONDITIONAL_AND:                 "CONDITIONAL_AND",
	CONDITIONAL_OR:                  "CONDITIONAL_OR",
	POSTFIX_INCREMENT:               "POSTFIX_INCREMENT",
	POSTFIX_DECREMENT:               "POSTFIX_DECREMENT",
	PREFIX_INCREMENT:                "PREFIX_INCREMENT",
	PREFIX_DECREMENT:                "PREFIX_DECREMENT",
	UNARY_PLUS:                      "UNARY_PLUS",
	UNARY_MINUS:                     "UNARY_MINUS",
	BITWISE_COMPLEMENT:              "BITWISE_COMPLEMENT",
	LOGICAL_COMPLEMENT:              "LOGICAL_COMPLEMENT",
	MULTIPLY_ASSIGNMENT:             "MULTIPLY_ASSIGNMENT",
	DIVIDE_ASSIGNMENT:               "DIVIDE_ASSIGNMENT",
	REMAINDER_ASSIGNMENT:            "REMAINDER_ASSIGNMENT",
	PLUS_ASSIGNMENT:                 "PLUS_ASSIGNMENT",
	MINUS_ASSIGNMENT:                "MINUS_ASSIGNMENT",
	LEFT_SHIFT_ASSIGNMENT:           "LEFT_SHIFT_ASSIGNMENT",
	RIGHT_SHIFT_ASSIGNMENT:          "RIGHT_SHIFT_ASSIGNMENT",
	UNSIGNED_RIGHT_SHIFT_ASSIGNMENT: "UNSIGNED_RIGHT_SHIFT_ASSIGNMENT",
	AND_ASSIGNMENT:                  "AND_ASSIGNMENT",
	XOR_ASSIGNMENT:                  "XOR_ASSIGNMENT",
	OR_ASSIGNMENT:                   "OR_ASSIGNMENT",
}

// String 返回种类的大写名称，例如 CONDITIONAL_AND
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsBinary 是否为二元运算符种类
func (k Kind) IsBinary() bool { return k > binary_beg && k < binary_end }

// IsUnary 是否为一元运算符种类
func (k Kind) IsUnary() bool { return k > unary_beg && k < unary_end }

// IsCompoundAssign 是否为复合赋值种类
func (k Kind) IsCompoundAssign() bool { return k > compound_beg && k < compound_end }

// IsLiteral 是否为字面量种类
func (k Kind) IsLiteral() bool { return k >= INT_LITERAL && k <= NULL_LITERAL }

// IsWildcard 是否为通配符种类
func (k Kind) IsWildcard() bool {
	return k == UNBOUNDED_WILDCARD || k == EXTENDS_WILDCARD || k == SUPER_WILDCARD
}
