package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/tangzhangming/javamin/internal/ast"
)

// parseOK 解析源码，有错误时终止测试
func parseOK(t *testing.T, input string) *ast.CompilationUnit {
	t.Helper()
	p := New(input, "Test.java")
	unit := p.Parse()
	if p.HasErrors() {
		for _, err := range p.Errors() {
			t.Errorf("parser error: %v", err)
		}
		t.FailNow()
	}
	return unit
}

// parseExpr 把表达式放进字段初始值里解析
func parseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()
	unit := parseOK(t, "class T { Object f = "+input+"; }")
	field, ok := unit.Types[0].Members[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("expected VarDecl, got %T", unit.Types[0].Members[0])
	}
	return field.Init
}

// parseStmts 把语句放进方法体里解析
func parseStmts(t *testing.T, input string) []ast.Stmt {
	t.Helper()
	unit := parseOK(t, "class T { void m() { "+input+" } }")
	method, ok := unit.Types[0].Members[0].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("expected MethodDecl, got %T", unit.Types[0].Members[0])
	}
	return method.Body.Stmts
}

// sexpr 把表达式渲染为带完整括号的前缀形式，便于断言结合性
func sexpr(e ast.Expr) string {
	switch n := e.(type) {
	case nil:
		return "nil"
	case *ast.Ident:
		return n.Name
	case *ast.Literal:
		return n.Raw
	case *ast.PrimitiveType:
		return n.Name
	case *ast.ArrayType:
		return sexpr(n.Elem) + "[]"
	case *ast.FieldAccess:
		return sexpr(n.X) + "." + n.Name
	case *ast.Binary:
		return fmt.Sprintf("(%s %s %s)", n.Op, sexpr(n.X), sexpr(n.Y))
	case *ast.Unary:
		return fmt.Sprintf("(%s %s)", n.Op, sexpr(n.X))
	case *ast.Assign:
		return fmt.Sprintf("(= %s %s)", sexpr(n.X), sexpr(n.Y))
	case *ast.CompoundAssign:
		return fmt.Sprintf("(%s %s %s)", n.Op, sexpr(n.X), sexpr(n.Y))
	case *ast.Conditional:
		return fmt.Sprintf("(? %s %s %s)", sexpr(n.Cond), sexpr(n.Then), sexpr(n.Else))
	case *ast.Cast:
		return fmt.Sprintf("(cast %s %s)", sexpr(n.Type), sexpr(n.X))
	case *ast.Parens:
		return fmt.Sprintf("(paren %s)", sexpr(n.X))
	case *ast.InstanceOf:
		return fmt.Sprintf("(instanceof %s %s)", sexpr(n.X), sexpr(n.Type))
	case *ast.ArrayAccess:
		return fmt.Sprintf("(index %s %s)", sexpr(n.X), sexpr(n.Index))
	case *ast.MethodCall:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = sexpr(a)
		}
		return fmt.Sprintf("(call %s %s)", sexpr(n.Fn), strings.Join(args, " "))
	}
	return fmt.Sprintf("<%T>", e)
}

func TestParsePackageAndImports(t *testing.T) {
	unit := parseOK(t, `
package com.example.app;

import java.util.List;
import java.util.*;
import static java.lang.Math.max;

public class Main {}
`)

	if unit.Package == nil {
		t.Fatal("expected package declaration")
	}
	if got := sexpr(unit.Package.Name); got != "com.example.app" {
		t.Errorf("package = %s", got)
	}

	wantImports := []struct {
		name   string
		static bool
	}{
		{"java.util.List", false},
		{"java.util.*", false},
		{"java.lang.Math.max", true},
	}
	if len(unit.Imports) != len(wantImports) {
		t.Fatalf("expected %d imports, got %d", len(wantImports), len(unit.Imports))
	}
	for i, want := range wantImports {
		imp := unit.Imports[i]
		if got := sexpr(imp.Name); got != want.name {
			t.Errorf("import %d = %s, want %s", i, got, want.name)
		}
		if imp.Static != want.static {
			t.Errorf("import %d static = %v", i, imp.Static)
		}
	}

	if len(unit.Types) != 1 || unit.Types[0].Name != "Main" {
		t.Fatalf("expected class Main, got %+v", unit.Types)
	}
	if !unit.Types[0].Modifiers.Flags.Has(ast.FlagPublic) {
		t.Error("expected public modifier")
	}
}

func TestParseClassHeader(t *testing.T) {
	unit := parseOK(t, `abstract class Box<T extends Comparable<T>, U> extends Base<T> implements A, B {}`)
	decl := unit.Types[0]

	if decl.Kind() != ast.CLASS {
		t.Errorf("expected CLASS, got %s", decl.Kind())
	}
	if len(decl.TypeParams) != 2 {
		t.Fatalf("expected 2 type params, got %d", len(decl.TypeParams))
	}
	if decl.TypeParams[0].Name != "T" || len(decl.TypeParams[0].Bounds) != 1 {
		t.Errorf("unexpected first type param %+v", decl.TypeParams[0])
	}
	if _, ok := decl.Extends.(*ast.ParameterizedType); !ok {
		t.Errorf("expected ParameterizedType extends, got %T", decl.Extends)
	}
	if len(decl.Implements) != 2 {
		t.Errorf("expected 2 interfaces, got %d", len(decl.Implements))
	}
}

func TestParseInterface(t *testing.T) {
	unit := parseOK(t, `interface Shape extends Comparable<Shape>, Cloneable {
    double area();
    default String name() { return "shape"; }
}`)
	decl := unit.Types[0]

	if !decl.IsInterface() || decl.Kind() != ast.INTERFACE {
		t.Fatal("expected interface declaration")
	}
	if decl.Extends != nil {
		t.Error("interface supertypes must be recorded as Implements")
	}
	if len(decl.Implements) != 2 {
		t.Errorf("expected 2 super interfaces, got %d", len(decl.Implements))
	}

	area := decl.Members[0].(*ast.MethodDecl)
	if area.Body != nil {
		t.Error("abstract method must have nil body")
	}
	name := decl.Members[1].(*ast.MethodDecl)
	if !name.Modifiers.Flags.Has(ast.FlagDefault) || name.Body == nil {
		t.Error("expected default method with body")
	}
}

func TestParseMembers(t *testing.T) {
	unit := parseOK(t, `class Point {
    private int x, y = 1, z[];
    static { init(); }
    { count++; }
    public Point(int x, int y) throws Exception { this.x = x; }
    <T> T pick(T a, final String... rest) { return a; }
    int legacy()[] { return null; }
    static class Inner {}
}`)
	members := unit.Types[0].Members

	wantKinds := []ast.Kind{
		ast.VARIABLE, ast.VARIABLE, ast.VARIABLE,
		ast.INITIALIZER, ast.INITIALIZER,
		ast.CONSTRUCTOR, ast.METHOD, ast.METHOD, ast.CLASS,
	}
	if len(members) != len(wantKinds) {
		t.Fatalf("expected %d members, got %d", len(wantKinds), len(members))
	}
	for i, want := range wantKinds {
		if members[i].Kind() != want {
			t.Errorf("member %d: expected %s, got %s", i, want, members[i].Kind())
		}
	}

	y := members[1].(*ast.VarDecl)
	if y.Name != "y" || y.Init == nil || !y.Modifiers.Flags.Has(ast.FlagPrivate) {
		t.Errorf("unexpected declarator %+v", y)
	}
	z := members[2].(*ast.VarDecl)
	if got := sexpr(z.Type); got != "int[]" {
		t.Errorf("z type = %s", got)
	}

	if !members[3].(*ast.InitializerBlock).Static || members[4].(*ast.InitializerBlock).Static {
		t.Error("initializer static flags are wrong")
	}

	ctor := members[5].(*ast.ConstructorDecl)
	if len(ctor.Params) != 2 || len(ctor.Throws) != 1 {
		t.Errorf("unexpected constructor %+v", ctor)
	}

	pick := members[6].(*ast.MethodDecl)
	if len(pick.TypeParams) != 1 {
		t.Error("expected method type parameter")
	}
	rest := pick.Params[1]
	if !rest.Modifiers.IsVarargs() || !rest.Modifiers.Flags.Has(ast.FlagFinal) {
		t.Errorf("expected final varargs parameter, got %v", rest.Modifiers.Keywords())
	}
	if got := sexpr(rest.Type); got != "String[]" {
		t.Errorf("varargs type = %s", got)
	}

	legacy := members[7].(*ast.MethodDecl)
	if got := sexpr(legacy.ReturnType); got != "int[]" {
		t.Errorf("legacy return type = %s", got)
	}
}

func TestParseAnnotations(t *testing.T) {
	unit := parseOK(t, `@Entity
@Table(name = "users", schema = "app")
class User {
    @Override public String toString() { return ""; }
    @SuppressWarnings("unchecked") void m() {}
}`)
	decl := unit.Types[0]

	anns := decl.Modifiers.Annotations
	if len(anns) != 2 {
		t.Fatalf("expected 2 annotations, got %d", len(anns))
	}
	if anns[0].Args != nil {
		t.Error("marker annotation must have nil Args")
	}
	if len(anns[1].Args) != 2 {
		t.Fatalf("expected 2 annotation args, got %d", len(anns[1].Args))
	}
	if _, ok := anns[1].Args[0].(*ast.Assign); !ok {
		t.Errorf("expected name = value arg as Assign, got %T", anns[1].Args[0])
	}

	m := decl.Members[1].(*ast.MethodDecl)
	if _, ok := m.Modifiers.Annotations[0].Args[0].(*ast.Literal); !ok {
		t.Errorf("expected single value arg, got %T", m.Modifiers.Annotations[0].Args[0])
	}
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a + b * c", "(PLUS a (MULTIPLY b c))"},
		{"a - b - c", "(MINUS (MINUS a b) c)"},
		{"a || b && c", "(CONDITIONAL_OR a (CONDITIONAL_AND b c))"},
		{"a | b ^ c & d", "(OR a (XOR b (AND c d)))"},
		{"a == b < c", "(EQUAL_TO a (LESS_THAN b c))"},
		{"a << 2 + 1", "(LEFT_SHIFT a (PLUS 2 1))"},
		{"a >> 2", "(RIGHT_SHIFT a 2)"},
		{"a >>> 2", "(UNSIGNED_RIGHT_SHIFT a 2)"},
		{"a >= b", "(GREATER_THAN_EQUAL a b)"},
		{"a > b", "(GREATER_THAN a b)"},
		{"a = b = c", "(= a (= b c))"},
		{"a += b -= c", "(PLUS_ASSIGNMENT a (MINUS_ASSIGNMENT b c))"},
		{"a >>= 1", "(RIGHT_SHIFT_ASSIGNMENT a 1)"},
		{"a >>>= 1", "(UNSIGNED_RIGHT_SHIFT_ASSIGNMENT a 1)"},
		{"a <<= 1", "(LEFT_SHIFT_ASSIGNMENT a 1)"},
		{"a ? b : c ? d : e", "(? a b (? c d e))"},
		{"x = a ? b : c", "(= x (? a b c))"},
		{"-a * b", "(MULTIPLY (UNARY_MINUS a) b)"},
		{"!a && b", "(CONDITIONAL_AND (LOGICAL_COMPLEMENT a) b)"},
		{"- -a", "(UNARY_MINUS (UNARY_MINUS a))"},
		{"--a", "(PREFIX_DECREMENT a)"},
		{"a++ + ++b", "(PLUS (POSTFIX_INCREMENT a) (PREFIX_INCREMENT b))"},
		{"(a + b) * c", "(MULTIPLY (paren (PLUS a b)) c)"},
		{"a instanceof String && b", "(CONDITIONAL_AND (instanceof a String) b)"},
		{"a[i][j]", "(index (index a i) j)"},
		{"a.b.c(1, 2)", "(call a.b.c 1 2)"},
	}

	for _, tt := range tests {
		if got := sexpr(parseExpr(t, tt.input)); got != tt.expected {
			t.Errorf("%s:\n  got  %s\n  want %s", tt.input, got, tt.expected)
		}
	}
}

func TestParseShiftSeparatedBySpace(t *testing.T) {
	// 中间有空白的 > > 不是移位运算
	p := New("class T { Object f = a > > b; }", "Test.java")
	p.Parse()
	if !p.HasErrors() {
		t.Error("expected error for '> >'")
	}
}

func TestParseCasts(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"(int) x", "(cast int x)"},
		{"(int) -x", "(cast int (UNARY_MINUS x))"},
		{"(int[]) o", "(cast int[] o)"},
		{"(String) o", "(cast String o)"},
		{"(String) (o)", "(cast String (paren o))"},
		{"(a) - b", "(MINUS (paren a) b)"},
		{"(a) + b", "(PLUS (paren a) b)"},
		{"(long) a + b", "(PLUS (cast long a) b)"},
		{"(Object) this", "(cast Object this)"},
	}

	for _, tt := range tests {
		if got := sexpr(parseExpr(t, tt.input)); got != tt.expected {
			t.Errorf("%s:\n  got  %s\n  want %s", tt.input, got, tt.expected)
		}
	}

	e := parseExpr(t, "(java.util.List<String>) o")
	cast, ok := e.(*ast.Cast)
	if !ok {
		t.Fatalf("expected Cast, got %T", e)
	}
	if _, ok := cast.Type.(*ast.ParameterizedType); !ok {
		t.Errorf("expected ParameterizedType, got %T", cast.Type)
	}
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.Kind
	}{
		{"42", ast.INT_LITERAL},
		{"0xFFL", ast.LONG_LITERAL},
		{"1.5", ast.DOUBLE_LITERAL},
		{"1.5f", ast.FLOAT_LITERAL},
		{"1e10", ast.DOUBLE_LITERAL},
		{"'c'", ast.CHAR_LITERAL},
		{`"s"`, ast.STRING_LITERAL},
		{"true", ast.BOOLEAN_LITERAL},
		{"null", ast.NULL_LITERAL},
	}

	for _, tt := range tests {
		lit, ok := parseExpr(t, tt.input).(*ast.Literal)
		if !ok {
			t.Errorf("%s: expected Literal", tt.input)
			continue
		}
		if lit.LitKind != tt.kind {
			t.Errorf("%s: expected %s, got %s", tt.input, tt.kind, lit.LitKind)
		}
		if lit.Raw != tt.input {
			t.Errorf("%s: raw = %s", tt.input, lit.Raw)
		}
	}
}

func TestParseNewExpressions(t *testing.T) {
	n, ok := parseExpr(t, "new ArrayList<>()").(*ast.New)
	if !ok {
		t.Fatal("expected New")
	}
	pt, ok := n.Type.(*ast.ParameterizedType)
	if !ok || len(pt.Args) != 0 {
		t.Errorf("expected diamond type, got %s", ast.Dump(n.Type))
	}

	anon, ok := parseExpr(t, "new Runnable() { public void run() {} }").(*ast.New)
	if !ok || anon.Body == nil {
		t.Fatal("expected anonymous class body")
	}
	if anon.Body.Name != "" || len(anon.Body.Members) != 1 {
		t.Errorf("unexpected anonymous body %+v", anon.Body)
	}

	inner, ok := parseExpr(t, "outer.new Inner()").(*ast.New)
	if !ok || inner.Outer == nil {
		t.Fatal("expected qualified instance creation")
	}
}

func TestParseNewArray(t *testing.T) {
	tests := []struct {
		input   string
		elem    string
		dims    int
		hasInit bool
	}{
		{"new int[3]", "int", 1, false},
		{"new int[3][4]", "int", 2, false},
		{"new int[3][]", "int[]", 1, false},
		{"new int[] {1, 2}", "int", 0, true},
		{"new String[][] {{}}", "String[]", 0, true},
		{"{1, 2, 3}", "nil", 0, true},
	}

	for _, tt := range tests {
		arr, ok := parseExpr(t, tt.input).(*ast.NewArray)
		if !ok {
			t.Errorf("%s: expected NewArray", tt.input)
			continue
		}
		if got := sexpr(arr.Elem); got != tt.elem {
			t.Errorf("%s: elem = %s, want %s", tt.input, got, tt.elem)
		}
		if len(arr.Dims) != tt.dims {
			t.Errorf("%s: dims = %d, want %d", tt.input, len(arr.Dims), tt.dims)
		}
		if arr.HasInit != tt.hasInit {
			t.Errorf("%s: hasInit = %v", tt.input, arr.HasInit)
		}
	}
}

func TestParseSelectors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"String.class", "String.class"},
		{"int.class", "int.class"},
		{"int[].class", "int[].class"},
		{"Outer.this", "Outer.this"},
		{"super.toString()", "(call super.toString )"},
		{"arr.length", "arr.length"},
	}
	for _, tt := range tests {
		if got := sexpr(parseExpr(t, tt.input)); got != tt.expected {
			t.Errorf("%s: got %s", tt.input, got)
		}
	}

	call, ok := parseExpr(t, "Collections.<String>emptyList()").(*ast.MethodCall)
	if !ok || len(call.TypeArgs) != 1 {
		t.Fatal("expected generic method call with explicit type argument")
	}
}

func TestParseLambdaAndMethodRef(t *testing.T) {
	for _, input := range []string{"x -> x", "(a, b) -> a + b", "() -> { return; }", "(int a) -> a"} {
		if _, ok := parseExpr(t, input).(*ast.Lambda); !ok {
			t.Errorf("%s: expected Lambda", input)
		}
	}

	ref, ok := parseExpr(t, "String::valueOf").(*ast.MethodRef)
	if !ok || ref.Name != "valueOf" {
		t.Error("expected method reference")
	}
	ctorRef, ok := parseExpr(t, "ArrayList::new").(*ast.MethodRef)
	if !ok || ctorRef.Name != "new" {
		t.Error("expected constructor reference")
	}
}

func TestParseLocalDeclarations(t *testing.T) {
	stmts := parseStmts(t, `
int a = 1, b;
final List<String> names = new ArrayList<>();
String[] parts;
Map<String, List<Integer>> m;
a = b;
foo.bar();
x[0] = 1;
class Local {}
`)
	wantKinds := []ast.Kind{
		ast.VARIABLE, ast.VARIABLE, ast.VARIABLE, ast.VARIABLE, ast.VARIABLE,
		ast.EXPRESSION_STATEMENT, ast.EXPRESSION_STATEMENT, ast.EXPRESSION_STATEMENT,
		ast.CLASS,
	}
	if len(stmts) != len(wantKinds) {
		t.Fatalf("expected %d statements, got %d", len(wantKinds), len(stmts))
	}
	for i, want := range wantKinds {
		if stmts[i].Kind() != want {
			t.Errorf("stmt %d: expected %s, got %s", i, want, stmts[i].Kind())
		}
	}

	names := stmts[2].(*ast.VarDecl)
	if !names.Modifiers.Flags.Has(ast.FlagFinal) {
		t.Error("expected final local variable")
	}
}

func TestParseStatements(t *testing.T) {
	stmts := parseStmts(t, `
if (a) b(); else { c(); }
for (int i = 0; i < n; i++) ;
for (String s : list) use(s);
for (;;) break;
while (x) x--;
do { y++; } while (y < 10);
switch (k) { case 1: case 2: f(); break; default: g(); }
try (Reader r = open()) { read(r); } catch (IOException | RuntimeException e) { } finally { close(); }
synchronized (lock) { n++; }
assert n > 0 : "positive";
throw new Error();
outer: for (;;) continue outer;
return;
`)
	wantKinds := []ast.Kind{
		ast.IF, ast.FOR_LOOP, ast.ENHANCED_FOR_LOOP, ast.FOR_LOOP,
		ast.WHILE_LOOP, ast.DO_WHILE_LOOP, ast.SWITCH, ast.TRY,
		ast.SYNCHRONIZED, ast.ASSERT, ast.THROW, ast.LABELED_STATEMENT, ast.RETURN,
	}
	if len(stmts) != len(wantKinds) {
		t.Fatalf("expected %d statements, got %d", len(wantKinds), len(stmts))
	}
	for i, want := range wantKinds {
		if stmts[i].Kind() != want {
			t.Errorf("stmt %d: expected %s, got %s", i, want, stmts[i].Kind())
		}
	}

	ifStmt := stmts[0].(*ast.If)
	if _, ok := ifStmt.Cond.(*ast.Parens); ok {
		t.Error("if condition must not keep its syntactic parentheses")
	}
	if ifStmt.Else == nil {
		t.Error("expected else branch")
	}

	loop := stmts[1].(*ast.For)
	if len(loop.Init) != 1 || loop.Cond == nil || len(loop.Update) != 1 {
		t.Errorf("unexpected for header %+v", loop)
	}
	if _, ok := loop.Body.(*ast.Empty); !ok {
		t.Errorf("expected empty body, got %T", loop.Body)
	}

	sw := stmts[6].(*ast.Switch)
	if len(sw.Cases) != 3 || sw.Cases[2].Expr != nil || len(sw.Cases[0].Body) != 0 {
		t.Errorf("unexpected switch cases")
	}

	try := stmts[7].(*ast.Try)
	if len(try.Resources) != 1 || len(try.Catches) != 1 || try.Finally == nil {
		t.Fatalf("unexpected try %+v", try)
	}
	if _, ok := try.Catches[0].Param.Type.(*ast.UnionType); !ok {
		t.Errorf("expected multi-catch union type, got %T", try.Catches[0].Param.Type)
	}

	as := stmts[9].(*ast.Assert)
	if as.Detail == nil {
		t.Error("expected assert detail")
	}

	labeled := stmts[11].(*ast.Labeled)
	if labeled.Label != "outer" {
		t.Errorf("label = %s", labeled.Label)
	}
}

func TestParseExplicitConstructorCall(t *testing.T) {
	unit := parseOK(t, `class A extends B { A() { super(1); } A(int x) { this(); } }`)
	for i, fn := range []string{"super", "this"} {
		ctor := unit.Types[0].Members[i].(*ast.ConstructorDecl)
		stmt := ctor.Body.Stmts[0].(*ast.ExprStmt)
		call, ok := stmt.X.(*ast.MethodCall)
		if !ok {
			t.Fatalf("expected MethodCall, got %T", stmt.X)
		}
		if got := sexpr(call.Fn); got != fn {
			t.Errorf("expected %s call, got %s", fn, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing semicolon", "class A { int x }"},
		{"unclosed class", "class A {"},
		{"enum", "enum Color { RED }"},
		{"annotation type", "@interface Marker {}"},
		{"bad constructor name", "class A { B() {} }"},
		{"bad expression", "class A { int x = ; }"},
		{"invalid assignment target", "class A { void m() { 1 = 2; } }"},
		{"try without catch", "class A { void m() { try { } } }"},
		{"lexer error", "class A { char c = ''; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(tt.input, "Test.java")
			p.Parse()
			if !p.HasErrors() {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestParseErrorRecovery(t *testing.T) {
	p := New(`class A {
    int x = ;
    void ok() {}
}
class B {}`, "Test.java")
	unit := p.Parse()

	if !p.HasErrors() {
		t.Fatal("expected errors")
	}
	if len(unit.Types) < 1 {
		t.Fatal("expected parser to recover at least one class")
	}
	for _, err := range p.Errors() {
		if err.Pos.Filename != "Test.java" {
			t.Errorf("error without filename: %v", err)
		}
	}
}

func TestParseDeepExpression(t *testing.T) {
	input := strings.Repeat("(", maxExprDepth+10) + "1" + strings.Repeat(")", maxExprDepth+10)
	p := New("class A { int x = "+input+"; }", "Test.java")
	p.Parse()
	if !p.HasErrors() {
		t.Error("expected expression-too-deep error")
	}
}
