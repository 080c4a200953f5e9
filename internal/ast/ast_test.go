package ast

import (
	"testing"

	"github.com/tangzhangming/javamin/internal/token"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{CONDITIONAL_AND, "CONDITIONAL_AND"},
		{UNSIGNED_RIGHT_SHIFT_ASSIGNMENT, "UNSIGNED_RIGHT_SHIFT_ASSIGNMENT"},
		{EMPTY_STATEMENT, "EMPTY_STATEMENT"},
		{Kind(9999), "Kind(9999)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.expected {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.expected)
		}
	}
}

func TestKindClassification(t *testing.T) {
	if !PLUS.IsBinary() || PLUS.IsUnary() || PLUS.IsCompoundAssign() {
		t.Errorf("PLUS misclassified")
	}
	if !POSTFIX_INCREMENT.IsUnary() || POSTFIX_INCREMENT.IsBinary() {
		t.Errorf("POSTFIX_INCREMENT misclassified")
	}
	if !OR_ASSIGNMENT.IsCompoundAssign() || OR_ASSIGNMENT.IsBinary() {
		t.Errorf("OR_ASSIGNMENT misclassified")
	}
	if !STRING_LITERAL.IsLiteral() || IDENTIFIER.IsLiteral() {
		t.Errorf("literal classification wrong")
	}
	if !SUPER_WILDCARD.IsWildcard() || PARAMETERIZED_TYPE.IsWildcard() {
		t.Errorf("wildcard classification wrong")
	}
}

func TestModifierKeywordsOrder(t *testing.T) {
	m := &Modifiers{Flags: FlagFinal | FlagStatic | FlagPublic | FlagInterface}
	got := m.Keywords()
	want := []string{"public", "static", "final"}
	if len(got) != len(want) {
		t.Fatalf("Keywords() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Keywords()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if !m.IsInterface() {
		t.Errorf("interface flag lost")
	}
	if FlagForKeyword("synchronized") != FlagSynchronized || FlagForKeyword("class") != 0 {
		t.Errorf("FlagForKeyword mismatch")
	}
}

func TestClassDeclKind(t *testing.T) {
	c := &ClassDecl{Name: "A"}
	if c.Kind() != CLASS {
		t.Errorf("class without modifiers: got %s", c.Kind())
	}
	c.Modifiers = &Modifiers{Flags: FlagInterface}
	if c.Kind() != INTERFACE {
		t.Errorf("interface: got %s", c.Kind())
	}
}

func TestDumpIgnoresPositions(t *testing.T) {
	a := &Binary{
		Start: token.Position{Line: 1, Column: 1},
		Op:    PLUS,
		X:     &Ident{Start: token.Position{Line: 1, Column: 1}, Name: "a"},
		Y:     &Literal{Start: token.Position{Line: 1, Column: 5}, LitKind: INT_LITERAL, Raw: "1"},
	}
	b := &Binary{
		Op: PLUS,
		X:  &Ident{Start: token.Position{Line: 9, Column: 9}, Name: "a"},
		Y:  &Literal{LitKind: INT_LITERAL, Raw: "1"},
	}

	if Dump(a) != Dump(b) {
		t.Errorf("dumps differ:\n%s\n%s", Dump(a), Dump(b))
	}

	want := `(Binary Op=PLUS X=(Ident Name="a") Y=(Literal LitKind=INT_LITERAL Raw="1"))`
	if got := Dump(a); got != want {
		t.Errorf("Dump = %s\nwant   %s", got, want)
	}
}

func TestDumpDistinguishesStructure(t *testing.T) {
	a := &Unary{Op: UNARY_MINUS, X: &Unary{Op: UNARY_MINUS, X: &Ident{Name: "b"}}}
	b := &Unary{Op: PREFIX_DECREMENT, X: &Ident{Name: "b"}}
	if Dump(a) == Dump(b) {
		t.Errorf("- -b and --b must dump differently")
	}

	v := &VarDecl{Modifiers: &Modifiers{Flags: FlagFinal | FlagVarargs}, Name: "xs"}
	want := `(VarDecl Modifiers=(Modifiers Flags={final,varargs} Annotations=[]) Type=nil Name="xs" Init=nil)`
	if got := Dump(v); got != want {
		t.Errorf("Dump = %s\nwant   %s", got, want)
	}
}
