package lexer

import (
	"testing"

	"github.com/tangzhangming/javamin/internal/token"
)

func TestLexerBasicTokens(t *testing.T) {
	input := `+ - * / % = == != < <= > && || ! ( ) { } [ ] , . ; : ? -> :: @ ... ~ & | ^ << <<= += -= *= /= %= &= |= ^= ++ --`

	expected := []token.TokenType{
		token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT,
		token.ASSIGN, token.EQ, token.NE,
		token.LT, token.LE, token.GT,
		token.AND, token.OR, token.NOT,
		token.LPAREN, token.RPAREN, token.LBRACE, token.RBRACE,
		token.LBRACKET, token.RBRACKET,
		token.COMMA, token.DOT, token.SEMICOLON, token.COLON, token.QUESTION,
		token.ARROW, token.DOUBLE_COLON, token.AT, token.ELLIPSIS,
		token.BIT_NOT, token.BIT_AND, token.BIT_OR, token.BIT_XOR,
		token.LEFT_SHIFT, token.SHL_ASSIGN,
		token.PLUS_ASSIGN, token.MINUS_ASSIGN, token.STAR_ASSIGN, token.SLASH_ASSIGN,
		token.PERCENT_ASSIGN, token.AND_ASSIGN, token.OR_ASSIGN, token.XOR_ASSIGN,
		token.INCREMENT, token.DECREMENT,
		token.EOF,
	}

	l := New(input, "Test.java")
	tokens := l.ScanTokens()

	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch: got %d, want %d", len(tokens), len(expected))
	}

	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token[%d] type mismatch: got %s, want %s", i, tok.Type, expected[i])
		}
	}
}

func TestLexerGreaterThanIsAlwaysSingle(t *testing.T) {
	input := `>> >>> >= >>= >>>=`

	expected := []token.TokenType{
		token.GT, token.GT,
		token.GT, token.GT, token.GT,
		token.GT, token.ASSIGN,
		token.GT, token.GT, token.ASSIGN,
		token.GT, token.GT, token.GT, token.ASSIGN,
		token.EOF,
	}

	tokens := New(input, "Test.java").ScanTokens()
	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch: got %d, want %d", len(tokens), len(expected))
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token[%d] type mismatch: got %s, want %s", i, tok.Type, expected[i])
		}
	}

	// 相邻的 '>' 偏移连续，语法分析器依赖这一点
	if tokens[0].End() != tokens[1].Pos.Offset {
		t.Errorf("adjacent '>' not contiguous: %d vs %d", tokens[0].End(), tokens[1].Pos.Offset)
	}
	if tokens[1].End() == tokens[2].Pos.Offset {
		t.Errorf("'>' separated by a space must not be contiguous")
	}
}

func TestLexerKeywords(t *testing.T) {
	input := `abstract assert boolean break byte case catch char class const continue
	default do double else enum extends final finally float for goto if implements
	import instanceof int interface long native new package private protected public
	return short static strictfp super switch synchronized this throw throws transient
	try void volatile while true false null var`

	expected := []token.TokenType{
		token.ABSTRACT, token.ASSERT, token.BOOLEAN, token.BREAK, token.BYTE,
		token.CASE, token.CATCH, token.CHAR_TYPE, token.CLASS, token.CONST, token.CONTINUE,
		token.DEFAULT, token.DO, token.DOUBLE, token.ELSE, token.ENUM, token.EXTENDS,
		token.FINAL, token.FINALLY, token.FLOAT_TYPE, token.FOR, token.GOTO, token.IF,
		token.IMPLEMENTS, token.IMPORT, token.INSTANCEOF, token.INT_TYPE, token.INTERFACE,
		token.LONG, token.NATIVE, token.NEW, token.PACKAGE, token.PRIVATE, token.PROTECTED,
		token.PUBLIC, token.RETURN, token.SHORT, token.STATIC, token.STRICTFP, token.SUPER,
		token.SWITCH, token.SYNCHRONIZED, token.THIS, token.THROW, token.THROWS,
		token.TRANSIENT, token.TRY, token.VOID, token.VOLATILE, token.WHILE,
		token.TRUE, token.FALSE, token.NULL, token.IDENT,
		token.EOF,
	}

	tokens := New(input, "Test.java").ScanTokens()

	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch: got %d, want %d", len(tokens), len(expected))
	}

	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token[%d] type mismatch: got %s, want %s (literal: %s)",
				i, tok.Type, expected[i], tok.Literal)
		}
	}
}

func TestLexerNumbers(t *testing.T) {
	tests := []struct {
		input   string
		typ     token.TokenType
		literal string
	}{
		{"42", token.INT, "42"},
		{"0", token.INT, "0"},
		{"0755", token.INT, "0755"},
		{"0x1F", token.INT, "0x1F"},
		{"0b1010", token.INT, "0b1010"},
		{"1_000_000", token.INT, "1_000_000"},
		{"10L", token.INT, "10L"},
		{"3.14", token.FLOAT, "3.14"},
		{".5", token.FLOAT, ".5"},
		{"1e10", token.FLOAT, "1e10"},
		{"1.5E-3", token.FLOAT, "1.5E-3"},
		{"2f", token.FLOAT, "2f"},
		{"2.0d", token.FLOAT, "2.0d"},
		{"0x1.8p3", token.FLOAT, "0x1.8p3"},
		{"1.", token.FLOAT, "1."},
	}

	for _, tt := range tests {
		l := New(tt.input, "Test.java")
		tokens := l.ScanTokens()

		if l.HasErrors() {
			t.Errorf("input %q: unexpected errors %v", tt.input, l.Errors())
			continue
		}
		if len(tokens) != 2 {
			t.Errorf("input %q: expected 2 tokens, got %d", tt.input, len(tokens))
			continue
		}
		if tokens[0].Type != tt.typ {
			t.Errorf("input %q: type = %s, want %s", tt.input, tokens[0].Type, tt.typ)
		}
		if tokens[0].Literal != tt.literal {
			t.Errorf("input %q: literal = %q, want %q", tt.input, tokens[0].Literal, tt.literal)
		}
	}
}

func TestLexerMemberAccessOnInteger(t *testing.T) {
	tokens := New("a[1].length", "Test.java").ScanTokens()
	expected := []token.TokenType{
		token.IDENT, token.LBRACKET, token.INT, token.RBRACKET, token.DOT, token.IDENT, token.EOF,
	}
	if len(tokens) != len(expected) {
		t.Fatalf("token count mismatch: got %d, want %d", len(tokens), len(expected))
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token[%d] type mismatch: got %s, want %s", i, tok.Type, expected[i])
		}
	}
}

func TestLexerStringsAndChars(t *testing.T) {
	tests := []struct {
		input   string
		typ     token.TokenType
		literal string
	}{
		{`"hello"`, token.STRING, `"hello"`},
		{`"a\"b"`, token.STRING, `"a\"b"`},
		{`"tab\there"`, token.STRING, `"tab\there"`},
		{`"A"`, token.STRING, `"A"`},
		{`'a'`, token.CHAR, `'a'`},
		{`'\n'`, token.CHAR, `'\n'`},
		{`'\''`, token.CHAR, `'\''`},
		{`'\0'`, token.CHAR, `'\0'`},
		{"\"\"\"\n  text\n  \"\"\"", token.STRING, "\"\"\"\n  text\n  \"\"\""},
	}

	for _, tt := range tests {
		l := New(tt.input, "Test.java")
		tokens := l.ScanTokens()

		if l.HasErrors() {
			t.Errorf("input %s: unexpected errors %v", tt.input, l.Errors())
			continue
		}
		if tokens[0].Type != tt.typ || tokens[0].Literal != tt.literal {
			t.Errorf("input %s: got %s %q, want %s %q",
				tt.input, tokens[0].Type, tokens[0].Literal, tt.typ, tt.literal)
		}
	}
}

func TestLexerComments(t *testing.T) {
	input := `int a; // line comment
	/* block
	   comment */ int b;
	/** javadoc */ int c;`

	tokens := New(input, "Test.java").ScanTokens()

	var idents []string
	for _, tok := range tokens {
		if tok.Type == token.IDENT {
			idents = append(idents, tok.Literal)
		}
	}
	if len(idents) != 3 || idents[0] != "a" || idents[1] != "b" || idents[2] != "c" {
		t.Errorf("identifiers = %v, want [a b c]", idents)
	}
}

func TestLexerPositions(t *testing.T) {
	input := "class A {\n  int x;\n}"
	tokens := New(input, "A.java").ScanTokens()

	// int 位于第二行第三列
	tok := tokens[3]
	if tok.Type != token.INT_TYPE {
		t.Fatalf("token[3] = %s, want int", tok.Type)
	}
	if tok.Pos.Line != 2 || tok.Pos.Column != 3 || tok.Pos.Offset != 12 {
		t.Errorf("position = %d:%d@%d, want 2:3@12", tok.Pos.Line, tok.Pos.Column, tok.Pos.Offset)
	}
	if tok.Pos.Filename != "A.java" {
		t.Errorf("filename = %q", tok.Pos.Filename)
	}
}

func TestLexerIdentifiers(t *testing.T) {
	tokens := New("$x _y café Map", "Test.java").ScanTokens()
	want := []string{"$x", "_y", "café", "Map"}
	for i, w := range want {
		if tokens[i].Type != token.IDENT || tokens[i].Literal != w {
			t.Errorf("token[%d] = %s %q, want IDENT %q", i, tokens[i].Type, tokens[i].Literal, w)
		}
	}
}

func TestLexerErrors(t *testing.T) {
	tests := []string{
		`"unterminated`,
		`'ab'`,
		`''`,
		`/* open`,
		`#`,
		`0x`,
		`1e`,
	}

	for _, input := range tests {
		l := New(input, "Test.java")
		l.ScanTokens()
		if !l.HasErrors() {
			t.Errorf("input %q: expected an error", input)
		}
	}
}
