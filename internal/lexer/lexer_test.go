package lexer

import (
	"testing"

	"github.com/shaurya0/wabbit/pkg/token"
)

func TestNextTokenBasic(t *testing.T) {
	input := `var x int = 5;
	x = x + 10;
	`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"var", token.VAR},
		{"x", token.IDENT},
		{"int", token.INT_TYPE},
		{"=", token.EQUAL},
		{"5", token.INT},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.EQUAL},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.INT},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `func if else while print return var const break continue true false int float bool char`

	tests := []token.Type{
		token.FUNC, token.IF, token.ELSE, token.WHILE, token.PRINT, token.RETURN,
		token.VAR, token.CONST, token.BREAK, token.CONTINUE, token.TRUE, token.FALSE,
		token.INT_TYPE, token.FLOAT_TYPE, token.BOOL_TYPE, token.CHAR_TYPE, token.EOF,
	}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - expected=%s, got=%s", i, expected, tok.Type)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	input := `! != = == < <= > >= && ||`
	tests := []token.Type{
		token.BANG, token.BANG_EQUAL, token.EQUAL, token.EQUAL_EQUAL,
		token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ,
		token.AND_AND, token.OR_OR, token.EOF,
	}

	l := New(input)
	for i, expected := range tests {
		tok := l.NextToken()
		if tok.Type != expected {
			t.Fatalf("tests[%d] - expected=%s, got=%s (%q)", i, expected, tok.Type, tok.Literal)
		}
	}
}

func TestMalformedAmpersandIsIllegal(t *testing.T) {
	l := New("&x")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for lone '&', got %s", tok.Type)
	}
}

func TestMalformedPipeIsIllegal(t *testing.T) {
	l := New("|x")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for lone '|', got %s", tok.Type)
	}
}

func TestLineComment(t *testing.T) {
	input := "var x int = 1; // trailing comment\nvar y int = 2;"
	l := New(input)
	var kinds []token.Type
	for {
		tok := l.NextToken()
		kinds = append(kinds, tok.Type)
		if tok.Type == token.EOF {
			break
		}
	}
	// Two full declarations plus EOF; the comment must not leak a token.
	count := 0
	for _, k := range kinds {
		if k == token.VAR {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 'var' tokens, got %d in %v", count, kinds)
	}
}

func TestBlockComment(t *testing.T) {
	input := "var /* this\nspans lines */ x int = 1;"
	l := New(input)
	tok := l.NextToken()
	if tok.Type != token.VAR {
		t.Fatalf("expected VAR, got %s", tok.Type)
	}
	tok = l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "x" {
		t.Fatalf("expected identifier x after block comment, got %s %q", tok.Type, tok.Literal)
	}
}

func TestUnterminatedBlockCommentIsIllegal(t *testing.T) {
	l := New("var x int = 1; /* never closed")
	var tok token.Token
	for i := 0; i < 10; i++ {
		tok = l.NextToken()
		if tok.Type == token.ILLEGAL || tok.Type == token.EOF {
			break
		}
	}
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for an unterminated block comment, got %s", tok.Type)
	}
}

func TestScanAllReportsUnterminatedBlockCommentAsLexicalError(t *testing.T) {
	_, err := ScanAll("/* never closed")
	if err == nil {
		t.Fatalf("expected a lexical error for an unterminated block comment")
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input        string
		expectedType token.Type
		expectedLit  string
	}{
		{"123", token.INT, "123"},
		{"3.14", token.FLOAT, "3.14"},
		{"3.", token.INT, "3"}, // '.' not followed by a digit is not part of the number
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.expectedType || tok.Literal != tt.expectedLit {
			t.Fatalf("input %q: expected %s %q, got %s %q",
				tt.input, tt.expectedType, tt.expectedLit, tok.Type, tok.Literal)
		}
	}
}

func TestCharLiteral(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"'a'", "a"},
		{"'\\n'", "\n"},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != token.CHAR {
			t.Fatalf("input %q: expected CHAR, got %s", tt.input, tok.Type)
		}
		if tok.Literal != tt.expected {
			t.Fatalf("input %q: expected literal %q, got %q", tt.input, tt.expected, tok.Literal)
		}
	}
}

func TestUnterminatedCharLiteral(t *testing.T) {
	l := New("'a")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL for unterminated char literal, got %s", tok.Type)
	}
}

func TestLineTracking(t *testing.T) {
	l := New("var\nx\nint")
	var lines []int
	for {
		tok := l.NextToken()
		if tok.Type == token.EOF {
			break
		}
		lines = append(lines, tok.Pos.Line)
	}
	want := []int{1, 2, 3}
	if len(lines) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(lines), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("token %d: expected line %d, got %d", i, want[i], lines[i])
		}
	}
}

func TestScanAll(t *testing.T) {
	toks, err := ScanAll("print 'x';")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) == 0 || toks[len(toks)-1].Type != token.EOF {
		t.Fatalf("expected trailing EOF token, got %v", toks)
	}
}

func TestScanAllReportsFirstError(t *testing.T) {
	_, err := ScanAll("var x = @;")
	if err == nil {
		t.Fatal("expected a lexical error for '@'")
	}
}
