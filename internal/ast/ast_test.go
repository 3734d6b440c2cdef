package ast

import (
	"testing"

	"github.com/shaurya0/wabbit/pkg/token"
)

func ident(name string) *Identifier {
	return &Identifier{Token: token.Token{Type: token.IDENT, Literal: name}, Value: name}
}

func TestProgramString(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&VarDecl{
				Token: token.Token{Type: token.VAR, Literal: "var"},
				Name:  ident("x"),
				Type:  &TypeAnnotation{Name: "int"},
				Value: &IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
			},
		},
	}

	want := "var x int = 1;"
	if program.String() != want {
		t.Errorf("String() = %q, want %q", program.String(), want)
	}
}

func TestConstDeclStringWithoutType(t *testing.T) {
	cd := &ConstDecl{
		Token: token.Token{Type: token.CONST, Literal: "const"},
		Name:  ident("pi"),
		Value: &FloatLiteral{Token: token.Token{Literal: "3.14"}, Value: 3.14},
	}
	want := "const pi = 3.14;"
	if cd.String() != want {
		t.Errorf("String() = %q, want %q", cd.String(), want)
	}
}

func TestIfStatementString(t *testing.T) {
	is := &IfStatement{
		Token:     token.Token{Type: token.IF, Literal: "if"},
		Condition: ident("ok"),
		Consequence: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&PrintStatement{Token: token.Token{Literal: "print"}, Value: &CharLiteral{Value: 'L'}},
			},
		},
	}

	want := "if ok { print 'L'; }"
	if is.String() != want {
		t.Errorf("String() = %q, want %q", is.String(), want)
	}
}

func TestBinaryExpressionString(t *testing.T) {
	expr := &BinaryExpression{
		Operator: token.Token{Type: token.PLUS, Literal: "+"},
		Left:     &IntegerLiteral{Token: token.Token{Literal: "1"}, Value: 1},
		Right: &BinaryExpression{
			Operator: token.Token{Type: token.STAR, Literal: "*"},
			Left:     &IntegerLiteral{Token: token.Token{Literal: "2"}, Value: 2},
			Right:    &IntegerLiteral{Token: token.Token{Literal: "3"}, Value: 3},
		},
	}

	want := "(1 + (2 * 3))"
	if expr.String() != want {
		t.Errorf("String() = %q, want %q", expr.String(), want)
	}
}

func TestCallExpressionString(t *testing.T) {
	call := &CallExpression{
		Callee: ident("isprime"),
		Args:   []Expression{&IntegerLiteral{Token: token.Token{Literal: "15"}, Value: 15}},
	}
	want := "isprime(15)"
	if call.String() != want {
		t.Errorf("String() = %q, want %q", call.String(), want)
	}
}

func TestFunctionDeclString(t *testing.T) {
	fd := &FunctionDecl{
		Token:      token.Token{Type: token.FUNC, Literal: "func"},
		Name:       ident("add"),
		ReturnType: &TypeAnnotation{Name: "int"},
		Parameters: []*Parameter{
			{Name: ident("a"), Type: &TypeAnnotation{Name: "int"}},
			{Name: ident("b"), Type: &TypeAnnotation{Name: "int"}},
		},
		Body: &BlockStatement{
			Token: token.Token{Type: token.LBRACE, Literal: "{"},
			Statements: []Statement{
				&ReturnStatement{
					Token: token.Token{Literal: "return"},
					Value: &BinaryExpression{
						Operator: token.Token{Type: token.PLUS, Literal: "+"},
						Left:     ident("a"),
						Right:    ident("b"),
					},
				},
			},
		},
	}

	want := "func add(a int, b int) int { return (a + b); }"
	if fd.String() != want {
		t.Errorf("String() = %q, want %q", fd.String(), want)
	}
}
