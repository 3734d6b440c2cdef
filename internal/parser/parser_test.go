package parser

import (
	"testing"

	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/lexer"
)

func testParse(t *testing.T, input string) *ast.Program {
	t.Helper()
	toks, err := lexer.ScanAll(input)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	program, err := New(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return program
}

func testParseError(t *testing.T, input string) error {
	t.Helper()
	toks, err := lexer.ScanAll(input)
	if err != nil {
		t.Fatalf("lexer error: %v", err)
	}
	_, err = New(toks).Parse()
	if err == nil {
		t.Fatalf("expected a parse error for %q, got none", input)
	}
	return err
}

func TestParseVarDecl(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"var x int;", "var x int;"},
		{"var x = 1;", "var x = 1;"},
		{"var x int = 1;", "var x int = 1;"},
	}
	for _, tt := range tests {
		program := testParse(t, tt.input)
		if len(program.Statements) != 1 {
			t.Fatalf("%q: got %d statements, want 1", tt.input, len(program.Statements))
		}
		if got := program.Statements[0].String(); got != tt.want {
			t.Errorf("%q: String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseVarDeclRequiresTypeOrValue(t *testing.T) {
	testParseError(t, "var x;")
}

func TestParseConstDeclRequiresInitializer(t *testing.T) {
	testParseError(t, "const x int;")
}

func TestParseAssignment(t *testing.T) {
	program := testParse(t, "x = 1 + 2;")
	stmt, ok := program.Statements[0].(*ast.AssignmentStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.AssignmentStatement", program.Statements[0])
	}
	if stmt.Name.Value != "x" {
		t.Errorf("Name = %q, want x", stmt.Name.Value)
	}
	if got, want := stmt.Value.String(), "(1 + 2)"; got != want {
		t.Errorf("Value = %q, want %q", got, want)
	}
}

func TestParseAssignmentTargetMustBeName(t *testing.T) {
	testParseError(t, "1 = 2;")
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3;", "(1 + (2 * 3))"},
		{"1 * 2 + 3;", "((1 * 2) + 3)"},
		{"a < b == c;", "((a < b) == c)"},
		{"a || b && c;", "(a || (b && c))"},
		{"-a * b;", "(-a * b)"},
		{"!a == b;", "(!a == b)"},
		{"(1 + 2) * 3;", "((1 + 2) * 3)"},
	}
	for _, tt := range tests {
		program := testParse(t, tt.input)
		stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
		if !ok {
			t.Fatalf("%q: statement is %T, want *ast.ExpressionStatement", tt.input, program.Statements[0])
		}
		if got := stmt.Expr.String(); got != tt.want {
			t.Errorf("%q: String() = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseCallExpression(t *testing.T) {
	program := testParse(t, "isprime(15);")
	stmt, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Statements[0])
	}
	call, ok := stmt.Expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.CallExpression", stmt.Expr)
	}
	if call.Callee.Value != "isprime" {
		t.Errorf("Callee = %q, want isprime", call.Callee.Value)
	}
	if len(call.Args) != 1 {
		t.Fatalf("got %d args, want 1", len(call.Args))
	}
}

func TestParseCallTrailingComma(t *testing.T) {
	program := testParse(t, "f(1, 2,);")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call := stmt.Expr.(*ast.CallExpression)
	if len(call.Args) != 2 {
		t.Fatalf("got %d args, want 2", len(call.Args))
	}
}

func TestParseIfElse(t *testing.T) {
	program := testParse(t, "if a < b { print 'L'; } else { print 'G'; }")
	stmt, ok := program.Statements[0].(*ast.IfStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.IfStatement", program.Statements[0])
	}
	if len(stmt.Consequence.Statements) != 1 {
		t.Fatalf("consequence has %d statements, want 1", len(stmt.Consequence.Statements))
	}
	alt, ok := stmt.Alternative.(*ast.BlockStatement)
	if !ok {
		t.Fatalf("alternative is %T, want *ast.BlockStatement", stmt.Alternative)
	}
	if len(alt.Statements) != 1 {
		t.Fatalf("alternative has %d statements, want 1", len(alt.Statements))
	}
}

func TestParseDanglingElseBindsToNearestIf(t *testing.T) {
	program := testParse(t, "if a { if b { print 'x'; } else { print 'y'; } }")
	outer := program.Statements[0].(*ast.IfStatement)
	inner := outer.Consequence.Statements[0].(*ast.IfStatement)
	if inner.Alternative == nil {
		t.Fatalf("inner if should have the else clause attached")
	}
}

func TestParseWhileLoop(t *testing.T) {
	program := testParse(t, "while x < 10 { x = x + 1; }")
	stmt, ok := program.Statements[0].(*ast.WhileStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.WhileStatement", program.Statements[0])
	}
	if len(stmt.Body.Statements) != 1 {
		t.Fatalf("body has %d statements, want 1", len(stmt.Body.Statements))
	}
}

func TestParseFuncDecl(t *testing.T) {
	program := testParse(t, "func add(a int, b int) int { return a + b; }")
	fn, ok := program.Statements[0].(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("statement is %T, want *ast.FunctionDecl", program.Statements[0])
	}
	if fn.Name.Value != "add" {
		t.Errorf("Name = %q, want add", fn.Name.Value)
	}
	if len(fn.Parameters) != 2 {
		t.Fatalf("got %d parameters, want 2", len(fn.Parameters))
	}
	if fn.ReturnType.Name != "int" {
		t.Errorf("ReturnType = %q, want int", fn.ReturnType.Name)
	}
}

func TestParseFuncDeclEmptyParams(t *testing.T) {
	program := testParse(t, "func zero() int { return 0; }")
	fn := program.Statements[0].(*ast.FunctionDecl)
	if len(fn.Parameters) != 0 {
		t.Fatalf("got %d parameters, want 0", len(fn.Parameters))
	}
}

func TestParseBreakContinue(t *testing.T) {
	program := testParse(t, "while true { break; continue; }")
	loop := program.Statements[0].(*ast.WhileStatement)
	if _, ok := loop.Body.Statements[0].(*ast.BreakStatement); !ok {
		t.Fatalf("first statement is %T, want *ast.BreakStatement", loop.Body.Statements[0])
	}
	if _, ok := loop.Body.Statements[1].(*ast.ContinueStatement); !ok {
		t.Fatalf("second statement is %T, want *ast.ContinueStatement", loop.Body.Statements[1])
	}
}

func TestParseFullProgram(t *testing.T) {
	input := `var x int = 1;
var fact int = 1;
while x < 11 {
  fact = fact * x;
  x = x + 1;
  print fact;
}`
	program := testParse(t, input)
	if len(program.Statements) != 3 {
		t.Fatalf("got %d top-level statements, want 3", len(program.Statements))
	}
}
