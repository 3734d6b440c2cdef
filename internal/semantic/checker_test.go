package semantic

import (
	"testing"

	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/lexer"
	"github.com/shaurya0/wabbit/internal/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCheck(t *testing.T, src string) (*ast.Program, error) {
	t.Helper()
	toks, err := lexer.ScanAll(src)
	require.NoError(t, err, "lexer error")
	program, err := parser.New(toks).Parse()
	require.NoError(t, err, "parse error")
	return program, New().WithSource(src).Check(program)
}

func TestCheckFactorialLoop(t *testing.T) {
	src := `var x int = 1;
var fact int = 1;
while x < 11 {
  fact = fact * x;
  x = x + 1;
  print fact;
}`
	_, err := mustCheck(t, src)
	assert.NoError(t, err)
}

func TestCheckConstReassignmentRejected(t *testing.T) {
	src := `const pi float = 3.14;
pi = 3.0;`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected a type error reassigning a constant")
}

func TestCheckIntFloatMismatchRejected(t *testing.T) {
	src := `var x int = 1;
var y float = 2.0;
x = y;`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected a type mismatch error")
}

func TestCheckIsPrimeFunction(t *testing.T) {
	src := `func isprime(n int) bool {
  var f int = 2;
  while f <= n / 2 {
    if f * (n / f) == n {
      return false;
    }
    f = f + 1;
  }
  return true;
}
print isprime(15);
print isprime(37);`
	_, err := mustCheck(t, src)
	assert.NoError(t, err)
}

func TestCheckIfElseCharPrint(t *testing.T) {
	src := `var a int = 2;
var b int = 3;
if a < b { print 'L'; } else { print 'G'; }`
	_, err := mustCheck(t, src)
	assert.NoError(t, err)
}

func TestCheckLogicalOperatorsRejected(t *testing.T) {
	src := `var a bool = true;
var b bool = false;
print a && b;`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected && to be rejected at type-check time")
}

func TestCheckUninitializedReadRejected(t *testing.T) {
	src := `var x int;
print x;`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected a read of an uninitialized variable to be rejected")
}

func TestCheckUninitializedVarDeclSetsNodeType(t *testing.T) {
	src := `var p float;
p = 2.0;`
	program, err := mustCheck(t, src)
	require.NoError(t, err)

	decl, ok := program.Statements[0].(*ast.VarDecl)
	require.True(t, ok, "expected first statement to be a VarDecl")
	require.NotNil(t, decl.Name.GetType(), "uninitialized var decl must still annotate its Identifier's type")
	assert.Equal(t, "float", decl.Name.GetType().String())
}

func TestCheckBreakOutsideLoopRejected(t *testing.T) {
	src := `break;`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected break outside a loop to be rejected")
}

func TestCheckContinueInsideLoopAllowed(t *testing.T) {
	src := `var x int = 0;
while x < 5 {
  x = x + 1;
  continue;
}`
	_, err := mustCheck(t, src)
	assert.NoError(t, err)
}

func TestCheckFunctionArityMismatchRejected(t *testing.T) {
	src := `func add(a int, b int) int { return a + b; }
print add(1);`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected an arity mismatch error")
}

func TestCheckCallingVariableRejected(t *testing.T) {
	src := `var f int = 1;
f(1);`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected calling a variable to be rejected")
}

func TestCheckNestedFunctionRejected(t *testing.T) {
	src := `func outer() int {
  func inner() int { return 1; }
  return inner();
}`
	_, err := mustCheck(t, src)
	assert.Error(t, err, "expected a nested function declaration to be rejected")
}

func TestCheckNewlinePrint(t *testing.T) {
	_, err := mustCheck(t, "print '\\n';")
	assert.NoError(t, err)
}
