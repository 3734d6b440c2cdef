package semantic

import (
	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/diag"
	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

// Checker walks an *ast.Program, resolving names and assigning a type to
// every expression in place. Functions live in their own global map (they
// are never nested and never shadow a variable of the same name, nor vice
// versa, per §4.3); variables and constants live in a SymbolTable scope
// chain rooted at globals.
type Checker struct {
	functions map[string]*types.FunctionType
	globals   *SymbolTable
	scope     *SymbolTable

	// expectedReturn is the declared return type of the function currently
	// being checked; nil outside any function body.
	expectedReturn types.Type

	// loopDepth counts enclosing while loops, so break/continue outside a
	// loop is rejected (§9 resolves this Open Question: both are checked).
	loopDepth int

	errors diag.List
	source string
}

// New creates a Checker with an empty global scope.
func New() *Checker {
	globals := NewSymbolTable()
	return &Checker{
		functions: make(map[string]*types.FunctionType),
		globals:   globals,
		scope:     globals,
	}
}

// WithSource attaches source text so diagnostics render a caret-annotated
// line.
func (c *Checker) WithSource(source string) *Checker {
	c.source = source
	return c
}

// Check type-checks the whole program. Per §7, the first type error wins:
// checking stops at the first failing node, though (like the parser) all
// diagnostics accumulated up to that point are returned together.
func (c *Checker) Check(program *ast.Program) error {
	for _, stmt := range program.Statements {
		c.checkStatement(stmt)
		if !c.errors.Empty() {
			return &c.errors
		}
	}
	return nil
}

func (c *Checker) errorf(pos token.Position, format string, args ...any) {
	err := diag.Newf(diag.TypeErr, pos, format, args...)
	if c.source != "" {
		err = err.WithSource(c.source, "")
	}
	c.errors.Add(err)
}

func (c *Checker) fatal() bool { return !c.errors.Empty() }

// pushScope enters a new nested block scope.
func (c *Checker) pushScope() {
	c.scope = NewEnclosedSymbolTable(c.scope)
}

// popScope exits the current block scope back to its parent.
func (c *Checker) popScope() {
	c.scope = c.scope.outer
}
