// Package semantic implements Wabbit's static type checker: scope
// resolution, declaration validation, and per-expression type annotation.
package semantic

import (
	"github.com/shaurya0/wabbit/internal/types"
)

// Symbol is a name bound in some scope: a variable, a constant, or a
// function.
type Symbol struct {
	Name     string
	Type     types.Type
	IsConst  bool
	Defined  bool // false for an uninitialized var until an assignment to it is checked
}

// SymbolTable manages symbols for one lexical scope, chained to its
// enclosing scope so lookups fall through to globals.
type SymbolTable struct {
	symbols map[string]*Symbol
	outer   *SymbolTable
}

// NewSymbolTable creates a fresh top-level (global) symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{symbols: make(map[string]*Symbol)}
}

// NewEnclosedSymbolTable creates a scope nested inside outer, used for
// block bodies (if/while/func).
func NewEnclosedSymbolTable(outer *SymbolTable) *SymbolTable {
	st := NewSymbolTable()
	st.outer = outer
	return st
}

// Define binds a mutable variable in the current scope.
func (st *SymbolTable) Define(name string, typ types.Type, defined bool) {
	st.symbols[name] = &Symbol{Name: name, Type: typ, Defined: defined}
}

// DefineConst binds an immutable constant in the current scope.
func (st *SymbolTable) DefineConst(name string, typ types.Type) {
	st.symbols[name] = &Symbol{Name: name, Type: typ, IsConst: true, Defined: true}
}

// Resolve looks up name in the current scope, then each enclosing scope in
// turn.
func (st *SymbolTable) Resolve(name string) (*Symbol, bool) {
	if sym, ok := st.symbols[name]; ok {
		return sym, true
	}
	if st.outer != nil {
		return st.outer.Resolve(name)
	}
	return nil, false
}

// IsDeclaredInCurrentScope reports whether name is bound directly in this
// scope, ignoring enclosing scopes.
func (st *SymbolTable) IsDeclaredInCurrentScope(name string) bool {
	_, ok := st.symbols[name]
	return ok
}
