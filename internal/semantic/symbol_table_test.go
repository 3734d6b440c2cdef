package semantic

import (
	"testing"

	"github.com/shaurya0/wabbit/internal/types"
)

func TestSymbolTableDefineAndResolve(t *testing.T) {
	st := NewSymbolTable()
	st.Define("x", types.INT, true)

	sym, ok := st.Resolve("x")
	if !ok {
		t.Fatalf("expected to resolve x")
	}
	if sym.Type != types.INT {
		t.Errorf("Type = %v, want INT", sym.Type)
	}
	if sym.IsConst {
		t.Errorf("IsConst = true, want false")
	}
}

func TestSymbolTableResolveFallsThroughToOuter(t *testing.T) {
	outer := NewSymbolTable()
	outer.Define("x", types.INT, true)
	inner := NewEnclosedSymbolTable(outer)

	sym, ok := inner.Resolve("x")
	if !ok {
		t.Fatalf("expected inner scope to resolve x via outer")
	}
	if sym.Type != types.INT {
		t.Errorf("Type = %v, want INT", sym.Type)
	}
}

func TestSymbolTableShadowing(t *testing.T) {
	outer := NewSymbolTable()
	outer.Define("x", types.INT, true)
	inner := NewEnclosedSymbolTable(outer)
	inner.Define("x", types.FLOAT, true)

	sym, _ := inner.Resolve("x")
	if sym.Type != types.FLOAT {
		t.Errorf("inner Resolve = %v, want FLOAT (shadowing outer)", sym.Type)
	}

	outerSym, _ := outer.Resolve("x")
	if outerSym.Type != types.INT {
		t.Errorf("outer Resolve = %v, want INT (unaffected by inner shadow)", outerSym.Type)
	}
}

func TestSymbolTableIsDeclaredInCurrentScope(t *testing.T) {
	outer := NewSymbolTable()
	outer.Define("x", types.INT, true)
	inner := NewEnclosedSymbolTable(outer)

	if inner.IsDeclaredInCurrentScope("x") {
		t.Errorf("x should not be declared in the inner scope directly")
	}
	if !outer.IsDeclaredInCurrentScope("x") {
		t.Errorf("x should be declared in the outer scope")
	}
}

func TestSymbolTableDefineConst(t *testing.T) {
	st := NewSymbolTable()
	st.DefineConst("pi", types.FLOAT)

	sym, ok := st.Resolve("pi")
	if !ok {
		t.Fatalf("expected to resolve pi")
	}
	if !sym.IsConst {
		t.Errorf("IsConst = false, want true")
	}
	if !sym.Defined {
		t.Errorf("Defined = false, want true (constants are always defined)")
	}
}
