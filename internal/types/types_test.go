package types

import "testing"

func TestPrimitiveStringAndKind(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
		kind     string
	}{
		{INT, "int", "INT"},
		{FLOAT, "float", "FLOAT"},
		{CHAR, "char", "CHAR"},
		{BOOL, "bool", "BOOL"},
	}

	for _, tt := range tests {
		if tt.typ.String() != tt.expected {
			t.Errorf("String() = %v, want %v", tt.typ.String(), tt.expected)
		}
		if tt.typ.TypeKind() != tt.kind {
			t.Errorf("TypeKind() = %v, want %v", tt.typ.TypeKind(), tt.kind)
		}
	}
}

func TestPrimitiveEquality(t *testing.T) {
	tests := []struct {
		a, b     Type
		expected bool
	}{
		{INT, INT, true},
		{FLOAT, FLOAT, true},
		{INT, FLOAT, false},
		{CHAR, BOOL, false},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.expected {
			t.Errorf("%v.Equals(%v) = %v, want %v", tt.a, tt.b, got, tt.expected)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	if !IsNumeric(INT) || !IsNumeric(FLOAT) {
		t.Error("int and float must be numeric")
	}
	if IsNumeric(CHAR) || IsNumeric(BOOL) {
		t.Error("char and bool must not be numeric")
	}
}

func TestIsOrdered(t *testing.T) {
	for _, typ := range []Type{INT, FLOAT, CHAR} {
		if !IsOrdered(typ) {
			t.Errorf("%v should be ordered", typ)
		}
	}
	if IsOrdered(BOOL) {
		t.Error("bool should not be ordered for relational comparisons")
	}
}

func TestFromName(t *testing.T) {
	if typ, ok := FromName("int"); !ok || typ != INT {
		t.Fatalf("FromName(int) = %v, %v", typ, ok)
	}
	if _, ok := FromName("string"); ok {
		t.Fatal("FromName(string) should fail: no string type in Wabbit")
	}
}

func TestFunctionTypeEquality(t *testing.T) {
	f1 := &FunctionType{Params: []Type{INT, INT}, ReturnType: BOOL}
	f2 := &FunctionType{Params: []Type{INT, INT}, ReturnType: BOOL}
	f3 := &FunctionType{Params: []Type{INT}, ReturnType: BOOL}

	if !f1.Equals(f2) {
		t.Error("identical signatures should be equal")
	}
	if f1.Equals(f3) {
		t.Error("different arity should not be equal")
	}
	if f1.String() != "func(int, int) bool" {
		t.Errorf("unexpected String(): %s", f1.String())
	}
}
