// Package types defines Wabbit's primitive type system: int, float, char,
// bool, plus function signatures built from them. There are no composite
// or reference types.
package types

import "strings"

// Type is implemented by every type value in the system.
type Type interface {
	String() string
	TypeKind() string
	Equals(other Type) bool
}

// Primitive is one of the four built-in scalar types.
type Primitive struct {
	name string
	kind string
}

func (p Primitive) String() string   { return p.name }
func (p Primitive) TypeKind() string { return p.kind }
func (p Primitive) Equals(other Type) bool {
	o, ok := other.(Primitive)
	return ok && o.name == p.name
}

var (
	INT   = Primitive{name: "int", kind: "INT"}
	FLOAT = Primitive{name: "float", kind: "FLOAT"}
	CHAR  = Primitive{name: "char", kind: "CHAR"}
	BOOL  = Primitive{name: "bool", kind: "BOOL"}
)

// IsNumeric reports whether t is int or float.
func IsNumeric(t Type) bool {
	return t != nil && (t.Equals(INT) || t.Equals(FLOAT))
}

// IsOrdered reports whether t supports relational/equality comparison:
// int, float, or char.
func IsOrdered(t Type) bool {
	return t != nil && (t.Equals(INT) || t.Equals(FLOAT) || t.Equals(CHAR))
}

// FromName maps a type-name keyword's lexeme to its Type, or reports ok=false.
func FromName(name string) (Type, bool) {
	switch name {
	case "int":
		return INT, true
	case "float":
		return FLOAT, true
	case "char":
		return CHAR, true
	case "bool":
		return BOOL, true
	default:
		return nil, false
	}
}

// FunctionType is the signature of a declared function: ordered parameter
// types and a single return type. Wabbit has no overloading, so a function
// name maps to exactly one FunctionType.
type FunctionType struct {
	ReturnType Type
	Params     []Type
}

func (f *FunctionType) TypeKind() string { return "FUNCTION" }

func (f *FunctionType) String() string {
	var sb strings.Builder
	sb.WriteString("func(")
	for i, p := range f.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(") ")
	sb.WriteString(f.ReturnType.String())
	return sb.String()
}

func (f *FunctionType) Equals(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(o.Params) != len(f.Params) || !o.ReturnType.Equals(f.ReturnType) {
		return false
	}
	for i := range f.Params {
		if !f.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	return true
}
