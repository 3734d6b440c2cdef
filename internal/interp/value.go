// Package interp implements a tree-walking evaluator over the annotated
// AST, the alternative backend named alongside the IR lowerer in §4.5.
package interp

import (
	"fmt"

	"github.com/shaurya0/wabbit/internal/types"
)

// Value is a runtime value produced by evaluating an expression. Wabbit has
// exactly four representable shapes; there is no composite or reference
// value, so Value is a plain tagged union rather than an interface hierarchy.
type Value struct {
	Type  types.Type
	Int   int64
	Float float64
	Char  rune
	Bool  bool
}

func IntValue(v int64) Value     { return Value{Type: types.INT, Int: v} }
func FloatValue(v float64) Value { return Value{Type: types.FLOAT, Float: v} }
func CharValue(v rune) Value     { return Value{Type: types.CHAR, Char: v} }
func BoolValue(v bool) Value     { return Value{Type: types.BOOL, Bool: v} }

// String renders v the way `print` writes it: the bare value, no type tag,
// matching the host-formatted-line behavior described in §4.5.
func (v Value) String() string {
	switch {
	case v.Type == nil:
		return "<void>"
	case v.Type.Equals(types.INT):
		return fmt.Sprintf("%d", v.Int)
	case v.Type.Equals(types.FLOAT):
		return fmt.Sprintf("%g", v.Float)
	case v.Type.Equals(types.CHAR):
		return string(v.Char)
	case v.Type.Equals(types.BOOL):
		return fmt.Sprintf("%t", v.Bool)
	default:
		return "<?>"
	}
}
