package ast

import (
	"strconv"

	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

// IntegerLiteral is an integer literal, e.g. 42.
type IntegerLiteral struct {
	Type  types.Type
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return il.Token.Literal }
func (il *IntegerLiteral) Pos() token.Position  { return il.Token.Pos }
func (il *IntegerLiteral) GetType() types.Type  { return il.Type }
func (il *IntegerLiteral) SetType(t types.Type) { il.Type = t }

// FloatLiteral is a floating-point literal, e.g. 3.14.
type FloatLiteral struct {
	Type  types.Type
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()      {}
func (fl *FloatLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FloatLiteral) String() string       { return fl.Token.Literal }
func (fl *FloatLiteral) Pos() token.Position  { return fl.Token.Pos }
func (fl *FloatLiteral) GetType() types.Type  { return fl.Type }
func (fl *FloatLiteral) SetType(t types.Type) { fl.Type = t }

// CharLiteral is a single-character literal, e.g. 'a'.
type CharLiteral struct {
	Type  types.Type
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()      {}
func (cl *CharLiteral) TokenLiteral() string { return cl.Token.Literal }
func (cl *CharLiteral) String() string       { return "'" + string(cl.Value) + "'" }
func (cl *CharLiteral) Pos() token.Position  { return cl.Token.Pos }
func (cl *CharLiteral) GetType() types.Type  { return cl.Type }
func (cl *CharLiteral) SetType(t types.Type) { cl.Type = t }

// BoolLiteral is a boolean literal: true or false.
type BoolLiteral struct {
	Type  types.Type
	Token token.Token
	Value bool
}

func (bl *BoolLiteral) expressionNode()      {}
func (bl *BoolLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BoolLiteral) String() string       { return strconv.FormatBool(bl.Value) }
func (bl *BoolLiteral) Pos() token.Position  { return bl.Token.Pos }
func (bl *BoolLiteral) GetType() types.Type  { return bl.Type }
func (bl *BoolLiteral) SetType(t types.Type) { bl.Type = t }
