package ast

import (
	"bytes"
	"strings"

	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

// GroupingExpression is a parenthesized expression: (expr).
type GroupingExpression struct {
	Type       types.Type
	Expression Expression
	Token      token.Token
}

func (g *GroupingExpression) expressionNode()      {}
func (g *GroupingExpression) TokenLiteral() string { return g.Token.Literal }
func (g *GroupingExpression) Pos() token.Position  { return g.Token.Pos }
func (g *GroupingExpression) GetType() types.Type  { return g.Type }
func (g *GroupingExpression) SetType(t types.Type) { g.Type = t }
func (g *GroupingExpression) String() string {
	return "(" + g.Expression.String() + ")"
}

// UnaryExpression is a prefix unary operation: -expr or !expr.
type UnaryExpression struct {
	Type     types.Type
	Operand  Expression
	Operator token.Token
}

func (u *UnaryExpression) expressionNode()      {}
func (u *UnaryExpression) TokenLiteral() string { return u.Operator.Literal }
func (u *UnaryExpression) Pos() token.Position  { return u.Operator.Pos }
func (u *UnaryExpression) GetType() types.Type  { return u.Type }
func (u *UnaryExpression) SetType(t types.Type) { u.Type = t }
func (u *UnaryExpression) String() string {
	return u.Operator.Literal + u.Operand.String()
}

// BinaryExpression is a binary operation: arithmetic, relational, equality,
// or (lexed-but-rejected, see SPEC_FULL.md §9) logical connective.
type BinaryExpression struct {
	Type     types.Type
	Left     Expression
	Right    Expression
	Operator token.Token
}

func (b *BinaryExpression) expressionNode()      {}
func (b *BinaryExpression) TokenLiteral() string { return b.Operator.Literal }
func (b *BinaryExpression) Pos() token.Position  { return b.Left.Pos() }
func (b *BinaryExpression) GetType() types.Type  { return b.Type }
func (b *BinaryExpression) SetType(t types.Type) { b.Type = t }
func (b *BinaryExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Left.String())
	out.WriteString(" " + b.Operator.Literal + " ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// CallExpression invokes a named function with a list of arguments.
type CallExpression struct {
	Type     types.Type
	Callee   *Identifier
	Token    token.Token
	Args     []Expression
}

func (c *CallExpression) expressionNode()      {}
func (c *CallExpression) TokenLiteral() string { return c.Token.Literal }
func (c *CallExpression) Pos() token.Position  { return c.Token.Pos }
func (c *CallExpression) GetType() types.Type  { return c.Type }
func (c *CallExpression) SetType(t types.Type) { c.Type = t }
func (c *CallExpression) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	var out bytes.Buffer
	out.WriteString(c.Callee.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}
