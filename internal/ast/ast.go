// Package ast defines the Abstract Syntax Tree node types for Wabbit.
package ast

import (
	"bytes"

	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

// Node is the base interface for every AST node.
type Node interface {
	TokenLiteral() string
	String() string
	Pos() token.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
	GetType() types.Type
	SetType(types.Type)
}

// Statement is any node that performs an action without producing a value.
type Statement interface {
	Node
	statementNode()
}

// Program is the root of the AST: an ordered sequence of top-level statements.
type Program struct {
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}
	return out.String()
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{Line: 1, Column: 1}
}

// Identifier represents a name reference (variable, constant, or function).
type Identifier struct {
	Type  types.Type
	Value string
	Token token.Token
}

func (i *Identifier) expressionNode()        {}
func (i *Identifier) TokenLiteral() string   { return i.Token.Literal }
func (i *Identifier) String() string         { return i.Value }
func (i *Identifier) Pos() token.Position    { return i.Token.Pos }
func (i *Identifier) GetType() types.Type    { return i.Type }
func (i *Identifier) SetType(t types.Type)   { i.Type = t }
