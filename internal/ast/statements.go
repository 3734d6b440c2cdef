package ast

import (
	"bytes"

	"github.com/shaurya0/wabbit/pkg/token"
)

// BlockStatement is a brace-delimited sequence of statements and introduces
// a new lexical scope when it is the body of an if/while/function.
type BlockStatement struct {
	Statements []Statement
	Token      token.Token
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for _, s := range bs.Statements {
		out.WriteString(s.String())
		out.WriteString(" ")
	}
	out.WriteString("}")
	return out.String()
}

// AssignmentStatement assigns a new value to an already-declared name.
type AssignmentStatement struct {
	Name  *Identifier
	Value Expression
	Token token.Token
}

func (as *AssignmentStatement) statementNode()       {}
func (as *AssignmentStatement) TokenLiteral() string { return as.Token.Literal }
func (as *AssignmentStatement) Pos() token.Position  { return as.Token.Pos }
func (as *AssignmentStatement) String() string {
	return as.Name.String() + " = " + as.Value.String() + ";"
}

// PrintStatement writes the value of an expression to the program's output.
type PrintStatement struct {
	Value Expression
	Token token.Token
}

func (ps *PrintStatement) statementNode()       {}
func (ps *PrintStatement) TokenLiteral() string { return ps.Token.Literal }
func (ps *PrintStatement) Pos() token.Position  { return ps.Token.Pos }
func (ps *PrintStatement) String() string {
	return "print " + ps.Value.String() + ";"
}

// ReturnStatement returns a value from the enclosing function.
type ReturnStatement struct {
	Value Expression
	Token token.Token
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) Pos() token.Position  { return rs.Token.Pos }
func (rs *ReturnStatement) String() string {
	return "return " + rs.Value.String() + ";"
}

// ExpressionStatement is a bare expression used as a statement (e.g. a call
// whose result is discarded).
type ExpressionStatement struct {
	Expr  Expression
	Token token.Token
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) Pos() token.Position  { return es.Token.Pos }
func (es *ExpressionStatement) String() string       { return es.Expr.String() + ";" }
