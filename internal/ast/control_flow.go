package ast

import (
	"bytes"

	"github.com/shaurya0/wabbit/pkg/token"
)

// IfStatement is a conditional; Alternative may be nil, a *BlockStatement,
// or another *IfStatement (dangling-else binds to the nearest if).
type IfStatement struct {
	Condition   Expression
	Consequence *BlockStatement
	Alternative Statement
	Token       token.Token
}

func (is *IfStatement) statementNode()       {}
func (is *IfStatement) TokenLiteral() string { return is.Token.Literal }
func (is *IfStatement) Pos() token.Position  { return is.Token.Pos }
func (is *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if ")
	out.WriteString(is.Condition.String())
	out.WriteString(" ")
	out.WriteString(is.Consequence.String())
	if is.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(is.Alternative.String())
	}
	return out.String()
}

// WhileStatement is a pre-tested loop.
type WhileStatement struct {
	Condition Expression
	Body      *BlockStatement
	Token     token.Token
}

func (ws *WhileStatement) statementNode()       {}
func (ws *WhileStatement) TokenLiteral() string { return ws.Token.Literal }
func (ws *WhileStatement) Pos() token.Position  { return ws.Token.Pos }
func (ws *WhileStatement) String() string {
	var out bytes.Buffer
	out.WriteString("while ")
	out.WriteString(ws.Condition.String())
	out.WriteString(" ")
	out.WriteString(ws.Body.String())
	return out.String()
}

// BreakStatement exits the nearest enclosing while loop.
type BreakStatement struct {
	Token token.Token
}

func (bs *BreakStatement) statementNode()       {}
func (bs *BreakStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BreakStatement) Pos() token.Position  { return bs.Token.Pos }
func (bs *BreakStatement) String() string       { return "break;" }

// ContinueStatement jumps to the re-test of the nearest enclosing while loop.
type ContinueStatement struct {
	Token token.Token
}

func (cs *ContinueStatement) statementNode()       {}
func (cs *ContinueStatement) TokenLiteral() string { return cs.Token.Literal }
func (cs *ContinueStatement) Pos() token.Position  { return cs.Token.Pos }
func (cs *ContinueStatement) String() string       { return "continue;" }
