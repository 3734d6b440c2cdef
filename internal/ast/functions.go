package ast

import (
	"bytes"
	"strings"

	"github.com/shaurya0/wabbit/pkg/token"
)

// Parameter is one (name, type) pair in a function's parameter list.
type Parameter struct {
	Name  *Identifier
	Type  *TypeAnnotation
	Token token.Token
}

func (p *Parameter) String() string {
	return p.Name.String() + " " + p.Type.String()
}

// FunctionDecl declares a top-level function. Functions are not nested and
// are visible to their own body (for self-recursion) before it is checked.
type FunctionDecl struct {
	Name       *Identifier
	ReturnType *TypeAnnotation
	Body       *BlockStatement
	Token      token.Token
	Parameters []*Parameter
}

func (fd *FunctionDecl) statementNode()       {}
func (fd *FunctionDecl) TokenLiteral() string { return fd.Token.Literal }
func (fd *FunctionDecl) Pos() token.Position  { return fd.Token.Pos }
func (fd *FunctionDecl) String() string {
	var out bytes.Buffer
	out.WriteString("func ")
	out.WriteString(fd.Name.String())
	out.WriteString("(")
	params := make([]string, len(fd.Parameters))
	for i, p := range fd.Parameters {
		params[i] = p.String()
	}
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fd.ReturnType.String())
	out.WriteString(" ")
	out.WriteString(fd.Body.String())
	return out.String()
}
