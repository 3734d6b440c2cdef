package ast

import (
	"bytes"

	"github.com/shaurya0/wabbit/pkg/token"
)

// TypeAnnotation names a declared type in source, e.g. the `int` in `var x int`.
type TypeAnnotation struct {
	Token token.Token // the type-name keyword token
	Name  string
}

func (ta *TypeAnnotation) String() string { return ta.Name }

// VarDecl declares a mutable variable. Either Type or Value (or both) must
// be present; a bare `var x;` is a parse error.
//
//	var x int;
//	var x int = 1;
//	var x = 1;
type VarDecl struct {
	Value Expression
	Name  *Identifier
	Type  *TypeAnnotation
	Token token.Token
}

func (vd *VarDecl) statementNode()       {}
func (vd *VarDecl) TokenLiteral() string { return vd.Token.Literal }
func (vd *VarDecl) Pos() token.Position  { return vd.Token.Pos }
func (vd *VarDecl) String() string {
	var out bytes.Buffer
	out.WriteString("var ")
	out.WriteString(vd.Name.String())
	if vd.Type != nil {
		out.WriteString(" " + vd.Type.String())
	}
	if vd.Value != nil {
		out.WriteString(" = ")
		out.WriteString(vd.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ConstDecl declares an immutable constant. An initializer is required.
//
//	const pi float = 3.14;
//	const pi = 3.14;
type ConstDecl struct {
	Value Expression
	Name  *Identifier
	Type  *TypeAnnotation
	Token token.Token
}

func (cd *ConstDecl) statementNode()       {}
func (cd *ConstDecl) TokenLiteral() string { return cd.Token.Literal }
func (cd *ConstDecl) Pos() token.Position  { return cd.Token.Pos }
func (cd *ConstDecl) String() string {
	var out bytes.Buffer
	out.WriteString("const ")
	out.WriteString(cd.Name.String())
	if cd.Type != nil {
		out.WriteString(" " + cd.Type.String())
	}
	out.WriteString(" = ")
	out.WriteString(cd.Value.String())
	out.WriteString(";")
	return out.String()
}
