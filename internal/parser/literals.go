package parser

import (
	"strconv"

	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/pkg/token"
)

func parseIntLiteral(tok token.Token) ast.Expression {
	v, err := strconv.ParseInt(tok.Literal, 10, 64)
	if err != nil {
		return &ast.IntegerLiteral{Token: tok, Value: 0}
	}
	return &ast.IntegerLiteral{Token: tok, Value: v}
}

func parseFloatLiteral(tok token.Token) ast.Expression {
	v, err := strconv.ParseFloat(tok.Literal, 64)
	if err != nil {
		return &ast.FloatLiteral{Token: tok, Value: 0}
	}
	return &ast.FloatLiteral{Token: tok, Value: v}
}

func parseCharLiteral(tok token.Token) ast.Expression {
	r := []rune(tok.Literal)
	if len(r) == 0 {
		return &ast.CharLiteral{Token: tok, Value: 0}
	}
	return &ast.CharLiteral{Token: tok, Value: r[0]}
}
