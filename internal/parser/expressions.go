package parser

import (
	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/pkg/token"
)

// parseExpression is the entry point for the precedence-climbing ladder.
// Standalone assignment is handled one level up in statements.go, so this
// starts at or_term, per §4.2.
func (p *Parser) parseExpression() ast.Expression {
	return p.parseOrTerm()
}

// parseOrTerm parses and_term ("||" and_term)*.
func (p *Parser) parseOrTerm() ast.Expression {
	left := p.parseAndTerm()
	for !p.fatal() && p.currentIs(token.OR_OR) {
		op := p.advance()
		right := p.parseAndTerm()
		if p.fatal() {
			return nil
		}
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseAndTerm parses rel_term ("&&" rel_term)*.
func (p *Parser) parseAndTerm() ast.Expression {
	left := p.parseRelTerm()
	for !p.fatal() && p.currentIs(token.AND_AND) {
		op := p.advance()
		right := p.parseRelTerm()
		if p.fatal() {
			return nil
		}
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
	return left
}

var relOperators = map[token.Type]bool{
	token.LESS:        true,
	token.LESS_EQ:     true,
	token.GREATER:     true,
	token.GREATER_EQ:  true,
	token.EQUAL_EQUAL: true,
	token.BANG_EQUAL:  true,
}

// parseRelTerm parses sum_term (REL_OP sum_term)*.
func (p *Parser) parseRelTerm() ast.Expression {
	left := p.parseSumTerm()
	for !p.fatal() && relOperators[p.current.Type] {
		op := p.advance()
		right := p.parseSumTerm()
		if p.fatal() {
			return nil
		}
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseSumTerm parses mul_term (("+"|"-") mul_term)*.
func (p *Parser) parseSumTerm() ast.Expression {
	left := p.parseMulTerm()
	for !p.fatal() && (p.currentIs(token.PLUS) || p.currentIs(token.MINUS)) {
		op := p.advance()
		right := p.parseMulTerm()
		if p.fatal() {
			return nil
		}
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseMulTerm parses factor (("*"|"/") factor)*.
func (p *Parser) parseMulTerm() ast.Expression {
	left := p.parseFactor()
	for !p.fatal() && (p.currentIs(token.STAR) || p.currentIs(token.SLASH)) {
		op := p.advance()
		right := p.parseFactor()
		if p.fatal() {
			return nil
		}
		left = &ast.BinaryExpression{Operator: op, Left: left, Right: right}
	}
	return left
}

// parseFactor parses ("!"|"-") factor | call.
func (p *Parser) parseFactor() ast.Expression {
	if p.currentIs(token.BANG) || p.currentIs(token.MINUS) {
		op := p.advance()
		operand := p.parseFactor()
		if p.fatal() {
			return nil
		}
		return &ast.UnaryExpression{Operator: op, Operand: operand}
	}
	return p.parseCall()
}

// parseCall parses primary ("(" arg_list? ")")?. Only a bare identifier may
// be called; calling any other primary form is a parse error, since the
// grammar only gives functions a name, never an expression, as callee.
func (p *Parser) parseCall() ast.Expression {
	tok := p.current
	primary := p.parsePrimary()
	if p.fatal() {
		return nil
	}

	if !p.currentIs(token.LPAREN) {
		return primary
	}

	callee, ok := primary.(*ast.Identifier)
	if !ok {
		p.errorf(tok, "only a named function may be called")
		return nil
	}

	p.advance() // consume "("
	call := &ast.CallExpression{Token: tok, Callee: callee}
	for !p.currentIs(token.RPAREN) && !p.fatal() {
		arg := p.parseExpression()
		if p.fatal() {
			return nil
		}
		call.Args = append(call.Args, arg)
		if p.currentIs(token.COMMA) {
			p.advance()
			if p.currentIs(token.RPAREN) {
				break // tolerated trailing comma
			}
			continue
		}
		break
	}
	p.expect(token.RPAREN)
	return call
}

// parsePrimary parses INT | FLOAT | CHAR | BOOL | IDENT | TYPE_NAME | "(" expression ")".
// A bare TYPE_NAME in primary position is only meaningful as the start of
// nothing valid in Wabbit expressions; it is accepted here only as an
// identifier-shaped token so that contextual uses elsewhere in the grammar
// (e.g. a parameter's type) never reach this production directly.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.current
	switch tok.Type {
	case token.INT:
		p.advance()
		return parseIntLiteral(tok)
	case token.FLOAT:
		p.advance()
		return parseFloatLiteral(tok)
	case token.CHAR:
		p.advance()
		return parseCharLiteral(tok)
	case token.TRUE, token.FALSE:
		p.advance()
		return &ast.BoolLiteral{Token: tok, Value: tok.Type == token.TRUE}
	case token.IDENT:
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.INT_TYPE, token.FLOAT_TYPE, token.BOOL_TYPE, token.CHAR_TYPE:
		// A bare type-name keyword in expression position parses as a name
		// reference to that keyword's lexeme; the checker rejects it as an
		// undefined name since Wabbit has no reflective type values.
		p.advance()
		return &ast.Identifier{Token: tok, Value: tok.Literal}
	case token.LPAREN:
		p.advance()
		inner := p.parseExpression()
		if p.fatal() {
			return nil
		}
		p.expect(token.RPAREN)
		return &ast.GroupingExpression{Token: tok, Expression: inner}
	default:
		p.errorf(tok, "unexpected token %s (%q) in expression", tok.Type, tok.Literal)
		return nil
	}
}

// parseIdentifier consumes a bare IDENT, recording a parse error if the
// current token is not one.
func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.current
	if !p.currentIs(token.IDENT) {
		p.errorf(tok, "expected identifier, got %s (%q)", tok.Type, tok.Literal)
		return nil
	}
	p.advance()
	return &ast.Identifier{Token: tok, Value: tok.Literal}
}
