package parser

import (
	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/pkg/token"
)

// parseStatement dispatches on the current token to one of the statement
// productions in §4.2's grammar.
func (p *Parser) parseStatement() ast.Statement {
	switch p.current.Type {
	case token.VAR:
		return p.parseVarDecl()
	case token.CONST:
		return p.parseConstDecl()
	case token.FUNC:
		return p.parseFuncDecl()
	case token.IF:
		return p.parseIfStatement()
	case token.WHILE:
		return p.parseWhileStatement()
	case token.PRINT:
		return p.parsePrintStatement()
	case token.RETURN:
		return p.parseReturnStatement()
	case token.BREAK:
		return p.parseBreakStatement()
	case token.CONTINUE:
		return p.parseContinueStatement()
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprOrAssignment()
	}
}

// parseBlock parses "{" statement* "}". curToken on entry is "{"; on exit
// the closing "}" has been consumed.
func (p *Parser) parseBlock() *ast.BlockStatement {
	block := &ast.BlockStatement{Token: p.current}
	p.expect(token.LBRACE)
	for !p.currentIs(token.RBRACE) && !p.currentIs(token.EOF) && !p.fatal() {
		stmt := p.parseStatement()
		if p.fatal() {
			return block
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.expect(token.RBRACE)
	return block
}

// parseVarDecl parses `var` IDENT TYPE_NAME? ("=" expression)? ";".
// Neither a type annotation nor an initializer is a parse error.
func (p *Parser) parseVarDecl() ast.Statement {
	tok := p.current
	p.advance() // consume "var"

	name := p.parseIdentifier()
	if p.fatal() {
		return nil
	}

	decl := &ast.VarDecl{Token: tok, Name: name}

	if token.IsTypeName(p.current.Type) {
		decl.Type = &ast.TypeAnnotation{Token: p.current, Name: p.current.Literal}
		p.advance()
	}

	if p.currentIs(token.EQUAL) {
		p.advance()
		decl.Value = p.parseExpression()
		if p.fatal() {
			return nil
		}
	}

	if decl.Type == nil && decl.Value == nil {
		p.errorf(tok, "var declaration %q needs a type annotation or an initializer", name.Value)
		return nil
	}

	p.expect(token.SEMICOLON)
	return decl
}

// parseConstDecl parses `const` IDENT TYPE_NAME? "=" expression ";". An
// initializer is always required.
func (p *Parser) parseConstDecl() ast.Statement {
	tok := p.current
	p.advance() // consume "const"

	name := p.parseIdentifier()
	if p.fatal() {
		return nil
	}

	decl := &ast.ConstDecl{Token: tok, Name: name}

	if token.IsTypeName(p.current.Type) {
		decl.Type = &ast.TypeAnnotation{Token: p.current, Name: p.current.Literal}
		p.advance()
	}

	if !p.currentIs(token.EQUAL) {
		p.errorf(p.current, "const declaration %q requires an initializer", name.Value)
		return nil
	}
	p.advance()

	decl.Value = p.parseExpression()
	if p.fatal() {
		return nil
	}
	p.expect(token.SEMICOLON)
	return decl
}

// parseFuncDecl parses `func` IDENT "(" params? ")" TYPE_NAME block.
func (p *Parser) parseFuncDecl() ast.Statement {
	tok := p.current
	p.advance() // consume "func"

	name := p.parseIdentifier()
	if p.fatal() {
		return nil
	}

	decl := &ast.FunctionDecl{Token: tok, Name: name}

	p.expect(token.LPAREN)
	for !p.currentIs(token.RPAREN) && !p.fatal() {
		paramTok := p.current
		paramName := p.parseIdentifier()
		if p.fatal() {
			return nil
		}
		if !token.IsTypeName(p.current.Type) {
			p.errorf(p.current, "expected type name for parameter %q, got %q", paramName.Value, p.current.Literal)
			return nil
		}
		paramType := &ast.TypeAnnotation{Token: p.current, Name: p.current.Literal}
		p.advance()
		decl.Parameters = append(decl.Parameters, &ast.Parameter{Token: paramTok, Name: paramName, Type: paramType})
		if p.currentIs(token.COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RPAREN)

	if !token.IsTypeName(p.current.Type) {
		p.errorf(p.current, "expected return type name, got %q", p.current.Literal)
		return nil
	}
	decl.ReturnType = &ast.TypeAnnotation{Token: p.current, Name: p.current.Literal}
	p.advance()

	decl.Body = p.parseBlock()
	if p.fatal() {
		return nil
	}
	return decl
}

// parseIfStatement parses `if` expression block ("else" statement)?.
// Dangling-else binds to the nearest if, which falls out naturally here
// since the else clause is attached to whichever *IfStatement is currently
// being parsed.
func (p *Parser) parseIfStatement() ast.Statement {
	tok := p.current
	p.advance() // consume "if"

	cond := p.parseExpression()
	if p.fatal() {
		return nil
	}

	stmt := &ast.IfStatement{Token: tok, Condition: cond}
	stmt.Consequence = p.parseBlock()
	if p.fatal() {
		return nil
	}

	if p.currentIs(token.ELSE) {
		p.advance()
		if p.currentIs(token.IF) {
			stmt.Alternative = p.parseIfStatement()
		} else {
			stmt.Alternative = p.parseBlock()
		}
	}
	return stmt
}

// parseWhileStatement parses `while` expression block.
func (p *Parser) parseWhileStatement() ast.Statement {
	tok := p.current
	p.advance() // consume "while"

	cond := p.parseExpression()
	if p.fatal() {
		return nil
	}
	body := p.parseBlock()
	if p.fatal() {
		return nil
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}
}

// parsePrintStatement parses `print` expression ";".
func (p *Parser) parsePrintStatement() ast.Statement {
	tok := p.current
	p.advance() // consume "print"

	value := p.parseExpression()
	if p.fatal() {
		return nil
	}
	p.expect(token.SEMICOLON)
	return &ast.PrintStatement{Token: tok, Value: value}
}

// parseReturnStatement parses `return` expression ";".
func (p *Parser) parseReturnStatement() ast.Statement {
	tok := p.current
	p.advance() // consume "return"

	value := p.parseExpression()
	if p.fatal() {
		return nil
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStatement{Token: tok, Value: value}
}

func (p *Parser) parseBreakStatement() ast.Statement {
	tok := p.current
	p.advance()
	p.expect(token.SEMICOLON)
	return &ast.BreakStatement{Token: tok}
}

func (p *Parser) parseContinueStatement() ast.Statement {
	tok := p.current
	p.advance()
	p.expect(token.SEMICOLON)
	return &ast.ContinueStatement{Token: tok}
}

// parseExprOrAssignment parses either an assignment_statement or an
// expr_stmt. Assignment LHS must be a bare name, so it is recognized by
// the IDENT "=" lookahead; any other expression form on the left of "="
// falls through to parseExpression, and the stray "=" left after it is
// rejected here as a parse error.
func (p *Parser) parseExprOrAssignment() ast.Statement {
	tok := p.current
	if p.currentIs(token.IDENT) && p.peekIs(token.EQUAL) {
		name := p.parseIdentifier()
		p.advance() // consume "="
		value := p.parseExpression()
		if p.fatal() {
			return nil
		}
		p.expect(token.SEMICOLON)
		return &ast.AssignmentStatement{Token: tok, Name: name, Value: value}
	}

	expr := p.parseExpression()
	if p.fatal() {
		return nil
	}
	if p.currentIs(token.EQUAL) {
		p.errorf(p.current, "assignment target must be a name")
		return nil
	}
	p.expect(token.SEMICOLON)
	return &ast.ExpressionStatement{Token: tok, Expr: expr}
}
