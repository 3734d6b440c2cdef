// Package parser implements the Wabbit parser: recursive descent with
// explicit precedence climbing over the token stream produced by
// internal/lexer.
package parser

import (
	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/diag"
	"github.com/shaurya0/wabbit/pkg/token"
)

// Parser builds an *ast.Program from a buffered token stream. It keeps a
// two-token lookahead window (current/peek) over the stream, matching the
// cursor style used throughout the rest of the pipeline.
type Parser struct {
	tokens []token.Token
	pos    int

	current token.Token
	peek    token.Token

	errors diag.List
	source string
}

// New creates a Parser over an already-scanned token stream. The caller is
// responsible for running the lexer first (see lexer.ScanAll).
func New(tokens []token.Token) *Parser {
	p := &Parser{tokens: tokens}
	// Prime current/peek with the first two tokens.
	p.advance()
	p.advance()
	return p
}

// WithSource attaches the original source text so diagnostics can render a
// caret-annotated source line.
func (p *Parser) WithSource(source string) *Parser {
	p.source = source
	return p
}

// Parse parses the full token stream into a Program. It returns an
// aggregated error (a diag.List) on the first parse failure per §4.2's
// "no error recovery" policy: parsing stops at the first malformed
// construct, though the returned error collects everything seen up to
// that point for consistency with the rest of the pipeline's diagnostics.
func (p *Parser) Parse() (*ast.Program, error) {
	program := &ast.Program{}
	for !p.currentIs(token.EOF) {
		stmt := p.parseStatement()
		if !p.errors.Empty() {
			return nil, &p.errors
		}
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program, nil
}

func (p *Parser) advance() token.Token {
	prev := p.current
	p.current = p.peek
	if p.pos < len(p.tokens) {
		p.peek = p.tokens[p.pos]
		p.pos++
	} else {
		p.peek = token.Token{Type: token.EOF, Literal: ""}
	}
	return prev
}

func (p *Parser) currentIs(t token.Type) bool { return p.current.Type == t }
func (p *Parser) peekIs(t token.Type) bool    { return p.peek.Type == t }

// expect consumes the current token if it matches t, otherwise records a
// parse error and returns the zero Token.
func (p *Parser) expect(t token.Type) token.Token {
	if p.currentIs(t) {
		return p.advance()
	}
	p.errorf(p.current, "expected %s, got %s (%q)", t, p.current.Type, p.current.Literal)
	return token.Token{}
}

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	err := diag.Newf(diag.Parse, tok.Pos, format, args...)
	if p.source != "" {
		err = err.WithSource(p.source, "")
	}
	p.errors.Add(err)
}

func (p *Parser) fatal() bool { return !p.errors.Empty() }
