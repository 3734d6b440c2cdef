// Package wabbit is the embeddable public API over the lex/parse/check/
// lower/interpret pipeline: construct an Engine, Compile source once, Run
// it any number of times, or Eval source in one call.
package wabbit

import (
	"bytes"
	"io"

	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/interp"
	"github.com/shaurya0/wabbit/internal/ir"
	"github.com/shaurya0/wabbit/internal/lexer"
	"github.com/shaurya0/wabbit/internal/parser"
	"github.com/shaurya0/wabbit/internal/semantic"
	"github.com/shaurya0/wabbit/pkg/token"
)

// Backend selects what Compile produces beyond the checked AST.
type Backend int

const (
	// BackendInterpreter does no further lowering; Run walks the AST
	// directly. This is the default.
	BackendInterpreter Backend = iota
	// BackendIR additionally lowers the checked AST to an *ir.Module,
	// available from Program.IR(). Run still executes via the
	// interpreter — the IR module is the artifact a separate code
	// generator would consume (see §6), not something this package
	// executes itself.
	BackendIR
)

// Engine holds configuration shared across Compile/Run/Eval calls.
type Engine struct {
	output  io.Writer
	backend Backend
}

// Option configures an Engine constructed by New.
type Option func(*Engine)

// WithOutput additionally tees `print` output to w, live, as the program
// runs. Result.Output always carries the full captured text regardless of
// whether this option is set.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.output = w }
}

// WithBackend selects whether Compile also lowers to IR.
func WithBackend(b Backend) Option {
	return func(e *Engine) { e.backend = b }
}

// New constructs an Engine. It never fails today, but returns an error to
// keep the signature stable if a future option needs to validate.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{backend: BackendInterpreter}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Program is a lexed, parsed, and type-checked source unit, optionally
// also lowered to IR, ready to Run any number of times.
type Program struct {
	source string
	tokens []token.Token
	tree   *ast.Program
	module *ir.Module
}

// AST returns the parsed, type-annotated syntax tree.
func (p *Program) AST() *ast.Program { return p.tree }

// Tokens returns the full token stream produced by the lexer.
func (p *Program) Tokens() []token.Token { return p.tokens }

// IR returns the lowered module, or nil if the Engine was not constructed
// with WithBackend(BackendIR).
func (p *Program) IR() *ir.Module { return p.module }

// Result is the outcome of running a Program.
type Result struct {
	Output  string
	Success bool
}

// Compile lexes, parses, and type-checks source, returning a reusable
// Program. With BackendIR it additionally lowers to an IR module.
func (e *Engine) Compile(source string) (*Program, error) {
	toks, err := lexer.ScanAll(source)
	if err != nil {
		return nil, err
	}
	tree, err := parser.New(toks).Parse()
	if err != nil {
		return nil, err
	}
	if err := semantic.New().WithSource(source).Check(tree); err != nil {
		return nil, err
	}

	program := &Program{source: source, tokens: toks, tree: tree}

	if e.backend == BackendIR {
		module, err := ir.Lower(tree)
		if err != nil {
			return nil, err
		}
		program.module = module
	}

	return program, nil
}

// Check lexes, parses, and type-checks source without producing a Program,
// for callers that only want a pass/fail diagnostic.
func (e *Engine) Check(source string) error {
	_, err := e.Compile(source)
	return err
}

// Run executes a compiled Program via the tree-walking interpreter,
// capturing its `print` output.
func (e *Engine) Run(program *Program) (*Result, error) {
	var buf bytes.Buffer
	w := io.Writer(&buf)
	if e.output != nil {
		w = io.MultiWriter(&buf, e.output)
	}

	if err := interp.New(w).Run(program.tree); err != nil {
		return &Result{Output: buf.String(), Success: false}, err
	}
	return &Result{Output: buf.String(), Success: true}, nil
}

// Eval is Compile followed by Run in one call.
func (e *Engine) Eval(source string) (*Result, error) {
	program, err := e.Compile(source)
	if err != nil {
		return nil, err
	}
	return e.Run(program)
}
