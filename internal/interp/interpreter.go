package interp

import (
	"fmt"
	"io"

	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

// RuntimeError is raised for failures the type checker cannot rule out
// statically — currently only integer division by zero.
type RuntimeError struct {
	Pos     token.Position
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("RuntimeError at %d:%d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

func runtimeErrorf(pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// signalKind tags how a statement's execution wants to unwind the current
// block: falling through normally, or propagating break/continue/return up
// to the nearest loop or function call, matching the teacher's after-every-
// statement signal check in evalBlockStatement (scaled down to three flags
// folded into one kind rather than three independently-cleared booleans).
type signalKind int

const (
	signalNone signalKind = iota
	signalBreak
	signalContinue
	signalReturn
)

type signal struct {
	kind  signalKind
	value Value
}

var noSignal = signal{kind: signalNone}

// Interpreter walks an annotated AST directly, evaluating each node against
// a runtime Environment rather than lowering to IR first.
type Interpreter struct {
	output    io.Writer
	global    *Environment
	env       *Environment
	functions map[string]*ast.FunctionDecl
}

// New creates an Interpreter that writes `print` output to w.
func New(output io.Writer) *Interpreter {
	global := NewEnvironment()
	return &Interpreter{
		output:    output,
		global:    global,
		env:       global,
		functions: make(map[string]*ast.FunctionDecl),
	}
}

// Run executes every top-level statement in program in order. Function
// declarations are registered before any other statement runs, so a
// function may be called before its textual declaration. The type checker
// does not grant this: Check rejects a call that textually precedes the
// callee's declaration.
func (it *Interpreter) Run(program *ast.Program) error {
	for _, stmt := range program.Statements {
		if fd, ok := stmt.(*ast.FunctionDecl); ok {
			it.functions[fd.Name.Value] = fd
		}
	}
	for _, stmt := range program.Statements {
		if _, ok := stmt.(*ast.FunctionDecl); ok {
			continue
		}
		sig, err := it.execStatement(stmt)
		if err != nil {
			return err
		}
		if sig.kind == signalReturn {
			return runtimeErrorf(stmt.Pos(), "return statement outside of a function")
		}
		if sig.kind == signalBreak || sig.kind == signalContinue {
			return runtimeErrorf(stmt.Pos(), "break/continue outside of a loop")
		}
	}
	return nil
}

func (it *Interpreter) execStatement(stmt ast.Statement) (signal, error) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return noSignal, it.execVarDecl(s)
	case *ast.ConstDecl:
		return noSignal, it.execConstDecl(s)
	case *ast.AssignmentStatement:
		return noSignal, it.execAssignment(s)
	case *ast.PrintStatement:
		return noSignal, it.execPrint(s)
	case *ast.ReturnStatement:
		return it.execReturn(s)
	case *ast.BreakStatement:
		return signal{kind: signalBreak}, nil
	case *ast.ContinueStatement:
		return signal{kind: signalContinue}, nil
	case *ast.IfStatement:
		return it.execIf(s)
	case *ast.WhileStatement:
		return it.execWhile(s)
	case *ast.BlockStatement:
		return it.execBlock(s)
	case *ast.ExpressionStatement:
		_, err := it.eval(s.Expr)
		return noSignal, err
	case *ast.FunctionDecl:
		it.functions[s.Name.Value] = s
		return noSignal, nil
	default:
		return noSignal, runtimeErrorf(stmt.Pos(), "unhandled statement type %T", stmt)
	}
}

// execBlock runs each statement in its own lexical scope, stopping at the
// first non-none signal and propagating it to the caller — the teacher's
// "check the signal flags after every statement" pattern, here expressed as
// an early return instead of repeated boolean checks.
func (it *Interpreter) execBlock(block *ast.BlockStatement) (signal, error) {
	saved := it.env
	it.env = NewEnclosedEnvironment(saved)
	defer func() { it.env = saved }()

	for _, stmt := range block.Statements {
		sig, err := it.execStatement(stmt)
		if err != nil {
			return noSignal, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return noSignal, nil
}

func (it *Interpreter) execVarDecl(vd *ast.VarDecl) error {
	if vd.Value == nil {
		it.env.Define(vd.Name.Value, zeroValue(vd.Name.GetType()))
		return nil
	}
	v, err := it.eval(vd.Value)
	if err != nil {
		return err
	}
	it.env.Define(vd.Name.Value, v)
	return nil
}

func (it *Interpreter) execConstDecl(cd *ast.ConstDecl) error {
	v, err := it.eval(cd.Value)
	if err != nil {
		return err
	}
	it.env.Define(cd.Name.Value, v)
	return nil
}

func (it *Interpreter) execAssignment(as *ast.AssignmentStatement) error {
	v, err := it.eval(as.Value)
	if err != nil {
		return err
	}
	if !it.env.Set(as.Name.Value, v) {
		return runtimeErrorf(as.Pos(), "undefined variable: %s", as.Name.Value)
	}
	return nil
}

func (it *Interpreter) execPrint(ps *ast.PrintStatement) error {
	v, err := it.eval(ps.Value)
	if err != nil {
		return err
	}
	fmt.Fprintln(it.output, v.String())
	return nil
}

func (it *Interpreter) execReturn(rs *ast.ReturnStatement) (signal, error) {
	v, err := it.eval(rs.Value)
	if err != nil {
		return noSignal, err
	}
	return signal{kind: signalReturn, value: v}, nil
}

func (it *Interpreter) execIf(is *ast.IfStatement) (signal, error) {
	cond, err := it.eval(is.Condition)
	if err != nil {
		return noSignal, err
	}
	if cond.Bool {
		return it.execBlock(is.Consequence)
	}
	switch alt := is.Alternative.(type) {
	case nil:
		return noSignal, nil
	case *ast.BlockStatement:
		return it.execBlock(alt)
	default:
		return it.execStatement(alt)
	}
}

func (it *Interpreter) execWhile(ws *ast.WhileStatement) (signal, error) {
	for {
		cond, err := it.eval(ws.Condition)
		if err != nil {
			return noSignal, err
		}
		if !cond.Bool {
			return noSignal, nil
		}
		sig, err := it.execBlock(ws.Body)
		if err != nil {
			return noSignal, err
		}
		switch sig.kind {
		case signalBreak:
			return noSignal, nil
		case signalReturn:
			return sig, nil
		case signalContinue, signalNone:
			// fall through to re-test the condition
		}
	}
}

func zeroValue(t types.Type) Value {
	switch {
	case t == nil:
		return Value{}
	case t.Equals(types.INT):
		return IntValue(0)
	case t.Equals(types.FLOAT):
		return FloatValue(0)
	case t.Equals(types.CHAR):
		return CharValue(0)
	case t.Equals(types.BOOL):
		return BoolValue(false)
	default:
		return Value{}
	}
}
