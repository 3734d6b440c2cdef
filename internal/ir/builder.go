package ir

import (
	"fmt"

	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/diag"
	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

// symbolKind distinguishes how a lowered name is stored, per §4.4's model:
// globals are handles, locals/params are alloca'd pointers, local consts
// bind directly to their evaluated value.
type symbolKind int

const (
	symAlloca symbolKind = iota
	symConst
	symGlobal
)

type symbol struct {
	kind  symbolKind
	reg   string // alloca pointer register, when kind == symAlloca
	name  string // global name, when kind == symGlobal
	value Value  // bound constant, when kind == symConst
	typ   types.Type
}

// scope is one level of the builder's lexical environment, mirroring the
// semantic checker's SymbolTable chain so that a name shadowed in a nested
// block resolves to the right binding during lowering.
type scope struct {
	vars  map[string]symbol
	outer *scope
}

func newScope(outer *scope) *scope {
	return &scope{vars: make(map[string]symbol), outer: outer}
}

func (s *scope) define(name string, sym symbol) {
	s.vars[name] = sym
}

func (s *scope) resolve(name string) (symbol, bool) {
	for cur := s; cur != nil; cur = cur.outer {
		if sym, ok := cur.vars[name]; ok {
			return sym, true
		}
	}
	return symbol{}, false
}

// loopLabels is the entry/end block pair break/continue jump to.
type loopLabels struct {
	entry string
	end   string
}

// Builder lowers a type-checked *ast.Program into a *Module. It is
// single-use: construct via Lower, do not reuse across programs.
type Builder struct {
	module *Module

	global *scope // top-level declarations; never popped
	scope  *scope // current lexical scope

	fn    *Function
	block *BasicBlock

	loops []loopLabels

	regNum   int
	labelNum int

	err error
}

// Lower translates a type-checked program into an IR module. Top-level
// statements outside any func declaration are gathered into an implicit
// main function (see SPEC_FULL.md §4.4's "Top-level statements" note);
// top-level var/const declarations additionally become module Globals,
// exactly as a func body's would at global scope.
func Lower(program *ast.Program) (*Module, error) {
	b := &Builder{module: &Module{Name: "main"}}
	b.global = newScope(nil)
	b.scope = b.global

	b.module.Externals = append(b.module.Externals, External{
		Name:   "print_char",
		Params: []types.Type{types.CHAR},
	})

	main := &Function{Name: "main"}
	b.fn = main
	b.block = b.appendBlock(main, "entry")

	for _, stmt := range program.Statements {
		if b.err != nil {
			return nil, b.err
		}
		if fd, ok := stmt.(*ast.FunctionDecl); ok {
			b.lowerFunctionDecl(fd)
			continue
		}
		b.lowerStatement(stmt)
	}
	if b.err != nil {
		return nil, b.err
	}

	if !blockTerminated(b.block) {
		b.emit(Instruction{Op: OpReturnVoid})
	}

	b.module.Functions = append(b.module.Functions, main)
	return b.module, nil
}

func (b *Builder) fail(pos token.Position, format string, args ...any) {
	if b.err == nil {
		b.err = diag.Newf(diag.Lowering, pos, format, args...)
	}
}

func (b *Builder) freshReg() string {
	b.regNum++
	return fmt.Sprintf("%%%d", b.regNum)
}

// freshLabels returns one label per prefix, all carrying the same fresh
// numeric suffix, so the blocks of one if/while construct share an N.
func (b *Builder) freshLabels(prefixes ...string) []string {
	b.labelNum++
	labels := make([]string, len(prefixes))
	for i, prefix := range prefixes {
		labels[i] = fmt.Sprintf("%s_%d", prefix, b.labelNum)
	}
	return labels
}

func (b *Builder) appendBlock(fn *Function, label string) *BasicBlock {
	bb := &BasicBlock{Label: label}
	fn.Blocks = append(fn.Blocks, bb)
	return bb
}

func (b *Builder) emit(instr Instruction) {
	b.block.Instructions = append(b.block.Instructions, instr)
}

func blockTerminated(bb *BasicBlock) bool {
	if len(bb.Instructions) == 0 {
		return false
	}
	switch bb.Instructions[len(bb.Instructions)-1].Op {
	case OpJump, OpCondBranch, OpReturn, OpReturnVoid:
		return true
	default:
		return false
	}
}

func (b *Builder) pushScope() {
	b.scope = newScope(b.scope)
}

func (b *Builder) popScope() {
	b.scope = b.scope.outer
}

// lowerFunctionDecl lowers a user-declared function into its own
// Function/basic-block CFG and appends it to the module. Per §4.4's
// model, entering a function snapshots the current scope and parameter
// slots are alloca'd and spilled from their incoming values; nested
// functions never occur (§1 non-goal), so the function's outer
// environment is always the module's global scope, not whatever scope
// happened to be active in source order.
func (b *Builder) lowerFunctionDecl(decl *ast.FunctionDecl) {
	ft, ok := decl.Name.GetType().(*types.FunctionType)
	if !ok {
		b.fail(decl.Pos(), "internal error: function %q has no checked signature", decl.Name.Value)
		return
	}

	fn := &Function{Name: decl.Name.Value, ReturnType: ft.ReturnType}
	for i, param := range decl.Parameters {
		fn.Params = append(fn.Params, Param{Name: param.Name.Value, Type: ft.Params[i]})
	}

	savedFn, savedBlock, savedScope := b.fn, b.block, b.scope
	b.fn = fn
	b.scope = newScope(b.global)
	b.block = b.appendBlock(fn, "entry")

	for i, param := range decl.Parameters {
		pt := ft.Params[i]
		ptr := b.freshReg()
		b.emit(Instruction{Op: OpAlloca, Dest: ptr, Type: pt})
		b.emit(Instruction{Op: OpStore, Type: pt, Args: []Value{RegValue(ptr, pt), ParamValue(param.Name.Value, pt)}})
		b.scope.define(param.Name.Value, symbol{kind: symAlloca, reg: ptr, typ: pt})
	}

	for _, stmt := range decl.Body.Statements {
		if b.err != nil {
			break
		}
		b.lowerStatement(stmt)
	}
	if b.err == nil && !blockTerminated(b.block) {
		// The checker verifies the type of each return but not that every
		// path through the body reaches one, so a body whose final block
		// has no terminator is reported here as a lowering error.
		b.fail(decl.Pos(), "internal error: function %q falls off the end without a return", decl.Name.Value)
	}

	b.module.Functions = append(b.module.Functions, fn)

	b.fn, b.block, b.scope = savedFn, savedBlock, savedScope
}

func (b *Builder) lowerStatement(stmt ast.Statement) {
	if b.err != nil {
		return
	}
	switch s := stmt.(type) {
	case *ast.VarDecl:
		b.lowerVarDecl(s)
	case *ast.ConstDecl:
		b.lowerConstDecl(s)
	case *ast.AssignmentStatement:
		b.lowerAssignment(s)
	case *ast.PrintStatement:
		b.lowerPrint(s)
	case *ast.IfStatement:
		b.lowerIf(s)
	case *ast.WhileStatement:
		b.lowerWhile(s)
	case *ast.BreakStatement:
		b.lowerBreak(s)
	case *ast.ContinueStatement:
		b.lowerContinue(s)
	case *ast.ReturnStatement:
		b.lowerReturn(s)
	case *ast.BlockStatement:
		b.pushScope()
		for _, inner := range s.Statements {
			if b.err != nil {
				break
			}
			b.lowerStatement(inner)
		}
		b.popScope()
	case *ast.ExpressionStatement:
		b.lowerExpr(s.Expr)
	default:
		b.fail(stmt.Pos(), "internal error: unsupported statement node %T", stmt)
	}
}

// atGlobalScope reports whether a declaration being lowered right now
// belongs at module scope: the current scope is the shared global scope
// (true for every top-level var/const, whether reached from main's entry
// block or, transitively, from a top-level if/while that never pushed a
// scope of its own — but blocks always push, so in practice this is true
// exactly for declarations textually at the top level, matching
// original_source/Compiler.py's `scope_depth == 0` check).
func (b *Builder) atGlobalScope() bool {
	return b.scope == b.global
}

func (b *Builder) lowerVarDecl(decl *ast.VarDecl) {
	typ := decl.Name.GetType()
	if b.atGlobalScope() {
		var init Value
		if decl.Value != nil {
			v, ok := b.constValue(decl.Value)
			if !ok {
				b.fail(decl.Pos(), "global %q initializer is not a constant expression", decl.Name.Value)
				return
			}
			init = v
		} else {
			init = zeroValue(typ)
		}
		b.module.Globals = append(b.module.Globals, &Global{Name: decl.Name.Value, Type: typ, Init: init})
		b.scope.define(decl.Name.Value, symbol{kind: symGlobal, name: decl.Name.Value, typ: typ})
		return
	}

	ptr := b.freshReg()
	b.emit(Instruction{Op: OpAlloca, Dest: ptr, Type: typ})
	b.scope.define(decl.Name.Value, symbol{kind: symAlloca, reg: ptr, typ: typ})
	if decl.Value != nil {
		v := b.lowerExpr(decl.Value)
		if b.err != nil {
			return
		}
		b.emit(Instruction{Op: OpStore, Type: typ, Args: []Value{RegValue(ptr, typ), v}})
	}
}

func (b *Builder) lowerConstDecl(decl *ast.ConstDecl) {
	typ := decl.Name.GetType()
	if b.atGlobalScope() {
		v, ok := b.constValue(decl.Value)
		if !ok {
			b.fail(decl.Pos(), "global constant %q initializer is not a constant expression", decl.Name.Value)
			return
		}
		b.module.Globals = append(b.module.Globals, &Global{Name: decl.Name.Value, Type: typ, Init: v})
		b.scope.define(decl.Name.Value, symbol{kind: symGlobal, name: decl.Name.Value, typ: typ})
		return
	}

	v := b.lowerExpr(decl.Value)
	if b.err != nil {
		return
	}
	b.scope.define(decl.Name.Value, symbol{kind: symConst, value: v, typ: typ})
}

func (b *Builder) lowerAssignment(stmt *ast.AssignmentStatement) {
	sym, ok := b.scope.resolve(stmt.Name.Value)
	if !ok {
		b.fail(stmt.Pos(), "internal error: assignment to unbound name %q", stmt.Name.Value)
		return
	}
	v := b.lowerExpr(stmt.Value)
	if b.err != nil {
		return
	}
	switch sym.kind {
	case symAlloca:
		b.emit(Instruction{Op: OpStore, Type: sym.typ, Args: []Value{RegValue(sym.reg, sym.typ), v}})
	case symGlobal:
		b.emit(Instruction{Op: OpStore, Type: sym.typ, Args: []Value{GlobalValue(sym.name, sym.typ), v}})
	default:
		b.fail(stmt.Pos(), "internal error: assignment to constant %q reached the lowerer", stmt.Name.Value)
	}
}

func (b *Builder) lowerPrint(stmt *ast.PrintStatement) {
	v := b.lowerExpr(stmt.Value)
	if b.err != nil {
		return
	}
	if !types.CHAR.Equals(v.Type) {
		// print_char(i8) is the only runtime routine this module links
		// against (§6); printing a non-char value has no IR backend and is
		// only available through the interpreter.
		b.fail(stmt.Pos(), "print of a %s value has no compiled backend; only char is printable outside the interpreter", v.Type)
		return
	}
	b.emit(Instruction{Op: OpCall, Callee: "print_char", Args: []Value{v}})
}

func (b *Builder) lowerReturn(stmt *ast.ReturnStatement) {
	v := b.lowerExpr(stmt.Value)
	if b.err != nil {
		return
	}
	b.emit(Instruction{Op: OpReturn, Type: v.Type, Args: []Value{v}})
}

func (b *Builder) lowerBreak(stmt *ast.BreakStatement) {
	if len(b.loops) == 0 {
		b.fail(stmt.Pos(), "internal error: break reached the lowerer outside a loop")
		return
	}
	target := b.loops[len(b.loops)-1].end
	b.emit(Instruction{Op: OpJump, Target: target})
}

func (b *Builder) lowerContinue(stmt *ast.ContinueStatement) {
	if len(b.loops) == 0 {
		b.fail(stmt.Pos(), "internal error: continue reached the lowerer outside a loop")
		return
	}
	target := b.loops[len(b.loops)-1].entry
	b.emit(Instruction{Op: OpJump, Target: target})
}

// lowerIf emits a conditional branch to a then-block (and else-block, if
// present) and joins both arms at a fresh end block, leaving the builder
// positioned there for subsequent code.
func (b *Builder) lowerIf(stmt *ast.IfStatement) {
	cond := b.lowerExpr(stmt.Condition)
	if b.err != nil {
		return
	}

	labels := b.freshLabels("if_then", "if_end", "if_else")
	thenLabel, endLabel := labels[0], labels[1]
	elseLabel := endLabel
	hasElse := stmt.Alternative != nil
	if hasElse {
		elseLabel = labels[2]
	}

	b.emit(Instruction{Op: OpCondBranch, Args: []Value{cond}, Then: thenLabel, Else: elseLabel})

	thenBlock := b.appendBlock(b.fn, thenLabel)
	b.block = thenBlock
	b.lowerStatement(stmt.Consequence)
	if b.err != nil {
		return
	}
	if !blockTerminated(b.block) {
		b.emit(Instruction{Op: OpJump, Target: endLabel})
	}

	if hasElse {
		elseBlock := b.appendBlock(b.fn, elseLabel)
		b.block = elseBlock
		b.lowerStatement(stmt.Alternative)
		if b.err != nil {
			return
		}
		if !blockTerminated(b.block) {
			b.emit(Instruction{Op: OpJump, Target: endLabel})
		}
	}

	endBlock := b.appendBlock(b.fn, endLabel)
	b.block = endBlock
}

// lowerWhile implements the §9-prescribed conventional two-block form: a
// fresh entry block re-evaluates the condition on every iteration and
// branches to a body block or the end block; the body unconditionally
// jumps back to entry. This replaces the source's degenerate
// re-evaluate-and-self-branch shape (see DESIGN.md).
func (b *Builder) lowerWhile(stmt *ast.WhileStatement) {
	labels := b.freshLabels("while_entry", "while_body", "while_end")
	entryLabel, bodyLabel, endLabel := labels[0], labels[1], labels[2]

	if !blockTerminated(b.block) {
		b.emit(Instruction{Op: OpJump, Target: entryLabel})
	}

	entryBlock := b.appendBlock(b.fn, entryLabel)
	b.block = entryBlock
	cond := b.lowerExpr(stmt.Condition)
	if b.err != nil {
		return
	}
	b.emit(Instruction{Op: OpCondBranch, Args: []Value{cond}, Then: bodyLabel, Else: endLabel})

	b.loops = append(b.loops, loopLabels{entry: entryLabel, end: endLabel})
	bodyBlock := b.appendBlock(b.fn, bodyLabel)
	b.block = bodyBlock
	b.lowerStatement(stmt.Body)
	b.loops = b.loops[:len(b.loops)-1]
	if b.err != nil {
		return
	}
	if !blockTerminated(b.block) {
		b.emit(Instruction{Op: OpJump, Target: entryLabel})
	}

	endBlock := b.appendBlock(b.fn, endLabel)
	b.block = endBlock
}

// lowerExpr lowers expr to the Value produced by evaluating it, emitting
// whatever instructions are needed into the current block.
func (b *Builder) lowerExpr(expr ast.Expression) Value {
	if b.err != nil {
		return Value{}
	}
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return IntConst(e.Value)
	case *ast.FloatLiteral:
		return FloatConst(e.Value)
	case *ast.CharLiteral:
		return CharConst(e.Value)
	case *ast.BoolLiteral:
		return BoolConst(e.Value)
	case *ast.Identifier:
		return b.lowerIdentifier(e)
	case *ast.GroupingExpression:
		return b.lowerExpr(e.Expression)
	case *ast.UnaryExpression:
		return b.lowerUnary(e)
	case *ast.BinaryExpression:
		return b.lowerBinary(e)
	case *ast.CallExpression:
		return b.lowerCall(e)
	default:
		b.fail(expr.Pos(), "internal error: unsupported expression node %T", expr)
		return Value{}
	}
}

func (b *Builder) lowerIdentifier(id *ast.Identifier) Value {
	sym, ok := b.scope.resolve(id.Value)
	if !ok {
		b.fail(id.Pos(), "internal error: read of unbound name %q", id.Value)
		return Value{}
	}
	switch sym.kind {
	case symConst:
		return sym.value
	case symGlobal:
		reg := b.freshReg()
		b.emit(Instruction{Op: OpLoad, Dest: reg, Type: sym.typ, Args: []Value{GlobalValue(sym.name, sym.typ)}})
		return RegValue(reg, sym.typ)
	case symAlloca:
		reg := b.freshReg()
		b.emit(Instruction{Op: OpLoad, Dest: reg, Type: sym.typ, Args: []Value{RegValue(sym.reg, sym.typ)}})
		return RegValue(reg, sym.typ)
	default:
		b.fail(id.Pos(), "internal error: name %q has no lowered binding", id.Value)
		return Value{}
	}
}

// lowerUnary generalizes the table's "literal operands only" restriction
// on unary minus to any operand (constant-folding when possible, emitting
// ineg/fneg on a register otherwise) — the restriction traces to the
// source backend's own narrowness (see DESIGN.md), not to a property of
// the language the type checker enforces.
func (b *Builder) lowerUnary(u *ast.UnaryExpression) Value {
	v := b.lowerExpr(u.Operand)
	if b.err != nil {
		return Value{}
	}
	switch u.Operator.Type {
	case token.MINUS:
		switch v.Kind {
		case ValueConstInt:
			return IntConst(-v.IntVal)
		case ValueConstFloat:
			return FloatConst(-v.FloatVal)
		}
		reg := b.freshReg()
		op := OpINeg
		if v.Type.Equals(types.FLOAT) {
			op = OpFNeg
		}
		b.emit(Instruction{Op: op, Dest: reg, Type: v.Type, Args: []Value{v}})
		return RegValue(reg, v.Type)
	case token.BANG:
		if v.Kind == ValueConstBool {
			return BoolConst(!v.BoolVal)
		}
		reg := b.freshReg()
		b.emit(Instruction{Op: OpNot, Dest: reg, Type: types.BOOL, Args: []Value{v}})
		return RegValue(reg, types.BOOL)
	default:
		b.fail(u.Pos(), "internal error: unsupported unary operator %q", u.Operator.Literal)
		return Value{}
	}
}

var icmpPredicates = map[token.Type]string{
	token.LESS:        "lt",
	token.LESS_EQ:     "le",
	token.GREATER:     "gt",
	token.GREATER_EQ:  "ge",
	token.EQUAL_EQUAL: "eq",
	token.BANG_EQUAL:  "ne",
}

func (b *Builder) lowerBinary(bin *ast.BinaryExpression) Value {
	left := b.lowerExpr(bin.Left)
	if b.err != nil {
		return Value{}
	}
	right := b.lowerExpr(bin.Right)
	if b.err != nil {
		return Value{}
	}

	isFloat := left.Type.Equals(types.FLOAT)

	if pred, ok := icmpPredicates[bin.Operator.Type]; ok {
		reg := b.freshReg()
		op := OpICmp
		if isFloat {
			op = OpFCmp
		}
		b.emit(Instruction{Op: op, Dest: reg, Type: types.BOOL, Predicate: pred, Args: []Value{left, right}})
		return RegValue(reg, types.BOOL)
	}

	var op Opcode
	switch bin.Operator.Type {
	case token.PLUS:
		op = OpIAdd
		if isFloat {
			op = OpFAdd
		}
	case token.MINUS:
		op = OpISub
		if isFloat {
			op = OpFSub
		}
	case token.STAR:
		op = OpIMul
		if isFloat {
			op = OpFMul
		}
	case token.SLASH:
		op = OpIDiv
		if isFloat {
			op = OpFDiv
		}
	default:
		b.fail(bin.Pos(), "internal error: unsupported binary operator %q reached the lowerer", bin.Operator.Literal)
		return Value{}
	}

	reg := b.freshReg()
	b.emit(Instruction{Op: op, Dest: reg, Type: left.Type, Args: []Value{left, right}})
	return RegValue(reg, left.Type)
}

func (b *Builder) lowerCall(call *ast.CallExpression) Value {
	ft, ok := call.Callee.GetType().(*types.FunctionType)
	if !ok {
		b.fail(call.Pos(), "internal error: call to %q has no checked signature", call.Callee.Value)
		return Value{}
	}

	args := make([]Value, len(call.Args))
	for i, a := range call.Args {
		args[i] = b.lowerExpr(a)
		if b.err != nil {
			return Value{}
		}
	}

	reg := b.freshReg()
	b.emit(Instruction{Op: OpCall, Dest: reg, Type: ft.ReturnType, Callee: call.Callee.Value, Args: args})
	return RegValue(reg, ft.ReturnType)
}

// constValue reduces expr to a constant Value, as required for a global
// initializer (§4.4: "Global initializers must lower to constants; any
// non-constant global initializer is a lowering error"). Only literals and
// unary minus/not on a constant qualify; anything else (a name read, a
// call, a non-constant binary expression) is not a constant expression.
func (b *Builder) constValue(expr ast.Expression) (Value, bool) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return IntConst(e.Value), true
	case *ast.FloatLiteral:
		return FloatConst(e.Value), true
	case *ast.CharLiteral:
		return CharConst(e.Value), true
	case *ast.BoolLiteral:
		return BoolConst(e.Value), true
	case *ast.GroupingExpression:
		return b.constValue(e.Expression)
	case *ast.UnaryExpression:
		inner, ok := b.constValue(e.Operand)
		if !ok {
			return Value{}, false
		}
		switch e.Operator.Type {
		case token.MINUS:
			if inner.Kind == ValueConstInt {
				return IntConst(-inner.IntVal), true
			}
			if inner.Kind == ValueConstFloat {
				return FloatConst(-inner.FloatVal), true
			}
		case token.BANG:
			if inner.Kind == ValueConstBool {
				return BoolConst(!inner.BoolVal), true
			}
		}
		return Value{}, false
	default:
		return Value{}, false
	}
}

func zeroValue(t types.Type) Value {
	switch {
	case t.Equals(types.INT):
		return IntConst(0)
	case t.Equals(types.FLOAT):
		return FloatConst(0)
	case t.Equals(types.CHAR):
		return CharConst(0)
	case t.Equals(types.BOOL):
		return BoolConst(false)
	default:
		return Value{}
	}
}
