// Package ir defines Wabbit's typed intermediate representation: a
// Module of Globals and Functions, each Function a CFG of BasicBlocks
// terminated by a branch or return, suitable for handing to an external
// code generator (see §1/§6 — the object-file writer and linker are out
// of scope for this repository).
package ir

import "github.com/shaurya0/wabbit/internal/types"

// Opcode identifies the operation an Instruction performs.
type Opcode int

const (
	OpAlloca Opcode = iota
	OpLoad
	OpStore
	OpIAdd
	OpISub
	OpIMul
	OpIDiv
	OpFAdd
	OpFSub
	OpFMul
	OpFDiv
	OpINeg
	OpFNeg
	OpNot
	OpICmp
	OpFCmp
	OpCall
	OpJump
	OpCondBranch
	OpReturn
	OpReturnVoid
)

var opcodeNames = map[Opcode]string{
	OpAlloca:     "alloca",
	OpLoad:       "load",
	OpStore:      "store",
	OpIAdd:       "add",
	OpISub:       "sub",
	OpIMul:       "mul",
	OpIDiv:       "sdiv",
	OpFAdd:       "fadd",
	OpFSub:       "fsub",
	OpFMul:       "fmul",
	OpFDiv:       "fdiv",
	OpINeg:       "ineg",
	OpFNeg:       "fneg",
	OpNot:        "not",
	OpICmp:       "icmp",
	OpFCmp:       "fcmp",
	OpCall:       "call",
	OpJump:       "jump",
	OpCondBranch: "br",
	OpReturn:     "ret",
	OpReturnVoid: "ret void",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "unknown"
}

// ValueKind distinguishes the operand forms an Instruction's Args may
// take.
type ValueKind int

const (
	ValueReg ValueKind = iota
	ValueGlobal
	ValueParam
	ValueConstInt
	ValueConstFloat
	ValueConstChar
	ValueConstBool
)

// Value is an IR operand: either a virtual register produced by a prior
// instruction, a global variable handle, an incoming parameter (only
// meaningful as the source operand of the entry-block store that spills it
// to its alloca), or a materialized constant.
type Value struct {
	Kind     ValueKind
	Reg      string
	Global   string
	Param    string
	IntVal   int64
	FloatVal float64
	CharVal  rune
	BoolVal  bool
	Type     types.Type
}

func RegValue(reg string, t types.Type) Value { return Value{Kind: ValueReg, Reg: reg, Type: t} }
func GlobalValue(name string, t types.Type) Value {
	return Value{Kind: ValueGlobal, Global: name, Type: t}
}
func ParamValue(name string, t types.Type) Value {
	return Value{Kind: ValueParam, Param: name, Type: t}
}
func IntConst(v int64) Value     { return Value{Kind: ValueConstInt, IntVal: v, Type: types.INT} }
func FloatConst(v float64) Value { return Value{Kind: ValueConstFloat, FloatVal: v, Type: types.FLOAT} }
func CharConst(v rune) Value     { return Value{Kind: ValueConstChar, CharVal: v, Type: types.CHAR} }
func BoolConst(v bool) Value     { return Value{Kind: ValueConstBool, BoolVal: v, Type: types.BOOL} }

// Instruction is one IR operation. Not every field is meaningful for
// every Opcode; the field comments below name the opcodes that use them.
type Instruction struct {
	Op        Opcode
	Dest      string // SSA result register, e.g. "%3"; empty if the instruction has no result
	Type      types.Type
	Args      []Value
	Predicate string // icmp/fcmp predicate: "eq","ne","lt","le","gt","ge"
	Callee    string // OpCall target function name
	Then      string // OpCondBranch true-target label
	Else      string // OpCondBranch false-target label
	Target    string // OpJump target label
}

// BasicBlock is a straight-line sequence of instructions ending in exactly
// one terminator (OpJump, OpCondBranch, OpReturn, or OpReturnVoid).
type BasicBlock struct {
	Label        string
	Instructions []Instruction
}

// Param is one function parameter's name and type.
type Param struct {
	Name string
	Type types.Type
}

// Function is a single Wabbit function lowered to a basic-block CFG.
// Functions are never nested (per §1's non-goals), so there is no notion
// of an enclosing function environment here.
type Function struct {
	Name       string
	Params     []Param
	ReturnType types.Type
	Blocks     []*BasicBlock
}

// Global is a module-level variable. Its initializer must be a constant
// (§4.4: "any non-constant global initializer is a lowering error").
type Global struct {
	Name string
	Type types.Type
	Init Value
}

// External declares a function implemented outside this module — in
// Wabbit's core, this is always the single `print_char(i8)` runtime
// dependency described in §6.
type External struct {
	Name   string
	Params []types.Type
}

// Module is the root IR artifact handed to an external code generator.
type Module struct {
	Name      string
	Externals []External
	Globals   []*Global
	Functions []*Function
}
