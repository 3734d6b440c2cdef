package ir

import (
	"fmt"
	"strings"
)

// String renders a readable textual dump of the module: one external
// declaration and global per line, then one function per block group.
// Blocks are labeled by construct (`while_entry_1:`, `if_then_2:`, …)
// rather than by position. Used by the `compile --dump-ir` flag and by
// snapshot tests, mirroring the teacher's bytecode disassembler.
func (m *Module) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "module %s\n", m.Name)

	for _, ext := range m.Externals {
		params := make([]string, len(ext.Params))
		for i, p := range ext.Params {
			params[i] = p.String()
		}
		fmt.Fprintf(&sb, "declare external %s(%s)\n", ext.Name, strings.Join(params, ", "))
	}

	for _, g := range m.Globals {
		fmt.Fprintf(&sb, "global %s %s = %s\n", g.Name, g.Type, g.Init.String())
	}

	for _, fn := range m.Functions {
		sb.WriteString("\n")
		sb.WriteString(fn.String())
	}

	return sb.String()
}

func (fn *Function) String() string {
	var sb strings.Builder

	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = p.Name + " " + p.Type.String()
	}
	ret := "void"
	if fn.ReturnType != nil {
		ret = fn.ReturnType.String()
	}
	fmt.Fprintf(&sb, "func %s(%s) %s {\n", fn.Name, strings.Join(params, ", "), ret)
	for _, bb := range fn.Blocks {
		sb.WriteString(bb.String())
	}
	sb.WriteString("}\n")
	return sb.String()
}

func (bb *BasicBlock) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", bb.Label)
	for _, instr := range bb.Instructions {
		sb.WriteString("  ")
		sb.WriteString(instr.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func (instr Instruction) String() string {
	args := make([]string, len(instr.Args))
	for i, a := range instr.Args {
		args[i] = a.String()
	}
	joined := strings.Join(args, ", ")

	switch instr.Op {
	case OpAlloca:
		return fmt.Sprintf("%s = alloca %s", instr.Dest, instr.Type)
	case OpLoad:
		return fmt.Sprintf("%s = load %s, %s", instr.Dest, instr.Type, joined)
	case OpStore:
		return fmt.Sprintf("store %s", joined)
	case OpICmp, OpFCmp:
		return fmt.Sprintf("%s = %s %s %s", instr.Dest, instr.Op, instr.Predicate, joined)
	case OpCall:
		if instr.Dest != "" {
			return fmt.Sprintf("%s = call %s(%s)", instr.Dest, instr.Callee, joined)
		}
		return fmt.Sprintf("call %s(%s)", instr.Callee, joined)
	case OpJump:
		return fmt.Sprintf("jump %s", instr.Target)
	case OpCondBranch:
		return fmt.Sprintf("br %s, %s, %s", joined, instr.Then, instr.Else)
	case OpReturn:
		return fmt.Sprintf("ret %s", joined)
	case OpReturnVoid:
		return "ret void"
	default:
		if instr.Dest != "" {
			return fmt.Sprintf("%s = %s %s", instr.Dest, instr.Op, joined)
		}
		return fmt.Sprintf("%s %s", instr.Op, joined)
	}
}

func (v Value) String() string {
	switch v.Kind {
	case ValueReg:
		return v.Reg
	case ValueGlobal:
		return "@" + v.Global
	case ValueParam:
		return "%arg." + v.Param
	case ValueConstInt:
		return fmt.Sprintf("%d", v.IntVal)
	case ValueConstFloat:
		return fmt.Sprintf("%g", v.FloatVal)
	case ValueConstChar:
		return fmt.Sprintf("%q", v.CharVal)
	case ValueConstBool:
		return fmt.Sprintf("%t", v.BoolVal)
	default:
		return "<?>"
	}
}
