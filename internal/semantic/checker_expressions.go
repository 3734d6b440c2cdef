package semantic

import (
	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

// checkExpression assigns a Type to expr (mutating it in place via
// SetType) and returns that type. On the first error it records a
// diagnostic and returns nil; callers must check c.fatal() before using
// the result.
func (c *Checker) checkExpression(expr ast.Expression) types.Type {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		e.SetType(types.INT)
		return types.INT
	case *ast.FloatLiteral:
		e.SetType(types.FLOAT)
		return types.FLOAT
	case *ast.CharLiteral:
		e.SetType(types.CHAR)
		return types.CHAR
	case *ast.BoolLiteral:
		e.SetType(types.BOOL)
		return types.BOOL
	case *ast.Identifier:
		return c.checkIdentifier(e)
	case *ast.GroupingExpression:
		t := c.checkExpression(e.Expression)
		if c.fatal() {
			return nil
		}
		e.SetType(t)
		return t
	case *ast.UnaryExpression:
		return c.checkUnary(e)
	case *ast.BinaryExpression:
		return c.checkBinary(e)
	case *ast.CallExpression:
		return c.checkCall(e)
	default:
		c.errorf(expr.Pos(), "unsupported expression node %T", expr)
		return nil
	}
}

func (c *Checker) checkIdentifier(id *ast.Identifier) types.Type {
	sym, ok := c.scope.Resolve(id.Value)
	if !ok {
		c.errorf(id.Pos(), "undefined name %q", id.Value)
		return nil
	}
	if !sym.Defined {
		c.errorf(id.Pos(), "variable %q read before it is assigned a value", id.Value)
		return nil
	}
	id.SetType(sym.Type)
	return sym.Type
}

func (c *Checker) checkUnary(u *ast.UnaryExpression) types.Type {
	operand := c.checkExpression(u.Operand)
	if c.fatal() {
		return nil
	}
	switch u.Operator.Type {
	case token.MINUS:
		if !types.IsNumeric(operand) {
			c.errorf(u.Pos(), "unary - requires a numeric operand, got %s", operand)
			return nil
		}
		u.SetType(operand)
		return operand
	case token.BANG:
		if !operand.Equals(types.BOOL) {
			c.errorf(u.Pos(), "unary ! requires a bool operand, got %s", operand)
			return nil
		}
		u.SetType(types.BOOL)
		return types.BOOL
	default:
		c.errorf(u.Pos(), "unsupported unary operator %q", u.Operator.Literal)
		return nil
	}
}

var relationalOperators = map[token.Type]bool{
	token.LESS:        true,
	token.LESS_EQ:     true,
	token.GREATER:     true,
	token.GREATER_EQ:  true,
	token.EQUAL_EQUAL: true,
	token.BANG_EQUAL:  true,
}

var equalityOperators = map[token.Type]bool{
	token.EQUAL_EQUAL: true,
	token.BANG_EQUAL:  true,
}

func (c *Checker) checkBinary(b *ast.BinaryExpression) types.Type {
	if b.Operator.Type == token.AND_AND || b.Operator.Type == token.OR_OR {
		// §9 Open Question: && and || are lexed and parsed but the core
		// specified here does not evaluate them (no short-circuit logical
		// connectives); reject here rather than silently miscompiling.
		c.errorf(b.Pos(), "logical operator %q is not supported", b.Operator.Literal)
		return nil
	}

	left := c.checkExpression(b.Left)
	if c.fatal() {
		return nil
	}
	right := c.checkExpression(b.Right)
	if c.fatal() {
		return nil
	}

	if !left.Equals(right) {
		c.errorf(b.Pos(), "type mismatch: %s %s %s", left, b.Operator.Literal, right)
		return nil
	}

	if relationalOperators[b.Operator.Type] {
		allowed := types.IsOrdered(left)
		if equalityOperators[b.Operator.Type] {
			allowed = allowed || left.Equals(types.BOOL)
		}
		if !allowed {
			c.errorf(b.Pos(), "operator %q is not defined for type %s", b.Operator.Literal, left)
			return nil
		}
		b.SetType(types.BOOL)
		return types.BOOL
	}

	if !types.IsNumeric(left) {
		c.errorf(b.Pos(), "operator %q is not defined for type %s", b.Operator.Literal, left)
		return nil
	}
	b.SetType(left)
	return left
}

func (c *Checker) checkCall(call *ast.CallExpression) types.Type {
	name := call.Callee.Value
	fn, ok := c.functions[name]
	if !ok {
		if _, isVar := c.scope.Resolve(name); isVar {
			c.errorf(call.Pos(), "%q is a variable, not a function", name)
			return nil
		}
		c.errorf(call.Pos(), "call to undefined function %q", name)
		return nil
	}

	if len(call.Args) != len(fn.Params) {
		c.errorf(call.Pos(), "function %q expects %d argument(s), got %d", name, len(fn.Params), len(call.Args))
		return nil
	}

	for i, arg := range call.Args {
		argType := c.checkExpression(arg)
		if c.fatal() {
			return nil
		}
		if !argType.Equals(fn.Params[i]) {
			c.errorf(arg.Pos(), "argument %d to %q has type %s, want %s", i+1, name, argType, fn.Params[i])
			return nil
		}
	}

	call.Callee.SetType(fn)
	call.SetType(fn.ReturnType)
	return fn.ReturnType
}
