package interp

import (
	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/types"
	"github.com/shaurya0/wabbit/pkg/token"
)

func (it *Interpreter) eval(expr ast.Expression) (Value, error) {
	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		return IntValue(e.Value), nil
	case *ast.FloatLiteral:
		return FloatValue(e.Value), nil
	case *ast.CharLiteral:
		return CharValue(e.Value), nil
	case *ast.BoolLiteral:
		return BoolValue(e.Value), nil
	case *ast.Identifier:
		return it.evalIdentifier(e)
	case *ast.GroupingExpression:
		return it.eval(e.Expression)
	case *ast.UnaryExpression:
		return it.evalUnary(e)
	case *ast.BinaryExpression:
		return it.evalBinary(e)
	case *ast.CallExpression:
		return it.evalCall(e)
	default:
		return Value{}, runtimeErrorf(expr.Pos(), "unhandled expression type %T", expr)
	}
}

func (it *Interpreter) evalIdentifier(id *ast.Identifier) (Value, error) {
	v, ok := it.env.Get(id.Value)
	if !ok {
		return Value{}, runtimeErrorf(id.Pos(), "undefined name: %s", id.Value)
	}
	return v, nil
}

func (it *Interpreter) evalUnary(u *ast.UnaryExpression) (Value, error) {
	v, err := it.eval(u.Operand)
	if err != nil {
		return Value{}, err
	}
	switch u.Operator.Type {
	case token.MINUS:
		if v.Type.Equals(types.FLOAT) {
			return FloatValue(-v.Float), nil
		}
		return IntValue(-v.Int), nil
	case token.BANG:
		return BoolValue(!v.Bool), nil
	default:
		return Value{}, runtimeErrorf(u.Pos(), "unsupported unary operator %s", u.Operator.Literal)
	}
}

func (it *Interpreter) evalBinary(b *ast.BinaryExpression) (Value, error) {
	left, err := it.eval(b.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := it.eval(b.Right)
	if err != nil {
		return Value{}, err
	}

	isFloat := left.Type.Equals(types.FLOAT)

	switch b.Operator.Type {
	case token.PLUS:
		if isFloat {
			return FloatValue(left.Float + right.Float), nil
		}
		return IntValue(left.Int + right.Int), nil
	case token.MINUS:
		if isFloat {
			return FloatValue(left.Float - right.Float), nil
		}
		return IntValue(left.Int - right.Int), nil
	case token.STAR:
		if isFloat {
			return FloatValue(left.Float * right.Float), nil
		}
		return IntValue(left.Int * right.Int), nil
	case token.SLASH:
		if isFloat {
			return FloatValue(left.Float / right.Float), nil
		}
		if right.Int == 0 {
			return Value{}, runtimeErrorf(b.Pos(), "integer division by zero")
		}
		return IntValue(left.Int / right.Int), nil
	case token.LESS, token.LESS_EQ, token.GREATER, token.GREATER_EQ,
		token.EQUAL_EQUAL, token.BANG_EQUAL:
		return it.evalComparison(b.Operator.Type, left, right), nil
	default:
		return Value{}, runtimeErrorf(b.Pos(), "unsupported binary operator %s", b.Operator.Literal)
	}
}

// evalComparison dispatches on the operand type (checked already, so left
// and right always agree) rather than converting both sides to one
// numeric host type first.
func (it *Interpreter) evalComparison(op token.Type, left, right Value) Value {
	switch {
	case left.Type.Equals(types.FLOAT):
		return BoolValue(compareOrdered(op, left.Float, right.Float))
	case left.Type.Equals(types.CHAR):
		return BoolValue(compareOrdered(op, left.Char, right.Char))
	case left.Type.Equals(types.BOOL):
		switch op {
		case token.EQUAL_EQUAL:
			return BoolValue(left.Bool == right.Bool)
		case token.BANG_EQUAL:
			return BoolValue(left.Bool != right.Bool)
		default:
			return BoolValue(false)
		}
	default:
		return BoolValue(compareOrdered(op, left.Int, right.Int))
	}
}

type ordered interface {
	~int64 | ~float64 | ~int32
}

func compareOrdered[T ordered](op token.Type, l, r T) bool {
	switch op {
	case token.LESS:
		return l < r
	case token.LESS_EQ:
		return l <= r
	case token.GREATER:
		return l > r
	case token.GREATER_EQ:
		return l >= r
	case token.EQUAL_EQUAL:
		return l == r
	case token.BANG_EQUAL:
		return l != r
	default:
		return false
	}
}

func (it *Interpreter) evalCall(c *ast.CallExpression) (Value, error) {
	fn, ok := it.functions[c.Callee.Value]
	if !ok {
		return Value{}, runtimeErrorf(c.Pos(), "undefined function: %s", c.Callee.Value)
	}

	args := make([]Value, len(c.Args))
	for i, a := range c.Args {
		v, err := it.eval(a)
		if err != nil {
			return Value{}, err
		}
		args[i] = v
	}

	return it.callUserFunction(fn, args)
}

// callUserFunction pushes a fresh Environment parented at the *global*
// environment (functions are never nested, so they never close over a
// caller's locals), binds parameters, runs the body, and collects the
// propagated return signal — the small interpreter-side completion of the
// Open Question resolved in DESIGN.md.
func (it *Interpreter) callUserFunction(fn *ast.FunctionDecl, args []Value) (Value, error) {
	callEnv := NewEnclosedEnvironment(it.global)
	for i, param := range fn.Parameters {
		callEnv.Define(param.Name.Value, args[i])
	}

	saved := it.env
	it.env = callEnv
	defer func() { it.env = saved }()

	for _, stmt := range fn.Body.Statements {
		sig, err := it.execStatement(stmt)
		if err != nil {
			return Value{}, err
		}
		if sig.kind == signalReturn {
			return sig.value, nil
		}
		if sig.kind == signalBreak || sig.kind == signalContinue {
			return Value{}, runtimeErrorf(fn.Pos(), "break/continue outside of a loop")
		}
	}
	retType, _ := types.FromName(fn.ReturnType.Name)
	return zeroValue(retType), nil
}
