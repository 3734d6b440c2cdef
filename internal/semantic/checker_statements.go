package semantic

import (
	"github.com/shaurya0/wabbit/internal/ast"
	"github.com/shaurya0/wabbit/internal/types"
)

// checkStatement dispatches to the per-statement-kind check. Statements
// never carry a type; they may still record diagnostics.
func (c *Checker) checkStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.checkVarDecl(s)
	case *ast.ConstDecl:
		c.checkConstDecl(s)
	case *ast.AssignmentStatement:
		c.checkAssignment(s)
	case *ast.PrintStatement:
		c.checkExpression(s.Value)
	case *ast.IfStatement:
		c.checkIf(s)
	case *ast.WhileStatement:
		c.checkWhile(s)
	case *ast.BreakStatement:
		if c.loopDepth == 0 {
			c.errorf(s.Pos(), "break statement not allowed outside a while loop")
		}
	case *ast.ContinueStatement:
		if c.loopDepth == 0 {
			c.errorf(s.Pos(), "continue statement not allowed outside a while loop")
		}
	case *ast.FunctionDecl:
		c.checkFunctionDecl(s)
	case *ast.ReturnStatement:
		c.checkReturn(s)
	case *ast.BlockStatement:
		c.pushScope()
		for _, inner := range s.Statements {
			c.checkStatement(inner)
			if c.fatal() {
				break
			}
		}
		c.popScope()
	case *ast.ExpressionStatement:
		c.checkExpression(s.Expr)
	default:
		c.errorf(stmt.Pos(), "unsupported statement node %T", stmt)
	}
}

func (c *Checker) checkVarDecl(decl *ast.VarDecl) {
	if c.scope.IsDeclaredInCurrentScope(decl.Name.Value) {
		c.errorf(decl.Pos(), "%q is already declared in this scope", decl.Name.Value)
		return
	}

	var declared types.Type
	if decl.Type != nil {
		t, ok := types.FromName(decl.Type.Name)
		if !ok {
			c.errorf(decl.Type.Token.Pos, "unknown type %q", decl.Type.Name)
			return
		}
		declared = t
	}

	if decl.Value == nil {
		// Only a type annotation: legal, left uninitialized (§9).
		decl.Name.SetType(declared)
		c.scope.Define(decl.Name.Value, declared, false)
		return
	}

	valueType := c.checkExpression(decl.Value)
	if c.fatal() {
		return
	}

	if declared != nil && !declared.Equals(valueType) {
		c.errorf(decl.Pos(), "cannot initialize %q of type %s with value of type %s", decl.Name.Value, declared, valueType)
		return
	}
	if declared == nil {
		declared = valueType
	}

	decl.Name.SetType(declared)
	c.scope.Define(decl.Name.Value, declared, true)
}

func (c *Checker) checkConstDecl(decl *ast.ConstDecl) {
	if c.scope.IsDeclaredInCurrentScope(decl.Name.Value) {
		c.errorf(decl.Pos(), "%q is already declared in this scope", decl.Name.Value)
		return
	}

	valueType := c.checkExpression(decl.Value)
	if c.fatal() {
		return
	}

	if decl.Type != nil {
		t, ok := types.FromName(decl.Type.Name)
		if !ok {
			c.errorf(decl.Type.Token.Pos, "unknown type %q", decl.Type.Name)
			return
		}
		if !t.Equals(valueType) {
			c.errorf(decl.Pos(), "cannot initialize %q of type %s with value of type %s", decl.Name.Value, t, valueType)
			return
		}
		valueType = t
	}

	decl.Name.SetType(valueType)
	c.scope.DefineConst(decl.Name.Value, valueType)
}

func (c *Checker) checkAssignment(stmt *ast.AssignmentStatement) {
	sym, ok := c.scope.Resolve(stmt.Name.Value)
	if !ok {
		c.errorf(stmt.Pos(), "undefined name %q", stmt.Name.Value)
		return
	}
	if sym.IsConst {
		c.errorf(stmt.Pos(), "cannot assign to constant %q", stmt.Name.Value)
		return
	}

	valueType := c.checkExpression(stmt.Value)
	if c.fatal() {
		return
	}
	if !sym.Type.Equals(valueType) {
		c.errorf(stmt.Pos(), "cannot assign value of type %s to %q of type %s", valueType, stmt.Name.Value, sym.Type)
		return
	}

	sym.Defined = true
	stmt.Name.SetType(sym.Type)
}

func (c *Checker) checkIf(stmt *ast.IfStatement) {
	condType := c.checkExpression(stmt.Condition)
	if c.fatal() {
		return
	}
	if !condType.Equals(types.BOOL) {
		c.errorf(stmt.Condition.Pos(), "if condition must be bool, got %s", condType)
		return
	}
	c.checkStatement(stmt.Consequence)
	if c.fatal() {
		return
	}
	if stmt.Alternative != nil {
		c.checkStatement(stmt.Alternative)
	}
}

func (c *Checker) checkWhile(stmt *ast.WhileStatement) {
	condType := c.checkExpression(stmt.Condition)
	if c.fatal() {
		return
	}
	if !condType.Equals(types.BOOL) {
		c.errorf(stmt.Condition.Pos(), "while condition must be bool, got %s", condType)
		return
	}
	c.loopDepth++
	c.checkStatement(stmt.Body)
	c.loopDepth--
}

func (c *Checker) checkFunctionDecl(decl *ast.FunctionDecl) {
	if c.expectedReturn != nil {
		c.errorf(decl.Pos(), "function %q may not be nested inside another function", decl.Name.Value)
		return
	}
	if _, exists := c.functions[decl.Name.Value]; exists {
		c.errorf(decl.Pos(), "function %q is already declared", decl.Name.Value)
		return
	}

	returnType, ok := types.FromName(decl.ReturnType.Name)
	if !ok {
		c.errorf(decl.ReturnType.Token.Pos, "unknown return type %q", decl.ReturnType.Name)
		return
	}

	paramTypes := make([]types.Type, len(decl.Parameters))
	for i, param := range decl.Parameters {
		pt, ok := types.FromName(param.Type.Name)
		if !ok {
			c.errorf(param.Type.Token.Pos, "unknown parameter type %q", param.Type.Name)
			return
		}
		paramTypes[i] = pt
	}

	fnType := &types.FunctionType{ReturnType: returnType, Params: paramTypes}
	// Inserted before the body is checked, so the function may call itself.
	c.functions[decl.Name.Value] = fnType
	decl.Name.SetType(fnType)

	c.pushScope()
	for i, param := range decl.Parameters {
		param.Name.SetType(paramTypes[i])
		c.scope.Define(param.Name.Value, paramTypes[i], true)
	}

	prevReturn := c.expectedReturn
	c.expectedReturn = returnType
	for _, inner := range decl.Body.Statements {
		c.checkStatement(inner)
		if c.fatal() {
			break
		}
	}
	c.expectedReturn = prevReturn
	c.popScope()
}

func (c *Checker) checkReturn(stmt *ast.ReturnStatement) {
	if c.expectedReturn == nil {
		c.errorf(stmt.Pos(), "return statement outside of a function body")
		return
	}
	valueType := c.checkExpression(stmt.Value)
	if c.fatal() {
		return
	}
	if !valueType.Equals(c.expectedReturn) {
		c.errorf(stmt.Pos(), "return value has type %s, function returns %s", valueType, c.expectedReturn)
	}
}
