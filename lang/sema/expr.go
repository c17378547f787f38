package sema

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/scope"
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

// checkExpression is check_expression from spec §4.9.2: it resolves
// expr's semantic type, annotates expr in place, and folds constants
// where possible. expected may be nil when there is no hint.
func (c *Context) checkExpression(expr ast.Expr, sc *scope.Scope, expected *types.SemanticType) *types.SemanticType {
	if expr == nil {
		return nil
	}

	var t *types.SemanticType
	switch e := expr.(type) {
	case *ast.Literal:
		t = c.checkLiteral(e, expected)
	case *ast.Identifier:
		t = c.checkIdentifier(e, sc)
	case *ast.Call:
		t = c.checkCall(e, sc)
	case *ast.Subscript:
		t = c.checkSubscript(e, sc)
	case *ast.Unary:
		t = c.checkUnary(e, sc)
	case *ast.Postfix:
		t = c.checkPostfix(e, sc)
	case *ast.Binary:
		t = c.checkBinary(e, sc, expected)
	case *ast.Assignment:
		t = c.checkAssignment(e, sc)
	case *ast.InitializerList:
		t = c.checkInitializerList(e, sc, expected)
	case *ast.Cast:
		// synthesized by insertCast with its type already set; re-checking
		// here only needs to propagate it, not recompute it.
		t = e.Type()
		_ = c.checkExpression(e.Inner, sc, nil)
	}

	expr.SetType(t)
	return t
}

func (c *Context) checkLiteral(lit *ast.Literal, expected *types.SemanticType) *types.SemanticType {
	lit.SetConstExpr(true)
	cv := lit.ConstValue()

	switch lit.Kind {
	case token.INT:
		if expected != nil && expected.IsInteger() {
			lit.SetConstValue(cv)
			return expected
		}
		if expected != nil && expected.IsFloat() {
			cv = ast.ConstValue{Kind: ast.ConstFloat, Float: float64(cv.Int)}
			lit.SetConstValue(cv)
			return expected
		}
		return c.store.I64
	case token.FLOAT:
		if expected != nil && expected.IsFloat() {
			return expected
		}
		return c.store.F64
	case token.TRUE, token.FALSE:
		return c.store.Bool
	case token.CHARLIT:
		return c.store.Char
	case token.STRING:
		return c.store.Str
	default:
		return nil
	}
}

func (c *Context) checkIdentifier(id *ast.Identifier, sc *scope.Scope) *types.SemanticType {
	sym, ok := sc.Lookup(id.NameRef)
	if !ok {
		c.report(&TypeError{Kind: Undeclared, Sp: id.Span(), File: c.filename, Name: id.Name})
		return nil
	}
	sym.SetFlag(scope.Used)
	if sym.HasFlag(scope.Const) || sym.HasFlag(scope.ComputedValue) {
		id.SetConstExpr(true)
		id.SetConstValue(symbolConstValue(sym))
	}
	return sym.Type
}

func symbolConstValue(sym *scope.Symbol) ast.ConstValue {
	return ast.ConstValue{
		Kind:  ast.ConstKind(sym.Const.Kind),
		Int:   sym.Const.Int,
		Float: sym.Const.Float,
		Bool:  sym.Const.Bool,
		Str:   sym.Const.Str,
		Char:  sym.Const.Char,
	}
}

func (c *Context) checkCall(call *ast.Call, sc *scope.Scope) *types.SemanticType {
	calleeType := c.checkExpression(call.Callee, sc, nil)
	if calleeType == nil {
		return nil
	}
	if calleeType.Kind != types.Function {
		c.report(&TypeError{Kind: NotCallable, Sp: call.Callee.Span(), File: c.filename, Actual: calleeType})
		return nil
	}

	if len(call.Args) != len(calleeType.Params) {
		c.report(&TypeError{
			Kind: ArgCountMismatch, Sp: call.Span(), File: c.filename,
			ExpectedCount: len(calleeType.Params), ActualCount: len(call.Args),
		})
		// still check each argument against no particular hint, to populate
		// types without cascading further diagnostics.
		for _, a := range call.Args {
			c.checkExpression(a, sc, nil)
		}
		return calleeType.Return
	}

	for i, a := range call.Args {
		paramType := calleeType.Params[i]
		argType := c.checkExpression(a, sc, paramType)
		if argType == nil {
			continue
		}
		if argType != paramType {
			if c.canImplicitCast(paramType, argType) {
				call.Args[i] = c.insertCast(a, paramType)
			} else {
				c.report(&TypeError{Kind: TypeMismatch, Sp: a.Span(), File: c.filename, Expected: paramType, Actual: argType})
			}
		}
	}
	return calleeType.Return
}

func (c *Context) checkSubscript(sub *ast.Subscript, sc *scope.Scope) *types.SemanticType {
	arrType := c.checkExpression(sub.Array, sc, nil)
	c.checkExpression(sub.Index, sc, c.store.I64)

	if arrType == nil {
		return nil
	}
	if arrType.Kind != types.Array && arrType.Kind != types.Pointer {
		c.report(&TypeError{Kind: NotIndexable, Sp: sub.Array.Span(), File: c.filename, Actual: arrType})
		return nil
	}
	return arrType.Base
}

func (c *Context) checkUnary(u *ast.Unary, sc *scope.Scope) *types.SemanticType {
	operandType := c.checkExpression(u.Operand, sc, nil)
	if operandType == nil {
		return nil
	}

	switch u.Op {
	case token.BANG:
		if !operandType.IsBool() {
			c.report(&TypeError{Kind: UnOpMismatch, Sp: u.Span(), File: c.filename, Op: u.Op, Actual: operandType})
			return nil
		}
		if u.Operand.IsConstExpr() {
			u.SetConstExpr(true)
			u.SetConstValue(ast.ConstValue{Kind: ast.ConstBool, Bool: !u.Operand.ConstValue().Bool})
		}
		return c.store.Bool
	case token.PLUS, token.MINUS:
		if !operandType.IsNumeric() {
			c.report(&TypeError{Kind: UnOpMismatch, Sp: u.Span(), File: c.filename, Op: u.Op, Actual: operandType})
			return nil
		}
		if u.Op == token.MINUS && u.Operand.IsConstExpr() {
			cv := u.Operand.ConstValue()
			if operandType.IsInteger() {
				cv.Int = -cv.Int
			} else {
				cv.Float = -cv.Float
			}
			u.SetConstExpr(true)
			u.SetConstValue(cv)
		}
		return operandType
	case token.AMP:
		if !ast.IsLvalue(u.Operand) {
			c.report(&TypeError{Kind: NotLValue, Sp: u.Operand.Span(), File: c.filename})
			return nil
		}
		return c.store.PointerOf(operandType)
	case token.STAR:
		if operandType.Kind != types.Pointer {
			c.report(&TypeError{Kind: UnOpMismatch, Sp: u.Span(), File: c.filename, Op: u.Op, Actual: operandType})
			return nil
		}
		return operandType.Base
	default:
		return nil
	}
}

func (c *Context) checkPostfix(p *ast.Postfix, sc *scope.Scope) *types.SemanticType {
	t := c.checkExpression(p.Operand, sc, nil)
	if t != nil && !t.IsNumeric() {
		c.report(&TypeError{Kind: UnOpMismatch, Sp: p.Span(), File: c.filename, Op: p.Op, Actual: t})
		return nil
	}
	return t
}
