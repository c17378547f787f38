package sema

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/scope"
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

func isArithmetic(op token.Kind) bool {
	switch op {
	case token.PLUS, token.MINUS, token.STAR, token.SLASH, token.PERCENT:
		return true
	}
	return false
}

func isRelational(op token.Kind) bool {
	switch op {
	case token.LT, token.GT, token.LE, token.GE, token.EQ, token.NEQ:
		return true
	}
	return false
}

func isLogical(op token.Kind) bool { return op == token.ANDAND || op == token.OROR }

func (c *Context) checkBinary(b *ast.Binary, sc *scope.Scope, expected *types.SemanticType) *types.SemanticType {
	switch {
	case isArithmetic(b.Op):
		return c.checkArithmetic(b, sc, expected)
	case isRelational(b.Op):
		return c.checkRelational(b, sc)
	case isLogical(b.Op):
		return c.checkLogical(b, sc)
	default:
		return nil
	}
}

// commonNumericType picks the wider of two numeric types by the rule
// "f64 > f32 > i64 > i32" (spec §4.9.2).
func commonNumericType(store *types.Store, l, r *types.SemanticType) *types.SemanticType {
	if types.NumericRank(l) >= types.NumericRank(r) {
		return l
	}
	return r
}

func (c *Context) checkArithmetic(b *ast.Binary, sc *scope.Scope, expected *types.SemanticType) *types.SemanticType {
	hint := expected
	if hint != nil && !hint.IsNumeric() {
		hint = nil
	}
	leftType := c.checkExpression(b.Left, sc, hint)
	rightType := c.checkExpression(b.Right, sc, hint)

	if leftType == nil || rightType == nil {
		return nil
	}
	if !leftType.IsNumeric() || !rightType.IsNumeric() {
		c.report(&TypeError{Kind: BinOpMismatch, Sp: b.Span(), File: c.filename, Op: b.Op, Left: leftType, Right: rightType})
		return nil
	}

	common := commonNumericType(c.store, leftType, rightType)
	if leftType != common {
		b.Left = c.insertCast(b.Left, common)
	}
	if rightType != common {
		b.Right = c.insertCast(b.Right, common)
	}

	c.foldArithmetic(b, common)
	return common
}

func (c *Context) foldArithmetic(b *ast.Binary, common *types.SemanticType) {
	if !b.Left.IsConstExpr() || !b.Right.IsConstExpr() {
		return
	}
	lv, rv := b.Left.ConstValue(), b.Right.ConstValue()

	if common.IsInteger() {
		if (b.Op == token.SLASH || b.Op == token.PERCENT) && rv.Int == 0 {
			return // division/modulo by zero is not folded (spec §4.9.2)
		}
		var res int64
		switch b.Op {
		case token.PLUS:
			res = lv.Int + rv.Int
		case token.MINUS:
			res = lv.Int - rv.Int
		case token.STAR:
			res = lv.Int * rv.Int
		case token.SLASH:
			res = lv.Int / rv.Int
		case token.PERCENT:
			res = lv.Int % rv.Int
		}
		b.SetConstExpr(true)
		b.SetConstValue(ast.ConstValue{Kind: ast.ConstInt, Int: res})
		return
	}

	if (b.Op == token.SLASH) && rv.Float == 0 {
		return
	}
	var res float64
	switch b.Op {
	case token.PLUS:
		res = lv.Float + rv.Float
	case token.MINUS:
		res = lv.Float - rv.Float
	case token.STAR:
		res = lv.Float * rv.Float
	case token.SLASH:
		res = lv.Float / rv.Float
	case token.PERCENT:
		return // modulo is not defined on floats in this grammar
	}
	b.SetConstExpr(true)
	b.SetConstValue(ast.ConstValue{Kind: ast.ConstFloat, Float: res})
}

func (c *Context) checkRelational(b *ast.Binary, sc *scope.Scope) *types.SemanticType {
	leftType := c.checkExpression(b.Left, sc, nil)
	rightType := c.checkExpression(b.Right, sc, nil)
	if leftType == nil || rightType == nil {
		return nil
	}

	isEq := b.Op == token.EQ || b.Op == token.NEQ
	if isEq && leftType.Kind == types.Pointer && rightType.Kind == types.Pointer {
		if leftType == rightType {
			c.foldRelationalConst(b, leftType, rightType)
			return c.store.Bool
		}
		c.report(&TypeError{Kind: BinOpMismatch, Sp: b.Span(), File: c.filename, Op: b.Op, Left: leftType, Right: rightType})
		return nil
	}

	if !leftType.IsNumeric() || !rightType.IsNumeric() {
		c.report(&TypeError{Kind: BinOpMismatch, Sp: b.Span(), File: c.filename, Op: b.Op, Left: leftType, Right: rightType})
		return nil
	}

	common := commonNumericType(c.store, leftType, rightType)
	if leftType != common {
		b.Left = c.insertCast(b.Left, common)
	}
	if rightType != common {
		b.Right = c.insertCast(b.Right, common)
	}
	c.foldRelationalConst(b, common, common)
	return c.store.Bool
}

func (c *Context) foldRelationalConst(b *ast.Binary, leftT, rightT *types.SemanticType) {
	if !b.Left.IsConstExpr() || !b.Right.IsConstExpr() {
		return
	}
	lv, rv := b.Left.ConstValue(), b.Right.ConstValue()
	var res bool
	if leftT.IsInteger() {
		switch b.Op {
		case token.LT:
			res = lv.Int < rv.Int
		case token.GT:
			res = lv.Int > rv.Int
		case token.LE:
			res = lv.Int <= rv.Int
		case token.GE:
			res = lv.Int >= rv.Int
		case token.EQ:
			res = lv.Int == rv.Int
		case token.NEQ:
			res = lv.Int != rv.Int
		}
	} else if leftT.IsFloat() {
		switch b.Op {
		case token.LT:
			res = lv.Float < rv.Float
		case token.GT:
			res = lv.Float > rv.Float
		case token.LE:
			res = lv.Float <= rv.Float
		case token.GE:
			res = lv.Float >= rv.Float
		case token.EQ:
			res = lv.Float == rv.Float
		case token.NEQ:
			res = lv.Float != rv.Float
		}
	} else {
		return // pointer equality is not constant-folded
	}
	b.SetConstExpr(true)
	b.SetConstValue(ast.ConstValue{Kind: ast.ConstBool, Bool: res})
}

func (c *Context) checkLogical(b *ast.Binary, sc *scope.Scope) *types.SemanticType {
	leftType := c.checkExpression(b.Left, sc, c.store.Bool)
	rightType := c.checkExpression(b.Right, sc, c.store.Bool)
	if leftType == nil || rightType == nil {
		return nil
	}
	if !leftType.IsBool() || !rightType.IsBool() {
		c.report(&TypeError{Kind: BinOpMismatch, Sp: b.Span(), File: c.filename, Op: b.Op, Left: leftType, Right: rightType})
		return nil
	}
	if b.Left.IsConstExpr() && b.Right.IsConstExpr() {
		lv, rv := b.Left.ConstValue().Bool, b.Right.ConstValue().Bool
		var res bool
		if b.Op == token.ANDAND {
			res = lv && rv
		} else {
			res = lv || rv
		}
		b.SetConstExpr(true)
		b.SetConstValue(ast.ConstValue{Kind: ast.ConstBool, Bool: res})
	}
	return c.store.Bool
}

func (c *Context) checkAssignment(a *ast.Assignment, sc *scope.Scope) *types.SemanticType {
	targetType := c.checkExpression(a.Target, sc, nil)
	if id, ok := a.Target.(*ast.Identifier); ok {
		if sym, found := sc.Lookup(id.NameRef); found && sym.HasFlag(scope.Const) {
			c.report(&TypeError{Kind: ConstAssign, Sp: a.Span(), File: c.filename})
		}
	}

	valueType := c.checkExpression(a.Value, sc, targetType)
	if targetType == nil || valueType == nil {
		return targetType
	}

	if a.Op != token.ASSIGN {
		// compound assignment (+= -= *= /= %=) requires both sides numeric,
		// per the desugaring to `target = target OP value`.
		if !targetType.IsNumeric() || !valueType.IsNumeric() {
			c.report(&TypeError{Kind: BinOpMismatch, Sp: a.Span(), File: c.filename, Op: a.Op, Left: targetType, Right: valueType})
			return targetType
		}
		if valueType != targetType {
			if c.canImplicitCast(targetType, valueType) {
				a.Value = c.insertCast(a.Value, targetType)
			} else {
				c.report(&TypeError{Kind: TypeMismatch, Sp: a.Value.Span(), File: c.filename, Expected: targetType, Actual: valueType})
			}
		}
		return targetType
	}

	if valueType != targetType {
		if c.canImplicitCast(targetType, valueType) {
			a.Value = c.insertCast(a.Value, targetType)
		} else {
			c.report(&TypeError{Kind: TypeMismatch, Sp: a.Value.Span(), File: c.filename, Expected: targetType, Actual: valueType})
		}
	}
	return targetType
}
