package sema

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

// canImplicitCast reports whether a value of type source may be implicitly
// converted to type target (spec §4.9.3): identical types always qualify;
// i32 widens to i64; f32 widens to f64; any integer widens to any float;
// an array converts to another array when its element type converts to
// the target's element type and the target's size is either unknown or
// known and equal to the source's known size.
func (c *Context) canImplicitCast(target, source *types.SemanticType) bool {
	if target == source {
		return true
	}
	if target == nil || source == nil {
		return false
	}

	if target.Kind == types.Primitive && source.Kind == types.Primitive {
		switch {
		case source.Primitive == types.I32 && target.Primitive == types.I64:
			return true
		case source.Primitive == types.F32 && target.Primitive == types.F64:
			return true
		case source.IsInteger() && target.IsFloat():
			return true
		}
		return false
	}

	if target.Kind == types.Array && source.Kind == types.Array {
		if target.Base != source.Base && !c.canImplicitCast(target.Base, source.Base) {
			return false
		}
		if !target.SizeKnown {
			return true
		}
		return source.SizeKnown && target.Size == source.Size
	}

	return false
}

// insertCast wraps expr in a synthesized Cast targeting target, per spec
// §4.9.3's insert_cast: expr is re-parented into the new node's Inner slot,
// the Cast takes expr's span, and a constant value is re-expressed in the
// target representation when expr is itself constant.
func (c *Context) insertCast(expr ast.Expr, target *types.SemanticType) ast.Expr {
	cast := &ast.Cast{
		ExprBase: ast.ExprBase{Sp: expr.Span()},
		Target:   syntheticTypeExpr(target),
		Inner:    expr,
		Implicit: true,
	}
	cast.SetType(target)

	if expr.IsConstExpr() && target.Kind == types.Primitive {
		cv := expr.ConstValue()
		switch {
		case target.IsFloat() && cv.Kind == ast.ConstInt:
			cast.SetConstExpr(true)
			cast.SetConstValue(ast.ConstValue{Kind: ast.ConstFloat, Float: float64(cv.Int)})
		case target.IsInteger() && cv.Kind == ast.ConstFloat:
			cast.SetConstExpr(true)
			cast.SetConstValue(ast.ConstValue{Kind: ast.ConstInt, Int: int64(cv.Float)})
		default:
			cast.SetConstExpr(true)
			cast.SetConstValue(cv)
		}
	}
	return cast
}

// syntheticTypeExpr builds a minimal TypeExpr standing in for an
// already-resolved SemanticType, so a Cast node still satisfies the
// TypeExpr field its syntactic siblings carry. It is never itself
// re-resolved: the analyser only ever reads Cast.Type(), not Cast.Target.
func syntheticTypeExpr(t *types.SemanticType) ast.TypeExpr {
	switch t.Kind {
	case types.Pointer:
		return &ast.PointerTypeExpr{Elem: syntheticTypeExpr(t.Base)}
	case types.Array:
		return &ast.ArrayTypeExpr{Elem: syntheticTypeExpr(t.Base)}
	default:
		return &ast.PrimitiveTypeExpr{Kind: primitiveKeyword(t)}
	}
}

// primitiveKeyword maps a canonical primitive SemanticType back to its
// spelling keyword, the inverse of resolvePrimitive.
func primitiveKeyword(t *types.SemanticType) token.Kind {
	switch t.Primitive {
	case types.I32:
		return token.I32
	case types.I64:
		return token.I64
	case types.F32:
		return token.F32
	case types.F64:
		return token.F64
	case types.Bool:
		return token.BOOL
	case types.Char:
		return token.CHAR
	case types.Str:
		return token.STR
	default:
		return token.VOID
	}
}
