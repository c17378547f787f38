package sema

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/scope"
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

// hasInferredSize reports whether t, or any array it nests, has an
// inferred size (`T[]` rather than `T[N]`), per spec §4.9.4.
func hasInferredSize(t *ast.ArrayTypeExpr) bool {
	if t.Size == nil {
		return true
	}
	if nested, ok := t.Elem.(*ast.ArrayTypeExpr); ok {
		return hasInferredSize(nested)
	}
	return false
}

// resolveArrayTypeWithInit resolves an array type expression that has one
// or more inferred dimensions against its initializer, synthesizing an
// integer-literal Size node for each inferred dimension bottom-up (spec
// §4.9.4) so the syntactic tree reflects the size the analyser derived.
func (c *Context) resolveArrayTypeWithInit(t *ast.ArrayTypeExpr, init ast.Expr, sc *scope.Scope) *types.SemanticType {
	il, isList := init.(*ast.InitializerList)

	var elemType *types.SemanticType
	if nested, ok := t.Elem.(*ast.ArrayTypeExpr); ok && isList && len(il.Elems) > 0 {
		elemType = c.resolveArrayTypeWithInit(nested, il.Elems[0], sc)
	} else {
		elemType = c.resolveTypeOrVoidIn(t.Elem, sc)
	}

	if t.Size != nil {
		return c.resolveArrayType(t, sc)
	}

	if !isList {
		c.report(&TypeError{Kind: ExpectedArray, Sp: init.Span(), File: c.filename, Actual: nil})
		return c.store.ArrayOf(elemType, 0, false)
	}

	size := int64(len(il.Elems))
	t.Size = &ast.Literal{
		ExprBase: ast.ExprBase{Sp: t.Span(), ConstExpr: true, CValue: ast.ConstValue{Kind: ast.ConstInt, Int: size}},
		Kind:     token.INT,
	}
	return c.store.ArrayOf(elemType, size, true)
}

// arrayRank reports the nesting depth of array types in t (0 for a
// non-array type).
func arrayRank(t *types.SemanticType) int {
	if t == nil || t.Kind != types.Array {
		return 0
	}
	return 1 + arrayRank(t.Base)
}

// initListRank reports the brace-nesting depth of an initializer
// expression (0 when e is not itself an InitializerList).
func initListRank(e ast.Expr) int {
	il, ok := e.(*ast.InitializerList)
	if !ok {
		return 0
	}
	best := 0
	for _, elem := range il.Elems {
		if r := initListRank(elem); r > best {
			best = r
		}
	}
	return 1 + best
}

// checkInitializerList is check_initializer_list from spec §4.9.4: expected
// must be an array type; the brace-nesting depth of il must match the
// array's rank; when expected's size is known it must match the element
// count; each element is checked against the array's base type.
func (c *Context) checkInitializerList(il *ast.InitializerList, sc *scope.Scope, expected *types.SemanticType) *types.SemanticType {
	if expected == nil || expected.Kind != types.Array {
		c.report(&TypeError{Kind: UnexpectedList, Sp: il.Span(), File: c.filename, Expected: expected})
		for _, elem := range il.Elems {
			c.checkExpression(elem, sc, nil)
		}
		return expected
	}

	expectedNDim := arrayRank(expected)
	actualNDim := initListRank(il)
	if expectedNDim != actualNDim {
		c.report(&TypeError{Kind: DimensionMismatch, Sp: il.Span(), File: c.filename, ExpectedNDim: expectedNDim, ActualNDim: actualNDim})
		for _, elem := range il.Elems {
			c.checkExpression(elem, sc, nil)
		}
		return expected
	}

	if expected.SizeKnown && int64(len(il.Elems)) != expected.Size {
		c.report(&TypeError{Kind: ArraySizeMismatch, Sp: il.Span(), File: c.filename, ExpectedSize: expected.Size, ActualSize: int64(len(il.Elems))})
		for _, elem := range il.Elems {
			c.checkExpression(elem, sc, expected.Base)
		}
		return nil
	}

	for _, elem := range il.Elems {
		c.checkExpression(elem, sc, expected.Base)
	}

	return c.store.ArrayOf(expected.Base, int64(len(il.Elems)), true)
}
