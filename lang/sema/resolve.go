package sema

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/scope"
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

// resolveType dispatches on the syntactic type kind (spec §4.9.1). It
// returns nil and appends an UnknownType diagnostic on failure. sc is the
// scope an array's size expression, if any, is checked against.
func (c *Context) resolveType(te ast.TypeExpr, sc *scope.Scope) *types.SemanticType {
	switch t := te.(type) {
	case *ast.PrimitiveTypeExpr:
		return c.resolvePrimitive(t)
	case *ast.PointerTypeExpr:
		inner := c.resolveTypeOrVoidIn(t.Elem, sc)
		return c.store.PointerOf(inner)
	case *ast.ArrayTypeExpr:
		return c.resolveArrayType(t, sc)
	case *ast.FunctionTypeExpr:
		return c.resolveFunctionType(t, sc)
	default:
		return nil
	}
}

// resolveTypeOrVoid resolves te against the global scope, substituting
// void when resolution fails (spec §4.9.1's "default to void on
// failure"). Used for signatures, which are resolved in Pass 1 before any
// local scope exists.
func (c *Context) resolveTypeOrVoid(te ast.TypeExpr) *types.SemanticType {
	return c.resolveTypeOrVoidIn(te, c.global)
}

func (c *Context) resolveTypeOrVoidIn(te ast.TypeExpr, sc *scope.Scope) *types.SemanticType {
	if te == nil {
		return c.store.Void
	}
	t := c.resolveType(te, sc)
	if t == nil {
		return c.store.Void
	}
	return t
}

// resolvePrimitive resolves a base-type keyword by looking up its
// interned name pointer in the primitive registry (spec §4.9.1, §4.8),
// the same O(1) identity lookup the TypeStore uses to seed its
// canonical slots. t.Name is nil only for a node built without going
// through the keyword interner (not reachable from the parser, which
// always populates it from the keyword token); the Kind switch below
// is the fallback for that case.
func (c *Context) resolvePrimitive(t *ast.PrimitiveTypeExpr) *types.SemanticType {
	if t.Name != nil {
		if pt, ok := c.store.LookupPrimitiveName(t.Name); ok {
			return pt
		}
	}

	switch t.Kind {
	case token.I32:
		return c.store.I32
	case token.I64:
		return c.store.I64
	case token.F32:
		return c.store.F32
	case token.F64:
		return c.store.F64
	case token.BOOL:
		return c.store.Bool
	case token.CHAR:
		return c.store.Char
	case token.STR:
		return c.store.Str
	case token.VOID:
		return c.store.Void
	default:
		c.report(&TypeError{Kind: UnknownType, Sp: t.Span(), File: c.filename, Name: t.Kind.String()})
		return nil
	}
}

func (c *Context) resolveArrayType(t *ast.ArrayTypeExpr, sc *scope.Scope) *types.SemanticType {
	elem := c.resolveTypeOrVoidIn(t.Elem, sc)

	if t.Size == nil {
		return c.store.ArrayOf(elem, 0, false)
	}

	sizeType := c.checkExpression(t.Size, sc, c.store.I64)
	if sizeType == nil || !sizeType.IsInteger() {
		c.report(&TypeError{Kind: TypeMismatch, Sp: t.Size.Span(), File: c.filename, Expected: c.store.I64, Actual: sizeType})
		return c.store.ArrayOf(elem, 0, false)
	}
	if !t.Size.IsConstExpr() {
		c.report(&TypeError{Kind: NotConst, Sp: t.Size.Span(), File: c.filename})
		return c.store.ArrayOf(elem, 0, false)
	}
	return c.store.ArrayOf(elem, t.Size.ConstValue().Int, true)
}

func (c *Context) resolveFunctionType(t *ast.FunctionTypeExpr, sc *scope.Scope) *types.SemanticType {
	ret := c.store.Void
	if t.Returns != nil {
		ret = c.resolveTypeOrVoidIn(t.Returns, sc)
	}
	params := make([]*types.SemanticType, len(t.Params))
	for i, p := range t.Params {
		params[i] = c.resolveTypeOrVoidIn(p, sc)
	}
	return c.store.FunctionOf(ret, params)
}
