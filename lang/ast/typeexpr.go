package ast

import (
	"github.com/mna/alder/internal/intern"
	"github.com/mna/alder/lang/token"
)

// TypeExpr is the syntactic spelling of a type as written in source,
// before the semantic analyser resolves it to a *types.SemanticType
// (spec §4.8). It is not an Expr: it carries no constant value or
// run-time semantics of its own, only a span and a shape.
type TypeExpr interface {
	Node
	typeExprNode()
}

// TypeExprBase is embedded by every concrete TypeExpr.
type TypeExprBase struct {
	Sp token.Span
}

func (b *TypeExprBase) Span() token.Span { return b.Sp }
func (b *TypeExprBase) typeExprNode()    {}

// PrimitiveTypeExpr names one of the base-type keywords (i32, i64, f32,
// f64, bool, char, str, void). Name is the keyword token's interned
// result, the pointer the semantic analyser looks up in the primitive
// registry (spec §4.9.1); Kind is kept alongside for diagnostics and as
// a fallback when a node is built without going through the keyword
// interner (e.g. synthesized in a test).
type PrimitiveTypeExpr struct {
	TypeExprBase
	Kind token.Kind
	Name *intern.Result
}

func (n *PrimitiveTypeExpr) Walk(v Visitor) {}

// PointerTypeExpr is `T*`.
type PointerTypeExpr struct {
	TypeExprBase
	Elem TypeExpr
}

func (n *PointerTypeExpr) Walk(v Visitor) { Walk(v, n.Elem) }

// ArrayTypeExpr is `T[N]`. Size is nil (`T[]`) when the array size is to be
// inferred from an initializer (spec §4.9.4); otherwise it is a constant
// expression.
type ArrayTypeExpr struct {
	TypeExprBase
	Elem TypeExpr
	Size Expr
}

func (n *ArrayTypeExpr) Walk(v Visitor) {
	Walk(v, n.Elem)
	if n.Size != nil {
		Walk(v, n.Size)
	}
}

// FunctionTypeExpr is the type of a function value: parameter types plus
// an optional return type.
type FunctionTypeExpr struct {
	TypeExprBase
	Params  []TypeExpr
	Returns TypeExpr // nil means void
}

func (n *FunctionTypeExpr) Walk(v Visitor) {
	for _, p := range n.Params {
		Walk(v, p)
	}
	if n.Returns != nil {
		Walk(v, n.Returns)
	}
}
