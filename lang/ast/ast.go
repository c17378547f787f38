// Package ast defines the abstract syntax tree produced by the parser and
// annotated in place by the semantic analyser, per spec §3. Every node is
// allocated in a single compilation arena and forms a tree by
// construction, with one exception: insert_cast (spec §4.9.3) moves an
// existing node into a freshly synthesized Cast's child slot, so for every
// expression node there is at most one parent pointer in the tree.
package ast

import (
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

// Node is any node in the AST.
type Node interface {
	// Span reports the source range covered by this node.
	Span() token.Span

	// Walk visits this node's direct children with v.
	Walk(v Visitor)
}

// Decl is a top-level declaration (spec §3's Program.decls elements).
type Decl interface {
	Node
	declNode()
}

// Stmt is any statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is any expression. Every Expr carries the bookkeeping the semantic
// analyser fills in: a resolved semantic type, a constant-ness flag, and
// an inlined constant value.
type Expr interface {
	Node
	exprNode()

	Type() *types.SemanticType
	SetType(*types.SemanticType)
	IsConstExpr() bool
	SetConstExpr(bool)
	ConstValue() ConstValue
	SetConstValue(ConstValue)
}

// ConstKind tags the payload carried by a ConstValue.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstInt
	ConstFloat
	ConstBool
	ConstString
	ConstChar
)

// ConstValue is the inlined constant-folding payload carried by every
// expression node, tag plus union-like payload fields.
type ConstValue struct {
	Kind  ConstKind
	Int   int64
	Float float64
	Bool  bool
	Str   string
	Char  rune
}

// ExprBase is embedded by every concrete Expr node to provide the common
// span/type/const bookkeeping without repeating it in each type.
type ExprBase struct {
	Sp        token.Span
	SemType   *types.SemanticType
	ConstExpr bool
	CValue    ConstValue
}

func (b *ExprBase) Span() token.Span                  { return b.Sp }
func (b *ExprBase) Type() *types.SemanticType          { return b.SemType }
func (b *ExprBase) SetType(t *types.SemanticType)      { b.SemType = t }
func (b *ExprBase) IsConstExpr() bool                  { return b.ConstExpr }
func (b *ExprBase) SetConstExpr(c bool)                { b.ConstExpr = c }
func (b *ExprBase) ConstValue() ConstValue             { return b.CValue }
func (b *ExprBase) SetConstValue(v ConstValue)         { b.CValue = v }
func (b *ExprBase) exprNode()                          {}

// StmtBase is embedded by every concrete Stmt node.
type StmtBase struct {
	Sp token.Span
}

func (b *StmtBase) Span() token.Span { return b.Sp }
func (b *StmtBase) stmtNode()        {}

// DeclBase is embedded by every top-level Decl node.
type DeclBase struct {
	Sp token.Span
}

func (b *DeclBase) Span() token.Span { return b.Sp }
func (b *DeclBase) declNode()        {}

// IsLvalue reports whether expr is a syntactic lvalue: Identifier,
// Subscript, or Unary(*x), per spec §4.6. Postfix ++/-- is explicitly not
// an lvalue.
func IsLvalue(expr Expr) bool {
	switch e := expr.(type) {
	case *Identifier:
		return true
	case *Subscript:
		return true
	case *Unary:
		return e.Op == token.STAR
	default:
		return false
	}
}

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	Decls []Decl
}

func (n *Program) Span() token.Span {
	if len(n.Decls) == 0 {
		return token.Span{}
	}
	return n.Decls[0].Span().Join(n.Decls[len(n.Decls)-1].Span())
}

func (n *Program) Walk(v Visitor) {
	for _, d := range n.Decls {
		Walk(v, d)
	}
}
