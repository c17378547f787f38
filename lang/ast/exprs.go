package ast

import (
	"github.com/mna/alder/lang/token"
)

// Literal is an integer, float, bool, string or char literal.
type Literal struct {
	ExprBase
	Kind  token.Kind // INT, FLOAT, STRING, CHARLIT, or one of the boolean keywords folded by the parser
	Raw   []byte     // original source slice, for diagnostics
	Token token.Token
}

func (n *Literal) Walk(v Visitor) {}

// Identifier is a reference to a name, resolved to a Symbol during
// semantic analysis (spec §4.9.2). NameRef is the dense index into the
// identifier interner that the lexer assigned to this spelling.
type Identifier struct {
	ExprBase
	NameRef int
	Name    string
}

func (n *Identifier) Walk(v Visitor) {}

// Binary is a binary operator expression.
type Binary struct {
	ExprBase
	Op          token.Kind
	Left, Right Expr
}

func (n *Binary) Walk(v Visitor) {
	Walk(v, n.Left)
	Walk(v, n.Right)
}

// Unary is a prefix unary operator expression (+, -, !, *, &, ++, --).
type Unary struct {
	ExprBase
	Op      token.Kind
	Operand Expr
}

func (n *Unary) Walk(v Visitor) { Walk(v, n.Operand) }

// Postfix is a postfix ++ or -- expression.
type Postfix struct {
	ExprBase
	Op      token.Kind
	Operand Expr
}

func (n *Postfix) Walk(v Visitor) { Walk(v, n.Operand) }

// Assignment is a simple or compound assignment (=, +=, -=, *=, /=, %=).
// Target must be an lvalue per spec §4.6 (Identifier, Subscript, or *x).
type Assignment struct {
	ExprBase
	Op     token.Kind
	Target Expr
	Value  Expr
}

func (n *Assignment) Walk(v Visitor) {
	Walk(v, n.Target)
	Walk(v, n.Value)
}

// Call is a function call expression.
type Call struct {
	ExprBase
	Callee Expr
	Args   []Expr
}

func (n *Call) Walk(v Visitor) {
	Walk(v, n.Callee)
	for _, a := range n.Args {
		Walk(v, a)
	}
}

// Subscript is an array index expression (a[i]).
type Subscript struct {
	ExprBase
	Array Expr
	Index Expr
}

func (n *Subscript) Walk(v Visitor) {
	Walk(v, n.Array)
	Walk(v, n.Index)
}

// InitializerList is a brace-enclosed list of element expressions, used to
// initialize arrays (spec §4.9.4's array-size inference consumes these).
type InitializerList struct {
	ExprBase
	Elems []Expr
}

func (n *InitializerList) Walk(v Visitor) {
	for _, e := range n.Elems {
		Walk(v, e)
	}
}

// Cast is an explicit or implicit type conversion. Implicit casts are
// synthesized in place by the semantic analyser (spec §4.9.3): Inner is
// re-parented from the original expression's slot into this node, and this
// node takes the original's span.
type Cast struct {
	ExprBase
	Target   TypeExpr
	Inner    Expr
	Implicit bool
}

func (n *Cast) Walk(v Visitor) { Walk(v, n.Inner) }
