package ast

import (
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
)

// Param is a single function parameter.
type Param struct {
	Sp       token.Span
	NameRef  int
	Name     string
	TypeExpr TypeExpr
	// Type is filled in by the semantic analyser from TypeExpr.
	Type *types.SemanticType
}

func (n *Param) Span() token.Span { return n.Sp }
func (n *Param) Walk(v Visitor)   { Walk(v, n.TypeExpr) }

// VarDecl declares a local or global variable, const or mutable.
type VarDecl struct {
	StmtBase
	DeclBase
	NameRef     int
	Name        string
	IsConst     bool
	TypeExpr    TypeExpr // nil when the type is to be inferred from Init
	Init        Expr     // nil when there is no initializer
}

func (n *VarDecl) Walk(v Visitor) {
	if n.TypeExpr != nil {
		Walk(v, n.TypeExpr)
	}
	if n.Init != nil {
		Walk(v, n.Init)
	}
}

// Span disambiguates the StmtBase/DeclBase embedding (VarDecl can appear
// both as a top-level Decl and as a Stmt inside a function body).
func (n *VarDecl) Span() token.Span { return n.StmtBase.Sp }

// FnDecl is a top-level function declaration.
type FnDecl struct {
	DeclBase
	NameRef    int
	Name       string
	Params     []*Param
	ReturnType TypeExpr // nil means void
	Body       *Block
}

func (n *FnDecl) Walk(v Visitor) {
	for _, p := range n.Params {
		Walk(v, p)
	}
	if n.ReturnType != nil {
		Walk(v, n.ReturnType)
	}
	Walk(v, n.Body)
}

// Block is a brace-enclosed statement list introducing its own scope
// (spec §4.7).
type Block struct {
	StmtBase
	Stmts []Stmt
}

func (n *Block) Walk(v Visitor) {
	for _, s := range n.Stmts {
		Walk(v, s)
	}
}

// If is an if/else statement. Else is nil when there is no else clause;
// it may itself be an *If for an "else if" chain.
type If struct {
	StmtBase
	Cond Expr
	Then *Block
	Else Stmt
}

func (n *If) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Then)
	if n.Else != nil {
		Walk(v, n.Else)
	}
}

// While is a while loop.
type While struct {
	StmtBase
	Cond Expr
	Body *Block
}

func (n *While) Walk(v Visitor) {
	Walk(v, n.Cond)
	Walk(v, n.Body)
}

// For is a C-style for loop. Any of Init, Cond, Post may be nil.
type For struct {
	StmtBase
	Init Stmt
	Cond Expr
	Post Stmt
	Body *Block
}

func (n *For) Walk(v Visitor) {
	if n.Init != nil {
		Walk(v, n.Init)
	}
	if n.Cond != nil {
		Walk(v, n.Cond)
	}
	if n.Post != nil {
		Walk(v, n.Post)
	}
	Walk(v, n.Body)
}

// Return is a return statement. Value is nil for a bare `return;`.
type Return struct {
	StmtBase
	Value Expr
}

func (n *Return) Walk(v Visitor) {
	if n.Value != nil {
		Walk(v, n.Value)
	}
}

// Break is a break statement.
type Break struct{ StmtBase }

func (n *Break) Walk(v Visitor) {}

// Continue is a continue statement.
type Continue struct{ StmtBase }

func (n *Continue) Walk(v Visitor) {}

// ExprStmt is an expression evaluated for its side effects (a call or an
// assignment, typically).
type ExprStmt struct {
	StmtBase
	X Expr
}

func (n *ExprStmt) Walk(v Visitor) { Walk(v, n.X) }
