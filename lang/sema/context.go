package sema

import (
	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/internal/intern"
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/scope"
	"github.com/mna/alder/lang/types"
)

// scopeSlack pads a scope's slot array beyond the identifier count known
// at creation time, for names interned afterward (spec §4.7).
const scopeSlack = 16

// Context holds everything the analyser needs for one compilation (spec
// §6's TypeCheckContext): the arena, the type store, both interners, and
// the accumulated diagnostic vector.
type Context struct {
	arena       *arena.Arena
	store       *types.Store
	identifiers *intern.Interner
	keywords    *intern.Interner
	filename    string

	global *scope.Scope
	diags  []*TypeError

	// currentReturn is the enclosing function's return type, used by
	// `return` statements; nil outside a function body.
	currentReturn *types.SemanticType
}

// NewContext creates a Context for one compilation.
func NewContext(a *arena.Arena, store *types.Store, identifiers, keywords *intern.Interner, filename string) *Context {
	return &Context{
		arena:       a,
		store:       store,
		identifiers: identifiers,
		keywords:    keywords,
		filename:    filename,
	}
}

func (c *Context) report(e *TypeError) {
	c.diags = append(c.diags, e)
}

// Check runs both passes over prog and returns every diagnostic found, in
// detection order (spec §5's ordering guarantee).
func (c *Context) Check(prog *ast.Program) []*TypeError {
	c.global = scope.New(c.identifiers.Count() + scopeSlack)
	c.pass1(prog)
	c.pass2(prog)
	return c.diags
}

// pass1 resolves every function's signature and defines it in global
// scope, per spec §4.9 Pass 1. Global variables are deliberately skipped:
// they are checked in Pass 2 so they can reference functions declared
// later in the file without earlier globals seeing forward references to
// themselves.
func (c *Context) pass1(prog *ast.Program) {
	for _, decl := range prog.Decls {
		fn, ok := decl.(*ast.FnDecl)
		if !ok {
			continue
		}

		params := make([]*types.SemanticType, len(fn.Params))
		for i, p := range fn.Params {
			params[i] = c.resolveTypeOrVoid(p.TypeExpr)
		}
		ret := c.store.Void
		if fn.ReturnType != nil {
			ret = c.resolveTypeOrVoid(fn.ReturnType)
		}
		fnType := c.store.FunctionOf(ret, params)

		sym := &scope.Symbol{NameRef: fn.NameRef, Name: fn.Name, Type: fnType, Kind: scope.FunctionSym}
		sym.SetFlag(scope.Initialized)
		if !c.global.Define(fn.NameRef, sym) {
			c.report(&TypeError{Kind: Redeclaration, Sp: fn.Span(), File: c.filename, Name: fn.Name})
		}
	}
}

// pass2 checks every declaration's body, per spec §4.9 Pass 2.
func (c *Context) pass2(prog *ast.Program) {
	for _, decl := range prog.Decls {
		switch d := decl.(type) {
		case *ast.VarDecl:
			c.checkVariableDeclaration(d, c.global)
		case *ast.FnDecl:
			c.checkFunctionBody(d)
		}
	}
}

func (c *Context) checkFunctionBody(fn *ast.FnDecl) {
	fnSym, _ := c.global.LookupLocal(fn.NameRef)
	var retType *types.SemanticType
	if fnSym != nil {
		retType = fnSym.Type.Return
	} else {
		retType = c.store.Void
	}

	fnScope := c.global.Child(c.identifiers.Count() + scopeSlack)
	for i, p := range fn.Params {
		var pt *types.SemanticType
		if fnSym != nil && i < len(fnSym.Type.Params) {
			pt = fnSym.Type.Params[i] // already resolved in Pass 1
		} else {
			pt = c.resolveTypeOrVoid(p.TypeExpr)
		}
		p.Type = pt
		sym := &scope.Symbol{NameRef: p.NameRef, Name: p.Name, Type: pt, Kind: scope.Variable}
		sym.SetFlag(scope.Initialized)
		if p.NameRef >= 0 && !fnScope.Define(p.NameRef, sym) {
			c.report(&TypeError{Kind: Redeclaration, Sp: p.Span(), File: c.filename, Name: p.Name})
		}
	}

	prevReturn := c.currentReturn
	c.currentReturn = retType
	c.checkBlockStatements(fn.Body, fnScope) // function body shares the parameter scope (spec §4.9.5)
	c.currentReturn = prevReturn
}
