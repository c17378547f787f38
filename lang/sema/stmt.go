package sema

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/scope"
	"github.com/mna/alder/lang/types"
)

// checkVariableDeclaration is check_variable_declaration from spec §4.9.5.
// It resolves the declared type (inferring array dimensions from an
// initializer list when the syntactic type leaves them open), checks the
// initializer against that type, and defines the resulting symbol in sc.
func (c *Context) checkVariableDeclaration(vd *ast.VarDecl, sc *scope.Scope) {
	var declaredType *types.SemanticType

	switch {
	case vd.TypeExpr != nil:
		if arr, ok := vd.TypeExpr.(*ast.ArrayTypeExpr); ok && hasInferredSize(arr) && vd.Init != nil {
			declaredType = c.resolveArrayTypeWithInit(arr, vd.Init, sc)
		} else {
			declaredType = c.resolveType(vd.TypeExpr, sc)
			if declaredType == nil {
				c.report(&TypeError{Kind: VariableTypeResolutionFailed, Sp: vd.Span(), File: c.filename, Name: vd.Name})
				declaredType = c.store.Void
			}
		}
		if vd.Init != nil {
			c.checkExpression(vd.Init, sc, declaredType)
		}

	case vd.Init != nil:
		declaredType = c.checkExpression(vd.Init, sc, nil)
		if declaredType == nil {
			c.report(&TypeError{Kind: VariableTypeResolutionFailed, Sp: vd.Span(), File: c.filename, Name: vd.Name})
			declaredType = c.store.Void
		}

	default:
		c.report(&TypeError{Kind: VariableTypeResolutionFailed, Sp: vd.Span(), File: c.filename, Name: vd.Name})
		declaredType = c.store.Void
	}

	if vd.Init != nil && vd.TypeExpr != nil {
		initType := vd.Init.Type()
		if initType != nil && initType != declaredType {
			if c.canImplicitCast(declaredType, initType) {
				vd.Init = c.insertCast(vd.Init, declaredType)
			} else {
				c.report(&TypeError{Kind: TypeMismatch, Sp: vd.Init.Span(), File: c.filename, Expected: declaredType, Actual: initType})
			}
		}
	}

	sym := &scope.Symbol{NameRef: vd.NameRef, Name: vd.Name, Type: declaredType, Kind: scope.Variable}
	if vd.IsConst {
		sym.SetFlag(scope.Const)
	}
	if vd.Init != nil {
		sym.SetFlag(scope.Initialized)
		if vd.Init.IsConstExpr() {
			sym.SetFlag(scope.ComputedValue)
			cv := vd.Init.ConstValue()
			sym.Const = scope.ConstValue{
				Kind: scope.ConstValueKind(cv.Kind), Int: cv.Int, Float: cv.Float,
				Bool: cv.Bool, Str: cv.Str, Char: cv.Char,
			}
		}
	}

	if !sc.Define(vd.NameRef, sym) {
		c.report(&TypeError{Kind: Redeclaration, Sp: vd.Span(), File: c.filename, Name: vd.Name})
	}
}

// checkStatement dispatches a single statement for checking against sc.
func (c *Context) checkStatement(stmt ast.Stmt, sc *scope.Scope) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		c.checkVariableDeclaration(s, sc)
	case *ast.Block:
		c.checkBlock(s, sc)
	case *ast.If:
		c.checkIf(s, sc)
	case *ast.While:
		c.checkWhile(s, sc)
	case *ast.For:
		c.checkFor(s, sc)
	case *ast.Return:
		c.checkReturn(s, sc)
	case *ast.Break, *ast.Continue:
		// nothing to annotate
	case *ast.ExprStmt:
		c.checkExpression(s.X, sc, nil)
	}
}

// checkBlock opens a child scope for block's braces and checks its
// statements within it (used for nested bodies: if/while/for).
func (c *Context) checkBlock(block *ast.Block, sc *scope.Scope) {
	inner := sc.Child(c.identifiers.Count() + scopeSlack)
	c.checkBlockStatements(block, inner)
}

// checkBlockStatements checks block's statements directly against sc,
// without opening a further scope. Used for a function body, which shares
// its scope with the parameter list (spec §4.9.5).
func (c *Context) checkBlockStatements(block *ast.Block, sc *scope.Scope) {
	for _, stmt := range block.Stmts {
		c.checkStatement(stmt, sc)
	}
}

func (c *Context) checkIf(n *ast.If, sc *scope.Scope) {
	c.checkCondition(n.Cond, sc)
	c.checkBlock(n.Then, sc)
	if n.Else != nil {
		c.checkStatement(n.Else, sc)
	}
}

func (c *Context) checkWhile(n *ast.While, sc *scope.Scope) {
	c.checkCondition(n.Cond, sc)
	c.checkBlock(n.Body, sc)
}

func (c *Context) checkFor(n *ast.For, sc *scope.Scope) {
	loopScope := sc.Child(c.identifiers.Count() + scopeSlack)
	if n.Init != nil {
		c.checkStatement(n.Init, loopScope)
	}
	if n.Cond != nil {
		c.checkCondition(n.Cond, loopScope)
	}
	if n.Post != nil {
		c.checkStatement(n.Post, loopScope)
	}
	c.checkBlock(n.Body, loopScope)
}

func (c *Context) checkCondition(cond ast.Expr, sc *scope.Scope) {
	condType := c.checkExpression(cond, sc, c.store.Bool)
	if condType != nil && !condType.IsBool() {
		c.report(&TypeError{Kind: TypeMismatch, Sp: cond.Span(), File: c.filename, Expected: c.store.Bool, Actual: condType})
	}
}

func (c *Context) checkReturn(r *ast.Return, sc *scope.Scope) {
	if r.Value == nil {
		if c.currentReturn != nil && c.currentReturn != c.store.Void {
			c.report(&TypeError{Kind: ReturnMismatch, Sp: r.Span(), File: c.filename, Expected: c.currentReturn, Actual: c.store.Void})
		}
		return
	}

	valueType := c.checkExpression(r.Value, sc, c.currentReturn)
	if valueType == nil || c.currentReturn == nil {
		return
	}
	if valueType != c.currentReturn {
		if c.canImplicitCast(c.currentReturn, valueType) {
			r.Value = c.insertCast(r.Value, c.currentReturn)
		} else {
			c.report(&TypeError{Kind: ReturnMismatch, Sp: r.Value.Span(), File: c.filename, Expected: c.currentReturn, Actual: valueType})
		}
	}
}
