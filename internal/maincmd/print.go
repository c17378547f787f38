package maincmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/mna/alder/lang/ast"
)

// printVisitor renders a tree dump of an AST, one line per node indented
// by nesting depth. There are no comment/mode flags: this grammar has
// nothing to attach them to.
type printVisitor struct {
	w     io.Writer
	depth int
}

func (v *printVisitor) Visit(n ast.Node, dir ast.VisitDirection) ast.Visitor {
	if dir == ast.VisitExit {
		v.depth--
		return v
	}
	fmt.Fprintf(v.w, "%s%s\n", strings.Repeat("  ", v.depth), describe(n))
	v.depth++
	return v
}

// PrintProgram writes a tree dump of prog to w.
func PrintProgram(w io.Writer, prog *ast.Program) {
	ast.Walk(&printVisitor{w: w}, prog)
}

func describe(n ast.Node) string {
	sp := n.Span()
	loc := fmt.Sprintf("%d:%d", sp.StartLine, sp.StartCol)
	switch x := n.(type) {
	case *ast.Program:
		return fmt.Sprintf("Program")
	case *ast.FnDecl:
		return fmt.Sprintf("FnDecl %s @%s", x.Name, loc)
	case *ast.Param:
		return fmt.Sprintf("Param %s @%s", x.Name, loc)
	case *ast.VarDecl:
		kw := "var"
		if x.IsConst {
			kw = "const"
		}
		return fmt.Sprintf("VarDecl %s %s @%s", kw, x.Name, loc)
	case *ast.Block:
		return fmt.Sprintf("Block @%s", loc)
	case *ast.If:
		return fmt.Sprintf("If @%s", loc)
	case *ast.While:
		return fmt.Sprintf("While @%s", loc)
	case *ast.For:
		return fmt.Sprintf("For @%s", loc)
	case *ast.Return:
		return fmt.Sprintf("Return @%s", loc)
	case *ast.Break:
		return fmt.Sprintf("Break @%s", loc)
	case *ast.Continue:
		return fmt.Sprintf("Continue @%s", loc)
	case *ast.ExprStmt:
		return fmt.Sprintf("ExprStmt @%s", loc)
	case *ast.Literal:
		return fmt.Sprintf("Literal %s %q @%s", x.Kind, x.Raw, loc)
	case *ast.Identifier:
		return fmt.Sprintf("Identifier %s @%s", x.Name, loc)
	case *ast.Binary:
		return fmt.Sprintf("Binary %s @%s", x.Op.GoString(), loc)
	case *ast.Unary:
		return fmt.Sprintf("Unary %s @%s", x.Op.GoString(), loc)
	case *ast.Postfix:
		return fmt.Sprintf("Postfix %s @%s", x.Op.GoString(), loc)
	case *ast.Assignment:
		return fmt.Sprintf("Assignment %s @%s", x.Op.GoString(), loc)
	case *ast.Call:
		return fmt.Sprintf("Call @%s", loc)
	case *ast.Subscript:
		return fmt.Sprintf("Subscript @%s", loc)
	case *ast.InitializerList:
		return fmt.Sprintf("InitializerList @%s", loc)
	case *ast.Cast:
		implicit := ""
		if x.Implicit {
			implicit = " implicit"
		}
		return fmt.Sprintf("Cast%s @%s", implicit, loc)
	case *ast.PrimitiveTypeExpr:
		return fmt.Sprintf("PrimitiveTypeExpr %s @%s", x.Kind.GoString(), loc)
	case *ast.PointerTypeExpr:
		return fmt.Sprintf("PointerTypeExpr @%s", loc)
	case *ast.ArrayTypeExpr:
		return fmt.Sprintf("ArrayTypeExpr @%s", loc)
	case *ast.FunctionTypeExpr:
		return fmt.Sprintf("FunctionTypeExpr @%s", loc)
	default:
		return fmt.Sprintf("%T @%s", n, loc)
	}
}
