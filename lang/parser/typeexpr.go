package parser

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/token"
)

// parseType parses `TypeAtom ("*" | "[" Expr? "]")*`, applying postfixes
// left to right: each one wraps the type built so far.
func (p *Parser) parseType() ast.TypeExpr {
	ty := p.parseTypeAtom()
	for {
		switch {
		case p.at(token.STAR):
			star := p.advance()
			ty = &ast.PointerTypeExpr{TypeExprBase: ast.TypeExprBase{Sp: ty.Span().Join(star.Span)}, Elem: ty}
		case p.at(token.LBRACK):
			lbrack := p.advance()
			var size ast.Expr
			if !p.at(token.RBRACK) {
				size = p.parseExpr()
			}
			rbrack := p.expectPrevOnFail(token.RBRACK)
			ty = &ast.ArrayTypeExpr{
				TypeExprBase: ast.TypeExprBase{Sp: ty.Span().Join(lbrack.Span).Join(rbrack.Span)},
				Elem:         ty,
				Size:         size,
			}
		default:
			return ty
		}
	}
}

func (p *Parser) parseTypeAtom() ast.TypeExpr {
	switch {
	case p.at(token.LPAREN):
		p.advance()
		ty := p.parseType()
		p.expectPrevOnFail(token.RPAREN)
		return ty
	case p.at(token.FN):
		return p.parseFunctionTypeAtom()
	case p.cur().Kind.IsBaseType():
		tok := p.advance()
		return &ast.PrimitiveTypeExpr{TypeExprBase: ast.TypeExprBase{Sp: tok.Span}, Kind: tok.Kind, Name: tok.Record.Interned}
	default:
		p.fail(expectedMsg("a type", p.cur()), p.cur())
		return nil
	}
}

func (p *Parser) parseFunctionTypeAtom() ast.TypeExpr {
	start := p.expect(token.FN)
	p.expect(token.LPAREN)

	var params []ast.TypeExpr
	if !p.at(token.RPAREN) {
		params = append(params, p.parseType())
		for p.accept(token.COMMA) {
			params = append(params, p.parseType())
		}
	}
	rparen := p.expectPrevOnFail(token.RPAREN)

	sp := start.Span.Join(rparen.Span)
	var ret ast.TypeExpr
	if p.accept(token.ARROW) {
		ret = p.parseType()
		sp = sp.Join(ret.Span())
	}

	return &ast.FunctionTypeExpr{TypeExprBase: ast.TypeExprBase{Sp: sp}, Params: params, Returns: ret}
}
