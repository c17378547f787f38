package parser

import (
	"strconv"

	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/token"
)

// parseLiteral parses an INT, FLOAT, STRING, CHARLIT, TRUE or FALSE token
// into a Literal node, folding the token's lexeme into a concrete value
// now (spec §4.6): integer literals are checked against the signed
// 64-bit range here, not deferred to semantic analysis.
func (p *Parser) parseLiteral() *ast.Literal {
	tok := p.advance()
	lit := &ast.Literal{
		ExprBase: ast.ExprBase{Sp: tok.Span},
		Kind:     tok.Kind,
		Raw:      tok.Slice,
		Token:    tok,
	}

	switch tok.Kind {
	case token.INT:
		v, err := strconv.ParseInt(string(tok.Slice), 10, 64)
		if err != nil {
			p.fail("invalid integer literal or overflow", tok)
		}
		lit.ExprBase.CValue = ast.ConstValue{Kind: ast.ConstInt, Int: v}
	case token.FLOAT:
		v, err := strconv.ParseFloat(string(tok.Slice), 64)
		if err != nil {
			p.fail("invalid float literal", tok)
		}
		lit.ExprBase.CValue = ast.ConstValue{Kind: ast.ConstFloat, Float: v}
	case token.STRING:
		lit.ExprBase.CValue = ast.ConstValue{Kind: ast.ConstString, Str: string(tok.Record.Interned.Key)}
	case token.CHARLIT:
		lit.ExprBase.CValue = ast.ConstValue{Kind: ast.ConstChar, Char: tok.Record.CodePoint}
	case token.TRUE:
		lit.ExprBase.CValue = ast.ConstValue{Kind: ast.ConstBool, Bool: true}
	case token.FALSE:
		lit.ExprBase.CValue = ast.ConstValue{Kind: ast.ConstBool, Bool: false}
	}
	lit.ExprBase.ConstExpr = true

	return lit
}
