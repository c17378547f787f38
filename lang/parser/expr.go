package parser

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/token"
)

func (p *Parser) parseExpr() ast.Expr { return p.parseAssignment() }

// assignOps... handled via token.Kind.IsAssignOp.

func (p *Parser) parseAssignment() ast.Expr {
	left := p.parseLogicalOr()
	if p.cur().Kind.IsAssignOp() {
		op := p.advance()
		if !ast.IsLvalue(left) {
			p.fail("left-hand side of assignment must be an identifier, subscript, or dereference", op)
		}
		value := p.parseExpr() // right-associative
		return &ast.Assignment{
			ExprBase: ast.ExprBase{Sp: left.Span().Join(value.Span())},
			Op:       op.Kind,
			Target:   left,
			Value:    value,
		}
	}
	return left
}

func (p *Parser) parseLogicalOr() ast.Expr {
	left := p.parseLogicalAnd()
	for p.at(token.OROR) {
		op := p.advance()
		right := p.parseLogicalAnd()
		left = &ast.Binary{ExprBase: ast.ExprBase{Sp: left.Span().Join(right.Span())}, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expr {
	left := p.parseEquality()
	for p.at(token.ANDAND) {
		op := p.advance()
		right := p.parseEquality()
		left = &ast.Binary{ExprBase: ast.ExprBase{Sp: left.Span().Join(right.Span())}, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expr {
	left := p.parseRelational()
	for p.at(token.EQ) || p.at(token.NEQ) {
		op := p.advance()
		right := p.parseRelational()
		left = &ast.Binary{ExprBase: ast.ExprBase{Sp: left.Span().Join(right.Span())}, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseRelational() ast.Expr {
	left := p.parseAdditive()
	for p.at(token.LT) || p.at(token.GT) || p.at(token.LE) || p.at(token.GE) {
		op := p.advance()
		right := p.parseAdditive()
		left = &ast.Binary{ExprBase: ast.ExprBase{Sp: left.Span().Join(right.Span())}, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expr {
	left := p.parseMultiplicative()
	for p.at(token.PLUS) || p.at(token.MINUS) {
		op := p.advance()
		right := p.parseMultiplicative()
		left = &ast.Binary{ExprBase: ast.ExprBase{Sp: left.Span().Join(right.Span())}, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expr {
	left := p.parseUnary()
	for p.at(token.STAR) || p.at(token.SLASH) || p.at(token.PERCENT) {
		op := p.advance()
		right := p.parseUnary()
		left = &ast.Binary{ExprBase: ast.ExprBase{Sp: left.Span().Join(right.Span())}, Op: op.Kind, Left: left, Right: right}
	}
	return left
}

func isUnaryOp(k token.Kind) bool {
	switch k {
	case token.PLUS, token.MINUS, token.BANG, token.STAR, token.AMP, token.INC, token.DEC:
		return true
	}
	return false
}

func (p *Parser) parseUnary() ast.Expr {
	if isUnaryOp(p.cur().Kind) {
		op := p.advance()
		operand := p.parseUnary()
		return &ast.Unary{ExprBase: ast.ExprBase{Sp: op.Span.Join(operand.Span())}, Op: op.Kind, Operand: operand}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch {
		case p.at(token.INC) || p.at(token.DEC):
			op := p.advance()
			expr = &ast.Postfix{ExprBase: ast.ExprBase{Sp: expr.Span().Join(op.Span)}, Op: op.Kind, Operand: expr}
		case p.at(token.LBRACK):
			p.advance()
			idx := p.parseExpr()
			rbrack := p.expectPrevOnFail(token.RBRACK)
			expr = &ast.Subscript{ExprBase: ast.ExprBase{Sp: expr.Span().Join(rbrack.Span)}, Array: expr, Index: idx}
		case p.at(token.LPAREN):
			p.advance()
			var args []ast.Expr
			if !p.at(token.RPAREN) {
				args = append(args, p.parseExpr())
				for p.accept(token.COMMA) {
					args = append(args, p.parseExpr())
				}
			}
			rparen := p.expectPrevOnFail(token.RPAREN)
			expr = &ast.Call{ExprBase: ast.ExprBase{Sp: expr.Span().Join(rparen.Span)}, Callee: expr, Args: args}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	switch {
	case p.at(token.INT), p.at(token.FLOAT), p.at(token.STRING), p.at(token.CHARLIT), p.at(token.TRUE), p.at(token.FALSE):
		return p.parseLiteral()
	case p.at(token.IDENT):
		tok := p.advance()
		return &ast.Identifier{ExprBase: ast.ExprBase{Sp: tok.Span}, NameRef: identRef(tok), Name: tok.String()}
	case p.at(token.LPAREN):
		p.advance()
		expr := p.parseExpr()
		p.expectPrevOnFail(token.RPAREN)
		return expr
	default:
		p.fail(expectedMsg("an expression", p.cur()), p.cur())
		return nil
	}
}

func (p *Parser) parseInitList() *ast.InitializerList {
	lbrace := p.expect(token.LBRACE)
	var elems []ast.Expr
	if !p.at(token.RBRACE) {
		elems = append(elems, p.parseInitElem())
		for p.accept(token.COMMA) {
			if p.at(token.RBRACE) {
				p.fail("trailing comma not allowed in initializer list", p.cur())
			}
			elems = append(elems, p.parseInitElem())
		}
	}
	rbrace := p.expectPrevOnFail(token.RBRACE)
	return &ast.InitializerList{ExprBase: ast.ExprBase{Sp: lbrace.Span.Join(rbrace.Span)}, Elems: elems}
}

func (p *Parser) parseInitElem() ast.Expr {
	if p.at(token.LBRACE) {
		return p.parseInitList()
	}
	return p.parseExpr()
}
