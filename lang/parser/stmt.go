package parser

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/token"
)

func (p *Parser) parseBlock() *ast.Block {
	lbrace := p.expect(token.LBRACE)
	var stmts []ast.Stmt
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStatement())
	}
	rbrace := p.expectPrevOnFail(token.RBRACE)
	return &ast.Block{StmtBase: ast.StmtBase{Sp: lbrace.Span.Join(rbrace.Span)}, Stmts: stmts}
}

func (p *Parser) parseStatement() ast.Stmt {
	switch {
	case p.at(token.FN):
		p.fail("function declarations are not allowed inside a block", p.cur())
		return nil
	case p.at(token.IF):
		return p.parseIf()
	case p.at(token.WHILE):
		return p.parseWhile()
	case p.at(token.FOR):
		return p.parseFor()
	case p.at(token.RETURN):
		return p.parseReturn()
	case p.at(token.BREAK):
		tok := p.advance()
		semi := p.expectPrevOnFail(token.SEMI)
		return &ast.Break{StmtBase: ast.StmtBase{Sp: tok.Span.Join(semi.Span)}}
	case p.at(token.CONTINUE):
		tok := p.advance()
		semi := p.expectPrevOnFail(token.SEMI)
		return &ast.Continue{StmtBase: ast.StmtBase{Sp: tok.Span.Join(semi.Span)}}
	case p.at(token.LBRACE):
		return p.parseBlock()
	case p.at(token.CONST), p.at(token.IDENT) && p.peek(1).Kind == token.COLON:
		return p.parseVarDeclStmt()
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseIf() *ast.If {
	start := p.expect(token.IF)
	cond := p.parseExpr()
	then := p.parseBlock()

	var elseStmt ast.Stmt
	sp := start.Span.Join(then.Span())
	if p.accept(token.ELSE) {
		if p.at(token.IF) {
			elseStmt = p.parseIf()
		} else {
			elseStmt = p.parseBlock()
		}
		sp = sp.Join(elseStmt.Span())
	}

	return &ast.If{StmtBase: ast.StmtBase{Sp: sp}, Cond: cond, Then: then, Else: elseStmt}
}

func (p *Parser) parseWhile() *ast.While {
	start := p.expect(token.WHILE)
	cond := p.parseExpr()
	body := p.parseBlock()
	return &ast.While{StmtBase: ast.StmtBase{Sp: start.Span.Join(body.Span())}, Cond: cond, Body: body}
}

func (p *Parser) parseFor() *ast.For {
	start := p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ast.Stmt
	if !p.at(token.SEMI) {
		if p.at(token.IDENT) && p.peek(1).Kind == token.COLON {
			init = p.parseVarDecl()
		} else {
			init = p.parseExprStmtNoSemi()
		}
	}
	p.expectPrevOnFail(token.SEMI)

	var cond ast.Expr
	if !p.at(token.SEMI) {
		cond = p.parseExpr()
	}
	p.expectPrevOnFail(token.SEMI)

	var post ast.Stmt
	if !p.at(token.RPAREN) {
		post = p.parseExprStmtNoSemi()
	}
	p.expectPrevOnFail(token.RPAREN)

	body := p.parseBlock()
	return &ast.For{StmtBase: ast.StmtBase{Sp: start.Span.Join(body.Span())}, Init: init, Cond: cond, Post: post, Body: body}
}

func (p *Parser) parseReturn() *ast.Return {
	start := p.expect(token.RETURN)
	var val ast.Expr
	sp := start.Span
	if !p.at(token.SEMI) {
		val = p.parseExpr()
		sp = sp.Join(val.Span())
	}
	semi := p.expectPrevOnFail(token.SEMI)
	return &ast.Return{StmtBase: ast.StmtBase{Sp: sp.Join(semi.Span)}, Value: val}
}

func (p *Parser) parseExprStmt() *ast.ExprStmt {
	x := p.parseExpr()
	semi := p.expectPrevOnFail(token.SEMI)
	return &ast.ExprStmt{StmtBase: ast.StmtBase{Sp: x.Span().Join(semi.Span)}, X: x}
}

// parseExprStmtNoSemi parses a bare expression statement without a
// trailing `;`, for the for-loop's init/post clauses.
func (p *Parser) parseExprStmtNoSemi() *ast.ExprStmt {
	x := p.parseExpr()
	return &ast.ExprStmt{StmtBase: ast.StmtBase{Sp: x.Span()}, X: x}
}
