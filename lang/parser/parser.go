// Package parser implements the recursive-descent, precedence-climbing
// parser of spec §4.6: one token of lookahead via peek, a "previous
// token" recovery pointer for errors that should point at the gap after
// the last good token, and a single fatal ParseError that stops parsing
// at the first mistake rather than attempting statement-level recovery.
package parser

import (
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/token"
)

// Parser consumes a token slice produced by the lexer and builds an AST.
// It is single-use: construct one per parse_program call.
type Parser struct {
	toks     []token.Token
	pos      int
	filename string

	err *ParseError
}

// New creates a Parser over toks (as returned by lexer.Lexer.Tokens),
// reporting filename in any diagnostic it produces.
func New(toks []token.Token, filename string) *Parser {
	return &Parser{toks: toks, filename: filename}
}

// errStop unwinds the recursive-descent call stack back to ParseProgram
// once p.err has been set; it carries no information of its own.
type errStop struct{}

func (p *Parser) fail(msg string, tok token.Token) {
	p.err = &ParseError{Message: msg, Token: tok, File: p.filename}
	panic(errStop{})
}

func (p *Parser) failPrevToken(msg string) {
	p.err = &ParseError{
		Message:      msg,
		Token:        p.cur(),
		PrevToken:    p.toks[max0(p.pos-1)],
		UsePrevToken: true,
		File:         p.filename,
	}
	panic(errStop{})
}

func max0(i int) int {
	if i < 0 {
		return 0
	}
	return i
}

// peek returns the token offset tokens ahead of the current position
// without consuming anything; peek(0) is the current token.
func (p *Parser) peek(offset int) token.Token {
	i := p.pos + offset
	if i >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[i]
}

func (p *Parser) cur() token.Token { return p.peek(0) }

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) at(kind token.Kind) bool { return p.cur().Kind == kind }

// accept consumes the current token and returns true if it has kind,
// otherwise leaves the position unchanged and returns false.
func (p *Parser) accept(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes and returns the current token if it has kind, otherwise
// fails with a ParseError.
func (p *Parser) expect(kind token.Kind) token.Token {
	if !p.at(kind) {
		p.fail(expectedMsg(kind.GoString(), p.cur()), p.cur())
	}
	return p.advance()
}

// expectPrevOnFail is like expect but, on failure, reports the error at
// the gap after the previous token rather than at the unexpected token.
// Used for closing delimiters like `;` and `)` (spec §4.6, §7).
func (p *Parser) expectPrevOnFail(kind token.Kind) token.Token {
	if !p.at(kind) {
		p.failPrevToken(expectedMsg(kind.GoString(), p.cur()))
	}
	return p.advance()
}

// ParseProgram parses the entire token stream into a Program. It returns
// either a non-nil *ast.Program and a nil error, or a nil Program and the
// single ParseError that stopped parsing.
func (p *Parser) ParseProgram() (prog *ast.Program, err *ParseError) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(errStop); !ok {
				panic(r)
			}
			prog, err = nil, p.err
		}
	}()

	var decls []ast.Decl
	for !p.at(token.EOF) {
		decls = append(decls, p.parseDeclaration())
	}
	return &ast.Program{Decls: decls}, nil
}

func (p *Parser) parseDeclaration() ast.Decl {
	if p.at(token.FN) {
		return p.parseFnDecl()
	}
	return p.parseVarDeclStmt()
}

func (p *Parser) parseFnDecl() *ast.FnDecl {
	start := p.expect(token.FN)
	nameTok := p.expect(token.IDENT)

	p.expect(token.LPAREN)
	var params []*ast.Param
	if !p.at(token.RPAREN) {
		params = append(params, p.parseParam())
		for p.accept(token.COMMA) {
			params = append(params, p.parseParam())
		}
	}
	p.expectPrevOnFail(token.RPAREN)

	var ret ast.TypeExpr
	if p.accept(token.ARROW) {
		ret = p.parseType()
	}

	body := p.parseBlock()

	return &ast.FnDecl{
		DeclBase:   ast.DeclBase{Sp: start.Span.Join(body.Span())},
		NameRef:    identRef(nameTok),
		Name:       nameTok.String(),
		Params:     params,
		ReturnType: ret,
		Body:       body,
	}
}

func (p *Parser) parseParam() *ast.Param {
	nameTok := p.expect(token.IDENT)
	p.expect(token.COLON)
	ty := p.parseType()
	return &ast.Param{
		Sp:       nameTok.Span.Join(ty.Span()),
		NameRef:  identRef(nameTok),
		Name:     nameTok.String(),
		TypeExpr: ty,
	}
}

// identRef extracts the identifier-interner dense index backing an IDENT
// token, or -1 for an anonymous slot (spec §3's Param.name_idx = -1).
func identRef(tok token.Token) int {
	if tok.Record.Interned == nil {
		return -1
	}
	return tok.Record.Interned.Index
}

// parseVarDeclStmt parses `VarDecl ";"`, used both at top level (as a
// Decl) and inside a block (as a Stmt); VarDecl implements both.
func (p *Parser) parseVarDeclStmt() *ast.VarDecl {
	decl := p.parseVarDecl()
	semi := p.expectPrevOnFail(token.SEMI)
	decl.StmtBase.Sp = decl.StmtBase.Sp.Join(semi.Span)
	return decl
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	start := p.cur()
	isConst := p.accept(token.CONST)
	nameTok := p.expect(token.IDENT)
	p.expect(token.COLON)
	ty := p.parseType()

	var init ast.Expr
	sp := start.Span.Join(ty.Span())
	if p.accept(token.ASSIGN) {
		if p.at(token.LBRACE) {
			init = p.parseInitList()
		} else {
			init = p.parseExpr()
		}
		sp = sp.Join(init.Span())
	}

	return &ast.VarDecl{
		StmtBase: ast.StmtBase{Sp: sp},
		NameRef:  identRef(nameTok),
		Name:     nameTok.String(),
		IsConst:  isConst,
		TypeExpr: ty,
		Init:     init,
	}
}
