// Package lexer tokenizes a borrowed source buffer into a sequence of
// zero-copy tokens, per spec §4.5. The lexer never aborts on malformed
// input: invalid characters and unterminated literals become UNKNOWN
// tokens, and it is the parser's job to refuse those.
package lexer

import (
	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/internal/dynseq"
	"github.com/mna/alder/internal/intern"
	"github.com/mna/alder/lang/token"
)

// initialInternBuckets is not referenced: intern.New takes no size
// argument and starts each of the three interners at its own default
// bucket count.
const initialInternBuckets = 32

// Lexer produces a token sequence from a borrowed source buffer. It is
// single-threaded and consumes the buffer linearly; it is not safe for
// concurrent use.
type Lexer struct {
	src   []byte
	arena *arena.Arena

	keywords *intern.Interner
	idents   *intern.Interner
	strings  *intern.Interner

	tokens *dynseq.Seq[token.Token]

	off, roff  int // byte offsets: current char, read-ahead position
	line, col  int // position of the current character
	cur        byte
	atEOF      bool
}

// New creates a Lexer over src, a buffer borrowed for the lifetime of
// lexing. All interned copies (identifiers, string contents, keywords)
// live in a, which must outlive the returned tokens.
func New(src []byte, a *arena.Arena) *Lexer {
	lx := &Lexer{
		src:      src,
		arena:    a,
		keywords: intern.New(a, intern.StringCopy),
		idents:   intern.New(a, intern.StringCopy),
		strings:  intern.New(a, intern.BinaryCopy),
		tokens:   dynseq.NewArena[token.Token](a, len(src)/4+8),
		line:     1,
		col:      0,
	}
	for kw, kind := range token.Keywords {
		lx.keywords.Intern([]byte(kw), kind)
	}
	// col starts at 0 so this priming advance, which always increments
	// col once to load src[0] into cur, lands the first character at
	// column 1 rather than 2.
	lx.advance()
	return lx
}

// Keywords returns the keyword interner, mostly useful to tests and to the
// semantic analyser's primitive-name resolution.
func (lx *Lexer) Keywords() *intern.Interner { return lx.keywords }

// Identifiers returns the identifier interner.
func (lx *Lexer) Identifiers() *intern.Interner { return lx.idents }

// Strings returns the (unescaped) string-literal interner.
func (lx *Lexer) Strings() *intern.Interner { return lx.strings }

// Tokens returns every token produced so far, in source order.
func (lx *Lexer) Tokens() []token.Token { return lx.tokens.Slice() }

// LexAll tokenizes the entire source buffer, terminating with a single EOF
// token. The returned error is always nil: malformed source produces
// UNKNOWN tokens instead, and arena exhaustion is not reported here.
func (lx *Lexer) LexAll() error {
	for {
		tok := lx.scan()
		lx.tokens.PushValue(tok)
		if tok.Kind == token.EOF {
			return nil
		}
	}
}

func (lx *Lexer) peekByte() byte {
	if lx.roff < len(lx.src) {
		return lx.src[lx.roff]
	}
	return 0
}

func (lx *Lexer) advance() {
	if lx.cur == '\n' {
		lx.line++
		lx.col = 1
	} else if !lx.atEOF {
		lx.col++
	}

	if lx.roff >= len(lx.src) {
		lx.off = len(lx.src)
		lx.atEOF = true
		lx.cur = 0
		return
	}

	lx.off = lx.roff
	lx.cur = lx.src[lx.roff]
	lx.roff++
}

func (lx *Lexer) advanceIf(b byte) bool {
	if !lx.atEOF && lx.cur == b {
		lx.advance()
		return true
	}
	return false
}

func (lx *Lexer) pos() (line, col int) { return lx.line, lx.col }

func (lx *Lexer) span(startLine, startCol int) token.Span {
	return token.Span{StartLine: startLine, StartCol: startCol, EndLine: lx.line, EndCol: lx.col}
}

// scan produces the next token, skipping whitespace and comments first.
func (lx *Lexer) scan() token.Token {
	lx.skipWhitespaceAndComments()

	startLine, startCol := lx.pos()
	startOff := lx.off

	if lx.atEOF {
		return token.Token{Kind: token.EOF, Span: lx.span(startLine, startCol)}
	}

	switch {
	case isIdentStart(lx.cur):
		return lx.scanIdentOrKeyword(startLine, startCol, startOff)
	case isDigit(lx.cur):
		return lx.scanNumber(startLine, startCol, startOff)
	case lx.cur == '"':
		return lx.scanString(startLine, startCol, startOff)
	case lx.cur == '\'':
		return lx.scanChar(startLine, startCol, startOff)
	default:
		return lx.scanOperator(startLine, startCol, startOff)
	}
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		switch {
		case !lx.atEOF && isSpace(lx.cur):
			lx.advance()
		case !lx.atEOF && lx.cur == '/' && lx.peekByte() == '/':
			for !lx.atEOF && lx.cur != '\n' {
				lx.advance()
			}
		case !lx.atEOF && lx.cur == '/' && lx.peekByte() == '*':
			lx.advance() // '/'
			lx.advance() // '*'
			for !lx.atEOF && !(lx.cur == '*' && lx.peekByte() == '/') {
				lx.advance()
			}
			if !lx.atEOF {
				lx.advance() // '*'
				lx.advance() // '/'
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword(startLine, startCol, startOff int) token.Token {
	for !lx.atEOF && isIdentCont(lx.cur) {
		lx.advance()
	}
	lit := lx.src[startOff:lx.off]
	sp := lx.span(startLine, startCol)

	if len(lit) > 1 {
		if r, ok := lx.keywords.Peek(lit); ok {
			return token.Token{Kind: r.Meta.(token.Kind), Slice: lit, Span: sp, Record: token.Record{Interned: r}}
		}
	}

	r := lx.idents.Intern(lit, nil)
	return token.Token{Kind: token.IDENT, Slice: lit, Span: sp, Record: token.Record{Interned: r}}
}

func (lx *Lexer) scanOperator(startLine, startCol, startOff int) token.Token {
	cur := lx.cur
	lx.advance() // always make progress

	kind := token.UNKNOWN
	switch cur {
	case '+':
		kind = token.PLUS
		if lx.advanceIf('+') {
			kind = token.INC
		} else if lx.advanceIf('=') {
			kind = token.PLUSEQ
		}
	case '-':
		kind = token.MINUS
		if lx.advanceIf('-') {
			kind = token.DEC
		} else if lx.advanceIf('=') {
			kind = token.MINUSEQ
		} else if lx.advanceIf('>') {
			kind = token.ARROW
		}
	case '*':
		kind = token.STAR
		if lx.advanceIf('=') {
			kind = token.STAREQ
		}
	case '/':
		kind = token.SLASH
		if lx.advanceIf('=') {
			kind = token.SLASHEQ
		}
	case '%':
		kind = token.PERCENT
		if lx.advanceIf('=') {
			kind = token.PERCENTEQ
		}
	case '=':
		kind = token.ASSIGN
		if lx.advanceIf('=') {
			kind = token.EQ
		}
	case '!':
		kind = token.BANG
		if lx.advanceIf('=') {
			kind = token.NEQ
		}
	case '<':
		kind = token.LT
		if lx.advanceIf('=') {
			kind = token.LE
		}
	case '>':
		kind = token.GT
		if lx.advanceIf('=') {
			kind = token.GE
		}
	case '&':
		kind = token.AMP
		if lx.advanceIf('&') {
			kind = token.ANDAND
		}
	case '|':
		if lx.advanceIf('|') {
			kind = token.OROR
		}
	case '(':
		kind = token.LPAREN
	case ')':
		kind = token.RPAREN
	case '{':
		kind = token.LBRACE
	case '}':
		kind = token.RBRACE
	case '[':
		kind = token.LBRACK
	case ']':
		kind = token.RBRACK
	case ',':
		kind = token.COMMA
	case ';':
		kind = token.SEMI
	case ':':
		kind = token.COLON
	}

	return token.Token{Kind: kind, Slice: lx.src[startOff:lx.off], Span: lx.span(startLine, startCol)}
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\n' || b == '\r' }
func isIdentStart(b byte) bool {
	return b == '_' || 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}
func isIdentCont(b byte) bool { return isIdentStart(b) || isDigit(b) }
func isDigit(b byte) bool     { return '0' <= b && b <= '9' }
