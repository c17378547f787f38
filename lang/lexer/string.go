package lexer

import (
	"strings"

	"github.com/mna/alder/lang/token"
)

// escapes maps the fixed escape-sequence letter set from spec §4.5 to the
// byte it decodes to.
var escapes = map[byte]byte{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
	'0':  0,
}

// decodeEscape consumes a backslash escape (the leading backslash must
// already be consumed) and reports the decoded byte and whether the escape
// was recognized.
func (lx *Lexer) decodeEscape() (byte, bool) {
	if lx.atEOF {
		return 0, false
	}
	b, ok := escapes[lx.cur]
	if !ok {
		return 0, false
	}
	lx.advance()
	return b, true
}

// scanString tokenizes a "..." string literal. An unterminated string (EOF
// or a raw newline before the closing quote) yields an UNKNOWN token whose
// span starts at the opening quote, per spec §4.5.
func (lx *Lexer) scanString(startLine, startCol, startOff int) token.Token {
	lx.advance() // opening '"'

	var sb strings.Builder
	for {
		if lx.atEOF || lx.cur == '\n' {
			return token.Token{Kind: token.UNKNOWN, Slice: lx.src[startOff:lx.off], Span: lx.span(startLine, startCol)}
		}
		if lx.cur == '"' {
			lx.advance()
			break
		}
		if lx.cur == '\\' {
			lx.advance()
			b, ok := lx.decodeEscape()
			if !ok {
				return token.Token{Kind: token.UNKNOWN, Slice: lx.src[startOff:lx.off], Span: lx.span(startLine, startCol)}
			}
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte(lx.cur)
		lx.advance()
	}

	decoded := []byte(sb.String())
	r := lx.strings.Intern(decoded, nil)
	return token.Token{
		Kind:   token.STRING,
		Slice:  lx.src[startOff:lx.off],
		Span:   lx.span(startLine, startCol),
		Record: token.Record{Interned: r},
	}
}

// scanChar tokenizes a 'x' or '\e' character literal, decoding it to a
// single code point carried directly in the token's Record (no interner
// involved, per spec §3). A malformed literal (not exactly one character
// or escape between the quotes, or unterminated) yields UNKNOWN.
func (lx *Lexer) scanChar(startLine, startCol, startOff int) token.Token {
	lx.advance() // opening '\''

	unknown := func() token.Token {
		return token.Token{Kind: token.UNKNOWN, Slice: lx.src[startOff:lx.off], Span: lx.span(startLine, startCol)}
	}

	if lx.atEOF || lx.cur == '\n' {
		return unknown()
	}

	var cp rune
	if lx.cur == '\\' {
		lx.advance()
		b, ok := lx.decodeEscape()
		if !ok {
			return unknown()
		}
		cp = rune(b)
	} else if lx.cur == '\'' {
		// empty char literal, e.g. ''
		return unknown()
	} else {
		cp = rune(lx.cur)
		lx.advance()
	}

	if lx.atEOF || lx.cur != '\'' {
		return unknown()
	}
	lx.advance() // closing '\''

	return token.Token{
		Kind:  token.CHARLIT,
		Slice: lx.src[startOff:lx.off],
		Span:  lx.span(startLine, startCol),
		Record: token.Record{
			CodePoint:    cp,
			HasCodePoint: true,
		},
	}
}
