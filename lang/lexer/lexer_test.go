package lexer

import (
	"testing"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	a := arena.New(4096)
	lx := New([]byte(src), a)
	require.NoError(t, lx.LexAll())
	return lx.Tokens()
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestEmptySourceYieldsOneEOF(t *testing.T) {
	toks := lexAll(t, "")
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestWhitespaceOnlySourceYieldsOneEOF(t *testing.T) {
	toks := lexAll(t, "   \n\t\r\n  ")
	require.Len(t, toks, 1)
	assert.Equal(t, token.EOF, toks[0].Kind)
}

func TestKeywordVsIdentifier(t *testing.T) {
	toks := lexAll(t, "if iffy")
	require.Len(t, toks, 3)
	assert.Equal(t, token.IF, toks[0].Kind)
	assert.Equal(t, token.IDENT, toks[1].Kind)
}

func TestFnMainReturnsTwelveTokens(t *testing.T) {
	toks := lexAll(t, "fn main() -> i64 { return 10; }")
	assert.Equal(t, []token.Kind{
		token.FN, token.IDENT, token.LPAREN, token.RPAREN, token.ARROW, token.I64,
		token.LBRACE, token.RETURN, token.INT, token.SEMI, token.RBRACE, token.EOF,
	}, kinds(toks))
}

func TestIntegerAndFloatLiterals(t *testing.T) {
	toks := lexAll(t, "123 1.5 1.")
	// "1." has no fractional digit, so only "1" is consumed as INT, and the
	// dot itself is not a recognized token in this grammar.
	require.Len(t, toks, 5)
	assert.Equal(t, token.INT, toks[0].Kind)
	assert.Equal(t, token.FLOAT, toks[1].Kind)
	assert.Equal(t, token.INT, toks[2].Kind)
	assert.Equal(t, token.UNKNOWN, toks[3].Kind)
	assert.Equal(t, token.EOF, toks[4].Kind)
}

func TestFloatExponentLiterals(t *testing.T) {
	toks := lexAll(t, "1.5e3 2E-2 3e+1 1e")
	// "1e" has no digit after the 'e', so the exponent is not consumed and
	// the bare 'e' lexes as its own identifier token.
	require.Len(t, toks, 6)
	assert.Equal(t, token.FLOAT, toks[0].Kind)
	assert.Equal(t, "1.5e3", string(toks[0].Slice))
	assert.Equal(t, token.FLOAT, toks[1].Kind)
	assert.Equal(t, "2E-2", string(toks[1].Slice))
	assert.Equal(t, token.FLOAT, toks[2].Kind)
	assert.Equal(t, "3e+1", string(toks[2].Slice))
	assert.Equal(t, token.INT, toks[3].Kind)
	assert.Equal(t, "1", string(toks[3].Slice))
	assert.Equal(t, token.IDENT, toks[4].Kind)
	assert.Equal(t, "e", string(toks[4].Slice))
}

func TestLineCommentSkipped(t *testing.T) {
	toks := lexAll(t, "x // a comment\ny")
	require.Len(t, toks, 3)
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, token.IDENT, toks[1].Kind)
	assert.Equal(t, 2, toks[1].Span.StartLine)
}

func TestBlockCommentSkipped(t *testing.T) {
	toks := lexAll(t, "x /* multi\nline */ y")
	require.Len(t, toks, 3)
	assert.Equal(t, token.IDENT, toks[0].Kind)
	assert.Equal(t, token.IDENT, toks[1].Kind)
}

func TestStringLiteralWithEscapes(t *testing.T) {
	toks := lexAll(t, `"hi\n\t"`)
	require.Len(t, toks, 2)
	require.Equal(t, token.STRING, toks[0].Kind)
	require.NotNil(t, toks[0].Record.Interned)
	assert.Equal(t, "hi\n\t", string(toks[0].Record.Interned.Key))
}

func TestUnterminatedStringYieldsUnknownAtOpeningQuote(t *testing.T) {
	toks := lexAll(t, `"abc`)
	require.Len(t, toks, 2)
	assert.Equal(t, token.UNKNOWN, toks[0].Kind)
	assert.Equal(t, 1, toks[0].Span.StartCol)
}

func TestCharLiteralDecodesEscape(t *testing.T) {
	toks := lexAll(t, `'\n'`)
	require.Len(t, toks, 2)
	require.Equal(t, token.CHARLIT, toks[0].Kind)
	assert.True(t, toks[0].Record.HasCodePoint)
	assert.Equal(t, rune('\n'), toks[0].Record.CodePoint)
}

func TestUnterminatedCharYieldsUnknown(t *testing.T) {
	toks := lexAll(t, "'u")
	require.Len(t, toks, 2)
	assert.Equal(t, token.UNKNOWN, toks[0].Kind)
}

func TestCompoundOperators(t *testing.T) {
	toks := lexAll(t, "+= -= *= /= %= == != <= >= && || ++ -- ->")
	assert.Equal(t, []token.Kind{
		token.PLUSEQ, token.MINUSEQ, token.STAREQ, token.SLASHEQ, token.PERCENTEQ,
		token.EQ, token.NEQ, token.LE, token.GE, token.ANDAND, token.OROR,
		token.INC, token.DEC, token.ARROW, token.EOF,
	}, kinds(toks))
}

func TestReLexingKeywordYieldsSameKind(t *testing.T) {
	toks1 := lexAll(t, "while")
	toks2 := lexAll(t, toks1[0].String())
	assert.Equal(t, toks1[0].Kind, toks2[0].Kind)
}

func TestSameIdentifierInternsToSameIndex(t *testing.T) {
	a := arena.New(4096)
	lx := New([]byte("foo bar foo"), a)
	require.NoError(t, lx.LexAll())
	toks := lx.Tokens()
	assert.Equal(t, toks[0].Record.Interned.Index, toks[2].Record.Interned.Index)
	assert.NotEqual(t, toks[0].Record.Interned.Index, toks[1].Record.Interned.Index)
}
