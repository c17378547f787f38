package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseTypeRangeIsContiguousAndCoversAllPrimitives(t *testing.T) {
	for name, kind := range map[string]Kind{
		"i32": I32, "i64": I64, "f32": F32, "f64": F64,
		"bool": BOOL, "char": CHAR, "str": STR, "void": VOID,
	} {
		assert.True(t, kind.IsBaseType(), "%s should be a base type", name)
	}
	assert.False(t, FN.IsBaseType())
	assert.False(t, IDENT.IsBaseType())
}

func TestIsAssignOp(t *testing.T) {
	for _, k := range []Kind{ASSIGN, PLUSEQ, MINUSEQ, STAREQ, SLASHEQ, PERCENTEQ} {
		assert.True(t, k.IsAssignOp())
	}
	assert.False(t, EQ.IsAssignOp())
	assert.False(t, PLUS.IsAssignOp())
}

func TestSpanJoinCoversBothOperands(t *testing.T) {
	a := Span{StartLine: 2, StartCol: 3, EndLine: 2, EndCol: 5}
	b := Span{StartLine: 2, StartCol: 10, EndLine: 3, EndCol: 1}
	j := a.Join(b)
	assert.True(t, j.Contains(a))
	assert.True(t, j.Contains(b))
	assert.Equal(t, Span{StartLine: 2, StartCol: 3, EndLine: 3, EndCol: 1}, j)
}

func TestSpanJoinIsOrderIndependent(t *testing.T) {
	a := Span{StartLine: 5, StartCol: 1, EndLine: 5, EndCol: 2}
	b := Span{StartLine: 1, StartCol: 1, EndLine: 1, EndCol: 2}
	assert.Equal(t, a.Join(b), b.Join(a))
}

func TestGoStringQuotesPunctuationOnly(t *testing.T) {
	assert.Equal(t, "';'", SEMI.GoString())
	assert.Equal(t, "identifier", IDENT.GoString())
	assert.Equal(t, "fn", FN.GoString())
}
