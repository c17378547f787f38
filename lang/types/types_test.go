package types_test

import (
	"testing"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/lang/lexer"
	"github.com/mna/alder/lang/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newStore lexes a trivial program so the keyword interner is seeded the
// same way a real compilation seeds it, then builds a Store from it.
func newStore(t *testing.T) *types.Store {
	t.Helper()
	a := arena.New(4096)
	lx := lexer.New([]byte("fn f() -> i32 { return 0; }"), a)
	require.NoError(t, lx.LexAll())
	return types.New(a, lx.Identifiers(), lx.Keywords())
}

func TestPrimitivesAreDistinct(t *testing.T) {
	s := newStore(t)
	prims := []*types.SemanticType{s.Void, s.I32, s.I64, s.F32, s.F64, s.Bool, s.Char, s.Str}
	for i := range prims {
		for j := range prims {
			if i == j {
				continue
			}
			assert.NotSame(t, prims[i], prims[j])
		}
	}
}

func TestPointerOfInternsByIdentity(t *testing.T) {
	s := newStore(t)
	p1 := s.PointerOf(s.I32)
	p2 := s.PointerOf(s.I32)
	assert.Same(t, p1, p2)
	assert.NotSame(t, p1, s.PointerOf(s.I64))
}

func TestArrayOfInternsBySizeAndKnownness(t *testing.T) {
	s := newStore(t)
	a1 := s.ArrayOf(s.I32, 4, true)
	a2 := s.ArrayOf(s.I32, 4, true)
	assert.Same(t, a1, a2)

	unsized := s.ArrayOf(s.I32, 0, false)
	assert.NotSame(t, a1, unsized, "size-known and size-unknown arrays of the same element must differ")

	diffSize := s.ArrayOf(s.I32, 8, true)
	assert.NotSame(t, a1, diffSize)
}

func TestFunctionOfInternsByReturnAndParams(t *testing.T) {
	s := newStore(t)
	f1 := s.FunctionOf(s.I64, []*types.SemanticType{s.I32, s.Bool})
	f2 := s.FunctionOf(s.I64, []*types.SemanticType{s.I32, s.Bool})
	assert.Same(t, f1, f2)

	// mutating the caller's slice afterward must not affect the interned
	// function type, since FunctionOf copies params.
	params := []*types.SemanticType{s.I32}
	f3 := s.FunctionOf(s.Void, params)
	params[0] = s.F64
	assert.Equal(t, types.I32, f3.Params[0].Primitive)

	diffParams := s.FunctionOf(s.I64, []*types.SemanticType{s.Bool, s.I32})
	assert.NotSame(t, f1, diffParams)
}

func TestLookupPrimitiveNameFindsSeededKeywords(t *testing.T) {
	a := arena.New(4096)
	lx := lexer.New([]byte("fn f() -> i32 { return 0; }"), a)
	require.NoError(t, lx.LexAll())
	s := types.New(a, lx.Identifiers(), lx.Keywords())

	r, ok := lx.Keywords().Peek([]byte("i32"))
	require.True(t, ok, "i32 must already be in this lexer's keyword table after lexing the program above")

	pt, ok := s.LookupPrimitiveName(r)
	require.True(t, ok)
	assert.Same(t, s.I32, pt)
}

func TestNumericRankOrdersByPromotionRule(t *testing.T) {
	s := newStore(t)
	assert.True(t, types.NumericRank(s.F64) > types.NumericRank(s.F32))
	assert.True(t, types.NumericRank(s.F32) > types.NumericRank(s.I64))
	assert.True(t, types.NumericRank(s.I64) > types.NumericRank(s.I32))
	assert.Equal(t, 0, types.NumericRank(s.Bool))
}

func TestStringRendersReadableTypeNames(t *testing.T) {
	s := newStore(t)
	assert.Equal(t, "i32", s.I32.String())
	assert.Equal(t, "*i32", s.PointerOf(s.I32).String())
	assert.Equal(t, "i32[4]", s.ArrayOf(s.I32, 4, true).String())
	assert.Equal(t, "i32[]", s.ArrayOf(s.I32, 0, false).String())

	fn := s.FunctionOf(s.I64, []*types.SemanticType{s.I32, s.Bool})
	assert.Equal(t, "fn(i32, bool) -> i64", fn.String())

	voidFn := s.FunctionOf(s.Void, nil)
	assert.Equal(t, "fn()", voidFn.String())
}
