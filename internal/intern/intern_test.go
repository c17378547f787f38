package intern

import (
	"testing"

	"github.com/mna/alder/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInterner() (*arena.Arena, *Interner) {
	a := arena.New(256)
	return a, New(a, BinaryCopy)
}

func TestInternBijection(t *testing.T) {
	_, in := newTestInterner()

	r1 := in.Intern([]byte("hello"), nil)
	r2 := in.Intern([]byte("hello"), nil)
	assert.Equal(t, r1.Index, r2.Index)
	assert.Equal(t, "hello", string(r1.Key))
	assert.Same(t, r1, r2)
}

func TestInternAssignsMonotonicIndices(t *testing.T) {
	_, in := newTestInterner()

	r1 := in.Intern([]byte("a"), nil)
	r2 := in.Intern([]byte("b"), nil)
	r3 := in.Intern([]byte("a"), nil) // repeat
	assert.Equal(t, 0, r1.Index)
	assert.Equal(t, 1, r2.Index)
	assert.Equal(t, 0, r3.Index)
	assert.Equal(t, 2, in.Count())
}

func TestPeekDoesNotInsert(t *testing.T) {
	_, in := newTestInterner()
	_, ok := in.Peek([]byte("missing"))
	assert.False(t, ok)
	assert.Equal(t, 0, in.Count())
}

func TestMetaNotUpdatedOnHit(t *testing.T) {
	_, in := newTestInterner()
	in.Intern([]byte("kw"), "first")
	r := in.Intern([]byte("kw"), "second")
	assert.Equal(t, "first", r.Meta)
}

func TestForEachIsInsertionOrder(t *testing.T) {
	_, in := newTestInterner()
	keys := []string{"z", "a", "m", "b"}
	for _, k := range keys {
		in.Intern([]byte(k), nil)
	}

	var got []string
	in.ForEach(func(r *Result) { got = append(got, string(r.Key)) })
	assert.Equal(t, keys, got)
}

func TestStringCopyAddsTerminatorWithoutExtendingKey(t *testing.T) {
	a := arena.New(64)
	buf := StringCopy(a, []byte("hi"))
	require.Equal(t, "hi", string(buf))
	assert.Equal(t, 2, len(buf))
	assert.Equal(t, 2, cap(buf))
}

func TestGetByIndexRoundTrips(t *testing.T) {
	_, in := newTestInterner()
	r := in.Intern([]byte("x"), nil)
	assert.Same(t, r, in.GetByIndex(r.Index))
}
