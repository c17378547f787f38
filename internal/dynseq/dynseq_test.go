package dynseq

import (
	"testing"

	"github.com/mna/alder/internal/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapBackedPushAndGet(t *testing.T) {
	s := New[int](0)
	for i := 0; i < 100; i++ {
		s.PushValue(i)
	}
	require.Equal(t, 100, s.Count())
	for i := 0; i < 100; i++ {
		assert.Equal(t, i, s.Get(i))
	}
}

func TestArenaBackedPushAndGet(t *testing.T) {
	a := arena.New(16)
	s := NewArena[int](a, 0)
	for i := 0; i < 200; i++ {
		s.PushValue(i * 2)
	}
	require.Equal(t, 200, s.Count())
	for i := 0; i < 200; i++ {
		assert.Equal(t, i*2, s.Get(i))
	}
}

func TestPushUninitThenSet(t *testing.T) {
	s := New[string](0)
	idx := s.PushUninit()
	s.Set(idx, "hello")
	assert.Equal(t, "hello", s.Get(idx))
}

func TestPop(t *testing.T) {
	s := New[int](0)
	s.PushValue(1)
	s.PushValue(2)
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Count())
}

func TestRemoveAtShiftsTail(t *testing.T) {
	s := New[int](0)
	for _, v := range []int{10, 20, 30, 40} {
		s.PushValue(v)
	}
	s.RemoveAt(1)
	assert.Equal(t, []int{10, 30, 40}, s.Slice())
}

func TestReserveIsIdempotentWhenAlreadyBigEnough(t *testing.T) {
	s := New[int](16)
	s.Reserve(4)
	assert.Equal(t, 16, s.Cap())
}
