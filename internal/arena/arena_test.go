package arena

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocAlignment(t *testing.T) {
	a := New(64)
	for i := 1; i < 20; i++ {
		b := a.Alloc(i)
		require.NotNil(t, b)
		addr := uintptr(unsafe.Pointer(&b[0]))
		assert.Equal(t, uintptr(0), addr%maxAlign, "allocation %d misaligned", i)
	}
}

func TestBytesUsedMonotonic(t *testing.T) {
	a := New(64)
	prev := a.BytesUsed()
	for i := 0; i < 50; i++ {
		a.Alloc(7)
		cur := a.BytesUsed()
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestGrowthAcrossBlocks(t *testing.T) {
	a := New(16)
	// force many allocations larger than the first block to trigger growth
	for i := 0; i < 100; i++ {
		b := a.Alloc(32)
		require.NotNil(t, b)
		for j := range b {
			b[j] = byte(i)
		}
	}
	assert.Greater(t, a.BlockCount(), 1)
}

func TestResetKeepsEarliestBlock(t *testing.T) {
	a := New(16)
	for i := 0; i < 10; i++ {
		a.Alloc(32)
	}
	require.Greater(t, a.BlockCount(), 1)
	a.Reset()
	assert.Equal(t, 1, a.BlockCount())
	assert.Equal(t, 0, a.BytesUsed())
}

func TestAllocDoesNotCorruptPriorData(t *testing.T) {
	a := New(8)
	first := a.Alloc(4)
	copy(first, []byte{1, 2, 3, 4})
	// trigger growth with a second, larger allocation
	second := a.Alloc(64)
	copy(second, []byte{5, 6, 7, 8})
	assert.Equal(t, []byte{1, 2, 3, 4}, first)
	assert.Equal(t, []byte{5, 6, 7, 8}[:4], second[:4])
}

func TestDestroy(t *testing.T) {
	a := New(16)
	a.Alloc(4)
	a.Destroy()
	assert.Equal(t, 0, a.BlockCount())
}
