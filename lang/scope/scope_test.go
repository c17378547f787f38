package scope_test

import (
	"testing"

	"github.com/mna/alder/lang/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndLookupLocal(t *testing.T) {
	s := scope.New(4)
	sym := &scope.Symbol{NameRef: 1, Name: "x"}
	require.True(t, s.Define(1, sym))

	got, ok := s.LookupLocal(1)
	require.True(t, ok)
	assert.Same(t, sym, got)
}

func TestDefineRefusesRedeclarationInSameScope(t *testing.T) {
	s := scope.New(4)
	require.True(t, s.Define(2, &scope.Symbol{NameRef: 2, Name: "x"}))
	assert.False(t, s.Define(2, &scope.Symbol{NameRef: 2, Name: "x-again"}))
}

func TestDefineGrowsSlotsForOutOfRangeNameRef(t *testing.T) {
	s := scope.New(1)
	require.True(t, s.Define(50, &scope.Symbol{NameRef: 50, Name: "far"}))

	got, ok := s.LookupLocal(50)
	require.True(t, ok)
	assert.Equal(t, "far", got.Name)
}

func TestLookupLocalDoesNotSeeParentScope(t *testing.T) {
	parent := scope.New(4)
	require.True(t, parent.Define(3, &scope.Symbol{NameRef: 3, Name: "outer"}))
	child := parent.Child(4)

	_, ok := child.LookupLocal(3)
	assert.False(t, ok, "LookupLocal must not walk to the parent")
}

func TestLookupWalksParentChain(t *testing.T) {
	root := scope.New(4)
	require.True(t, root.Define(3, &scope.Symbol{NameRef: 3, Name: "outer"}))

	mid := root.Child(4)
	inner := mid.Child(4)
	require.True(t, inner.Define(7, &scope.Symbol{NameRef: 7, Name: "inner"}))

	sym, ok := inner.Lookup(3)
	require.True(t, ok)
	assert.Equal(t, "outer", sym.Name)

	sym, ok = inner.Lookup(7)
	require.True(t, ok)
	assert.Equal(t, "inner", sym.Name)

	_, ok = root.Lookup(7)
	assert.False(t, ok, "a symbol defined in a child scope must not be visible from its parent")
}

func TestChildShadowsParentDefinition(t *testing.T) {
	root := scope.New(4)
	require.True(t, root.Define(5, &scope.Symbol{NameRef: 5, Name: "outer"}))

	child := root.Child(4)
	require.True(t, child.Define(5, &scope.Symbol{NameRef: 5, Name: "inner"}))

	sym, ok := child.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "inner", sym.Name, "the nearer definition must win")

	sym, ok = root.Lookup(5)
	require.True(t, ok)
	assert.Equal(t, "outer", sym.Name, "the parent's own symbol must be unaffected by shadowing")
}

func TestDepthTracksNesting(t *testing.T) {
	root := scope.New(1)
	assert.Equal(t, 0, root.Depth())
	mid := root.Child(1)
	assert.Equal(t, 1, mid.Depth())
	inner := mid.Child(1)
	assert.Equal(t, 2, inner.Depth())
	assert.Same(t, mid, inner.Parent())
	assert.Nil(t, root.Parent())
}

func TestSymbolFlags(t *testing.T) {
	sym := &scope.Symbol{}
	assert.False(t, sym.HasFlag(scope.Const))
	sym.SetFlag(scope.Const)
	assert.True(t, sym.HasFlag(scope.Const))
	assert.False(t, sym.HasFlag(scope.Used))
	sym.SetFlag(scope.Used)
	assert.True(t, sym.HasFlag(scope.Used))
}

func TestLookupLocalOutOfRangeIsNotFound(t *testing.T) {
	s := scope.New(2)
	_, ok := s.LookupLocal(1000)
	assert.False(t, ok)
	_, ok = s.LookupLocal(-1)
	assert.False(t, ok)
}
