package sema

import (
	"testing"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/lexer"
	"github.com/mna/alder/lang/parser"
	"github.com/mna/alder/lang/token"
	"github.com/mna/alder/lang/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func check(t *testing.T, src string) (*ast.Program, []*TypeError) {
	t.Helper()
	a := arena.New(8192)
	lx := lexer.New([]byte(src), a)
	require.NoError(t, lx.LexAll())

	p := parser.New(lx.Tokens(), "test.ald")
	prog, perr := p.ParseProgram()
	require.Nil(t, perr, "unexpected parse error: %v", perr)

	store := types.New(a, lx.Identifiers(), lx.Keywords())
	ctx := NewContext(a, store, lx.Identifiers(), lx.Keywords(), "test.ald")
	diags := ctx.Check(prog)
	return prog, diags
}

func TestAssigningStringToI32IsTypeMismatch(t *testing.T) {
	_, diags := check(t, `x: i32 = "nope";`)
	require.Len(t, diags, 1)
	assert.Equal(t, TypeMismatch, diags[0].Kind)
}

func TestUndeclaredIdentifierIsReported(t *testing.T) {
	_, diags := check(t, "fn f() -> i64 { return y; }")
	require.Len(t, diags, 1)
	assert.Equal(t, Undeclared, diags[0].Kind)
}

func TestMatchingCallTypesCheckClean(t *testing.T) {
	_, diags := check(t, "fn add(a: i64, b: i64) -> i64 { return a + b; }\nx: i64 = add(1, 2);")
	assert.Empty(t, diags)
}

func TestEveryPrimitiveKeywordResolvesCleanly(t *testing.T) {
	_, diags := check(t, `a: i32 = 1;
b: i64 = 1;
c: f32 = 1.0;
d: f64 = 1.0;
e: bool = true;
g: char = 'x';
h: str = "s";`)
	assert.Empty(t, diags, "every base-type keyword must resolve through the primitive registry")
}

func TestResolvePrimitiveFallsBackToKindWithoutInternedName(t *testing.T) {
	a := arena.New(4096)
	lx := lexer.New([]byte("fn f() -> i32 { return 0; }"), a)
	require.NoError(t, lx.LexAll())
	store := types.New(a, lx.Identifiers(), lx.Keywords())
	ctx := NewContext(a, store, lx.Identifiers(), lx.Keywords(), "test.ald")

	// a PrimitiveTypeExpr built without going through the keyword
	// interner (Name left nil) must still resolve via the Kind switch.
	te := &ast.PrimitiveTypeExpr{Kind: token.I32}
	assert.Same(t, store.I32, ctx.resolvePrimitive(te))
}

func TestBoolArgumentPassedAsI32IsTypeMismatch(t *testing.T) {
	_, diags := check(t, "fn f(a: i32) -> void { return; }\nfn g() -> void { y: bool = true; f(y); return; }")
	require.NotEmpty(t, diags)
	var found bool
	for _, d := range diags {
		if d.Kind == TypeMismatch {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCallWithWrongArgCountIsReported(t *testing.T) {
	_, diags := check(t, "fn one(a: i32) -> i32 { return a; }\nx: i32 = one();")
	require.Len(t, diags, 1)
	assert.Equal(t, ArgCountMismatch, diags[0].Kind)
}

func TestIntegerConstantAdditionIsFolded(t *testing.T) {
	prog, diags := check(t, "fn f() -> i64 { return 1 + 2; }")
	require.Empty(t, diags)
	fn := prog.Decls[0].(*ast.FnDecl)
	ret := fn.Body.Stmts[0].(*ast.Return)
	assert.True(t, ret.Value.IsConstExpr())
	assert.Equal(t, int64(3), ret.Value.ConstValue().Int)
}

func TestI32WidensToI64OnAssignment(t *testing.T) {
	prog, diags := check(t, "x: i32 = 1;\ny: i64 = x;")
	require.Empty(t, diags)
	vd := prog.Decls[1].(*ast.VarDecl)
	_, isCast := vd.Init.(*ast.Cast)
	assert.True(t, isCast)
}

func TestArraySizeInferredFromInitializerList(t *testing.T) {
	prog, diags := check(t, "xs: i32[] = {1, 2, 3};")
	require.Empty(t, diags)
	vd := prog.Decls[0].(*ast.VarDecl)
	arr, ok := vd.TypeExpr.(*ast.ArrayTypeExpr)
	require.True(t, ok)
	require.NotNil(t, arr.Size)
	assert.Equal(t, int64(3), arr.Size.ConstValue().Int)
}

func TestArraySizeMismatchIsReported(t *testing.T) {
	_, diags := check(t, "xs: i32[2] = {1, 2, 3};")
	require.Len(t, diags, 1)
	assert.Equal(t, ArraySizeMismatch, diags[0].Kind)
}

func TestConstAssignmentIsRejected(t *testing.T) {
	_, diags := check(t, "fn f() -> void { const x: i32 = 1; x = 2; return; }")
	require.NotEmpty(t, diags)
	var found bool
	for _, d := range diags {
		if d.Kind == ConstAssign {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRedeclarationInSameScopeIsReported(t *testing.T) {
	_, diags := check(t, "fn f() -> void { x: i32 = 1; x: i32 = 2; return; }")
	require.Len(t, diags, 1)
	assert.Equal(t, Redeclaration, diags[0].Kind)
}
