package parser

import (
	"testing"

	"github.com/mna/alder/internal/arena"
	"github.com/mna/alder/lang/ast"
	"github.com/mna/alder/lang/lexer"
	"github.com/mna/alder/lang/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseSrc(t *testing.T, src string) (*ast.Program, *ParseError) {
	t.Helper()
	a := arena.New(4096)
	lx := lexer.New([]byte(src), a)
	require.NoError(t, lx.LexAll())
	p := New(lx.Tokens(), "test.ald")
	return p.ParseProgram()
}

func TestFnMainParsesOneFnDeclWithReturn(t *testing.T) {
	prog, err := parseSrc(t, "fn main() -> i64 { return 10; }")
	require.Nil(t, err)
	require.Len(t, prog.Decls, 1)

	fn, ok := prog.Decls[0].(*ast.FnDecl)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name)
	require.Len(t, fn.Body.Stmts, 1)

	ret, ok := fn.Body.Stmts[0].(*ast.Return)
	require.True(t, ok)
	lit, ok := ret.Value.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, token.INT, lit.Kind)
	assert.Equal(t, int64(10), lit.ConstValue().Int)
}

func TestVarDeclWithStringInitializer(t *testing.T) {
	prog, err := parseSrc(t, `x: i32 = "string";`)
	require.Nil(t, err)
	require.Len(t, prog.Decls, 1)
	vd, ok := prog.Decls[0].(*ast.VarDecl)
	require.True(t, ok)
	assert.Equal(t, "x", vd.Name)
	_, ok = vd.Init.(*ast.Literal)
	assert.True(t, ok)
}

func TestCallWithArguments(t *testing.T) {
	prog, err := parseSrc(t, "fn add(a: i64, b: i64) -> i64 { return a + b; }\nx: i64 = add(10, 20);")
	require.Nil(t, err)
	require.Len(t, prog.Decls, 2)

	vd := prog.Decls[1].(*ast.VarDecl)
	call, ok := vd.Init.(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 2)
}

func TestPrecedenceMultiplicationBindsTighterThanAddition(t *testing.T) {
	prog, err := parseSrc(t, "fn f() -> i64 { return 1 + 2 * 3; }")
	require.Nil(t, err)
	fn := prog.Decls[0].(*ast.FnDecl)
	ret := fn.Body.Stmts[0].(*ast.Return)
	bin := ret.Value.(*ast.Binary)
	assert.Equal(t, token.PLUS, bin.Op)
	_, rightIsMul := bin.Right.(*ast.Binary)
	assert.True(t, rightIsMul)
	_, leftIsLit := bin.Left.(*ast.Literal)
	assert.True(t, leftIsLit)
}

func TestLeftAssociativeAdditionChain(t *testing.T) {
	prog, err := parseSrc(t, "fn f() -> i64 { return 1 - 2 - 3; }")
	require.Nil(t, err)
	fn := prog.Decls[0].(*ast.FnDecl)
	ret := fn.Body.Stmts[0].(*ast.Return)
	bin := ret.Value.(*ast.Binary)
	// (1 - 2) - 3: the outer node's left operand is itself a Binary.
	_, leftIsBinary := bin.Left.(*ast.Binary)
	assert.True(t, leftIsBinary)
	_, rightIsLit := bin.Right.(*ast.Literal)
	assert.True(t, rightIsLit)
}

func TestAssignmentRequiresLvalue(t *testing.T) {
	_, err := parseSrc(t, "fn f() -> i64 { 1 + 2 = 3; }")
	require.NotNil(t, err)
}

func TestPostfixIncrementIsNotAnLvalue(t *testing.T) {
	_, err := parseSrc(t, "fn f() -> i64 { x++ = 3; }")
	require.NotNil(t, err)
}

func TestInitializerListTrailingCommaRejected(t *testing.T) {
	_, err := parseSrc(t, "arr: i32[2] = {1, 2,};")
	require.NotNil(t, err)
}

func TestMissingSemicolonPointsAfterPreviousToken(t *testing.T) {
	_, err := parseSrc(t, "x: i32 = 1")
	require.NotNil(t, err)
	assert.True(t, err.UsePrevToken)
}

func TestFunctionDeclInsideBlockIsRejected(t *testing.T) {
	_, err := parseSrc(t, "fn f() -> i64 { fn g() -> i64 { return 0; } return 0; }")
	require.NotNil(t, err)
}

func TestIntegerOverflowRejected(t *testing.T) {
	_, err := parseSrc(t, "x: i64 = 99999999999999999999999;")
	require.NotNil(t, err)
}

func TestFloatLiteralWithExponentParsesValue(t *testing.T) {
	prog, err := parseSrc(t, "x: f64 = 1.5e3;")
	require.Nil(t, err)
	vd := prog.Decls[0].(*ast.VarDecl)
	lit := vd.Init.(*ast.Literal)
	assert.Equal(t, token.FLOAT, lit.Kind)
	assert.Equal(t, 1500.0, lit.ConstValue().Float)
}

func TestBoolLiteralTrue(t *testing.T) {
	prog, err := parseSrc(t, "fn inc(a: i32) -> i32 { return 0; }\nval: i32 = inc(true);")
	require.Nil(t, err)
	vd := prog.Decls[1].(*ast.VarDecl)
	call := vd.Init.(*ast.Call)
	lit := call.Args[0].(*ast.Literal)
	assert.Equal(t, token.TRUE, lit.Kind)
}

func TestFunctionTypeArrayElementInitializerList(t *testing.T) {
	prog, err := parseSrc(t, "fn dummy() -> i64 { return 0; }\narr: (fn(i64)->i64)[1] = {dummy};\nres: i64 = arr[0]();")
	require.Nil(t, err)
	require.Len(t, prog.Decls, 3)

	arr := prog.Decls[1].(*ast.VarDecl)
	_, ok := arr.TypeExpr.(*ast.ArrayTypeExpr)
	require.True(t, ok)

	res := prog.Decls[2].(*ast.VarDecl)
	call, ok := res.Init.(*ast.Call)
	require.True(t, ok)
	_, ok = call.Callee.(*ast.Subscript)
	assert.True(t, ok)
}

func TestElseIfChain(t *testing.T) {
	prog, err := parseSrc(t, `fn f() -> i64 {
		if 1 { return 1; } else if 2 { return 2; } else { return 3; }
	}`)
	require.Nil(t, err)
	fn := prog.Decls[0].(*ast.FnDecl)
	ifStmt := fn.Body.Stmts[0].(*ast.If)
	elseIf, ok := ifStmt.Else.(*ast.If)
	require.True(t, ok)
	_, ok = elseIf.Else.(*ast.Block)
	assert.True(t, ok)
}

func TestForLoopCreatesInitCondPost(t *testing.T) {
	prog, err := parseSrc(t, `fn f() -> i64 {
		for (i: i32 = 0; i < 10; i++) { }
		return 0;
	}`)
	require.Nil(t, err)
	fn := prog.Decls[0].(*ast.FnDecl)
	forStmt := fn.Body.Stmts[0].(*ast.For)
	assert.NotNil(t, forStmt.Init)
	assert.NotNil(t, forStmt.Cond)
	assert.NotNil(t, forStmt.Post)
}

func TestSpanCoversChildren(t *testing.T) {
	prog, err := parseSrc(t, "fn f() -> i64 { return 1 + 2; }")
	require.Nil(t, err)
	fn := prog.Decls[0].(*ast.FnDecl)
	ret := fn.Body.Stmts[0].(*ast.Return)
	bin := ret.Value.(*ast.Binary)
	assert.True(t, bin.Span().Contains(bin.Left.Span()))
	assert.True(t, bin.Span().Contains(bin.Right.Span()))
	assert.True(t, fn.Span().Contains(ret.Span()))
}
