package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/internal/ast"
)

func intLit(v int64) *ast.IntLit    { return &ast.IntLit{Value: v} }
func boolLitV(v bool) *ast.BoolLit  { return &ast.BoolLit{Value: v} }
func strLit(v string) *ast.StringLit { return &ast.StringLit{Value: v} }

func TestFoldModule_IntBinaryAddition_FoldsToIntLit(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpAdd, Left: intLit(2), Right: intLit(3)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: bin},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	require.NotSame(t, m, folded)
	got, ok := folded.Variables[0].Value.(*ast.IntLit)
	require.True(t, ok, "expected folded value to be an IntLit, got %T", folded.Variables[0].Value)
	assert.Equal(t, int64(5), got.Value)
}

func TestFoldModule_NestedBinary_FoldsBottomUp(t *testing.T) {
	// (2 + 3) * 4 should fold all the way down to IntLit(20).
	inner := &ast.Binary{Op: ast.OpAdd, Left: intLit(2), Right: intLit(3)}
	outer := &ast.Binary{Op: ast.OpMul, Left: inner, Right: intLit(4)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: outer},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	got, ok := folded.Variables[0].Value.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(20), got.Value)
}

func TestFoldModule_BoolAnd_Folds(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpAnd, Left: boolLitV(true), Right: boolLitV(false)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinBool}, Value: bin},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	got, ok := folded.Variables[0].Value.(*ast.BoolLit)
	require.True(t, ok)
	assert.False(t, got.Value)
}

func TestFoldModule_StringConcat_Folds(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpAdd, Left: strLit("a"), Right: strLit("b")}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinString}, Value: bin},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	got, ok := folded.Variables[0].Value.(*ast.StringLit)
	require.True(t, ok)
	assert.Equal(t, "ab", got.Value)
}

func TestFoldModule_UnaryNeg_FoldsIntLit(t *testing.T) {
	un := &ast.Unary{Op: ast.OpNeg, Operand: intLit(7)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: un},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	got, ok := folded.Variables[0].Value.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(-7), got.Value)
}

func TestFoldModule_IntDivTruncatesTowardZero(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpDiv, Left: intLit(-7), Right: intLit(2)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: bin},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	got, ok := folded.Variables[0].Value.(*ast.IntLit)
	require.True(t, ok)
	assert.Equal(t, int64(-3), got.Value)
}

func TestFoldModule_DivisionByZero_NonStrict_LeftUnfolded(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpDiv, Left: intLit(5), Right: intLit(0)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: bin},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	_, stillBinary := folded.Variables[0].Value.(*ast.Binary)
	assert.True(t, stillBinary, "non-strict folder must leave division by zero unfolded")
}

func TestFoldModule_DivisionByZero_Strict_Panics(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpDiv, Left: intLit(5), Right: intLit(0)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: bin},
		},
	}
	assert.Panics(t, func() {
		NewConstantFolder(true).FoldModule(m)
	})
}

func TestFoldModule_NoConstantOperands_ReturnsSameModule(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpAdd, Left: &ast.Identifier{Name: "a"}, Right: &ast.Identifier{Name: "b"}}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: bin},
		},
	}
	folded := NewConstantFolder(false).FoldModule(m)
	assert.Same(t, m, folded, "a module with no foldable expressions should be returned unchanged")
}
