package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/internal/ast"
)

func TestEliminate_ArmAfterWildcard_IsRemoved(t *testing.T) {
	match := &ast.Match{
		Scrutinee: &ast.Identifier{Name: "x"},
		Arms: []*ast.MatchArm{
			{Pattern: &ast.WildcardPattern{}, Body: boolLitV(true)},
			{Pattern: &ast.LiteralPattern{Value: boolLitV(false)}, Body: boolLitV(false)},
		},
	}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "v", Type: &ast.BuiltinType{Kind: ast.BuiltinBool}, Value: match},
		},
	}
	elim := NewDeadCodeEliminator(false)
	out := elim.Eliminate(m)

	// A single surviving wildcard arm collapses the match to its body.
	got, ok := out.Variables[0].Value.(*ast.BoolLit)
	require.True(t, ok, "expected the match to collapse to its sole catch-all arm's body, got %T", out.Variables[0].Value)
	assert.True(t, got.Value)
	assert.Equal(t, 1, elim.Stats.RemovedMatchArms)
	assert.Equal(t, 1, elim.Stats.SimplifiedMatches)
}

func TestEliminate_AlwaysTrueGuard_IsStripped(t *testing.T) {
	// A lone arm whose guard folds to constant TRUE becomes an
	// unconditional catch-all and the match collapses to its body.
	match := &ast.Match{
		Scrutinee: &ast.Identifier{Name: "x"},
		Arms: []*ast.MatchArm{
			{
				Pattern: &ast.WildcardPattern{},
				Guard:   &ast.Binary{Op: ast.OpEq, Left: intLit(1), Right: intLit(1)},
				Body:    boolLitV(true),
			},
		},
	}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "v", Type: &ast.BuiltinType{Kind: ast.BuiltinBool}, Value: match},
		},
	}
	elim := NewDeadCodeEliminator(false)
	out := elim.Eliminate(m)

	got, ok := out.Variables[0].Value.(*ast.BoolLit)
	require.True(t, ok, "expected the match to collapse once its guard folds to always-true, got %T", out.Variables[0].Value)
	assert.True(t, got.Value)
	assert.Equal(t, 1, elim.Stats.RemovedTrueGuards)
	assert.Equal(t, 1, elim.Stats.SimplifiedMatches)
}

func TestEliminate_MultipleDistinctArms_NoneRemoved(t *testing.T) {
	match := &ast.Match{
		Scrutinee: &ast.Identifier{Name: "x"},
		Arms: []*ast.MatchArm{
			{Pattern: &ast.LiteralPattern{Value: boolLitV(true)}, Body: intLit(1)},
			{Pattern: &ast.LiteralPattern{Value: boolLitV(false)}, Body: intLit(2)},
		},
	}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "v", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: match},
		},
	}
	elim := NewDeadCodeEliminator(false)
	out := elim.Eliminate(m)

	stillMatch, ok := out.Variables[0].Value.(*ast.Match)
	require.True(t, ok, "expected a fully reachable, non-catch-all match to survive, got %T", out.Variables[0].Value)
	assert.Len(t, stillMatch.Arms, 2)
	assert.Equal(t, 0, elim.Stats.TotalEliminations())
}

func TestEliminate_FoldConstantsFirst_FoldsSiblingExpressionsBeforeEliminating(t *testing.T) {
	bin := &ast.Binary{Op: ast.OpAdd, Left: intLit(2), Right: intLit(3)}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "a", Type: &ast.BuiltinType{Kind: ast.BuiltinInt}, Value: bin},
		},
	}

	foldedFirst := NewDeadCodeEliminator(true).Eliminate(m)
	got, ok := foldedFirst.Variables[0].Value.(*ast.IntLit)
	require.True(t, ok, "expected FoldConstantsFirst to fold the variable's binary expression, got %T", foldedFirst.Variables[0].Value)
	assert.Equal(t, int64(5), got.Value)

	notFolded := NewDeadCodeEliminator(false).Eliminate(m)
	_, stillBinary := notFolded.Variables[0].Value.(*ast.Binary)
	assert.True(t, stillBinary, "without FoldConstantsFirst the binary expression should be left alone")
}

func TestEliminationStats_TotalEliminations_SumsAllThreeCounters(t *testing.T) {
	stats := EliminationStats{RemovedMatchArms: 2, RemovedTrueGuards: 1, SimplifiedMatches: 1}
	assert.Equal(t, 4, stats.TotalEliminations())
}
