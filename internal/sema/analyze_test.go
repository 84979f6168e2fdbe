package sema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/internal/ast"
)

// boolFunctionModule builds a minimal module with one function
// `f(x: bool) -> bool` whose body is `return match x { <arms> }`, the
// smallest fixture that exercises Checker, CheckExhaustiveness,
// CheckReachability, and CheckOverlap all at once.
func boolFunctionModule(arms []*ast.MatchArm, ensureExhaustive bool) *ast.Module {
	fn := &ast.FunctionDef{
		Name: "f",
		Params: []*ast.ParamDef{
			{Name: "x", Type: &ast.BuiltinType{Kind: ast.BuiltinBool}},
		},
		ReturnType: &ast.BuiltinType{Kind: ast.BuiltinBool},
		Body: &ast.Block{
			Stmts: []ast.Stmt{
				&ast.Return{
					Value: &ast.Match{
						Scrutinee:            &ast.Identifier{Name: "x"},
						Arms:                 arms,
						EnsureExhaustiveness: ensureExhaustive,
					},
				},
			},
		},
	}
	return &ast.Module{
		Functions:    []*ast.FunctionDef{fn},
		FunctionDefs: map[string]*ast.FunctionDef{"f": fn},
		TypeDefs:     map[string]*ast.StructDef{},
		StatuteDefs:  map[string]*ast.Statute{},
	}
}

func boolArm(value, result bool) *ast.MatchArm {
	return &ast.MatchArm{
		Pattern: &ast.LiteralPattern{Value: &ast.BoolLit{Value: value}},
		Body:    &ast.BoolLit{Value: result},
	}
}

func wildcardArm(result bool) *ast.MatchArm {
	return &ast.MatchArm{
		Pattern: &ast.WildcardPattern{},
		Body:    &ast.BoolLit{Value: result},
	}
}

func TestAnalyze_ExhaustiveBoolMatch_NoExhaustivenessDiagnostic(t *testing.T) {
	m := boolFunctionModule([]*ast.MatchArm{boolArm(true, false), boolArm(false, true)}, true)
	_, diags := Analyze(m)
	for _, d := range diags {
		assert.NotContains(t, d.Message, "not exhaustive")
	}
}

func TestAnalyze_NonExhaustiveBoolMatch_ReportsError(t *testing.T) {
	m := boolFunctionModule([]*ast.MatchArm{boolArm(true, false)}, true)
	_, diags := Analyze(m)
	require.NotEmpty(t, diags)
	found := false
	for _, d := range diags {
		if d.Severity == SeverityError {
			found = true
		}
	}
	assert.True(t, found, "expected an error diagnostic for a non-exhaustive match, got %+v", diags)
}

func TestAnalyze_UnreachableArm_ReportsWarning(t *testing.T) {
	arms := []*ast.MatchArm{wildcardArm(true), boolArm(true, false)}
	m := boolFunctionModule(arms, false)
	_, diags := Analyze(m)
	var warnings []Diagnostic
	for _, d := range diags {
		if d.Severity == SeverityWarning {
			warnings = append(warnings, d)
		}
	}
	require.NotEmpty(t, warnings)
	assert.Contains(t, warnings[0].Message, "unreachable")
}

// TestCheckOverlap_StructPatternsWithCrossedWildcards covers the one
// genuine overlap-without-coverage shape: two struct patterns on the
// same constructor where each pattern's wildcard field plugs the other
// pattern's literal field, so neither fully covers the other yet some
// value (a=5, b=3) matches both.
func TestCheckOverlap_StructPatternsWithCrossedWildcards(t *testing.T) {
	first := &ast.StructPattern{
		Constructor: "Foo",
		Fields: []*ast.FieldPattern{
			{Name: "a", Pattern: &ast.WildcardPattern{}},
			{Name: "b", Pattern: &ast.LiteralPattern{Value: &ast.IntLit{Value: 3}}},
		},
	}
	second := &ast.StructPattern{
		Constructor: "Foo",
		Fields: []*ast.FieldPattern{
			{Name: "a", Pattern: &ast.LiteralPattern{Value: &ast.IntLit{Value: 5}}},
			{Name: "b", Pattern: &ast.WildcardPattern{}},
		},
	}
	match := &ast.Match{
		Arms: []*ast.MatchArm{
			{Pattern: first, Body: &ast.BoolLit{Value: true}},
			{Pattern: second, Body: &ast.BoolLit{Value: false}},
		},
	}
	m := &ast.Module{
		Variables: []*ast.VariableDecl{
			{Name: "v", Type: &ast.BuiltinType{Kind: ast.BuiltinBool}, Value: match},
		},
		TypeDefs:     map[string]*ast.StructDef{},
		FunctionDefs: map[string]*ast.FunctionDef{},
		StatuteDefs:  map[string]*ast.Statute{},
	}
	diags := CheckOverlap(m)
	require.NotEmpty(t, diags)
	assert.Contains(t, diags[0].Message, "overlaps with arm")
}

func TestUnreachableArmIndices_EmptyWhenNoWildcard(t *testing.T) {
	arms := []*ast.MatchArm{boolArm(true, false), boolArm(false, true)}
	match := &ast.Match{Scrutinee: &ast.Identifier{Name: "x"}, Arms: arms}
	assert.Empty(t, UnreachableArmIndices(match))
}

func TestUnreachableArmIndices_FlagsArmAfterWildcard(t *testing.T) {
	arms := []*ast.MatchArm{wildcardArm(true), boolArm(false, false)}
	match := &ast.Match{Scrutinee: &ast.Identifier{Name: "x"}, Arms: arms}
	assert.Equal(t, []int{1}, UnreachableArmIndices(match))
}
