package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gongahkia/yuho/internal/ast"
)

func TestSummarizeModule_CountsTopLevelShapeAndTotalNodes(t *testing.T) {
	statute := &ast.Statute{
		Section: "s1",
		Definitions: []*ast.DefinitionEntry{
			{Name: "threshold", Value: &ast.IntLit{Value: 10}},
		},
		Elements: []*ast.Element{
			{Role: ast.RoleActusReus, Name: "act", Description: &ast.StringLit{Value: "did a thing"}},
		},
		Penalty: &ast.Penalty{
			FineMax: &ast.Money{Currency: ast.CurrencyUSD, MinorUnits: 5000},
		},
		Illustrations: []*ast.Illustration{
			{Text: "A does X and is liable."},
		},
	}
	m := &ast.Module{Statutes: []*ast.Statute{statute}}

	summary := SummarizeModule(m)

	assert.Equal(t, 0, summary.Imports)
	assert.Equal(t, 0, summary.Structs)
	assert.Equal(t, 0, summary.Functions)
	assert.Equal(t, 1, summary.Statutes)
	assert.Equal(t, 0, summary.Variables)
	assert.Equal(t, 1, summary.Definitions)
	assert.Equal(t, 1, summary.Elements)
	assert.Equal(t, 1, summary.Penalties)
	assert.Equal(t, 1, summary.Illustrations)
	// module(1) + statute(1 + definition[1+IntLit(1)] + element[1+StringLit(1)] + penalty[1+FineMax(1)] + illustration(1))
	assert.Equal(t, 9, summary.TotalNodes)
}

func TestSummarizeModule_EmptyModule_CountsOnlyItself(t *testing.T) {
	summary := SummarizeModule(&ast.Module{})
	assert.Equal(t, 1, summary.TotalNodes)
	assert.Equal(t, 0, summary.Statutes)
}

func TestSummarizeModule_PenaltyAbsent_NotCountedAsPenalty(t *testing.T) {
	m := &ast.Module{Statutes: []*ast.Statute{{Section: "s2"}}}
	summary := SummarizeModule(m)
	assert.Equal(t, 0, summary.Penalties)
}
