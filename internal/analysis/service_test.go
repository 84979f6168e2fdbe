package analysis

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeFile_MissingFile_ReturnsFileNotFoundError(t *testing.T) {
	result := AnalyzeFile(filepath.Join(t.TempDir(), "does-not-exist.yh"), DefaultOptions())
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "parse", result.Errors[0].Stage)
	assert.Nil(t, result.Tree)
	assert.NotEmpty(t, result.RunID)
	assert.False(t, result.IsValid())
}

func TestAnalyzeSource_EmptySource_ProducesEmptyModule(t *testing.T) {
	result := AnalyzeSource("", "empty.yh", DefaultOptions())
	require.NotNil(t, result.Tree)
	assert.Empty(t, result.Errors)
	require.NotNil(t, result.ASTSummary)
	assert.Equal(t, 0, result.ASTSummary.Statutes)
	assert.GreaterOrEqual(t, result.TotalDurationMS, 0.0)
}

func TestAnalyzeSource_SemanticSkipped_WhenOptionDisabled(t *testing.T) {
	opts := DefaultOptions()
	opts.RunSemantic = false
	result := AnalyzeSource("", "empty.yh", opts)
	assert.Nil(t, result.SemanticSummary)
}

func TestDefaultOptions_EnablesSemanticButNotOptimizer(t *testing.T) {
	opts := DefaultOptions()
	assert.True(t, opts.RunSemantic)
	assert.False(t, opts.RunOptimizer)
}

func TestAnalysisResult_IsValid_FalseWhenSemanticHasErrors(t *testing.T) {
	result := &AnalysisResult{
		Tree:            nil,
		SemanticSummary: &SemanticSummary{Errors: 1},
	}
	assert.False(t, result.IsValid())
}

func TestSemanticSummary_HasErrors_FalseWhenOnlyWarnings(t *testing.T) {
	s := SemanticSummary{Warnings: 3}
	assert.False(t, s.HasErrors())
}
