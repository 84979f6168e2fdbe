package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAnalysisConfig_DefaultsWhenNoEnvSet(t *testing.T) {
	for _, key := range []string{
		"YUHO_RUN_SEMANTIC", "YUHO_RUN_OPTIMIZER", "YUHO_FOLD_CONSTANTS",
		"YUHO_STRICT_FOLDING", "YUHO_JSONLD_BASE_URI", "YUHO_LATEX_TITLE",
		"YUHO_LATEX_AUTHOR", "YUHO_LATEX_MARGINS", "YUHO_JSON_INDENT",
		"YUHO_JSON_LOCATIONS", "YUHO_CONFIG_FILE",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadAnalysisConfig()
	assert.True(t, cfg.RunSemantic)
	assert.False(t, cfg.RunOptimizer)
	assert.True(t, cfg.FoldConstants)
	assert.Equal(t, "https://yuho.dev/id/", cfg.JSONLDBaseURI)
	assert.Equal(t, 2, cfg.JSONIndent)
}

func TestLoadAnalysisConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("YUHO_RUN_OPTIMIZER", "true")
	t.Setenv("YUHO_JSON_INDENT", "4")
	t.Setenv("YUHO_LATEX_TITLE", "Contract Law Digest")

	cfg := LoadAnalysisConfig()
	assert.True(t, cfg.RunOptimizer)
	assert.Equal(t, 4, cfg.JSONIndent)
	assert.Equal(t, "Contract Law Digest", cfg.LaTeXTitle)
}

func TestLoadAnalysisConfig_InvalidJSONIndent_KeepsDefault(t *testing.T) {
	t.Setenv("YUHO_JSON_INDENT", "not-a-number")
	cfg := LoadAnalysisConfig()
	assert.Equal(t, 2, cfg.JSONIndent)
}

func TestMergeYAMLFile_OverlaysOnlyPresentFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yuho.yaml")
	require.NoError(t, os.WriteFile(path, []byte("latex_title: \"Custom Title\"\njson_indent: 0\n"), 0o644))

	cfg := &AnalysisConfig{LaTeXTitle: "Default", LaTeXAuthor: "Default Author", JSONIndent: 2}
	require.NoError(t, cfg.mergeYAMLFile(path))
	assert.Equal(t, "Custom Title", cfg.LaTeXTitle)
	assert.Equal(t, "Default Author", cfg.LaTeXAuthor)
	assert.Equal(t, 0, cfg.JSONIndent)
}

func TestMergeYAMLFile_MissingFile_ReturnsError(t *testing.T) {
	cfg := &AnalysisConfig{}
	err := cfg.mergeYAMLFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseBool_FallsBackOnInvalidInput(t *testing.T) {
	assert.True(t, parseBool("not-a-bool", true))
	assert.False(t, parseBool("false", true))
	assert.True(t, parseBool("1", false))
}
