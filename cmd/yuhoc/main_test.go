package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gongahkia/yuho/internal/transpile"
)

func TestRun_MissingFileFlag_ReturnsUsageExitCode(t *testing.T) {
	assert.Equal(t, 2, run([]string{}))
}

func TestRun_UnknownTarget_ReturnsUsageExitCode(t *testing.T) {
	tmp := filepath.Join(t.TempDir(), "empty.yh")
	require.NoError(t, os.WriteFile(tmp, []byte(""), 0o644))
	assert.Equal(t, 2, run([]string{"--file", tmp, "--target", "docx"}))
}

func TestRun_NonexistentFile_ReturnsFailureExitCode(t *testing.T) {
	assert.Equal(t, 1, run([]string{"--file", filepath.Join(t.TempDir(), "missing.yh")}))
}

func TestRun_UnparsableFlags_ReturnsUsageExitCode(t *testing.T) {
	assert.Equal(t, 2, run([]string{"--not-a-real-flag"}))
}

func TestRun_EmptyFileWithJSONTarget_WritesOutputAndReturnsSuccess(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "empty.yh")
	require.NoError(t, os.WriteFile(src, []byte(""), 0o644))

	code := run([]string{"--file", src, "--target", "json"})
	assert.Equal(t, 0, code)

	out, err := os.ReadFile(filepath.Join(dir, "empty.json"))
	require.NoError(t, err)
	assert.Contains(t, string(out), `"_type"`)
}

func TestOutputPath_ReplacesExtensionWithTargetExtension(t *testing.T) {
	got := outputPath("statutes/penal_code.yh", transpile.TargetJSON)
	assert.Equal(t, "statutes/penal_code.json", got)
}
