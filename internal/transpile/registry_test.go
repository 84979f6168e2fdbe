package transpile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTarget_AcceptsAliasesCaseInsensitively(t *testing.T) {
	for _, name := range []string{"JSON-LD", "json_ld", "jsonld", "En", "TEX", "mmd", "ALS"} {
		_, err := ParseTarget(name)
		assert.NoError(t, err, "expected %q to resolve to a known target", name)
	}
}

func TestParseTarget_UnknownName_ReturnsError(t *testing.T) {
	_, err := ParseTarget("docx")
	assert.Error(t, err)
}

func TestFileExtension_MatchesTarget(t *testing.T) {
	assert.Equal(t, ".json", TargetJSON.FileExtension())
	assert.Equal(t, ".jsonld", TargetJSONLD.FileExtension())
	assert.Equal(t, ".txt", TargetEnglish.FileExtension())
	assert.Equal(t, ".tex", TargetLaTeX.FileExtension())
	assert.Equal(t, ".mmd", TargetMermaid.FileExtension())
	assert.Equal(t, ".als", TargetAlloy.FileExtension())
}

func TestRegistry_GetReturnsEveryBuiltinTarget(t *testing.T) {
	Reset()
	r := Instance()
	for _, target := range []TranspileTarget{
		TargetJSON, TargetJSONLD, TargetEnglish, TargetLaTeX, TargetMermaid, TargetAlloy,
	} {
		tp, err := r.Get(target)
		require.NoError(t, err, "target %s should be registered", target)
		assert.Equal(t, target, tp.Target())
	}
}

func TestRegistry_Get_UnknownTarget_ReturnsError(t *testing.T) {
	Reset()
	_, err := Instance().Get(TranspileTarget("bogus"))
	assert.Error(t, err)
}

func TestRegistry_Unregister_RemovesFactory(t *testing.T) {
	Reset()
	r := Instance()
	r.Unregister(TargetAlloy)
	assert.False(t, r.IsRegistered(TargetAlloy))
	_, err := r.Get(TargetAlloy)
	assert.Error(t, err)
	Reset()
}

func TestRegistry_RegisteredTargets_IsSorted(t *testing.T) {
	Reset()
	targets := Instance().RegisteredTargets()
	require.Len(t, targets, 6)
	for i := 1; i < len(targets); i++ {
		assert.LessOrEqual(t, string(targets[i-1]), string(targets[i]))
	}
}

func TestRegistry_ClearCache_ReturnsFreshInstances(t *testing.T) {
	Reset()
	r := Instance()
	first, err := r.Get(TargetJSON)
	require.NoError(t, err)
	r.ClearCache()
	second, err := r.Get(TargetJSON)
	require.NoError(t, err)
	assert.NotSame(t, first, second, "ClearCache should drop memoized instances")
}
