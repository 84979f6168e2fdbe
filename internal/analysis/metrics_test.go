package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordOutcome_DoesNotPanicForKnownOutcomes(t *testing.T) {
	assert.NotPanics(t, func() {
		recordOutcome("ok")
		recordOutcome("parse_error")
	})
}

func TestRecordStageDuration_DoesNotPanicForKnownStages(t *testing.T) {
	assert.NotPanics(t, func() {
		recordStageDuration("parse", 0.01)
		recordStageDuration("total", 0.05)
	})
}

func TestRegistry_HasCollectorsRegistered(t *testing.T) {
	families, err := Registry.Gather()
	assert.NoError(t, err)
	assert.NotEmpty(t, families)
}
