package dash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndicatorStartsUnknown(t *testing.T) {
	var ind Indicator
	assert.Equal(t, StateUnknown, ind.State())
}

func TestIndicatorFlipsWithoutHysteresis(t *testing.T) {
	var ind Indicator

	ind.Observe(true)
	assert.Equal(t, StateOnline, ind.State())

	// A single failure flips it
	ind.Observe(false)
	assert.Equal(t, StateOffline, ind.State())

	// And a single success flips it back
	ind.Observe(true)
	assert.Equal(t, StateOnline, ind.State())
}

func TestIndicatorNeverReturnsToUnknown(t *testing.T) {
	var ind Indicator
	ind.Observe(false)
	ind.Observe(true)
	ind.Observe(false)
	assert.NotEqual(t, StateUnknown, ind.State())
}

func TestIndicatorStateString(t *testing.T) {
	tests := []struct {
		state  IndicatorState
		expect string
	}{
		{StateUnknown, "unknown"},
		{StateOnline, "online"},
		{StateOffline, "offline"},
		{IndicatorState(42), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, tt.state.String())
	}
}
