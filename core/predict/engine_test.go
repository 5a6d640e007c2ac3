package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCongestionPct_Interpolates(t *testing.T) {
	assert.InDelta(t, 30.0, CongestionPct(1.0), 1e-9)
	assert.InDelta(t, 55.0, CongestionPct(1.2), 1e-9)
	assert.InDelta(t, 67.5, CongestionPct(1.3), 1e-9)
	assert.InDelta(t, 80.0, CongestionPct(1.4), 1e-9)
	assert.InDelta(t, 100.0, CongestionPct(1.6), 1e-9)
}

func TestCongestionPct_SaturatesFlat(t *testing.T) {
	// Outside the control range the curve clamps, it never extrapolates.
	assert.Equal(t, 30.0, CongestionPct(0.5))
	assert.Equal(t, 30.0, CongestionPct(-1))
	assert.Equal(t, 100.0, CongestionPct(2.0))
	assert.Equal(t, 100.0, CongestionPct(10))
}

func TestETAModifierPct(t *testing.T) {
	assert.InDelta(t, 0.0, ETAModifierPct(1.0), 1e-9)
	assert.InDelta(t, 16.5, ETAModifierPct(1.3), 1e-9)
	assert.Equal(t, 0.0, ETAModifierPct(0.8), "never negative")
}

func TestNewResult_Rounding(t *testing.T) {
	r := newResult(1.23456)
	assert.Equal(t, 1.235, r.TravelTimeIndex)
	assert.Equal(t, 59.3, r.ImpliedCongestionPct)
	assert.Equal(t, 12.9, r.ETAModifierPct)
}
