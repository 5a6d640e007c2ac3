package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationLabel(t *testing.T) {
	assert.Equal(t, "12 min", DurationLabel(12.2))
	assert.Equal(t, "1h 05m", DurationLabel(65))
	assert.Equal(t, "2h 00m", DurationLabel(119.6))
}

func TestArrivalLabel_WrapsPastMidnight(t *testing.T) {
	assert.Equal(t, "10:30", ArrivalLabel(9, 90))
	assert.Equal(t, "01:00", ArrivalLabel(23, 120))
	assert.Equal(t, "00:00", ArrivalLabel(0, 0))
}

func TestVehicleTypeValidate(t *testing.T) {
	for _, vt := range VehicleTypes {
		assert.NoError(t, vt.Validate())
	}
	assert.Error(t, VehicleType("Scooter").Validate())
}

func TestPriorityTierWindows(t *testing.T) {
	assert.Equal(t, 240, PriorityStandard.WindowMinutes())
	assert.Equal(t, 120, PriorityExpress.WindowMinutes())
	assert.Equal(t, 480, PriorityNight.WindowMinutes())
	assert.Error(t, PriorityTier("teleport").Validate())
}
