package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotDayOfWeek_MondayIsZero(t *testing.T) {
	// 2024-01-01 was a Monday.
	s := CorridorSnapshot{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, 0, s.DayOfWeek())
	s.Date = s.Date.AddDate(0, 0, 6)
	assert.Equal(t, 6, s.DayOfWeek())
}

func TestSnapshotFeatures_CoversSchema(t *testing.T) {
	s := CorridorSnapshot{
		Area: "Hebbal", Road: "Hebbal Flyover",
		Date:          time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		TrafficVolume: 42000, AverageSpeed: 28.5, Weather: "Clear", Roadwork: "No",
	}
	p := s.Features(5)
	for _, col := range CategoricalFeatures {
		_, ok := p.Categorical[col]
		require.True(t, ok, "missing categorical %q", col)
	}
	for _, col := range NumericFeatures {
		_, ok := p.Numeric[col]
		require.True(t, ok, "missing numeric %q", col)
	}
	assert.Equal(t, 3.0, p.Numeric[FeatMonth])
	assert.Equal(t, 1.0, p.Numeric[FeatIsWeekend])
	assert.Equal(t, 5.0, p.Numeric[FeatDayOfWeek])

	p = s.Features(2)
	assert.Equal(t, 0.0, p.Numeric[FeatIsWeekend])
}
