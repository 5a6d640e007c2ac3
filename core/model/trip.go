package model

import (
	"fmt"
	"math"
)

// CostBreakdown itemises a trip cost.
type CostBreakdown struct {
	DistanceCost        float64 `json:"distance_cost"`
	TimeCost            float64 `json:"time_cost"`
	SurchargeMultiplier float64 `json:"surcharge_multiplier"`
}

// CorridorOutlook summarises the predicted state of one trip endpoint.
type CorridorOutlook struct {
	Area            string  `json:"area"`
	Road            string  `json:"road"`
	TravelTimeIndex float64 `json:"travel_time_index"`
	CongestionPct   float64 `json:"congestion_pct"`
	AverageSpeed    float64 `json:"avg_speed_kmh"`
	Incidents       int     `json:"incidents"`
}

// LatLng is a geographic point in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Trip is the final composed answer for a single query. A non-empty
// BlockingRules set means the trip is not permitted and the numeric fields
// are zero; this is a first-class result state, not an error.
type Trip struct {
	ID           string       `json:"id"`
	VehicleType  VehicleType  `json:"vehicle_type"`
	PriorityTier PriorityTier `json:"priority_tier"`

	Blocked       bool   `json:"blocked"`
	BlockingRules []Rule `json:"blocking_rules,omitempty"`

	DistanceKm      float64       `json:"distance_km"`
	DurationMinutes float64       `json:"duration_minutes"`
	DurationText    string        `json:"duration_label"`
	BufferMinutes   float64       `json:"buffer_minutes"`
	ArrivalLabel    string        `json:"arrival_label"`
	Cost            float64       `json:"cost"`
	CostBreakdown   CostBreakdown `json:"cost_breakdown"`
	CongestionPct   float64       `json:"congestion_pct"`

	Start CorridorOutlook `json:"start"`
	Dest  CorridorOutlook `json:"dest"`
	Path  []LatLng        `json:"path,omitempty"`
}

// DurationLabel renders a minute count as "1h 05m" or "12 min".
func DurationLabel(minutes float64) string {
	rounded := int(math.Round(minutes))
	h := rounded / 60
	m := rounded % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%d min", m)
}

// ArrivalLabel renders the arrival clock time for a departure hour and trip
// duration, wrapping past midnight.
func ArrivalLabel(departHour int, durationMinutes float64) string {
	total := departHour*60 + int(math.Round(durationMinutes))
	total %= 24 * 60
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
