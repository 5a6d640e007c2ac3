package metrics

import "time"

// Outcome classifies how a trip query ended.
type Outcome string

const (
	OutcomeComposed Outcome = "composed"
	OutcomeBlocked  Outcome = "blocked"
	OutcomeNoData   Outcome = "no_data"
)

// TripEvent represents one trip decision to be recorded.
type TripEvent struct {
	TripID          string
	StartArea       string
	DestArea        string
	VehicleType     string
	Outcome         Outcome
	TravelTimeIndex float64
	Cost            float64
	DurationMin     float64
	Latency         time.Duration
	Timestamp       time.Time
}

// Sink records trip decisions for observability purposes.
type Sink interface {
	RecordTripResult(events []TripEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordTripResult([]TripEvent) error { return nil }
