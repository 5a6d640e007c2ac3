package metrics

import coremetrics "github.com/urbanlogix/tripdesk/core/metrics"

// MultiSink fans trip decisions out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordTripResult forwards the events to all sinks, returning the first
// error encountered.
func (m *MultiSink) RecordTripResult(events []coremetrics.TripEvent) error {
	for _, s := range m.Sinks {
		if err := s.RecordTripResult(events); err != nil {
			return err
		}
	}
	return nil
}
