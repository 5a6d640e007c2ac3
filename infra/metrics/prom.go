package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/urbanlogix/tripdesk/core/metrics"
)

// PromSink records trip decisions in Prometheus metrics.
type PromSink struct {
	decisions *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	cost      *prometheus.HistogramVec
}

// NewPromSink registers trip metrics on the provided Prometheus registerer.
// If reg is nil, the default registerer is used. If the collectors are
// already registered, the existing ones are reused.
func NewPromSink(reg prometheus.Registerer) (*PromSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	decisions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "trip_decisions_total",
		Help: "Total number of trip decisions by outcome",
	}, []string{"outcome", "vehicle_type"})
	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trip_decision_latency_seconds",
		Help:    "Time spent composing one trip decision",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	cost := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "trip_cost_inr",
		Help:    "Estimated cost of composed trips",
		Buckets: prometheus.ExponentialBuckets(100, 2, 10),
	}, []string{"vehicle_type"})

	for i, c := range []prometheus.Collector{decisions, latency, cost} {
		if err := reg.Register(c); err != nil {
			are, ok := err.(prometheus.AlreadyRegisteredError)
			if !ok {
				return nil, err
			}
			switch i {
			case 0:
				decisions = are.ExistingCollector.(*prometheus.CounterVec)
			case 1:
				latency = are.ExistingCollector.(*prometheus.HistogramVec)
			case 2:
				cost = are.ExistingCollector.(*prometheus.HistogramVec)
			}
		}
	}
	return &PromSink{decisions: decisions, latency: latency, cost: cost}, nil
}

// RecordTripResult increments the counters for each decision.
func (s *PromSink) RecordTripResult(events []coremetrics.TripEvent) error {
	for _, e := range events {
		s.decisions.WithLabelValues(string(e.Outcome), e.VehicleType).Inc()
		s.latency.WithLabelValues(string(e.Outcome)).Observe(e.Latency.Seconds())
		if e.Outcome == coremetrics.OutcomeComposed {
			s.cost.WithLabelValues(e.VehicleType).Observe(e.Cost)
		}
	}
	return nil
}
