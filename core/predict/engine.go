// Package predict trains and serves the corridor travel-time model. The
// trained model is built once per process lifetime and is thereafter a
// read-only shared resource, safe for concurrent inference.
package predict

import (
	"fmt"
	"math"

	"github.com/urbanlogix/tripdesk/core/model"
)

// PredictionResult carries the predicted travel-time index and its derived
// presentation metrics, rounded for display stability.
type PredictionResult struct {
	TravelTimeIndex      float64 `json:"travel_time_index"`
	ImpliedCongestionPct float64 `json:"implied_congestion_pct"`
	ETAModifierPct       float64 `json:"eta_modifier_pct"`
}

// Predictor maps a feature payload to a prediction result. A persisted or
// mocked model satisfies the same interface as a freshly trained one.
type Predictor interface {
	Predict(payload model.FeaturePayload) (PredictionResult, error)
}

// SchemaError reports a payload missing a column the trained model expects.
// This is an integration defect: fail fast, do not recover.
type SchemaError struct {
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("feature payload missing model column %q", e.Column)
}

// Congestion interpolation control points. Values outside the range saturate
// flat at the end points; they are never extrapolated.
var (
	congestionIndex = []float64{1.0, 1.2, 1.4, 1.6}
	congestionPct   = []float64{30, 55, 80, 100}
)

// CongestionPct maps a travel-time index to an implied congestion percentage
// via piecewise-linear interpolation over the control points.
func CongestionPct(travelTimeIndex float64) float64 {
	xs, ys := congestionIndex, congestionPct
	if travelTimeIndex <= xs[0] {
		return ys[0]
	}
	last := len(xs) - 1
	if travelTimeIndex >= xs[last] {
		return ys[last]
	}
	for i := 1; i <= last; i++ {
		if travelTimeIndex <= xs[i] {
			frac := (travelTimeIndex - xs[i-1]) / (xs[i] - xs[i-1])
			return ys[i-1] + frac*(ys[i]-ys[i-1])
		}
	}
	return ys[last]
}

// ETAModifierPct converts a travel-time index to the extra ETA percentage.
func ETAModifierPct(travelTimeIndex float64) float64 {
	return math.Max(0, (travelTimeIndex-1.0)*55)
}

// newResult derives the presentation metrics from a raw index prediction.
func newResult(travelTimeIndex float64) PredictionResult {
	return PredictionResult{
		TravelTimeIndex:      round(travelTimeIndex, 3),
		ImpliedCongestionPct: round(CongestionPct(travelTimeIndex), 1),
		ETAModifierPct:       round(ETAModifierPct(travelTimeIndex), 1),
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
