package predict

import "github.com/urbanlogix/tripdesk/core/model"

// MockPredictor returns a fixed travel-time index per corridor, keyed by
// "area|road", falling back to a default index. It derives the presentation
// metrics exactly like a trained model, enabling deterministic tests without
// retraining.
type MockPredictor struct {
	Indices      map[string]float64
	DefaultIndex float64
}

// Predict returns the configured index for the payload's corridor.
func (m MockPredictor) Predict(payload model.FeaturePayload) (PredictionResult, error) {
	for _, col := range model.CategoricalFeatures {
		if _, ok := payload.Categorical[col]; !ok {
			return PredictionResult{}, &SchemaError{Column: col}
		}
	}
	for _, col := range model.NumericFeatures {
		if _, ok := payload.Numeric[col]; !ok {
			return PredictionResult{}, &SchemaError{Column: col}
		}
	}
	idx := m.DefaultIndex
	if idx == 0 {
		idx = 1.0
	}
	key := payload.Categorical[model.FeatArea] + "|" + payload.Categorical[model.FeatRoad]
	if m.Indices != nil {
		if v, ok := m.Indices[key]; ok {
			idx = v
		}
	}
	return newResult(idx), nil
}
