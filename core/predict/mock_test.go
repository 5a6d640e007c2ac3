package predict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlogix/tripdesk/core/model"
)

func TestMockPredictor(t *testing.T) {
	s := model.CorridorSnapshot{
		Area: "Hebbal", Road: "Hebbal Flyover",
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	payload := s.Features(0)

	m := MockPredictor{Indices: map[string]float64{"Hebbal|Hebbal Flyover": 1.3}}
	res, err := m.Predict(payload)
	require.NoError(t, err)
	assert.Equal(t, 1.3, res.TravelTimeIndex)
	assert.Equal(t, 67.5, res.ImpliedCongestionPct)

	other := model.CorridorSnapshot{Area: "X", Road: "Y", Date: s.Date}.Features(0)
	res, err = m.Predict(other)
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.TravelTimeIndex, "default index")
}

func TestMockPredictor_ValidatesSchema(t *testing.T) {
	m := MockPredictor{}
	_, err := m.Predict(model.NewFeaturePayload())
	assert.Error(t, err)
}
