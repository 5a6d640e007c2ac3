package predict

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlogix/tripdesk/core/model"
)

// syntheticCorpus builds a corpus where the travel-time index is a simple
// function of volume and speed, so a correctly trained model recovers the
// signal.
func syntheticCorpus(n int) []model.CorridorSnapshot {
	areas := []string{"Hebbal", "Whitefield", "Koramangala"}
	out := make([]model.CorridorSnapshot, n)
	for i := 0; i < n; i++ {
		volume := 20000 + float64(i%10)*4000
		speed := 45 - float64(i%7)*4
		out[i] = model.CorridorSnapshot{
			Area:            areas[i%len(areas)],
			Road:            "Main",
			Date:            time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			TrafficVolume:   volume,
			AverageSpeed:    speed,
			TravelTimeIndex: 1.0 + volume/200000 + (45-speed)/100,
			Weather:         "Clear",
			Roadwork:        "No",
		}
	}
	return out
}

func smallConfig() Config {
	return Config{Trees: 25, MaxDepth: 8, MinLeaf: 2, Seed: 42, Holdout: 0.2}
}

func TestTrain_Deterministic(t *testing.T) {
	corpus := syntheticCorpus(80)
	m1, err := Train(corpus, smallConfig())
	require.NoError(t, err)
	m2, err := Train(corpus, smallConfig())
	require.NoError(t, err)

	assert.Equal(t, m1.ValidationMAE(), m2.ValidationMAE())

	payload := corpus[3].Features(corpus[3].DayOfWeek())
	p1, err := m1.Predict(payload)
	require.NoError(t, err)
	p2, err := m2.Predict(payload)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestTrain_RecoversSignal(t *testing.T) {
	corpus := syntheticCorpus(120)
	m, err := Train(corpus, smallConfig())
	require.NoError(t, err)

	assert.Less(t, m.ValidationMAE(), 0.1, "validation MAE on a clean signal")

	// A saturated corridor must predict a higher index than a free one.
	busy := corpus[9]  // highest volume bucket
	quiet := corpus[0] // lowest volume bucket
	pBusy, err := m.Predict(busy.Features(busy.DayOfWeek()))
	require.NoError(t, err)
	pQuiet, err := m.Predict(quiet.Features(quiet.DayOfWeek()))
	require.NoError(t, err)
	assert.Greater(t, pBusy.TravelTimeIndex, pQuiet.TravelTimeIndex)
}

func TestTrain_RejectsTinyCorpus(t *testing.T) {
	_, err := Train(syntheticCorpus(3), smallConfig())
	assert.Error(t, err)
}

func TestModelPredict_SchemaMismatchFails(t *testing.T) {
	m, err := Train(syntheticCorpus(60), smallConfig())
	require.NoError(t, err)

	broken := model.NewFeaturePayload()
	broken.Categorical[model.FeatArea] = "Hebbal"
	_, err = m.Predict(broken)
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
}

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()
	assert.Equal(t, 220, cfg.Trees)
	assert.Equal(t, 12, cfg.MaxDepth)
	assert.Equal(t, 4, cfg.MinLeaf)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 0.2, cfg.Holdout)
}

func TestConfig_Validate(t *testing.T) {
	bad := Config{Trees: 10, MaxDepth: 5, MinLeaf: 1, Holdout: 1.5, Seed: 1}
	assert.Error(t, bad.Validate())
}
