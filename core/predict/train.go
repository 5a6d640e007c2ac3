package predict

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/urbanlogix/tripdesk/core/model"
)

// Config holds the model hyperparameters. Defaults reproduce the tuned
// production settings.
type Config struct {
	Trees    int     `json:"trees"`
	MaxDepth int     `json:"max_depth"`
	MinLeaf  int     `json:"min_leaf"`
	Seed     int64   `json:"seed"`
	Holdout  float64 `json:"holdout"`
}

// SetDefaults applies the production hyperparameters to unset fields.
func (c *Config) SetDefaults() {
	if c.Trees == 0 {
		c.Trees = 220
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = 12
	}
	if c.MinLeaf == 0 {
		c.MinLeaf = 4
	}
	if c.Seed == 0 {
		c.Seed = 42
	}
	if c.Holdout == 0 {
		c.Holdout = 0.2
	}
}

// Validate checks the hyperparameters are usable.
func (c Config) Validate() error {
	if c.Trees <= 0 || c.MaxDepth <= 0 || c.MinLeaf <= 0 {
		return fmt.Errorf("trees, max_depth and min_leaf must be positive")
	}
	if c.Holdout <= 0 || c.Holdout >= 1 {
		return fmt.Errorf("holdout must be in (0,1)")
	}
	return nil
}

// Model is a trained travel-time predictor. It is immutable after Train
// returns and safe for concurrent use.
type Model struct {
	pipeline *pipeline
	forest   *forest
	mae      float64
}

// ValidationMAE returns the mean absolute error on the holdout split, the
// trained-model health signal.
func (m *Model) ValidationMAE() float64 { return m.mae }

// Predict projects the payload onto the trained pipeline and returns the
// predicted travel-time index with derived metrics. A payload missing any
// schema column fails with *SchemaError.
func (m *Model) Predict(payload model.FeaturePayload) (PredictionResult, error) {
	vec, err := m.pipeline.transform(payload)
	if err != nil {
		return PredictionResult{}, err
	}
	return newResult(m.forest.predict(vec)), nil
}

// Train fits the preprocessing pipeline and the regression forest against
// the Travel Time Index target. The split is deterministic for a given seed
// and holdout fraction.
func Train(snapshots []model.CorridorSnapshot, cfg Config) (*Model, error) {
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(snapshots) < 2*cfg.MinLeaf {
		return nil, fmt.Errorf("not enough training rows: %d", len(snapshots))
	}

	rows := make([]model.FeaturePayload, len(snapshots))
	targets := make([]float64, len(snapshots))
	for i, s := range snapshots {
		rows[i] = s.Features(s.DayOfWeek())
		targets[i] = s.TravelTimeIndex
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	perm := rng.Perm(len(rows))
	nVal := int(math.Round(float64(len(rows)) * cfg.Holdout))
	if nVal < 1 {
		nVal = 1
	}
	valIdx, trainIdx := perm[:nVal], perm[nVal:]

	trainRows := make([]model.FeaturePayload, len(trainIdx))
	trainTargets := make([]float64, len(trainIdx))
	for i, j := range trainIdx {
		trainRows[i] = rows[j]
		trainTargets[i] = targets[j]
	}

	pipe := fitPipeline(trainRows)
	xs := make([][]float64, len(trainRows))
	for i, r := range trainRows {
		vec, err := pipe.transform(r)
		if err != nil {
			return nil, err
		}
		xs[i] = vec
	}

	f := trainForest(xs, trainTargets, forestParams{
		trees:    cfg.Trees,
		maxDepth: cfg.MaxDepth,
		minLeaf:  cfg.MinLeaf,
		seed:     cfg.Seed,
	})
	m := &Model{pipeline: pipe, forest: f}

	absErrs := make([]float64, 0, len(valIdx))
	for _, j := range valIdx {
		vec, err := pipe.transform(rows[j])
		if err != nil {
			return nil, err
		}
		absErrs = append(absErrs, math.Abs(f.predict(vec)-targets[j]))
	}
	m.mae = stat.Mean(absErrs, nil)
	return m, nil
}
