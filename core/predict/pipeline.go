package predict

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/urbanlogix/tripdesk/core/model"
)

// pipeline is the fitted preprocessing stage: one-hot encoding for the
// categorical columns followed by standardisation of the numeric columns.
// Vector layout is one block per categorical feature (categories in sorted
// order), then the scaled numerics in schema order.
type pipeline struct {
	catFeatures []string
	numFeatures []string

	// categories[i] maps a category of catFeatures[i] to its slot within
	// the feature's one-hot block. Unknown categories at inference time
	// encode as an all-zero block.
	categories []map[string]int
	offsets    []int

	means []float64
	stds  []float64

	width int
}

// fitPipeline learns categories and numeric moments from the training rows.
func fitPipeline(rows []model.FeaturePayload) *pipeline {
	p := &pipeline{
		catFeatures: model.CategoricalFeatures,
		numFeatures: model.NumericFeatures,
	}

	p.categories = make([]map[string]int, len(p.catFeatures))
	p.offsets = make([]int, len(p.catFeatures))
	offset := 0
	for i, col := range p.catFeatures {
		seen := make(map[string]struct{})
		for _, r := range rows {
			seen[r.Categorical[col]] = struct{}{}
		}
		cats := make([]string, 0, len(seen))
		for c := range seen {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		idx := make(map[string]int, len(cats))
		for j, c := range cats {
			idx[c] = j
		}
		p.categories[i] = idx
		p.offsets[i] = offset
		offset += len(cats)
	}

	p.means = make([]float64, len(p.numFeatures))
	p.stds = make([]float64, len(p.numFeatures))
	col := make([]float64, len(rows))
	for i, name := range p.numFeatures {
		for j, r := range rows {
			col[j] = r.Numeric[name]
		}
		p.means[i] = stat.Mean(col, nil)
		sd := stat.StdDev(col, nil)
		if sd == 0 || len(rows) < 2 {
			sd = 1
		}
		p.stds[i] = sd
	}

	p.width = offset + len(p.numFeatures)
	return p
}

// transform projects a payload onto the fitted vector layout. Every schema
// column must be present; a missing column is a *SchemaError.
func (p *pipeline) transform(payload model.FeaturePayload) ([]float64, error) {
	vec := make([]float64, p.width)
	for i, col := range p.catFeatures {
		v, ok := payload.Categorical[col]
		if !ok {
			return nil, &SchemaError{Column: col}
		}
		if slot, known := p.categories[i][v]; known {
			vec[p.offsets[i]+slot] = 1
		}
		// Unseen categories stay a zero block.
	}
	base := p.width - len(p.numFeatures)
	for i, col := range p.numFeatures {
		v, ok := payload.Numeric[col]
		if !ok {
			return nil, &SchemaError{Column: col}
		}
		vec[base+i] = (v - p.means[i]) / p.stds[i]
	}
	return vec, nil
}
