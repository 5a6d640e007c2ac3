// Package feature projects historical corridor telemetry into model-ready
// feature records.
package feature

import (
	"fmt"

	"github.com/urbanlogix/tripdesk/core/model"
)

// TrendWindow is the number of most recent snapshots returned for trend
// display alongside a built payload.
const TrendWindow = 14

// NotFoundError reports that no historical rows exist for an (area, road)
// pair. Callers surface it as "insufficient data", not as a crash.
type NotFoundError struct {
	Area string
	Road string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no historical data for corridor %q / %q", e.Area, e.Road)
}

// Builder materialises feature payloads from a historical snapshot table.
// The table is read-only and shared; Builder is safe for concurrent use.
type Builder struct {
	snapshots []model.CorridorSnapshot
}

// NewBuilder wraps the given historical table. The slice is kept as-is; row
// order is the tie-break for snapshots sharing a timestamp.
func NewBuilder(snapshots []model.CorridorSnapshot) *Builder {
	return &Builder{snapshots: snapshots}
}

// Result carries the built payload, the snapshot it came from, and a short
// trailing window of the corridor for trend display.
type Result struct {
	Payload  model.FeaturePayload
	Snapshot model.CorridorSnapshot
	Trend    []model.CorridorSnapshot
}

// Build finds the latest snapshot for the corridor and projects it onto the
// model schema for the given travel day. Area and road are copied from the
// query so hypothetical corridors keep the requested identity. Returns
// *NotFoundError when the corridor has no history.
func (b *Builder) Build(area, road string, dayOfWeek int) (*Result, error) {
	var rows []model.CorridorSnapshot
	for _, s := range b.snapshots {
		if s.Area == area && s.Road == road {
			rows = append(rows, s)
		}
	}
	if len(rows) == 0 {
		return nil, &NotFoundError{Area: area, Road: road}
	}

	// Latest timestamp wins; on ties the later table row wins, which keeps
	// selection stable across runs.
	latest := 0
	for i := 1; i < len(rows); i++ {
		if !rows[i].Date.Before(rows[latest].Date) {
			latest = i
		}
	}
	snapshot := rows[latest]

	payload := snapshot.Features(dayOfWeek)
	payload.Categorical[model.FeatArea] = area
	payload.Categorical[model.FeatRoad] = road

	trend := rows
	if len(trend) > TrendWindow {
		trend = trend[len(trend)-TrendWindow:]
	}
	out := make([]model.CorridorSnapshot, len(trend))
	copy(out, trend)

	return &Result{Payload: payload, Snapshot: snapshot, Trend: out}, nil
}

// Areas returns the distinct area names present in the table, in first-seen
// order.
func (b *Builder) Areas() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range b.snapshots {
		if _, ok := seen[s.Area]; !ok {
			seen[s.Area] = struct{}{}
			out = append(out, s.Area)
		}
	}
	return out
}

// Roads returns the distinct roads recorded for an area, in first-seen order.
func (b *Builder) Roads(area string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range b.snapshots {
		if s.Area != area {
			continue
		}
		if _, ok := seen[s.Road]; !ok {
			seen[s.Road] = struct{}{}
			out = append(out, s.Road)
		}
	}
	return out
}
