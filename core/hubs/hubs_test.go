package hubs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlogix/tripdesk/core/model"
)

func congestedRows(area string, n int, level float64) []model.CorridorSnapshot {
	rows := make([]model.CorridorSnapshot, n)
	for i := range rows {
		rows[i] = model.CorridorSnapshot{
			Area:            area,
			Road:            "Main",
			Date:            time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i),
			CongestionLevel: level,
		}
	}
	return rows
}

func TestRank_AreaMatchWins(t *testing.T) {
	scores := Rank(BengaluruHubs(), congestedRows("Whitefield", 10, 50), "Whitefield")
	require.Len(t, scores, 3)

	assert.Equal(t, "Whitefield EV Consolidation Yard", scores[0].Name)
	// Congestion at 50 is below the relief threshold: 50 + 15 + 22.5*0.4.
	assert.Equal(t, 74.0, scores[0].Score)

	for i := 1; i < len(scores); i++ {
		if scores[i].Score > scores[i-1].Score {
			t.Fatalf("scores not sorted descending at %d", i)
		}
	}
}

func TestRank_CongestionRelief(t *testing.T) {
	// Level 90 gives (90-60)*0.3 = 9 relief on every hub.
	scores := Rank(BengaluruHubs(), congestedRows("Hebbal", 5, 90), "Hebbal")
	for _, s := range scores {
		want := 50.0 + s.EmissionBenefitPct*0.4 + 9
		if s.Area == "Hebbal" {
			want += 15
		}
		assert.InDelta(t, want, s.Score, 0.05, "hub %s", s.Name)
	}
}

func TestRank_ReliefClamped(t *testing.T) {
	// Even absurd congestion caps relief at 30.
	hub := []MicroHub{{Name: "X", Area: "A", EmissionBenefitPct: 0}}
	scores := Rank(hub, congestedRows("A", 3, 1000), "A")
	assert.Equal(t, 95.0, scores[0].Score)
}

func TestTrailingCongestion_WindowAndFallback(t *testing.T) {
	// 40 rows, the first 10 at level 100, the trailing 30 at level 70: only
	// the window counts.
	rows := append(congestedRows("A", 10, 100), congestedRows("A", 30, 70)...)
	assert.InDelta(t, 70.0, trailingCongestion(rows, "A"), 1e-9)

	// Unknown area falls back to the whole table.
	assert.InDelta(t, 70.0, trailingCongestion(congestedRows("A", 5, 70), "B"), 1e-9)

	assert.Zero(t, trailingCongestion(nil, "A"))
}
