package trip

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urbanlogix/tripdesk/core/feature"
	"github.com/urbanlogix/tripdesk/core/metrics"
	"github.com/urbanlogix/tripdesk/core/model"
	"github.com/urbanlogix/tripdesk/core/predict"
	"github.com/urbanlogix/tripdesk/core/rules"
)

type fakePredictor struct {
	calls    int
	payloads []model.FeaturePayload
	indices  map[string]float64
}

func (f *fakePredictor) Predict(p model.FeaturePayload) (predict.PredictionResult, error) {
	f.calls++
	f.payloads = append(f.payloads, p)
	idx := 1.0
	if v, ok := f.indices[p.Categorical[model.FeatArea]]; ok {
		idx = v
	}
	return predict.PredictionResult{
		TravelTimeIndex:      idx,
		ImpliedCongestionPct: predict.CongestionPct(idx),
	}, nil
}

type fakeSink struct {
	events []metrics.TripEvent
}

func (f *fakeSink) RecordTripResult(events []metrics.TripEvent) error {
	f.events = append(f.events, events...)
	return nil
}

func testCorpus() []model.CorridorSnapshot {
	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	return []model.CorridorSnapshot{
		{Area: "Hebbal", Road: "Hebbal Flyover", Date: base,
			AverageSpeed: 28, TrafficVolume: 42000, IncidentReports: 3, Weather: "Clear", Roadwork: "No"},
		{Area: "Hebbal", Road: "Hebbal Flyover", Date: base.AddDate(0, 0, 1),
			AverageSpeed: 26, TrafficVolume: 44000, IncidentReports: 2, Weather: "Clear", Roadwork: "No"},
		{Area: "Whitefield", Road: "ITPL Main Road", Date: base,
			AverageSpeed: 22, TrafficVolume: 51000, IncidentReports: 5, Weather: "Rain", Roadwork: "Yes"},
	}
}

func newTestComposer(t *testing.T, p predict.Predictor, sink metrics.Sink) *Composer {
	t.Helper()
	reg, err := rules.NewRegistry(rules.BengaluruRules())
	require.NoError(t, err)
	c, err := NewComposer(
		rules.NewEngine(reg),
		feature.NewBuilder(testCorpus()),
		p,
		nil, nil,
		NewCostEstimator(DefaultRates()),
		nil,
		sink,
	)
	require.NoError(t, err)
	return c
}

func baseRequest() PlanRequest {
	return PlanRequest{
		StartArea: "Hebbal", StartRoad: "Hebbal Flyover",
		DestArea: "Whitefield", DestRoad: "ITPL Main Road",
		VehicleType: model.VehicleMini,
		PlannedHour: 9,
		DayOfWeek:   1,
	}
}

func TestPlan_ComposesTrip(t *testing.T) {
	p := &fakePredictor{indices: map[string]float64{"Hebbal": 1.2, "Whitefield": 1.4}}
	sink := &fakeSink{}
	c := newTestComposer(t, p, sink)

	res, err := c.Plan(context.Background(), baseRequest())
	require.NoError(t, err)
	trip := res.Trip

	assert.False(t, trip.Blocked)
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, model.VehicleMini, trip.VehicleType)
	assert.Equal(t, model.PriorityStandard, trip.PriorityTier, "priority defaults to standard")
	assert.Greater(t, trip.DistanceKm, 0.0)
	assert.Greater(t, trip.DurationMinutes, 0.0)
	assert.NotEmpty(t, trip.DurationText)
	assert.Greater(t, trip.Cost, 0.0)
	assert.NotEmpty(t, trip.Path)
	assert.Equal(t, 67.5, trip.CongestionPct, "route index 1.3 maps through the congestion curve")
	assert.Equal(t, "Hebbal", trip.Start.Area)
	assert.Equal(t, "Whitefield", trip.Dest.Area)
	assert.Equal(t, 5, trip.Dest.Incidents)
	assert.NotEmpty(t, res.StartTrend)
	assert.NotEmpty(t, res.DestTrend)

	require.Len(t, sink.events, 1)
	assert.Equal(t, metrics.OutcomeComposed, sink.events[0].Outcome)
	assert.Equal(t, trip.Cost, sink.events[0].Cost)
}

func TestPlan_BlockedShortCircuits(t *testing.T) {
	p := &fakePredictor{}
	sink := &fakeSink{}
	c := newTestComposer(t, p, sink)

	req := baseRequest()
	req.VehicleType = model.VehicleHCV // tripped by the Outer Ring day curfew

	res, err := c.Plan(context.Background(), req)
	require.NoError(t, err)
	trip := res.Trip

	assert.True(t, trip.Blocked)
	require.NotEmpty(t, trip.BlockingRules)
	assert.Equal(t, "Outer Ring night entry", trip.BlockingRules[0].Name)
	assert.NotEmpty(t, trip.BlockingRules[0].Recommendation)
	assert.Zero(t, trip.Cost)
	if p.calls != 0 {
		t.Fatalf("predictor invoked %d times on a blocked trip", p.calls)
	}

	require.Len(t, sink.events, 1)
	assert.Equal(t, metrics.OutcomeBlocked, sink.events[0].Outcome)
}

func TestPlan_WindowEndHourIsPermitted(t *testing.T) {
	p := &fakePredictor{}
	c := newTestComposer(t, p, &fakeSink{})

	req := baseRequest()
	req.VehicleType = model.VehicleHCV
	req.PlannedHour = 22 // curfew runs [6,22)

	res, err := c.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.Trip.Blocked)
	assert.Equal(t, 2, p.calls)
}

func TestPlan_UnknownCorridorIsNotFound(t *testing.T) {
	sink := &fakeSink{}
	c := newTestComposer(t, &fakePredictor{}, sink)

	req := baseRequest()
	req.DestArea = "Jayanagar"
	req.DestRoad = "South End Circle"

	_, err := c.Plan(context.Background(), req)
	var notFound *feature.NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "Jayanagar", notFound.Area)

	require.Len(t, sink.events, 1)
	assert.Equal(t, metrics.OutcomeNoData, sink.events[0].Outcome)
}

func TestPlan_OverridesReachThePredictor(t *testing.T) {
	p := &fakePredictor{}
	c := newTestComposer(t, p, &fakeSink{})

	incidents, speed, volume := 9.0, 12.0, 60000.0
	req := baseRequest()
	req.Overrides = Overrides{
		IncidentReports: &incidents,
		StartSpeed:      &speed,
		DestVolume:      &volume,
	}

	_, err := c.Plan(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, p.payloads, 2)

	start, dest := p.payloads[0], p.payloads[1]
	assert.Equal(t, 9.0, start.Numeric[model.FeatIncidents])
	assert.Equal(t, 9.0, dest.Numeric[model.FeatIncidents], "incident overrides hit both endpoints")
	assert.Equal(t, 12.0, start.Numeric[model.FeatSpeed])
	assert.Equal(t, 60000.0, dest.Numeric[model.FeatVolume])
	assert.Equal(t, 22.0, dest.Numeric[model.FeatSpeed], "untouched fields keep snapshot values")
}

func TestPlan_SuggestsVehicleFromPayload(t *testing.T) {
	c := newTestComposer(t, &fakePredictor{}, &fakeSink{})

	req := baseRequest()
	req.VehicleType = ""
	req.PayloadTons = 5.0

	res, err := c.Plan(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, model.VehicleMHCV, res.Trip.VehicleType)
}

func TestPlan_RejectsBadInput(t *testing.T) {
	c := newTestComposer(t, &fakePredictor{}, &fakeSink{})

	req := baseRequest()
	req.PlannedHour = 24
	_, err := c.Plan(context.Background(), req)
	assert.Error(t, err)

	req = baseRequest()
	req.Priority = "bulk"
	_, err = c.Plan(context.Background(), req)
	assert.Error(t, err)
}

func TestNewComposer_RequiresCoreCollaborators(t *testing.T) {
	_, err := NewComposer(nil, nil, nil, nil, nil, CostEstimator{}, nil, nil)
	assert.Error(t, err)
}
