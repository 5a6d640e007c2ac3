// Package trip composes regulatory checks, corridor predictions, route
// geometry and vehicle economics into a single priced itinerary.
package trip

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/urbanlogix/tripdesk/core/feature"
	"github.com/urbanlogix/tripdesk/core/geo"
	"github.com/urbanlogix/tripdesk/core/logger"
	"github.com/urbanlogix/tripdesk/core/metrics"
	"github.com/urbanlogix/tripdesk/core/model"
	"github.com/urbanlogix/tripdesk/core/predict"
	"github.com/urbanlogix/tripdesk/core/rules"
)

// Overrides replace snapshot telemetry before inference. Nil fields keep the
// snapshot value. Incident overrides apply to both endpoints.
type Overrides struct {
	IncidentReports *float64
	StartVolume     *float64
	StartSpeed      *float64
	DestVolume      *float64
	DestSpeed       *float64
}

// PlanRequest describes one trip query.
type PlanRequest struct {
	StartArea   string
	StartRoad   string
	DestArea    string
	DestRoad    string
	VehicleType model.VehicleType // empty means suggest from payload
	PayloadTons float64
	Priority    model.PriorityTier
	PlannedHour int
	DayOfWeek   int
	Overrides   Overrides
}

// PlanResult is the composed trip plus the per-endpoint trend windows, a
// read-only side artifact for trend display.
type PlanResult struct {
	Trip       *model.Trip
	StartTrend []model.CorridorSnapshot
	DestTrend  []model.CorridorSnapshot
}

// Composer orchestrates a single synchronous decision chain: rule check,
// feature build, prediction, geometry, cost. All collaborators are read-only
// after construction, so one Composer serves concurrent queries.
type Composer struct {
	engine    *rules.Engine
	builder   *feature.Builder
	predictor predict.Predictor
	geocoder  geo.Geocoder
	routes    geo.RouteProvider
	estimator CostEstimator
	log       logger.Logger
	sink      metrics.Sink
}

// NewComposer wires the decision chain. Engine, builder and predictor are
// mandatory; a nil route provider falls back to geodesic interpolation, a
// nil logger or sink to no-ops.
func NewComposer(
	engine *rules.Engine,
	builder *feature.Builder,
	predictor predict.Predictor,
	geocoder geo.Geocoder,
	routes geo.RouteProvider,
	estimator CostEstimator,
	log logger.Logger,
	sink metrics.Sink,
) (*Composer, error) {
	if engine == nil || builder == nil || predictor == nil {
		return nil, fmt.Errorf("composer requires engine, builder and predictor")
	}
	if geocoder == nil {
		geocoder = geo.NewBengaluruGeocoder()
	}
	if routes == nil {
		routes = geo.GeodesicProvider{}
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Composer{
		engine:    engine,
		builder:   builder,
		predictor: predictor,
		geocoder:  geocoder,
		routes:    routes,
		estimator: estimator,
		log:       log,
		sink:      sink,
	}, nil
}

// Plan runs the decision chain for one trip query. Regulatory violations
// short-circuit before any prediction or cost work and come back as a
// blocked Trip, not an error. A corridor with no history returns
// *feature.NotFoundError; a schema mismatch returns *predict.SchemaError.
func (c *Composer) Plan(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	started := time.Now()

	vehicle := rules.ResolveVehicleType(req.VehicleType, req.PayloadTons)
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityStandard
	}
	if err := priority.Validate(); err != nil {
		return nil, err
	}

	startCtx := model.RouteContext{
		Area: req.StartArea, Road: req.StartRoad,
		VehicleType: vehicle, PlannedHour: req.PlannedHour, DayOfWeek: req.DayOfWeek,
	}
	destCtx := model.RouteContext{
		Area: req.DestArea, Road: req.DestRoad,
		VehicleType: vehicle, PlannedHour: req.PlannedHour, DayOfWeek: req.DayOfWeek,
	}
	if err := startCtx.Validate(); err != nil {
		return nil, err
	}

	trip := &model.Trip{
		ID:           uuid.New().String(),
		VehicleType:  vehicle,
		PriorityTier: priority,
	}

	if violated := c.engine.CheckAll(startCtx, destCtx); len(violated) > 0 {
		trip.Blocked = true
		trip.BlockingRules = violated
		c.log.Infof("trip %s blocked by %d rule(s)", trip.ID, len(violated))
		c.record(trip, req, metrics.OutcomeBlocked, started)
		return &PlanResult{Trip: trip}, nil
	}

	startFeat, err := c.builder.Build(req.StartArea, req.StartRoad, req.DayOfWeek)
	if err != nil {
		c.record(trip, req, metrics.OutcomeNoData, started)
		return nil, err
	}
	destFeat, err := c.builder.Build(req.DestArea, req.DestRoad, req.DayOfWeek)
	if err != nil {
		c.record(trip, req, metrics.OutcomeNoData, started)
		return nil, err
	}
	applyOverrides(startFeat, destFeat, req.Overrides)

	startPred, err := c.predictor.Predict(startFeat.Payload)
	if err != nil {
		return nil, err
	}
	destPred, err := c.predictor.Predict(destFeat.Payload)
	if err != nil {
		return nil, err
	}

	from := c.geocoder.Coords(req.StartArea)
	to := c.geocoder.Coords(req.DestArea)
	route := c.routes.Route(ctx, from, to)

	est := c.estimator.Estimate(EstimateInput{
		DistanceKm:  route.DistanceKm,
		StartSpeed:  startFeat.Snapshot.AverageSpeed,
		DestSpeed:   destFeat.Snapshot.AverageSpeed,
		StartIndex:  startPred.TravelTimeIndex,
		DestIndex:   destPred.TravelTimeIndex,
		VehicleType: vehicle,
		Priority:    priority,
		DepartHour:  req.PlannedHour,
	})

	trip.DistanceKm = route.DistanceKm
	trip.DurationMinutes = est.AdjustedMinutes
	trip.DurationText = model.DurationLabel(est.AdjustedMinutes)
	trip.BufferMinutes = est.BufferMinutes
	trip.ArrivalLabel = est.ArrivalLabel
	trip.Cost = est.Cost
	trip.CostBreakdown = model.CostBreakdown{
		DistanceCost:        est.DistanceCost,
		TimeCost:            est.TimeCost,
		SurchargeMultiplier: est.Multiplier,
	}
	trip.CongestionPct = math.Round(predict.CongestionPct(est.RouteIndex)*10) / 10
	trip.Start = outlook(req.StartArea, req.StartRoad, startFeat, startPred)
	trip.Dest = outlook(req.DestArea, req.DestRoad, destFeat, destPred)
	trip.Path = route.Points

	c.log.Debugw("trip composed", map[string]any{
		"trip_id":     trip.ID,
		"distance_km": trip.DistanceKm,
		"duration":    trip.DurationMinutes,
		"cost":        trip.Cost,
	})
	c.record(trip, req, metrics.OutcomeComposed, started)
	return &PlanResult{
		Trip:       trip,
		StartTrend: startFeat.Trend,
		DestTrend:  destFeat.Trend,
	}, nil
}

func outlook(area, road string, f *feature.Result, p predict.PredictionResult) model.CorridorOutlook {
	return model.CorridorOutlook{
		Area:            area,
		Road:            road,
		TravelTimeIndex: p.TravelTimeIndex,
		CongestionPct:   p.ImpliedCongestionPct,
		AverageSpeed:    math.Round(f.Snapshot.AverageSpeed*10) / 10,
		Incidents:       int(f.Snapshot.IncidentReports),
	}
}

func applyOverrides(start, dest *feature.Result, o Overrides) {
	if o.IncidentReports != nil {
		start.Payload.Numeric[model.FeatIncidents] = *o.IncidentReports
		dest.Payload.Numeric[model.FeatIncidents] = *o.IncidentReports
	}
	if o.StartVolume != nil {
		start.Payload.Numeric[model.FeatVolume] = *o.StartVolume
	}
	if o.StartSpeed != nil {
		start.Payload.Numeric[model.FeatSpeed] = *o.StartSpeed
	}
	if o.DestVolume != nil {
		dest.Payload.Numeric[model.FeatVolume] = *o.DestVolume
	}
	if o.DestSpeed != nil {
		dest.Payload.Numeric[model.FeatSpeed] = *o.DestSpeed
	}
}

func (c *Composer) record(t *model.Trip, req PlanRequest, outcome metrics.Outcome, started time.Time) {
	ev := metrics.TripEvent{
		TripID:      t.ID,
		StartArea:   req.StartArea,
		DestArea:    req.DestArea,
		VehicleType: string(t.VehicleType),
		Outcome:     outcome,
		Cost:        t.Cost,
		DurationMin: t.DurationMinutes,
		Latency:     time.Since(started),
		Timestamp:   started,
	}
	if outcome == metrics.OutcomeComposed {
		ev.TravelTimeIndex = (t.Start.TravelTimeIndex + t.Dest.TravelTimeIndex) / 2
	}
	if err := c.sink.RecordTripResult([]metrics.TripEvent{ev}); err != nil {
		c.log.Warnf("metrics sink: %v", err)
	}
}
