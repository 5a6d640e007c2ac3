package trip

import (
	"math"

	"github.com/urbanlogix/tripdesk/core/model"
)

// RateTable holds the per-class and per-tier pricing data. It is
// configuration, not logic: substituting a table never touches the
// estimation algorithm.
type RateTable struct {
	PerKm      map[model.VehicleType]float64
	PerHour    map[model.VehicleType]float64
	TimeFactor map[model.VehicleType]float64
	Surcharge  map[model.PriorityTier]float64
}

// DefaultRates returns the Bengaluru fleet pricing table (INR).
func DefaultRates() RateTable {
	return RateTable{
		PerKm: map[model.VehicleType]float64{
			model.VehicleMini: 28, model.VehicleLCV: 42,
			model.VehicleMHCV: 58, model.VehicleHCV: 72,
		},
		PerHour: map[model.VehicleType]float64{
			model.VehicleMini: 320, model.VehicleLCV: 450,
			model.VehicleMHCV: 580, model.VehicleHCV: 720,
		},
		TimeFactor: map[model.VehicleType]float64{
			model.VehicleMini: 1.0, model.VehicleLCV: 1.08,
			model.VehicleMHCV: 1.18, model.VehicleHCV: 1.28,
		},
		Surcharge: map[model.PriorityTier]float64{
			model.PriorityStandard: 1.0,
			model.PriorityExpress:  1.2,
			model.PriorityNight:    0.9,
		},
	}
}

func (t RateTable) perKm(v model.VehicleType) float64 {
	if r, ok := t.PerKm[v]; ok {
		return r
	}
	return 40
}

func (t RateTable) perHour(v model.VehicleType) float64 {
	if r, ok := t.PerHour[v]; ok {
		return r
	}
	return 400
}

func (t RateTable) timeFactor(v model.VehicleType) float64 {
	if f, ok := t.TimeFactor[v]; ok {
		return f
	}
	return 1.0
}

func (t RateTable) surcharge(p model.PriorityTier) float64 {
	if s, ok := t.Surcharge[p]; ok {
		return s
	}
	return 1.0
}

// EstimateInput carries everything the cost algorithm consumes.
type EstimateInput struct {
	DistanceKm  float64
	StartSpeed  float64 // km/h, start corridor snapshot
	DestSpeed   float64 // km/h, destination corridor snapshot
	StartIndex  float64 // start travel-time index
	DestIndex   float64 // destination travel-time index
	VehicleType model.VehicleType
	Priority    model.PriorityTier
	DepartHour  int
}

// Estimate is the priced itinerary.
type Estimate struct {
	AvgSpeedKmh     float64
	RouteIndex      float64
	BaseMinutes     float64
	AdjustedMinutes float64
	BufferMinutes   float64
	DistanceCost    float64
	TimeCost        float64
	Multiplier      float64
	Cost            float64
	ArrivalLabel    string
}

// CostEstimator converts distance, travel-time indices, vehicle class and
// priority tier into elapsed time, buffer and monetary cost.
type CostEstimator struct {
	rates RateTable
}

// NewCostEstimator returns an estimator using the given rate table.
func NewCostEstimator(rates RateTable) CostEstimator {
	return CostEstimator{rates: rates}
}

// Estimate runs the pricing algorithm. The 10 km/h speed floor prevents
// division blow-up on stalled corridors.
func (e CostEstimator) Estimate(in EstimateInput) Estimate {
	avgSpeed := math.Max(10.0, (in.StartSpeed+in.DestSpeed)/2)
	routeIndex := (in.StartIndex + in.DestIndex) / 2
	baseMinutes := in.DistanceKm / avgSpeed * 60
	adjusted := baseMinutes * routeIndex * e.rates.timeFactor(in.VehicleType)
	buffer := math.Max(0, adjusted-baseMinutes)

	distanceCost := in.DistanceKm * e.rates.perKm(in.VehicleType)
	timeCost := adjusted / 60 * e.rates.perHour(in.VehicleType)
	multiplier := e.rates.surcharge(in.Priority)

	return Estimate{
		AvgSpeedKmh:     avgSpeed,
		RouteIndex:      routeIndex,
		BaseMinutes:     baseMinutes,
		AdjustedMinutes: adjusted,
		BufferMinutes:   buffer,
		DistanceCost:    distanceCost,
		TimeCost:        timeCost,
		Multiplier:      multiplier,
		Cost:            (distanceCost + timeCost) * multiplier,
		ArrivalLabel:    model.ArrivalLabel(in.DepartHour, adjusted),
	}
}
