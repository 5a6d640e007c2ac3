package model

import "time"

// CorridorSnapshot is one historical telemetry record for a corridor, the
// (area, road/intersection) pair treated as the unit of measurement.
type CorridorSnapshot struct {
	Area string
	Road string
	Date time.Time

	TrafficVolume        float64 // vehicles per day
	AverageSpeed         float64 // km/h
	TravelTimeIndex      float64 // regression target; 1.0 = free flow
	CongestionLevel      float64 // 0-100
	CapacityUtilization  float64
	IncidentReports      float64
	EnvironmentalImpact  float64
	PublicTransportUsage float64
	SignalCompliance     float64
	ParkingUsage         float64
	PedestrianCount      float64
	Weather              string
	Roadwork             string
}

// DayOfWeek returns the snapshot's weekday with Monday as 0, matching the
// dataset's calendar convention.
func (s CorridorSnapshot) DayOfWeek() int {
	return (int(s.Date.Weekday()) + 6) % 7
}

// Feature column names. These match the historical dataset headers and form
// the model's declared schema.
const (
	FeatArea             = "Area Name"
	FeatRoad             = "Road/Intersection Name"
	FeatVolume           = "Traffic Volume"
	FeatSpeed            = "Average Speed"
	FeatCapacity         = "Road Capacity Utilization"
	FeatIncidents        = "Incident Reports"
	FeatEnvironment      = "Environmental Impact"
	FeatTransitUsage     = "Public Transport Usage"
	FeatSignalCompliance = "Traffic Signal Compliance"
	FeatParking          = "Parking Usage"
	FeatPedestrians      = "Pedestrian and Cyclist Count"
	FeatWeather          = "Weather Conditions"
	FeatRoadwork         = "Roadwork and Construction Activity"
	FeatDayOfWeek        = "day_of_week"
	FeatMonth            = "month"
	FeatIsWeekend        = "is_weekend"
)

// CategoricalFeatures is the ordered set of categorical model inputs.
var CategoricalFeatures = []string{
	FeatArea,
	FeatRoad,
	FeatWeather,
	FeatRoadwork,
}

// NumericFeatures is the ordered set of numeric model inputs.
var NumericFeatures = []string{
	FeatVolume,
	FeatSpeed,
	FeatCapacity,
	FeatIncidents,
	FeatEnvironment,
	FeatTransitUsage,
	FeatSignalCompliance,
	FeatParking,
	FeatPedestrians,
	FeatDayOfWeek,
	FeatMonth,
	FeatIsWeekend,
}

// FeaturePayload is a named-field record matching the model schema. Every
// declared column must be present before inference; overrides replace the
// corresponding entry.
type FeaturePayload struct {
	Categorical map[string]string
	Numeric     map[string]float64
}

// NewFeaturePayload returns an empty payload with allocated maps.
func NewFeaturePayload() FeaturePayload {
	return FeaturePayload{
		Categorical: make(map[string]string, len(CategoricalFeatures)),
		Numeric:     make(map[string]float64, len(NumericFeatures)),
	}
}

// Features projects a snapshot onto the model schema for the given travel
// day. Area and road come from the snapshot itself; callers planning
// hypothetical corridors overwrite them afterwards.
func (s CorridorSnapshot) Features(dayOfWeek int) FeaturePayload {
	p := NewFeaturePayload()
	p.Categorical[FeatArea] = s.Area
	p.Categorical[FeatRoad] = s.Road
	p.Categorical[FeatWeather] = s.Weather
	p.Categorical[FeatRoadwork] = s.Roadwork
	p.Numeric[FeatVolume] = s.TrafficVolume
	p.Numeric[FeatSpeed] = s.AverageSpeed
	p.Numeric[FeatCapacity] = s.CapacityUtilization
	p.Numeric[FeatIncidents] = s.IncidentReports
	p.Numeric[FeatEnvironment] = s.EnvironmentalImpact
	p.Numeric[FeatTransitUsage] = s.PublicTransportUsage
	p.Numeric[FeatSignalCompliance] = s.SignalCompliance
	p.Numeric[FeatParking] = s.ParkingUsage
	p.Numeric[FeatPedestrians] = s.PedestrianCount
	p.Numeric[FeatDayOfWeek] = float64(dayOfWeek)
	p.Numeric[FeatMonth] = float64(s.Date.Month())
	if dayOfWeek >= 5 {
		p.Numeric[FeatIsWeekend] = 1
	} else {
		p.Numeric[FeatIsWeekend] = 0
	}
	return p
}
