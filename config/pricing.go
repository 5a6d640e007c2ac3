package config

import (
	"github.com/urbanlogix/tripdesk/core/model"
	"github.com/urbanlogix/tripdesk/core/trip"
)

// PricingConfig overrides the built-in fleet rate tables. Keys are vehicle
// classes (Mini, LCV, MHCV, HCV) or priority tiers (standard, express,
// night). Absent entries keep the defaults.
type PricingConfig struct {
	PerKm      map[string]float64 `json:"per_km"`
	PerHour    map[string]float64 `json:"per_hour"`
	TimeFactor map[string]float64 `json:"time_factor"`
	Surcharge  map[string]float64 `json:"surcharge"`
}

// RateTable merges the overrides onto the default rates.
func (c PricingConfig) RateTable() trip.RateTable {
	t := trip.DefaultRates()
	for k, v := range c.PerKm {
		t.PerKm[model.VehicleType(k)] = v
	}
	for k, v := range c.PerHour {
		t.PerHour[model.VehicleType(k)] = v
	}
	for k, v := range c.TimeFactor {
		t.TimeFactor[model.VehicleType(k)] = v
	}
	for k, v := range c.Surcharge {
		t.Surcharge[model.PriorityTier(k)] = v
	}
	return t
}
