package config

import (
	"github.com/urbanlogix/tripdesk/core/model"
	"github.com/urbanlogix/tripdesk/core/rules"
)

// RuleConfig declares one regulatory rule in the configuration file. An
// empty restriction list leaves that dimension unrestricted.
type RuleConfig struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Areas          []string `json:"areas"`
	Roads          []string `json:"roads"`
	VehicleTypes   []string `json:"vehicle_types"`
	StartHour      int      `json:"start_hour"`
	EndHour        int      `json:"end_hour"`
	Days           []int    `json:"days"`
	Recommendation string   `json:"recommendation"`
}

// Rule converts the declaration to a domain rule.
func (c RuleConfig) Rule() model.Rule {
	types := make([]model.VehicleType, len(c.VehicleTypes))
	for i, t := range c.VehicleTypes {
		types[i] = model.VehicleType(t)
	}
	return model.Rule{
		Name:                   c.Name,
		Description:            c.Description,
		RestrictedAreas:        c.Areas,
		RestrictedRoads:        c.Roads,
		RestrictedVehicleTypes: types,
		StartHour:              c.StartHour,
		EndHour:                c.EndHour,
		Days:                   c.Days,
		Recommendation:         c.Recommendation,
	}
}

// RuleSet returns the configured rules, or the built-in Bengaluru set when
// the configuration declares none.
func (c *Config) RuleSet() []model.Rule {
	if len(c.Rules) == 0 {
		return rules.BengaluruRules()
	}
	out := make([]model.Rule, len(c.Rules))
	for i, rc := range c.Rules {
		out[i] = rc.Rule()
	}
	return out
}
