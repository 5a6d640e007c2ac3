package model

import "fmt"

// RouteContext captures one endpoint of a planned trip at a planned time.
// Contexts are constructed per query and never mutated.
type RouteContext struct {
	Area        string
	Road        string
	VehicleType VehicleType
	PlannedHour int // 0-23
	DayOfWeek   int // 0 = Monday ... 6 = Sunday
}

// Validate checks the temporal fields are in range.
func (c RouteContext) Validate() error {
	if c.PlannedHour < 0 || c.PlannedHour > 23 {
		return fmt.Errorf("planned hour %d out of range", c.PlannedHour)
	}
	if c.DayOfWeek < 0 || c.DayOfWeek > 6 {
		return fmt.Errorf("day of week %d out of range", c.DayOfWeek)
	}
	return nil
}

// Rule is a regulatory restriction on trips. An empty predicate set means the
// dimension is unrestricted; the hour interval is half-open [StartHour,
// EndHour) and never wraps midnight, so overnight restrictions are authored
// as two rules. Rules are immutable once constructed.
type Rule struct {
	Name                   string
	Description            string
	RestrictedAreas        []string
	RestrictedRoads        []string
	RestrictedVehicleTypes []VehicleType
	StartHour              int
	EndHour                int
	Days                   []int // empty means all days
	Recommendation         string
}

// Applies reports whether the rule restricts the given context. All five
// predicates must hold.
func (r Rule) Applies(ctx RouteContext) bool {
	areaMatch := len(r.RestrictedAreas) == 0 || containsString(r.RestrictedAreas, ctx.Area)
	roadMatch := len(r.RestrictedRoads) == 0 || containsString(r.RestrictedRoads, ctx.Road)
	vehicleMatch := len(r.RestrictedVehicleTypes) == 0 || containsVehicle(r.RestrictedVehicleTypes, ctx.VehicleType)
	hourMatch := r.StartHour <= ctx.PlannedHour && ctx.PlannedHour < r.EndHour
	dayMatch := len(r.Days) == 0 || containsInt(r.Days, ctx.DayOfWeek)
	return areaMatch && roadMatch && vehicleMatch && hourMatch && dayMatch
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsVehicle(set []VehicleType, v VehicleType) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
