package rules

import "github.com/urbanlogix/tripdesk/core/model"

// SuggestVehicleType returns the smallest vehicle class rated for the
// payload. Breakpoints are inclusive: exactly 1.5T still fits a Mini.
func SuggestVehicleType(payloadTons float64) model.VehicleType {
	switch {
	case payloadTons <= 1.5:
		return model.VehicleMini
	case payloadTons <= 3.5:
		return model.VehicleLCV
	case payloadTons <= 7.5:
		return model.VehicleMHCV
	default:
		return model.VehicleHCV
	}
}

// ResolveVehicleType prefers an explicit operator choice over the payload
// suggestion.
func ResolveVehicleType(choice model.VehicleType, payloadTons float64) model.VehicleType {
	if choice != "" {
		return choice
	}
	return SuggestVehicleType(payloadTons)
}
