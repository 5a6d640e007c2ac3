package model

import "fmt"

// VehicleType identifies a commercial vehicle class.
type VehicleType string

const (
	VehicleMini VehicleType = "Mini"
	VehicleLCV  VehicleType = "LCV"
	VehicleMHCV VehicleType = "MHCV"
	VehicleHCV  VehicleType = "HCV"
)

// VehicleTypes lists all classes in ascending payload order.
var VehicleTypes = []VehicleType{VehicleMini, VehicleLCV, VehicleMHCV, VehicleHCV}

// CapacityTons returns the rated payload capacity of the class.
func (t VehicleType) CapacityTons() float64 {
	switch t {
	case VehicleMini:
		return 1.5
	case VehicleLCV:
		return 3.5
	case VehicleMHCV:
		return 7.5
	case VehicleHCV:
		return 12.0
	default:
		return 0
	}
}

// Profile returns a short operator-facing description of the class.
func (t VehicleType) Profile() string {
	switch t {
	case VehicleMini:
		return "City van / pickup suited for quick commerce drops"
	case VehicleLCV:
		return "Light commercial vehicle up to 3.5T payload"
	case VehicleMHCV:
		return "Multi-axle hauler handling 4-7T loads"
	case VehicleHCV:
		return "Heavy cargo carrier best for trunk hauls"
	default:
		return "Logistics fleet vehicle"
	}
}

// Validate checks that the class is one of the known fleet classes.
func (t VehicleType) Validate() error {
	switch t {
	case VehicleMini, VehicleLCV, VehicleMHCV, VehicleHCV:
		return nil
	}
	return fmt.Errorf("unknown vehicle type %q", string(t))
}

// PriorityTier identifies a delivery urgency class. The tier controls the
// cost surcharge and the scheduling window the operator commits to.
type PriorityTier string

const (
	PriorityStandard PriorityTier = "standard"
	PriorityExpress  PriorityTier = "express"
	PriorityNight    PriorityTier = "night"
)

// WindowMinutes returns the delivery window the tier commits to.
func (p PriorityTier) WindowMinutes() int {
	switch p {
	case PriorityStandard:
		return 240
	case PriorityExpress:
		return 120
	case PriorityNight:
		return 480
	default:
		return 240
	}
}

// Validate checks that the tier is known.
func (p PriorityTier) Validate() error {
	switch p {
	case PriorityStandard, PriorityExpress, PriorityNight:
		return nil
	}
	return fmt.Errorf("unknown priority tier %q", string(p))
}
