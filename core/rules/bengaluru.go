package rules

import "github.com/urbanlogix/tripdesk/core/model"

// BengaluruRules returns the default regulatory rule set for Bengaluru,
// derived from Bengaluru Traffic Police notifications.
func BengaluruRules() []model.Rule {
	return []model.Rule{
		{
			Name: "CBD heavy vehicle curfew",
			Description: "Heavy commercial vehicles above 3T banned inside core CBD " +
				"during peak windows as per Bengaluru Traffic Police notifications.",
			RestrictedAreas:        []string{"M.G. Road", "Indiranagar", "Koramangala", "Jayanagar"},
			RestrictedVehicleTypes: []model.VehicleType{model.VehicleLCV, model.VehicleMHCV, model.VehicleHCV},
			StartHour:              8,
			EndHour:                21,
			Days:                   []int{0, 1, 2, 3, 4},
			Recommendation:         "Schedule dock transfers pre-08:00 or post-21:00, or hand over to micro-hubs.",
		},
		{
			Name:                   "Outer Ring night entry",
			Description:            "Entry for vehicles over 16T limited to 22:00-06:00 beyond ORR toll plazas.",
			RestrictedAreas:        []string{"Hebbal", "Yeshwanthpur"},
			RestrictedRoads:        []string{"Hebbal Flyover", "Tumkur Road"},
			RestrictedVehicleTypes: []model.VehicleType{model.VehicleMHCV, model.VehicleHCV},
			StartHour:              6,
			EndHour:                22,
			Recommendation:         "Hold at peripheral yards and use relay fleets during daylight hours.",
		},
		{
			Name:                   "School zone speed cap",
			Description:            "30 km/h cap applies 07:30-10:00 and 13:30-16:00 on school corridors.",
			RestrictedAreas:        []string{"Indiranagar", "Koramangala"},
			RestrictedRoads:        []string{"CMH Road", "Sarjapur Road"},
			RestrictedVehicleTypes: []model.VehicleType{model.VehicleLCV, model.VehicleMHCV, model.VehicleHCV},
			StartHour:              7,
			EndHour:                16,
			Days:                   []int{0, 1, 2, 3, 4, 5},
			Recommendation:         "Buffer +12 minutes in ETA or reroute via parallel collectors.",
		},
		{
			Name:                   "Bus priority lane",
			Description:            "Dedicated BMTC priority lanes restrict loading/unloading during commute peaks.",
			RestrictedAreas:        []string{"Whitefield"},
			RestrictedRoads:        []string{"ITPL Main Road"},
			RestrictedVehicleTypes: []model.VehicleType{model.VehicleLCV, model.VehicleMHCV},
			StartHour:              7,
			EndHour:                11,
			Days:                   []int{0, 1, 2, 3, 4},
			Recommendation:         "Switch to electric vans or schedule between 11:00-15:00.",
		},
	}
}
