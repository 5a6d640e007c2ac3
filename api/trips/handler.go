// Package trips exposes the trip decision engine over HTTP.
package trips

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/urbanlogix/tripdesk/core/feature"
	"github.com/urbanlogix/tripdesk/core/model"
	"github.com/urbanlogix/tripdesk/core/trip"
)

// PlanRequest is the JSON body of POST /api/trips/plan.
type PlanRequest struct {
	StartArea   string  `json:"start_area"`
	StartRoad   string  `json:"start_road"`
	DestArea    string  `json:"dest_area"`
	DestRoad    string  `json:"dest_road"`
	VehicleType string  `json:"vehicle_type,omitempty"`
	PayloadTons float64 `json:"payload_tons,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	PlannedHour int     `json:"planned_hour"`
	DayOfWeek   int     `json:"day_of_week"`

	OverrideIncidents *float64 `json:"override_incidents,omitempty"`
	StartVolume       *float64 `json:"start_volume,omitempty"`
	StartSpeed        *float64 `json:"start_speed,omitempty"`
	DestVolume        *float64 `json:"dest_volume,omitempty"`
	DestSpeed         *float64 `json:"dest_speed,omitempty"`
}

// TrendPoint is one sample of the corridor speed trend.
type TrendPoint struct {
	Date     time.Time `json:"date"`
	SpeedKmh float64   `json:"speed_kmh"`
}

// PlanResponse wraps the composed trip with the endpoint speed trends.
type PlanResponse struct {
	Trip       *model.Trip  `json:"trip"`
	StartTrend []TrendPoint `json:"start_trend,omitempty"`
	DestTrend  []TrendPoint `json:"dest_trend,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewPlanHandler returns the handler for POST /api/trips/plan.
func NewPlanHandler(composer *trip.Composer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req PlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
			return
		}
		if req.StartArea == "" || req.StartRoad == "" || req.DestArea == "" || req.DestRoad == "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "start and destination corridors are required"})
			return
		}

		result, err := composer.Plan(r.Context(), trip.PlanRequest{
			StartArea:   req.StartArea,
			StartRoad:   req.StartRoad,
			DestArea:    req.DestArea,
			DestRoad:    req.DestRoad,
			VehicleType: model.VehicleType(req.VehicleType),
			PayloadTons: req.PayloadTons,
			Priority:    model.PriorityTier(req.Priority),
			PlannedHour: req.PlannedHour,
			DayOfWeek:   req.DayOfWeek,
			Overrides: trip.Overrides{
				IncidentReports: req.OverrideIncidents,
				StartVolume:     req.StartVolume,
				StartSpeed:      req.StartSpeed,
				DestVolume:      req.DestVolume,
				DestSpeed:       req.DestSpeed,
			},
		})
		if err != nil {
			var notFound *feature.NotFoundError
			if errors.As(err, &notFound) {
				writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
					Error: "not enough data for the selected corridors, please try another combination",
				})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		writeJSON(w, http.StatusOK, PlanResponse{
			Trip:       result.Trip,
			StartTrend: trendPoints(result.StartTrend),
			DestTrend:  trendPoints(result.DestTrend),
		})
	})
}

func trendPoints(snapshots []model.CorridorSnapshot) []TrendPoint {
	if len(snapshots) == 0 {
		return nil
	}
	out := make([]TrendPoint, len(snapshots))
	for i, s := range snapshots {
		out[i] = TrendPoint{Date: s.Date, SpeedKmh: s.AverageSpeed}
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
