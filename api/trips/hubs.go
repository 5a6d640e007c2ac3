package trips

import (
	"net/http"

	"github.com/urbanlogix/tripdesk/core/hubs"
	"github.com/urbanlogix/tripdesk/core/model"
)

// NewHubsHandler returns the handler for GET /api/hubs?area=<name>, ranking
// consolidation micro-hubs for the selected area.
func NewHubsHandler(hubList []hubs.MicroHub, snapshots []model.CorridorSnapshot) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		area := r.URL.Query().Get("area")
		writeJSON(w, http.StatusOK, hubs.Rank(hubList, snapshots, area))
	})
}

// NewHealthHandler reports service readiness and the trained model's
// validation MAE.
func NewHealthHandler(validationMAE float64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"status":         "ok",
			"validation_mae": validationMAE,
		})
	})
}
