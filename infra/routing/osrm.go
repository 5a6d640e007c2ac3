// Package routing adapts external routing services to the core
// RouteProvider contract.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/urbanlogix/tripdesk/core/model"
)

// Config holds the OSRM adapter settings.
type Config struct {
	// BaseURL of the OSRM instance, e.g. "https://router.project-osrm.org".
	// Empty disables the remote provider entirely.
	BaseURL string `json:"base_url"`
	// TimeoutSeconds bounds each route request. Zero means 3 seconds.
	TimeoutSeconds int `json:"timeout_seconds"`
	// PathPoints is the resolution of the synthetic fallback path.
	PathPoints int `json:"path_points"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 3
	}
	if c.PathPoints == 0 {
		c.PathPoints = 16
	}
}

// OSRMClient fetches driving routes from an OSRM HTTP endpoint.
type OSRMClient struct {
	session *http.Client
	baseURL string
}

// NewOSRMClient returns a client bound to the given instance.
func NewOSRMClient(cfg Config) (*OSRMClient, error) {
	cfg.SetDefaults()
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("OSRM base URL is empty")
	}
	return &OSRMClient{
		session: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}, nil
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"` // [lon, lat]
		} `json:"geometry"`
	} `json:"routes"`
}

// FetchRoute asks OSRM for a driving route between the two points.
func (c *OSRMClient) FetchRoute(ctx context.Context, from, to model.LatLng) ([]model.LatLng, float64, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=full&geometries=geojson",
		c.baseURL, from.Lng, from.Lat, to.Lng, to.Lat)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, 0, fmt.Errorf("osrm status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var body osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, 0, fmt.Errorf("decode response: %w", err)
	}
	if body.Code != "Ok" || len(body.Routes) == 0 {
		return nil, 0, fmt.Errorf("osrm returned no routes (code %q)", body.Code)
	}
	route := body.Routes[0]
	if len(route.Geometry.Coordinates) < 2 {
		return nil, 0, fmt.Errorf("osrm returned a degenerate geometry")
	}
	points := make([]model.LatLng, len(route.Geometry.Coordinates))
	for i, c := range route.Geometry.Coordinates {
		if len(c) < 2 {
			return nil, 0, fmt.Errorf("osrm returned a malformed coordinate")
		}
		points[i] = model.LatLng{Lat: c[1], Lng: c[0]}
	}
	return points, route.Distance / 1000.0, nil
}
