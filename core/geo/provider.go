package geo

import (
	"context"

	"github.com/urbanlogix/tripdesk/core/model"
)

// Route is path geometry between two points. DistanceKm is the routed
// distance when a real provider answered, or the geodesic distance with the
// short-trip floor otherwise.
type Route struct {
	Points     []model.LatLng
	DistanceKm float64
}

// RouteProvider supplies route geometry between two points. Implementations
// wrapping network services must absorb their own failures and substitute a
// deterministic fallback; Route never returns an error to the trip chain.
type RouteProvider interface {
	Route(ctx context.Context, from, to model.LatLng) Route
}

// GeodesicProvider is the offline RouteProvider: a straight great-circle
// interpolation with the short-trip distance floor.
type GeodesicProvider struct {
	// Points along the synthetic path, endpoints included. Zero means 16.
	Points int
}

// Route implements RouteProvider.
func (g GeodesicProvider) Route(_ context.Context, from, to model.LatLng) Route {
	points := g.Points
	if points == 0 {
		points = 16
	}
	dist := TripDistanceKm(from, to)
	to = NudgeApart(from, to)
	return Route{
		Points:     InterpolatePath(from, to, points),
		DistanceKm: dist,
	}
}
