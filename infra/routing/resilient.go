package routing

import (
	"context"

	"github.com/urbanlogix/tripdesk/core/geo"
	"github.com/urbanlogix/tripdesk/core/logger"
	"github.com/urbanlogix/tripdesk/core/model"
)

// remote is the fetch half of a routing service; *OSRMClient implements it.
type remote interface {
	FetchRoute(ctx context.Context, from, to model.LatLng) ([]model.LatLng, float64, error)
}

// Resilient wraps a remote routing client with the deterministic geodesic
// fallback. Any remote failure substitutes the synthetic path immediately,
// without retry, and the failure never propagates to the trip chain.
type Resilient struct {
	remote   remote
	fallback geo.GeodesicProvider
	log      logger.Logger
}

// NewResilient builds the wrapped provider. A nil client yields a provider
// that always answers from the geodesic fallback.
func NewResilient(client *OSRMClient, pathPoints int, log logger.Logger) *Resilient {
	if log == nil {
		log = logger.NopLogger{}
	}
	r := &Resilient{fallback: geo.GeodesicProvider{Points: pathPoints}, log: log}
	if client != nil {
		r.remote = client
	}
	return r
}

// Route implements geo.RouteProvider.
func (r *Resilient) Route(ctx context.Context, from, to model.LatLng) geo.Route {
	if r.remote != nil {
		points, distanceKm, err := r.remote.FetchRoute(ctx, from, to)
		if err == nil {
			return geo.Route{Points: points, DistanceKm: distanceKm}
		}
		r.log.Warnf("route provider failed, using geodesic path: %v", err)
	}
	return r.fallback.Route(ctx, from, to)
}
