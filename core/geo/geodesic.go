package geo

import (
	"github.com/golang/geo/s2"

	"github.com/urbanlogix/tripdesk/core/model"
)

const earthRadiusKm = 6371.0088

// minTripKm is the floor applied to very short geodesic distances; trips
// inside a single area still need a usable estimate.
const minTripKm = 3.5

// DistanceKm returns the great-circle distance between two points.
func DistanceKm(a, b model.LatLng) float64 {
	p1 := s2.LatLngFromDegrees(a.Lat, a.Lng)
	p2 := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p1.Distance(p2).Radians() * earthRadiusKm
}

// TripDistanceKm is DistanceKm with the short-trip floor: anything under
// 0.5 km reports 3.5 km.
func TripDistanceKm(a, b model.LatLng) float64 {
	d := DistanceKm(a, b)
	if d < 0.5 {
		return minTripKm
	}
	return d
}

// InterpolatePath returns points evenly spaced along the great-circle path
// from a to b, endpoints included.
func InterpolatePath(a, b model.LatLng, points int) []model.LatLng {
	if points < 2 {
		points = 2
	}
	p1 := s2.PointFromLatLng(s2.LatLngFromDegrees(a.Lat, a.Lng))
	p2 := s2.PointFromLatLng(s2.LatLngFromDegrees(b.Lat, b.Lng))
	path := make([]model.LatLng, points)
	for i := 0; i < points; i++ {
		frac := float64(i) / float64(points-1)
		ll := s2.LatLngFromPoint(s2.Interpolate(frac, p1, p2))
		path[i] = model.LatLng{Lat: ll.Lat.Degrees(), Lng: ll.Lng.Degrees()}
	}
	return path
}

// NudgeApart offsets the destination slightly when both endpoints resolve to
// the same point, so a drawable path still exists.
func NudgeApart(a, b model.LatLng) model.LatLng {
	if a == b {
		return model.LatLng{Lat: a.Lat + 0.015, Lng: a.Lng + 0.015}
	}
	return b
}
