// Package latlng computes great-circle distances and initial bearings
// between latitude/longitude points on a spherical Earth.
package latlng

import "golang.org/x/exp/constraints"

// Point is a latitude/longitude pair in degrees, generic over its
// floating-point precision. The zero value sits where the equator meets
// the prime meridian.
//
// Construction performs no validation: out-of-range and non-finite
// coordinates are accepted and flow through every calculation under
// ordinary IEEE 754 arithmetic. Build points with named fields,
// Point[float64]{Lat: 35.7, Lng: 139.5}, so that latitude and longitude
// cannot be transposed silently.
type Point[T constraints.Float] struct {
	// Lat is the latitude in degrees, positive north.
	Lat T

	// Lng is the longitude in degrees, positive east.
	Lng T
}

// LatLng is a Point at double precision, the common case.
type LatLng = Point[float64]

// LatLng32 is a Point at single precision.
type LatLng32 = Point[float32]

// IsValid reports whether the point lies within the conventional
// coordinate ranges, latitude in [-90, 90] and longitude in [-180, 180].
// NaN and infinite coordinates are never valid. No other method requires
// validity; calculations accept whatever the caller supplies.
func (p Point[T]) IsValid() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
