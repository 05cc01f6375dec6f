package latlng

import "math"

// EarthRadius is the radius in meters of the spherical Earth model used
// by every distance calculation: the WGS-84 equatorial radius, applied
// as a sphere rather than an ellipsoid.
const EarthRadius = 6378137.0

// DistanceFrom returns the great-circle distance in meters between p and
// other on a sphere of radius EarthRadius, using the spherical law of
// cosines.
//
// The law-of-cosines term is handed to acos unclamped. Rounding can push
// it just outside [-1, 1] when the two points are identical or antipodal,
// and the result is then NaN. Callers that need a finite answer at those
// edges want ClampedDistanceFrom or HaversineDistanceFrom.
func (p Point[T]) DistanceFrom(other Point[T]) T {
	phi1 := float64(ToRadian(p.Lat))
	phi2 := float64(ToRadian(other.Lat))
	deltaLng := float64(ToRadian(other.Lng) - ToRadian(p.Lng))

	cosine := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLng)

	return T(EarthRadius * math.Acos(cosine))
}

// ClampedDistanceFrom is DistanceFrom with the law-of-cosines term
// clamped into the acos domain [-1, 1], so rounding at the identical and
// antipodal edges yields a distance of 0 or pi*EarthRadius instead of
// NaN. NaN coordinates still propagate. This is a deliberate departure
// from DistanceFrom, which reports the raw formula result.
func (p Point[T]) ClampedDistanceFrom(other Point[T]) T {
	phi1 := float64(ToRadian(p.Lat))
	phi2 := float64(ToRadian(other.Lat))
	deltaLng := float64(ToRadian(other.Lng) - ToRadian(p.Lng))

	cosine := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(deltaLng)
	if cosine > 1 {
		cosine = 1
	} else if cosine < -1 {
		cosine = -1
	}

	return T(EarthRadius * math.Acos(cosine))
}

// HaversineDistanceFrom returns the great-circle distance in meters
// between p and other on the same EarthRadius sphere as DistanceFrom,
// using the haversine formula. It is numerically stable where the law of
// cosines is not: the distance from a point to itself is exactly 0 and
// there is no acos domain edge. For well separated points the two
// methods agree to well under a millimeter.
func (p Point[T]) HaversineDistanceFrom(other Point[T]) T {
	phi1 := float64(ToRadian(p.Lat))
	phi2 := float64(ToRadian(other.Lat))
	deltaLat := float64(ToRadian(other.Lat - p.Lat))
	deltaLng := float64(ToRadian(other.Lng - p.Lng))

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return T(EarthRadius * c)
}
