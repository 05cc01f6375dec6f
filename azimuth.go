package latlng

import "math"

// AzimuthFrom returns the initial compass bearing in degrees, within
// [0, 360), of the arrow drawn from other toward p: 0 is north, 90 east.
// The direction runs other to p, not p to other, so for a vehicle at
// other headed straight for p this is its compass course.
//
// The forward and reverse bearings of a pair are generally not 180
// degrees apart, since a great circle's course changes along its run.
// NaN coordinates yield a NaN bearing.
func (p Point[T]) AzimuthFrom(other Point[T]) T {
	phi1 := float64(ToRadian(p.Lat))
	phi2 := float64(ToRadian(other.Lat))
	deltaLng := float64(ToRadian(other.Lng) - ToRadian(p.Lng))

	y := math.Sin(deltaLng)
	x := math.Cos(phi1)*math.Tan(phi2) - math.Sin(phi1)*math.Cos(deltaLng)

	// atan2 on its own yields the bearing measured at p toward other. The
	// added half turn flips it into the documented direction, the arrow
	// drawn at other toward p, and the fold brings it into [0, 360).
	return NormalizeAbsolute(FromRadian(T(math.Atan2(y, x))) + 180)
}
