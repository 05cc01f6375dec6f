package latlng

import (
	"math"

	"golang.org/x/exp/constraints"
)

// ToRadian converts an angle in degrees to radians. Pi is taken at T's
// precision, so every instantiation rounds the way native arithmetic in
// that precision would.
func ToRadian[T constraints.Float](deg T) T {
	return deg * T(math.Pi) / 180
}

// FromRadian converts an angle in radians to degrees.
func FromRadian[T constraints.Float](rad T) T {
	return rad * 180 / T(math.Pi)
}

// NormalizeRelative folds an angle in degrees into the range [-180, 180)
// by whole 360 degree turns. NaN is returned unchanged, and any magnitude
// beyond 1e9 comes back as 0 rather than being folded.
func NormalizeRelative[T constraints.Float](deg T) T {
	// NaN never satisfies the loop conditions below; return it as is.
	if math.IsNaN(float64(deg)) {
		return deg
	}

	// At a large enough magnitude a 360 step is lost to rounding
	// (deg-360 == deg) and the folds below would never terminate.
	if deg > 1e9 || deg < -1e9 {
		return 0
	}

	for deg >= 180 {
		deg -= 360
	}
	for deg < -180 {
		deg += 360
	}

	return deg
}

// NormalizeAbsolute folds an angle in degrees into the range [0, 360)
// by whole 360 degree turns. NaN is returned unchanged, and any magnitude
// beyond 1e9 comes back as 0 rather than being folded.
func NormalizeAbsolute[T constraints.Float](deg T) T {
	// NaN never satisfies the loop conditions below; return it as is.
	if math.IsNaN(float64(deg)) {
		return deg
	}

	// At a large enough magnitude a 360 step is lost to rounding
	// (deg-360 == deg) and the folds below would never terminate.
	if deg > 1e9 || deg < -1e9 {
		return 0
	}

	for deg >= 360 {
		deg -= 360
	}
	for deg < 0 {
		deg += 360
	}

	return deg
}
