package latlng

import (
	"math"

	"golang.org/x/exp/constraints"
)

// compassNames are the 8-point compass directions in clockwise order
// from north, one per 45 degree sector.
var compassNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// BearingToCompass converts a bearing in degrees to its 8-point compass
// direction. The bearing is folded through NormalizeAbsolute first, so
// any finite value is accepted; NaN has no direction and returns "".
func BearingToCompass[T constraints.Float](bearing T) string {
	if math.IsNaN(float64(bearing)) {
		return ""
	}

	folded := float64(NormalizeAbsolute(bearing))
	index := int((folded+22.5)/45.0) % 8

	return compassNames[index]
}

// CompassFrom returns the 8-point compass direction of the arrow drawn
// from other toward p. It is AzimuthFrom rounded to the nearest of the
// eight cardinal and intercardinal directions.
func (p Point[T]) CompassFrom(other Point[T]) string {
	return BearingToCompass(p.AzimuthFrom(other))
}
