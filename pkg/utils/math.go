// pkg/utils/math.go
package utils

import "math"

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Angle returns the direction from (x1, y1) towards (x2, y2) in radians.
func Angle(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlaps reports whether two circles are strictly closer than the sum of their radii.
func Overlaps(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// Polar returns the offset of length r along angle.
func Polar(angle, r float64) (float64, float64) {
	return math.Cos(angle) * r, math.Sin(angle) * r
}
