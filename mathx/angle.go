package mathx

import "math"

// Precomputed conversion factors for consistent rounding across calls.
const (
	radPerDeg = math.Pi / 180.0
	degPerRad = 180.0 / math.Pi
)

// DegreesToRadians converts degrees to radians.
func DegreesToRadians(degrees float64) float64 {
	return degrees * radPerDeg
}

// RadiansToDegrees converts radians to degrees.
func RadiansToDegrees(radians float64) float64 {
	return radians * degPerRad
}
