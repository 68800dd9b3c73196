package xcomplex

import "math"

// Radians converts an angle in degrees to radians.
func Radians[T Float](deg T) T {
	return deg * T(math.Pi) / 180
}

// Degrees converts an angle in radians to degrees.
func Degrees[T Float](rad T) T {
	return rad * 180 / T(math.Pi)
}

// FromPhase returns the point on the unit circle at angle phase, in
// radians, from the positive real axis.
func FromPhase[T Float](phase T) Complex[T] {
	sin, cos := math.Sincos(float64(phase))
	return Complex[T]{re: T(cos), im: T(sin)}
}

// FromPhaseDegrees is the same as [FromPhase] but takes the angle in
// degrees.
func FromPhaseDegrees[T Float](deg T) Complex[T] {
	return FromPhase(Radians(deg))
}
