package vmath

import "math"

// Epsilon is the length below which a vector is treated as degenerate
const Epsilon = 1e-12

// ClampF limits v to [lo, hi]
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// LerpF interpolates a→b by t without clamping
func LerpF(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Finite reports whether f is neither NaN nor ±Inf
func Finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
