package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp limits v to the inclusive range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveToward advances v toward target by at most maxDelta without overshoot.
func MoveToward(v, target, maxDelta float64) float64 {
	if math.Abs(target-v) <= maxDelta {
		return target
	}
	if target > v {
		return v + maxDelta
	}
	return v - maxDelta
}

// Sign returns -1, 0, or +1 for v.
func Sign(v float64) int {
	if v > 0 {
		return 1
	}
	if v < 0 {
		return -1
	}
	return 0
}
