// Package curve provides monotonic normalized curves mapping time in [0, 1]
// to a height multiplier in [0, 1], used to scale jump-related effects by
// hold duration.
package curve

import "github.com/milk9111/platformkit/common"

// Curve samples a normalized height multiplier for a normalized time.
// Implementations clamp input to [0, 1] and output to [0, 1].
type Curve interface {
	Sample(t float64) float64
}

// Point is a 2D control point in normalized space.
type Point struct {
	X float64
	Y float64
}

// Bezier is a quadratic bezier from (0,0) to (1,1) through one control
// point. With the control X inside (0, 1) the curve is monotonic in X, so it
// can be sampled by X via bisection.
type Bezier struct {
	control Point
}

// NewBezier builds a curve through the given control point. The control X is
// clamped inside the unit interval to keep the curve invertible.
func NewBezier(control Point) Bezier {
	control.X = common.Clamp(control.X, 0.001, 0.999)
	control.Y = common.Clamp(control.Y, 0, 1)
	return Bezier{control: control}
}

// Default returns the standard ease-out shape through (0.5, 0.8): quick
// early gain, flattening toward full height.
func Default() Bezier {
	return NewBezier(Point{X: 0.5, Y: 0.8})
}

// Sample evaluates the curve at time t by inverting the X polynomial.
func (b Bezier) Sample(t float64) float64 {
	t = common.Clamp(t, 0, 1)

	// Find u such that x(u) = t. x(u) = 2(1-u)u·cx + u² is strictly
	// increasing on [0, 1] for cx in (0, 1).
	lo, hi := 0.0, 1.0
	for i := 0; i < 32; i++ {
		mid := (lo + hi) / 2
		if b.x(mid) < t {
			lo = mid
		} else {
			hi = mid
		}
	}
	u := (lo + hi) / 2
	return common.Clamp(b.y(u), 0, 1)
}

func (b Bezier) x(u float64) float64 {
	return 2*(1-u)*u*b.control.X + u*u
}

func (b Bezier) y(u float64) float64 {
	return 2*(1-u)*u*b.control.Y + u*u
}
