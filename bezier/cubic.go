// Package bezier implements the unit cubic bezier easing evaluated by fling
// curves. A Cubic maps an elapsed-time fraction x in [0,1] to a progress
// fraction y in [0,1]; the curve is anchored at (0,0) and (1,1) with two
// control points in between.
package bezier

import "math"

// solveEpsilon is the target accuracy when inverting x(t).
const solveEpsilon = 1e-7

// newtonIterations bounds the Newton-Raphson phase of SolveT; the bisection
// fallback handles the rest.
const newtonIterations = 8

// Cubic is a cubic bezier easing with precomputed polynomial coefficients.
// Both control point x values must lie in [0,1] so that x(t) is invertible
// on the unit interval. The zero value is not usable; construct with New.
type Cubic struct {
	ax, bx, cx float64
	ay, by, cy float64

	// Gradients used to extend the curve linearly outside [0,1].
	startGradient float64
	endGradient   float64
}

// New builds a Cubic from the two control points (x1,y1) and (x2,y2).
func New(x1, y1, x2, y2 float64) Cubic {
	var c Cubic

	// Coefficients of the polynomial form B(t) = ((a t + b) t + c) t,
	// derived from the Bernstein basis with P0=(0,0), P3=(1,1).
	c.cx = 3 * x1
	c.bx = 3*(x2-x1) - c.cx
	c.ax = 1 - c.cx - c.bx

	c.cy = 3 * y1
	c.by = 3*(y2-y1) - c.cy
	c.ay = 1 - c.cy - c.by

	switch {
	case x1 > 0:
		c.startGradient = y1 / x1
	case y1 == 0 && x2 > 0:
		c.startGradient = y2 / x2
	}
	switch {
	case x2 < 1:
		c.endGradient = (y2 - 1) / (x2 - 1)
	case x2 == 1 && x1 < 1:
		c.endGradient = (y1 - 1) / (x1 - 1)
	}
	return c
}

// SampleX evaluates the x polynomial at parameter t.
func (c Cubic) SampleX(t float64) float64 {
	return ((c.ax*t+c.bx)*t + c.cx) * t
}

// SampleY evaluates the y polynomial at parameter t.
func (c Cubic) SampleY(t float64) float64 {
	return ((c.ay*t+c.by)*t + c.cy) * t
}

// SampleSlopeX evaluates dx/dt at parameter t.
func (c Cubic) SampleSlopeX(t float64) float64 {
	return (3*c.ax*t+2*c.bx)*t + c.cx
}

// SampleSlopeY evaluates dy/dt at parameter t.
func (c Cubic) SampleSlopeY(t float64) float64 {
	return (3*c.ay*t+2*c.by)*t + c.cy
}

// SolveT inverts x(t) for x in [0,1]: Newton-Raphson first, falling back to
// bisection when the derivative is too flat to make progress.
func (c Cubic) SolveT(x float64) float64 {
	t := x
	for i := 0; i < newtonIterations; i++ {
		err := c.SampleX(t) - x
		if math.Abs(err) < solveEpsilon {
			return t
		}
		d := c.SampleSlopeX(t)
		if math.Abs(d) < 1e-6 {
			break
		}
		t -= err / d
	}

	lo, hi := 0.0, 1.0
	t = x
	for lo < hi {
		sample := c.SampleX(t)
		if math.Abs(sample-x) < solveEpsilon {
			return t
		}
		if sample < x {
			lo = t
		} else {
			hi = t
		}
		next := (hi-lo)/2 + lo
		if next == t {
			break
		}
		t = next
	}
	return t
}

// Solve maps an elapsed-time fraction to a progress fraction, extending
// linearly through the endpoint gradients outside [0,1].
func (c Cubic) Solve(x float64) float64 {
	if x < 0 {
		return c.startGradient * x
	}
	if x > 1 {
		return 1 + c.endGradient*(x-1)
	}
	return c.SampleY(c.SolveT(x))
}

// Slope returns dy/dx at the given elapsed-time fraction.
func (c Cubic) Slope(x float64) float64 {
	if x <= 0 {
		return c.startGradient
	}
	if x >= 1 {
		return c.endGradient
	}
	t := c.SolveT(x)
	dx := c.SampleSlopeX(t)
	if dx == 0 {
		return 0
	}
	return c.SampleSlopeY(t) / dx
}
