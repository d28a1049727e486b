package fling

import (
	"fmt"
	"sort"

	"github.com/pthm-cable/inertia/geom"
)

// Tuning holds the empirical constants that shape a fling curve. The values
// are perceptual tuning, not derived physics; treat them as configuration
// and adjust via cmd/tune rather than editing the math.
type Tuning struct {
	// DefaultPixelsPerInch is the density at which the viewport travel cap
	// applies unscaled. Denser displays get proportionally more travel.
	DefaultPixelsPerInch float64

	// BoundsMultiplier caps total travel per axis at this many viewport
	// extents (after density scaling).
	BoundsMultiplier float64

	// MaxDuration is the asymptotic curve duration in seconds. No fling,
	// however fast, animates longer than this.
	MaxDuration float64

	// HalfSaturationVelocity is the velocity magnitude (px/s) at which the
	// curve duration reaches half of MaxDuration.
	HalfSaturationVelocity float64

	// ControlPoints maps velocity magnitude to bezier control points,
	// sorted by ascending Velocity. Values between rows are linearly
	// interpolated; values outside the table clamp to the nearest row.
	ControlPoints []ControlPointRow
}

// ControlPointRow is one row of the velocity-to-control-point table.
type ControlPointRow struct {
	Velocity float64 // px/s breakpoint
	P1, P2   geom.Point
}

// DefaultTuning returns the stock curve shape: slow flicks decay quickly,
// fast flicks get a longer tail.
func DefaultTuning() Tuning {
	return Tuning{
		DefaultPixelsPerInch:   96,
		BoundsMultiplier:       3,
		MaxDuration:            3.5,
		HalfSaturationVelocity: 2500,
		ControlPoints: []ControlPointRow{
			{Velocity: 400, P1: geom.Point{X: 0.55, Y: 0.75}, P2: geom.Point{X: 0.80, Y: 1.00}},
			{Velocity: 2500, P1: geom.Point{X: 0.30, Y: 0.82}, P2: geom.Point{X: 0.55, Y: 1.00}},
			{Velocity: 8000, P1: geom.Point{X: 0.12, Y: 0.90}, P2: geom.Point{X: 0.35, Y: 1.00}},
		},
	}
}

// Duration maps a velocity magnitude (px/s) to the curve duration in
// seconds. Strictly increasing in speed and asymptotic to MaxDuration.
func (tn Tuning) Duration(speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return tn.MaxDuration * speed / (speed + tn.HalfSaturationVelocity)
}

// ControlPointsFor interpolates the control point table at the given
// velocity magnitude. Pure function of speed alone; direction, density and
// viewport never influence the curve shape.
func (tn Tuning) ControlPointsFor(speed float64) (p1, p2 geom.Point) {
	rows := tn.ControlPoints
	if speed <= rows[0].Velocity {
		return rows[0].P1, rows[0].P2
	}
	last := rows[len(rows)-1]
	if speed >= last.Velocity {
		return last.P1, last.P2
	}
	i := sort.Search(len(rows), func(i int) bool { return rows[i].Velocity >= speed })
	lo, hi := rows[i-1], rows[i]
	f := (speed - lo.Velocity) / (hi.Velocity - lo.Velocity)
	return geom.LerpPoint(lo.P1, hi.P1, f), geom.LerpPoint(lo.P2, hi.P2, f)
}

// validate checks that the tuning can produce a well-defined curve.
func (tn Tuning) validate() error {
	if tn.DefaultPixelsPerInch <= 0 || tn.BoundsMultiplier <= 0 {
		return fmt.Errorf("%w: non-positive travel bound tuning", ErrInvalidParameters)
	}
	if tn.MaxDuration <= 0 || tn.HalfSaturationVelocity <= 0 {
		return fmt.Errorf("%w: non-positive duration tuning", ErrInvalidParameters)
	}
	if len(tn.ControlPoints) == 0 {
		return fmt.Errorf("%w: empty control point table", ErrInvalidParameters)
	}
	for i, row := range tn.ControlPoints {
		if i > 0 && row.Velocity <= tn.ControlPoints[i-1].Velocity {
			return fmt.Errorf("%w: control point table not ascending at row %d", ErrInvalidParameters, i)
		}
		if row.P1.X < 0 || row.P1.X > 1 || row.P2.X < 0 || row.P2.X > 1 {
			return fmt.Errorf("%w: control point x outside [0,1] at row %d", ErrInvalidParameters, i)
		}
		// y values outside [0,1] would let the easing overshoot the
		// travel bound mid-curve.
		if row.P1.Y < 0 || row.P1.Y > 1 || row.P2.Y < 0 || row.P2.Y > 1 {
			return fmt.Errorf("%w: control point y outside [0,1] at row %d", ErrInvalidParameters, i)
		}
	}
	return nil
}
