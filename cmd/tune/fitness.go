package main

import (
	"math"
	"time"

	"github.com/pthm-cable/inertia/config"
	"github.com/pthm-cable/inertia/fling"
	"github.com/pthm-cable/inertia/geom"
)

// Release speeds (px/s) the candidate is evaluated at. Spans slow flicks to
// hard flings.
var evalSpeeds = []float64{500, 1500, 3000, 6000, 9000}

// evalDT is the sampling step in seconds (one 60Hz frame).
const evalDT = 1.0 / 60.0

// Evaluator scores a tuning candidate against an exponential-decay
// reference profile: v_ref(t) = v0 * exp(-t/tau). Lower is better.
type Evaluator struct {
	baseCfg  *config.Config
	tau      float64
	viewport geom.Size
	density  geom.Vector

	lastRMSE float64
}

// NewEvaluator creates an evaluator with the reference decay constant tau
// (seconds) and the geometry from the base config.
func NewEvaluator(baseCfg *config.Config, tau float64) *Evaluator {
	return &Evaluator{
		baseCfg: baseCfg,
		tau:     tau,
		viewport: geom.Size{
			W: float64(baseCfg.Screen.Width),
			H: float64(baseCfg.Screen.Height),
		},
		density: geom.Vector{X: baseCfg.Demo.PixelsPerInch, Y: baseCfg.Demo.PixelsPerInch},
	}
}

// Evaluate returns the RMS velocity error of the candidate across the
// evaluation speeds.
func (e *Evaluator) Evaluate(raw []float64) float64 {
	tuning := e.baseCfg.CurveTuning()
	tuning.MaxDuration = raw[0]
	tuning.HalfSaturationVelocity = raw[1]
	tuning.BoundsMultiplier = raw[2]

	start := time.Unix(0, 0)
	total := 0.0
	n := 0

	for _, v0 := range evalSpeeds {
		curve, err := fling.New(geom.Vector{Y: -v0}, start, e.density, e.viewport, tuning)
		if err != nil {
			return 1e9
		}
		for t := 0.0; ; t += evalDT {
			now := start.Add(time.Duration(t * float64(time.Second)))
			_, velocity, active := curve.ComputeOffsetAndVelocity(now)
			ref := v0 * math.Exp(-t/e.tau)
			diff := math.Abs(velocity.Y) - ref
			total += diff * diff
			n++
			if !active {
				break
			}
		}
	}

	rmse := math.Sqrt(total / float64(n))
	e.lastRMSE = rmse
	return rmse
}

// LastRMSE returns the error of the most recent evaluation.
func (e *Evaluator) LastRMSE() float64 {
	return e.lastRMSE
}
