// Package main provides Nelder-Mead tuning of fling curve constants against
// a reference deceleration profile.
package main

import "github.com/pthm-cable/inertia/config"

// ParamSpec defines a single tunable parameter.
type ParamSpec struct {
	Name    string  // Human-readable name
	Min     float64 // Lower bound
	Max     float64 // Upper bound
	Default float64 // Default value
}

// ParamVector holds the set of all tunable parameters.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector creates the standard set of tunable curve parameters.
// Control point rows are deliberately excluded: their shape is tuned by
// hand in the demo overlay, while the scalar constants respond well to
// automated fitting.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "max_duration", Min: 1.0, Max: 6.0, Default: 3.5},
			{Name: "half_saturation_velocity", Min: 500, Max: 8000, Default: 2500},
			{Name: "bounds_multiplier", Min: 1.0, Max: 6.0, Default: 3.0},
		},
	}
}

// Dim returns the number of parameters.
func (p *ParamVector) Dim() int {
	return len(p.Specs)
}

// DefaultVector returns the default raw values.
func (p *ParamVector) DefaultVector() []float64 {
	raw := make([]float64, len(p.Specs))
	for i, spec := range p.Specs {
		raw[i] = spec.Default
	}
	return raw
}

// Normalize maps raw values into [0,1] per the parameter bounds.
func (p *ParamVector) Normalize(raw []float64) []float64 {
	x := make([]float64, len(p.Specs))
	for i, spec := range p.Specs {
		x[i] = (raw[i] - spec.Min) / (spec.Max - spec.Min)
	}
	return x
}

// Denormalize maps [0,1] values back to raw parameter values.
func (p *ParamVector) Denormalize(x []float64) []float64 {
	raw := make([]float64, len(p.Specs))
	for i, spec := range p.Specs {
		raw[i] = spec.Min + x[i]*(spec.Max-spec.Min)
	}
	return raw
}

// Clamp bounds raw values to their parameter ranges.
func (p *ParamVector) Clamp(raw []float64) []float64 {
	out := make([]float64, len(p.Specs))
	for i, spec := range p.Specs {
		v := raw[i]
		if v < spec.Min {
			v = spec.Min
		}
		if v > spec.Max {
			v = spec.Max
		}
		out[i] = v
	}
	return out
}

// ApplyToConfig writes raw parameter values into a config.
func (p *ParamVector) ApplyToConfig(cfg *config.Config, raw []float64) {
	for i, spec := range p.Specs {
		switch spec.Name {
		case "max_duration":
			cfg.Curve.MaxDuration = raw[i]
		case "half_saturation_velocity":
			cfg.Curve.HalfSaturationVelocity = raw[i]
		case "bounds_multiplier":
			cfg.Curve.BoundsMultiplier = raw[i]
		}
	}
}
