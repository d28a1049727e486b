// Package config provides configuration loading and access for the fling
// toolkit: curve tuning constants, gesture thresholds and demo settings.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/inertia/fling"
	"github.com/pthm-cable/inertia/geom"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all toolkit configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Curve     CurveConfig     `yaml:"curve"`
	Gesture   GestureConfig   `yaml:"gesture"`
	Driver    DriverConfig    `yaml:"driver"`
	Demo      DemoConfig      `yaml:"demo"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings for the windowed demo.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CurveConfig holds the fling curve tuning constants. These are perceptual
// tuning, adjusted with cmd/tune; see fling.Tuning for semantics.
type CurveConfig struct {
	DefaultPixelsPerInch   float64              `yaml:"default_pixels_per_inch"`
	BoundsMultiplier       float64              `yaml:"bounds_multiplier"`
	MaxDuration            float64              `yaml:"max_duration"`
	HalfSaturationVelocity float64              `yaml:"half_saturation_velocity"`
	ControlPoints          []ControlPointConfig `yaml:"control_points"`
}

// ControlPointConfig is one row of the velocity-to-control-point table.
type ControlPointConfig struct {
	Velocity float64    `yaml:"velocity"` // px/s breakpoint
	P1       [2]float64 `yaml:"p1"`       // bezier control point 1 (x, y)
	P2       [2]float64 `yaml:"p2"`       // bezier control point 2 (x, y)
}

// GestureConfig holds pointer-tracking thresholds.
type GestureConfig struct {
	WindowMs         float64 `yaml:"window_ms"`          // velocity estimation window
	MinFlingVelocity float64 `yaml:"min_fling_velocity"` // px/s below which a release is not a fling
}

// DriverConfig holds fling driver parameters.
type DriverConfig struct {
	StallTicks int `yaml:"stall_ticks"` // unconsumed ticks before abandoning a fling
}

// DemoConfig holds demo surface settings.
type DemoConfig struct {
	ContentHeight float64 `yaml:"content_height"` // virtual content height in px
	PixelsPerInch float64 `yaml:"pixels_per_inch"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow int `yaml:"perf_window"` // frames in the timing window
}

// CurveTuning converts the curve section to a fling.Tuning.
func (c *Config) CurveTuning() fling.Tuning {
	tn := fling.Tuning{
		DefaultPixelsPerInch:   c.Curve.DefaultPixelsPerInch,
		BoundsMultiplier:       c.Curve.BoundsMultiplier,
		MaxDuration:            c.Curve.MaxDuration,
		HalfSaturationVelocity: c.Curve.HalfSaturationVelocity,
	}
	for _, row := range c.Curve.ControlPoints {
		tn.ControlPoints = append(tn.ControlPoints, fling.ControlPointRow{
			Velocity: row.Velocity,
			P1:       geom.Point{X: row.P1[0], Y: row.P1[1]},
			P2:       geom.Point{X: row.P2[0], Y: row.P2[1]},
		})
	}
	return tn
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults
// if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyDefaults()

	return cfg, nil
}

// applyDefaults fills in values a sparse user config may have left out.
func (c *Config) applyDefaults() {
	// Synthesize the stock control point table if none specified
	if len(c.Curve.ControlPoints) == 0 {
		for _, row := range fling.DefaultTuning().ControlPoints {
			c.Curve.ControlPoints = append(c.Curve.ControlPoints, ControlPointConfig{
				Velocity: row.Velocity,
				P1:       [2]float64{row.P1.X, row.P1.Y},
				P2:       [2]float64{row.P2.X, row.P2.Y},
			})
		}
	}
	if c.Gesture.WindowMs <= 0 {
		c.Gesture.WindowMs = 100
	}
	if c.Telemetry.PerfWindow <= 0 {
		c.Telemetry.PerfWindow = 60
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
