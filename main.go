package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/pthm-cable/inertia/config"
	"github.com/pthm-cable/inertia/demo"
	"github.com/pthm-cable/inertia/geom"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run a scripted fling without graphics")
	outputDir := flag.String("output-dir", "", "Output directory for CSV traces and config snapshot")
	vx := flag.Float64("vx", 0, "Headless fling x velocity in px/s")
	vy := flag.Float64("vy", -2000, "Headless fling y velocity in px/s")
	fps := flag.Int("fps", 0, "Headless tick rate (0 = config target FPS)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if *headless {
		err := demo.RunHeadless(demo.HeadlessOptions{
			OutputDir: *outputDir,
			Velocity:  geom.Vector{X: *vx, Y: *vy},
			FPS:       *fps,
		})
		if err != nil {
			slog.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := demo.Run(demo.Options{OutputDir: *outputDir}); err != nil {
		slog.Error("demo failed", "error", err)
		os.Exit(1)
	}
}
