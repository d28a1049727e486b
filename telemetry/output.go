package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir         string
	traceFile   *os.File
	summaryFile *os.File

	// Track if headers have been written
	traceHeaderWritten   bool
	summaryHeaderWritten bool
}

// NewOutputManager creates an output manager and initializes the output
// directory. Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	tracePath := filepath.Join(dir, "trace.csv")
	f, err := os.Create(tracePath)
	if err != nil {
		return nil, fmt.Errorf("creating trace.csv: %w", err)
	}
	om.traceFile = f

	summaryPath := filepath.Join(dir, "summary.csv")
	f, err = os.Create(summaryPath)
	if err != nil {
		om.traceFile.Close()
		return nil, fmt.Errorf("creating summary.csv: %w", err)
	}
	om.summaryFile = f

	return om, nil
}

// Dir returns the output directory, or "" when output is disabled.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteTrace appends frame samples to trace.csv.
func (om *OutputManager) WriteTrace(samples []FrameSample) error {
	if om == nil || len(samples) == 0 {
		return nil
	}

	if !om.traceHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(samples, om.traceFile); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		om.traceHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(samples, om.traceFile); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	return nil
}

// WriteSummary appends one fling summary to summary.csv.
func (om *OutputManager) WriteSummary(s Summary) error {
	if om == nil {
		return nil
	}

	records := []Summary{s}
	if !om.summaryHeaderWritten {
		if err := gocsv.Marshal(records, om.summaryFile); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
		om.summaryHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.summaryFile); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}
	return nil
}

// Close flushes and closes the output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if err := om.traceFile.Close(); err != nil {
		firstErr = err
	}
	if err := om.summaryFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
