// Package trace is the position-sequence boundary of the engine: loading and
// saving crosshair traces as JSON, validating chronology, and smoothing raw
// localiser output before analysis.
package trace

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crosshair-data/aim.report/internal/aim"
)

// Load reads a trace from a JSON file: a flat array of position objects as
// written by the external crosshair localiser (or Save).
func Load(path string) ([]aim.Position, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read trace file: %w", err)
	}

	var positions []aim.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		return nil, fmt.Errorf("failed to parse trace JSON %s: %w", path, err)
	}
	return positions, nil
}

// Save writes a trace to a JSON file, indented for inspection.
func Save(path string, positions []aim.Position) error {
	data, err := json.MarshalIndent(positions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode trace: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write trace file: %w", err)
	}
	return nil
}

// Validate checks that the sequence is chronological: frame numbers strictly
// increasing (no duplicates) and timestamps non-decreasing. The engine
// tolerates malformed input defensively, so validation is an opt-in boundary
// check for callers that want to fail fast on bad capture data.
func Validate(positions []aim.Position) error {
	for i := 1; i < len(positions); i++ {
		prev := positions[i-1]
		curr := positions[i]
		if curr.FrameNumber <= prev.FrameNumber {
			return fmt.Errorf("frame numbers not strictly increasing at index %d: %d after %d",
				i, curr.FrameNumber, prev.FrameNumber)
		}
		if curr.Timestamp < prev.Timestamp {
			return fmt.Errorf("timestamps not monotonic at index %d: %f after %f",
				i, curr.Timestamp, prev.Timestamp)
		}
	}
	return nil
}
