// Package config loads the analysis tuning file. Every engine threshold is a
// named, overridable parameter; fields omitted from the JSON keep their
// defaults, so partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TuningConfig is the root tuning schema. Pointer fields distinguish "not
// set" from an explicit zero so partial override files work.
type TuningConfig struct {
	// Episode classifier params
	FlickVelocityThreshold    *float64 `json:"flick_velocity_threshold,omitempty"`    // px/s
	TrackingVelocityThreshold *float64 `json:"tracking_velocity_threshold,omitempty"` // px/s

	// Stability analyzer params
	StabilityLookAheadFrames *int `json:"stability_look_ahead_frames,omitempty"`

	// Trace pre-processing params
	SmoothingWindow *int `json:"smoothing_window,omitempty"`

	// Accuracy scorer params
	NearestTargetMaxDistance *float64 `json:"nearest_target_max_distance,omitempty"` // px
}

// EmptyTuningConfig returns a TuningConfig with all fields unset; the Get*
// accessors then serve defaults for everything.
func EmptyTuningConfig() *TuningConfig {
	return &TuningConfig{}
}

// LoadTuningConfig loads a TuningConfig from a JSON file. The path must have
// a .json extension and stay under a small size cap.
func LoadTuningConfig(path string) (*TuningConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyTuningConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that any set values are usable.
func (c *TuningConfig) Validate() error {
	if c.FlickVelocityThreshold != nil && *c.FlickVelocityThreshold <= 0 {
		return fmt.Errorf("flick_velocity_threshold must be positive, got %f", *c.FlickVelocityThreshold)
	}
	if c.TrackingVelocityThreshold != nil && *c.TrackingVelocityThreshold <= 0 {
		return fmt.Errorf("tracking_velocity_threshold must be positive, got %f", *c.TrackingVelocityThreshold)
	}
	if c.FlickVelocityThreshold != nil && c.TrackingVelocityThreshold != nil &&
		*c.TrackingVelocityThreshold >= *c.FlickVelocityThreshold {
		return fmt.Errorf("tracking_velocity_threshold (%f) must be below flick_velocity_threshold (%f)",
			*c.TrackingVelocityThreshold, *c.FlickVelocityThreshold)
	}
	if c.StabilityLookAheadFrames != nil && *c.StabilityLookAheadFrames < 1 {
		return fmt.Errorf("stability_look_ahead_frames must be at least 1, got %d", *c.StabilityLookAheadFrames)
	}
	if c.SmoothingWindow != nil && *c.SmoothingWindow < 0 {
		return fmt.Errorf("smoothing_window must be non-negative, got %d", *c.SmoothingWindow)
	}
	if c.NearestTargetMaxDistance != nil && *c.NearestTargetMaxDistance <= 0 {
		return fmt.Errorf("nearest_target_max_distance must be positive, got %f", *c.NearestTargetMaxDistance)
	}
	return nil
}

// GetFlickVelocityThreshold returns the flick threshold or the default.
func (c *TuningConfig) GetFlickVelocityThreshold() float64 {
	if c.FlickVelocityThreshold == nil {
		return 2000
	}
	return *c.FlickVelocityThreshold
}

// GetTrackingVelocityThreshold returns the tracking threshold or the default.
func (c *TuningConfig) GetTrackingVelocityThreshold() float64 {
	if c.TrackingVelocityThreshold == nil {
		return 500
	}
	return *c.TrackingVelocityThreshold
}

// GetStabilityLookAheadFrames returns the stability window or the default.
func (c *TuningConfig) GetStabilityLookAheadFrames() int {
	if c.StabilityLookAheadFrames == nil {
		return 10
	}
	return *c.StabilityLookAheadFrames
}

// GetSmoothingWindow returns the smoothing window or the default. Zero
// disables smoothing.
func (c *TuningConfig) GetSmoothingWindow() int {
	if c.SmoothingWindow == nil {
		return 5
	}
	return *c.SmoothingWindow
}

// GetNearestTargetMaxDistance returns the lookup cutoff or the default.
func (c *TuningConfig) GetNearestTargetMaxDistance() float64 {
	if c.NearestTargetMaxDistance == nil {
		return 300
	}
	return *c.NearestTargetMaxDistance
}
