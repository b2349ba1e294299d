package aim

import "github.com/crosshair-data/aim.report/internal/config"

// ConfigFromTuning builds an engine Config from a loaded tuning file.
func ConfigFromTuning(tuning *config.TuningConfig) Config {
	if tuning == nil {
		return DefaultConfig()
	}
	return Config{
		FlickVelocityThreshold:    tuning.GetFlickVelocityThreshold(),
		TrackingVelocityThreshold: tuning.GetTrackingVelocityThreshold(),
		StabilityLookAheadFrames:  tuning.GetStabilityLookAheadFrames(),
	}
}
