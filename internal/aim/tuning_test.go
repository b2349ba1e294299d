package aim

import (
	"testing"

	"github.com/crosshair-data/aim.report/internal/config"
)

func TestConfigFromTuning(t *testing.T) {
	t.Run("nil tuning yields defaults", func(t *testing.T) {
		if got := ConfigFromTuning(nil); got != DefaultConfig() {
			t.Errorf("ConfigFromTuning(nil) = %+v, want defaults", got)
		}
	})
	t.Run("empty tuning yields defaults", func(t *testing.T) {
		if got := ConfigFromTuning(config.EmptyTuningConfig()); got != DefaultConfig() {
			t.Errorf("ConfigFromTuning(empty) = %+v, want defaults", got)
		}
	})
	t.Run("overrides carry through", func(t *testing.T) {
		flick := 1500.0
		frames := 20
		tuning := &config.TuningConfig{
			FlickVelocityThreshold:   &flick,
			StabilityLookAheadFrames: &frames,
		}
		got := ConfigFromTuning(tuning)
		if got.FlickVelocityThreshold != 1500 {
			t.Errorf("FlickVelocityThreshold = %v, want 1500", got.FlickVelocityThreshold)
		}
		if got.StabilityLookAheadFrames != 20 {
			t.Errorf("StabilityLookAheadFrames = %d, want 20", got.StabilityLookAheadFrames)
		}
		if got.TrackingVelocityThreshold != DefaultTrackingVelocityPxPerSec {
			t.Errorf("TrackingVelocityThreshold = %v, want default", got.TrackingVelocityThreshold)
		}
	})
}
