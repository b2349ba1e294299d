package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEmptyTuningConfig_Defaults(t *testing.T) {
	cfg := EmptyTuningConfig()
	if got := cfg.GetFlickVelocityThreshold(); got != 2000 {
		t.Errorf("GetFlickVelocityThreshold() = %v, want 2000", got)
	}
	if got := cfg.GetTrackingVelocityThreshold(); got != 500 {
		t.Errorf("GetTrackingVelocityThreshold() = %v, want 500", got)
	}
	if got := cfg.GetStabilityLookAheadFrames(); got != 10 {
		t.Errorf("GetStabilityLookAheadFrames() = %v, want 10", got)
	}
	if got := cfg.GetSmoothingWindow(); got != 5 {
		t.Errorf("GetSmoothingWindow() = %v, want 5", got)
	}
	if got := cfg.GetNearestTargetMaxDistance(); got != 300 {
		t.Errorf("GetNearestTargetMaxDistance() = %v, want 300", got)
	}
}

func TestLoadTuningConfig_PartialOverride(t *testing.T) {
	path := writeConfig(t, `{
	  "flick_velocity_threshold": 1500,
	  "smoothing_window": 0
	}`)
	cfg, err := LoadTuningConfig(path)
	if err != nil {
		t.Fatalf("LoadTuningConfig: %v", err)
	}

	if got := cfg.GetFlickVelocityThreshold(); got != 1500 {
		t.Errorf("GetFlickVelocityThreshold() = %v, want overridden 1500", got)
	}
	if got := cfg.GetSmoothingWindow(); got != 0 {
		t.Errorf("GetSmoothingWindow() = %v, want explicit 0 (smoothing disabled)", got)
	}
	// Untouched fields keep their defaults.
	if got := cfg.GetTrackingVelocityThreshold(); got != 500 {
		t.Errorf("GetTrackingVelocityThreshold() = %v, want default 500", got)
	}
	if got := cfg.GetStabilityLookAheadFrames(); got != 10 {
		t.Errorf("GetStabilityLookAheadFrames() = %v, want default 10", got)
	}
}

func TestLoadTuningConfig_Errors(t *testing.T) {
	cases := []struct {
		name     string
		contents string
	}{
		{"malformed json", `{broken`},
		{"negative flick threshold", `{"flick_velocity_threshold": -5}`},
		{"zero tracking threshold", `{"tracking_velocity_threshold": 0}`},
		{"tracking above flick", `{"flick_velocity_threshold": 400, "tracking_velocity_threshold": 500}`},
		{"tracking equals flick", `{"flick_velocity_threshold": 500, "tracking_velocity_threshold": 500}`},
		{"zero look-ahead", `{"stability_look_ahead_frames": 0}`},
		{"negative smoothing window", `{"smoothing_window": -1}`},
		{"negative target distance", `{"nearest_target_max_distance": -10}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			if _, err := LoadTuningConfig(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadTuningConfig_FileChecks(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTuningConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})
	t.Run("wrong extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadTuningConfig(path); err == nil {
			t.Error("expected an error for a non-JSON extension")
		}
	})
}
