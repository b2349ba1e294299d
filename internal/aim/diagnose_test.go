package aim

import (
	"math"
	"strings"
	"testing"
)

func TestDiagnose_TooLow(t *testing.T) {
	metrics := DiagnosticMetrics{
		MaxVelocity:      3000, // low
		AvgVelocity:      500,  // low
		FlickCount:       10,
		SmallFlickCount:  2,
		LargeFlickCount:  1,
		Smoothness:       400,
		AvgFlickDistance: 250,
		Velocity95th:     3500,
	}
	verdict := Diagnose(metrics, 0.30)

	if verdict.Direction != SensTooLow {
		t.Fatalf("direction = %q, want %q", verdict.Direction, SensTooLow)
	}
	if verdict.TooLowScore < 2 {
		t.Errorf("too-low score = %d, want >= 2", verdict.TooLowScore)
	}
	if math.Abs(verdict.SuggestedMin-0.35) > 1e-9 || math.Abs(verdict.SuggestedMax-0.40) > 1e-9 {
		t.Errorf("suggested range = [%v, %v], want [0.35, 0.40]", verdict.SuggestedMin, verdict.SuggestedMax)
	}

	// Large flicks travelled at low peak velocity: the advisory warning for
	// slow target acquisition must fire.
	found := false
	for _, w := range verdict.Warnings {
		if strings.Contains(w, "quick acquisition") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a slow-acquisition warning, got %v", verdict.Warnings)
	}
}

func TestDiagnose_TooHigh(t *testing.T) {
	metrics := DiagnosticMetrics{
		MaxVelocity:          16000, // very high
		AvgVelocity:          2000,
		FlickCount:           10,
		SmallFlickCount:      3,
		LargeFlickCount:      2,
		CorrectionCount:      7,  // > 60% of flicks
		MicroAdjustmentCount: 25, // > 2x flicks
		Smoothness:           500,
	}
	verdict := Diagnose(metrics, 0.50)

	if verdict.Direction != SensTooHigh {
		t.Fatalf("direction = %q, want %q", verdict.Direction, SensTooHigh)
	}
	if verdict.TooHighScore != 2 {
		t.Errorf("too-high score = %d, want 2", verdict.TooHighScore)
	}
	if math.Abs(verdict.SuggestedMin-0.40) > 1e-9 || math.Abs(verdict.SuggestedMax-0.45) > 1e-9 {
		t.Errorf("suggested range = [%v, %v], want [0.40, 0.45]", verdict.SuggestedMin, verdict.SuggestedMax)
	}
}

func TestDiagnose_HighSmoothnessForcesVerdict(t *testing.T) {
	t.Run("jitter at low velocity reads too low", func(t *testing.T) {
		metrics := DiagnosticMetrics{
			MaxVelocity:     3000,
			AvgVelocity:     2000, // otherwise unremarkable
			Smoothness:      1500,
			FlickCount:      10,
			LargeFlickCount: 2,
		}
		verdict := Diagnose(metrics, 0.30)
		if verdict.TooLowScore != 3 {
			t.Errorf("too-low score = %d, want forced 3", verdict.TooLowScore)
		}
		if verdict.Direction != SensTooLow {
			t.Errorf("direction = %q, want %q", verdict.Direction, SensTooLow)
		}
	})
	t.Run("jitter at high velocity reads too high", func(t *testing.T) {
		metrics := DiagnosticMetrics{
			MaxVelocity:     20000,
			AvgVelocity:     2000,
			Smoothness:      1500,
			FlickCount:      10,
			LargeFlickCount: 2,
		}
		verdict := Diagnose(metrics, 0.50)
		if verdict.TooHighScore != 3 {
			t.Errorf("too-high score = %d, want forced 3", verdict.TooHighScore)
		}
		if verdict.Direction != SensTooHigh {
			t.Errorf("direction = %q, want %q", verdict.Direction, SensTooHigh)
		}
	})
	t.Run("jitter at middling velocity does not force", func(t *testing.T) {
		metrics := DiagnosticMetrics{
			MaxVelocity:     10000, // neither low nor high
			AvgVelocity:     2000,
			Smoothness:      1500,
			FlickCount:      10,
			SmallFlickCount: 2,
			LargeFlickCount: 2,
		}
		verdict := Diagnose(metrics, 0.40)
		if verdict.TooLowScore == 3 || verdict.TooHighScore == 3 {
			t.Errorf("scores = (%d, %d), forced score must not apply", verdict.TooLowScore, verdict.TooHighScore)
		}
	})
}

func TestDiagnose_TieFavoursTooLow(t *testing.T) {
	metrics := DiagnosticMetrics{
		MaxVelocity:          16000,
		AvgVelocity:          500, // low
		FlickCount:           10,
		SmallFlickCount:      5,
		LargeFlickCount:      0, // no large flicks
		CorrectionCount:      7,
		MicroAdjustmentCount: 25,
		Smoothness:           500,
	}
	verdict := Diagnose(metrics, 0.40)

	if verdict.TooLowScore != 2 || verdict.TooHighScore != 2 {
		t.Fatalf("scores = (%d, %d), want a 2-2 tie", verdict.TooLowScore, verdict.TooHighScore)
	}
	if verdict.Direction != SensTooLow {
		t.Errorf("direction = %q, want %q (ties resolve to too-low)", verdict.Direction, SensTooLow)
	}
}

func TestDiagnose_Reasonable(t *testing.T) {
	metrics := DiagnosticMetrics{
		MaxVelocity:          10000,
		AvgVelocity:          2000,
		FlickCount:           10,
		SmallFlickCount:      2,
		LargeFlickCount:      1,
		CorrectionCount:      2,
		MicroAdjustmentCount: 5,
		Smoothness:           500,
	}
	verdict := Diagnose(metrics, 0.40)

	if verdict.Direction != SensReasonable {
		t.Fatalf("direction = %q, want %q", verdict.Direction, SensReasonable)
	}
	if verdict.SuggestedMin != 0 || verdict.SuggestedMax != 0 {
		t.Errorf("suggested range = [%v, %v], want none", verdict.SuggestedMin, verdict.SuggestedMax)
	}
	if len(verdict.Reasons) != 1 || !strings.Contains(verdict.Reasons[0], "no major red flags") {
		t.Errorf("reasons = %v, want the single no-red-flags note", verdict.Reasons)
	}
	// Smoothness, correction rate and max velocity all sit in the good bands.
	if len(verdict.Strengths) != 3 {
		t.Errorf("strengths = %v, want all three", verdict.Strengths)
	}
	if len(verdict.Warnings) != 0 {
		t.Errorf("warnings = %v, want none", verdict.Warnings)
	}
}
