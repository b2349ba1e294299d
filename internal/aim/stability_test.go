package aim

import (
	"math"
	"testing"
)

// settledTrace builds a trace where a flick ends at frame 5 and the window
// afterwards first corrects, then settles.
func settledTrace() []Position {
	positions := make([]Position, 20)
	for i := range positions {
		positions[i] = Position{FrameNumber: i, Timestamp: float64(i) * 0.02}
	}
	// Flick lands at frame 5, overshoots, then two corrective steps and rest.
	positions[5].X = 200
	positions[6].X = 195 // 5 px correction
	positions[7].X = 192 // 3 px correction
	for i := 8; i < 20; i++ {
		positions[i].X = 192 // settled, steps of 0 px
	}
	return positions
}

func TestAnalyzeStability_SettlesAfterCorrections(t *testing.T) {
	positions := settledTrace()
	record, ok := AnalyzeStability(positions, 5, 10)
	if !ok {
		t.Fatal("expected a stability record")
	}
	if record.CorrectionCount != 2 {
		t.Errorf("correction count = %d, want 2", record.CorrectionCount)
	}
	if math.Abs(record.CorrectionDistance-8) > 1e-9 {
		t.Errorf("correction distance = %v, want 8", record.CorrectionDistance)
	}
	// First sub-threshold step is frame 7 -> 8, so stabilization is the
	// offset of frame 8 from the window start at frame 5.
	wantTime := positions[8].Timestamp - positions[5].Timestamp
	if math.Abs(record.StabilizationTime-wantTime) > 1e-9 {
		t.Errorf("stabilization time = %v, want %v", record.StabilizationTime, wantTime)
	}
}

func TestAnalyzeStability_NoResult(t *testing.T) {
	positions := settledTrace()

	t.Run("flick frame absent", func(t *testing.T) {
		if _, ok := AnalyzeStability(positions, 99, 10); ok {
			t.Error("expected no record for a frame not in the trace")
		}
	})
	t.Run("window runs past the trace", func(t *testing.T) {
		if _, ok := AnalyzeStability(positions, 15, 10); ok {
			t.Error("expected no record when fewer than lookAheadFrames samples remain")
		}
		// One more trailing sample makes the window fit exactly.
		if _, ok := AnalyzeStability(positions, 9, 10); !ok {
			t.Error("expected a record when the window fits exactly")
		}
	})
	t.Run("empty trace", func(t *testing.T) {
		if _, ok := AnalyzeStability(nil, 0, 10); ok {
			t.Error("expected no record for an empty trace")
		}
	})
}

func TestAnalyzeStability_SettleThresholdBoundary(t *testing.T) {
	// A steady 2 px drift is classified as correction on every step, so the
	// crosshair never settles and the fallback time is the whole window.
	positions := make([]Position, 15)
	for i := range positions {
		positions[i] = Position{
			FrameNumber: i,
			X:           float64(i) * 2,
			Timestamp:   float64(i) * 0.02,
		}
	}
	record, ok := AnalyzeStability(positions, 0, 10)
	if !ok {
		t.Fatal("expected a stability record")
	}
	if record.CorrectionCount != 10 {
		t.Errorf("correction count = %d, want 10 (2 px steps count as corrections)", record.CorrectionCount)
	}
	wantTime := positions[10].Timestamp - positions[0].Timestamp
	if math.Abs(record.StabilizationTime-wantTime) > 1e-9 {
		t.Errorf("stabilization time = %v, want full window %v", record.StabilizationTime, wantTime)
	}
}

func TestAnalyzeStability_ImmediatelyStable(t *testing.T) {
	positions := make([]Position, 15)
	for i := range positions {
		positions[i] = Position{FrameNumber: i, X: 100, Timestamp: float64(i) * 0.02}
	}
	record, ok := AnalyzeStability(positions, 2, 10)
	if !ok {
		t.Fatal("expected a stability record")
	}
	if record.CorrectionCount != 0 || record.CorrectionDistance != 0 {
		t.Errorf("corrections = (%d, %v), want none", record.CorrectionCount, record.CorrectionDistance)
	}
	// The very first step settles.
	if math.Abs(record.StabilizationTime-0.02) > 1e-9 {
		t.Errorf("stabilization time = %v, want 0.02", record.StabilizationTime)
	}
}
