package aim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAnalyzeBatch_PreservesOrderAndMatchesSingle(t *testing.T) {
	inputs := []TraceInput{
		{Label: "slow", Sensitivity: 0.11, Positions: rampTrace()},
		{Label: "empty", Sensitivity: 0.23, Positions: nil},
		{Label: "flicky", Sensitivity: 0.47, Positions: []Position{
			{FrameNumber: 0, X: 0, Timestamp: 0},
			{FrameNumber: 1, X: 250, Timestamp: 0.01},
			{FrameNumber: 2, X: 250, Timestamp: 1.0},
		}},
	}
	config := DefaultConfig()

	results := AnalyzeBatch(inputs, config)
	if len(results) != len(inputs) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(inputs))
	}

	for i, input := range inputs {
		if results[i].Label != input.Label {
			t.Errorf("results[%d].Label = %q, want %q (order must be preserved)", i, results[i].Label, input.Label)
		}
		if results[i].Sensitivity != input.Sensitivity {
			t.Errorf("results[%d].Sensitivity = %v, want %v", i, results[i].Sensitivity, input.Sensitivity)
		}
		want := AnalyzeTrace(input, config)
		if diff := cmp.Diff(want, results[i]); diff != "" {
			t.Errorf("results[%d] differs from single-trace analysis (-want +got):\n%s", i, diff)
		}
	}
}

func TestAnalyzeBatch_Empty(t *testing.T) {
	if results := AnalyzeBatch(nil, DefaultConfig()); len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}

func TestAnalyzeTrace_FlickTrace(t *testing.T) {
	result := AnalyzeTrace(TraceInput{
		Label:       "single-flick",
		Sensitivity: 0.30,
		Positions: []Position{
			{FrameNumber: 0, X: 0, Timestamp: 0},
			{FrameNumber: 1, X: 250, Timestamp: 0.01},
			{FrameNumber: 2, X: 250, Timestamp: 1.0},
		},
	}, DefaultConfig())

	if result.Summary.Flicks.Count != 1 {
		t.Errorf("flick count = %d, want 1", result.Summary.Flicks.Count)
	}
	if result.Metrics.MediumFlickCount != 1 {
		t.Errorf("medium flick count = %d, want 1 (250 px lands in the medium tier)", result.Metrics.MediumFlickCount)
	}
	if len(result.Tiers) != len(Tiers) {
		t.Errorf("len(result.Tiers) = %d, want %d", len(result.Tiers), len(Tiers))
	}
	if result.Verdict.Direction == "" {
		t.Error("verdict direction must always be set")
	}
}
