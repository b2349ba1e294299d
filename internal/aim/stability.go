package aim

import "math"

// AnalyzeStability measures how the crosshair settled after a flick ending at
// flickEndFrame. It recomputes step distances over the look-ahead window
// [flickIndex, flickIndex+lookAheadFrames] rather than reusing the global
// movement list, since the window boundaries differ from the trace's own
// step boundaries when frames were skipped.
//
// The second return value is false when the flick frame is not present in the
// trace or fewer than lookAheadFrames samples remain after it. A short window
// is never truncated silently; insufficient data is a defined no-result, not
// an error.
//
// Step classification is an exhaustive partition at the settle threshold:
// steps of at least 2 px count toward correction distance and count, steps
// under 2 px stabilise. StabilizationTime is the timestamp offset of the
// first stabilising step, or the window's total elapsed time when the
// crosshair never settled inside it.
func AnalyzeStability(positions []Position, flickEndFrame, lookAheadFrames int) (StabilityRecord, bool) {
	flickIndex := -1
	for i, p := range positions {
		if p.FrameNumber == flickEndFrame {
			flickIndex = i
			break
		}
	}
	if flickIndex < 0 || flickIndex+lookAheadFrames >= len(positions) {
		return StabilityRecord{}, false
	}

	window := positions[flickIndex : flickIndex+lookAheadFrames+1]

	var record StabilityRecord
	stabilized := false
	for i := 1; i < len(window); i++ {
		prev := window[i-1]
		curr := window[i]
		distance := math.Hypot(curr.X-prev.X, curr.Y-prev.Y)

		if distance >= settleThresholdPx {
			record.CorrectionDistance += distance
			record.CorrectionCount++
		} else if !stabilized {
			record.StabilizationTime = curr.Timestamp - window[0].Timestamp
			stabilized = true
		}
	}
	if !stabilized {
		record.StabilizationTime = window[len(window)-1].Timestamp - window[0].Timestamp
	}

	return record, true
}
