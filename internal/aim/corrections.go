package aim

import "math"

// DetectReversalCorrections scans consecutive movement pairs for overshoot
// reversals: the prior movement was fast (> 1500 px/s) and the next movement
// heads off by more than 90°. Every qualifying pair is an independent event;
// there is no hysteresis, so chained reversals each count.
//
// The angular comparison recomputes both directions with atan2 in radians and
// takes the absolute raw difference, deliberately without wrapping to
// (-π, π]: a prior heading of +170° against +(-170°) reads as a 340° swing and
// still qualifies, matching how the detector was tuned.
func DetectReversalCorrections(movements []Movement) []ReversalCorrection {
	corrections := make([]ReversalCorrection, 0)
	for i := 1; i < len(movements); i++ {
		prev := movements[i-1]
		curr := movements[i]

		if prev.Velocity <= reversalVelocityPxPerSec {
			continue
		}

		prevAngle := math.Atan2(prev.DY, prev.DX)
		currAngle := math.Atan2(curr.DY, curr.DX)
		if math.Abs(prevAngle-currAngle) > math.Pi/2 {
			corrections = append(corrections, ReversalCorrection{
				Frame:              curr.FrameStart,
				CorrectionDistance: curr.Distance,
			})
		}
	}
	return corrections
}
