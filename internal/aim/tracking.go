package aim

import "gonum.org/v1/gonum/stat"

// DetectTrackingSegments scans the movement sequence for sustained runs of
// moderate-velocity motion. A movement extends the current run when its
// velocity is at or below velocityThreshold and it covers more than the
// minimum step distance; any other movement closes the run. Closed runs are
// emitted only when they have at least three members; shorter runs are
// dropped, never merged into neighbours. The run still open at the end of the
// sequence is flushed under the same rule.
func DetectTrackingSegments(movements []Movement, velocityThreshold float64) []TrackingSegment {
	segments := make([]TrackingSegment, 0)
	run := make([]Movement, 0)

	flush := func() {
		if len(run) >= trackingMinRunLength {
			segments = append(segments, newTrackingSegment(run))
		}
		run = run[:0]
	}

	for _, m := range movements {
		if m.Velocity <= velocityThreshold && m.Distance > trackingMinStepPx {
			run = append(run, m)
			continue
		}
		flush()
	}
	flush()

	return segments
}

func newTrackingSegment(run []Movement) TrackingSegment {
	var distance float64
	velocities := make([]float64, len(run))
	for i, m := range run {
		distance += m.Distance
		velocities[i] = m.Velocity
	}
	return TrackingSegment{
		StartFrame:  run[0].FrameStart,
		EndFrame:    run[len(run)-1].FrameEnd,
		Duration:    len(run),
		Distance:    distance,
		AvgVelocity: stat.Mean(velocities, nil),
	}
}
