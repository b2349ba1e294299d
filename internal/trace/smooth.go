package trace

import "github.com/crosshair-data/aim.report/internal/aim"

// DefaultSmoothingWindow is the moving-average window used by the drivers.
const DefaultSmoothingWindow = 5

// Smooth reduces localiser jitter with a centred moving average over
// windowSize samples. Frame numbers and timestamps are preserved; only
// coordinates are averaged. Traces shorter than the window are returned
// unchanged. The input is never mutated.
func Smooth(positions []aim.Position, windowSize int) []aim.Position {
	if windowSize < 2 || len(positions) < windowSize {
		return positions
	}

	smoothed := make([]aim.Position, len(positions))
	half := windowSize / 2
	for i := range positions {
		start := max(0, i-half)
		end := min(len(positions), i+half+1)

		var sumX, sumY float64
		for _, p := range positions[start:end] {
			sumX += p.X
			sumY += p.Y
		}
		n := float64(end - start)

		smoothed[i] = aim.Position{
			FrameNumber: positions[i].FrameNumber,
			X:           sumX / n,
			Y:           sumY / n,
			Timestamp:   positions[i].Timestamp,
		}
	}
	return smoothed
}
