package aim

import "math"

// DeriveMovements converts an ordered position sequence into per-step movement
// vectors. For fewer than two positions it returns an empty slice. The input
// is expected to be sorted by frame number and timestamp; a non-positive time
// delta (duplicate or out-of-order timestamps) yields a zero velocity rather
// than an error or an infinite value.
//
// No smoothing happens here. Traces should be smoothed upstream (see
// trace.Smooth) before derivation if the localiser output is jittery.
func DeriveMovements(positions []Position) []Movement {
	if len(positions) < 2 {
		return []Movement{}
	}

	movements := make([]Movement, 0, len(positions)-1)
	for i := 1; i < len(positions); i++ {
		prev := positions[i-1]
		curr := positions[i]

		dx := curr.X - prev.X
		dy := curr.Y - prev.Y
		distance := math.Hypot(dx, dy)
		timeDiff := curr.Timestamp - prev.Timestamp

		velocity := 0.0
		if timeDiff > 0 {
			velocity = distance / timeDiff
		}

		movements = append(movements, Movement{
			FrameStart: prev.FrameNumber,
			FrameEnd:   curr.FrameNumber,
			DX:         dx,
			DY:         dy,
			Distance:   distance,
			TimeDiff:   timeDiff,
			Velocity:   velocity,
			Direction:  math.Atan2(dy, dx) * 180 / math.Pi,
		})
	}
	return movements
}
