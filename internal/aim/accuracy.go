package aim

import "math"

// Accuracy scorer constants.
const (
	// onTargetTolerancePx is the error band within which a flick counts as
	// on-target; beyond it the flick is an overshoot or undershoot.
	onTargetTolerancePx = 15.0

	// DefaultNearestTargetMaxDistancePx bounds the nearest-target lookup.
	DefaultNearestTargetMaxDistancePx = 300.0
)

// Target is a detected head position with a detector confidence.
type Target struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

// TargetSource supplies per-frame head detections. Implementations wrap the
// external object-detection collaborator; the engine never runs inference or
// opens media itself.
type TargetSource interface {
	// TargetsAt returns the detections for a frame, empty when the frame was
	// not analysed or nothing was detected.
	TargetsAt(frameNumber int) []Target
}

// FlickAccuracy classifies one flick against the nearest detected target.
type FlickAccuracy struct {
	FrameNumber      int     `json:"frameNumber"`
	Error            float64 `json:"error"` // positive overshoot, negative undershoot
	DistanceToTarget float64 `json:"distanceToTarget"`
	FlickDistance    float64 `json:"flickDistance"`
	TargetConfidence float64 `json:"targetConfidence"`
}

// FlickAccuracyStats aggregates overshoot/undershoot behaviour across flicks.
type FlickAccuracyStats struct {
	TotalFlicks        int     `json:"totalFlicks"`
	OvershootCount     int     `json:"overshootCount"`
	UndershootCount    int     `json:"undershootCount"`
	OnTargetCount      int     `json:"onTargetCount"`
	OvershootPercent   float64 `json:"overshootPercent"`
	UndershootPercent  float64 `json:"undershootPercent"`
	OnTargetPercent    float64 `json:"onTargetPercent"`
	AvgOvershootError  float64 `json:"avgOvershootError"`
	AvgUndershootError float64 `json:"avgUndershootError"`

	Overshoots  []FlickAccuracy `json:"overshoots"`
	Undershoots []FlickAccuracy `json:"undershoots"`
	OnTarget    []FlickAccuracy `json:"onTarget"`
}

// NearestTarget returns the target closest to (x, y) within maxDistance, and
// whether one was found.
func NearestTarget(targets []Target, x, y, maxDistance float64) (Target, float64, bool) {
	var nearest Target
	nearestDistance := math.Inf(1)
	found := false
	for _, t := range targets {
		distance := math.Hypot(x-t.X, y-t.Y)
		if distance < nearestDistance && distance < maxDistance {
			nearestDistance = distance
			nearest = t
			found = true
		}
	}
	return nearest, nearestDistance, found
}

// AnalyzeFlickAccuracy classifies each flick in the trace as overshoot,
// undershoot or on-target by projecting the flick vector onto the vector from
// the flick's start position to the nearest target at the flick's end frame.
// A positive projection error beyond the tolerance band is an overshoot, a
// negative one an undershoot. Flicks with no usable target are skipped.
//
// The second return value is false when no flick could be scored, the defined
// no-result outcome for traces without target data.
func AnalyzeFlickAccuracy(positions []Position, targets TargetSource, velocityThreshold float64) (FlickAccuracyStats, bool) {
	var stats FlickAccuracyStats

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
		if velocity <= velocityThreshold {
			continue
		}

		detections := targets.TargetsAt(curr.FrameNumber)
		if len(detections) == 0 {
			continue
		}
		target, _, ok := NearestTarget(detections, curr.X, curr.Y, DefaultNearestTargetMaxDistancePx)
		if !ok {
			continue
		}

		// Vector from the flick's start to the target, and the flick vector
		// projected onto it. Error is how far past (or short of) the target
		// the projection landed.
		targetDX := target.X - prev.X
		targetDY := target.Y - prev.Y
		distanceToTarget := math.Hypot(targetDX, targetDY)
		if distanceToTarget <= 0 {
			continue
		}
		projection := (dx*targetDX + dy*targetDY) / distanceToTarget
		err := projection - distanceToTarget

		record := FlickAccuracy{
			FrameNumber:      curr.FrameNumber,
			Error:            err,
			DistanceToTarget: distanceToTarget,
			FlickDistance:    distance,
			TargetConfidence: target.Confidence,
		}
		switch {
		case err > onTargetTolerancePx:
			stats.Overshoots = append(stats.Overshoots, record)
		case err < -onTargetTolerancePx:
			stats.Undershoots = append(stats.Undershoots, record)
		default:
			stats.OnTarget = append(stats.OnTarget, record)
		}
	}

	stats.OvershootCount = len(stats.Overshoots)
	stats.UndershootCount = len(stats.Undershoots)
	stats.OnTargetCount = len(stats.OnTarget)
	stats.TotalFlicks = stats.OvershootCount + stats.UndershootCount + stats.OnTargetCount
	if stats.TotalFlicks == 0 {
		return FlickAccuracyStats{}, false
	}

	total := float64(stats.TotalFlicks)
	stats.OvershootPercent = float64(stats.OvershootCount) / total * 100
	stats.UndershootPercent = float64(stats.UndershootCount) / total * 100
	stats.OnTargetPercent = float64(stats.OnTargetCount) / total * 100

	if stats.OvershootCount > 0 {
		var sum float64
		for _, f := range stats.Overshoots {
			sum += f.Error
		}
		stats.AvgOvershootError = sum / float64(stats.OvershootCount)
	}
	if stats.UndershootCount > 0 {
		var sum float64
		for _, f := range stats.Undershoots {
			sum += math.Abs(f.Error)
		}
		stats.AvgUndershootError = sum / float64(stats.UndershootCount)
	}
	return stats, true
}
