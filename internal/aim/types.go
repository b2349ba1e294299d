// Package aim derives movement kinematics from a recorded crosshair trace and
// classifies them into movement episodes: flicks (bucketed by distance),
// sustained tracking segments, reversal corrections and micro-adjustments.
// All computations are pure functions over an already-captured, chronologically
// ordered position sequence; video decoding and crosshair localisation live
// outside this package and hand in finished traces.
package aim

// Position is a single crosshair sample produced by the external localiser.
// Frames where detection failed are simply absent, so the sequence may be
// irregularly timed. Coordinates are screen pixels, Timestamp is seconds.
type Position struct {
	FrameNumber int     `json:"frameNumber"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Timestamp   float64 `json:"timestamp"`
}

// Movement is the derived step between two consecutive positions.
// Distance is pixels, Velocity pixels/second, Direction degrees in (-180, 180].
type Movement struct {
	FrameStart int     `json:"frameStart"`
	FrameEnd   int     `json:"frameEnd"`
	DX         float64 `json:"dx"`
	DY         float64 `json:"dy"`
	Distance   float64 `json:"distance"`
	TimeDiff   float64 `json:"timeDiff"`
	Velocity   float64 `json:"velocity"`
	Direction  float64 `json:"direction"`
}

// FlickTier buckets flicks by distance.
type FlickTier string

const (
	TierSmall  FlickTier = "small"  // [0, 100) px: micro target acquisition
	TierMedium FlickTier = "medium" // [100, 300) px: standard acquisition
	TierLarge  FlickTier = "large"  // [300, ∞) px: wide sweeps
)

// Tiers lists the distance tiers in ascending order. Callers may rely on all
// three keys being present in any per-tier map or analysis result.
var Tiers = []FlickTier{TierSmall, TierMedium, TierLarge}

// Flick is a single movement whose velocity exceeded the flick threshold.
type Flick struct {
	FrameStart int     `json:"frameStart"`
	FrameEnd   int     `json:"frameEnd"`
	Distance   float64 `json:"distance"`
	Velocity   float64 `json:"velocity"`
	Direction  float64 `json:"direction"`
}

// Tier returns the distance tier for the flick.
func (f Flick) Tier() FlickTier {
	switch {
	case f.Distance < smallFlickMaxPx:
		return TierSmall
	case f.Distance < mediumFlickMaxPx:
		return TierMedium
	default:
		return TierLarge
	}
}

// StabilityRecord measures how the crosshair settles after a flick.
// CorrectionDistance and CorrectionCount cover post-flick steps that moved at
// least the settle threshold (2 px); StabilizationTime is the offset in
// seconds from the flick end to the first step under the threshold, or the
// total window time when the crosshair never settled inside the window.
type StabilityRecord struct {
	CorrectionDistance float64 `json:"correctionDistance"`
	CorrectionCount    int     `json:"correctionCount"`
	StabilizationTime  float64 `json:"stabilizationTime"`
}

// TrackingSegment is a maximal run of at least three consecutive movements of
// sustained moderate-velocity motion. Duration counts member movements.
type TrackingSegment struct {
	StartFrame  int     `json:"startFrame"`
	EndFrame    int     `json:"endFrame"`
	Duration    int     `json:"duration"`
	Distance    float64 `json:"distance"`
	AvgVelocity float64 `json:"avgVelocity"`
}

// ReversalCorrection is a movement that reversed direction by more than 90°
// immediately after a fast movement. Distinct from the post-flick correction
// steps counted in StabilityRecord, which share the name in this domain.
type ReversalCorrection struct {
	Frame              int     `json:"frame"`
	CorrectionDistance float64 `json:"correctionDistance"`
}

// MicroAdjustment is a small, slower movement: the fine repositioning a
// player makes between acquisitions.
type MicroAdjustment struct {
	FrameStart int     `json:"frameStart"`
	FrameEnd   int     `json:"frameEnd"`
	Distance   float64 `json:"distance"`
	Velocity   float64 `json:"velocity"`
}

// FlickStats aggregates the unbucketed flick set.
type FlickStats struct {
	Count           int     `json:"count"`
	AverageDistance float64 `json:"averageDistance"`
	AverageVelocity float64 `json:"averageVelocity"`
	MaxDistance     float64 `json:"maxDistance"`
	MaxVelocity     float64 `json:"maxVelocity"`
}

// TierStats aggregates one distance tier, including the mean post-flick
// stability across the tier's flicks. Flicks whose stability window ran past
// the end of the trace are excluded from the stability means, not zeroed.
type TierStats struct {
	Count                 int     `json:"count"`
	AvgDistance           float64 `json:"avgDistance"`
	AvgVelocity           float64 `json:"avgVelocity"`
	AvgCorrectionCount    float64 `json:"avgCorrectionCount"`
	AvgCorrectionDistance float64 `json:"avgCorrectionDistance"`
	AvgStabilizationTime  float64 `json:"avgStabilizationTime"`
}

// VelocityDistribution summarises the raw per-movement velocity collection.
// Percentiles use linear interpolation between order statistics.
type VelocityDistribution struct {
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	P95    float64 `json:"p95"`
	Max    float64 `json:"max"`
}

// Summary is the roll-up for one analysed trace. Smoothness is the population
// standard deviation of consecutive velocity deltas; lower is steadier.
type Summary struct {
	TotalFrames           int        `json:"totalFrames"`
	TotalDistance         float64    `json:"totalDistance"`
	AverageVelocity       float64    `json:"averageVelocity"`
	MaxVelocity           float64    `json:"maxVelocity"`
	Smoothness            float64    `json:"smoothness"`
	Flicks                FlickStats `json:"flicks"`
	TrackingSegmentCount  int        `json:"trackingSegmentCount"`
	TotalTrackingDistance float64    `json:"totalTrackingDistance"`
}

// DiagnosticMetrics carries everything the sensitivity reasoner evaluates.
type DiagnosticMetrics struct {
	TotalFrames           int     `json:"totalFrames"`
	TotalDistance         float64 `json:"totalDistance"`
	AvgVelocity           float64 `json:"avgVelocity"`
	MaxVelocity           float64 `json:"maxVelocity"`
	Smoothness            float64 `json:"smoothness"`
	FlickCount            int     `json:"flickCount"`
	SmallFlickCount       int     `json:"smallFlickCount"`
	MediumFlickCount      int     `json:"mediumFlickCount"`
	LargeFlickCount       int     `json:"largeFlickCount"`
	AvgFlickDistance      float64 `json:"avgFlickDistance"`
	MicroAdjustmentCount  int     `json:"microAdjustmentCount"`
	CorrectionCount       int     `json:"correctionCount"`
	AvgCorrectionDistance float64 `json:"avgCorrectionDistance"`
	VelocityMedian        float64 `json:"velocityMedian"`
	Velocity95th          float64 `json:"velocity95th"`
}
