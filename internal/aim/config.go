package aim

// Threshold constants. The numeric values are empirically tuned against TDM
// footage; treat them as configuration, not derived quantities.
const (
	// DefaultFlickVelocityPxPerSec is the minimum velocity for a movement to
	// count as a flick (strict greater-than).
	DefaultFlickVelocityPxPerSec = 2000.0

	// DefaultTrackingVelocityPxPerSec is the maximum velocity for a movement
	// to extend a tracking segment.
	DefaultTrackingVelocityPxPerSec = 500.0

	// trackingMinStepPx is the minimum per-step distance for tracking motion;
	// anything smaller is jitter, not deliberate target following.
	trackingMinStepPx = 5.0

	// trackingMinRunLength is the minimum number of consecutive qualifying
	// movements before a run is emitted as a segment.
	trackingMinRunLength = 3

	// reversalVelocityPxPerSec is the minimum prior-movement velocity for a
	// direction reversal to count as a correction.
	reversalVelocityPxPerSec = 1500.0

	// DefaultStabilityLookAheadFrames is the post-flick window length in
	// samples for stability analysis.
	DefaultStabilityLookAheadFrames = 10

	// settleThresholdPx partitions post-flick steps: >= settleThresholdPx is a
	// correction, < settleThresholdPx means the crosshair has stabilised.
	settleThresholdPx = 2.0

	// Flick distance tier boundaries (half-open: 100 px is medium, 300 large).
	smallFlickMaxPx  = 100.0
	mediumFlickMaxPx = 300.0

	// Micro-adjustment band: small, slower repositioning movements.
	microAdjustMinDistancePx    = 10.0
	microAdjustMaxDistancePx    = 50.0
	microAdjustMaxVelocityPxSec = 1000.0
)

// Config holds the engine thresholds. The zero value is not usable; start
// from DefaultConfig and override fields as needed.
type Config struct {
	// FlickVelocityThreshold is the minimum velocity (px/s) for a flick.
	FlickVelocityThreshold float64

	// TrackingVelocityThreshold is the maximum velocity (px/s) for tracking.
	TrackingVelocityThreshold float64

	// StabilityLookAheadFrames is the post-flick stability window length.
	StabilityLookAheadFrames int
}

// DefaultConfig returns the thresholds the summary contract is defined
// against (flick 2000 px/s, tracking 500 px/s, look-ahead 10 samples).
func DefaultConfig() Config {
	return Config{
		FlickVelocityThreshold:    DefaultFlickVelocityPxPerSec,
		TrackingVelocityThreshold: DefaultTrackingVelocityPxPerSec,
		StabilityLookAheadFrames:  DefaultStabilityLookAheadFrames,
	}
}
