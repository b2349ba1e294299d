package aim

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Analyzer owns one analysis of one position sequence. Movements are derived
// once at construction and every method reads from that immutable snapshot,
// so an Analyzer is safe to share between goroutines. Analysing a changed
// trace means building a new Analyzer; there is no incremental update.
type Analyzer struct {
	positions []Position
	movements []Movement
	config    Config
}

// NewAnalyzer derives movements for the trace under the given thresholds.
func NewAnalyzer(positions []Position, config Config) *Analyzer {
	return &Analyzer{
		positions: positions,
		movements: DeriveMovements(positions),
		config:    config,
	}
}

// Movements returns the derived movement sequence. Callers must not mutate it.
func (a *Analyzer) Movements() []Movement { return a.movements }

// Velocities returns the raw per-movement velocity collection.
func (a *Analyzer) Velocities() []float64 {
	velocities := make([]float64, len(a.movements))
	for i, m := range a.movements {
		velocities[i] = m.Velocity
	}
	return velocities
}

// TotalDistance is the total distance the crosshair travelled, in pixels.
func (a *Analyzer) TotalDistance() float64 {
	distances := make([]float64, len(a.movements))
	for i, m := range a.movements {
		distances[i] = m.Distance
	}
	return floats.Sum(distances)
}

// AverageVelocity is the mean velocity across all movements, 0 when empty.
func (a *Analyzer) AverageVelocity() float64 {
	if len(a.movements) == 0 {
		return 0
	}
	return stat.Mean(a.Velocities(), nil)
}

// MaxVelocity is the fastest single movement, 0 when empty.
func (a *Analyzer) MaxVelocity() float64 {
	if len(a.movements) == 0 {
		return 0
	}
	return floats.Max(a.Velocities())
}

// Smoothness is the population standard deviation of consecutive velocity
// deltas. Lower means steadier control. Fewer than two movements yields 0.
func (a *Analyzer) Smoothness() float64 {
	if len(a.movements) < 2 {
		return 0
	}
	velocities := a.Velocities()
	deltas := make([]float64, len(velocities)-1)
	for i := 1; i < len(velocities); i++ {
		deltas[i-1] = math.Abs(velocities[i] - velocities[i-1])
	}
	return stat.PopStdDev(deltas, nil)
}

// VelocityDistribution summarises the velocity collection with interpolated
// percentiles. Every field is 0 for an empty trace.
func (a *Analyzer) VelocityDistribution() VelocityDistribution {
	velocities := a.Velocities()
	if len(velocities) == 0 {
		return VelocityDistribution{}
	}
	return VelocityDistribution{
		Min:    floats.Min(velocities),
		P25:    percentile(velocities, 25),
		Median: percentile(velocities, 50),
		P75:    percentile(velocities, 75),
		P95:    percentile(velocities, 95),
		Max:    floats.Max(velocities),
	}
}

// FlickStats aggregates the unbucketed flick set at the configured threshold.
func (a *Analyzer) FlickStats() FlickStats {
	flicks := DetectFlicks(a.movements, a.config.FlickVelocityThreshold)
	if len(flicks) == 0 {
		return FlickStats{}
	}

	distances := make([]float64, len(flicks))
	velocities := make([]float64, len(flicks))
	for i, f := range flicks {
		distances[i] = f.Distance
		velocities[i] = f.Velocity
	}
	return FlickStats{
		Count:           len(flicks),
		AverageDistance: stat.Mean(distances, nil),
		AverageVelocity: stat.Mean(velocities, nil),
		MaxDistance:     floats.Max(distances),
		MaxVelocity:     floats.Max(velocities),
	}
}

// TierAnalysis attaches mean post-flick stability to each distance tier.
// All three tier keys are always present; empty tiers report zero-filled
// stats. Flicks whose stability window runs past the end of the trace are
// excluded from the stability means rather than counted as zero.
func (a *Analyzer) TierAnalysis() map[FlickTier]TierStats {
	byTier := DetectFlicksByTier(a.movements, a.config.FlickVelocityThreshold)

	analysis := make(map[FlickTier]TierStats, len(Tiers))
	for _, tier := range Tiers {
		flicks := byTier[tier]
		if len(flicks) == 0 {
			analysis[tier] = TierStats{}
			continue
		}

		distances := make([]float64, len(flicks))
		velocities := make([]float64, len(flicks))
		var corrCounts, corrDistances, stabTimes []float64
		for i, f := range flicks {
			distances[i] = f.Distance
			velocities[i] = f.Velocity
			if record, ok := AnalyzeStability(a.positions, f.FrameEnd, a.config.StabilityLookAheadFrames); ok {
				corrCounts = append(corrCounts, float64(record.CorrectionCount))
				corrDistances = append(corrDistances, record.CorrectionDistance)
				stabTimes = append(stabTimes, record.StabilizationTime)
			}
		}

		stats := TierStats{
			Count:       len(flicks),
			AvgDistance: stat.Mean(distances, nil),
			AvgVelocity: stat.Mean(velocities, nil),
		}
		if len(corrCounts) > 0 {
			stats.AvgCorrectionCount = stat.Mean(corrCounts, nil)
			stats.AvgCorrectionDistance = stat.Mean(corrDistances, nil)
			stats.AvgStabilizationTime = stat.Mean(stabTimes, nil)
		}
		analysis[tier] = stats
	}
	return analysis
}

// Summary rolls the whole analysis up into one record. Every statistic
// degrades to 0 on an empty or singleton trace rather than failing.
func (a *Analyzer) Summary() Summary {
	segments := DetectTrackingSegments(a.movements, a.config.TrackingVelocityThreshold)
	var trackingDistance float64
	for _, s := range segments {
		trackingDistance += s.Distance
	}

	return Summary{
		TotalFrames:           len(a.positions),
		TotalDistance:         a.TotalDistance(),
		AverageVelocity:       a.AverageVelocity(),
		MaxVelocity:           a.MaxVelocity(),
		Smoothness:            a.Smoothness(),
		Flicks:                a.FlickStats(),
		TrackingSegmentCount:  len(segments),
		TotalTrackingDistance: trackingDistance,
	}
}

// DiagnosticMetrics computes the full indicator set the sensitivity reasoner
// evaluates. Deterministic given identical input and thresholds.
func (a *Analyzer) DiagnosticMetrics() DiagnosticMetrics {
	flicks := DetectFlicks(a.movements, a.config.FlickVelocityThreshold)
	byTier := DetectFlicksByTier(a.movements, a.config.FlickVelocityThreshold)
	micro := DetectMicroAdjustments(a.movements)
	corrections := DetectReversalCorrections(a.movements)
	velocities := a.Velocities()

	metrics := DiagnosticMetrics{
		TotalFrames:          len(a.positions),
		TotalDistance:        a.TotalDistance(),
		AvgVelocity:          a.AverageVelocity(),
		MaxVelocity:          a.MaxVelocity(),
		Smoothness:           a.Smoothness(),
		FlickCount:           len(flicks),
		SmallFlickCount:      len(byTier[TierSmall]),
		MediumFlickCount:     len(byTier[TierMedium]),
		LargeFlickCount:      len(byTier[TierLarge]),
		MicroAdjustmentCount: len(micro),
		CorrectionCount:      len(corrections),
		VelocityMedian:       percentile(velocities, 50),
		Velocity95th:         percentile(velocities, 95),
	}

	if len(flicks) > 0 {
		distances := make([]float64, len(flicks))
		for i, f := range flicks {
			distances[i] = f.Distance
		}
		metrics.AvgFlickDistance = stat.Mean(distances, nil)
	}
	if len(corrections) > 0 {
		distances := make([]float64, len(corrections))
		for i, c := range corrections {
			distances[i] = c.CorrectionDistance
		}
		metrics.AvgCorrectionDistance = stat.Mean(distances, nil)
	}
	return metrics
}
