package aim

// DetectFlicks returns every movement whose velocity strictly exceeds
// velocityThreshold, in trace order.
func DetectFlicks(movements []Movement, velocityThreshold float64) []Flick {
	flicks := make([]Flick, 0)
	for _, m := range movements {
		if m.Velocity > velocityThreshold {
			flicks = append(flicks, Flick{
				FrameStart: m.FrameStart,
				FrameEnd:   m.FrameEnd,
				Distance:   m.Distance,
				Velocity:   m.Velocity,
				Direction:  m.Direction,
			})
		}
	}
	return flicks
}

// DetectFlicksByTier partitions the flick set into distance tiers. Every tier
// key is present in the result even when empty, and the union of the tiers
// equals DetectFlicks for the same threshold.
func DetectFlicksByTier(movements []Movement, velocityThreshold float64) map[FlickTier][]Flick {
	byTier := map[FlickTier][]Flick{
		TierSmall:  {},
		TierMedium: {},
		TierLarge:  {},
	}
	for _, f := range DetectFlicks(movements, velocityThreshold) {
		tier := f.Tier()
		byTier[tier] = append(byTier[tier], f)
	}
	return byTier
}

// DetectMicroAdjustments returns the small, slower movements a player makes
// when fine-tuning onto a target: distance inside the micro-adjust band and
// velocity below the micro-adjust ceiling.
func DetectMicroAdjustments(movements []Movement) []MicroAdjustment {
	adjustments := make([]MicroAdjustment, 0)
	for _, m := range movements {
		if m.Distance > microAdjustMinDistancePx && m.Distance < microAdjustMaxDistancePx &&
			m.Velocity < microAdjustMaxVelocityPxSec {
			adjustments = append(adjustments, MicroAdjustment{
				FrameStart: m.FrameStart,
				FrameEnd:   m.FrameEnd,
				Distance:   m.Distance,
				Velocity:   m.Velocity,
			})
		}
	}
	return adjustments
}
