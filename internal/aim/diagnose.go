package aim

import "fmt"

// Reasoner constants. Empirically tuned against TDM footage alongside the
// engine thresholds; tune via experiment, do not re-derive.
const (
	// Too-low indicators.
	lowMaxVelocityPxPerSec  = 8000.0
	lowAvgVelocityPxPerSec  = 1000.0
	smallFlickShareCutoff   = 0.6
	// Too-high indicators (each must coincide with high max velocity).
	highCorrectionRatio     = 0.6
	highMicroAdjustFactor   = 2.0
	highMaxVelocityPxPerSec = 15000.0
	// High smoothness alone is ambiguous between the two directions; it is
	// disambiguated by velocity level and then dominates the additive count.
	highSmoothnessCutoff = 1000.0
	forcedScore          = 3
	decisionThreshold    = 2

	// Advisory (non-scoring) observation cutoffs.
	weakFlickVelocityPxPerSec = 5000.0
	largeAvgFlickDistancePx   = 200.0
	slowVelocity95thPxPerSec  = 4000.0
	goodSmoothnessMin         = 300.0
	goodSmoothnessMax         = 700.0
	lowCorrectionRatio        = 0.4
	goodMaxVelocityMin        = 5000.0
	goodMaxVelocityMax        = 12000.0

	// Suggested adjustment band around the current sensitivity.
	suggestStepMin = 0.05
	suggestStepMax = 0.10
)

// Direction is the reasoner's overall recommendation.
type Direction string

const (
	SensTooLow     Direction = "too-low"
	SensTooHigh    Direction = "too-high"
	SensReasonable Direction = "reasonable"
)

// Verdict is the reasoner output: a direction, the evidence scores behind it,
// the literal reasons that fired, plus advisory observations for display.
type Verdict struct {
	Direction    Direction `json:"direction"`
	TooLowScore  int       `json:"tooLowScore"`
	TooHighScore int       `json:"tooHighScore"`
	Reasons      []string  `json:"reasons"`
	Warnings     []string  `json:"warnings"`
	Strengths    []string  `json:"strengths"`

	// Suggested sensitivity range when Direction is not reasonable.
	SuggestedMin float64 `json:"suggestedMin,omitempty"`
	SuggestedMax float64 `json:"suggestedMax,omitempty"`
}

// Diagnose applies the scored-evidence heuristic to the metrics for a trace
// recorded at the given sensitivity.
//
// Scoring: the too-low side counts low max velocity, low average velocity,
// zero large flicks and a small-flick-dominated mix; the too-high side counts
// frequent reversals and heavy micro-adjustment, each only in combination
// with a very high max velocity. A high smoothness score short-circuits to a
// forced score of 3 for whichever direction the velocity level indicates.
// Ties favour too-low, which is checked first.
func Diagnose(metrics DiagnosticMetrics, sensitivity float64) Verdict {
	flickCount := float64(metrics.FlickCount)

	lowMaxVelocity := metrics.MaxVelocity < lowMaxVelocityPxPerSec
	lowAvgVelocity := metrics.AvgVelocity < lowAvgVelocityPxPerSec
	noLargeFlicks := metrics.LargeFlickCount == 0
	lotsOfSmallFlicks := float64(metrics.SmallFlickCount) > flickCount*smallFlickShareCutoff

	highCorrections := float64(metrics.CorrectionCount) > flickCount*highCorrectionRatio
	highMicroAdjustments := float64(metrics.MicroAdjustmentCount) > flickCount*highMicroAdjustFactor
	highMaxVelocity := metrics.MaxVelocity > highMaxVelocityPxPerSec
	highSmoothness := metrics.Smoothness > highSmoothnessCutoff

	verdict := Verdict{
		Warnings:  diagnosticWarnings(metrics),
		Strengths: diagnosticStrengths(metrics),
	}

	switch {
	case highSmoothness && lowMaxVelocity:
		// Choppy micro-movements despite low velocity: fighting a low sens.
		verdict.TooLowScore = forcedScore
		verdict.Reasons = append(verdict.Reasons,
			"jittery movement despite low velocity suggests fighting against low sensitivity")
	case highSmoothness && highMaxVelocity:
		// Twitchy overcontrol at high velocity: genuinely too sensitive.
		verdict.TooHighScore = forcedScore
		verdict.Reasons = append(verdict.Reasons,
			"jittery movement at high velocity suggests twitchy overcontrol")
	default:
		verdict.TooLowScore = countTrue(lowMaxVelocity, lowAvgVelocity, noLargeFlicks, lotsOfSmallFlicks)
		verdict.TooHighScore = countTrue(highCorrections && highMaxVelocity, highMicroAdjustments && highMaxVelocity)
	}

	switch {
	case verdict.TooLowScore >= decisionThreshold:
		verdict.Direction = SensTooLow
		verdict.SuggestedMin = sensitivity + suggestStepMin
		verdict.SuggestedMax = sensitivity + suggestStepMax
		if lowMaxVelocity {
			verdict.Reasons = append(verdict.Reasons,
				fmt.Sprintf("max velocity %.0f px/s is low", metrics.MaxVelocity))
		}
		if lowAvgVelocity {
			verdict.Reasons = append(verdict.Reasons,
				fmt.Sprintf("average velocity %.0f px/s is low", metrics.AvgVelocity))
		}
		if noLargeFlicks {
			verdict.Reasons = append(verdict.Reasons,
				"zero large flicks detected, possibly unable to turn fast enough")
		}
		if lotsOfSmallFlicks && metrics.FlickCount > 0 {
			verdict.Reasons = append(verdict.Reasons,
				fmt.Sprintf("%.0f%% of flicks are small, limited range of motion",
					float64(metrics.SmallFlickCount)/flickCount*100))
		}
	case verdict.TooHighScore >= decisionThreshold:
		verdict.Direction = SensTooHigh
		verdict.SuggestedMin = sensitivity - suggestStepMax
		verdict.SuggestedMax = sensitivity - suggestStepMin
		if highCorrections && highMaxVelocity {
			verdict.Reasons = append(verdict.Reasons,
				fmt.Sprintf("high correction rate (%d reversals) with high velocity indicates overshooting",
					metrics.CorrectionCount))
		}
		if highMicroAdjustments && highMaxVelocity {
			verdict.Reasons = append(verdict.Reasons,
				"heavy micro-adjustment indicates struggling with precision")
		}
	default:
		verdict.Direction = SensReasonable
		verdict.Reasons = append(verdict.Reasons, "no major red flags detected")
	}

	return verdict
}

// diagnosticWarnings collects the advisory observations that do not feed the
// score but help a player read the verdict.
func diagnosticWarnings(metrics DiagnosticMetrics) []string {
	flickCount := float64(metrics.FlickCount)
	warnings := make([]string, 0)

	if metrics.MaxVelocity < weakFlickVelocityPxPerSec {
		warnings = append(warnings, "low max velocity: possibly struggling to flick to targets")
	}
	if metrics.AvgFlickDistance > largeAvgFlickDistancePx && metrics.Velocity95th < slowVelocity95thPxPerSec {
		warnings = append(warnings, "large flick distances at low velocity: sensitivity may be too low for quick acquisition")
	}
	if float64(metrics.CorrectionCount) > flickCount*highCorrectionRatio {
		warnings = append(warnings, "high correction rate: frequent overshooting")
	}
	if metrics.Smoothness > highSmoothnessCutoff {
		warnings = append(warnings, "high smoothness score: movements are jittery")
	}
	if float64(metrics.MicroAdjustmentCount) > flickCount*highMicroAdjustFactor {
		warnings = append(warnings, "many micro-adjustments: struggling with precise small movements")
	}
	return warnings
}

// diagnosticStrengths collects positive observations.
func diagnosticStrengths(metrics DiagnosticMetrics) []string {
	flickCount := float64(metrics.FlickCount)
	strengths := make([]string, 0)

	if metrics.Smoothness >= goodSmoothnessMin && metrics.Smoothness <= goodSmoothnessMax {
		strengths = append(strengths, "good movement smoothness: tracking is stable")
	}
	if float64(metrics.CorrectionCount) < flickCount*lowCorrectionRatio {
		strengths = append(strengths, "low correction rate: flicks land close to target")
	}
	if metrics.MaxVelocity >= goodMaxVelocityMin && metrics.MaxVelocity <= goodMaxVelocityMax {
		strengths = append(strengths, "good flick capability: fast movement available when needed")
	}
	return strengths
}

func countTrue(conditions ...bool) int {
	n := 0
	for _, c := range conditions {
		if c {
			n++
		}
	}
	return n
}
