// Package report renders analysis results for humans: fixed-width comparison
// tables across sensitivity settings, HTML charts, and crosshair path plots.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/crosshair-data/aim.report/internal/aim"
)

// Comparison bundles the results being compared, ordered by sensitivity.
type Comparison struct {
	Results []aim.TraceResult `json:"results"`
}

// microFlickScore ranks small-flick control: lower is better. Correction
// count dominates; correction distance contributes at a tenth weight.
func microFlickScore(small aim.TierStats) float64 {
	return small.AvgCorrectionCount + small.AvgCorrectionDistance/10
}

// WriteTables renders the full comparison as fixed-width text tables.
func (c *Comparison) WriteTables(w io.Writer) {
	rule := func() { fmt.Fprintln(w, "--------------------------------------------------------------------------------") }
	header := func(title string) {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "================================================================================")
		fmt.Fprintln(w, title)
		fmt.Fprintln(w, "================================================================================")
	}

	header("OVERALL METRICS")
	fmt.Fprintf(w, "\n%-12s %-10s %-12s %-12s %-12s %-12s\n",
		"Sensitivity", "Frames", "Distance", "Avg Vel", "Max Vel", "Smoothness")
	rule()
	for _, r := range c.Results {
		s := r.Summary
		fmt.Fprintf(w, "%-12.3f %-10d %-12.2f %-12.2f %-12.2f %-12.2f\n",
			r.Sensitivity, s.TotalFrames, s.TotalDistance, s.AverageVelocity, s.MaxVelocity, s.Smoothness)
	}

	header("FLICKS")
	fmt.Fprintf(w, "\n%-12s %-10s %-12s %-12s %-12s\n",
		"Sensitivity", "Count", "Avg Dist", "Avg Vel", "Max Dist")
	rule()
	for _, r := range c.Results {
		f := r.Summary.Flicks
		fmt.Fprintf(w, "%-12.3f %-10d %-12.2f %-12.2f %-12.2f\n",
			r.Sensitivity, f.Count, f.AverageDistance, f.AverageVelocity, f.MaxDistance)
	}

	tierTitles := map[aim.FlickTier]string{
		aim.TierSmall:  "MICRO-FLICK ANALYSIS (<100px) - KEY DIAGNOSTIC METRIC",
		aim.TierMedium: "MEDIUM FLICK ANALYSIS (100-300px)",
		aim.TierLarge:  "LARGE FLICK ANALYSIS (300+px)",
	}
	for _, tier := range aim.Tiers {
		header(tierTitles[tier])
		fmt.Fprintf(w, "\n%-12s %-10s %-12s %-12s %-12s\n",
			"Sensitivity", "Count", "Avg Corr", "Corr Dist", "Stab Time")
		rule()
		for _, r := range c.Results {
			t := r.Tiers[tier]
			if t.Count == 0 {
				fmt.Fprintf(w, "%-12.3f %-10s %-12s %-12s %-12s\n", r.Sensitivity, "0", "-", "-", "-")
				continue
			}
			fmt.Fprintf(w, "%-12.3f %-10d %-12.2f %-12.2f %-12.3f\n",
				r.Sensitivity, t.Count, t.AvgCorrectionCount, t.AvgCorrectionDistance, t.AvgStabilizationTime)
		}
	}

	header("TRACKING")
	fmt.Fprintf(w, "\n%-12s %-12s %-12s\n", "Sensitivity", "Segments", "Total Dist")
	rule()
	for _, r := range c.Results {
		fmt.Fprintf(w, "%-12.3f %-12d %-12.2f\n",
			r.Sensitivity, r.Summary.TrackingSegmentCount, r.Summary.TotalTrackingDistance)
	}

	header("VELOCITY DISTRIBUTION (px/s)")
	fmt.Fprintf(w, "\n%-12s %-10s %-10s %-10s %-10s %-10s %-10s\n",
		"Sensitivity", "Min", "25th", "Median", "75th", "95th", "Max")
	rule()
	for _, r := range c.Results {
		d := r.Distribution
		fmt.Fprintf(w, "%-12.3f %-10.2f %-10.2f %-10.2f %-10.2f %-10.2f %-10.2f\n",
			r.Sensitivity, d.Min, d.P25, d.Median, d.P75, d.P95, d.Max)
	}

	c.writeRecommendations(w, header)
}

// writeRecommendations names the best setting per criterion: micro-flick
// control first (the strongest diagnostic for sensitivity fit), then
// smoothness and peak velocity.
func (c *Comparison) writeRecommendations(w io.Writer, header func(string)) {
	if len(c.Results) == 0 {
		return
	}
	header("ANALYSIS & RECOMMENDATIONS")

	bestSmooth := c.Results[0]
	bestMaxVel := c.Results[0]
	var bestMicro *aim.TraceResult
	var bestMicroScore float64
	for i := range c.Results {
		r := c.Results[i]
		if r.Summary.Smoothness < bestSmooth.Summary.Smoothness {
			bestSmooth = r
		}
		if r.Summary.MaxVelocity > bestMaxVel.Summary.MaxVelocity {
			bestMaxVel = r
		}
		small := r.Tiers[aim.TierSmall]
		if small.Count == 0 {
			continue
		}
		score := microFlickScore(small)
		if bestMicro == nil || score < bestMicroScore {
			bestMicro = &c.Results[i]
			bestMicroScore = score
		}
	}

	if bestMicro != nil {
		fmt.Fprintf(w, "\nBest micro-flick control: %.3f (score %.2f)\n", bestMicro.Sensitivity, bestMicroScore)
		fmt.Fprintln(w, "  Requires the least correction for small adjustments; the best")
		fmt.Fprintln(w, "  single diagnostic for sensitivity fit.")
	}
	fmt.Fprintf(w, "\nSmoothest tracking:   %.3f (smoothness %.2f)\n", bestSmooth.Sensitivity, bestSmooth.Summary.Smoothness)
	fmt.Fprintf(w, "Highest max velocity: %.3f (%.2f px/s)\n", bestMaxVel.Sensitivity, bestMaxVel.Summary.MaxVelocity)
}

// SaveJSON writes the comparison as indented JSON for storage alongside the
// per-run records.
func (c *Comparison) SaveJSON(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode comparison: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write comparison file: %w", err)
	}
	return nil
}
