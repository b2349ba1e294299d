package report

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/crosshair-data/aim.report/internal/aim"
)

// RenderHTML writes a standalone HTML page with comparison charts: the
// velocity distribution per sensitivity and the per-tier mean stabilisation
// times. Meant for eyeballing several settings side by side without the
// text tables.
func (c *Comparison) RenderHTML(path string) error {
	page := components.NewPage()
	page.SetPageTitle("Sensitivity Comparison")
	page.AddCharts(c.velocityChart(), c.stabilizationChart())

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func (c *Comparison) velocityChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Velocity Distribution",
			Subtitle: "px/s per sensitivity setting",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis([]string{"Min", "25th", "Median", "75th", "95th", "Max"})
	for _, r := range c.Results {
		d := r.Distribution
		values := []float64{d.Min, d.P25, d.Median, d.P75, d.P95, d.Max}
		data := make([]opts.BarData, len(values))
		for i, v := range values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(fmt.Sprintf("sens %.3f", r.Sensitivity), data)
	}
	return bar
}

func (c *Comparison) stabilizationChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Post-Flick Stabilisation",
			Subtitle: "mean seconds to settle, by flick distance tier",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	bar.SetXAxis([]string{"small (<100px)", "medium (100-300px)", "large (300+px)"})
	for _, r := range c.Results {
		data := make([]opts.BarData, len(aim.Tiers))
		for i, tier := range aim.Tiers {
			data[i] = opts.BarData{Value: r.Tiers[tier].AvgStabilizationTime}
		}
		bar.AddSeries(fmt.Sprintf("sens %.3f", r.Sensitivity), data)
	}
	return bar
}
