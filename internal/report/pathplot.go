package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/crosshair-data/aim.report/internal/aim"
)

// SavePathPlot renders the crosshair path as a line plot and writes it to
// path (format chosen by extension, e.g. .png or .svg). The Y axis is negated
// so the plot matches screen orientation, with the origin at the top left.
func SavePathPlot(positions []aim.Position, title, path string) error {
	if len(positions) == 0 {
		return fmt.Errorf("cannot plot an empty trace")
	}

	xys := make(plotter.XYs, len(positions))
	for i, pos := range positions {
		xys[i].X = pos.X
		xys[i].Y = -pos.Y
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X (px)"
	p.Y.Label.Text = "Y (px, screen-down)"

	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("failed to build path line: %w", err)
	}
	p.Add(line, plotter.NewGrid())

	if err := p.Save(8*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save path plot: %w", err)
	}
	return nil
}
