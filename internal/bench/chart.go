package bench

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SaveChart draws one frame-time line per result and saves it to path. The
// image format follows the file extension (png, svg, pdf, ...). Results
// without frames are left out.
func SaveChart(path string, results ...*Result) error {
	p := plot.New()
	p.Title.Text = "Frame time"
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = "Time (ms)"

	for i, res := range results {
		if res.Frames == 0 {
			continue
		}
		pts := make(plotter.XYs, 0, len(res.FrameTimes))
		for frame, ms := range res.FrameMillis() {
			pts = append(pts, plotter.XY{X: float64(frame), Y: ms})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("chart %s: %w", res.Mode, err)
		}
		line.Width = vg.Points(1)
		// modes are told apart by dash pattern, not color
		if i%2 == 1 {
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		p.Add(line)
		p.Legend.Add(string(res.Mode), line)
	}

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
