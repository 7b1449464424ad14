package bench

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
)

// WriteReport prints the summary lines shared by every port of the renderer.
func WriteReport(w io.Writer, res *Result) error {
	_, err := fmt.Fprintf(w,
		"Language: Go\nFrames: %d\nTotal Time: %.4fs\nAvg Frame Time: %.2fms\nFPS: %.2f\n",
		res.Frames,
		res.Total.Seconds(),
		millis(res.AvgFrame),
		res.FPS,
	)
	return err
}

// WriteStats prints the frame time distribution as a table.
func WriteStats(w io.Writer, res *Result) error {
	s := res.Stats()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MEAN\tSTDDEV\tMIN\tP50\tP95\tMAX")
	fmt.Fprintf(tw, "%.3fms\t%.3fms\t%.3fms\t%.3fms\t%.3fms\t%.3fms\n",
		s.Mean, s.StdDev, s.Min, s.P50, s.P95, s.Max)
	return tw.Flush()
}

// Plot charts the frame times in milliseconds. It returns "" for a run
// without frames.
func Plot(res *Result, width, height int) string {
	data := res.FrameMillis()
	if len(data) == 0 {
		return ""
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("frame time (ms), %s mode", res.Mode)),
	)
}
