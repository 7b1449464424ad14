package bench

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/donut/internal/torus"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// Modes lists the rendering modes in the order Compare runs them.
var Modes = []torus.Mode{torus.Baseline, torus.Optimized}

// Compare benchmarks every mode on cfg, each from a fresh renderer at
// rotation zero, and returns the results in Modes order.
func Compare(ctx context.Context, cfg torus.Config, frames int) ([]*Result, error) {
	results := make([]*Result, 0, len(Modes))
	for _, mode := range Modes {
		c := cfg
		c.Mode = mode
		r, err := torus.NewRenderer(c)
		if err != nil {
			return nil, err
		}
		res, err := Run(ctx, r, frames)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", mode, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// Speedup is how many times faster b ran than a, or 0 when either run has
// no measurable time.
func Speedup(a, b *Result) float64 {
	if a.Total <= 0 || b.Total <= 0 {
		return 0
	}
	return a.Total.Seconds() / b.Total.Seconds()
}

// WriteComparison prints one row per result and the speedup of the last
// result over the first.
func WriteComparison(w io.Writer, results []*Result) error {
	if _, err := fmt.Fprintln(w, headingStyle.Render("mode comparison")); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tFRAMES\tTOTAL\tAVG\tFPS")
	for _, res := range results {
		fmt.Fprintf(tw, "%s\t%d\t%.4fs\t%.2fms\t%.2f\n",
			res.Mode, res.Frames, res.Total.Seconds(), millis(res.AvgFrame), res.FPS)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(results) < 2 {
		return nil
	}
	first, last := results[0], results[len(results)-1]
	_, err := fmt.Fprintf(w, "\n%s vs %s: %.2fx\n", last.Mode, first.Mode, Speedup(first, last))
	return err
}
