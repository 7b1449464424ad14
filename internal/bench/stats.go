package bench

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Stats summarises the per-frame times of a run, in milliseconds.
type Stats struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// FrameMillis returns the frame times in milliseconds, in frame order.
func (r *Result) FrameMillis() []float64 {
	ms := make([]float64, len(r.FrameTimes))
	for i, d := range r.FrameTimes {
		ms[i] = millis(d)
	}
	return ms
}

// Stats returns the zero value for a run without frames.
func (r *Result) Stats() Stats {
	if len(r.FrameTimes) == 0 {
		return Stats{}
	}

	sorted := r.FrameMillis()
	sort.Float64s(sorted)

	s := Stats{
		Mean: stat.Mean(sorted, nil),
		Min:  sorted[0],
		Max:  sorted[len(sorted)-1],
		P50:  stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:  stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.StdDev = stat.StdDev(sorted, nil)
	}
	return s
}
