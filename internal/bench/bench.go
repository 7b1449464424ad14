// Package bench runs the renderer for a fixed number of frames with no
// terminal output and reports how fast it went.
package bench

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/san-kum/donut/internal/torus"
)

var ErrNegativeFrames = errors.New("bench: frame count must not be negative")

// Result is computed once after a run and never changed.
type Result struct {
	Mode       torus.Mode
	Frames     int
	Total      time.Duration
	AvgFrame   time.Duration
	FPS        float64
	FrameTimes []time.Duration
}

// Run renders and steps r exactly frames times. Total brackets the whole
// loop; the per-frame times are kept for Stats and Plot.
func Run(ctx context.Context, r *torus.Renderer, frames int) (*Result, error) {
	if frames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeFrames, frames)
	}

	log := torus.Logger().With("mode", r.Mode(), "frames", frames)
	log.Debug("benchmark started")

	times := newFrameTimes(frames)
	start := time.Now()
	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		t0 := time.Now()
		_ = r.Render()
		r.Step()
		times = append(times, time.Since(t0))
	}
	total := time.Since(start)

	res := newResult(r.Mode(), frames, total, times)
	log.Info("benchmark finished", "total", res.Total, "fps", res.FPS)
	return res, nil
}

// maxPrealloc bounds the frame time slice reserved up front; longer runs
// grow it as they go.
const maxPrealloc = 1 << 16

func newFrameTimes(frames int) []time.Duration {
	return make([]time.Duration, 0, min(frames, maxPrealloc))
}

func newResult(mode torus.Mode, frames int, total time.Duration, times []time.Duration) *Result {
	res := &Result{
		Mode:       mode,
		Frames:     frames,
		Total:      total,
		FrameTimes: times,
	}
	if frames > 0 {
		res.AvgFrame = total / time.Duration(frames)
	}
	if total > 0 {
		res.FPS = float64(frames) / total.Seconds()
	}
	return res
}
