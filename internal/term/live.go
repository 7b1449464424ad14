// Package term drives the renderer on a plain terminal: clear, home,
// frame, repeat.
package term

import (
	"context"
	"io"
	"time"

	"github.com/san-kum/donut/internal/torus"
)

const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
)

// Animator writes frames from a renderer until its context ends.
type Animator struct {
	w         io.Writer
	r         *torus.Renderer
	frameRate int
	frames    int
}

type Option func(*Animator)

// WithFrameRate caps output at fps frames per second. Zero means as fast
// as the renderer goes.
func WithFrameRate(fps int) Option {
	return func(a *Animator) { a.frameRate = fps }
}

func NewAnimator(w io.Writer, r *torus.Renderer, opts ...Option) *Animator {
	a := &Animator{w: w, r: r}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Frames returns how many frames have been written.
func (a *Animator) Frames() int { return a.frames }

// Run clears the screen once, then homes the cursor, clears and writes a
// frame, then steps the rotation, until ctx is done. Cancellation is the
// normal way out and returns nil; only write errors are reported.
func (a *Animator) Run(ctx context.Context) error {
	log := torus.Logger()
	log.Info("animation started", "mode", a.r.Mode(), "fps", a.frameRate)

	if _, err := io.WriteString(a.w, clearScreen); err != nil {
		return err
	}

	// rates finer than a nanosecond round to a zero interval: uncapped
	var tick <-chan time.Time
	if interval := a.interval(); interval > 0 {
		t := time.NewTicker(interval)
		defer t.Stop()
		tick = t.C
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("animation stopped", "frames", a.frames)
			return nil
		default:
		}

		if _, err := io.WriteString(a.w, cursorHome+clearScreen+a.r.Render()); err != nil {
			return err
		}
		a.frames++
		a.r.Step()

		if tick != nil {
			select {
			case <-ctx.Done():
			case <-tick:
			}
		}
	}
}

func (a *Animator) interval() time.Duration {
	if a.frameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(a.frameRate)
}
