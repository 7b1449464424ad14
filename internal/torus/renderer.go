package torus

import (
	"context"
	"fmt"
	"log/slog"
)

// Renderer owns a configuration, the theta/phi samplers chosen by its mode,
// and the current rotation.
type Renderer struct {
	cfg   Config
	theta Sampler
	phi   Sampler
	rot   Rotation
}

// NewRenderer validates cfg and builds its samplers. In optimized mode the
// sample tables are computed here, once, and shared by every frame.
func NewRenderer(cfg Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Shading = append([]rune(nil), cfg.Shading...)

	r := &Renderer{
		cfg:   cfg,
		theta: NewSampler(cfg.Mode, cfg.ThetaStep),
		phi:   NewSampler(cfg.Mode, cfg.PhiStep),
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("renderer ready",
			"mode", cfg.Mode,
			"width", cfg.Width,
			"height", cfg.Height,
			"theta_samples", Count(r.theta),
			"phi_samples", Count(r.phi),
		)
	}
	return r, nil
}

// Render is the pure form: one frame of cfg at angles a and b.
func Render(cfg Config, a, b float64) (string, error) {
	r, err := NewRenderer(cfg)
	if err != nil {
		return "", err
	}
	return r.RenderAt(Rotation{A: a, B: b}).String(), nil
}

func (r *Renderer) Config() Config {
	cfg := r.cfg
	cfg.Shading = append([]rune(nil), r.cfg.Shading...)
	return cfg
}

func (r *Renderer) Mode() Mode               { return r.cfg.Mode }
func (r *Renderer) Rotation() Rotation       { return r.rot }
func (r *Renderer) SetRotation(rot Rotation) { r.rot = rot }

// Step advances the rotation by one frame.
func (r *Renderer) Step() { r.rot = r.rot.Step(r.cfg) }

// Render draws the frame at the current rotation and flattens it.
func (r *Renderer) Render() string { return r.RenderAt(r.rot).String() }

// RenderAt draws the torus at rot. It does not touch the renderer's own
// rotation, so equal inputs give equal frames.
func (r *Renderer) RenderAt(rot Rotation) *Frame {
	cfg := &r.cfg
	f := NewFrame(cfg.Width, cfg.Height)
	if f.Width == 0 {
		return f
	}

	sinA, cosA, sinB, cosB := rot.sinCos()
	last := len(cfg.Shading) - 1

	for sinT, cosT := range r.theta.Samples() {
		circleX := cfg.R2 + cfg.R1*cosT
		circleY := cfg.R1 * sinT

		for sinP, cosP := range r.phi.Samples() {
			x := circleX * cosP
			y := circleX * sinP
			z := circleY

			// (y, z) turned by A, then (x, y) turned by B.
			y1 := y*cosA - z*sinA
			z1 := y*sinA + z*cosA
			x2 := x*cosB - y1*sinB
			y2 := x*sinB + y1*cosB

			xp, yp, ooz, ok := r.project(x2, y2, z1)
			if !ok {
				continue
			}

			lum := cosP*cosT*sinB - cosA*cosT*sinP - sinA*sinT +
				cosB*(cosA*sinT-cosT*sinA*sinP)
			if lum <= 0 {
				continue
			}

			shade := int(lum * 8)
			if shade > last {
				shade = last
			}
			f.Plot(xp, yp, ooz, cfg.Shading[shade])
		}
	}

	return f
}

// project maps a rotated point to its grid cell and ooz. Points at or
// behind the camera plane (z+K2 <= 0) are not projected.
func (r *Renderer) project(x, y, z float64) (xp, yp int, ooz float64, ok bool) {
	d := z + r.cfg.K2
	if d <= 0 {
		return 0, 0, 0, false
	}
	ooz = 1 / d
	xp = int(float64(r.cfg.Width)/2 + r.cfg.K1*ooz*x)
	yp = int(float64(r.cfg.Height)/2 - 0.5*r.cfg.K1*ooz*y)
	return xp, yp, ooz, true
}

func (r *Renderer) String() string {
	return fmt.Sprintf("torus.Renderer{mode=%s %dx%d A=%.3f B=%.3f}",
		r.cfg.Mode, r.cfg.Width, r.cfg.Height, r.rot.A, r.rot.B)
}
