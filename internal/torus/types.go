package torus

import (
	"fmt"
	"math"
)

type Mode string

const (
	Baseline  Mode = "baseline"
	Optimized Mode = "optimized"
)

// ParseMode accepts the two mode names used on the command line.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Baseline, Optimized:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// DefaultShading runs from dim to bright.
const DefaultShading = ".,-~:;=!*#$@"

// Blank fills every cell no surface point reaches.
const Blank = ' '

// Config describes the geometry, projection and sampling of a render.
type Config struct {
	Width     int
	Height    int
	R1        float64 // tube radius
	R2        float64 // distance from the torus center to the tube center
	K1        float64 // projection scale
	K2        float64 // camera distance
	AStep     float64
	BStep     float64
	ThetaStep float64
	PhiStep   float64
	Shading   []rune
	Mode      Mode
}

func DefaultConfig() Config {
	return Config{
		Width:     80,
		Height:    22,
		R1:        1.0,
		R2:        2.0,
		K1:        5.0,
		K2:        5.0,
		AStep:     0.04,
		BStep:     0.02,
		ThetaStep: 0.07,
		PhiStep:   0.02,
		Shading:   []rune(DefaultShading),
		Mode:      Baseline,
	}
}

// Validate reports configurations the renderer cannot sweep or shade.
// Non-positive width or height is valid and renders an empty frame.
func (c Config) Validate() error {
	if !(c.ThetaStep > 0) {
		return fmt.Errorf("%w: theta step %v", ErrInvalidStep, c.ThetaStep)
	}
	if !(c.PhiStep > 0) {
		return fmt.Errorf("%w: phi step %v", ErrInvalidStep, c.PhiStep)
	}
	if len(c.Shading) == 0 {
		return ErrEmptyShading
	}
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	return nil
}

// Rotation is the pair of angles the torus is turned by. The angles grow
// without bound; sin and cos take care of periodicity.
type Rotation struct {
	A, B float64
}

// Step returns the rotation advanced by one frame.
func (r Rotation) Step(cfg Config) Rotation {
	return Rotation{A: r.A + cfg.AStep, B: r.B + cfg.BStep}
}

func (r Rotation) sinCos() (sinA, cosA, sinB, cosB float64) {
	return math.Sin(r.A), math.Cos(r.A), math.Sin(r.B), math.Cos(r.B)
}
