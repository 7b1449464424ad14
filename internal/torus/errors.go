package torus

import "errors"

// Configuration errors returned by NewRenderer and Config.Validate.
var (
	// ErrInvalidStep indicates a surface step that would never finish sweeping 2π.
	ErrInvalidStep = errors.New("torus: surface step must be positive")

	// ErrEmptyShading indicates a shading ramp with no characters.
	ErrEmptyShading = errors.New("torus: shading ramp is empty")

	// ErrUnknownMode indicates a mode other than baseline or optimized.
	ErrUnknownMode = errors.New("torus: unknown rendering mode")
)
