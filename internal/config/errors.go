package config

import "errors"

var (
	ErrNegativeSize  = errors.New("config: width and height must not be negative")
	ErrNonPositive   = errors.New("config: radii and projection constants must be positive")
	ErrNegativeCount = errors.New("config: counts must not be negative")
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrFrameRate     = errors.New("config: frame rate too high")
)
