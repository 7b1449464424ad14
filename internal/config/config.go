package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/donut/internal/torus"
)

const (
	DefaultWidth     = 80
	DefaultHeight    = 22
	DefaultR1        = 1.0
	DefaultR2        = 2.0
	DefaultK1        = 5.0
	DefaultK2        = 5.0
	DefaultAStep     = 0.04
	DefaultBStep     = 0.02
	DefaultThetaStep = 0.07
	DefaultPhiStep   = 0.02
	DefaultShading   = torus.DefaultShading
	DefaultMode      = string(torus.Baseline)
	DefaultFrames    = 500

	// MaxFPS is one frame per nanosecond, the finest interval a ticker takes.
	MaxFPS = int(time.Second)
)

type Config struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	R1        float64 `yaml:"r1"`
	R2        float64 `yaml:"r2"`
	K1        float64 `yaml:"k1"`
	K2        float64 `yaml:"k2"`
	AStep     float64 `yaml:"a_step"`
	BStep     float64 `yaml:"b_step"`
	ThetaStep float64 `yaml:"theta_step"`
	PhiStep   float64 `yaml:"phi_step"`
	Shading   string  `yaml:"shading"`
	Mode      string  `yaml:"mode"`
	Benchmark bool    `yaml:"benchmark"`
	Frames    int     `yaml:"frames"`
	FPS       int     `yaml:"fps"`
}

func DefaultConfig() *Config {
	return &Config{
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		R1:        DefaultR1,
		R2:        DefaultR2,
		K1:        DefaultK1,
		K2:        DefaultK2,
		AStep:     DefaultAStep,
		BStep:     DefaultBStep,
		ThetaStep: DefaultThetaStep,
		PhiStep:   DefaultPhiStep,
		Shading:   DefaultShading,
		Mode:      DefaultMode,
		Frames:    DefaultFrames,
	}
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides the keys it names.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := LoadInto(cfg, path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadInto reads a YAML file over cfg, leaving keys the file omits as they are.
func LoadInto(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Clone returns an independent copy.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}

// Validate fails fast on values the renderer or the drivers cannot use.
// Zero width or height is allowed and renders an empty frame.
func (c *Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("%w: %dx%d", ErrNegativeSize, c.Width, c.Height)
	}
	for _, p := range []struct {
		name string
		v    float64
	}{
		{"r1", c.R1}, {"r2", c.R2}, {"k1", c.K1}, {"k2", c.K2},
	} {
		if !(p.v > 0) {
			return fmt.Errorf("%w: %s=%v", ErrNonPositive, p.name, p.v)
		}
	}
	if c.Frames < 0 {
		return fmt.Errorf("%w: frames=%d", ErrNegativeCount, c.Frames)
	}
	if c.FPS < 0 {
		return fmt.Errorf("%w: fps=%d", ErrNegativeCount, c.FPS)
	}
	if c.FPS > MaxFPS {
		return fmt.Errorf("%w: fps=%d, max %d", ErrFrameRate, c.FPS, MaxFPS)
	}
	if _, err := torus.ParseMode(c.Mode); err != nil {
		return err
	}
	return c.Torus().Validate()
}

// Torus converts the file/flag representation into the renderer's config.
func (c *Config) Torus() torus.Config {
	return torus.Config{
		Width:     c.Width,
		Height:    c.Height,
		R1:        c.R1,
		R2:        c.R2,
		K1:        c.K1,
		K2:        c.K2,
		AStep:     c.AStep,
		BStep:     c.BStep,
		ThetaStep: c.ThetaStep,
		PhiStep:   c.PhiStep,
		Shading:   []rune(c.Shading),
		Mode:      torus.Mode(c.Mode),
	}
}
