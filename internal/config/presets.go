package config

import (
	"fmt"
	"sort"
)

func preset(edit func(c *Config)) *Config {
	c := DefaultConfig()
	edit(c)
	return c
}

// Presets are complete configurations; flags and config files apply on top.
var Presets = map[string]*Config{
	"classic": preset(func(c *Config) {
		c.K1 = 30.0
	}),
	"fine": preset(func(c *Config) {
		c.K1 = 30.0
		c.ThetaStep = 0.02
		c.PhiStep = 0.01
	}),
	"small": preset(func(c *Config) {
		c.Width, c.Height = 40, 12
		c.K1 = 15.0
	}),
	"fast": preset(func(c *Config) {
		c.K1 = 30.0
		c.AStep, c.BStep = 0.08, 0.04
		c.Mode = "optimized"
	}),
	"blocks": preset(func(c *Config) {
		c.K1 = 30.0
		c.Shading = ".:-=+*%#@"
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

// LookupPreset is GetPreset with an error naming the available presets.
func LookupPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
