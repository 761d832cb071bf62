// Package config loads the demo's YAML configuration file. Defaults and
// validation live here so the rest of the program can assume a well-formed
// config.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML configuration.
type Config struct {
	Overlay OverlayConfig `yaml:"overlay"`
	Volume  VolumeConfig  `yaml:"volume"`
	Logging LoggingConfig `yaml:"logging"`
}

// OverlayConfig covers the indicator's look and timing.
type OverlayConfig struct {
	// Style is "slide" or "fade".
	Style       string `yaml:"style"`
	AnimationMS int    `yaml:"animation_ms"`
	// MinimumVisibleMS is how long the bar stays up after the last
	// volume event.
	MinimumVisibleMS int     `yaml:"minimum_visible_ms"`
	Segments         int     `yaml:"segments"`
	Spacing          float64 `yaml:"spacing"`
	BarHeight        float64 `yaml:"bar_height"`
	Tint             string  `yaml:"tint"`
	Track            string  `yaml:"track"`
	Background       string  `yaml:"background"`
	StatusBarHidden  bool    `yaml:"status_bar_hidden"`
}

// VolumeConfig selects and tunes the volume source.
type VolumeConfig struct {
	// Source is "manual" (keyboard driven) or "system" (OS mixer poll).
	Source         string `yaml:"source"`
	PollIntervalMS int    `yaml:"poll_interval_ms"`
}

// LoggingConfig controls log verbosity.
type LoggingConfig struct {
	// Level is "off", "normal", or "verbose".
	Level string `yaml:"level"`
}

// Default returns a fully-populated Config. Keep aligned with the hud
// package defaults.
func Default() Config {
	return Config{
		Overlay: OverlayConfig{
			Style:            "slide",
			AnimationMS:      300,
			MinimumVisibleMS: 2000,
			Segments:         16,
			Spacing:          0,
			BarHeight:        8,
			Tint:             "#fafafa",
			Track:            "#52525b",
			Background:       "#18181b",
		},
		Volume: VolumeConfig{
			Source:         "manual",
			PollIntervalMS: 250,
		},
		Logging: LoggingConfig{
			Level: "normal",
		},
	}
}

// Load reads the config file at path, layered over the defaults. A missing
// file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the overlay would refuse at runtime.
func (c Config) Validate() error {
	switch c.Overlay.Style {
	case "slide", "fade":
	default:
		return fmt.Errorf("overlay.style must be slide or fade, got %q", c.Overlay.Style)
	}
	if c.Overlay.AnimationMS < 0 {
		return fmt.Errorf("overlay.animation_ms must not be negative")
	}
	if c.Overlay.MinimumVisibleMS < 0 {
		return fmt.Errorf("overlay.minimum_visible_ms must not be negative")
	}
	if c.Overlay.Segments < 1 {
		return fmt.Errorf("overlay.segments must be at least 1")
	}
	if c.Overlay.Spacing < 0 {
		return fmt.Errorf("overlay.spacing must not be negative")
	}
	if c.Overlay.BarHeight <= 0 {
		return fmt.Errorf("overlay.bar_height must be positive")
	}
	switch c.Volume.Source {
	case "manual", "system":
	default:
		return fmt.Errorf("volume.source must be manual or system, got %q", c.Volume.Source)
	}
	if c.Volume.PollIntervalMS < 10 {
		return fmt.Errorf("volume.poll_interval_ms must be at least 10")
	}
	return nil
}

// AnimationDuration returns the animation setting as a duration.
func (c OverlayConfig) AnimationDuration() time.Duration {
	return time.Duration(c.AnimationMS) * time.Millisecond
}

// MinimumVisible returns the minimum visible setting as a duration.
func (c OverlayConfig) MinimumVisible() time.Duration {
	return time.Duration(c.MinimumVisibleMS) * time.Millisecond
}

// PollInterval returns the poll interval as a duration.
func (c VolumeConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}
