package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadLayersOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.yaml")
	data := `
overlay:
  style: fade
  segments: 8
volume:
  source: system
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Overlay.Style != "fade" {
		t.Fatalf("style not applied: %q", cfg.Overlay.Style)
	}
	if cfg.Overlay.Segments != 8 {
		t.Fatalf("segments not applied: %d", cfg.Overlay.Segments)
	}
	if cfg.Volume.Source != "system" {
		t.Fatalf("source not applied: %q", cfg.Volume.Source)
	}
	// Untouched fields keep their defaults.
	if cfg.Overlay.MinimumVisibleMS != 2000 {
		t.Fatalf("default lost: minimum_visible_ms=%d", cfg.Overlay.MinimumVisibleMS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults valid", func(*Config) {}, ""},
		{"bad style", func(c *Config) { c.Overlay.Style = "bounce" }, "overlay.style"},
		{"zero segments", func(c *Config) { c.Overlay.Segments = 0 }, "overlay.segments"},
		{"negative spacing", func(c *Config) { c.Overlay.Spacing = -1 }, "overlay.spacing"},
		{"zero bar height", func(c *Config) { c.Overlay.BarHeight = 0 }, "overlay.bar_height"},
		{"negative animation", func(c *Config) { c.Overlay.AnimationMS = -1 }, "overlay.animation_ms"},
		{"bad source", func(c *Config) { c.Volume.Source = "psychic" }, "volume.source"},
		{"tiny poll interval", func(c *Config) { c.Volume.PollIntervalMS = 1 }, "volume.poll_interval_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("got %v, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hud.yaml")
	if err := os.WriteFile(path, []byte("overlay:\n  segments: 0\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}
