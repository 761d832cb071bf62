package hud

import (
	"errors"
	"testing"
	"time"

	"volumehud/internal/domain"
)

func TestConfigValidation(t *testing.T) {
	cfg := NewConfig()

	tests := []struct {
		name    string
		write   func() error
		wantErr error
	}{
		{"segment count zero", func() error { return cfg.SetSegmentCount(0) }, domain.ErrInvalidSegmentCount},
		{"segment count negative", func() error { return cfg.SetSegmentCount(-4) }, domain.ErrInvalidSegmentCount},
		{"segment count valid", func() error { return cfg.SetSegmentCount(8) }, nil},
		{"negative animation", func() error { return cfg.SetAnimationDuration(-time.Second) }, domain.ErrInvalidDuration},
		{"zero animation", func() error { return cfg.SetAnimationDuration(0) }, nil},
		{"negative minimum visible", func() error { return cfg.SetMinimumVisible(-time.Second) }, domain.ErrInvalidDuration},
		{"negative spacing", func() error { return cfg.SetSpacing(-1) }, domain.ErrInvalidSpacing},
		{"zero spacing", func() error { return cfg.SetSpacing(0) }, nil},
		{"zero bar height", func() error { return cfg.SetBarHeight(0) }, domain.ErrInvalidBarHeight},
		{"positive bar height", func() error { return cfg.SetBarHeight(4) }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.write()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}

	// Rejected writes leave the value untouched.
	if got := cfg.SegmentCount(); got != 8 {
		t.Fatalf("segment count corrupted by rejected write: %d", got)
	}
}

func TestConfigWriteNotifies(t *testing.T) {
	cfg := NewConfig()
	fired := 0
	cfg.setOnChange(func() { fired++ })

	cfg.SetTint("#ff0000")
	cfg.SetAnimationStyle(domain.StyleFade)
	if err := cfg.SetSegmentCount(12); err != nil {
		t.Fatalf("set segment count: %v", err)
	}

	if fired != 3 {
		t.Fatalf("expected 3 change notifications, got %d", fired)
	}

	a := cfg.Appearance()
	if a.Tint != "#ff0000" || a.Style != domain.StyleFade || a.SegmentCount != 12 {
		t.Fatalf("appearance snapshot stale: %+v", a)
	}
}

func TestEnterDuration(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.SetAnimationDuration(250 * time.Millisecond); err != nil {
		t.Fatalf("set duration: %v", err)
	}

	cfg.SetAnimationStyle(domain.StyleSlide)
	if got := cfg.EnterDuration(); got != 250*time.Millisecond {
		t.Fatalf("slide enter: got %s", got)
	}

	// Fade shows instantly; only the exit is animated.
	cfg.SetAnimationStyle(domain.StyleFade)
	if got := cfg.EnterDuration(); got != 0 {
		t.Fatalf("fade enter: got %s", got)
	}
	if got := cfg.AnimationDuration(); got != 250*time.Millisecond {
		t.Fatalf("exit duration: got %s", got)
	}
}
