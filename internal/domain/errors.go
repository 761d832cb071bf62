package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrSourceUnavailable   = errors.New("volume source unavailable")
	ErrInvalidSegmentCount = errors.New("segment count must be at least 1")
	ErrInvalidDuration     = errors.New("duration must not be negative")
	ErrInvalidSpacing      = errors.New("spacing must not be negative")
	ErrInvalidBarHeight    = errors.New("bar height must be positive")
)
