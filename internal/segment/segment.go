// Package segment maps a continuous volume scalar onto a row of discrete
// fill segments and lays the segments out inside a bounding rectangle.
// Everything here is pure; the package has no dependencies.
package segment

import "math"

// VolumeStep is the hardware volume-button increment: one press moves the
// system volume scalar by 1/16.
const VolumeStep = 0.0625

// stepCount is the number of discrete hardware steps across [0, 1].
const stepCount = 1.0 / VolumeStep

// defaultMargin is the horizontal track margin used when the configured
// inter-segment spacing is zero (a continuous bar).
const defaultMargin = 5.0

// Fill returns the per-segment fill fractions for the given volume scalar.
// The result has length count; each value is in [0, 1]. Volume is clamped
// to [0, 1] first. A count below 1 yields nil.
//
// The volume is quantized to hardware steps before being spread across the
// segments, so a fill only moves when the volume crosses a step boundary.
// When the active segment count lands exactly on an integer the boundary
// segment gets a fill of 0 rather than 1; that matches the behavior the
// original widget shipped with.
func Fill(volume float64, count int) []float64 {
	if count < 1 {
		return nil
	}
	volume = clamp(volume)

	currentStep := math.Floor(volume / VolumeStep)
	active := currentStep / stepCount * float64(count)
	full := int(math.Floor(active))

	levels := make([]float64, count)
	for i := range levels {
		switch {
		case i < full:
			levels[i] = 1
		case i == full:
			levels[i] = active - math.Floor(active)
		}
	}
	return levels
}

// Rect is an axis-aligned rectangle in layout units.
type Rect struct {
	X, Y, W, H float64
}

// Params carries the layout inputs for a segment row.
type Params struct {
	// BarHeight is the height of the track and of every segment.
	BarHeight float64
	// Spacing is the gap between adjacent segments. Zero produces a
	// continuous bar.
	Spacing float64
}

// Track returns the track rectangle: bounds inset horizontally by the
// spacing (or the default margin when spacing is zero) and vertically so
// the bar is centred.
func Track(bounds Rect, p Params) Rect {
	m := margin(p)
	v := (bounds.H - p.BarHeight) / 2
	return Rect{
		X: bounds.X + m,
		Y: bounds.Y + v,
		W: bounds.W - 2*m,
		H: bounds.H - 2*v,
	}
}

// Segments returns one rectangle per segment, left to right, inside bounds.
// A count below 1 yields nil.
func Segments(bounds Rect, count int, p Params) []Rect {
	if count < 1 {
		return nil
	}
	m := margin(p)
	v := (bounds.H - p.BarHeight) / 2
	effective := bounds.W - 2*m
	w := (effective - float64(count)*p.Spacing) / float64(count)

	rects := make([]Rect, count)
	for i := range rects {
		rects[i] = Rect{
			X: bounds.X + m + float64(i)*p.Spacing + float64(i)*w,
			Y: bounds.Y + v,
			W: w,
			H: p.BarHeight,
		}
	}
	return rects
}

func margin(p Params) float64 {
	if p.Spacing > 0 {
		return p.Spacing
	}
	return defaultMargin
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
