package tui

import (
	"sync"

	"volumehud/internal/domain"
)

// Compile-time interface check.
var _ domain.LayoutSource = (*Viewport)(nil)

// compactWidth is the column count below which the terminal is treated as
// a compact (phone-class) viewport.
const compactWidth = 60

// Viewport derives the orientation context from the terminal geometry.
// The host model feeds it from WindowSizeMsg.
type Viewport struct {
	mu           sync.Mutex
	width        int
	height       int
	containerBar float64
}

// NewViewport creates a viewport with the given initial size.
func NewViewport(width, height int) *Viewport {
	return &Viewport{width: width, height: height}
}

// SetSize records the terminal size in cells.
func (v *Viewport) SetSize(width, height int) {
	v.mu.Lock()
	v.width = width
	v.height = height
	v.mu.Unlock()
}

// SetContainerBarHeight records the height of an enclosing header bar, if
// the host renders one. Zero means none.
func (v *Viewport) SetContainerBarHeight(h float64) {
	v.mu.Lock()
	v.containerBar = h
	v.mu.Unlock()
}

// Orientation classifies the terminal shape. Cells are roughly twice as
// tall as wide, so a terminal is landscape-like once its column count
// exceeds twice its row count.
func (v *Viewport) Orientation() domain.Orientation {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.width > 2*v.height {
		return domain.Landscape
	}
	return domain.Portrait
}

// Compact reports whether the viewport is phone-class narrow.
func (v *Viewport) Compact() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width > 0 && v.width < compactWidth
}

// ContainerBarHeight returns the enclosing header bar height, or 0.
func (v *Viewport) ContainerBarHeight() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.containerBar
}
