// Package volume provides volume-change sources for the overlay: a manual
// source driven programmatically and a poller that watches the OS mixer.
package volume

import (
	"sync"

	"volumehud/internal/domain"
)

// Compile-time interface check.
var _ domain.VolumeSource = (*Manual)(nil)

// Manual is a volume source driven by the host application, used for
// keyboard control in the demo and as a test double. Safe for concurrent
// use.
type Manual struct {
	mu     sync.Mutex
	level  float64
	subs   map[int]func(domain.VolumeChange)
	nextID int
}

// NewManual creates a manual source starting at the given level, clamped to
// [0, 1].
func NewManual(level float64) *Manual {
	return &Manual{
		level: clamp(level),
		subs:  map[int]func(domain.VolumeChange){},
	}
}

// Current returns the present level. Never fails.
func (m *Manual) Current() (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.level, nil
}

// Subscribe registers fn for change events.
func (m *Manual) Subscribe(fn func(domain.VolumeChange)) (func(), error) {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}, nil
}

// Set moves the level to v (clamped) and notifies subscribers when it
// actually changed.
func (m *Manual) Set(v float64) {
	v = clamp(v)
	m.mu.Lock()
	old := m.level
	if v == old {
		m.mu.Unlock()
		return
	}
	m.level = v
	fns := make([]func(domain.VolumeChange), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	ev := domain.VolumeChange{Old: old, New: v}
	for _, fn := range fns {
		fn(ev)
	}
}

// StepUp raises the level by one hardware step.
func (m *Manual) StepUp() { m.step(step) }

// StepDown lowers the level by one hardware step.
func (m *Manual) StepDown() { m.step(-step) }

// step is the hardware volume-button increment.
const step = 0.0625

func (m *Manual) step(delta float64) {
	m.mu.Lock()
	v := m.level + delta
	m.mu.Unlock()
	m.Set(v)
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
