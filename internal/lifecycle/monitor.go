// Package lifecycle tracks whether the host application is foreground
// active. The demo feeds the monitor from terminal focus events; tests
// drive it directly.
package lifecycle

import (
	"sync"

	"volumehud/internal/domain"
)

// Compile-time interface check.
var _ domain.LifecycleSource = (*Monitor)(nil)

// Monitor is a programmatic lifecycle source. Hosts call Activate and
// Resign as their platform reports focus transitions. Safe for concurrent
// use.
type Monitor struct {
	mu     sync.Mutex
	active bool
	subs   map[int]func(domain.Phase)
	nextID int
}

// NewMonitor creates a monitor. A fresh monitor reports active.
func NewMonitor() *Monitor {
	return &Monitor{
		active: true,
		subs:   map[int]func(domain.Phase){},
	}
}

// Active reports whether the host is foreground-active.
func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Subscribe registers fn for phase transitions.
func (m *Monitor) Subscribe(fn func(domain.Phase)) func() {
	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = fn
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subs, id)
		m.mu.Unlock()
	}
}

// Activate marks the host foreground-active and emits the transition.
func (m *Monitor) Activate() { m.set(true) }

// Resign marks the host backgrounded and emits the transition.
func (m *Monitor) Resign() { m.set(false) }

func (m *Monitor) set(active bool) {
	m.mu.Lock()
	if m.active == active {
		m.mu.Unlock()
		return
	}
	m.active = active
	fns := make([]func(domain.Phase), 0, len(m.subs))
	for _, fn := range m.subs {
		fns = append(fns, fn)
	}
	m.mu.Unlock()

	phase := domain.PhaseBackground
	if active {
		phase = domain.PhaseActive
	}
	for _, fn := range fns {
		fn(phase)
	}
}
