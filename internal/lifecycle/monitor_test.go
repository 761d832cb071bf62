package lifecycle

import (
	"testing"

	"volumehud/internal/domain"
)

func TestMonitorTransitions(t *testing.T) {
	m := NewMonitor()
	if !m.Active() {
		t.Fatal("fresh monitor should report active")
	}

	var phases []domain.Phase
	cancel := m.Subscribe(func(p domain.Phase) {
		phases = append(phases, p)
	})

	m.Resign()
	m.Resign() // no transition, no event
	m.Activate()

	if m.Active() != true {
		t.Fatal("expected active after activate")
	}
	want := []domain.Phase{domain.PhaseBackground, domain.PhaseActive}
	if len(phases) != len(want) {
		t.Fatalf("expected %d phases, got %v", len(want), phases)
	}
	for i := range want {
		if phases[i] != want[i] {
			t.Fatalf("phase %d: got %s, want %s", i, phases[i], want[i])
		}
	}

	cancel()
	m.Resign()
	if len(phases) != 2 {
		t.Fatal("event delivered after cancel")
	}
}
