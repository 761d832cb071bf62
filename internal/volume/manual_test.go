package volume

import (
	"testing"

	"volumehud/internal/domain"
)

func TestManualSetNotifies(t *testing.T) {
	m := NewManual(0.5)

	var events []domain.VolumeChange
	cancel, err := m.Subscribe(func(ev domain.VolumeChange) {
		events = append(events, ev)
	})
	if err != nil {
		t.Fatalf("subscribe: %v", err)
	}

	m.Set(0.75)
	m.Set(0.75) // no change, no event
	m.Set(0.25)

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0] != (domain.VolumeChange{Old: 0.5, New: 0.75}) {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	if events[1] != (domain.VolumeChange{Old: 0.75, New: 0.25}) {
		t.Fatalf("unexpected second event: %+v", events[1])
	}

	cancel()
	m.Set(1.0)
	if len(events) != 2 {
		t.Fatalf("event after cancel: %d", len(events))
	}
}

func TestManualStepClamps(t *testing.T) {
	m := NewManual(0.97)
	m.StepUp()
	if v, _ := m.Current(); v != 1.0 {
		t.Fatalf("expected clamp to 1.0, got %v", v)
	}

	m = NewManual(0.03)
	m.StepDown()
	if v, _ := m.Current(); v != 0.0 {
		t.Fatalf("expected clamp to 0.0, got %v", v)
	}

	m = NewManual(0.5)
	m.StepUp()
	if v, _ := m.Current(); v != 0.5625 {
		t.Fatalf("expected one step up from 0.5, got %v", v)
	}
}
