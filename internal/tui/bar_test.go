package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// Plain styles render no escape codes, so cell math is checkable directly.
var plain = lipgloss.NewStyle()

func cells(s string) int {
	return len([]rune(s))
}

func TestRenderBarWidth(t *testing.T) {
	tests := []struct {
		name    string
		levels  []float64
		width   int
		spacing int
	}{
		{"continuous sixteen", make([]float64, 16), 80, 0},
		{"spaced eight", make([]float64, 8), 80, 2},
		{"single segment", []float64{0.5}, 40, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderBar(tt.levels, tt.width, tt.spacing, plain, plain)
			if out == "" {
				t.Fatal("expected output")
			}
			if got := cells(out); got > tt.width {
				t.Fatalf("bar overflows: %d cells into width %d", got, tt.width)
			}
		})
	}
}

func TestRenderBarFill(t *testing.T) {
	// One segment, 8 cells, fully lit: all full blocks, no track.
	out := RenderBar([]float64{1}, 10, 0, plain, plain)
	if strings.ContainsRune(out, emptyCell) {
		t.Fatalf("full segment still shows track: %q", out)
	}
	if strings.Count(out, string(fullCell)) == 0 {
		t.Fatalf("full segment shows no fill: %q", out)
	}

	// Fully dark: track only.
	out = RenderBar([]float64{0}, 10, 0, plain, plain)
	if strings.ContainsRune(out, fullCell) {
		t.Fatalf("dark segment shows fill: %q", out)
	}

	// Half lit: both fill and track present.
	out = RenderBar([]float64{0.5}, 10, 0, plain, plain)
	if !strings.ContainsRune(out, fullCell) || !strings.ContainsRune(out, emptyCell) {
		t.Fatalf("half segment missing fill or track: %q", out)
	}
}

func TestRenderBarDegenerate(t *testing.T) {
	if out := RenderBar(nil, 80, 0, plain, plain); out != "" {
		t.Fatalf("expected empty output for no levels, got %q", out)
	}
	if out := RenderBar([]float64{1, 0}, 0, 0, plain, plain); out != "" {
		t.Fatalf("expected empty output for zero width, got %q", out)
	}
	// Too many segments for the width: nothing rather than garbage.
	if out := RenderBar(make([]float64, 50), 20, 2, plain, plain); out != "" {
		t.Fatalf("expected empty output when segments cannot fit, got %q", out)
	}
}
