package segment

import (
	"math"
	"testing"
)

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestFillBoundaries(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		count  int
		want   []float64
	}{
		{"silent", 0.0, 16, repeat(0, 16)},
		{"full", 1.0, 16, repeat(1, 16)},
		{"half exact boundary", 0.5, 16, append(repeat(1, 8), repeat(0, 8)...)},
		{"one step", 0.0625, 16, append([]float64{1}, repeat(0, 15)...)},
		{"below first step", 0.05, 16, repeat(0, 16)},
		{"single segment empty", 0.0, 1, []float64{0}},
		{"single segment full", 1.0, 1, []float64{1}},
		{"clamped negative", -0.2, 4, repeat(0, 4)},
		{"clamped above one", 1.7, 4, repeat(1, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Fill(tt.volume, tt.count)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d levels, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > 1e-9 {
					t.Fatalf("segment %d: got %v, want %v (full: %v)", i, got[i], tt.want[i], got)
				}
			}
		})
	}
}

func TestFillFractionalSegment(t *testing.T) {
	// 5 segments, volume 0.5: 8 of 16 steps -> 2.5 active segments.
	// Segments 0-1 full, segment 2 half lit, rest dark.
	got := Fill(0.5, 5)
	want := []float64{1, 1, 0.5, 0, 0}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Fatalf("segment %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

// Sweeping every hardware step across several segment counts, every fill
// stays inside [0, 1] and the number of fully lit segments matches the
// quantization formula.
func TestFillSweepInvariants(t *testing.T) {
	for _, count := range []int{1, 3, 5, 8, 16, 32} {
		for step := 0; step <= 16; step++ {
			v := float64(step) * VolumeStep
			levels := Fill(v, count)
			if len(levels) != count {
				t.Fatalf("count=%d v=%v: got %d levels", count, v, len(levels))
			}

			wantFull := int(math.Floor(math.Floor(v/VolumeStep) / stepCount * float64(count)))
			full, partial := 0, 0
			for i, f := range levels {
				if f < 0 || f > 1 {
					t.Fatalf("count=%d v=%v segment %d out of range: %v", count, v, i, f)
				}
				switch {
				case f == 1:
					full++
				case f > 0:
					partial++
				}
			}
			if full != wantFull {
				t.Fatalf("count=%d v=%v: %d fully lit, want %d (%v)", count, v, full, wantFull, levels)
			}
			if partial > 1 {
				t.Fatalf("count=%d v=%v: %d partially lit segments", count, v, partial)
			}
		}
	}
}

func TestFillInvalidCount(t *testing.T) {
	if got := Fill(0.5, 0); got != nil {
		t.Fatalf("expected nil for zero count, got %v", got)
	}
	if got := Fill(0.5, -3); got != nil {
		t.Fatalf("expected nil for negative count, got %v", got)
	}
}

func TestTrack(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 100, H: 20}

	// Zero spacing falls back to the default 5-unit margin.
	track := Track(bounds, Params{BarHeight: 10, Spacing: 0})
	want := Rect{X: 5, Y: 5, W: 90, H: 10}
	if track != want {
		t.Fatalf("got %+v, want %+v", track, want)
	}

	// Positive spacing doubles as the horizontal margin.
	track = Track(bounds, Params{BarHeight: 10, Spacing: 2})
	want = Rect{X: 2, Y: 5, W: 96, H: 10}
	if track != want {
		t.Fatalf("got %+v, want %+v", track, want)
	}
}

func TestSegments(t *testing.T) {
	bounds := Rect{X: 0, Y: 0, W: 104, H: 20}
	p := Params{BarHeight: 10, Spacing: 2}

	rects := Segments(bounds, 10, p)
	if len(rects) != 10 {
		t.Fatalf("got %d rects, want 10", len(rects))
	}

	// effective = 104 - 2*2 = 100; width = (100 - 10*2)/10 = 8.
	for i, r := range rects {
		wantX := 2 + float64(i)*2 + float64(i)*8
		if math.Abs(r.X-wantX) > 1e-9 {
			t.Fatalf("segment %d: x=%v, want %v", i, r.X, wantX)
		}
		if math.Abs(r.W-8) > 1e-9 {
			t.Fatalf("segment %d: w=%v, want 8", i, r.W)
		}
		if r.Y != 5 || r.H != 10 {
			t.Fatalf("segment %d: y=%v h=%v, want y=5 h=10", i, r.Y, r.H)
		}
	}

	if Segments(bounds, 0, p) != nil {
		t.Fatal("expected nil for zero count")
	}
}
