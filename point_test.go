package wedge

import (
	"math"
	"testing"
)

// TestRingArea tests the signed shoelace area for simple rings.
func TestRingArea(t *testing.T) {
	tests := []struct {
		name     string
		ring     Ring
		wantArea float64
	}{
		{
			name:     "unit square counter-clockwise",
			ring:     Ring{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)},
			wantArea: 1,
		},
		{
			name:     "unit square clockwise",
			ring:     Ring{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)},
			wantArea: -1,
		},
		{
			name:     "triangle",
			ring:     Ring{Pt(0, 0), Pt(4, 0), Pt(2, 3)},
			wantArea: 6,
		},
		{
			name:     "degenerate two points",
			ring:     Ring{Pt(0, 0), Pt(4, 0)},
			wantArea: 0,
		},
		{
			name:     "empty",
			ring:     Ring{},
			wantArea: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.Area(); math.Abs(got-tt.wantArea) > 1e-12 {
				t.Errorf("Area() = %v, want %v", got, tt.wantArea)
			}
		})
	}
}

// TestRingContains tests point containment on both ring orientations.
func TestRingContains(t *testing.T) {
	square := Ring{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}

	tests := []struct {
		name string
		ring Ring
		pt   Point
		want bool
	}{
		{"center", square, Pt(5, 5), true},
		{"outside right", square, Pt(15, 5), false},
		{"outside above", square, Pt(5, 15), false},
		{"clockwise orientation still contains", square.Reversed(), Pt(5, 5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ring.Contains(tt.pt); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

// TestRingReversed checks reversal flips the signed area.
func TestRingReversed(t *testing.T) {
	ring := Ring{Pt(0, 0), Pt(4, 0), Pt(2, 3)}
	if got := ring.Reversed().Area(); got != -ring.Area() {
		t.Errorf("Reversed().Area() = %v, want %v", got, -ring.Area())
	}
}

// TestWrapDegrees checks bearing reduction into [0, 360), including
// negative inputs, which math.Mod alone would get wrong.
func TestWrapDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{720, 0},
		{-340, 20},
		{-90, 270},
		{365, 5},
		{180, 180},
	}

	for _, tt := range tests {
		if got := wrapDegrees(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
