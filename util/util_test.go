package util

import (
	"math"
	"testing"

	"github.com/fogleman/ease"
)

func TestGenerateLutEndpoints(t *testing.T) {
	lut := GenerateLut(ease.InOutQuad, 64)
	if len(lut) != 64 {
		t.Fatalf("expected 64 samples, got %d", len(lut))
	}
	if lut[0] != 0 || lut[63] != 1 {
		t.Errorf("expected endpoints 0 and 1, got %v and %v", lut[0], lut[63])
	}
}

func TestGenerateLutMinimumLength(t *testing.T) {
	lut := GenerateLut(ease.Linear, 0)
	if len(lut) != 2 {
		t.Fatalf("expected length clamped to 2, got %d", len(lut))
	}
}

func TestLutAt(t *testing.T) {
	lut := GenerateLut(ease.Linear, 11)

	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{0.25, 0.25},
		{0.5, 0.5},
		{0.95, 0.95},
		{1, 1},
		{2, 1},
	}

	for _, tt := range tests {
		if got := lut.At(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("At(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLutAtTracksCurve(t *testing.T) {
	lut := GenerateLut(ease.InOutQuad, 256)
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		if d := math.Abs(lut.At(x) - ease.InOutQuad(x)); d > 1e-3 {
			t.Errorf("At(%v) off by %v", x, d)
		}
	}
}

func TestEmptyLutIsIdentity(t *testing.T) {
	var lut Lut
	if got := lut.At(0.3); got != 0.3 {
		t.Errorf("expected identity, got %v", got)
	}
}
