package utils

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 42.4, 0, 10, 10},
		{"empty range", 3, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestSign(t *testing.T) {
	if Sign(-0.5) != -1 || Sign(0) != 1 || Sign(7) != 1 {
		t.Fatalf("unexpected signs: %v %v %v", Sign(-0.5), Sign(0), Sign(7))
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(100, 100, 130, 130); math.Abs(got-30*math.Sqrt2) > 1e-9 {
		t.Fatalf("Distance = %v, want %v", got, 30*math.Sqrt2)
	}
	if got := Distance(3, 4, 0, 0); got != 5 {
		t.Fatalf("Distance = %v, want 5", got)
	}
}
