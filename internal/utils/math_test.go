package utils

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
		want           float64
	}{
		{"Same point", 1, 1, 1, 1, 0},
		{"3-4-5 triangle", 0, 0, 3, 4, 5},
		{"Negative coords", -3, -4, 0, 0, 5},
		{"Horizontal", 10, 5, 40, 5, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.x1, tt.y1, tt.x2, tt.y2); math.Abs(got-tt.want) > eps {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	nx, ny, ok := Normalize(3, 4)
	if !ok {
		t.Fatal("Expected non-zero vector to normalize")
	}
	if math.Abs(nx-0.6) > eps || math.Abs(ny-0.8) > eps {
		t.Errorf("Expected (0.6, 0.8), got (%v, %v)", nx, ny)
	}
	if l := math.Hypot(nx, ny); math.Abs(l-1) > eps {
		t.Errorf("Expected unit length, got %v", l)
	}

	if _, _, ok := Normalize(0, 0); ok {
		t.Error("Expected zero vector to be rejected")
	}
}

func TestPRNGServiceDeterministic(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 20; i++ {
		ax, ay := a.PointIn(1024, 768)
		bx, by := b.PointIn(1024, 768)
		if ax != bx || ay != by {
			t.Fatalf("Expected identical sequences for equal seeds at step %d", i)
		}
		if ax < 0 || ax >= 1024 || ay < 0 || ay >= 768 {
			t.Fatalf("Point (%v, %v) out of bounds", ax, ay)
		}
	}
}
