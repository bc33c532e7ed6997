package curvefit

import (
	"math"
	"testing"
)

func TestComputeMaxErrorExactLineIsZero(t *testing.T) {
	points := []float64{0, 0, 1, 0, 2, 0, 3, 0, 4, 0}
	cache := NewLengthCache()
	u, err := Parameterize(points, 2, 5, cache)
	if err != nil {
		t.Fatalf("Parameterize() error = %v", err)
	}
	c := FitLeastSquares(points, 2, 5, u, []float64{1, 0}, []float64{-1, 0})

	maxSq, worst := ComputeMaxError(c, points, 2, 5, u)
	if maxSq > 1e-18 {
		t.Errorf("maxSq = %v, want ~0 for an exact line fit", maxSq)
	}
	if worst < 1 || worst > 3 {
		t.Errorf("worst index = %d, want in [1,3]", worst)
	}
}

func TestComputeMaxErrorTwoPointRunHasNoInterior(t *testing.T) {
	c := NewCubic(2)
	c.P0, c.P3 = []float64{0, 0}, []float64{1, 0}
	points := []float64{0, 0, 1, 0}
	maxSq, worst := ComputeMaxError(c, points, 2, 2, []float64{0, 1})
	if maxSq != 0 || worst != -1 {
		t.Errorf("ComputeMaxError on 2-point run = (%v, %d), want (0, -1)", maxSq, worst)
	}
}

func TestComputeMaxErrorFindsDeviatedPoint(t *testing.T) {
	// A curve that bows outward at the midpoint compared to a straight chord.
	points := []float64{0, 0, 1, 1, 2, 0}
	cache := NewLengthCache()
	u, err := Parameterize(points, 2, 3, cache)
	if err != nil {
		t.Fatalf("Parameterize() error = %v", err)
	}
	c := NewCubic(2)
	c.P0, c.P1, c.P2, c.P3 = []float64{0, 0}, []float64{0.6, 0}, []float64{1.4, 0}, []float64{2, 0}

	maxSq, worst := ComputeMaxError(c, points, 2, 3, u)
	if worst != 1 {
		t.Errorf("worst index = %d, want 1 (the only interior sample)", worst)
	}
	if math.Sqrt(maxSq) < 0.5 {
		t.Errorf("expected a large deviation at the bowed point, got sqrt(maxSq)=%v", math.Sqrt(maxSq))
	}
}
