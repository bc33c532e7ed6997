package vecops

import (
	"math"
	"testing"
)

func approxSlice(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestAdd(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []float64
		expect []float64
	}{
		{"zero+zero", []float64{0, 0}, []float64{0, 0}, []float64{0, 0}},
		{"positive", []float64{1, 2}, []float64{3, 4}, []float64{4, 6}},
		{"negative", []float64{-1, -2}, []float64{-3, -4}, []float64{-4, -6}},
		{"3d", []float64{1, 2, 3}, []float64{4, 5, 6}, []float64{5, 7, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]float64, len(tt.a))
			Add(dst, tt.a, tt.b, len(tt.a))
			if !approxSlice(dst, tt.expect, 1e-12) {
				t.Errorf("Add(%v, %v) = %v, want %v", tt.a, tt.b, dst, tt.expect)
			}
		})
	}
}

func TestSubAliasing(t *testing.T) {
	a := []float64{5, 7}
	b := []float64{2, 3}
	Sub(a, a, b, 2)
	if !approxSlice(a, []float64{3, 4}, 1e-12) {
		t.Errorf("Sub aliasing dst=a gave %v", a)
	}
}

func TestDotAndLen(t *testing.T) {
	v := []float64{3, 4}
	if got := LenSq(v, 2); got != 25 {
		t.Errorf("LenSq = %v, want 25", got)
	}
	if got := Len(v, 2); math.Abs(got-5) > 1e-12 {
		t.Errorf("Len = %v, want 5", got)
	}
	if got := Dot([]float64{1, 0}, []float64{0, 1}, 2); got != 0 {
		t.Errorf("Dot of perpendicular unit vectors = %v, want 0", got)
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	dst := make([]float64, 2)
	Normalize(dst, []float64{0, 0}, 2)
	if dst[0] != 0 || dst[1] != 0 {
		t.Errorf("Normalize(0,0) = %v, want (0,0)", dst)
	}
}

func TestNormalizeUnit(t *testing.T) {
	dst := make([]float64, 2)
	Normalize(dst, []float64{3, 4}, 2)
	if math.Abs(Len(dst, 2)-1) > 1e-12 {
		t.Errorf("Normalize result not unit length: %v", dst)
	}
	if !approxSlice(dst, []float64{0.6, 0.8}, 1e-12) {
		t.Errorf("Normalize(3,4) = %v, want (0.6, 0.8)", dst)
	}
}

func TestLerpEndpoints(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{10, 20}
	dst := make([]float64, 2)
	Lerp(dst, a, b, 0, 2)
	if !approxSlice(dst, a, 1e-12) {
		t.Errorf("Lerp(t=0) = %v, want %v", dst, a)
	}
	Lerp(dst, a, b, 1, 2)
	if !approxSlice(dst, b, 1e-12) {
		t.Errorf("Lerp(t=1) = %v, want %v", dst, b)
	}
	Lerp(dst, a, b, 0.5, 2)
	if !approxSlice(dst, []float64{5, 10}, 1e-12) {
		t.Errorf("Lerp(t=0.5) = %v, want (5,10)", dst)
	}
}

func TestEqualWithinEpsilon(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{1.0000001, 2, 3}
	if !Equal(a, b, 3, 1e-5) {
		t.Errorf("Equal should tolerate small epsilon")
	}
	if Equal(a, b, 3, 1e-10) {
		t.Errorf("Equal should reject within too-tight epsilon")
	}
}

func TestExactEqual(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{1, 2}
	if !ExactEqual(a, b, 2) {
		t.Errorf("ExactEqual should hold for identical slices")
	}
	b[0] = math.Nextafter(1, 2)
	if ExactEqual(a, b, 2) {
		t.Errorf("ExactEqual should fail for the smallest possible difference")
	}
}

func TestAddScaledAndSubScaled(t *testing.T) {
	dst := make([]float64, 2)
	AddScaled(dst, []float64{1, 1}, []float64{2, 2}, 3, 2)
	if !approxSlice(dst, []float64{7, 7}, 1e-12) {
		t.Errorf("AddScaled = %v, want (7,7)", dst)
	}
	SubScaled(dst, []float64{10, 10}, []float64{2, 2}, 3, 2)
	if !approxSlice(dst, []float64{4, 4}, 1e-12) {
		t.Errorf("SubScaled = %v, want (4,4)", dst)
	}
}
