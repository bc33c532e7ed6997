package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/gogpu/curvefit"
)

func straightLineResult(t *testing.T) (*curvefit.FitResult, []float64) {
	t.Helper()
	points := []float64{0, 0, 1, 0, 2, 0, 3, 0, 4, 0}
	res, err := curvefit.Fit(points, 2, 1e-6, nil)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	return res, points
}

func TestDrawFitRejectsNon2D(t *testing.T) {
	points := []float64{0, 0, 0, 1, 0, 2}
	res, err := curvefit.Fit(points, 3, 1e-6, nil)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, err := DrawFit(res, points, nil, 100, 100, "", DefaultPalette); err != ErrNot2D {
		t.Fatalf("DrawFit() error = %v, want ErrNot2D", err)
	}
}

func TestDrawFitProducesCanvas(t *testing.T) {
	res, points := straightLineResult(t)
	canvas, err := DrawFit(res, points, nil, 200, 150, "straight-line", DefaultPalette)
	if err != nil {
		t.Fatalf("DrawFit() error = %v", err)
	}
	if canvas == nil {
		t.Fatal("DrawFit() returned nil canvas")
	}
	if canvas.Width() != 200 || canvas.Height() != 150 {
		t.Fatalf("canvas size = %dx%d, want 200x150", canvas.Width(), canvas.Height())
	}
}

func TestDrawFitWithCornersMarksKnots(t *testing.T) {
	points := make([]float64, 0, 42)
	for i := 0; i <= 10; i++ {
		points = append(points, float64(i)*10, 0)
	}
	for i := 1; i <= 10; i++ {
		points = append(points, 100, float64(i)*10)
	}
	corners := []int{0, 10, 20}
	res, err := curvefit.Fit(points, 2, 1e-6, corners)
	if err != nil {
		t.Fatalf("Fit() error = %v", err)
	}
	if _, err := DrawFit(res, points, corners, 200, 200, "l-shape", DefaultPalette); err != nil {
		t.Fatalf("DrawFit() error = %v", err)
	}
}

func TestCanvasEncodePNGIsWellFormed(t *testing.T) {
	res, points := straightLineResult(t)
	canvas, err := DrawFit(res, points, nil, 64, 48, "", DefaultPalette)
	if err != nil {
		t.Fatalf("DrawFit() error = %v", err)
	}

	var buf bytes.Buffer
	if err := canvas.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	bounds := decoded.Bounds()
	if bounds.Dx() != 64 || bounds.Dy() != 48 {
		t.Fatalf("decoded PNG size = %dx%d, want 64x48", bounds.Dx(), bounds.Dy())
	}
}

func TestNewProjectionHandlesDegenerateSpans(t *testing.T) {
	p := newProjection([]float64{5, 5}, 100, 100)
	x, y := p.toPixel(5, 5)
	if x < 0 || x > 100 || y < 0 || y > 100 {
		t.Fatalf("toPixel() = (%v, %v), want within canvas bounds", x, y)
	}

	single := newProjection(nil, 100, 100)
	if single.scale != 1 {
		t.Fatalf("newProjection(nil) scale = %v, want 1", single.scale)
	}
}
