package curvefit

import "github.com/gogpu/curvefit/internal/vecops"

// Cubic holds the four n-dimensional control points of a single Bezier
// segment together with the number of original sample intervals it was
// fit to. P0 and P3 are always exactly (bit-for-bit) the first and last
// points of the run the segment covers; P1 and P2 are the fitted handles.
type Cubic struct {
	Dims     int
	P0       []float64
	P1       []float64
	P2       []float64
	P3       []float64
	OrigSpan uint
}

// NewCubic allocates a zeroed Cubic with four dims-length control points.
func NewCubic(dims int) *Cubic {
	return &Cubic{
		Dims: dims,
		P0:   make([]float64, dims),
		P1:   make([]float64, dims),
		P2:   make([]float64, dims),
		P3:   make([]float64, dims),
	}
}

// Clone returns a deep copy of c.
func (c *Cubic) Clone() *Cubic {
	out := NewCubic(c.Dims)
	vecops.Copy(out.P0, c.P0, c.Dims)
	vecops.Copy(out.P1, c.P1, c.Dims)
	vecops.Copy(out.P2, c.P2, c.Dims)
	vecops.Copy(out.P3, c.P3, c.Dims)
	out.OrigSpan = c.OrigSpan
	return out
}

// Eval writes the curve position at parameter t into dst using the stable
// de Casteljau recursion (three levels of linear interpolation), not the
// direct Bernstein polynomial.
func (c *Cubic) Eval(t float64, dst []float64) {
	dims := c.Dims
	a := make([]float64, dims)
	b := make([]float64, dims)
	d := make([]float64, dims)
	e := make([]float64, dims)

	vecops.Lerp(a, c.P0, c.P1, t, dims) // a = lerp(P0,P1,t)
	vecops.Lerp(b, c.P1, c.P2, t, dims) // b = lerp(P1,P2,t)
	lerpInto := make([]float64, dims)
	vecops.Lerp(lerpInto, c.P2, c.P3, t, dims) // lerpInto = lerp(P2,P3,t)

	vecops.Lerp(d, a, b, t, dims)          // d = lerp(a,b,t)
	vecops.Lerp(e, b, lerpInto, t, dims)    // e = lerp(b,lerpInto,t)
	vecops.Lerp(dst, d, e, t, dims)         // dst = lerp(d,e,t)
}

// Velocity writes the first derivative P'(t) into dst using the direct
// closed form: 3*(s^2(P1-P0) + 2st(P2-P1) + t^2(P3-P2)).
func (c *Cubic) Velocity(t float64, dst []float64) {
	dims := c.Dims
	s := 1 - t
	d0 := make([]float64, dims)
	d1 := make([]float64, dims)
	d2 := make([]float64, dims)
	vecops.Sub(d0, c.P1, c.P0, dims)
	vecops.Sub(d1, c.P2, c.P1, dims)
	vecops.Sub(d2, c.P3, c.P2, dims)

	w0 := s * s
	w1 := 2 * s * t
	w2 := t * t
	for i := 0; i < dims; i++ {
		dst[i] = 3 * (w0*d0[i] + w1*d1[i] + w2*d2[i])
	}
}

// Acceleration writes the second derivative P''(t) into dst:
// 6*(s*(P2-2P1+P0) + t*(P3-2P2+P1)).
func (c *Cubic) Acceleration(t float64, dst []float64) {
	dims := c.Dims
	s := 1 - t
	a0 := make([]float64, dims)
	a1 := make([]float64, dims)
	for i := 0; i < dims; i++ {
		a0[i] = c.P2[i] - 2*c.P1[i] + c.P0[i]
		a1[i] = c.P3[i] - 2*c.P2[i] + c.P1[i]
	}
	for i := 0; i < dims; i++ {
		dst[i] = 6 * (s*a0[i] + t*a1[i])
	}
}
