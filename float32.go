package curvefit

// FitResultFloat32 is the float32 mirror of FitResult, produced by widening
// the caller's points to float64, fitting, and narrowing the result back.
type FitResultFloat32 struct {
	Dims           int
	Triples        []float32
	KnotCount      int
	OrigIndex      []int
	CornerSegments []int
}

// SegmentCount returns the number of Bezier segments in the result.
func (r *FitResultFloat32) SegmentCount() int {
	if r.KnotCount == 0 {
		return 0
	}
	return r.KnotCount - 1
}

// Knot returns the (left-handle, anchor, right-handle) triple for knot i.
func (r *FitResultFloat32) Knot(i int) (left, anchor, right []float32) {
	base := i * 3 * r.Dims
	return r.Triples[base : base+r.Dims],
		r.Triples[base+r.Dims : base+2*r.Dims],
		r.Triples[base+2*r.Dims : base+3*r.Dims]
}

// FitFloat32 is a convenience wrapper around Fit for callers whose data is
// already float32: it widens points to float64, runs the fit at full
// double precision, and narrows the result back. The fit itself is never
// performed in float32 directly, since the least-squares normal equations
// in lsq.go lose too much precision at that width to reliably converge.
func FitFloat32(points []float32, dims int, errorThreshold float32, corners []int) (*FitResultFloat32, error) {
	wide := make([]float64, len(points))
	for i, v := range points {
		wide[i] = float64(v)
	}

	res, err := Fit(wide, dims, float64(errorThreshold), corners)
	if err != nil {
		return nil, err
	}

	out := &FitResultFloat32{
		Dims:           res.Dims,
		KnotCount:      res.KnotCount,
		OrigIndex:      res.OrigIndex,
		CornerSegments: res.CornerSegments,
	}
	out.Triples = make([]float32, len(res.Triples))
	for i, v := range res.Triples {
		out.Triples[i] = float32(v)
	}
	return out, nil
}
