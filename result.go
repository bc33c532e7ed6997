package curvefit

import "github.com/gogpu/curvefit/internal/vecops"

// FitResult is the flattened output of a fit: an open polyline of knots,
// each carrying a (left-handle, anchor, right-handle) triple, laid out as
// described in the package's flattening rules.
type FitResult struct {
	Dims int

	// Triples holds KnotCount*3*Dims doubles: for each knot, in order,
	// its left-handle, anchor, and right-handle coordinates.
	Triples []float64

	// KnotCount is SegmentCount()+1.
	KnotCount int

	// OrigIndex holds the original input sample index of each knot.
	// Length KnotCount; Fit always fills it.
	OrigIndex []int

	// CornerSegments holds, for each element of the corners array the
	// caller supplied, the cumulative segment count at that boundary. It
	// is nil unless the caller explicitly supplied a non-default corners
	// slice (see the note on this quirk in Fit's doc comment).
	CornerSegments []int
}

// SegmentCount returns the number of Bezier segments in the result.
func (r *FitResult) SegmentCount() int {
	if r.KnotCount == 0 {
		return 0
	}
	return r.KnotCount - 1
}

// Knot returns the (left-handle, anchor, right-handle) triple for knot i,
// each a Dims-length slice into the shared Triples backing array.
func (r *FitResult) Knot(i int) (left, anchor, right []float64) {
	base := i * 3 * r.Dims
	return r.Triples[base : base+r.Dims],
		r.Triples[base+r.Dims : base+2*r.Dims],
		r.Triples[base+2*r.Dims : base+3*r.Dims]
}

// flatten lays out cubics (in geometric order) into the triples/orig-index
// output arrays per the flattening rules: interior knots take their left
// handle from the preceding segment and right handle from the following
// segment; the two boundary knots mirror their single adjacent handle
// about the shared anchor so every triple is well defined.
func flatten(cubics []*Cubic, dims int, firstOrigIndex int, wantOrigIndex bool) *FitResult {
	k := len(cubics)
	res := &FitResult{Dims: dims}
	if k == 0 {
		return res
	}

	knotCount := k + 1
	res.KnotCount = knotCount
	res.Triples = make([]float64, knotCount*3*dims)

	var origIndex []int
	if wantOrigIndex {
		origIndex = make([]int, knotCount)
		origIndex[0] = firstOrigIndex
	}

	for i := 0; i < knotCount; i++ {
		left, anchor, right := res.Knot(i)
		switch {
		case i == 0:
			c := cubics[0]
			vecops.Copy(anchor, c.P0, dims)
			vecops.Copy(right, c.P1, dims)
			mirror(left, c.P0, c.P1, dims)
		case i == k:
			c := cubics[k-1]
			vecops.Copy(anchor, c.P3, dims)
			vecops.Copy(left, c.P2, dims)
			mirror(right, c.P3, c.P2, dims)
		default:
			prev := cubics[i-1]
			cur := cubics[i]
			vecops.Copy(anchor, cur.P0, dims)
			vecops.Copy(left, prev.P2, dims)
			vecops.Copy(right, cur.P1, dims)
		}
		if wantOrigIndex && i > 0 {
			origIndex[i] = origIndex[i-1] + int(cubics[i-1].OrigSpan)
		}
	}

	res.OrigIndex = origIndex
	return res
}

// mirror writes 2*about - p into dst: the reflection of p about the point
// about. Used to synthesize the boundary handle that has no real neighbor.
func mirror(dst, about, p []float64, dims int) {
	for i := 0; i < dims; i++ {
		dst[i] = 2*about[i] - p[i]
	}
}
