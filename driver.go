package curvefit

import "github.com/gogpu/curvefit/internal/vecops"

// Fit fits one or more piecewise-cubic curves to an n-dimensional point
// sequence. points is dims*points_len values, row-major (point i occupies
// points[i*dims:(i+1)*dims]). errorThreshold is a plain distance: a fitted
// segment is accepted once every sample it covers deviates from the curve
// by less than errorThreshold.
//
// corners, if non-nil, names the indices (strictly ascending, each in
// [0, points_len-1]) at which the output must have a hard corner — a C0
// knot with independent left and right handles rather than a smoothly
// blended one. corners must include both 0 and points_len-1 if supplied.
// A nil corners slice fits the whole sequence as a single smooth run,
// equivalent to passing []int{0, points_len - 1}.
//
// Fit returns FitResult.CornerSegments (the cumulative segment count at
// each requested corner) only when the caller supplied an explicit corners
// slice; the implicit default run never populates it, matching how the
// Driver distinguishes "the caller cares about corner boundaries" from
// "there happens to be exactly one run."
func Fit(points []float64, dims int, errorThreshold float64, corners []int) (*FitResult, error) {
	if dims <= 0 {
		return nil, ErrZeroDims
	}
	if len(points)%dims != 0 {
		return nil, ErrBadPointsLength
	}
	n := len(points) / dims
	if n == 0 {
		return nil, ErrNoPoints
	}
	if errorThreshold < 0 {
		return nil, ErrNegativeErrorThreshold
	}

	if n == 1 {
		return degenerateSinglePointResult(points, dims), nil
	}

	callerSuppliedCorners := corners != nil
	if corners == nil {
		corners = []int{0, n - 1}
	}
	if len(corners) < 2 {
		return nil, ErrTooFewCorners
	}
	for i, v := range corners {
		if v < 0 || v > n-1 || (i > 0 && v <= corners[i-1]) {
			return nil, &CornerRangeError{Index: i, Value: v, Bound: n - 1}
		}
	}

	thresholdSq := errorThreshold * errorThreshold
	list := NewCubicList(dims)
	cache := NewLengthCache()

	var cornerSegments []int
	if callerSuppliedCorners {
		cornerSegments = make([]int, 0, len(corners))
		cornerSegments = append(cornerSegments, list.Len())
	}

	for i := 0; i < len(corners)-1; i++ {
		start := corners[i]
		end := corners[i+1]
		runN := end - start + 1
		run := points[start*dims : (end+1)*dims]

		tl := vecops.NewSlice(dims)
		tr := vecops.NewSlice(dims)
		vecops.NormalizeDiff(tl, run[dims:2*dims], run[0:dims], dims)
		vecops.NormalizeDiff(tr, run[(runN-2)*dims:(runN-1)*dims], run[(runN-1)*dims:runN*dims], dims)

		FitRecursor(run, dims, runN, tl, tr, thresholdSq, cache, list)

		if callerSuppliedCorners {
			cornerSegments = append(cornerSegments, list.Len())
		}
	}

	res := flatten(list.Cubics(), dims, corners[0], true)
	res.CornerSegments = cornerSegments
	return res, nil
}

// degenerateSinglePointResult builds the trivial one-knot result for a
// run of exactly one sample: every control point in the triple collapses
// onto that single point, since there is no chord to fit a tangent to.
func degenerateSinglePointResult(points []float64, dims int) *FitResult {
	res := &FitResult{Dims: dims, KnotCount: 1}
	res.Triples = make([]float64, 3*dims)
	p := points[0:dims]
	vecops.Copy(res.Triples[0:dims], p, dims)
	vecops.Copy(res.Triples[dims:2*dims], p, dims)
	vecops.Copy(res.Triples[2*dims:3*dims], p, dims)
	res.OrigIndex = []int{0}
	return res
}
