package curvefit

import "github.com/gogpu/curvefit/internal/vecops"

// maxReparamIterations bounds how many Newton-Raphson passes FitRecursor
// will attempt on a single run before giving up and splitting it.
const maxReparamIterations = 4

// FitRecursor fits a single run of n points (dims each, contiguous in
// points) with one or more cubic segments, appending every segment it
// produces to list in geometric order. tl and tr are unit vectors pointing
// into the curve from the run's first and last points respectively (tl is
// the forward chord direction at points[0], tr is the backward chord
// direction at points[n-1]).
//
// thresholdSq is the squared-distance error budget: a candidate cubic is
// accepted once its worst interior sample deviates by less than
// sqrt(thresholdSq). cache is the driver's shared chord-length cache,
// reused (and only grown, never reset) across every run and every
// recursive call.
func FitRecursor(points []float64, dims, n int, tl, tr []float64, thresholdSq float64, cache *LengthCache, list *CubicList) {
	if n == 2 {
		list.Append(linearCubic(points, dims, tl, tr))
		return
	}

	u, err := Parameterize(points, dims, n, cache)
	if err != nil {
		// A zero-length run collapses to a linear segment; there is
		// nothing left for least squares to resolve.
		c := linearCubic(points, dims, tl, tr)
		c.OrigSpan = uint(n - 1)
		list.Append(c)
		return
	}

	c := FitLeastSquares(points, dims, n, u, tl, tr)
	maxSq, worst := ComputeMaxError(c, points, dims, n, u)
	if maxSq < thresholdSq {
		list.Append(c)
		return
	}

	for iter := 0; iter < maxReparamIterations; iter++ {
		uNew, ok := Reparameterize(c, points, dims, n, u)
		if !ok {
			break
		}
		candidate := FitLeastSquares(points, dims, n, uNew, tl, tr)
		candSq, candWorst := ComputeMaxError(candidate, points, dims, n, uNew)
		u, c, maxSq, worst = uNew, candidate, candSq, candWorst
		if maxSq < thresholdSq {
			list.Append(c)
			return
		}
	}

	splitIdx := worst
	if splitIdx <= 0 || splitIdx >= n-1 {
		// Degenerate: no valid interior split index was ever produced
		// (shouldn't happen for n >= 3, but fall back to the midpoint).
		splitIdx = n / 2
	}
	if vecops.ExactEqual(points[(splitIdx-1)*dims:splitIdx*dims], points[(splitIdx+1)*dims:(splitIdx+2)*dims], dims) {
		Logger().Debug("curvefit: split index has a duplicated neighbor, advancing by one", "index", splitIdx)
		splitIdx++
		if splitIdx >= n-1 {
			splitIdx = n - 2
		}
	}

	tCenter := vecops.NewSlice(dims)
	vecops.NormalizeDiff(tCenter, points[(splitIdx+1)*dims:(splitIdx+2)*dims], points[(splitIdx-1)*dims:splitIdx*dims], dims)

	leftN := splitIdx + 1
	rightN := n - splitIdx
	FitRecursor(points[0:leftN*dims], dims, leftN, tl, tCenter, thresholdSq, cache, list)
	FitRecursor(points[splitIdx*dims:n*dims], dims, rightN, tCenter, tr, thresholdSq, cache, list)
}

// linearCubic builds the degenerate two-point cubic whose handles sit a
// third of the chord length in from each endpoint along tl/tr.
func linearCubic(points []float64, dims int, tl, tr []float64) *Cubic {
	p0 := points[0:dims]
	p3 := points[dims : 2*dims]
	alpha := vecops.Dist(p3, p0, dims) / 3.0
	c := NewCubic(dims)
	vecops.Copy(c.P0, p0, dims)
	vecops.Copy(c.P3, p3, dims)
	vecops.AddScaled(c.P1, c.P0, tl, alpha, dims)
	vecops.AddScaled(c.P2, c.P3, tr, alpha, dims)
	c.OrigSpan = 1
	return c
}
