package curvefit

import (
	"math"

	"github.com/gogpu/curvefit/internal/vecops"
)

const (
	// clampScale is the factor applied to the run's max centroid distance
	// to obtain the handle envelope radius r_max = clampScale * r_center.
	clampScale = 3.0

	// detSingularThreshold is the |det(C)| below which the 2x2 normal
	// equations are treated as singular and nudged rather than solved
	// directly.
	detSingularThreshold = 1e-10

	// detNudgeFactor is the factor applied to C00*C11 to produce a
	// non-zero stand-in determinant when the real one is too small.
	detNudgeFactor = 1e-11
)

// basisB1 returns the Bernstein weight of P1 at u: 3u(1-u)^2.
func basisB1(u float64) float64 {
	s := 1 - u
	return 3 * u * s * s
}

// basisB2 returns the Bernstein weight of P2 at u: 3u^2(1-u).
func basisB2(u float64) float64 {
	s := 1 - u
	return 3 * u * u * s
}

// basisB01 returns the combined weight of P0 (and P1's fixed-endpoint
// contribution) at u: (1-u)^2(1+2u).
func basisB01(u float64) float64 {
	s := 1 - u
	return s * s * (1 + 2*u)
}

// basisB23 returns the combined weight of P3 (and P2's fixed-endpoint
// contribution) at u: u^2(3-2u).
func basisB23(u float64) float64 {
	return u * u * (3 - 2*u)
}

// solveTangentMagnitudes solves the 2x2 least-squares normal equations for
// the tangent-magnitude scalars alpha_l, alpha_r that best fit the run
// under the fixed endpoints and tangent directions tl, tr (both unit
// vectors pointing into the curve). Falls back to the chord-length
// heuristic if the system is singular enough to make either alpha
// negative or non-finite.
func solveTangentMagnitudes(points []float64, dims, n int, u, tl, tr []float64) (alphaL, alphaR float64) {
	p0 := points[0:dims]
	p3 := points[(n-1)*dims : n*dims]

	var c00, c01, c11, x0, x1 float64
	a0 := vecops.NewSlice(dims)
	a1 := vecops.NewSlice(dims)
	tmp := vecops.NewSlice(dims)
	scratch := vecops.NewSlice(dims)

	for i := 0; i < n; i++ {
		ui := u[i]
		b1 := basisB1(ui)
		b2 := basisB2(ui)
		b01 := basisB01(ui)
		b23 := basisB23(ui)

		vecops.Scale(a0, tl, b1, dims)
		vecops.Scale(a1, tr, b2, dims)

		pi := points[i*dims : (i+1)*dims]
		vecops.Scale(tmp, p0, b01, dims)
		vecops.Sub(tmp, pi, tmp, dims)
		vecops.Scale(scratch, p3, b23, dims)
		vecops.Sub(tmp, tmp, scratch, dims)
		// tmp = (P_i - P0*B01(u_i)) - P3*B23(u_i)

		c00 += vecops.Dot(a0, a0, dims)
		c01 += vecops.Dot(a0, a1, dims)
		c11 += vecops.Dot(a1, a1, dims)
		x0 += vecops.Dot(a0, tmp, dims)
		x1 += vecops.Dot(a1, tmp, dims)
	}

	det := c00*c11 - c01*c01
	if math.Abs(det) < detSingularThreshold {
		det = c00 * c11 * detNudgeFactor
	}

	var detAlphaL, detAlphaR float64
	if det != 0 {
		detAlphaL = x0*c11 - x1*c01
		detAlphaR = c00*x1 - c01*x0
		alphaL = detAlphaL / det
		alphaR = detAlphaR / det
	} else {
		alphaL, alphaR = math.NaN(), math.NaN()
	}

	fallback := vecops.Dist(p3, p0, dims) / 3.0
	if !(alphaL >= 0) {
		Logger().Debug("curvefit: singular or negative alpha_l, falling back to chord heuristic", "alpha_l", alphaL)
		alphaL = fallback
	}
	if !(alphaR >= 0) {
		Logger().Debug("curvefit: singular or negative alpha_r, falling back to chord heuristic", "alpha_r", alphaR)
		alphaR = fallback
	}
	return alphaL, alphaR
}

// buildCubic constructs the candidate cubic from fixed endpoints, tangent
// directions, and tangent magnitudes: P1 = P0 + alphaL*tl, P2 = P3 + alphaR*tr.
// Both tl and tr are unit vectors pointing into the body of the curve from
// their respective endpoint, so tl is the forward chord direction at P0 and
// tr is the backward chord direction at P3.
func buildCubic(points []float64, dims, n int, tl, tr []float64, alphaL, alphaR float64) *Cubic {
	c := NewCubic(dims)
	vecops.Copy(c.P0, points[0:dims], dims)
	vecops.Copy(c.P3, points[(n-1)*dims:n*dims], dims)
	vecops.AddScaled(c.P1, c.P0, tl, alphaL, dims)
	vecops.AddScaled(c.P2, c.P3, tr, alphaR, dims)
	c.OrigSpan = uint(n - 1)
	return c
}

// weightedCentroid returns the centroid of the run's points, weighted by
// the sum of each point's two incident chord lengths. The run is treated
// as a cycle for this weighting only (point n-1's "next" is point 0), so
// the boundary points still get a meaningful two-sided weight even though
// the fitted curve itself is open.
func weightedCentroid(points []float64, dims, n int) []float64 {
	center := make([]float64, dims)
	totalWeight := 0.0
	for i := 0; i < n; i++ {
		prev := (i - 1 + n) % n
		next := (i + 1) % n
		pi := points[i*dims : (i+1)*dims]
		w := vecops.Dist(pi, points[prev*dims:(prev+1)*dims], dims) +
			vecops.Dist(pi, points[next*dims:(next+1)*dims], dims)
		vecops.AddScaled(center, center, pi, w, dims)
		totalWeight += w
	}
	if totalWeight == 0 {
		vecops.Copy(center, points[0:dims], dims)
		return center
	}
	vecops.Scale(center, center, 1/totalWeight, dims)
	return center
}

// maxCentroidDistance returns max_i |P_i - center|.
func maxCentroidDistance(points []float64, dims, n int, center []float64) float64 {
	maxDist := 0.0
	for i := 0; i < n; i++ {
		d := vecops.Dist(points[i*dims:(i+1)*dims], center, dims)
		if d > maxDist {
			maxDist = d
		}
	}
	return maxDist
}

// clampHandles enforces the tangent-envelope invariant: P1 and P2 must
// lie within a sphere of radius clampScale*r_center around the run's
// weighted centroid. If the direct least-squares fit violates this, the
// fallback alpha heuristic is tried first; if that still violates it,
// the offending handle is projected radially onto the sphere boundary.
func clampHandles(c *Cubic, points, tl, tr []float64, dims, n int) {
	center := weightedCentroid(points, dims, n)
	rMax := clampScale * maxCentroidDistance(points, dims, n, center)
	if rMax == 0 {
		return
	}
	rMaxSq := rMax * rMax

	outside := func(p []float64) bool {
		return vecops.DistSq(p, center, dims) > rMaxSq
	}

	if !outside(c.P1) && !outside(c.P2) {
		return
	}

	Logger().Debug("curvefit: handle outside tangent envelope, retrying with fallback alpha")
	fallback := vecops.Dist(c.P3, c.P0, dims) / 3.0
	vecops.AddScaled(c.P1, c.P0, tl, fallback, dims)
	vecops.AddScaled(c.P2, c.P3, tr, fallback, dims)

	if outside(c.P1) {
		Logger().Warn("curvefit: projecting left handle onto tangent envelope")
		projectOntoSphere(c.P1, center, rMax, dims)
	}
	if outside(c.P2) {
		Logger().Warn("curvefit: projecting right handle onto tangent envelope")
		projectOntoSphere(c.P2, center, rMax, dims)
	}
}

// projectOntoSphere moves p radially onto the sphere of radius r around
// center: p <- center + (p - center) * r / |p - center|.
func projectOntoSphere(p, center []float64, r float64, dims int) {
	diff := vecops.NewSlice(dims)
	vecops.Sub(diff, p, center, dims)
	d := vecops.Len(diff, dims)
	if d == 0 {
		return
	}
	vecops.AddScaled(p, center, diff, r/d, dims)
}

// FitLeastSquares solves for the tangent magnitudes and assembles the
// resulting candidate cubic, including tangent-envelope clamping.
func FitLeastSquares(points []float64, dims, n int, u, tl, tr []float64) *Cubic {
	alphaL, alphaR := solveTangentMagnitudes(points, dims, n, u, tl, tr)
	c := buildCubic(points, dims, n, tl, tr, alphaL, alphaR)
	clampHandles(c, points, tl, tr, dims, n)
	return c
}
