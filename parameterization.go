package curvefit

import "github.com/gogpu/curvefit/internal/vecops"

// LengthCache holds per-chord distances for a run, reused across the
// driver's runs so it only grows, never reallocates on every run.
type LengthCache struct {
	dist []float64 // dist[i] = |points[i] - points[i-1]|, valid for i in [1, n)
}

// NewLengthCache creates an empty cache.
func NewLengthCache() *LengthCache {
	return &LengthCache{}
}

// ensure grows the cache's backing array if the run needs more than it
// currently holds. Reallocation only happens when the run exceeds the
// currently allocated cache, per the driver's monotonic-growth policy.
func (lc *LengthCache) ensure(n int) {
	if cap(lc.dist) >= n {
		lc.dist = lc.dist[:n]
		return
	}
	lc.dist = make([]float64, n)
}

// Parameterize computes chord-length parameter values for a run of n
// points (dims each, contiguous row-major in points), refreshing the
// supplied length cache, which must be non-nil. u[0] is 0, u[n-1] is exactly 1, and u is
// strictly non-decreasing. Returns ErrZeroLengthRun if the run's total
// chord length is numerically zero.
func Parameterize(points []float64, dims, n int, cache *LengthCache) ([]float64, error) {
	u := make([]float64, n)
	if n <= 1 {
		return u, nil
	}

	cache.ensure(n)
	total := 0.0
	for i := 1; i < n; i++ {
		d := vecops.Dist(points[i*dims:(i+1)*dims], points[(i-1)*dims:i*dims], dims)
		cache.dist[i] = d
		total += d
	}

	if total <= 0 {
		return nil, ErrZeroLengthRun
	}

	cum := 0.0
	for i := 1; i < n-1; i++ {
		cum += cache.dist[i]
		u[i] = cum / total
	}
	u[0] = 0
	u[n-1] = 1
	return u, nil
}
