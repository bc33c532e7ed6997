package curvefit

import "github.com/gogpu/curvefit/internal/vecops"

// ComputeMaxError scans the interior samples of a run (i in [1, n-2],
// endpoints excluded since those are exact by construction) and returns
// the largest squared deviation between the candidate curve evaluated at
// u[i] and the sample point P_i, along with the index where it occurs.
//
// worstIdx is always in [1, n-2] when n >= 3; for n < 3 there are no
// interior samples and worstIdx is -1.
func ComputeMaxError(c *Cubic, points []float64, dims, n int, u []float64) (maxSq float64, worstIdx int) {
	worstIdx = -1
	if n < 3 {
		return 0, worstIdx
	}
	worstIdx = 1

	eval := vecops.NewSlice(dims)
	for i := 1; i <= n-2; i++ {
		c.Eval(u[i], eval)
		d := vecops.DistSq(points[i*dims:(i+1)*dims], eval, dims)
		if d > maxSq {
			maxSq = d
			worstIdx = i
		}
	}
	return maxSq, worstIdx
}
