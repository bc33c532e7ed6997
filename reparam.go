package curvefit

import (
	"math"
	"sort"

	"github.com/gogpu/curvefit/internal/vecops"
)

// Reparameterize performs one Newton-Raphson step on each sample's
// parameter value, refining u toward the closest point on the candidate
// curve. It returns ok=false (the caller should keep the previous u)
// if any refined value is non-finite, or if sorting the refined values
// reveals they've walked outside [0, 1] at the boundary.
//
// The sort is a defensive measure against a Newton step reordering
// samples and is applied to the full array, not just the endpoints.
func Reparameterize(c *Cubic, points []float64, dims, n int, u []float64) ([]float64, bool) {
	uNew := make([]float64, n)

	diff := vecops.NewSlice(dims)
	q := vecops.NewSlice(dims)
	qp := vecops.NewSlice(dims)
	qpp := vecops.NewSlice(dims)

	for i := 0; i < n; i++ {
		ui := u[i]
		c.Eval(ui, q)
		c.Velocity(ui, qp)
		c.Acceleration(ui, qpp)
		vecops.Sub(diff, q, points[i*dims:(i+1)*dims], dims)

		numerator := vecops.Dot(diff, qp, dims)
		denominator := vecops.LenSq(qp, dims) + vecops.Dot(diff, qpp, dims)

		if denominator == 0 {
			uNew[i] = ui
			continue
		}
		uNew[i] = ui - numerator/denominator
	}

	for _, v := range uNew {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			Logger().Debug("curvefit: reparameterization produced a non-finite value, keeping prior u")
			return nil, false
		}
	}

	sort.Float64s(uNew)
	if uNew[0] < 0 || uNew[n-1] > 1 {
		Logger().Debug("curvefit: reparameterization walked outside [0,1], keeping prior u")
		return nil, false
	}

	return uNew, true
}
