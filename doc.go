// Package curvefit fits piecewise cubic Bezier curves to n-dimensional
// point sequences.
//
// # Overview
//
// curvefit implements the Schneider least-squares curve fitting algorithm:
// given a polyline sampled from some underlying smooth curve, it produces
// a small sequence of cubic Bezier segments whose union approximates the
// input within a caller-supplied L2 error tolerance. Corner indices may be
// supplied to force a break in the fit (C0 continuity only; no tangent
// continuity is enforced across a corner).
//
// # Quick start
//
//	pts := []float64{0, 0, 1, 0, 2, 0, 3, 0, 4, 0} // 5 points, dims=2
//	result, err := curvefit.Fit(pts, 2, 1e-6, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.SegmentCount())
//
// # Coordinate system
//
// Points are flattened, row-major arrays of length dims*count. The fitter
// is agnostic to the number of dimensions; dims == 2 is the common case
// for vector graphics, but any dims >= 1 is supported.
//
// # Architecture
//
// The package is organized as a small pipeline, leaves first:
//   - internal/vecops: elementwise arithmetic on n-d point slices
//   - Cubic / CubicList: curve segment value type and output accumulator
//   - Parameterization: chord-length parameterization of a run
//   - LeastSquaresSolver: tangent-magnitude fit under the Bezier basis
//   - ErrorEvaluator: worst-case squared deviation of a candidate fit
//   - Reparameterizer: Newton-Raphson refinement of parameter values
//   - FitRecursor: per-run driver that fits, reparameterizes, and splits
//   - Driver (Fit / FitFloat32): walks corners and assembles the output
//
// The render subpackage renders a FitResult to a raster image for visual
// inspection; it is not required to use the fitter itself.
package curvefit
