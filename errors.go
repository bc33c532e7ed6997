package curvefit

import (
	"errors"
	"fmt"
)

// Sentinel errors for invalid input to the fitter. The algorithm proper
// assumes its inputs have already been validated at this boundary; these,
// together with *CornerRangeError, are the only errors Fit and FitFloat32
// return.
var (
	// ErrNoPoints is returned when points_len is zero.
	ErrNoPoints = errors.New("curvefit: points_len must be >= 1")

	// ErrZeroDims is returned when dims is zero.
	ErrZeroDims = errors.New("curvefit: dims must be >= 1")

	// ErrBadPointsLength is returned when len(points) is not a multiple
	// of dims.
	ErrBadPointsLength = errors.New("curvefit: len(points) does not match dims*points_len")

	// ErrTooFewCorners is returned when a non-nil corners slice has
	// fewer than two entries.
	ErrTooFewCorners = errors.New("curvefit: corners must have at least 2 entries when supplied")

	// ErrNegativeErrorThreshold is returned when error_threshold < 0.
	ErrNegativeErrorThreshold = errors.New("curvefit: error_threshold must be non-negative")

	// ErrZeroLengthRun is returned internally by Parameterize when a run's
	// total chord length is numerically zero (every point coincident).
	// FitRecursor catches it and falls back to a linear-handle cubic; the
	// single-point (points_len == 1) case is handled even earlier, in
	// Driver, which never calls Parameterize for it at all. Neither path
	// surfaces this error to the caller.
	ErrZeroLengthRun = errors.New("curvefit: run has zero total chord length")
)

// CornerRangeError reports a corners entry that is out of range or that
// breaks the required strictly-ascending order.
type CornerRangeError struct {
	Index int // index into the corners slice
	Value int // the offending corner value
	Bound int // points_len - 1, the valid upper bound
}

func (e *CornerRangeError) Error() string {
	return fmt.Sprintf("curvefit: corners[%d]=%d is out of range or not strictly ascending (points_len-1=%d)", e.Index, e.Value, e.Bound)
}
