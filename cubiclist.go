package curvefit

// CubicList accumulates the cubic segments fit by one Fit call, across all
// of its runs, in geometric order (the order the curve is traced in, start
// to end).
//
// FitRecursor always appends the left half's segments before the right
// half's, even though the right half's fit completes after the left
// half's recursive call returns, so the list never needs a reversal
// pass to land in final order.
type CubicList struct {
	Dims   int
	cubics []*Cubic
}

// NewCubicList creates an empty list for dims-dimensional cubics.
func NewCubicList(dims int) *CubicList {
	return &CubicList{Dims: dims, cubics: make([]*Cubic, 0, 8)}
}

// Append adds a cubic to the end of the list (geometric order).
func (l *CubicList) Append(c *Cubic) {
	l.cubics = append(l.cubics, c)
}

// Len returns the number of segments currently in the list.
func (l *CubicList) Len() int {
	return len(l.cubics)
}

// Cubics returns the underlying segment slice in geometric order. Callers
// must not mutate the slice's length.
func (l *CubicList) Cubics() []*Cubic {
	return l.cubics
}
