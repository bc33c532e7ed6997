package render

// PathElement is one drawing instruction in a Path: a move, a line, a
// cubic segment, or a subpath close.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a straight line to Point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier segment through the two control points to
// Point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close draws a line back to the current subpath's start point.
type Close struct{}

func (Close) isPathElement() {}

// Path is the sequence of drawing instructions strokePath flattens and
// rasterizes: the fitted curve, the corner-knot markers, all go through
// this one representation before they reach a Canvas.
type Path struct {
	elements []PathElement
	start    Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 16)}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
}

// LineTo appends a straight line to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// CubicTo appends a cubic Bezier segment to (x, y) with the given control
// points.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close appends a line back to the current subpath's start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path's instructions in recording order.
func (p *Path) Elements() []PathElement {
	return p.elements
}
