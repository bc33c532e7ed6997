package render

import "math"

// Point is a 2D coordinate in canvas (pixel) space. Curve evaluation and
// path flattening both work in this space after projection has already
// mapped fit-space coordinates onto the canvas.
type Point struct {
	X, Y float64
}

// Pt constructs a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q, treating both as vectors.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// LengthSquared returns the squared length of p as a vector from the
// origin; used in place of Length wherever only a comparison is needed.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	d := p.Sub(q)
	return math.Sqrt(d.X*d.X + d.Y*d.Y)
}

// Lerp linearly interpolates between p (t=0) and q (t=1).
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}
