package render

import "math"

// starPath builds a closed five-pointed (or n-pointed) star outline
// centered at (cx, cy), alternating outerRadius and innerRadius vertices.
// DrawFit uses it to mark the corner knots a caller's corners slice named.
func starPath(cx, cy, outerRadius, innerRadius float64, points int) *Path {
	p := NewPath()
	if points < 3 {
		return p
	}

	angleStep := math.Pi / float64(points)
	startAngle := -math.Pi / 2

	for i := 0; i < points*2; i++ {
		angle := startAngle + float64(i)*angleStep
		r := outerRadius
		if i%2 == 1 {
			r = innerRadius
		}
		x := cx + r*math.Cos(angle)
		y := cy + r*math.Sin(angle)
		if i == 0 {
			p.MoveTo(x, y)
		} else {
			p.LineTo(x, y)
		}
	}
	p.Close()
	return p
}
