package render

// This file implements the anti-aliased line stroker used to draw the
// flattened curve and the corner stars.

import "math"

// strokeLineAA draws an anti-aliased line from (x0, y0) to (x1, y1) onto
// canvas using Wu's line algorithm: each pixel straddling the ideal line
// is weighted by how much of it the line covers, so a near-horizontal or
// near-vertical line comes out smooth instead of stair-stepped.
func strokeLineAA(canvas *Canvas, x0, y0, x1, y1 float64, color RGBA) {
	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	plot := func(x, y int, coverage float64) {
		if coverage <= 0 {
			return
		}
		if coverage > 1 {
			coverage = 1
		}
		if steep {
			x, y = y, x
		}
		canvas.BlendPixelAlpha(x, y, color, uint8(coverage*255+0.5))
	}

	// First endpoint: its fractional x position splits coverage between
	// the two pixels it straddles vertically, scaled by how far short of
	// a whole pixel the endpoint itself falls (xgap).
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := 1 - fracPart(x0+0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	plot(xpxl1, ypxl1, (1-fracPart(yend))*xgap)
	plot(xpxl1, ypxl1+1, fracPart(yend)*xgap)
	intery := yend + gradient

	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fracPart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	plot(xpxl2, ypxl2, (1-fracPart(yend))*xgap)
	plot(xpxl2, ypxl2+1, fracPart(yend)*xgap)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		y := int(math.Floor(intery))
		plot(x, y, 1-fracPart(intery))
		plot(x, y+1, fracPart(intery))
		intery += gradient
	}
}

func fracPart(v float64) float64 {
	return v - math.Floor(v)
}

// strokePolyline draws every segment of points with strokeLineAA. Adjacent
// segments share an endpoint pixel, so no explicit joint handling is
// needed for the thin, single-pixel strokes this package draws.
func strokePolyline(canvas *Canvas, points []Point, color RGBA) {
	for i := 0; i+1 < len(points); i++ {
		strokeLineAA(canvas, points[i].X, points[i].Y, points[i+1].X, points[i+1].Y, color)
	}
}
