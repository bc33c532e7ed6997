// Package render turns a curvefit.FitResult (and the samples it was fit
// from) into a PNG for visual inspection: the fitted curve stroked with
// an anti-aliased line, the original samples marked as small diamonds,
// and corner knots marked as stars, with a caption.
package render

import (
	"errors"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/curvefit"
)

// ErrNot2D is returned when the result being drawn has Dims != 2; this
// package only visualizes planar fits.
var ErrNot2D = errors.New("render: only 2-dimensional fit results can be drawn")

// Palette controls the colors DrawFit draws with.
type Palette struct {
	Background RGBA
	Curve      RGBA
	Sample     RGBA
	Corner     RGBA
	Caption    RGBA
}

// DefaultPalette is a light background with a dark curve, matching the
// demo command's default look.
var DefaultPalette = Palette{
	Background: RGBA{R: 1, G: 1, B: 1, A: 1},
	Curve:      RGBA{R: 0.05, G: 0.25, B: 0.65, A: 1},
	Sample:     RGBA{R: 0.75, G: 0.15, B: 0.15, A: 1},
	Corner:     RGBA{R: 0.1, G: 0.6, B: 0.2, A: 1},
	Caption:    RGBA{R: 0, G: 0, B: 0, A: 1},
}

// flatnessTolerance bounds how far a flattened polyline may deviate from
// the true cubic curve, in pixel units.
const flatnessTolerance = 0.3

// DrawFit renders res (fit to the given 2D points) onto a width x height
// canvas with the supplied caption and corner markers. corners holds the
// original-sample indices that are hard corners (nil if the fit was a
// single smooth run); points is the full dims*points_len input Fit saw,
// used to plot the original samples for comparison against the fitted
// curve.
func DrawFit(res *curvefit.FitResult, points []float64, corners []int, width, height int, caption string, palette Palette) (*Canvas, error) {
	if res.Dims != 2 {
		return nil, ErrNot2D
	}

	proj := newProjection(points, width, height)
	canvas := NewCanvas(width, height, palette.Background)

	curve := buildCurvePath(res, proj)
	strokePath(canvas, curve, palette.Curve)

	for i := 0; i < len(points)/2; i++ {
		x, y := proj.toPixel(points[2*i], points[2*i+1])
		drawDiamond(canvas, x, y, 2.5, palette.Sample)
	}

	for _, cornerKnot := range cornerKnotIndices(res, corners) {
		_, anchor, _ := res.Knot(cornerKnot)
		cx, cy := proj.toPixel(anchor[0], anchor[1])
		strokePath(canvas, starPath(cx, cy, 6, 2.5, 5), palette.Corner)
	}

	drawCaption(canvas, caption, palette.Caption)
	return canvas, nil
}

// cornerKnotIndices maps the driver's original-sample corner indices to
// knot indices in the flattened result. The first and last knot are
// always implicit corners (the run's own endpoints) and are skipped here
// since they're already the frame of the drawing.
func cornerKnotIndices(res *curvefit.FitResult, corners []int) []int {
	if len(corners) <= 2 {
		return nil
	}
	var knots []int
	for _, origIdx := range corners[1 : len(corners)-1] {
		for k, oi := range res.OrigIndex {
			if oi == origIdx {
				knots = append(knots, k)
				break
			}
		}
	}
	return knots
}

// buildCurvePath walks the flattened result's knots into a Path of
// MoveTo/CubicTo segments in pixel space.
func buildCurvePath(res *curvefit.FitResult, proj projection) *Path {
	p := NewPath()
	if res.SegmentCount() == 0 {
		return p
	}
	_, anchor0, _ := res.Knot(0)
	x0, y0 := proj.toPixel(anchor0[0], anchor0[1])
	p.MoveTo(x0, y0)

	for i := 0; i < res.SegmentCount(); i++ {
		_, _, right := res.Knot(i)
		left, anchor, _ := res.Knot(i + 1)
		rx, ry := proj.toPixel(right[0], right[1])
		lx, ly := proj.toPixel(left[0], left[1])
		ax, ay := proj.toPixel(anchor[0], anchor[1])
		p.CubicTo(rx, ry, lx, ly, ax, ay)
	}
	return p
}

// strokePath flattens p's curves into polylines and strokes each with an
// anti-aliased line.
func strokePath(canvas *Canvas, p *Path, color RGBA) {
	for _, sub := range flattenSubpaths(p) {
		if len(sub) < 2 {
			continue
		}
		strokePolyline(canvas, sub, color)
	}
}

// flattenSubpaths converts p's elements into one or more polylines,
// subdividing every cubic segment adaptively to within flatnessTolerance.
func flattenSubpaths(p *Path) [][]Point {
	var subpaths [][]Point
	var current []Point
	var cursor Point

	flushIfAny := func() {
		if len(current) > 0 {
			subpaths = append(subpaths, current)
			current = nil
		}
	}

	for _, elem := range p.Elements() {
		switch e := elem.(type) {
		case MoveTo:
			flushIfAny()
			cursor = e.Point
			current = append(current, cursor)
		case LineTo:
			cursor = e.Point
			current = append(current, cursor)
		case CubicTo:
			current = appendFlattenedCubic(current, cursor, e.Control1, e.Control2, e.Point, 0)
			cursor = e.Point
		case Close:
			if len(current) > 0 {
				current = append(current, current[0])
			}
		}
	}
	flushIfAny()
	return subpaths
}

// appendFlattenedCubic recursively subdivides a cubic Bezier until it's
// flat enough to approximate with its chord, appending sample points
// (excluding p0, which the caller already holds) to dst.
func appendFlattenedCubic(dst []Point, p0, p1, p2, p3 Point, depth int) []Point {
	const maxDepth = 24
	if depth >= maxDepth || cubicIsFlat(p0, p1, p2, p3) {
		return append(dst, p3)
	}

	p01 := p0.Lerp(p1, 0.5)
	p12 := p1.Lerp(p2, 0.5)
	p23 := p2.Lerp(p3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)

	dst = appendFlattenedCubic(dst, p0, p01, p012, mid, depth+1)
	dst = appendFlattenedCubic(dst, mid, p123, p23, p3, depth+1)
	return dst
}

// cubicIsFlat reports whether p1 and p2 are within flatnessTolerance of
// the chord p0-p3.
func cubicIsFlat(p0, p1, p2, p3 Point) bool {
	return distToSegment(p1, p0, p3) <= flatnessTolerance &&
		distToSegment(p2, p0, p3) <= flatnessTolerance
}

func distToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	proj := a.Add(ab.Mul(t))
	return p.Distance(proj)
}

// drawDiamond draws a small filled diamond centered at (x,y) by scanning
// its bounding box directly; samples are small enough that a dedicated
// fill rasterizer would be overkill.
func drawDiamond(canvas *Canvas, x, y, radius float64, color RGBA) {
	r := int(radius) + 1
	cx, cy := int(x), int(y)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(abs(dx))+float64(abs(dy)) <= radius {
				canvas.SetPixel(cx+dx, cy+dy, color)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// drawCaption overlays caption in the canvas's top-left corner (or
// top-right, if bidi analysis judges the caption right-to-left) using a
// bundled bitmap font.
func drawCaption(canvas *Canvas, caption string, color RGBA) {
	if caption == "" {
		return
	}
	p := bidi.Paragraph{}
	p.SetString(caption)
	ordering, err := p.Order()
	rightAligned := err == nil && ordering.NumRuns() > 0 && isRTLRun(ordering)

	col := toNRGBA(color, 255)
	face := basicfont.Face7x13
	width := font.MeasureString(face, caption).Ceil()

	x := 4
	if rightAligned {
		x = canvas.Width() - width - 4
	}

	drawer := &font.Drawer{
		Dst:  canvas.img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(x, 14),
	}
	drawer.DrawString(caption)
}

func isRTLRun(o bidi.Ordering) bool {
	run := o.Run(0)
	return run.Direction() == bidi.RightToLeft
}
