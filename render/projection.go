package render

// projection maps 2D fit-space coordinates into pixel space: it fits the
// data's bounding box (with a small margin) into the canvas and flips the
// Y axis, since fit-space grows upward but image space grows downward.
type projection struct {
	minX, minY   float64
	scale        float64
	width, height int
	margin       float64
}

func newProjection(points []float64, width, height int) projection {
	const margin = 16.0
	if len(points) < 2 {
		return projection{scale: 1, width: width, height: height, margin: margin}
	}

	minX, minY := points[0], points[1]
	maxX, maxY := points[0], points[1]
	for i := 0; i+1 < len(points); i += 2 {
		x, y := points[i], points[i+1]
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}

	spanX := maxX - minX
	spanY := maxY - minY
	usableW := float64(width) - 2*margin
	usableH := float64(height) - 2*margin

	scale := 1.0
	switch {
	case spanX == 0 && spanY == 0:
		scale = 1
	case spanX == 0:
		scale = usableH / spanY
	case spanY == 0:
		scale = usableW / spanX
	default:
		scale = usableW / spanX
		if s := usableH / spanY; s < scale {
			scale = s
		}
	}

	return projection{minX: minX, minY: minY, scale: scale, width: width, height: height, margin: margin}
}

func (p projection) toPixel(x, y float64) (float64, float64) {
	px := p.margin + (x-p.minX)*p.scale
	py := float64(p.height) - p.margin - (y-p.minY)*p.scale
	return px, py
}
