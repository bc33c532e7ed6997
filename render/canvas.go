package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// RGBA is a floating-point color in [0,1] per channel, matching the
// precision the line stroker composites in before it's quantized to the
// backing image.RGBA.
type RGBA struct {
	R, G, B, A float64
}

// Canvas is an image.RGBA-backed drawing surface: the render package's
// only concrete destination for path drawing.
type Canvas struct {
	img *image.RGBA
}

// NewCanvas allocates a canvas of the given pixel dimensions, filled with
// the supplied background color.
func NewCanvas(width, height int, background RGBA) *Canvas {
	c := &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
	bg := toNRGBA(background, 255)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c.img.Set(x, y, bg)
		}
	}
	return c
}

// Width returns the canvas's pixel width.
func (c *Canvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas's pixel height.
func (c *Canvas) Height() int { return c.img.Bounds().Dy() }

// BlendPixelAlpha composites color c over the existing pixel using the
// Porter-Duff "over" operator at the given coverage alpha (0-255). The
// anti-aliased line stroker calls this once per covered pixel.
func (cv *Canvas) BlendPixelAlpha(x, y int, c RGBA, alpha uint8) {
	b := cv.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	if alpha == 0 {
		return
	}
	src := toNRGBA(c, 255)
	dst := cv.img.RGBAAt(x, y)

	a := float64(alpha) / 255.0
	blend := func(s, d uint8) uint8 {
		return uint8(float64(s)*a + float64(d)*(1-a))
	}
	cv.img.SetRGBA(x, y, color.RGBA{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: 255,
	})
}

// SetPixel sets a pixel to an exact color, bypassing blending. Used for
// drawing the crisp sample-point diamonds, which shouldn't anti-alias
// against the background.
func (c *Canvas) SetPixel(x, y int, col RGBA) {
	b := c.img.Bounds()
	if x < b.Min.X || x >= b.Max.X || y < b.Min.Y || y >= b.Max.Y {
		return
	}
	c.img.Set(x, y, toNRGBA(col, 255))
}

// EncodePNG writes the canvas to w as a PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func toNRGBA(c RGBA, alpha uint8) color.RGBA {
	clamp := func(v float64) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return color.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: alpha}
}
