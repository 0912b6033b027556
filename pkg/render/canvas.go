// Package render rasterizes draw commands onto a pixel surface. All
// primitives clip internally, so callers never do their own bounds checks.
package render

import (
	"image"
	"image/color"
	"math"
)

// Surface is the minimal pixel sink a Canvas draws on. *ebiten.Image and
// *image.RGBA both satisfy it.
type Surface interface {
	Set(x, y int, c color.Color)
	Bounds() image.Rectangle
}

// --- Canvas ---
type Canvas struct {
	dst  Surface
	w, h int
}

func New(dst Surface) *Canvas {
	b := dst.Bounds()
	return &Canvas{dst: dst, w: b.Dx(), h: b.Dy()}
}

// SetPixel writes one pixel, silently dropping out-of-range coordinates.
func (c *Canvas) SetPixel(x, y int, clr color.Color) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.dst.Set(x, y, clr)
}

// FillCircle rasterizes a filled disc by horizontal spans, clipped to the
// surface. Adequate for the radii this toy draws.
func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	ir := int(math.Ceil(r))
	rr := r * r
	for dy := -ir; dy <= ir; dy++ {
		y := int(math.Round(cy)) + dy
		if y < 0 || y >= c.h {
			continue
		}
		span := math.Sqrt(math.Max(0, rr-float64(dy*dy)))
		xmin := int(math.Round(cx - span))
		xmax := int(math.Round(cx + span))
		if xmin < 0 {
			xmin = 0
		}
		if xmax >= c.w {
			xmax = c.w - 1
		}
		for x := xmin; x <= xmax; x++ {
			c.dst.Set(x, y, clr)
		}
	}
}
