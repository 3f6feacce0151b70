// Package raster draws filled rectangles, rectangle outlines and glyph
// coverage masks into a framebuffer.
//
// Every primitive clips its target to the framebuffer first and only
// visits pixels inside the clipped rectangle, one row span at a time.
// Coordinates are device pixels; DPI scaling happens before this package.
package raster

import (
	stdimage "image"
	"math"

	"github.com/gogpu/softframe/internal/blend"
	"github.com/gogpu/softframe/internal/color"
	"github.com/gogpu/softframe/internal/image"
)

// Stats counts primitives drawn since the rasterizer was created.
type Stats struct {
	Fills   int
	Strokes int
	Masks   int
}

// Rasterizer draws into one framebuffer. It is not safe for concurrent use.
type Rasterizer struct {
	fb    *image.FrameBuffer
	gamma color.Gamma
	stats Stats
}

// New creates a rasterizer targeting fb. A nil framebuffer is a programming
// error and panics.
func New(fb *image.FrameBuffer, gamma color.Gamma) *Rasterizer {
	if fb == nil {
		panic("raster: nil framebuffer")
	}
	return &Rasterizer{fb: fb, gamma: gamma}
}

// Stats returns the primitive counters.
func (r *Rasterizer) Stats() Stats {
	return r.stats
}

// Clip intersects rect with the framebuffer extent. Empty and inverted
// rectangles clip to the empty rectangle.
func (r *Rasterizer) Clip(rect stdimage.Rectangle) stdimage.Rectangle {
	return rect.Intersect(r.fb.Rect())
}

// FillRect overwrites every pixel of the clipped rectangle with c.
// No blending is done; fills are opaque.
func (r *Rasterizer) FillRect(rect stdimage.Rectangle, c color.ColorF32) {
	r.stats.Fills++
	rect = r.Clip(rect)
	if rect.Empty() {
		return
	}

	p := color.ColorToPixel(c)
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := r.fb.Row(y, rect.Min.X, rect.Max.X)
		for i := range row {
			row[i] = p
		}
	}
}

// StrokeRect overwrites the pixels lying within border pixels of any edge
// of the clipped rectangle. Interior pixels are left untouched.
func (r *Rasterizer) StrokeRect(rect stdimage.Rectangle, c color.ColorF32, border int) {
	r.stats.Strokes++
	rect = r.Clip(rect)
	if rect.Empty() || border <= 0 {
		return
	}

	p := color.ColorToPixel(c)
	innerX0 := rect.Min.X + border
	innerX1 := rect.Max.X - border
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		row := r.fb.Row(y, rect.Min.X, rect.Max.X)
		if y < rect.Min.Y+border || y >= rect.Max.Y-border || innerX0 >= innerX1 {
			for i := range row {
				row[i] = p
			}
			continue
		}
		for x := rect.Min.X; x < innerX0; x++ {
			row[x-rect.Min.X] = p
		}
		for x := innerX1; x < rect.Max.X; x++ {
			row[x-rect.Min.X] = p
		}
	}
}

// CompositeMask blends c over the framebuffer using mask as per-pixel
// coverage. The mask's top-left pixel lands at (x, y) rounded to the
// nearest integer. c must already be in linear space.
func (r *Rasterizer) CompositeMask(mask *stdimage.Alpha, x, y float64, c color.ColorF32) {
	r.stats.Masks++
	if mask == nil {
		return
	}
	size := mask.Rect.Size()
	ox := int(math.Floor(x + 0.5))
	oy := int(math.Floor(y + 0.5))
	dst := r.Clip(stdimage.Rect(ox, oy, ox+size.X, oy+size.Y))
	if dst.Empty() {
		return
	}

	for py := dst.Min.Y; py < dst.Max.Y; py++ {
		v := py - oy + mask.Rect.Min.Y
		u0 := dst.Min.X - ox + mask.Rect.Min.X
		start := mask.PixOffset(u0, v)
		cov := mask.Pix[start : start+dst.Dx()]
		blend.CoverageSpan(r.fb.Row(py, dst.Min.X, dst.Max.X), cov, c, r.gamma)
	}
}
