// Package image provides the CPU-resident framebuffer the renderer draws
// into and hands to the presentation layer.
package image

import (
	"errors"
	stdimage "image"
	stdcolor "image/color"
	"unsafe"

	"github.com/gogpu/softframe/internal/color"
)

// ErrInvalidDimensions is returned when width or height is non-positive.
var ErrInvalidDimensions = errors.New("image: invalid dimensions")

// BytesPerPixel is the size of one stored pixel: blue, green, red, alpha.
const BytesPerPixel = 4

// FrameBuffer is a width×height grid of BGRA pixels stored row by row
// without padding.
//
// Writes are only legal through the renderer; everything else should treat
// the buffer as read-only. FrameBuffer is not safe for concurrent use.
type FrameBuffer struct {
	pix    []color.Pixel
	width  int
	height int
}

// NewFrameBuffer allocates a zeroed framebuffer.
// Returns ErrInvalidDimensions if width or height is non-positive or the
// pixel count overflows.
func NewFrameBuffer(width, height int) (*FrameBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	n := width * height
	if n/height != width {
		return nil, ErrInvalidDimensions
	}
	return &FrameBuffer{
		pix:    make([]color.Pixel, n),
		width:  width,
		height: height,
	}, nil
}

// Width returns the width in device pixels.
func (b *FrameBuffer) Width() int {
	return b.width
}

// Height returns the height in device pixels.
func (b *FrameBuffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row.
func (b *FrameBuffer) Stride() int {
	return b.width * BytesPerPixel
}

// Pixels returns the pixel slice, row-major.
func (b *FrameBuffer) Pixels() []color.Pixel {
	return b.pix
}

// Bytes returns the pixel memory as raw BGRA bytes without copying.
// The slice aliases the framebuffer and is only valid until the next resize.
func (b *FrameBuffer) Bytes() []byte {
	if len(b.pix) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.pix[0])), len(b.pix)*BytesPerPixel) //nolint:gosec // Pixel is four uint8 fields, no padding
}

// Rect returns the buffer extent as a rectangle anchored at the origin.
func (b *FrameBuffer) Rect() stdimage.Rectangle {
	return stdimage.Rect(0, 0, b.width, b.height)
}

// Row returns the pixels x0 ≤ x < x1 of row y.
// The range must already be clipped; out-of-range arguments panic.
func (b *FrameBuffer) Row(y, x0, x1 int) []color.Pixel {
	if y < 0 || y >= b.height || x0 < 0 || x1 > b.width || x0 > x1 {
		panic("image: row span out of bounds")
	}
	start := y * b.width
	return b.pix[start+x0 : start+x1]
}

// PixelAt returns the pixel at (x, y).
// Returns the zero Pixel if coordinates are out of bounds.
func (b *FrameBuffer) PixelAt(x, y int) color.Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.Pixel{}
	}
	return b.pix[y*b.width+x]
}

// ToRGBA converts the buffer to a standard library RGBA image.
// The result is a copy.
func (b *FrameBuffer) ToRGBA() *stdimage.RGBA {
	img := stdimage.NewRGBA(b.Rect())
	for i, p := range b.pix {
		o := i * 4
		img.Pix[o+0] = p.R
		img.Pix[o+1] = p.G
		img.Pix[o+2] = p.B
		img.Pix[o+3] = p.A
	}
	return img
}

// At implements the image.Image interface.
func (b *FrameBuffer) At(x, y int) stdcolor.Color {
	p := b.PixelAt(x, y)
	return stdcolor.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// Bounds implements the image.Image interface.
func (b *FrameBuffer) Bounds() stdimage.Rectangle {
	return b.Rect()
}

// ColorModel implements the image.Image interface.
func (b *FrameBuffer) ColorModel() stdcolor.Model {
	return stdcolor.NRGBAModel
}
