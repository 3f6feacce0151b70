package softframe

import (
	"github.com/gogpu/softframe/internal/color"
	"github.com/gogpu/softframe/internal/image"
)

// FrameBuffer is the CPU-resident BGRA pixel buffer the renderer draws
// into. The presentation layer reads it; it must not be written to outside
// the renderer.
type FrameBuffer = image.FrameBuffer

// Pixel is one framebuffer pixel in B, G, R, A byte order.
type Pixel = color.Pixel
