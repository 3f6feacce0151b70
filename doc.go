// Package softframe is a differential software renderer for immediate-mode
// user interfaces.
//
// Each frame the application submits drawing commands between
// [Renderer.BeginFrame] and [Renderer.EndFrame]. The renderer keeps the
// previous frame's command list and compares the two positionally at the
// end of the frame: if nothing changed, rasterization is skipped and the
// framebuffer from the last frame is returned as is.
//
// # Quick Start
//
//	r, err := softframe.New(800, 600, 1, 1)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer r.Close()
//
//	for running {
//	    r.BeginFrame()
//	    r.Clear(softframe.Grey)
//	    r.DrawRect(softframe.Rect{X: 0, Y: 0, W: 400, H: 600}, softframe.LightGrey)
//	    r.DrawFont(text.FontRegular, "master", 10, 20, 18, softframe.White)
//	    fb, err := r.EndFrame()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    present(fb.Bytes()) // BGRA, fb.Stride() bytes per row
//	}
//
// # Coordinates
//
// All drawing calls take device-independent coordinates. They are scaled
// by the DPI scale factors passed to [New] or [Renderer.Resize] exactly once,
// when the command is rasterized. Point sizes are scaled the same way when
// fonts are shaped. [Renderer.TextWidth] and [Renderer.FontHeight] report
// device-independent values again.
//
// # Blending
//
// Rectangles overwrite the framebuffer. Glyph coverage is blended in linear
// light: the destination pixel is decoded from sRGB, the source color is
// premultiplied by coverage and composited with source-over, and the result
// is encoded back. [GammaApprox] (the default) uses a squared/square-root
// curve; [GammaExact] uses the piecewise sRGB transfer function.
//
// # Logging
//
// The package is silent by default. Use [SetLogger] or [WithLogger] to
// enable structured logging via log/slog.
//
// # Thread Safety
//
// A Renderer is not safe for concurrent use. It is meant to be driven by a
// single frame loop.
package softframe
