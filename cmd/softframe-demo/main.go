// Command softframe-demo runs a headless frame loop against the softframe
// renderer and reports how many frames were rasterized or skipped.
package main

import (
	"flag"
	"hash/crc32"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/softframe"
	"github.com/gogpu/softframe/text"
)

var branches = []string{
	"master",
	"develop",
	"feature/AV",
	"pppppppppp",
	"ffffffffff",
}

func main() {
	var (
		width   = flag.Int("width", 800, "framebuffer width in device pixels")
		height  = flag.Int("height", 600, "framebuffer height in device pixels")
		scale   = flag.Float64("scale", 1, "DPI scale factor")
		frames  = flag.Int("frames", 120, "number of frames to run")
		every   = flag.Int("every", 30, "resize the drawer every N frames (0 never)")
		exact   = flag.Bool("exact-gamma", false, "blend with the exact sRGB curve")
		verbose = flag.Bool("v", false, "log frame diff decisions")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	softframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	gamma := softframe.GammaApprox
	if *exact {
		gamma = softframe.GammaExact
	}

	s := float32(*scale)
	r, err := softframe.New(*width, *height, s, s, softframe.WithGamma(gamma))
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}
	defer r.Close()

	drawer := 400
	var fb *softframe.FrameBuffer
	for i := 0; i < *frames; i++ {
		if *every > 0 && i > 0 && i%*every == 0 {
			drawer = 400 + (i / *every % 2 * 40)
		}
		fb, err = drawFrame(r, drawer)
		if err != nil {
			log.Fatalf("Frame %d: %v", i, err)
		}
	}

	st := r.Stats()
	sum := uint32(0)
	if fb != nil {
		sum = crc32.ChecksumIEEE(fb.Bytes())
	}
	slog.Info("demo finished",
		"frames", *frames,
		"rasterized", st.FramesRasterized,
		"skipped", st.FramesSkipped,
		"commands", st.CommandsReplayed,
		"glyphsSkipped", st.GlyphsSkipped,
		"checksum", sum)
}

// drawFrame submits the branch panel UI. Hollow outlines are drawn after
// EndFrame since they bypass the command queue.
func drawFrame(r *softframe.Renderer, drawer int) (*softframe.FrameBuffer, error) {
	const ptSize = 18

	_, height, _, sy := r.Dimensions()
	ascent, descent, err := r.FontHeight(text.FontRegular, ptSize)
	if err != nil {
		return nil, err
	}

	r.BeginFrame()
	if err := r.Clear(softframe.Grey); err != nil {
		return nil, err
	}
	if err := r.DrawRect(softframe.Rect{W: drawer, H: int(float32(height) / sy)}, softframe.LightGrey); err != nil {
		return nil, err
	}

	outlines := make([]softframe.Rect, 0, len(branches)+1)
	outlines = append(outlines, softframe.Rect{X: 500, Y: 500, W: 100, H: 100})
	for i, name := range branches {
		width, err := r.TextWidth(text.FontRegular, name, ptSize)
		if err != nil {
			return nil, err
		}
		x, y := 10, 20+i*(ascent-descent)
		outlines = append(outlines, softframe.Rect{X: x, Y: y - ascent, W: width, H: ascent - descent})
		if err := r.DrawFont(text.FontRegular, name, x, y, ptSize, softframe.White); err != nil {
			return nil, err
		}
	}

	fb, err := r.EndFrame()
	if err != nil {
		return nil, err
	}
	for i, o := range outlines {
		border := 2
		if i == 0 {
			border = 4
		}
		if err := r.DrawHollowRect(o, softframe.White, border); err != nil {
			return nil, err
		}
	}
	return fb, nil
}
