package softframe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/softframe/internal/image"
	"github.com/gogpu/softframe/internal/raster"
	"github.com/gogpu/softframe/text"
)

// Stats counts what the renderer did across frames.
type Stats struct {
	// FramesRasterized is the number of frames whose commands were replayed.
	FramesRasterized int
	// FramesSkipped is the number of frames equal to their predecessor.
	FramesSkipped int
	// CommandsReplayed is the total number of commands rasterized.
	CommandsReplayed int
	// GlyphsSkipped is the number of glyphs that could not be rasterized.
	GlyphsSkipped int

	// RectsFilled, RectsStroked and MasksComposited count rasterizer
	// primitives, including hollow rects drawn outside the queue.
	RectsFilled     int
	RectsStroked    int
	MasksComposited int
}

// glyphSource shapes runs and rasterizes their glyphs. *text.FontCache
// implements it.
type glyphSource interface {
	Shape(id text.FontID, s string, ptSize float64) ([]text.Glyph, error)
	GlyphMask(id text.FontID, gid text.GlyphID, ptSize float64) (*text.Mask, error)
}

// Renderer owns the framebuffer, the font cache and the command queue.
// Create one with New; it is not safe for concurrent use.
type Renderer struct {
	fb     *FrameBuffer
	raster *raster.Rasterizer
	fonts  *text.FontCache
	glyphs glyphSource
	queue  *CommandQueue

	scale  Scale
	gamma  Gamma
	logger *slog.Logger

	initialized bool
	// dirty forces the next EndFrame to rasterize, e.g. after a resize.
	dirty bool
	stats Stats
	// retired holds primitive counts of rasterizers replaced by Resize.
	retired raster.Stats
}

// New allocates a width×height framebuffer and loads every font. scaleX
// and scaleY are the DPI scale factors applied to all drawing coordinates.
// A font that fails to load is returned as a *text.FontLoadError.
func New(width, height int, scaleX, scaleY float32, opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	scale := Scale{X: scaleX, Y: scaleY}
	if !scale.valid() {
		return nil, fmt.Errorf("%w: %gx%g", ErrInvalidScale, scaleX, scaleY)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.New(globalHandler{})
	}

	fb, err := image.NewFrameBuffer(width, height)
	if err != nil {
		return nil, fmt.Errorf("softframe: framebuffer %dx%d: %w", width, height, err)
	}

	textOpts := []text.Option{
		text.WithLogger(logger),
		text.WithScale(float64(scaleX), float64(scaleY)),
	}
	if o.glyphCacheSize > 0 {
		textOpts = append(textOpts, text.WithGlyphCacheSize(o.glyphCacheSize))
	}
	if o.shapeCacheSize > 0 {
		textOpts = append(textOpts, text.WithShapeCacheSize(o.shapeCacheSize))
	}
	fonts, err := text.NewFontCache(o.fonts, textOpts...)
	if err != nil {
		return nil, err
	}

	r := &Renderer{
		fb:          fb,
		raster:      raster.New(fb, o.gamma),
		fonts:       fonts,
		glyphs:      fonts,
		queue:       NewCommandQueue(o.queueCapacity),
		scale:       scale,
		gamma:       o.gamma,
		logger:      logger,
		initialized: true,
		dirty:       true,
	}
	logger.Info("softframe: renderer initialized",
		"width", width, "height", height,
		"scaleX", scaleX, "scaleY", scaleY,
		"fonts", len(o.fonts), "gamma", o.gamma.String())
	return r, nil
}

// Resize reallocates the framebuffer for new dimensions and scale. The
// font cache is kept; fonts re-apply their device size on next use. The
// next EndFrame always rasterizes.
//
// If the new framebuffer cannot be allocated the renderer becomes
// uninitialized and every later call returns ErrNotInitialized.
func (r *Renderer) Resize(width, height int, scaleX, scaleY float32) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	scale := Scale{X: scaleX, Y: scaleY}
	if !scale.valid() {
		return fmt.Errorf("%w: %gx%g", ErrInvalidScale, scaleX, scaleY)
	}

	// Drop the old buffer before allocating the new one.
	r.retireRaster()
	r.fb = nil
	fb, err := image.NewFrameBuffer(width, height)
	if err != nil {
		r.initialized = false
		return fmt.Errorf("softframe: resize to %dx%d: %w", width, height, err)
	}
	if err := r.fonts.SetScale(float64(scaleX), float64(scaleY)); err != nil {
		r.initialized = false
		return fmt.Errorf("softframe: resize: %w", err)
	}

	r.fb = fb
	r.raster = raster.New(fb, r.gamma)
	r.scale = scale
	r.dirty = true
	r.logger.Info("softframe: resized",
		"width", width, "height", height, "scaleX", scaleX, "scaleY", scaleY)
	return nil
}

// Close releases the framebuffer and the font cache. Calling Close again
// is a no-op.
func (r *Renderer) Close() error {
	if !r.initialized && r.fonts == nil {
		return nil
	}
	r.retireRaster()
	r.fb, r.fonts, r.glyphs = nil, nil, nil
	r.initialized = false
	return nil
}

// Dimensions returns the framebuffer size in device pixels and the scale.
func (r *Renderer) Dimensions() (width, height int, scaleX, scaleY float32) {
	if r.fb == nil {
		return 0, 0, r.scale.X, r.scale.Y
	}
	return r.fb.Width(), r.fb.Height(), r.scale.X, r.scale.Y
}

// Stats returns the frame and primitive counters.
func (r *Renderer) Stats() Stats {
	st := r.stats
	prims := r.retired
	if r.raster != nil {
		cur := r.raster.Stats()
		prims.Fills += cur.Fills
		prims.Strokes += cur.Strokes
		prims.Masks += cur.Masks
	}
	st.RectsFilled = prims.Fills
	st.RectsStroked = prims.Strokes
	st.MasksComposited = prims.Masks
	return st
}

// retireRaster folds the current rasterizer's counters into the totals
// and drops it.
func (r *Renderer) retireRaster() {
	if r.raster == nil {
		return
	}
	cur := r.raster.Stats()
	r.retired.Fills += cur.Fills
	r.retired.Strokes += cur.Strokes
	r.retired.Masks += cur.Masks
	r.raster = nil
}

// BeginFrame starts a new frame. The last frame's commands become the
// reference the new frame is compared against.
func (r *Renderer) BeginFrame() {
	r.queue.Begin()
}

// EndFrame rasterizes the frame if it differs from the previous one and
// returns the framebuffer. An unchanged frame returns the framebuffer
// untouched.
func (r *Renderer) EndFrame() (*FrameBuffer, error) {
	if !r.initialized {
		return nil, ErrNotInitialized
	}

	if !r.dirty && !r.queue.Changed() {
		r.stats.FramesSkipped++
		r.logger.Debug("softframe: frame unchanged, skipping", "commands", r.queue.Len())
		return r.fb, nil
	}

	cmds := r.queue.Current()
	r.logger.Debug("softframe: frame changed, rasterizing", "commands", len(cmds))
	for i := range cmds {
		if err := r.replay(&cmds[i]); err != nil {
			// The buffer holds a partial frame; repaint it next time.
			r.dirty = true
			return r.fb, fmt.Errorf("softframe: command %d (%s): %w", i, cmds[i].Type, err)
		}
	}
	r.dirty = false
	r.stats.FramesRasterized++
	r.stats.CommandsReplayed += len(cmds)
	return r.fb, nil
}

func (r *Renderer) replay(cmd *RenderCommand) error {
	switch cmd.Type {
	case CmdRect:
		r.raster.FillRect(r.scale.Rect(cmd.Rect), cmd.Color.f32())
		return nil
	case CmdFont:
		return r.drawGlyphRun(cmd)
	default:
		return fmt.Errorf("unknown command type %d", cmd.Type)
	}
}

// drawGlyphRun shapes the command's text and composites each glyph along
// the baseline. Glyphs that fail to rasterize are skipped but still
// advance the pen.
func (r *Renderer) drawGlyphRun(cmd *RenderCommand) error {
	ptSize := float64(cmd.PtSize)
	glyphs, err := r.glyphs.Shape(cmd.Font, cmd.Text, ptSize)
	if err != nil {
		return err
	}

	penX, penY := r.scale.Point(cmd.X, cmd.Y)
	c := r.gamma.ToLinear(cmd.Color.f32())

	for _, g := range glyphs {
		mask, err := r.glyphs.GlyphMask(cmd.Font, g.ID, ptSize)
		var gerr *text.GlyphError
		switch {
		case errors.As(err, &gerr):
			r.stats.GlyphsSkipped++
			r.logger.Warn("softframe: glyph skipped", "font", cmd.Font.String(), "glyph", g.ID, "err", gerr.Err)
		case err != nil:
			return err
		case !mask.Empty():
			// Font offsets grow upward; the framebuffer grows downward.
			x := penX + g.XOffset + float64(mask.Left)
			y := penY - g.YOffset - float64(mask.Top)
			r.raster.CompositeMask(mask.Alpha, x, y, c)
		}
		penX += g.XAdvance
	}
	return nil
}

func (r *Renderer) push(cmd RenderCommand) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	return r.queue.Push(cmd)
}

// Clear queues a rectangle covering the whole framebuffer.
func (r *Renderer) Clear(c Color) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	w, h := r.scale.Unscale(r.fb.Width(), r.fb.Height())
	return r.push(RenderCommand{Type: CmdRect, Rect: Rect{W: w, H: h}, Color: c})
}

// DrawRect queues a filled rectangle. Pixels under it are overwritten.
func (r *Renderer) DrawRect(rect Rect, c Color) error {
	return r.push(RenderCommand{Type: CmdRect, Rect: rect, Color: c})
}

// DrawFont queues text drawn with its baseline origin at (x, y).
// The font must be part of the renderer's font table.
func (r *Renderer) DrawFont(font text.FontID, s string, x, y, ptSize int, c Color) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	if !r.fonts.Has(font) {
		return fmt.Errorf("softframe: draw font: %w: %s", text.ErrUnknownFont, font)
	}
	if ptSize <= 0 {
		return fmt.Errorf("softframe: draw font: %w: %d", text.ErrInvalidSize, ptSize)
	}
	return r.push(RenderCommand{
		Type:   CmdFont,
		Color:  c,
		Font:   font,
		Text:   s,
		X:      x,
		Y:      y,
		PtSize: ptSize,
	})
}

// DrawHollowRect draws the border of rect immediately, bypassing the
// command queue. The border thickness is in device-independent units and
// at least one device pixel when positive.
func (r *Renderer) DrawHollowRect(rect Rect, c Color, border int) error {
	if !r.initialized {
		return ErrNotInitialized
	}
	r.raster.StrokeRect(r.scale.Rect(rect), c.f32(), r.scaleBorder(border))
	return nil
}

func (r *Renderer) scaleBorder(border int) int {
	if border <= 0 {
		return 0
	}
	return max(1, int(float32(border)*min(r.scale.X, r.scale.Y)))
}

// TextWidth returns the advance width of s in device-independent units,
// truncated.
func (r *Renderer) TextWidth(font text.FontID, s string, ptSize int) (int, error) {
	if !r.initialized {
		return 0, ErrNotInitialized
	}
	glyphs, err := r.glyphs.Shape(font, s, float64(ptSize))
	if err != nil {
		return 0, fmt.Errorf("softframe: text width: %w", err)
	}
	return int(text.Advance(glyphs) / float64(r.scale.X)), nil
}

// FontHeight returns the font-wide ascent and descent in
// device-independent units, truncated. Descent is negative.
func (r *Renderer) FontHeight(font text.FontID, ptSize int) (ascent, descent int, err error) {
	if !r.initialized {
		return 0, 0, ErrNotInitialized
	}
	a, d, err := r.fonts.VerticalMetrics(font, float64(ptSize))
	if err != nil {
		return 0, 0, fmt.Errorf("softframe: font height: %w", err)
	}
	return int(a), int(d), nil
}
