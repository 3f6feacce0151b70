package text

import (
	"bytes"
	"fmt"
	"log/slog"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"

	"github.com/gogpu/softframe/internal/cache"
)

// Handle is the cached state of one logical font: the parsed shaping face,
// the parsed outline font and the single active point size.
//
// A Handle is owned by its FontCache. Its accessors are only meaningful
// until the next call that switches the size of the same font.
type Handle struct {
	id   FontID
	name string

	face *font.Face
	sfnt *sfnt.Font
	buf  sfnt.Buffer

	ptSize float64
	ppemX  float64
	ppemY  float64
}

// ID returns the logical font id.
func (h *Handle) ID() FontID { return h.id }

// Name returns the font name from the table.
func (h *Handle) Name() string { return h.name }

// PtSize returns the active point size (0 before the first use).
func (h *Handle) PtSize() float64 { return h.ptSize }

// PPEM returns the active device size in pixels per em on each axis.
func (h *Handle) PPEM() (x, y float64) { return h.ppemX, h.ppemY }

// FontCache owns one Handle per FontID and memoizes shaped runs and glyph
// masks for them.
type FontCache struct {
	mu      sync.Mutex
	handles map[FontID]*Handle

	scaleX, scaleY float64

	shaper shaping.HarfbuzzShaper
	runs   *cache.Cache[runKey, []Glyph]
	masks  *cache.Cache[maskKey, *Mask]

	logger *slog.Logger
}

// NewFontCache loads every font of the table. Any unreadable or
// unparsable font fails the whole call with a *FontLoadError.
func NewFontCache(table FontTable, opts ...Option) (*FontCache, error) {
	cfg := defaultCacheConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &FontCache{
		handles: make(map[FontID]*Handle, len(table)),
		scaleX:  cfg.scaleX,
		scaleY:  cfg.scaleY,
		runs:    cache.New[runKey, []Glyph](cfg.shapeCacheSize),
		masks:   cache.New[maskKey, *Mask](cfg.glyphCacheSize),
		logger:  cfg.logger,
	}

	for id, spec := range table {
		h, err := openHandle(id, spec)
		if err != nil {
			return nil, err
		}
		c.handles[id] = h
		c.logger.Debug("font loaded", "font", id.String(), "name", h.name)
	}
	return c, nil
}

// openHandle parses the font twice: go-text for shaping and metrics,
// x/image/sfnt for outlines. Glyph ids are raw font indices in both.
func openHandle(id FontID, spec FontSpec) (*Handle, error) {
	name := spec.Name
	if name == "" {
		name = id.String()
	}
	loadErr := func(err error) error {
		return &FontLoadError{Font: id, Name: name, Err: err}
	}

	data, err := spec.bytes()
	if err != nil {
		return nil, loadErr(err)
	}
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, loadErr(fmt.Errorf("parse shaping face: %w", err))
	}
	outlines, err := sfnt.Parse(data)
	if err != nil {
		return nil, loadErr(fmt.Errorf("parse outlines: %w", err))
	}
	return &Handle{id: id, name: name, face: face, sfnt: outlines}, nil
}

// SetScale changes the DPI scale. Every handle forgets its active size so
// the next use re-applies the device size for the new scale.
func (c *FontCache) SetScale(sx, sy float64) error {
	if sx <= 0 || sy <= 0 {
		return ErrInvalidScale
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if sx == c.scaleX && sy == c.scaleY {
		return nil
	}
	c.scaleX, c.scaleY = sx, sy
	for _, h := range c.handles {
		h.ptSize, h.ppemX, h.ppemY = 0, 0, 0
	}
	c.runs.Clear()
	c.masks.Clear()
	return nil
}

// Scale returns the current DPI scale.
func (c *FontCache) Scale() (sx, sy float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scaleX, c.scaleY
}

// Has reports whether id is part of the font table.
func (c *FontCache) Has(id FontID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.handles[id]
	return ok
}

// LoadCachedFont returns the handle for id with ptSize applied. The same
// *Handle is returned for every size; a size change updates it in place.
func (c *FontCache) LoadCachedFont(id FontID, ptSize float64) (*Handle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(id, ptSize)
}

// load must be called with c.mu held.
func (c *FontCache) load(id FontID, ptSize float64) (*Handle, error) {
	h, ok := c.handles[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownFont, id)
	}
	if ptSize <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidSize, ptSize)
	}
	if h.ptSize != ptSize {
		h.ptSize = ptSize
		h.ppemX = ptSize * c.scaleX
		h.ppemY = ptSize * c.scaleY
		c.logger.Debug("font size switched", "font", id.String(), "pt", ptSize, "ppem", h.ppemX)
	}
	return h, nil
}

// CacheStats reports hit counters of the run and mask caches.
type CacheStats struct {
	Runs  cache.Stats
	Masks cache.Stats
}

// Stats returns statistics of the memoization caches.
func (c *FontCache) Stats() CacheStats {
	return CacheStats{Runs: c.runs.Stats(), Masks: c.masks.Stats()}
}
