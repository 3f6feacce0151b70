package text

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

// newTestCache creates a FontCache over the default table.
func newTestCache(t *testing.T, opts ...Option) *FontCache {
	t.Helper()
	fc, err := NewFontCache(DefaultFontTable(), opts...)
	if err != nil {
		t.Fatalf("NewFontCache: %v", err)
	}
	return fc
}

func TestNewFontCacheDefaultTable(t *testing.T) {
	fc := newTestCache(t)

	for _, id := range []FontID{FontRegular, FontMono} {
		h, err := fc.LoadCachedFont(id, 12)
		if err != nil {
			t.Fatalf("LoadCachedFont(%s): %v", id, err)
		}
		if h.ID() != id {
			t.Errorf("ID() = %s, want %s", h.ID(), id)
		}
		if h.Name() == "" {
			t.Errorf("%s: empty name", id)
		}
	}
}

func TestNewFontCacheLoadErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.ttf")

	tests := []struct {
		name   string
		spec   FontSpec
		target error
	}{
		{"no source", FontSpec{Name: "empty"}, ErrEmptyFontData},
		{"missing file", FontSpec{Name: "missing", Path: missing}, os.ErrNotExist},
		{"garbage data", FontSpec{Name: "garbage", Data: []byte("not a font")}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFontCache(FontTable{7: tt.spec})
			if err == nil {
				t.Fatal("expected error")
			}
			var loadErr *FontLoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("error %v is not a *FontLoadError", err)
			}
			if loadErr.Font != 7 || loadErr.Name != tt.spec.Name {
				t.Errorf("FontLoadError = %+v", loadErr)
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("errors.Is(%v, %v) = false", err, tt.target)
			}
		})
	}
}

func TestNewFontCacheFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regular.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0o600); err != nil {
		t.Fatal(err)
	}

	fc, err := NewFontCache(FontTable{FontRegular: {Path: path}})
	if err != nil {
		t.Fatalf("NewFontCache: %v", err)
	}
	h, err := fc.LoadCachedFont(FontRegular, 10)
	if err != nil {
		t.Fatal(err)
	}
	if h.Name() != "Regular" {
		t.Errorf("Name() = %q, want default from id", h.Name())
	}
}

func TestLoadCachedFontSwitchesSizeInPlace(t *testing.T) {
	fc := newTestCache(t, WithScale(2, 3))

	h1, err := fc.LoadCachedFont(FontRegular, 12)
	if err != nil {
		t.Fatal(err)
	}
	if x, y := h1.PPEM(); x != 24 || y != 36 {
		t.Errorf("PPEM() = %g, %g; want 24, 36", x, y)
	}

	h2, err := fc.LoadCachedFont(FontRegular, 20)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Error("size switch returned a different handle")
	}
	if h1.PtSize() != 20 {
		t.Errorf("PtSize() = %g, want 20", h1.PtSize())
	}
}

func TestLoadCachedFontErrors(t *testing.T) {
	fc := newTestCache(t)

	if _, err := fc.LoadCachedFont(FontID(42), 12); !errors.Is(err, ErrUnknownFont) {
		t.Errorf("unknown font: err = %v", err)
	}
	if _, err := fc.LoadCachedFont(FontRegular, 0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero size: err = %v", err)
	}
}

func TestSetScale(t *testing.T) {
	fc := newTestCache(t)

	h, _ := fc.LoadCachedFont(FontRegular, 12)
	if err := fc.SetScale(0, 1); !errors.Is(err, ErrInvalidScale) {
		t.Errorf("SetScale(0, 1) = %v", err)
	}
	if err := fc.SetScale(2, 2); err != nil {
		t.Fatal(err)
	}
	if h.PtSize() != 0 {
		t.Errorf("PtSize() after SetScale = %g, want 0", h.PtSize())
	}
	if sx, sy := fc.Scale(); sx != 2 || sy != 2 {
		t.Errorf("Scale() = %g, %g", sx, sy)
	}

	if _, err := fc.LoadCachedFont(FontRegular, 12); err != nil {
		t.Fatal(err)
	}
	if x, _ := h.PPEM(); x != 24 {
		t.Errorf("PPEM after rescale = %g, want 24", x)
	}
}

func TestVerticalMetrics(t *testing.T) {
	fc := newTestCache(t)

	a12, d12, err := fc.VerticalMetrics(FontRegular, 12)
	if err != nil {
		t.Fatal(err)
	}
	if a12 <= 0 || d12 >= 0 {
		t.Fatalf("VerticalMetrics(12) = %g, %g; want positive ascent, negative descent", a12, d12)
	}

	a24, d24, err := fc.VerticalMetrics(FontRegular, 24)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(a24-2*a12) > 1e-6 || math.Abs(d24-2*d12) > 1e-6 {
		t.Errorf("metrics do not scale linearly: 12pt %g/%g, 24pt %g/%g", a12, d12, a24, d24)
	}

	// Device-independent: the DPI scale must not change the result.
	scaled := newTestCache(t, WithScale(2, 2))
	a, d, err := scaled.VerticalMetrics(FontRegular, 12)
	if err != nil {
		t.Fatal(err)
	}
	if a != a12 || d != d12 {
		t.Errorf("scaled metrics = %g, %g; want %g, %g", a, d, a12, d12)
	}
}

func TestFontIDString(t *testing.T) {
	tests := []struct {
		id   FontID
		want string
	}{
		{FontRegular, "Regular"},
		{FontMono, "Mono"},
		{FontID(9), "Font(9)"},
	}
	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("FontID(%d).String() = %q, want %q", int(tt.id), got, tt.want)
		}
	}
}
