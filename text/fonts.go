package text

import (
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontID is a logical font identifier.
type FontID int

// Fonts of the default table.
const (
	// FontRegular is the proportional UI font.
	FontRegular FontID = iota

	// FontMono is the monospaced font.
	FontMono
)

var fontNames = map[FontID]string{
	FontRegular: "Regular",
	FontMono:    "Mono",
}

// String returns the font name, or "Font(n)" for ids outside the defaults.
func (id FontID) String() string {
	if name, ok := fontNames[id]; ok {
		return name
	}
	return fmt.Sprintf("Font(%d)", int(id))
}

// FontSpec describes where a font comes from.
// Data wins over Path when both are set.
type FontSpec struct {
	Name string
	Path string
	Data []byte
}

// bytes returns the raw font file.
func (s FontSpec) bytes() ([]byte, error) {
	if len(s.Data) > 0 {
		return s.Data, nil
	}
	if s.Path == "" {
		return nil, ErrEmptyFontData
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	return data, nil
}

// FontTable maps logical font ids to their sources.
type FontTable map[FontID]FontSpec

// DefaultFontTable returns the compiled-in fonts: Go Regular as
// FontRegular and Go Mono as FontMono.
func DefaultFontTable() FontTable {
	return FontTable{
		FontRegular: {Name: "Go Regular", Data: goregular.TTF},
		FontMono:    {Name: "Go Mono", Data: gomono.TTF},
	}
}
