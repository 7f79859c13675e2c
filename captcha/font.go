package captcha

import (
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontFamily names one of the embedded Go fonts.
type FontFamily string

const (
	SansSerif     FontFamily = "sans-serif"
	SansSerifBold FontFamily = "sans-serif-bold"
	Monospace     FontFamily = "monospace"
)

var builtinFonts = map[FontFamily][]byte{
	SansSerif:     goregular.TTF,
	SansSerifBold: gobold.TTF,
	Monospace:     gomono.TTF,
}

// parsed fonts are immutable once stored
var fontCache sync.Map

// Valid reports whether f is an embedded family.
func (f FontFamily) Valid() bool {
	_, ok := builtinFonts[f]
	return ok
}

func loadFamily(family FontFamily) (*truetype.Font, error) {
	if family == "" {
		family = SansSerif
	}
	if f, ok := fontCache.Load(family); ok {
		return f.(*truetype.Font), nil
	}
	ttf, ok := builtinFonts[family]
	if !ok {
		return nil, errors.Wrapf(ErrResourceUnavailable, "unknown font family %q", family)
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "parse font %q: %v", family, err)
	}
	actual, _ := fontCache.LoadOrStore(family, f)
	return actual.(*truetype.Font), nil
}

// LoadFontFile parses a TrueType font from disk.
func LoadFontFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "read font %s: %v", path, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "parse font %s: %v", path, err)
	}
	return f, nil
}

// resolveFont prefers an explicit font file over the family name.
func resolveFont(family FontFamily, file string) (*truetype.Font, error) {
	if file != "" {
		return LoadFontFile(file)
	}
	return loadFamily(family)
}

// newFace returns a face sized in pixels. Callers must Close it.
func newFace(f *truetype.Font, sizePx float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    sizePx,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
