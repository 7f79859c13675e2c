package captcha

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// HatchStyle selects the line layout inside one hatch tile.
type HatchStyle int

const (
	HatchDiagonal HatchStyle = iota
	HatchCross
	HatchDiagonalCross
)

// Hatch is a two-tone repeating fill for the answer glyphs.
type Hatch struct {
	Style      HatchStyle
	Foreground color.Color
	Background color.Color
	// Size is the tile edge in pixels, minimum 2.
	Size int
}

var DefaultHatch = Hatch{
	Style:      HatchDiagonalCross,
	Foreground: color.RGBA{0x1a, 0x1a, 0x40, 0xff},
	Background: color.RGBA{0x70, 0x70, 0x80, 0xff},
	Size:       4,
}

// Tile renders a single tile of the hatch.
func (h Hatch) Tile() *image.RGBA {
	size := h.Size
	if size < 2 {
		size = 2
	}
	fg, bg := h.Foreground, h.Background
	if fg == nil {
		fg = DefaultHatch.Foreground
	}
	if bg == nil {
		bg = DefaultHatch.Background
	}

	tile := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if h.on(x, y, size) {
				tile.Set(x, y, fg)
			} else {
				tile.Set(x, y, bg)
			}
		}
	}
	return tile
}

func (h Hatch) on(x, y, size int) bool {
	switch h.Style {
	case HatchDiagonal:
		return x == y
	case HatchCross:
		return x == 0 || y == 0
	default:
		return x == y || x+y == size-1
	}
}

// Pattern wraps the tile as a gg fill style.
func (h Hatch) Pattern() gg.Pattern {
	return gg.NewSurfacePattern(h.Tile(), gg.RepeatBoth)
}
