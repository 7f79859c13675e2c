package captcha

import "image/color"

// NamedColor is a palette entry.
type NamedColor struct {
	Name  string
	Color color.RGBA
}

// Palette is the set of colours noise lines are drawn from.
type Palette []NamedColor

// DefaultPalette is a fixed selection of web colours. White and transparent
// are left out since they vanish on the background.
var DefaultPalette = Palette{
	{"Black", color.RGBA{0x00, 0x00, 0x00, 0xff}},
	{"Blue", color.RGBA{0x00, 0x00, 0xff, 0xff}},
	{"BlueViolet", color.RGBA{0x8a, 0x2b, 0xe2, 0xff}},
	{"Brown", color.RGBA{0xa5, 0x2a, 0x2a, 0xff}},
	{"CadetBlue", color.RGBA{0x5f, 0x9e, 0xa0, 0xff}},
	{"Chocolate", color.RGBA{0xd2, 0x69, 0x1e, 0xff}},
	{"Coral", color.RGBA{0xff, 0x7f, 0x50, 0xff}},
	{"Crimson", color.RGBA{0xdc, 0x14, 0x3c, 0xff}},
	{"DarkCyan", color.RGBA{0x00, 0x8b, 0x8b, 0xff}},
	{"DarkGoldenrod", color.RGBA{0xb8, 0x86, 0x0b, 0xff}},
	{"DarkGray", color.RGBA{0xa9, 0xa9, 0xa9, 0xff}},
	{"DarkGreen", color.RGBA{0x00, 0x64, 0x00, 0xff}},
	{"DarkMagenta", color.RGBA{0x8b, 0x00, 0x8b, 0xff}},
	{"DarkOliveGreen", color.RGBA{0x55, 0x6b, 0x2f, 0xff}},
	{"DarkOrange", color.RGBA{0xff, 0x8c, 0x00, 0xff}},
	{"DarkOrchid", color.RGBA{0x99, 0x32, 0xcc, 0xff}},
	{"DarkRed", color.RGBA{0x8b, 0x00, 0x00, 0xff}},
	{"DarkSlateBlue", color.RGBA{0x48, 0x3d, 0x8b, 0xff}},
	{"DeepPink", color.RGBA{0xff, 0x14, 0x93, 0xff}},
	{"DeepSkyBlue", color.RGBA{0x00, 0xbf, 0xff, 0xff}},
	{"DodgerBlue", color.RGBA{0x1e, 0x90, 0xff, 0xff}},
	{"Firebrick", color.RGBA{0xb2, 0x22, 0x22, 0xff}},
	{"ForestGreen", color.RGBA{0x22, 0x8b, 0x22, 0xff}},
	{"Gold", color.RGBA{0xff, 0xd7, 0x00, 0xff}},
	{"Gray", color.RGBA{0x80, 0x80, 0x80, 0xff}},
	{"IndianRed", color.RGBA{0xcd, 0x5c, 0x5c, 0xff}},
	{"Indigo", color.RGBA{0x4b, 0x00, 0x82, 0xff}},
	{"MediumVioletRed", color.RGBA{0xc7, 0x15, 0x85, 0xff}},
	{"MidnightBlue", color.RGBA{0x19, 0x19, 0x70, 0xff}},
	{"Navy", color.RGBA{0x00, 0x00, 0x80, 0xff}},
	{"Olive", color.RGBA{0x80, 0x80, 0x00, 0xff}},
	{"OrangeRed", color.RGBA{0xff, 0x45, 0x00, 0xff}},
	{"Purple", color.RGBA{0x80, 0x00, 0x80, 0xff}},
	{"Red", color.RGBA{0xff, 0x00, 0x00, 0xff}},
	{"RoyalBlue", color.RGBA{0x41, 0x69, 0xe1, 0xff}},
	{"SaddleBrown", color.RGBA{0x8b, 0x45, 0x13, 0xff}},
	{"SeaGreen", color.RGBA{0x2e, 0x8b, 0x57, 0xff}},
	{"SlateGray", color.RGBA{0x70, 0x80, 0x90, 0xff}},
	{"SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 0xff}},
	{"Teal", color.RGBA{0x00, 0x80, 0x80, 0xff}},
	{"Tomato", color.RGBA{0xff, 0x63, 0x47, 0xff}},
}

// Decoy colours: light enough to sit behind the answer.
var (
	Yellow      = color.RGBA{0xff, 0xff, 0x00, 0xff}
	LightGreen  = color.RGBA{0x90, 0xee, 0x90, 0xff}
	GreenYellow = color.RGBA{0xad, 0xff, 0x2f, 0xff}
)

// DefaultDecoyColors draws one decoy string per colour.
var DefaultDecoyColors = []color.Color{Yellow, LightGreen, GreenYellow}

// Pick returns a uniformly chosen colour.
func (p Palette) Pick(r Rand) color.RGBA {
	return p[r.IntN(len(p))].Color
}

// Lookup finds a colour by name.
func (p Palette) Lookup(name string) (color.RGBA, bool) {
	for _, c := range p {
		if c.Name == name {
			return c.Color, true
		}
	}
	return color.RGBA{}, false
}
