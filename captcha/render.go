package captcha

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"unicode/utf8"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	DefaultFontSize  = 40
	DefaultLineWidth = 1

	// auto-sized canvases leave this much room around the answer
	canvasScale = 1.2
)

// RenderConfig controls Render. Zero values fall back to the defaults of
// DefaultRenderConfig, except Width and Height: when either is 0 the canvas
// is sized from the answer measured in SansSerif.
type RenderConfig struct {
	Width  int
	Height int

	FontSize   float64 // pixels
	FontFamily FontFamily
	// FontFile, when set, replaces FontFamily with a TrueType font from disk.
	FontFile  string
	LineWidth float64

	// Alphabet is used for the decoy strings.
	Alphabet    string
	Palette     Palette
	DecoyColors []color.Color
	Hatch       Hatch

	// Rand defaults to NewRand() for each call.
	Rand   Rand
	Logger *zap.Logger
}

// DefaultRenderConfig returns an auto-sized, 40px sans-serif configuration.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		FontSize:    DefaultFontSize,
		FontFamily:  SansSerif,
		LineWidth:   DefaultLineWidth,
		Alphabet:    DefaultAlphabet,
		Palette:     DefaultPalette,
		DecoyColors: DefaultDecoyColors,
		Hatch:       DefaultHatch,
	}
}

func (cfg RenderConfig) withDefaults() RenderConfig {
	if cfg.FontSize == 0 {
		cfg.FontSize = DefaultFontSize
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = SansSerif
	}
	if cfg.LineWidth <= 0 {
		cfg.LineWidth = DefaultLineWidth
	}
	if cfg.Alphabet == "" {
		cfg.Alphabet = DefaultAlphabet
	}
	if len(cfg.Palette) == 0 {
		cfg.Palette = DefaultPalette
	}
	if cfg.DecoyColors == nil {
		cfg.DecoyColors = DefaultDecoyColors
	}
	if cfg.Hatch == (Hatch{}) {
		cfg.Hatch = DefaultHatch
	}
	if cfg.Rand == nil {
		cfg.Rand = NewRand()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return cfg
}

// Render draws answer on a white canvas behind decoy strings and a grid of
// noise lines. The answer is filled with cfg.Hatch instead of a flat colour.
//
// An empty answer, a negative canvas size or a negative font size fail with
// ErrInvalidArgument. Font failures return ErrResourceUnavailable. No image is
// returned on error.
func Render(answer string, cfg RenderConfig) (*image.RGBA, error) {
	cfg = cfg.withDefaults()

	answerLen := utf8.RuneCountInString(answer)
	if answerLen == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "empty answer")
	}
	if !validFontSize(cfg.FontSize) {
		return nil, errors.Wrapf(ErrInvalidArgument, "font size %v", cfg.FontSize)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "canvas %dx%d", cfg.Width, cfg.Height)
	}

	fnt, err := resolveFont(cfg.FontFamily, cfg.FontFile)
	if err != nil {
		return nil, err
	}
	face := newFace(fnt, cfg.FontSize)
	defer face.Close()

	textWidth := measure(face, answer)
	c := canvas{width: cfg.Width, height: cfg.Height, fontSize: int(cfg.FontSize)}
	if c.width == 0 || c.height == 0 {
		// sized from the generic sans-serif whatever face draws the answer
		sizingWidth, err := MeasureWidth(answer, SansSerif, cfg.FontSize)
		if err != nil {
			return nil, err
		}
		c.width = max(int(math.Round(float64(sizingWidth)*canvasScale)), 1)
		c.height = max(int(math.Round(cfg.FontSize*canvasScale)), 1)
	}

	noise, err := newNoiseLayer(c, answerLen, cfg, cfg.Rand)
	if err != nil {
		return nil, err
	}

	ascent := float64(face.Metrics().Ascent.Ceil())

	dc := gg.NewContext(c.width, c.height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(face)

	for _, d := range noise.decoys {
		dc.SetColor(d.color)
		dc.DrawString(d.text, float64(d.x), float64(d.y)+ascent)
	}

	dc.SetLineWidth(cfg.LineWidth)
	for _, lines := range [][]segment{noise.vertical, noise.horizontal} {
		for _, l := range lines {
			dc.SetColor(l.color)
			dc.DrawLine(float64(l.x1), float64(l.y1), float64(l.x2), float64(l.y2))
			dc.Stroke()
		}
	}

	x := (c.width-textWidth)/2 + jitter(cfg.Rand, c.answerStrayX())
	y := (c.height-c.fontSize)/2 + jitter(cfg.Rand, c.answerStrayY())

	// the answer's glyph coverage becomes the clip mask for a hatch fill
	mask := gg.NewContext(c.width, c.height)
	mask.SetFontFace(face)
	mask.SetColor(color.Black)
	mask.DrawString(answer, float64(x), float64(y)+ascent)
	if err := dc.SetMask(mask.AsMask()); err != nil {
		return nil, errors.Wrapf(ErrResourceUnavailable, "answer mask: %v", err)
	}
	dc.SetFillStyle(cfg.Hatch.Pattern())
	dc.DrawRectangle(0, 0, float64(c.width), float64(c.height))
	dc.Fill()
	dc.ResetClip()

	cfg.Logger.Debug("captcha rendered",
		zap.Int("width", c.width),
		zap.Int("height", c.height),
		zap.Int("answer_len", answerLen),
		zap.Int("decoys", len(noise.decoys)),
		zap.Int("vertical_lines", len(noise.vertical)),
		zap.Int("horizontal_lines", len(noise.horizontal)),
	)

	img, ok := dc.Image().(*image.RGBA)
	if !ok {
		return nil, errors.Wrap(ErrResourceUnavailable, "unexpected canvas type")
	}
	return img, nil
}

// Config groups answer generation and rendering.
type Config struct {
	Answer AnswerConfig
	Render RenderConfig
}

// DefaultConfig returns DefaultAnswerConfig and DefaultRenderConfig.
func DefaultConfig() Config {
	return Config{
		Answer: DefaultAnswerConfig(),
		Render: DefaultRenderConfig(),
	}
}

// Challenge is a generated answer together with its image. Persisting the
// answer is up to the caller.
type Challenge struct {
	Answer string
	Image  *image.RGBA
}

// NewChallenge generates an answer and renders it. When neither config
// carries a Rand, both steps share one fresh source.
func NewChallenge(cfg Config) (*Challenge, error) {
	if cfg.Answer.Rand == nil && cfg.Render.Rand == nil {
		r := NewRand()
		cfg.Answer.Rand, cfg.Render.Rand = r, r
	}
	answer, err := GenerateAnswer(cfg.Answer)
	if err != nil {
		return nil, err
	}
	img, err := Render(answer, cfg.Render)
	if err != nil {
		return nil, err
	}
	return &Challenge{Answer: answer, Image: img}, nil
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(err, "encode png")
	}
	return nil
}
