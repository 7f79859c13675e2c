package captcha

import (
	"image/color"
)

type decoy struct {
	text  string
	x, y  int
	color color.Color
}

type segment struct {
	x1, y1, x2, y2 int
	color          color.Color
}

// noiseLayer holds everything drawn around the answer for a single render.
type noiseLayer struct {
	decoys     []decoy
	vertical   []segment
	horizontal []segment
}

// canvas is the resolved geometry of one render.
type canvas struct {
	width, height int
	fontSize      int
}

func (c canvas) strayX() int { return c.fontSize / 2 }
func (c canvas) strayY() int { return c.height / 4 }

func (c canvas) answerStrayX() int { return c.fontSize / 3 }
func (c canvas) answerStrayY() int { return c.height / 6 }

// newNoiseLayer draws decoys of answerLen runes and the line grid. All
// randomness comes from r, so a seeded r yields the same layer.
func newNoiseLayer(c canvas, answerLen int, cfg RenderConfig, r Rand) (*noiseLayer, error) {
	n := &noiseLayer{}
	strayX, strayY := c.strayX(), c.strayY()

	for _, col := range cfg.DecoyColors {
		text, err := GenerateAnswer(AnswerConfig{
			Alphabet:  cfg.Alphabet,
			MinLength: answerLen,
			MaxLength: answerLen,
			Rand:      r,
		})
		if err != nil {
			return nil, err
		}
		n.decoys = append(n.decoys, decoy{
			text:  text,
			x:     jitter(r, strayX),
			y:     jitter(r, strayY),
			color: col,
		})
	}

	for x := below(r, strayX); x < c.width; {
		n.vertical = append(n.vertical, segment{
			x1:    x + jitter(r, strayX),
			y1:    below(r, strayY),
			x2:    x + jitter(r, strayX),
			y2:    c.height - below(r, strayY),
			color: cfg.Palette.Pick(r),
		})
		x += max(c.width/c.fontSize+below(r, strayX), 1)
	}

	for y := below(r, strayY); y < c.height; {
		n.horizontal = append(n.horizontal, segment{
			x1:    below(r, strayX),
			y1:    y + jitter(r, strayY),
			x2:    c.width - below(r, strayX),
			y2:    y + jitter(r, strayY),
			color: cfg.Palette.Pick(r),
		})
		y += max(c.height/c.fontSize+below(r, strayY), 1)
	}

	return n, nil
}
