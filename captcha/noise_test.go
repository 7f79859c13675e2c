package captcha

import (
	"image/color"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoiseLayerDecoysMatchAnswerLength(t *testing.T) {
	cfg := DefaultRenderConfig().withDefaults()
	c := canvas{width: 260, height: 48, fontSize: 40}
	r := NewSeededRand(11)

	for _, n := range []int{1, 4, 12, 30} {
		layer, err := newNoiseLayer(c, n, cfg, r)
		require.NoError(t, err)
		require.Len(t, layer.decoys, 3)
		for i, d := range layer.decoys {
			assert.Equal(t, n, utf8.RuneCountInString(d.text))
			assert.Equal(t, DefaultDecoyColors[i], d.color)
			assert.LessOrEqual(t, abs(d.x), c.strayX())
			assert.LessOrEqual(t, abs(d.y), c.strayY())
		}
	}
}

func TestNoiseLayerLines(t *testing.T) {
	cfg := DefaultRenderConfig().withDefaults()
	c := canvas{width: 400, height: 120, fontSize: 40}
	layer, err := newNoiseLayer(c, 6, cfg, NewSeededRand(2))
	require.NoError(t, err)

	require.NotEmpty(t, layer.vertical)
	require.NotEmpty(t, layer.horizontal)

	strayX, strayY := c.strayX(), c.strayY()
	for _, l := range layer.vertical {
		assert.GreaterOrEqual(t, l.y1, 0)
		assert.Less(t, l.y1, strayY)
		assert.Greater(t, l.y2, c.height-strayY)
		assert.LessOrEqual(t, l.y2, c.height)
		assert.LessOrEqual(t, abs(l.x1-l.x2), 2*strayX)
		assert.True(t, inPalette(cfg.Palette, l.color))
	}
	for _, l := range layer.horizontal {
		assert.GreaterOrEqual(t, l.x1, 0)
		assert.Less(t, l.x1, strayX)
		assert.Greater(t, l.x2, c.width-strayX)
		assert.LessOrEqual(t, abs(l.y1-l.y2), 2*strayY)
		assert.True(t, inPalette(cfg.Palette, l.color))
	}
}

func TestNoiseLayerTinyCanvasTerminates(t *testing.T) {
	cfg := DefaultRenderConfig().withDefaults()
	c := canvas{width: 2, height: 2, fontSize: 40}
	layer, err := newNoiseLayer(c, 1, cfg, NewSeededRand(8))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(layer.vertical), 2)
	assert.LessOrEqual(t, len(layer.horizontal), 2)
}

func TestNoiseLayerCustomDecoys(t *testing.T) {
	cfg := DefaultRenderConfig().withDefaults()
	cfg.DecoyColors = []color.Color{}
	layer, err := newNoiseLayer(canvas{width: 100, height: 48, fontSize: 40}, 5, cfg, NewSeededRand(1))
	require.NoError(t, err)
	assert.Empty(t, layer.decoys)
}

func TestJitterBounds(t *testing.T) {
	r := NewSeededRand(6)
	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := jitter(r, 3)
		require.GreaterOrEqual(t, v, -3)
		require.LessOrEqual(t, v, 3)
		seen[v] = true

		b := below(r, 3)
		require.GreaterOrEqual(t, b, 0)
		require.Less(t, b, 3)
	}
	assert.Len(t, seen, 7)
	assert.Zero(t, jitter(r, 0))
	assert.Zero(t, below(r, 0))
}

func inPalette(p Palette, c color.Color) bool {
	for _, nc := range p {
		if nc.Color == c {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
