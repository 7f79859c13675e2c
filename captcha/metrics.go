package captcha

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/image/font"
)

// MeasureWidth returns the advance width in pixels of text set in family at
// sizePx, rounded up.
func MeasureWidth(text string, family FontFamily, sizePx float64) (int, error) {
	if !validFontSize(sizePx) {
		return 0, errors.Wrapf(ErrInvalidArgument, "font size %v", sizePx)
	}
	f, err := loadFamily(family)
	if err != nil {
		return 0, err
	}
	face := newFace(f, sizePx)
	defer face.Close()
	return measure(face, text), nil
}

func measure(face font.Face, text string) int {
	return font.MeasureString(face, text).Ceil()
}

// validFontSize rejects sizes below one pixel and non-finite values.
func validFontSize(sizePx float64) bool {
	return !math.IsNaN(sizePx) && !math.IsInf(sizePx, 0) && sizePx >= 1
}
