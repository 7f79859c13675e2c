// Package captcha generates random answers and renders them into noisy
// images for human verification.
package captcha

import (
	"strings"

	"github.com/pkg/errors"
)

// DefaultAlphabet leaves out glyphs that are easy to confuse with each other
// (0/O, 1/I, 2/Z, 5/S, 8/B, ...).
const DefaultAlphabet = "ACDEFGHJKLMNPQRTUVWXY34679"

const (
	DefaultMinLength = 10
	DefaultMaxLength = 12
)

// AnswerConfig controls GenerateAnswer.
type AnswerConfig struct {
	// Alphabet is sampled with replacement. A rune listed twice is drawn twice
	// as often.
	Alphabet string
	// MinLength and MaxLength bound the answer length, inclusive. They may be
	// given in either order.
	MinLength int
	MaxLength int
	// Rand defaults to NewRand() for each call.
	Rand Rand
}

// DefaultAnswerConfig returns the default alphabet with 10 to 12 characters.
func DefaultAnswerConfig() AnswerConfig {
	return AnswerConfig{
		Alphabet:  DefaultAlphabet,
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
	}
}

// GenerateAnswer returns a random answer drawn from cfg.Alphabet.
func GenerateAnswer(cfg AnswerConfig) (string, error) {
	alphabet := []rune(cfg.Alphabet)
	if len(alphabet) == 0 {
		return "", errors.Wrap(ErrInvalidArgument, "empty alphabet")
	}

	lo, hi := cfg.MinLength, cfg.MaxLength
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi <= 0 {
		return "", errors.Wrapf(ErrInvalidArgument, "answer length bounds [%d, %d]", lo, hi)
	}

	r := cfg.Rand
	if r == nil {
		r = NewRand()
	}

	n := lo + r.IntN(hi-lo+1)
	if n <= 0 {
		return "", errors.Wrapf(ErrInvalidArgument, "answer length %d", n)
	}

	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteRune(alphabet[r.IntN(len(alphabet))])
	}
	return sb.String(), nil
}
