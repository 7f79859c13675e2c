package captcha

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAnswerLengthWithinBounds(t *testing.T) {
	r := NewSeededRand(1)
	for lo := 1; lo <= 50; lo += 7 {
		for hi := lo; hi <= 50; hi += 5 {
			for i := 0; i < 20; i++ {
				answer, err := GenerateAnswer(AnswerConfig{Alphabet: DefaultAlphabet, MinLength: lo, MaxLength: hi, Rand: r})
				require.NoError(t, err)
				n := utf8.RuneCountInString(answer)
				assert.GreaterOrEqual(t, n, lo)
				assert.LessOrEqual(t, n, hi)
			}
		}
	}
}

func TestGenerateAnswerDefaults(t *testing.T) {
	for i := 0; i < 200; i++ {
		answer, err := GenerateAnswer(DefaultAnswerConfig())
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(answer), DefaultMinLength)
		require.LessOrEqual(t, len(answer), DefaultMaxLength)
		for _, c := range answer {
			require.True(t, strings.ContainsRune(DefaultAlphabet, c), "unexpected %q in %s", c, answer)
		}
	}
}

func TestGenerateAnswerReversedBounds(t *testing.T) {
	r := NewSeededRand(7)
	seen := map[int]bool{}
	for i := 0; i < 300; i++ {
		answer, err := GenerateAnswer(AnswerConfig{Alphabet: DefaultAlphabet, MinLength: 5, MaxLength: 3, Rand: r})
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(answer), 3)
		require.LessOrEqual(t, len(answer), 5)
		seen[len(answer)] = true
	}
	assert.Len(t, seen, 3)
}

func TestGenerateAnswerInvalid(t *testing.T) {
	cases := []struct {
		name string
		cfg  AnswerConfig
	}{
		{"zero bounds", AnswerConfig{Alphabet: DefaultAlphabet}},
		{"negative bounds", AnswerConfig{Alphabet: DefaultAlphabet, MinLength: -3, MaxLength: -1}},
		{"empty alphabet", AnswerConfig{MinLength: 4, MaxLength: 6}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answer, err := GenerateAnswer(tc.cfg)
			require.ErrorIs(t, err, ErrInvalidArgument)
			assert.Empty(t, answer)
		})
	}
}

func TestGenerateAnswerRepeatsWeighFrequency(t *testing.T) {
	answer, err := GenerateAnswer(AnswerConfig{Alphabet: "AAAB", MinLength: 4000, MaxLength: 4000, Rand: NewSeededRand(3)})
	require.NoError(t, err)
	a, b := strings.Count(answer, "A"), strings.Count(answer, "B")
	assert.Equal(t, 4000, a+b)
	assert.Greater(t, a, 2*b)
}

func TestGenerateAnswerMultibyteAlphabet(t *testing.T) {
	answer, err := GenerateAnswer(AnswerConfig{Alphabet: "αβγ", MinLength: 6, MaxLength: 6, Rand: NewSeededRand(5)})
	require.NoError(t, err)
	assert.Equal(t, 6, utf8.RuneCountInString(answer))
	for _, c := range answer {
		assert.Contains(t, "αβγ", string(c))
	}
}

func TestGenerateAnswerSeeded(t *testing.T) {
	cfg := DefaultAnswerConfig()
	cfg.Rand = NewSeededRand(42)
	first, err := GenerateAnswer(cfg)
	require.NoError(t, err)

	cfg.Rand = NewSeededRand(42)
	second, err := GenerateAnswer(cfg)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
