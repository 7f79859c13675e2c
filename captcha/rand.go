package captcha

import (
	crand "crypto/rand"
	"math/rand/v2"
)

// Rand is the source of randomness used by GenerateAnswer and Render.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a ChaCha8 generator seeded from the operating system's
// entropy pool. Two calls never share a sequence.
func NewRand() *rand.Rand {
	var seed [32]byte
	_, _ = crand.Read(seed[:]) // never fails since Go 1.24
	return rand.New(rand.NewChaCha8(seed))
}

// NewSeededRand returns a deterministic generator, for tests and reproducible
// fixtures.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// jitter returns a value in [-n, n].
func jitter(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return r.IntN(2*n+1) - n
}

// below returns a value in [0, n), or 0 when n <= 0.
func below(r Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return r.IntN(n)
}
