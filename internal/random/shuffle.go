// Package random provides the shuffling used for question selection and
// option ordering. Production code uses a non-seedable source so every
// session's ordering is independent; tests inject a seeded Source.
package random

import "math/rand/v2"

// Source yields uniform random integers. It is the seam that lets tests
// make shuffling deterministic.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be > 0.
	IntN(n int) int
}

// NewSource returns the default non-reproducible source.
func NewSource() Source {
	return defaultSource{}
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// Shuffle returns a uniformly random permutation of in, produced by a
// Fisher-Yates walk from the last index down. The input is never mutated.
func Shuffle[T any](src Source, in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	for i := len(out) - 1; i >= 1; i-- {
		j := src.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Sample returns n elements drawn without replacement from in, in random
// order. When n >= len(in) it returns a full shuffle.
func Sample[T any](src Source, in []T, n int) []T {
	out := Shuffle(src, in)
	if n < len(out) {
		out = out[:n]
	}
	return out
}
