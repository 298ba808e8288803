// Package numgen provides the randomness primitives shared by all question
// generators: an injectable random source, bounded sampling helpers, and the
// anti-collision multiple-choice distractor generator.
package numgen

import "math/rand/v2"

// Source is the randomness provider for question generation.
// Generators take a Source rather than reaching for package-level
// randomness so tests can inject a seeded one.
type Source interface {
	// IntN returns a non-negative random int in [0, n). Panics if n <= 0,
	// matching math/rand/v2 semantics; callers guarantee n >= 1.
	IntN(n int) int
}

type randSource struct {
	r *rand.Rand
}

func (s *randSource) IntN(n int) int { return s.r.IntN(n) }

// New returns a deterministic Source seeded with the given value.
func New(seed uint64) Source {
	return &randSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Default returns a Source backed by the shared math/rand/v2 generator.
func Default() Source {
	return defaultSource{}
}

type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// Between returns a random int in [lo, hi]. Swaps the bounds if inverted
// so the call is total for any pair.
func Between(src Source, lo, hi int) int {
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo + src.IntN(hi-lo+1)
}

// Pick returns a uniformly random element of vals. Panics on an empty
// slice; generator tables are never empty.
func Pick(src Source, vals []int) int {
	return vals[src.IntN(len(vals))]
}
