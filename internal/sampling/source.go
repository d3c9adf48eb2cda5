// Package sampling provides the seeded random source every generator draws
// from. All randomness in a run flows through a single Source so that a
// (configuration, seed) pair always produces the same dataset.
package sampling

import (
	"math"
	"math/rand/v2"

	"github.com/brianvoe/gofakeit/v7"
)

// Source wraps a PCG-backed rand.Rand and a gofakeit Faker sharing the same
// underlying stream. Draws are consumed sequentially, so determinism depends
// on call order: inserting or removing a draw changes everything after it.
type Source struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

// New returns a Source seeded with the given value. The same seed always
// yields the same sequence of draws.
func New(seed int64) *Source {
	src := rand.NewPCG(uint64(seed), uint64(seed))
	return &Source{
		rng:   rand.New(src),
		faker: gofakeit.NewFaker(src, false),
	}
}

// Faker exposes the shared gofakeit instance for address/contact fields.
func (s *Source) Faker() *gofakeit.Faker {
	return s.faker
}

// IntN returns a uniform int in [0, n).
func (s *Source) IntN(n int) int {
	return s.rng.IntN(n)
}

// Between returns a uniform int in [lo, hi], inclusive on both ends.
// When the window is empty (hi <= lo) it returns lo without drawing
// beyond the single required sample.
func (s *Source) Between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Poisson draws a Poisson-distributed count using Knuth's product method.
// Suitable for the small means used here; returns 0 for lambda <= 0.
func (s *Source) Poisson(lambda float64) int {
	if lambda <= 0 {
		return 0
	}
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= s.rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// Exponential returns an exponentially distributed value with the given mean.
func (s *Source) Exponential(mean float64) float64 {
	return s.rng.ExpFloat64() * mean
}

// Normal returns a normally distributed value with the given mean and
// standard deviation.
func (s *Source) Normal(mean, sd float64) float64 {
	return s.rng.NormFloat64()*sd + mean
}

// SampleIndexes draws k distinct indexes from [0, n) without replacement
// using a partial Fisher-Yates shuffle. k <= 0 yields an empty slice and
// k > n is clamped to n.
func (s *Source) SampleIndexes(n, k int) []int {
	if k <= 0 || n <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	arena := make([]int, n)
	for i := range arena {
		arena[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + s.rng.IntN(n-i)
		arena[i], arena[j] = arena[j], arena[i]
	}
	return arena[:k]
}

// Choice returns a uniformly chosen element of values.
func Choice[T any](s *Source, values []T) T {
	return values[s.rng.IntN(len(values))]
}

// Weighted returns an element of values chosen in proportion to weights.
// Weights need not sum to 1; exactly one uniform draw is consumed per call.
// The last element is returned if floating-point accumulation leaves the
// draw past every threshold.
func Weighted[T any](s *Source, values []T, weights []float64) T {
	var total float64
	for _, w := range weights {
		total += w
	}
	target := s.rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if target < cum {
			return values[i]
		}
	}
	return values[len(values)-1]
}
