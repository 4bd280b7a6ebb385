// SPDX-License-Identifier: MIT
// Package: nonsense/weighted
//
// source.go - the single random seam used by every generator component.

package weighted

import "math/rand"

// randMax is the largest value drawn for Float; dividing by it makes the upper
// bound of the interval reachable.
const randMax = 1<<31 - 1

// Source supplies uniform draws over closed intervals.
type Source interface {
	// Float returns a uniform real in [a, b].
	Float(a, b float64) float64
	// Int returns a uniform integer in [a, b].
	Int(a, b int) int
}

// RandSource adapts *rand.Rand to Source.
type RandSource struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded with seed. Equal seeds give equal streams.
func NewSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing generator. Panics on nil.
func FromRand(r *rand.Rand) *RandSource {
	if r == nil {
		panic("weighted: FromRand(nil)")
	}
	return &RandSource{rng: r}
}

// Float returns a + k/randMax*(b-a) for k uniform in [0, randMax].
func (s *RandSource) Float(a, b float64) float64 {
	if b <= a {
		return a
	}
	k := s.rng.Int63n(randMax + 1)
	return a + float64(k)/randMax*(b-a)
}

// Int returns a uniform integer in [a, b]; a if b < a.
func (s *RandSource) Int(a, b int) int {
	if b <= a {
		return a
	}
	return a + s.rng.Intn(b-a+1)
}
