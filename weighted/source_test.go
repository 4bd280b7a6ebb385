package weighted_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cjnimes/Nonsense-Text/weighted"
)

// TestRandSource_Bounds verifies both draws stay inside closed intervals and
// that integer draws reach both ends.
func TestRandSource_Bounds(t *testing.T) {
	src := weighted.NewSource(5)

	seen := map[int]bool{}
	for i := 0; i < 2000; i++ {
		n := src.Int(5, 15)
		assert.GreaterOrEqual(t, n, 5)
		assert.LessOrEqual(t, n, 15)
		seen[n] = true

		f := src.Float(1, 10)
		assert.GreaterOrEqual(t, f, 1.0)
		assert.LessOrEqual(t, f, 10.0)
	}
	assert.Len(t, seen, 11, "every integer in [5,15] should appear")
}

// TestRandSource_Degenerate covers empty and inverted intervals.
func TestRandSource_Degenerate(t *testing.T) {
	src := weighted.NewSource(1)
	assert.Equal(t, 3, src.Int(3, 3))
	assert.Equal(t, 3, src.Int(3, 1))
	assert.Equal(t, 2.5, src.Float(2.5, 2.5))
}

// TestFromRand shares the stream of the wrapped generator.
func TestFromRand(t *testing.T) {
	a := weighted.FromRand(rand.New(rand.NewSource(8)))
	b := weighted.NewSource(8)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Int(0, 1000), b.Int(0, 1000))
	}

	assert.Panics(t, func() { weighted.FromRand(nil) })
}
