// SPDX-License-Identifier: MIT
// Package: nonsense/word
//
// options.go - functional options for Builder.
//
// Option constructors panic on meaningless values; Build never panics.

package word

// DefaultMaxAttempts bounds the syllable draws spent on a single word.
const DefaultMaxAttempts = 10000

type config struct {
	maxAttempts int
}

func newConfig(opts ...Option) config {
	cfg := config{maxAttempts: DefaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a Builder.
type Option func(*config)

// WithMaxAttempts sets the draw budget per word. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("word: WithMaxAttempts(n<1)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}
