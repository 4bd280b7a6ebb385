// SPDX-License-Identifier: MIT
// Package: nonsense/text

package text

// DefaultMaxAttempts bounds consecutive duplicate draws for one position.
const DefaultMaxAttempts = 1000

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

// Option customizes a Composer.
type Option func(*config)

// WithMaxAttempts sets how many draws a single position may spend on
// duplicates. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("text: WithMaxAttempts(n<1)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}
