// SPDX-License-Identifier: MIT
// Package: nonsense
//
// options.go - functional options for New.
//
// Contract:
//   • Options are applied in order; later ones override earlier ones.
//   • Option constructors panic on meaningless values. New and Generate
//     return errors instead.
//
// Defaults:
//   • fsys        = corpus.Default()   (embedded es, en)
//   • source      = time-seeded         (set WithSeed for reproducible output)
//   • wordCount   = 0                   (random in [MinRandomWords, MaxRandomWords])
//   • maxAttempts = word.DefaultMaxAttempts  (syllable draws per word)
//   • maxRepeats  = text.DefaultMaxAttempts  (consecutive duplicate words)

package nonsense

import (
	"io/fs"
	"math/rand"

	"github.com/cjnimes/Nonsense-Text/corpus"
	"github.com/cjnimes/Nonsense-Text/text"
	"github.com/cjnimes/Nonsense-Text/weighted"
	"github.com/cjnimes/Nonsense-Text/word"
)

// Bounds of the word count picked when none is configured.
const (
	MinRandomWords = 1
	MaxRandomWords = 50
)

type config struct {
	fsys        fs.FS
	source      weighted.Source
	wordCount   int
	maxAttempts int
	maxRepeats  int
}

func newConfig(opts ...Option) config {
	cfg := config{
		fsys:        corpus.Default(),
		maxAttempts: word.DefaultMaxAttempts,
		maxRepeats:  text.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a Generator.
type Option func(*config)

// WithWordCount fixes the number of words per text. Zero means "pick one at
// random when the Generator is built". Panics if n < 0.
func WithWordCount(n int) Option {
	if n < 0 {
		panic("nonsense: WithWordCount(n<0)")
	}
	return func(c *config) {
		c.wordCount = n
	}
}

// WithSeed makes every draw reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.source = weighted.NewSource(seed)
	}
}

// WithRand draws from an existing generator. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("nonsense: WithRand(nil)")
	}
	return func(c *config) {
		c.source = weighted.FromRand(r)
	}
}

// WithSource injects any Source, for example a scripted one in tests.
// Panics on nil.
func WithSource(src weighted.Source) Option {
	if src == nil {
		panic("nonsense: WithSource(nil)")
	}
	return func(c *config) {
		c.source = src
	}
}

// WithFS loads language tables from fsys instead of the embedded ones.
// Panics on nil.
func WithFS(fsys fs.FS) Option {
	if fsys == nil {
		panic("nonsense: WithFS(nil)")
	}
	return func(c *config) {
		c.fsys = fsys
	}
}

// WithMaxAttempts bounds the syllable draws spent on one word; past it
// Generate fails with ErrNonTerminating. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("nonsense: WithMaxAttempts(n<1)")
	}
	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithMaxRepeats bounds how many consecutive duplicate words one position
// may discard; past it Generate fails with ErrRepeatedWord. Panics if n < 1.
func WithMaxRepeats(n int) Option {
	if n < 1 {
		panic("nonsense: WithMaxRepeats(n<1)")
	}
	return func(c *config) {
		c.maxRepeats = n
	}
}
