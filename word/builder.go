// SPDX-License-Identifier: MIT
// Package: nonsense/word
//
// builder.go - syllable composition.
//
// Contract:
//   - target is drawn once per word from the length table;
//   - the first syllable is only checked against the length bound;
//   - later syllables must also not repeat the boundary letter;
//   - the loop ends right after an accepted syllable brings len >= target;
//   - lengths and boundary letters are runes, not bytes;
//   - at most maxAttempts syllable draws per word.

package word

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cjnimes/Nonsense-Text/weighted"
)

const (
	methodNewBuilder = "NewBuilder"
	methodBuild      = "Build"
)

// Builder draws words from a syllable table and a length table.
// It is not safe for concurrent use because it shares its Source.
type Builder struct {
	syllables   *weighted.Table[string]
	lengths     *weighted.Table[int]
	src         weighted.Source
	maxAttempts int
}

// NewBuilder validates its inputs and returns a ready Builder.
//
// Errors: weighted.ErrEmptyTable for an empty table, ErrNeedSource for a nil
// source.
func NewBuilder(syllables *weighted.Table[string], lengths *weighted.Table[int], src weighted.Source, opts ...Option) (*Builder, error) {
	if syllables.Len() == 0 {
		return nil, fmt.Errorf("%s: syllables: %w", methodNewBuilder, weighted.ErrEmptyTable)
	}
	if lengths.Len() == 0 {
		return nil, fmt.Errorf("%s: lengths: %w", methodNewBuilder, weighted.ErrEmptyTable)
	}
	if src == nil {
		return nil, fmt.Errorf("%s: %w", methodNewBuilder, ErrNeedSource)
	}

	cfg := newConfig(opts...)
	return &Builder{
		syllables:   syllables,
		lengths:     lengths,
		src:         src,
		maxAttempts: cfg.maxAttempts,
	}, nil
}

// Build returns one word.
func (b *Builder) Build() (string, error) {
	parts, err := b.BuildSyllables()
	if err != nil {
		return "", err
	}
	return strings.Join(parts, ""), nil
}

// BuildSyllables returns the accepted syllables of one word, in order.
func (b *Builder) BuildSyllables() ([]string, error) {
	target, err := weighted.Choose(b.src, b.lengths)
	if err != nil {
		return nil, fmt.Errorf("%s: length: %w", methodBuild, err)
	}

	var (
		parts []string
		size  int
		last  rune
		syl   string
	)
	for attempt := 0; attempt < b.maxAttempts; attempt++ {
		if syl, err = weighted.Choose(b.src, b.syllables); err != nil {
			return nil, fmt.Errorf("%s: syllable: %w", methodBuild, err)
		}
		n := utf8.RuneCountInString(syl)
		if !accepts(len(parts) > 0, last, size+n, syl, target) {
			continue
		}

		parts = append(parts, syl)
		size += n
		last, _ = utf8.DecodeLastRuneInString(syl)
		if size >= target {
			return parts, nil
		}
	}

	return nil, fmt.Errorf("%s: target=%d after %d draws: %w", methodBuild, target, b.maxAttempts, ErrNonTerminating)
}

// accepts reports whether syl may extend a word to grown runes. When the word
// already has a syllable, last is its final rune.
func accepts(started bool, last rune, grown int, syl string, target int) bool {
	if syl == "" {
		return false
	}
	if grown > target {
		return false
	}
	if started {
		if first, _ := utf8.DecodeRuneInString(syl); first == last {
			return false
		}
	}
	return true
}
