// SPDX-License-Identifier: MIT
// Package: nonsense/text
//
// compose.go - word stream and sentence segmentation.

package text

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/cjnimes/Nonsense-Text/weighted"
)

const (
	methodNewComposer = "NewComposer"
	methodCompose     = "Compose"
)

// Sentence length bounds, inclusive.
const (
	MinSentenceWords = 5
	MaxSentenceWords = 15
)

// Period terminates every sentence.
const Period = "."

// WordSource produces one word per call. *word.Builder satisfies it.
type WordSource interface {
	Build() (string, error)
}

// Composer builds texts from a WordSource.
// It is not safe for concurrent use.
type Composer struct {
	words       WordSource
	src         weighted.Source
	maxAttempts int
}

// NewComposer returns a Composer drawing words from words and sentence
// lengths from src.
func NewComposer(words WordSource, src weighted.Source, opts ...Option) (*Composer, error) {
	if words == nil || src == nil {
		return nil, fmt.Errorf("%s: %w", methodNewComposer, ErrNeedSource)
	}
	cfg := newConfig(opts...)
	return &Composer{words: words, src: src, maxAttempts: cfg.maxAttempts}, nil
}

// Compose returns exactly wordCount words, capitalized and punctuated.
func (c *Composer) Compose(wordCount int) ([]string, error) {
	if wordCount < 1 {
		return nil, fmt.Errorf("%s: wordCount=%d: %w", methodCompose, wordCount, ErrBadWordCount)
	}

	words, err := c.stream(wordCount)
	if err != nil {
		return nil, err
	}
	words[0] = Capitalize(words[0])
	Segment(words, c.src)

	return words, nil
}

// stream draws wordCount words with no two consecutive ones equal.
func (c *Composer) stream(wordCount int) ([]string, error) {
	words := make([]string, 0, wordCount)
	dups := 0
	for len(words) < wordCount {
		w, err := c.words.Build()
		if err != nil {
			return nil, fmt.Errorf("%s: word %d: %w", methodCompose, len(words), err)
		}
		if n := len(words); n > 0 && words[n-1] == w {
			if dups++; dups >= c.maxAttempts {
				return nil, fmt.Errorf("%s: word %d repeats %q: %w", methodCompose, n, w, ErrNonTerminating)
			}
			continue
		}
		dups = 0
		words = append(words, w)
	}
	return words, nil
}

// Segment inserts sentence boundaries into words in place and guarantees the
// last word ends the text with a period.
//
// The scan visits indices 0..len(words) inclusive, so one extra length may be
// drawn after a boundary lands exactly on the last word.
func Segment(words []string, src weighted.Source) {
	n := len(words)
	if n == 0 {
		return
	}

	for i := 0; i <= n; {
		end := i + src.Int(MinSentenceWords, MaxSentenceWords) - 1
		if end < n {
			words[end] += Period
		}
		if end+1 < n {
			words[end+1] = Capitalize(words[end+1])
		}
		i = end + 1
	}

	if !strings.Contains(words[n-1], Period) {
		words[n-1] += Period
	}
}

// Capitalize upper-cases the first rune of s and leaves the rest unchanged.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	up := unicode.ToUpper(r)
	if up == r {
		return s
	}
	return string(up) + s[size:]
}

// Join renders words separated by single spaces.
func Join(words []string) string {
	return strings.Join(words, " ")
}
