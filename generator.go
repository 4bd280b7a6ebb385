// SPDX-License-Identifier: MIT
// Package: nonsense
//
// generator.go - the public generation API.

package nonsense

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/cjnimes/Nonsense-Text/corpus"
	"github.com/cjnimes/Nonsense-Text/text"
	"github.com/cjnimes/Nonsense-Text/weighted"
	"github.com/cjnimes/Nonsense-Text/word"
)

const (
	methodNew          = "New"
	methodFromLanguage = "FromLanguage"
	methodGenerate     = "Generate"
)

// Generator produces nonsense texts for one language and word count.
type Generator struct {
	lang      *corpus.Language
	wordCount int
	composer  *text.Composer
}

// New loads the tables of language and returns a Generator.
// Load failures match ErrDataLoad.
func New(language string, opts ...Option) (*Generator, error) {
	cfg := newConfig(opts...)

	lang, err := corpus.Load(cfg.fsys, language)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodNew, err)
	}
	return fromConfig(lang, cfg)
}

// FromLanguage builds a Generator over already loaded tables. WithFS has no
// effect here.
func FromLanguage(lang *corpus.Language, opts ...Option) (*Generator, error) {
	if lang == nil {
		return nil, fmt.Errorf("%s: nil language: %w", methodFromLanguage, ErrEmptyTable)
	}
	return fromConfig(lang, newConfig(opts...))
}

func fromConfig(lang *corpus.Language, cfg config) (*Generator, error) {
	src := cfg.source
	if src == nil {
		src = weighted.NewSource(time.Now().UnixNano())
	}

	count := cfg.wordCount
	if count == 0 {
		count = src.Int(MinRandomWords, MaxRandomWords)
	}

	builder, err := word.NewBuilder(lang.Syllables, lang.Lengths, src, word.WithMaxAttempts(cfg.maxAttempts))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodNew, lang.Name, err)
	}
	composer, err := text.NewComposer(builder, src, text.WithMaxAttempts(cfg.maxRepeats))
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodNew, lang.Name, err)
	}

	return &Generator{lang: lang, wordCount: count, composer: composer}, nil
}

// Generate returns one text: words separated by single spaces, sentences
// ending in '.', the first letter of each sentence upper-cased.
func (g *Generator) Generate() (string, error) {
	words, err := g.GenerateWords()
	if err != nil {
		return "", err
	}
	return text.Join(words), nil
}

// GenerateWords returns the words of one text in order. Words that end a
// sentence carry the trailing period.
func (g *Generator) GenerateWords() ([]string, error) {
	words, err := g.composer.Compose(g.wordCount)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", methodGenerate, g.lang.Name, err)
	}
	return words, nil
}

// WordCount returns the number of words every text has.
func (g *Generator) WordCount() int { return g.wordCount }

// Language returns the language identifier.
func (g *Generator) Language() string { return g.lang.Name }

// Languages lists the languages available in fsys.
func Languages(fsys fs.FS) ([]string, error) {
	return corpus.Languages(fsys)
}
