// SPDX-License-Identifier: MIT
// Package: nonsense/corpus
//
// load.go - language loading and validation.
//
// Contract:
//   - both tables must exist and hold at least one row;
//   - weights > 0, lengths > 0, syllables non-empty;
//   - the shortest syllable must fit at least one length, else no word
//     can ever be built;
//   - every failure, from Load or Languages, is a *LoadError.

package corpus

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/cjnimes/Nonsense-Text/weighted"
)

// Table base names inside a language directory.
const (
	SyllablesTable = "word-syllables"
	LengthsTable   = "word-lengths"
)

// Language holds the loaded tables of one language.
type Language struct {
	Name      string
	Syllables *weighted.Table[string]
	Lengths   *weighted.Table[int]
}

// Load reads the tables of lang from fsys.
func Load(fsys fs.FS, lang string) (*Language, error) {
	if !validLanguage(lang) {
		return nil, &LoadError{Lang: lang, Err: ErrBadLanguage}
	}

	syllables, err := loadSyllables(fsys, lang)
	if err != nil {
		return nil, err
	}
	lengths, err := loadLengths(fsys, lang)
	if err != nil {
		return nil, err
	}

	if shortest, longest := minSyllable(syllables), maxLength(lengths); shortest > longest {
		return nil, &LoadError{
			Lang: lang,
			Err:  fmt.Errorf("shortest syllable %d > longest length %d: %w", shortest, longest, ErrUnreachableLength),
		}
	}

	return &Language{Name: lang, Syllables: syllables, Lengths: lengths}, nil
}

// Languages lists the directories of fsys that hold a syllable table.
func Languages(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, &LoadError{File: ".", Err: err}
	}

	var out []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		for _, ext := range []string{".csv", ".yaml", ".yml"} {
			if _, err := fs.Stat(fsys, path.Join(e.Name(), SyllablesTable+ext)); err == nil {
				out = append(out, e.Name())
				break
			}
		}
	}
	return out, nil
}

func loadSyllables(fsys fs.FS, lang string) (*weighted.Table[string], error) {
	raw, file, err := readTable(fsys, lang, SyllablesTable)
	if err != nil {
		return nil, &LoadError{Lang: lang, File: file, Err: err}
	}

	rows := make([]weighted.Row[string], 0, len(raw))
	for _, r := range raw {
		if r.value == "" {
			return nil, &LoadError{Lang: lang, File: file, Err: fmt.Errorf("line %d: empty syllable: %w", r.line, ErrMalformedRow)}
		}
		rows = append(rows, weighted.Row[string]{Weight: r.weight, Value: r.value})
	}

	t, err := weighted.NewTable(rows)
	if err != nil {
		return nil, &LoadError{Lang: lang, File: file, Err: err}
	}
	return t, nil
}

func loadLengths(fsys fs.FS, lang string) (*weighted.Table[int], error) {
	raw, file, err := readTable(fsys, lang, LengthsTable)
	if err != nil {
		return nil, &LoadError{Lang: lang, File: file, Err: err}
	}

	rows := make([]weighted.Row[int], 0, len(raw))
	for _, r := range raw {
		n, err := strconv.Atoi(r.value)
		if err != nil || n < 1 {
			return nil, &LoadError{Lang: lang, File: file, Err: fmt.Errorf("line %d: length %q: %w", r.line, r.value, ErrMalformedRow)}
		}
		rows = append(rows, weighted.Row[int]{Weight: r.weight, Value: n})
	}

	t, err := weighted.NewTable(rows)
	if err != nil {
		return nil, &LoadError{Lang: lang, File: file, Err: err}
	}
	return t, nil
}

// validLanguage accepts a single path element such as "es" or "pt-BR".
func validLanguage(lang string) bool {
	return lang != "" && lang != "." && fs.ValidPath(lang) && !strings.Contains(lang, "/")
}

// minSyllable returns the rune length of the shortest syllable.
func minSyllable(t *weighted.Table[string]) int {
	shortest := -1
	t.Each(func(_ int, s string) {
		if n := utf8.RuneCountInString(s); shortest < 0 || n < shortest {
			shortest = n
		}
	})
	return shortest
}

func maxLength(t *weighted.Table[int]) int {
	longest := 0
	t.Each(func(_ int, n int) {
		if n > longest {
			longest = n
		}
	})
	return longest
}
