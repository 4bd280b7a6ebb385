// SPDX-License-Identifier: MIT
// Package: nonsense/corpus
//
// errors.go - sentinel errors and the LoadError wrapper.
//
// Every failure returned by Load or Languages is a *LoadError, so
// errors.Is(err, ErrDataLoad) holds for all of them; the wrapped cause says
// why.

package corpus

import (
	"errors"
	"fmt"
)

// ErrDataLoad matches any error returned by Load or Languages.
var ErrDataLoad = errors.New("corpus: cannot load language data")

// ErrBadLanguage indicates an empty or path-like language identifier.
var ErrBadLanguage = errors.New("corpus: invalid language identifier")

// ErrMissingTable indicates neither a CSV nor a YAML table exists.
var ErrMissingTable = errors.New("corpus: table not found")

// ErrMalformedRow indicates a row with a wrong column count, an unparsable
// weight or length, or an empty syllable.
var ErrMalformedRow = errors.New("corpus: malformed row")

// ErrUnreachableLength indicates no syllable is short enough for any length
// in the length table, so no word could ever be built.
var ErrUnreachableLength = errors.New("corpus: shortest syllable exceeds every word length")

// LoadError describes a failed table load.
type LoadError struct {
	Lang string // empty when listing languages
	File string // empty when the failure is not tied to one file
	Err  error
}

func (e *LoadError) Error() string {
	if e.Lang == "" && e.File != "" {
		return fmt.Sprintf("corpus: %s: %v", e.File, e.Err)
	}
	if e.File == "" {
		return fmt.Sprintf("corpus: language %q: %v", e.Lang, e.Err)
	}
	return fmt.Sprintf("corpus: language %q: %s: %v", e.Lang, e.File, e.Err)
}

// Unwrap exposes the cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is makes every LoadError match ErrDataLoad.
func (e *LoadError) Is(target error) bool { return target == ErrDataLoad }
