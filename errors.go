// SPDX-License-Identifier: MIT
// Package: nonsense
//
// errors.go - error surface of the public API.
//
// Errors from subpackages are returned wrapped; use errors.Is with the
// sentinels re-exported here or with the subpackage sentinels directly.

package nonsense

import (
	"github.com/cjnimes/Nonsense-Text/corpus"
	"github.com/cjnimes/Nonsense-Text/text"
	"github.com/cjnimes/Nonsense-Text/weighted"
	"github.com/cjnimes/Nonsense-Text/word"
)

var (
	// ErrDataLoad matches every failure to load language tables.
	ErrDataLoad = corpus.ErrDataLoad

	// ErrEmptyTable indicates a sampler was given a table without rows.
	ErrEmptyTable = weighted.ErrEmptyTable

	// ErrNonTerminating indicates a word could not be completed within the
	// configured draw budget.
	ErrNonTerminating = word.ErrNonTerminating

	// ErrRepeatedWord indicates the word stream kept repeating the previous
	// word within the configured draw budget.
	ErrRepeatedWord = text.ErrNonTerminating
)
