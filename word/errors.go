// SPDX-License-Identifier: MIT
// Package: nonsense/word
//
// errors.go - sentinel errors for the word package.

package word

import "errors"

// ErrNonTerminating indicates the builder exhausted its draw budget without
// completing a word. Usually the syllable table cannot reach the drawn length.
var ErrNonTerminating = errors.New("word: no valid word within attempt limit")

// ErrNeedSource indicates a Builder was created without a random source.
var ErrNeedSource = errors.New("word: random source is required")
