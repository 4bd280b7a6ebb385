// SPDX-License-Identifier: MIT
// Package: nonsense/text
//
// errors.go - sentinel errors for the text package.

package text

import "errors"

// ErrBadWordCount indicates a word count below 1.
var ErrBadWordCount = errors.New("text: word count must be at least 1")

// ErrNeedSource indicates a Composer was created without a word source or a
// random source.
var ErrNeedSource = errors.New("text: word and random sources are required")

// ErrNonTerminating indicates the word source kept repeating the previous
// word past the attempt limit.
var ErrNonTerminating = errors.New("text: no distinct word within attempt limit")
