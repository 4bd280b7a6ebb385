// SPDX-License-Identifier: MIT
// Package: nonsense/weighted
//
// errors.go - sentinel errors for the weighted package.
//
// Callers branch with errors.Is; context is attached with %w at the call site.

package weighted

import "errors"

// ErrEmptyTable indicates a table with no rows, or a Choose call on a nil or
// empty table.
var ErrEmptyTable = errors.New("weighted: empty table")

// ErrBadWeight indicates a row whose weight is zero or negative. The draw
// range starts at 1, so such weights would make the scan undefined.
var ErrBadWeight = errors.New("weighted: weight must be positive")
