// SPDX-License-Identifier: MIT
// Package: nonsense/weighted
//
// choose.go - weighted random choice over a Table.
//
// Algorithm:
//  1. r = src.Float(1, Total), closed interval.
//  2. Find the first bucket i with cum[i] >= r (binary search keeps the
//     first-match tie-break of a linear ascending scan).
//  3. Pick one value of bucket i uniformly.
//
// Complexity: O(log B) time, O(1) space, B = number of buckets.

package weighted

import (
	"fmt"
	"sort"
)

const methodChoose = "Choose"

// Choose draws one value from t with probability proportional to its weight.
// Returns ErrEmptyTable for a nil or empty table.
func Choose[T any](src Source, t *Table[T]) (T, error) {
	var zero T
	if t.Len() == 0 {
		return zero, fmt.Errorf("%s: %w", methodChoose, ErrEmptyTable)
	}

	r := src.Float(1, float64(t.total))
	i := sort.Search(len(t.cum), func(i int) bool { return float64(t.cum[i]) >= r })
	if i == len(t.cum) {
		// only reachable through float rounding at the upper bound
		i = len(t.cum) - 1
	}

	values := t.buckets[i].Values
	if len(values) == 1 {
		return values[0], nil
	}
	return values[src.Int(0, len(values)-1)], nil
}
