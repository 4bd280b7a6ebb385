// SPDX-License-Identifier: MIT
// Package: nonsense/weighted
//
// table.go - immutable frequency tables.
//
// Invariants:
//   - buckets are sorted by ascending, unique weight;
//   - every bucket holds at least one value;
//   - cum[i] is the sum of weights of buckets[0..i].

package weighted

import (
	"fmt"
	"sort"
)

const methodNewTable = "NewTable"

// Row is one (weight, value) record as supplied by a data source.
type Row[T any] struct {
	Weight int
	Value  T
}

// Bucket holds all values that share one weight.
type Bucket[T any] struct {
	Weight int
	Values []T
}

// Table is an ordered frequency table. The zero value is an empty table.
type Table[T any] struct {
	buckets []Bucket[T]
	cum     []int
	total   int
}

// NewTable groups rows by weight and sorts the resulting buckets ascending.
// Values keep their row order inside a bucket.
//
// Errors: ErrEmptyTable if rows is empty, ErrBadWeight if any weight <= 0.
func NewTable[T any](rows []Row[T]) (*Table[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", methodNewTable, ErrEmptyTable)
	}

	index := make(map[int]int, len(rows)) // weight -> bucket position
	buckets := make([]Bucket[T], 0, len(rows))
	for i, r := range rows {
		if r.Weight <= 0 {
			return nil, fmt.Errorf("%s: row %d weight=%d: %w", methodNewTable, i, r.Weight, ErrBadWeight)
		}
		pos, ok := index[r.Weight]
		if !ok {
			pos = len(buckets)
			index[r.Weight] = pos
			buckets = append(buckets, Bucket[T]{Weight: r.Weight})
		}
		buckets[pos].Values = append(buckets[pos].Values, r.Value)
	}

	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Weight < buckets[j].Weight })

	t := &Table[T]{buckets: buckets, cum: make([]int, len(buckets))}
	for i, b := range buckets {
		t.total += b.Weight
		t.cum[i] = t.total
	}

	return t, nil
}

// Len returns the number of buckets (distinct weights).
func (t *Table[T]) Len() int {
	if t == nil {
		return 0
	}
	return len(t.buckets)
}

// Total returns the sum of all bucket weights.
func (t *Table[T]) Total() int {
	if t == nil {
		return 0
	}
	return t.total
}

// Buckets returns a copy of the buckets in ascending weight order.
func (t *Table[T]) Buckets() []Bucket[T] {
	if t == nil {
		return nil
	}
	out := make([]Bucket[T], len(t.buckets))
	for i, b := range t.buckets {
		out[i] = Bucket[T]{Weight: b.Weight, Values: append([]T(nil), b.Values...)}
	}
	return out
}

// Each calls fn for every value in the table, in bucket order.
func (t *Table[T]) Each(fn func(weight int, v T)) {
	if t == nil {
		return
	}
	for _, b := range t.buckets {
		for _, v := range b.Values {
			fn(b.Weight, v)
		}
	}
}
