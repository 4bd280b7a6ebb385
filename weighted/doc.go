// SPDX-License-Identifier: MIT

// Package weighted implements frequency tables and weighted random choice.
//
// A Table groups candidate values under positive integer weights. Buckets are
// kept in ascending weight order, and Choose draws a real number r in the
// closed interval [1, Total] and returns a value from the first bucket whose
// cumulative weight reaches r. When several values share the winning weight,
// one of them is picked uniformly.
//
//	t, err := weighted.NewTable([]weighted.Row[string]{
//	  {Weight: 3, Value: "ca"},
//	  {Weight: 1, Value: "sa"},
//	})
//	if err != nil {
//	  // handle ErrEmptyTable or ErrBadWeight
//	}
//	src := weighted.NewSource(42)
//	v, err := weighted.Choose(src, t)
//
// All randomness flows through the Source interface so that callers can
// inject a seeded or fully scripted generator.
//
// Tables are immutable after construction and safe to share between
// goroutines; Sources are not.
package weighted
