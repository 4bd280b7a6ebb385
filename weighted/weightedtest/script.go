// SPDX-License-Identifier: MIT
// Package: nonsense/weighted/weightedtest
//
// script.go - deterministic Source replaying queued draws.

// Package weightedtest provides a scripted weighted.Source for tests.
package weightedtest

// Script replays fixed draws. Exhausted queues yield the lower bound of the
// requested interval; values outside [a, b] are clamped.
type Script struct {
	Floats []float64
	Ints   []int

	// FloatCalls and IntCalls count draws, including those past the script.
	FloatCalls int
	IntCalls   int
}

// Float pops the next scripted real.
func (s *Script) Float(a, b float64) float64 {
	s.FloatCalls++
	if len(s.Floats) == 0 {
		return a
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	if v < a {
		return a
	}
	if v > b {
		return b
	}
	return v
}

// Int pops the next scripted integer.
func (s *Script) Int(a, b int) int {
	s.IntCalls++
	if len(s.Ints) == 0 {
		return a
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	if v < a {
		return a
	}
	if v > b {
		return b
	}
	return v
}
