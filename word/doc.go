// SPDX-License-Identifier: MIT

// Package word assembles phonotactically filtered words from syllables.
//
// A Builder draws a target length from a length table, then draws syllables
// from a syllable table until the accumulated word reaches that length.
// A candidate syllable is rejected, and redrawn, when
//
//   - it would push the word past the target length, or
//   - it starts with the same letter the previous syllable ended with.
//
// The result is the shortest syllable-aligned word whose length is at least
// the target. Lengths are counted in runes and the boundary rule compares
// whole runes, so "má" never precedes "án".
//
// Some tables can never satisfy these rules (for example every syllable is
// longer than every target length). Instead of spinning forever the Builder
// gives up after a fixed number of draws per word and returns
// ErrNonTerminating.
package word
