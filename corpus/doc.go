// SPDX-License-Identifier: MIT

// Package corpus loads per-language frequency tables.
//
// A language is a directory holding two tables:
//
//	<lang>/word-syllables.csv   syllable,weight
//	<lang>/word-lengths.csv     length,weight
//
// Each table may instead be written in YAML (word-syllables.yaml), which is
// consulted only when the CSV file is absent:
//
//	rows:
//	  - {value: ca, weight: 12}
//
// Rows sharing a weight are grouped and the result is sorted ascending by
// weight before it reaches the sampler (see package weighted).
//
// Default returns the tables embedded in the binary (es, en). Any fs.FS with
// the same layout, such as os.DirFS, can be used instead.
package corpus
