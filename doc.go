// SPDX-License-Identifier: MIT

// Package nonsense generates placeholder prose that sounds like a real
// language without meaning anything.
//
// 🚀 What is nonsense?
//
//	A lorem-ipsum style generator driven by per-language frequency tables:
//		• syllables are drawn by weight and glued into words
//		• word lengths follow the language's own length distribution
//		• a word never repeats the letter its previous syllable ended with
//		• words are grouped into sentences of 5 to 15 words
//
// Under the hood, everything is organized under small subpackages:
//
//	weighted/ - frequency tables, weighted choice and the random Source seam
//	word/     - syllable composition with a bounded draw budget
//	text/     - word stream, sentence segmentation, capitalization
//	corpus/   - CSV/YAML table loading and the embedded languages (es, en)
//	render/   - HTML and plain-text presentation
//
// Quick example:
//
//	g, err := nonsense.New("es", nonsense.WithWordCount(20), nonsense.WithSeed(7))
//	if err != nil {
//	  log.Fatal(err)
//	}
//	s, err := g.Generate()
//
// A Generator owns its random source and is not safe for concurrent use.
// Tables are read-only after loading and may be shared between generators.
//
//	go install github.com/cjnimes/Nonsense-Text/cmd/nonsense@latest
package nonsense
