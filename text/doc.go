// SPDX-License-Identifier: MIT

// Package text turns a stream of words into punctuated, capitalized prose.
//
// Compose runs two passes over a buffer it owns:
//
//  1. Word stream: draw words until the requested count is reached,
//     discarding any word equal to the one just accepted. The first word is
//     capitalized.
//  2. Segmentation: starting at index 0, draw a sentence length in
//     [MinSentenceWords, MaxSentenceWords], put a period on the last word of
//     that run and capitalize the word after it. Each run length is drawn
//     independently. Finally the last word gets a period unless it already
//     has one.
//
// The buffer is returned to the caller; Join renders it as one string.
package text
