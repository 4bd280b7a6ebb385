// SPDX-License-Identifier: MIT
// Package: nonsense/corpus
//
// embed.go - built-in language tables (es, en).

package corpus

import (
	"embed"
	"io/fs"
)

//go:embed data
var embedded embed.FS

// Default returns the built-in language tables.
func Default() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// "data" is a fixed, valid path
		panic(err)
	}
	return sub
}
