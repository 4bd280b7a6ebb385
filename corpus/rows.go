// SPDX-License-Identifier: MIT
// Package: nonsense/corpus
//
// rows.go - raw row readers for CSV and YAML tables.
//
// Both readers return (value, weight) string/int pairs in file order; value
// conversion happens in load.go.

package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// rawRow is one table line before value conversion.
type rawRow struct {
	line   int
	value  string
	weight int
}

type yamlTable struct {
	Rows []yamlRow `yaml:"rows"`
}

type yamlRow struct {
	Value  string `yaml:"value"`
	Weight string `yaml:"weight"`
}

// readTable locates base.csv, falling back to base.yaml and base.yml.
// It returns the rows and the file name actually read.
func readTable(fsys fs.FS, dir, base string) ([]rawRow, string, error) {
	csvName := dir + "/" + base + ".csv"
	f, err := fsys.Open(csvName)
	if err == nil {
		defer f.Close()
		rows, err := readCSV(f)
		return rows, csvName, err
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, csvName, err
	}

	for _, ext := range []string{".yaml", ".yml"} {
		name := dir + "/" + base + ext
		data, err := fs.ReadFile(fsys, name)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, name, err
		}
		rows, err := readYAML(data)
		return rows, name, err
	}

	return nil, csvName, ErrMissingTable
}

// readCSV parses "value,weight" records. Blank lines and lines starting
// with '#' are skipped.
func readCSV(r io.Reader) ([]rawRow, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 2
	cr.TrimLeadingSpace = true

	var rows []rawRow
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("line %d: %v: %w", perr.Line, perr.Err, ErrMalformedRow)
			}
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		w, err := parseWeight(rec[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, rawRow{line: line, value: strings.TrimSpace(rec[0]), weight: w})
	}
}

// readYAML parses a document with a top-level "rows" sequence.
func readYAML(data []byte) ([]rawRow, error) {
	var doc yamlTable
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrMalformedRow)
	}

	rows := make([]rawRow, 0, len(doc.Rows))
	for i, r := range doc.Rows {
		w, err := parseWeight(r.Weight)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		rows = append(rows, rawRow{line: i + 1, value: strings.TrimSpace(r.Value), weight: w})
	}
	return rows, nil
}

func parseWeight(s string) (int, error) {
	w, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("weight %q: %w", s, ErrMalformedRow)
	}
	return w, nil
}
