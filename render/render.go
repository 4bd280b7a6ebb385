// SPDX-License-Identifier: MIT
// Package: nonsense/render
//
// render.go - HTML and plain-text presentation of generated text.

package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"
)

// sentenceSep separates sentences in generated text.
const sentenceSep = ". "

// ParagraphStyle is the inline style of the paragraph written by HTML.
const ParagraphStyle = "margin:50px 100px; font-size: 20px;"

var (
	paragraph = template.Must(template.New("paragraph").Parse(
		`<p style="` + ParagraphStyle + `">
{{range $i, $s := .}}{{if $i}}<br>{{end}}{{$s}}{{end}}
</p>
`))

	document = template.Must(template.Must(paragraph.Clone()).New("document").Parse(
		`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
{{template "paragraph" .Sentences}}</body>
</html>
`))
)

// Sentences splits text after every sentence period, keeping the period.
func Sentences(text string) []string {
	if text == "" {
		return nil
	}
	parts := strings.Split(text, sentenceSep)
	for i := 0; i < len(parts)-1; i++ {
		parts[i] += "."
	}
	return parts
}

// HTML writes text as one paragraph with a line break after each sentence.
func HTML(w io.Writer, text string) error {
	if err := paragraph.Execute(w, Sentences(text)); err != nil {
		return fmt.Errorf("render: html: %w", err)
	}
	return nil
}

// Document writes a complete HTML page holding the HTML paragraph.
func Document(w io.Writer, title, text string) error {
	data := struct {
		Title     string
		Sentences []string
	}{title, Sentences(text)}
	if err := document.ExecuteTemplate(w, "document", data); err != nil {
		return fmt.Errorf("render: document: %w", err)
	}
	return nil
}

// Plain writes text followed by a newline. With perLine every sentence gets
// its own line.
func Plain(w io.Writer, text string, perLine bool) error {
	var err error
	if perLine {
		for _, s := range Sentences(text) {
			if _, err = fmt.Fprintln(w, s); err != nil {
				break
			}
		}
	} else {
		_, err = fmt.Fprintln(w, text)
	}
	if err != nil {
		return fmt.Errorf("render: plain: %w", err)
	}
	return nil
}
