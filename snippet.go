// snippet.go — source-text snippets and labeled spans for xgx-report core.
//
// Copyright (c) 2025.
// SPDX-License-Identifier: MIT
//
// Overview
//   A Snippet is a named, immutable blob of source text a failure points into
//   (a config file, a request body, a query). Labels mark byte ranges inside
//   it with short captions. Renderers consume both through the capability
//   probes (SourceOf / LabelsOf); the core stores and resolves, it does not
//   draw.
//
// Semantics:
//   - Spans address BYTES, not runes: offsets come from parsers, and parsers
//     count bytes. Locate converts to 1-based line/column for display.
//   - Snippets are immutable after construction (unexported fields, accessor
//     methods), matching the rest of the core's copy-on-write posture.
package xgxreport

import "strings"

// Span is a half-open byte range [Offset, Offset+Length) into a Snippet.
type Span struct {
	Offset int
	Length int
}

// End returns the exclusive end offset of the span.
func (s Span) End() int { return s.Offset + s.Length }

// Label pairs a Span with a short caption describing what the range shows.
type Label struct {
	Span    Span
	Caption string
}

// NewLabel builds a Label from a caption and a byte range.
func NewLabel(caption string, offset, length int) Label {
	return Label{Span: Span{Offset: offset, Length: length}, Caption: caption}
}

// Snippet is an immutable named source-text blob.
type Snippet struct {
	name string
	text string
}

// NewSnippet builds a Snippet. The name is a display handle (usually a file
// path); the text is kept verbatim, including newlines.
func NewSnippet(name, text string) *Snippet {
	return &Snippet{name: name, text: text}
}

// Name returns the snippet's display name. Nil-safe.
func (s *Snippet) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Text returns the snippet's full text. Nil-safe.
func (s *Snippet) Text() string {
	if s == nil {
		return ""
	}
	return s.text
}

// Locate resolves a byte offset to a 1-based (line, column) pair. Offsets
// past the end resolve to the position just after the final byte; negative
// offsets resolve to (1, 1). Columns count bytes from the line start.
func (s *Snippet) Locate(offset int) (line, col int) {
	if s == nil || offset <= 0 {
		return 1, 1
	}
	if offset > len(s.text) {
		offset = len(s.text)
	}
	prefix := s.text[:offset]
	line = 1 + strings.Count(prefix, "\n")
	if i := strings.LastIndexByte(prefix, '\n'); i >= 0 {
		col = offset - i
	} else {
		col = offset + 1
	}
	return line, col
}

// LineText returns the text of the given 1-based line without its trailing
// newline, or "" when the line does not exist.
func (s *Snippet) LineText(line int) string {
	if s == nil || line < 1 {
		return ""
	}
	rest := s.text
	for line > 1 {
		i := strings.IndexByte(rest, '\n')
		if i < 0 {
			return ""
		}
		rest = rest[i+1:]
		line--
	}
	if i := strings.IndexByte(rest, '\n'); i >= 0 {
		return rest[:i]
	}
	return rest
}
