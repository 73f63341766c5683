// snippet_test.go — verification of source snippets, spans, and labels.
package xgxreport

import "testing"

func TestSpan_End(t *testing.T) {
	t.Parallel()

	s := Span{Offset: 10, Length: 9}
	if got := s.End(); got != 19 {
		t.Fatalf("End: want=19 got=%d", got)
	}
}

func TestNewLabel(t *testing.T) {
	t.Parallel()

	l := NewLabel("syntax error here", 10, 9)
	if l.Caption != "syntax error here" || l.Span.Offset != 10 || l.Span.Length != 9 {
		t.Fatalf("NewLabel: %+v", l)
	}
}

func TestSnippet_Accessors(t *testing.T) {
	t.Parallel()

	s := NewSnippet("config.json", `{ "key": !!invalid }`)
	if s.Name() != "config.json" {
		t.Fatalf("Name: %q", s.Name())
	}
	if s.Text() != `{ "key": !!invalid }` {
		t.Fatalf("Text: %q", s.Text())
	}

	var nilSnip *Snippet
	if nilSnip.Name() != "" || nilSnip.Text() != "" {
		t.Fatalf("nil snippet accessors should be empty")
	}
}

func TestSnippet_Locate(t *testing.T) {
	t.Parallel()

	s := NewSnippet("multi.txt", "first\nsecond\nthird")

	cases := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{2, 1, 3},	// inside "first"
		{6, 2, 1},	// start of "second"
		{8, 2, 3},	// inside "second"
		{13, 3, 1},	// start of "third"
		{-5, 1, 1},	// clamped low
		{9999, 3, 6},	// clamped to just past the final byte
	}
	for _, c := range cases {
		line, col := s.Locate(c.offset)
		if line != c.wantLine || col != c.wantCol {
			t.Fatalf("Locate(%d): want=(%d,%d) got=(%d,%d)", c.offset, c.wantLine, c.wantCol, line, col)
		}
	}

	var nilSnip *Snippet
	if line, col := nilSnip.Locate(3); line != 1 || col != 1 {
		t.Fatalf("nil Locate: got=(%d,%d)", line, col)
	}
}

func TestSnippet_LineText(t *testing.T) {
	t.Parallel()

	s := NewSnippet("multi.txt", "first\nsecond\nthird")

	if got := s.LineText(1); got != "first" {
		t.Fatalf("line 1: %q", got)
	}
	if got := s.LineText(2); got != "second" {
		t.Fatalf("line 2: %q", got)
	}
	if got := s.LineText(3); got != "third" {
		t.Fatalf("line 3: %q", got)
	}
	if got := s.LineText(4); got != "" {
		t.Fatalf("missing line should be empty: %q", got)
	}
	if got := s.LineText(0); got != "" {
		t.Fatalf("line 0 should be empty: %q", got)
	}
}

func TestSnippet_EmptyText(t *testing.T) {
	t.Parallel()

	s := NewSnippet("empty.txt", "")
	if line, col := s.Locate(0); line != 1 || col != 1 {
		t.Fatalf("empty Locate: (%d,%d)", line, col)
	}
	if got := s.LineText(1); got != "" {
		t.Fatalf("empty LineText: %q", got)
	}
}
