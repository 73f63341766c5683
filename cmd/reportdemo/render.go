// render.go — human-facing terminal rendering of diagnostics.
//
// The framework stays rendering-free; this file consumes the capability
// surface (code, help, source, labels, url) and draws the classic
// compiler-style block: header, snippet with an aligned underline, notes,
// help and docs lines. Underline alignment uses display width, not byte
// count, so wide runes in source text stay lined up.
package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	xgxreport "github.com/xgx-io/xgx-report"
)

var (
	headColor = color.New(color.FgRed, color.Bold)
	codeColor = color.New(color.FgCyan)
	spanColor = color.New(color.FgYellow, color.Bold)
	helpColor = color.New(color.FgGreen)
	dimColor  = color.New(color.Faint)
)

// renderDiagnostic writes the full human-facing block for one diagnostic.
func renderDiagnostic(w io.Writer, d xgxreport.Diagnostic[error]) {
	headColor.Fprint(w, "error")
	if c := d.Code(); c != "" {
		fmt.Fprint(w, "[")
		codeColor.Fprint(w, c.String())
		fmt.Fprint(w, "]")
	}
	fmt.Fprintf(w, ": %s\n", d.Error())

	renderSource(w, d.Source(), d.Labels())

	for n := range d.Report.Nodes() {
		for _, note := range n.Attachments() {
			fmt.Fprintf(w, "  note: %s\n", note)
		}
	}

	if h := d.Help(); h != "" {
		helpColor.Fprint(w, "  help: ")
		fmt.Fprintln(w, h)
	}
	if u := d.URL(); u != "" {
		dimColor.Fprint(w, "  docs: ")
		fmt.Fprintln(w, u)
	}
}

// renderSource draws each labeled span: a location line, the source line,
// and an underline with the label caption.
func renderSource(w io.Writer, src *xgxreport.Snippet, labels []xgxreport.Label) {
	if src == nil {
		return
	}
	for _, lb := range labels {
		line, col := src.Locate(lb.Span.Offset)
		text := src.LineText(line)

		fmt.Fprintf(w, "   --> %s:%d:%d\n", src.Name(), line, col)
		fmt.Fprintf(w, "    | %s\n", text)

		// Split the line at the span start; clamp the underline to what is
		// visible on this line.
		start := col - 1
		if start > len(text) {
			start = len(text)
		}
		prefix, rest := text[:start], text[start:]
		marked := rest
		if lb.Span.Length < len(rest) {
			marked = rest[:lb.Span.Length]
		}

		pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
		underline := strings.Repeat("^", max(1, runewidth.StringWidth(marked)))
		fmt.Fprintf(w, "    | %s%s %s\n", pad, spanColor.Sprint(underline), lb.Caption)
	}
}

// renderFailure renders any error: diagnostics get the full block, anything
// else a one-liner.
func renderFailure(w io.Writer, err error) {
	var d xgxreport.Diagnostic[error]
	if errors.As(err, &d) {
		renderDiagnostic(w, d)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
