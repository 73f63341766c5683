// format.go — fmt.Formatter implementations for xgx-report core.
//
// Behavior:
//
//   %s, %v   → concise string (the root context's message).
//   %q       → quoted concise string.
//   %+v      → verbose, structured multi-line format:
//                code=<code> msg="<message>"
//                notes:
//                  - first attachment
//                  - second attachment
//                child 1/2:
//                  msg="child message"
//                  ...
//
// Rationale:
//   - Keep core free of rendering policy; only fmt formatting. Colored,
//     snippet-drawing output belongs to renderers consuming the capability
//     probes.
//   - Children recurse with increased indentation so nested trees stay
//     readable without a dedicated printer.
package xgxreport

import (
	"fmt"
	"io"
	"strings"
)

// formatConcise writes the one-line message.
func formatConcise(w io.Writer, msg string) {
	// ignore write errors in formatting paths
	_, _ = io.WriteString(w, msg)
}

// formatTreeVerbose writes a structured multi-line representation of the
// subtree rooted at n, indenting each nesting level by two spaces.
func formatTreeVerbose(w io.Writer, n *treeNode, indent string) {
	if n == nil {
		_, _ = io.WriteString(w, indent+`msg="empty report"`)
		return
	}

	// Header: code (when the context supplies one) + msg.
	_, _ = io.WriteString(w, indent)
	if c := CodeOf(n.ctx); c != "" {
		_, _ = fmt.Fprintf(w, "code=%s ", c)
	}
	msg := ""
	if n.ctx != nil {
		msg = n.ctx.Error()
	}
	_, _ = fmt.Fprintf(w, "msg=%q", msg)

	// Attachments (ordered, one per line)
	if len(n.attachments) > 0 {
		_, _ = io.WriteString(w, "\n"+indent+"notes:")
		for _, a := range n.attachments {
			_, _ = fmt.Fprintf(w, "\n%s  - %s", indent, a)
		}
	}

	// Children (recursive, verbose)
	for i, c := range n.children {
		if c == nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "\n%schild %d/%d:\n", indent, i+1, len(n.children))
		formatTreeVerbose(w, c, indent+"  ")
	}
}

// conciseOf returns the root message for a node, "" when degenerate.
func conciseOf(n *treeNode) string {
	if n == nil || n.ctx == nil {
		return "empty report"
	}
	return n.ctx.Error()
}

// -----------------------------------------------------------------------------
// Report formatting
// -----------------------------------------------------------------------------

func (r Report[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatTreeVerbose(s, r.n, "")
			return
		}
		formatConcise(s, conciseOf(r.n))
	case 's':
		formatConcise(s, conciseOf(r.n))
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", conciseOf(r.n))
	default:
		formatConcise(s, conciseOf(r.n))
	}
}

// -----------------------------------------------------------------------------
// Diagnostic formatting (adds help and docs trailers in verbose form)
// -----------------------------------------------------------------------------

func (d Diagnostic[E]) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			formatTreeVerbose(s, d.Report.n, "")
			var trailer strings.Builder
			if h := d.Help(); h != "" {
				fmt.Fprintf(&trailer, "\nhelp: %s", h)
			}
			if u := d.URL(); u != "" {
				fmt.Fprintf(&trailer, "\ndocs: %s", u)
			}
			_, _ = io.WriteString(s, trailer.String())
			return
		}
		formatConcise(s, d.Error())
	case 's':
		formatConcise(s, d.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", d.Error())
	default:
		formatConcise(s, d.Error())
	}
}
