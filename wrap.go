// wrap.go — the boundary wrapper exposing a tree's root diagnostics.
//
// Purpose
//   - Present a Report as a single error value at a process boundary.
//   - Delegate the diagnostic capability set STRICTLY to the root context:
//     children and attachments describe what else is relevant, the root
//     states what the failure fundamentally is.
//   - Preserve perfect interop with the standard library: the wrapper is an
//     error, unwraps to the root context, and stays transparent for %v/%s.
//
// Background
//   - errors.Is/As traverse Unwrap() error chains, so probing a wrapped
//     Diagnostic finds the root context's capabilities exactly as probing the
//     context directly would. Higher-level consumers may therefore nest or
//     re-wrap a Diagnostic without losing identity.
package xgxreport

// Diagnostic pairs a Report with the diagnostic capability set of its root
// context. It carries no state of its own; construct one wherever a tree
// crosses a boundary and needs to act as a plain error again.
type Diagnostic[E error] struct {
	Report Report[E]
}

// Diagnose wraps a Report for boundary use.
func Diagnose[E error](r Report[E]) Diagnostic[E] {
	return Diagnostic[E]{Report: r}
}

// rootErr returns the root context or nil for the degenerate zero wrapper.
func (d Diagnostic[E]) rootErr() error {
	if d.Report.n == nil {
		return nil
	}
	return d.Report.n.ctx
}

// Error reproduces the root context's display text verbatim. The wrapper is
// transparent for human-readable output.
func (d Diagnostic[E]) Error() string {
	if ctx := d.rootErr(); ctx != nil {
		return ctx.Error()
	}
	return "empty report"
}

// Unwrap exposes the root context to errors.Is/As traversal.
func (d Diagnostic[E]) Unwrap() error { return d.rootErr() }

// Code returns the root context's machine code, or "" when it has none.
func (d Diagnostic[E]) Code() Code { return CodeOf(d.rootErr()) }

// Severity returns the root context's severity, or the zero Severity.
func (d Diagnostic[E]) Severity() Severity { return SeverityOf(d.rootErr()) }

// Help returns the root context's remediation text, or "".
func (d Diagnostic[E]) Help() string { return HelpOf(d.rootErr()) }

// Source returns the root context's source snippet, or nil.
func (d Diagnostic[E]) Source() *Snippet { return SourceOf(d.rootErr()) }

// Labels returns the root context's labeled spans, or nil.
func (d Diagnostic[E]) Labels() []Label { return LabelsOf(d.rootErr()) }

// URL derives the documentation link for the root context's code:
// "{DocsBase}/#{code}". It returns "" when no code is present, so the
// capability is absent exactly when Code is.
func (d Diagnostic[E]) URL() string {
	c := d.Code()
	if c == "" {
		return ""
	}
	return DocsBase + "/#" + string(c)
}

// -----------------------------------------------------------------------------
// Interface conformance guards
// -----------------------------------------------------------------------------
var _ error = Diagnostic[error]{}
