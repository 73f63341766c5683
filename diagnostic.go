// diagnostic.go — the diagnostic capability set and its probes.
//
// Scope:
//   - Code and Severity value types.
//   - Capability probing over arbitrary errors: CodeOf, SeverityOf, HelpOf,
//     SourceOf, LabelsOf.
//
// Design:
//   - Capabilities are OPTIONAL methods on context types, probed with
//     errors.As against small anonymous interfaces. A context implements any
//     subset; absent capabilities read as zero values ("" / 0 / nil).
//   - Probes inspect the context value and its own Unwrap chain only. They
//     never descend into a report's children; "what this failure
//     fundamentally is" belongs to the root context alone.
//
// Capability method set (implement on context types as needed):
//
//	Code() Code          stable machine identifier, e.g. "config::invalid_format"
//	Severity() Severity  advisory weight of the failure
//	Help() string        remediation text for humans
//	Source() *Snippet    the source text the failure points into
//	Labels() []Label     labeled spans into that source
package xgxreport

import "errors"

// Code is a stable, machine-readable failure identifier. Codes are free-form;
// the convention in this universe is "area::detail" (e.g. "io::error").
// The empty Code means "no code supplied".
type Code string

func (c Code) String() string { return string(c) }

// Severity grades how a diagnostic should be treated by a consumer.
// The zero value means the context did not state a severity.
type Severity uint8

const (
	SeverityAdvice Severity = iota + 1
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityAdvice:
		return "advice"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unspecified"
	}
}

// -----------------------------------------------------------------------------
// Capability probes
// -----------------------------------------------------------------------------

// CodeOf returns the first Code discovered along err's chain, or "" if none.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var cv interface{ Code() Code }
	if errors.As(err, &cv) {
		return cv.Code()
	}
	return ""
}

// SeverityOf returns the first Severity discovered along err's chain, or the
// zero Severity if none is supplied.
func SeverityOf(err error) Severity {
	if err == nil {
		return 0
	}
	var sv interface{ Severity() Severity }
	if errors.As(err, &sv) {
		return sv.Severity()
	}
	return 0
}

// HelpOf returns the first remediation text discovered along err's chain, or
// "" if none.
func HelpOf(err error) string {
	if err == nil {
		return ""
	}
	var hv interface{ Help() string }
	if errors.As(err, &hv) {
		return hv.Help()
	}
	return ""
}

// SourceOf returns the first source snippet discovered along err's chain, or
// nil if none.
func SourceOf(err error) *Snippet {
	if err == nil {
		return nil
	}
	var sv interface{ Source() *Snippet }
	if errors.As(err, &sv) {
		return sv.Source()
	}
	return nil
}

// LabelsOf returns a copy of the first label set discovered along err's
// chain, or nil if none. The copy keeps callers from aliasing a context's
// internal slice.
func LabelsOf(err error) []Label {
	if err == nil {
		return nil
	}
	var lv interface{ Labels() []Label }
	if !errors.As(err, &lv) {
		return nil
	}
	ls := lv.Labels()
	if len(ls) == 0 {
		return nil
	}
	out := make([]Label, len(ls))
	copy(out, ls)
	return out
}
