// doc.go — package documentation for xgx-report
//
// Package xgxreport builds, enriches, introspects, and externalizes
// structured failure reports. It is the companion of xgx-error in the xgx
// family: where xgx-error classifies single error values, xgx-report carries
// a whole failure TREE across a call stack and projects it into a stable
// record at the boundary. It is designed to be:
//   - Immutable end to end (enrichment returns new handles; old handles
//     never change underneath their holders)
//   - Interoperable with the stdlib (error, errors.Is/As, fmt.Formatter)
//   - Policy-free (no transport, rendering, or retry rules in core)
//
// # Building Reports
//
// A Report[E] is a one-pointer handle over an immutable tree node holding a
// context of type E, ordered attachments, and ordered children:
//
//	rep := xgxreport.New(parseErr).
//	           Attach("The application cannot proceed without a valid config.").
//	           WithChild(xgxreport.From(ioErr))
//
// Attach and WithChild are copy-on-write: they clone exactly one node and
// share everything else, so enrichment is O(1)-ish and every previously
// derived handle stays valid. Children are stored type-erased, which lets a
// single tree mix concrete context types; Erase converts a whole handle to
// the erased AnyReport form and ReportAs converts back, fallibly.
//
// There is no separate "shareable" form: a handle IS a value over immutable
// nodes, so copying the handle is the thread-safe sharing operation. Any
// number of goroutines may read and further enrich one tree concurrently
// with no locking; each derivation is private to its deriver.
//
// # Diagnostics
//
// Context types opt into the diagnostic capability set by implementing any
// subset of:
//
//	Code() Code
//	Severity() Severity
//	Help() string
//	Source() *Snippet
//	Labels() []Label
//
// Diagnose wraps a Report as a Diagnostic, a plain error whose Code, Help,
// Source, Labels, Severity and derived URL delegate STRICTLY to the root
// context. Children never leak into the capability set: the root states what
// the failure fundamentally is, the rest of the tree is supporting detail.
//
// # API Projection
//
// ToAPIError flattens a Diagnostic into the fixed APIError record: title,
// optional code/help, build provenance, a fresh 8-character correlation id,
// and the pre-order flattening of every node's attachments. It also emits
// exactly one structured record to an slog sink. APIError (the method) is
// the pure half for callers that must not touch a sink:
//
//	p := &xgxreport.Projector{GitHash: buildinfo.Commit, Log: sinkLog}
//	api := xgxreport.Diagnose(rep).ToAPIError(p)
//
// # Introspection
//
// Handlers branch on what failed, anywhere in the tree, with node-local
// typed downcasts:
//
//	xgxreport.Inspect(rep, func(pe *fs.PathError) bool {
//	    if errors.Is(pe, fs.ErrNotExist) {
//	        missingFile(pe.Path)
//	    }
//	    return true
//	})
//
// Inspect, HasContext, FirstContext and AllContexts all walk the same
// pre-order sequence as Nodes and never panic on foreign context types.
//
// # Formatting
//
// Reports and Diagnostics implement fmt.Formatter:
//   - `%v`, `%s` → concise, the root context's message
//   - `%+v`      → verbose multi-line tree (code, msg, notes, children)
//   - `%q`       → quoted concise form
//
// See examples in example_test.go for runnable demonstrations.
package xgxreport
