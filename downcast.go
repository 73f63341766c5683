// downcast.go — fallible typed recovery from erased contexts.
//
// Scope:
//   - As: recover a concrete context type from one Node view.
//   - ReportAs: recover the concrete root type of an erased tree.
//
// Design:
//   - Both are direct type assertions on the node's own context, NOT chain
//     traversals: delegation and introspection are node-local, and a node's
//     context is exactly the value it was constructed with. Callers that want
//     chain-aware matching can use errors.As on Node.Context themselves.
//   - Mismatches return the zero value and false. Nothing here panics.
package xgxreport

// As attempts to recover a value of type T from the node's context.
// It returns (zero, false) when the node is empty or the context's dynamic
// type is not T; it never panics.
func As[T error](n Node) (T, bool) {
	var zero T
	if n.n == nil || n.n.ctx == nil {
		return zero, false
	}
	t, ok := n.n.ctx.(T)
	if !ok {
		return zero, false
	}
	return t, true
}

// ReportAs attempts to recover a concretely-typed tree from an erased one.
// On success the returned Report shares r's nodes (no copy). On failure it
// returns (zero Report, false); the caller still holds r unchanged and can
// retry with a different type or fall back to generic handling.
func ReportAs[T error](r AnyReport) (Report[T], bool) {
	if r.n == nil || r.n.ctx == nil {
		return Report[T]{}, false
	}
	if _, ok := r.n.ctx.(T); !ok {
		return Report[T]{}, false
	}
	return Report[T]{n: r.n}, true
}
