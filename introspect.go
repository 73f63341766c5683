// introspect.go — typed introspection over report trees.
//
// Scope:
//   - Zero-policy helpers that let handlers branch on WHAT failed anywhere in
//     a tree, not just print it.
//   - All helpers walk the pre-order node sequence and attempt node-local
//     downcasts; non-matching nodes and failed downcasts are skipped
//     silently. Nothing here fails or panics, whatever the tree shape.
//
// Out of scope (by design):
//   - Reactions. Counting, logging, or rerouting on a match belongs to the
//     caller; these helpers only find and hand over the typed contexts.
package xgxreport

// Inspect walks the tree in pre-order and calls visit for every node whose
// context has dynamic type T, in traversal order. Traversal stops early when
// visit returns false. A nil visit or zero tree is a no-op.
func Inspect[T error, E error](r Report[E], visit func(T) bool) {
	if visit == nil {
		return
	}
	for n := range r.Nodes() {
		if t, ok := As[T](n); ok {
			if !visit(t) {
				return
			}
		}
	}
}

// HasContext reports whether any node's context has dynamic type T.
func HasContext[T error, E error](r Report[E]) bool {
	found := false
	Inspect(r, func(T) bool {
		found = true
		return false
	})
	return found
}

// FirstContext returns the first context of dynamic type T in pre-order, or
// (zero, false) when the tree holds none.
func FirstContext[T error, E error](r Report[E]) (T, bool) {
	var out T
	found := false
	Inspect(r, func(t T) bool {
		out, found = t, true
		return false
	})
	return out, found
}

// AllContexts returns every context of dynamic type T in pre-order. It
// returns nil when the tree holds none.
func AllContexts[T error, E error](r Report[E]) []T {
	var out []T
	Inspect(r, func(t T) bool {
		out = append(out, t)
		return true
	})
	return out
}
