// report.go — immutable report trees for xgx-report core.
//
// Scope (tiny core):
//   - Report[E]: a one-pointer handle over an immutable tree node.
//   - Construction (New, From) and non-mutating enrichment (Attach, WithChild).
//   - Type erasure at the child-storage boundary (Tree, Erase, AnyReport).
//   - Keep policy out (no logging/HTTP/JSON/rendering here).
//
// Design:
//   - Copy-on-write everywhere: enrichment clones exactly one node and shares
//     the rest of the structure. Prior handles never observe a change.
//   - Children are stored erased (plain error contexts) so one tree can mix
//     concrete context types freely; recovery is explicit via downcast.go.
//   - A handle is a value. Copying a handle IS the cheap, thread-safe,
//     shareable form: nodes are never mutated after publication, so any number
//     of goroutines may read one tree with no locking.
//   - The zero Report is inert: every operation on it is a safe no-op.
package xgxreport

import (
	"errors"
	"fmt"
	"slices"
)

// errNilContext stands in for a nil context passed to New, so that reads on
// the resulting tree never dereference nil.
var errNilContext = errors.New("nil context")

// treeNode is the immutable shared storage behind Report handles.
// Treat every field as frozen once the node is published; enrichment builds a
// replacement node via withAttachment / withChild instead.
type treeNode struct {
	ctx         error
	attachments []string
	children    []*treeNode
}

// withAttachment returns a NEW node with msg appended to the attachment list.
// The context and the child slice are shared with the receiver; only the
// attachment slice is reallocated (fresh backing array, no spare capacity).
func (n *treeNode) withAttachment(msg string) *treeNode {
	out := &treeNode{ctx: n.ctx, children: n.children}
	out.attachments = make([]string, len(n.attachments)+1)
	copy(out.attachments, n.attachments)
	out.attachments[len(n.attachments)] = msg
	return out
}

// withChild returns a NEW node with child appended to the child list.
// Attachments and existing children are shared; subtrees are never re-copied.
func (n *treeNode) withChild(child *treeNode) *treeNode {
	out := &treeNode{ctx: n.ctx, attachments: n.attachments}
	out.children = make([]*treeNode, len(n.children)+1)
	copy(out.children, n.children)
	out.children[len(n.children)] = child
	return out
}

// -----------------------------------------------------------------------------
// Report handle
// -----------------------------------------------------------------------------

// Report is an immutable failure tree with a root context of type E.
//
// The root node owns exactly one context, an ordered list of free-text
// attachments, and an ordered list of child reports whose context types are
// independent of E. Enrichment (Attach, WithChild) returns a new handle; the
// receiver and every previously derived handle stay valid and unchanged.
type Report[E error] struct {
	n *treeNode
}

// AnyReport is a Report whose context type has been erased to plain error.
// It is the storage and transport form for trees of unknown concrete type;
// use ReportAs to recover a concrete root type.
type AnyReport = Report[error]

// Tree is satisfied by every Report regardless of its context type. It lets
// WithChild accept heterogeneous subtrees without explicit erasure at call
// sites. Only Report values implement it.
type Tree interface {
	treeRef() *treeNode
}

func (r Report[E]) treeRef() *treeNode { return r.n }

// New builds a single-node tree around ctx with no attachments and no
// children. It never fails. A nil interface context is replaced with a
// sentinel so later reads stay total; prefer passing real values.
func New[E error](ctx E) Report[E] {
	node := &treeNode{ctx: ctx}
	if any(ctx) == nil {
		node.ctx = errNilContext
	}
	return Report[E]{n: node}
}

// From lifts an arbitrary error into an erased single-node tree. This is the
// entry point for external failures (e.g., a *fs.PathError from the platform)
// that should remain downcastable during introspection.
// From(nil) returns the zero Report.
func From(err error) AnyReport {
	if err == nil {
		return AnyReport{}
	}
	return AnyReport{n: &treeNode{ctx: err}}
}

// Attach returns a new tree identical to r except that msg is appended to the
// ROOT node's attachment list. Prior attachments keep their positions and
// children are shared untouched. Attaching to the zero Report is a no-op.
func (r Report[E]) Attach(msg string) Report[E] {
	if r.n == nil {
		return r
	}
	return Report[E]{n: r.n.withAttachment(msg)}
}

// Attachf is Attach with fmt.Sprintf formatting.
func (r Report[E]) Attachf(format string, args ...any) Report[E] {
	if r.n == nil {
		return r
	}
	return Report[E]{n: r.n.withAttachment(fmt.Sprintf(format, args...))}
}

// WithChild returns a new tree identical to r except that child is appended
// to the child list. The child's context type is independent of E. A nil or
// zero child is ignored and r is returned unchanged.
func (r Report[E]) WithChild(child Tree) Report[E] {
	if r.n == nil || child == nil {
		return r
	}
	cn := child.treeRef()
	if cn == nil {
		return r
	}
	return Report[E]{n: r.n.withChild(cn)}
}

// Erase converts r into its type-erased form. The underlying node is shared,
// so this is O(1) and the result observes the same immutable tree.
func (r Report[E]) Erase() AnyReport {
	return AnyReport{n: r.n}
}

// Context returns the root node's context. It never descends into children.
// On the zero Report (or after an erasure mismatch) it returns the zero E.
func (r Report[E]) Context() E {
	var zero E
	if r.n == nil {
		return zero
	}
	if c, ok := r.n.ctx.(E); ok {
		return c
	}
	return zero
}

// Attachments returns a copy of the root node's attachment list in insertion
// order (copy-on-read; callers may retain or mutate the result freely).
func (r Report[E]) Attachments() []string {
	if r.n == nil || len(r.n.attachments) == 0 {
		return nil
	}
	return slices.Clone(r.n.attachments)
}

// IsZero reports whether r is the inert zero Report.
func (r Report[E]) IsZero() bool { return r.n == nil }

// -----------------------------------------------------------------------------
// Interface conformance guards (keep in the file that defines the types)
// -----------------------------------------------------------------------------
var _ Tree = Report[error]{}
