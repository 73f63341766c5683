// node.go — per-node views and pre-order traversal for xgx-report core.
//
// Traversal semantics:
//   - Nodes: lazy, finite, restartable pre-order depth-first sequence.
//     Root first, then each child's full subtree in child-list order.
//   - Every yielded Node view exposes that node's context and its OWN
//     attachment list; it never aggregates across nodes.
//
// Notes:
//   - Trees built through this package are acyclic by construction: a node can
//     only reference nodes that already existed when it was created, and nodes
//     never mutate afterwards. Traversal therefore needs no cycle guard and no
//     depth cap.
package xgxreport

import (
	"iter"
	"slices"
)

// Node is a read-only view of one tree node yielded during traversal.
// The zero Node is empty: Context returns nil and Attachments returns nil.
type Node struct {
	n *treeNode
}

// Context returns this node's context in erased form. Use As to recover a
// concrete type.
func (n Node) Context() error {
	if n.n == nil {
		return nil
	}
	return n.n.ctx
}

// Attachments returns a copy of this node's attachment list in insertion
// order (copy-on-read).
func (n Node) Attachments() []string {
	if n.n == nil || len(n.n.attachments) == 0 {
		return nil
	}
	return slices.Clone(n.n.attachments)
}

// Report rewraps this node as an erased Report rooted at the node. The result
// shares the subtree; it is the same O(1) erasure Erase performs on handles.
func (n Node) Report() AnyReport {
	return AnyReport{n: n.n}
}

// IsZero reports whether n is the empty view.
func (n Node) IsZero() bool { return n.n == nil }

// Nodes returns the pre-order depth-first sequence over every node of the
// tree: root first, then each child's subtree in child order, recursively.
// The sequence is lazy (stops as soon as the consumer breaks) and restartable
// (ranging again restarts from the root). The zero Report yields nothing.
func (r Report[E]) Nodes() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		if r.n == nil {
			return
		}
		preorder(r.n, yield)
	}
}

// preorder visits n, then each child subtree left to right. It returns false
// as soon as yield does, propagating early termination up the recursion.
func preorder(n *treeNode, yield func(Node) bool) bool {
	if !yield(Node{n: n}) {
		return false
	}
	for _, c := range n.children {
		if c == nil {
			continue
		}
		if !preorder(c, yield) {
			return false
		}
	}
	return true
}

// Len returns the total number of nodes in the tree (0 for the zero Report).
func (r Report[E]) Len() int {
	count := 0
	for range r.Nodes() {
		count++
	}
	return count
}
