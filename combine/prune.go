// Pruning of combination trees.

package combine

import "github.com/structcalc/loadcomb/loadtree"

// Prune removes from the combination tree every branch irrelevant to the
// combination and returns the number of subtrees detached.
//
// A node survives when it resolves a load factor itself (explicit or
// inherited from an ancestor) or at least one of its direct children
// does; otherwise the node and its entire subtree are removed. The root
// is never removed.
//
// The pass iterates a preorder snapshot taken before any deletion, and a
// node already detached along with a deleted ancestor is skipped, so the
// outcome does not depend on deletion order. Deleting a node never
// changes a survivor's predicate (resolution only walks upward and
// explicit factors are never removed), which makes a single pass a fixed
// point: Prune(Prune(t)) == Prune(t).
func Prune(root *loadtree.Node) int {
	if root == nil {
		return 0
	}
	removed := 0
	for _, n := range loadtree.Snapshot(root) {
		if n == root {
			continue
		}
		// No-op for nodes whose ancestor was already detached this pass.
		if n.Root() != root {
			continue
		}
		if relevant(n) {
			continue
		}
		n.Detach()
		removed++
	}

	return removed
}

// relevant is the survival predicate: own resolved factor, or a resolved
// factor on at least one direct child.
func relevant(n *loadtree.Node) bool {
	if _, ok := n.LoadFactor(); ok {
		return true
	}
	for _, c := range n.Children() {
		if _, ok := c.LoadFactor(); ok {
			return true
		}
	}

	return false
}
