// Promote is a standalone free function rather than a Node method: it is
// path surgery over a whole tree, not an intrinsic property of one node.

package loadtree

// Promote lifts n by levels steps toward the root: after promotion n's
// parent is the ancestor levels+1 above it, and n is appended to that
// ancestor's children. Promote(n, 0) is a no-op.
//
// levels must lie in [0, depth(n)): a node at depth d can be lifted at
// most d-1 levels, which makes it a direct child of the root. Anything
// else fails with ErrInvalidPathLevels.
func Promote(n *Node, levels int) error {
	if n == nil {
		return ErrNilNode
	}
	if levels < 0 || levels >= n.Depth() {
		return ErrInvalidPathLevels
	}
	if levels == 0 {
		return nil
	}
	// Ancestor levels+1 above n; existence is guaranteed by the bound check.
	target := n.parent
	for i := 0; i < levels; i++ {
		target = target.parent
	}
	n.Detach()

	return target.AddChild(n)
}
