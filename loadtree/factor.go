// Explicit load factors and upward inheritance.

package loadtree

// SetLoadFactor assigns an explicit load factor to n.
//
// Factors exist only on combination trees: a node still tagged
// ContextTemplate rejects the mutation with ErrNotInCombinationContext,
// which keeps the shared template immutable no matter how it is reached.
func (n *Node) SetLoadFactor(f float64) error {
	if n == nil {
		return ErrNilNode
	}
	if n.ctx != ContextCombination {
		return ErrNotInCombinationContext
	}
	n.factor = f
	n.hasFactor = true

	return nil
}

// ExplicitFactor returns the factor set directly on n, if any.
func (n *Node) ExplicitFactor() (float64, bool) {
	return n.factor, n.hasFactor
}

// LoadFactor resolves n's effective factor: its own explicit factor when
// set, otherwise the nearest ancestor's. A node with no explicit factor
// anywhere on its parent chain has no factor (ok == false).
// Complexity: O(depth).
func (n *Node) LoadFactor() (float64, bool) {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.hasFactor {
			return cur.factor, true
		}
	}

	return 0, false
}
