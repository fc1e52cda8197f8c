// Deep cloning. Every clone is rebuilt node by node (names, additivity,
// factors, markers, and all parent/child links), so no node is ever
// aliased between the source and the copy.

package loadtree

// Clone returns a full value-semantics deep copy of the subtree rooted at
// n. The copy is detached (nil parent) and keeps n's tree context.
// Complexity: O(nodes in subtree).
func (n *Node) Clone() *Node {
	return n.cloneInto(n.ctx)
}

// CloneCombination deep-copies a template (or combination) tree into a new
// combination tree whose root is renamed to name and whose every node is
// retagged ContextCombination, unlocking explicit factor assignment.
func (n *Node) CloneCombination(name string) *Node {
	c := n.cloneInto(ContextCombination)
	c.name = name

	return c
}

func (n *Node) cloneInto(ctx Context) *Node {
	c := &Node{
		name:      n.name,
		additive:  n.additive,
		ctx:       ctx,
		factor:    n.factor,
		hasFactor: n.hasFactor,
		expanded:  n.expanded,
	}
	if len(n.children) > 0 {
		c.children = make([]*Node, len(n.children))
		for i, ch := range n.children {
			cc := ch.cloneInto(ctx)
			cc.parent = c
			c.children[i] = cc
		}
	}

	return c
}
