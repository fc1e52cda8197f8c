// Structural surgery: attach, detach, slot-preserving replacement.
// All operations are atomic detach-then-attach sequences validated
// against cycles and double ownership before any link is touched.

package loadtree

// isAncestorOf reports whether n appears on the parent chain of other,
// or n == other. Complexity: O(depth(other)).
func (n *Node) isAncestorOf(other *Node) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == n {
			return true
		}
	}

	return false
}

// childIndex returns the slot of c under n, or -1.
func (n *Node) childIndex(c *Node) int {
	for i, ch := range n.children {
		if ch == c {
			return i
		}
	}

	return -1
}

// adoptContext retags c's whole subtree with ctx.
func adoptContext(c *Node, ctx Context) {
	c.ctx = ctx
	for _, ch := range c.children {
		adoptContext(ch, ctx)
	}
}

// AddChild appends c as the last child of n.
//
// c must be detached (single-owner invariant) and must not be an ancestor
// of n (acyclicity). On success c's subtree adopts n's tree context.
func (n *Node) AddChild(c *Node) error {
	if n == nil || c == nil {
		return ErrNilNode
	}
	if c.parent != nil {
		return ErrAlreadyAttached
	}
	if c.isAncestorOf(n) {
		return ErrCycleDetected
	}
	c.parent = n
	n.children = append(n.children, c)
	adoptContext(c, n.ctx)

	return nil
}

// insertChildAt places a detached c at slot i of n's child list.
// Callers have already validated ownership and acyclicity.
func (n *Node) insertChildAt(i int, c *Node) {
	c.parent = n
	n.children = append(n.children, nil)
	copy(n.children[i+1:], n.children[i:])
	n.children[i] = c
	adoptContext(c, n.ctx)
}

// Detach removes n from its parent's child list, turning n into the root
// of its own subtree. Detaching a root is a no-op, so deleting a node
// whose ancestor was already deleted is harmless.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	if i := p.childIndex(n); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

// Replace substitutes repl for old in old's exact child slot and detaches
// old. repl may live anywhere, including inside old's own subtree (which
// is how an exclusive alternative is promoted over its branch point), and
// is detached from its current position first.
//
// Fails with ErrNotAttached when old is a root and ErrCycleDetected when
// repl is an ancestor of old's parent.
func Replace(old, repl *Node) error {
	if old == nil || repl == nil {
		return ErrNilNode
	}
	p := old.parent
	if p == nil {
		return ErrNotAttached
	}
	if repl.isAncestorOf(p) {
		return ErrCycleDetected
	}
	if repl == old {
		return nil
	}
	repl.Detach()
	i := p.childIndex(old)
	old.Detach()
	p.insertChildAt(i, repl)

	return nil
}
