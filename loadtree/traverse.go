// Traversal and lookup helpers. Both walks take a visitor callback that
// may stop the traversal early by returning false, the same visitor shape
// the rest of the module builds its scans on.

package loadtree

// Walk visits the subtree rooted at n in preorder (node before children,
// children in insertion order). Traversal stops when visit returns false.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	walk(n, visit)
}

func walk(n *Node, visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, c := range n.children {
		if !walk(c, visit) {
			return false
		}
	}

	return true
}

// WalkLevelOrder visits the subtree rooted at n breadth-first, root to
// leaves, children in insertion order. Traversal stops when visit returns
// false. Expansion relies on this order to pick branch points
// deterministically.
func WalkLevelOrder(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	queue := []*Node{n}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if !visit(cur) {
			return
		}
		queue = append(queue, cur.children...)
	}
}

// FindByName returns the first node named name in preorder under root,
// or nil when absent.
func FindByName(root *Node, name string) *Node {
	var found *Node
	Walk(root, func(n *Node) bool {
		if n.name == name {
			found = n

			return false
		}

		return true
	})

	return found
}

// FindLeavesByName returns every leaf named name under root, in preorder.
func FindLeavesByName(root *Node, name string) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.IsLeaf() && n.name == name {
			out = append(out, n)
		}

		return true
	})

	return out
}

// Leaves returns all leaves under root in preorder. A childless root is
// its own single leaf.
func Leaves(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		if n.IsLeaf() {
			out = append(out, n)
		}

		return true
	})

	return out
}

// Snapshot returns every node of the subtree in preorder. Pruning iterates
// a snapshot so that deletions cannot perturb the traversal.
func Snapshot(root *Node) []*Node {
	var out []*Node
	Walk(root, func(n *Node) bool {
		out = append(out, n)

		return true
	})

	return out
}
