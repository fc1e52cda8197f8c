// Exclusive-branch expansion: the Cartesian product of every surviving
// alternative, one terminal tree per element.

package expand

import "github.com/structcalc/loadcomb/loadtree"

// Expand resolves every exclusive branch point of tree into separate
// terminal trees, keyed by generated name. The input tree is consumed: it
// is either returned itself (already terminal) or recursively split into
// clones and discarded.
//
// The branch point is always the first exclusive node with more than one
// child in breadth-first order, so output names are reproducible across
// runs. Complexity: O(product × tree size).
func Expand(tree *loadtree.Node, opts ...Option) (map[string]*loadtree.Node, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	out := make(map[string]*loadtree.Node)
	if err := expand(tree, o, out); err != nil {
		return nil, err
	}

	return out, nil
}

func expand(tree *loadtree.Node, o options, out map[string]*loadtree.Node) error {
	branch := firstBranchPoint(tree)
	if branch == nil {
		if o.maxCombinations > 0 && len(out) >= o.maxCombinations {
			return ErrCombinationLimit
		}
		tree.MarkExpanded()
		out[tree.Name()] = tree

		return nil
	}

	// Locate the branch point structurally so clones can find their own
	// copy of it even when cross-reference clones duplicated names.
	path := indexPath(tree, branch)
	name := tree.Name()
	for i, alt := range branch.Children() {
		clone := tree.Clone()
		cBranch := nodeAt(clone, path)
		cAlt := cBranch.Children()[i]
		// The branch point is discarded, so an explicit factor on it moves
		// down to the chosen alternative; its subtree keeps resolving the
		// same value. An alternative's own factor still wins.
		if f, ok := cBranch.ExplicitFactor(); ok {
			if _, set := cAlt.ExplicitFactor(); !set {
				if err := cAlt.SetLoadFactor(f); err != nil {
					return err
				}
			}
		}
		next := clone
		if cBranch == clone {
			// The branch point is the root itself: the chosen
			// alternative becomes the new root.
			cAlt.Detach()
			next = cAlt
		} else {
			// Promote the alternative into the branch point's slot; the
			// branch point and its other alternatives are discarded.
			if err := loadtree.Replace(cBranch, cAlt); err != nil {
				return err
			}
		}
		if err := next.Rename(name + "-" + alt.Name()); err != nil {
			return err
		}
		if err := expand(next, o, out); err != nil {
			return err
		}
	}

	return nil
}

// firstBranchPoint returns the first exclusive node with more than one
// child in breadth-first order, or nil when the tree is terminal.
func firstBranchPoint(tree *loadtree.Node) *loadtree.Node {
	var found *loadtree.Node
	loadtree.WalkLevelOrder(tree, func(n *loadtree.Node) bool {
		if n.Additivity() == loadtree.Exclusive && n.ChildCount() > 1 {
			found = n

			return false
		}

		return true
	})

	return found
}

// indexPath returns the child-slot indices leading from root to n.
func indexPath(root, n *loadtree.Node) []int {
	var path []int
	for cur := n; cur != root; cur = cur.Parent() {
		path = append(path, indexOf(cur))
	}
	// Collected leaf-to-root; reverse.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

func indexOf(n *loadtree.Node) int {
	for i, c := range n.Parent().Children() {
		if c == n {
			return i
		}
	}

	return -1
}

// nodeAt resolves a child-slot index path from root.
func nodeAt(root *loadtree.Node, path []int) *loadtree.Node {
	cur := root
	for _, i := range path {
		cur = cur.Children()[i]
	}

	return cur
}
