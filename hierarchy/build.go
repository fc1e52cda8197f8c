// Template construction: direct build from the definition, then the
// cross-reference resolution pass.

package hierarchy

import (
	"fmt"

	"github.com/structcalc/loadcomb/loadtree"
)

// Build constructs the template tree for def under a synthetic additive
// root named RootName, then resolves group cross-references: every leaf
// whose name matches a top-level group is replaced by that group's full
// subtree in the leaf's slot.
//
// Build is deterministic: the same definition always yields a structurally
// identical template. Complexity: O(groups × tree size) for the
// cross-reference scan.
func Build(def Definition) (*loadtree.Node, error) {
	if len(def) == 0 {
		return nil, ErrEmptyDefinition
	}
	if err := validate(def); err != nil {
		return nil, err
	}
	root := loadtree.NewGroup(RootName, loadtree.Additive)
	for _, g := range def {
		node, err := buildGroup(g)
		if err != nil {
			return nil, err
		}
		if err = root.AddChild(node); err != nil {
			return nil, err
		}
	}
	if err := resolveReferences(root); err != nil {
		return nil, err
	}

	return root, nil
}

// validate enforces template name uniqueness on the definition itself.
// Group names, qualified sub-group names, and case names must not collide,
// with one exception: a case name equal to a top-level group name is a
// cross-reference and may appear any number of times (each occurrence is
// resolved to its own copy of the group's subtree).
func validate(def Definition) error {
	groups := make(map[string]struct{}, len(def))
	for _, g := range def {
		if g.Name == "" {
			return ErrEmptyName
		}
		if _, ok := groups[g.Name]; ok {
			return fmt.Errorf("%w: group %q", ErrDuplicateName, g.Name)
		}
		groups[g.Name] = struct{}{}
	}
	seen := make(map[string]struct{}, len(def)*4)
	record := func(name string) error {
		if _, ok := groups[name]; ok {
			// Reference leaf or the group itself; resolution handles it.
			return nil
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		seen[name] = struct{}{}

		return nil
	}
	for _, g := range def {
		for _, c := range g.Cases {
			if err := record(c); err != nil {
				return err
			}
		}
		for _, sg := range g.SubGroups {
			if err := record(QualifiedName(g.Name, sg.Name)); err != nil {
				return err
			}
			for _, c := range sg.Cases {
				if err := record(c); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// buildGroup turns one definition entry into a detached subtree.
func buildGroup(g Group) (*loadtree.Node, error) {
	switch {
	case len(g.Cases) > 0 && len(g.SubGroups) > 0:
		return nil, fmt.Errorf("%w: %q", ErrMixedGroup, g.Name)
	case len(g.Cases) == 0 && len(g.SubGroups) == 0:
		return nil, fmt.Errorf("%w: %q", ErrEmptyGroup, g.Name)
	case len(g.Cases) > 0:
		node := loadtree.NewGroup(g.Name, loadtree.Additive)
		if err := addCases(node, g.Cases); err != nil {
			return nil, err
		}

		return node, nil
	default:
		node := loadtree.NewGroup(g.Name, loadtree.Exclusive)
		for _, sg := range g.SubGroups {
			if sg.Name == "" {
				return nil, fmt.Errorf("%w: sub-group of %q", ErrEmptyName, g.Name)
			}
			sub := loadtree.NewGroup(QualifiedName(g.Name, sg.Name), loadtree.Additive)
			if err := addCases(sub, sg.Cases); err != nil {
				return nil, err
			}
			if err := node.AddChild(sub); err != nil {
				return nil, err
			}
		}

		return node, nil
	}
}

func addCases(parent *loadtree.Node, cases []string) error {
	for _, name := range cases {
		if name == "" {
			return fmt.Errorf("%w: case of %q", ErrEmptyName, parent.Name())
		}
		if err := parent.AddChild(loadtree.NewCase(name)); err != nil {
			return err
		}
	}

	return nil
}

// resolveReferences replaces, for each top-level group, every leaf that
// shares the group's name with the group's full subtree. The first match
// takes the group itself (reparented into the leaf's slot); later matches
// take deep clones so no node is aliased across slots. Matches inside the
// group's own subtree are skipped: substituting a tree into itself would
// create a cycle. Group names with no leaf match are left untouched.
func resolveReferences(root *loadtree.Node) error {
	// Snapshot the top level first; a resolved group is reparented away
	// from the root and must not disturb the iteration.
	topLevel := root.Children()
	for _, group := range topLevel {
		moved := false
		for _, leaf := range loadtree.FindLeavesByName(root, group.Name()) {
			if leaf == group || underneath(group, leaf) {
				continue
			}
			repl := group
			if moved {
				repl = group.Clone()
			}
			if err := loadtree.Replace(leaf, repl); err != nil {
				return err
			}
			moved = true
		}
	}

	return nil
}

// underneath reports whether n lies inside the subtree rooted at top.
func underneath(top, n *loadtree.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == top {
			return true
		}
	}

	return false
}
