// Combination instantiation: clone the template, apply overrides.

package combine

import (
	"github.com/structcalc/loadcomb/hierarchy"
	"github.com/structcalc/loadcomb/loadtree"
)

// Instantiate deep-clones template into a new combination tree rooted at
// name and applies every override of spec.
//
// The template is read-only: the clone is a full value-semantics copy, so
// instantiating many combinations from one template never lets them alias
// each other. Overrides naming nodes absent from the tree are skipped
// without error.
func Instantiate(template *loadtree.Node, name string, spec FactorSpec) (*loadtree.Node, error) {
	if template == nil {
		return nil, ErrNilTemplate
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	root := template.CloneCombination(name)
	for group, gf := range spec {
		if gf.Value != nil {
			if err := setFactor(root, group, *gf.Value); err != nil {
				return nil, err
			}
		}
		for sub, v := range gf.SubGroups {
			if err := setFactor(root, hierarchy.QualifiedName(group, sub), v); err != nil {
				return nil, err
			}
		}
	}

	return root, nil
}

// setFactor assigns an explicit factor to the node named name, or does
// nothing when no such node exists.
func setFactor(root *loadtree.Node, name string, v float64) error {
	node := loadtree.FindByName(root, name)
	if node == nil {
		return nil
	}

	return node.SetLoadFactor(v)
}

// InstantiateAll builds one pruned combination tree per entry of set. A
// failure on one combination is reported for that name only; the others
// are still produced.
func InstantiateAll(template *loadtree.Node, set FactorSet) (map[string]*loadtree.Node, map[string]error) {
	combos := make(map[string]*loadtree.Node, len(set))
	var failures map[string]error
	for name, spec := range set {
		root, err := Instantiate(template, name, spec)
		if err != nil {
			if failures == nil {
				failures = make(map[string]error)
			}
			failures[name] = err

			continue
		}
		Prune(root)
		combos[name] = root
	}

	return combos, failures
}
