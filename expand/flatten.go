// Serialization of terminal trees: the only point the core surfaces data
// outward, consumed by external reporters and exporters.

package expand

import "github.com/structcalc/loadcomb/loadtree"

// Combination is the flat external form of one terminal tree: the
// generated combination name and a load-case-name to factor mapping.
type Combination struct {
	Name      string
	LoadCases map[string]float64
}

// Row is one line of the bulk tabular form, suitable for accumulation
// across many combinations into a single report.
type Row struct {
	Combination string
	LoadCase    string
	Factor      float64
}

// Flatten serializes a terminal tree into its flat mapping: every leaf's
// name paired with its resolved load factor. Fails with ErrNotExpanded
// when the root lacks the terminal marker.
func Flatten(tree *loadtree.Node) (Combination, error) {
	if tree == nil {
		return Combination{}, ErrNilTree
	}
	if !tree.Expanded() {
		return Combination{}, ErrNotExpanded
	}
	c := Combination{Name: tree.Name(), LoadCases: make(map[string]float64)}
	for _, leaf := range loadtree.Leaves(tree) {
		if leaf == tree {
			// A childless root carries no cases.
			continue
		}
		if f, ok := leaf.LoadFactor(); ok {
			c.LoadCases[leaf.Name()] = f
		}
	}

	return c, nil
}

// Rows serializes a terminal tree into tabular rows, one per leaf, in
// leaf preorder. Fails with ErrNotExpanded when the root lacks the
// terminal marker.
func Rows(tree *loadtree.Node) ([]Row, error) {
	if tree == nil {
		return nil, ErrNilTree
	}
	if !tree.Expanded() {
		return nil, ErrNotExpanded
	}
	var rows []Row
	for _, leaf := range loadtree.Leaves(tree) {
		if leaf == tree {
			continue
		}
		if f, ok := leaf.LoadFactor(); ok {
			rows = append(rows, Row{Combination: tree.Name(), LoadCase: leaf.Name(), Factor: f})
		}
	}

	return rows, nil
}
