// Package loadtree defines the Node type, its additivity and context
// enums, and the sentinel errors shared by all structural operations.
package loadtree

import "errors"

// Sentinel errors for structural and factor operations.
var (
	// ErrNilNode indicates a nil *Node was passed to an operation.
	ErrNilNode = errors.New("loadtree: node is nil")

	// ErrEmptyName indicates a node name is the empty string.
	ErrEmptyName = errors.New("loadtree: node name is empty")

	// ErrAlreadyAttached indicates an attach of a node that still has a parent.
	ErrAlreadyAttached = errors.New("loadtree: node is already attached to a parent")

	// ErrCycleDetected indicates an attach that would make a node its own ancestor.
	ErrCycleDetected = errors.New("loadtree: attach would create a cycle")

	// ErrNotAttached indicates a slot operation on a node that has no parent.
	ErrNotAttached = errors.New("loadtree: node has no parent")

	// ErrInvalidPathLevels indicates a Promote level count outside [0, depth).
	ErrInvalidPathLevels = errors.New("loadtree: promotion levels out of range")

	// ErrNotInCombinationContext indicates an explicit factor set on a node
	// that does not belong to a combination tree.
	ErrNotInCombinationContext = errors.New("loadtree: explicit load factor outside combination context")
)

// Additivity describes how a group combines its children.
// It is a tri-state: load cases carry AdditivityUnset, groups carry
// Additive or Exclusive. Once set on a node it never changes.
type Additivity int8

const (
	// AdditivityUnset marks a load case; only valid on leaf nodes.
	AdditivityUnset Additivity = iota
	// Additive marks a group whose children apply simultaneously.
	Additive
	// Exclusive marks a group whose children are mutually-exclusive
	// alternatives, each defining a separate combination.
	Exclusive
)

// String returns the additivity name used in tree rendering and errors.
func (a Additivity) String() string {
	switch a {
	case Additive:
		return "additive"
	case Exclusive:
		return "exclusive"
	default:
		return "case"
	}
}

// Context discriminates template trees from combination trees.
// The tag is carried by every node of a tree and adopted on attach, so
// factor mutation can be gated without inspecting the root's type.
type Context uint8

const (
	// ContextTemplate marks the shared, read-only hierarchy built once
	// from the group definition. Explicit factors are forbidden.
	ContextTemplate Context = iota
	// ContextCombination marks a per-combination clone that carries
	// explicit load factors and may be pruned and expanded.
	ContextCombination
)

// Node is a single element of a load-group tree: a load group or a load
// case. Children are owned and ordered; parent is a weak back-reference.
type Node struct {
	name     string
	additive Additivity
	ctx      Context

	parent   *Node
	children []*Node

	// factor is the explicit load factor, meaningful only when hasFactor
	// is true and the node lives in a combination tree.
	factor    float64
	hasFactor bool

	// expanded marks a combination tree root as terminal: no exclusive
	// node with more than one child remains beneath it.
	expanded bool
}

// NewGroup returns a detached template group node with the given additivity.
func NewGroup(name string, additive Additivity) *Node {
	return &Node{name: name, additive: additive}
}

// NewCase returns a detached template load-case node (additivity unset).
func NewCase(name string) *Node {
	return &Node{name: name}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Additivity returns the node's additivity tri-state.
func (n *Node) Additivity() Additivity { return n.additive }

// Context returns the tree context the node belongs to.
func (n *Node) Context() Context { return n.ctx }

// Parent returns the weak parent back-reference, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the ordered child slice. The copy may be
// iterated while the tree is mutated without invalidation.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)

	return out
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int { return len(n.children) }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Root walks the parent chain to the tree root.
// Complexity: O(depth).
func (n *Node) Root() *Node {
	cur := n
	for cur.parent != nil {
		cur = cur.parent
	}

	return cur
}

// Depth returns the number of edges between the node and its root.
// A root has depth 0. Complexity: O(depth).
func (n *Node) Depth() int {
	d := 0
	for cur := n; cur.parent != nil; cur = cur.parent {
		d++
	}

	return d
}

// Rename changes the node's name. Intended for combination tree roots,
// whose names encode the expansion path; renaming an interior template
// node would break template name uniqueness.
func (n *Node) Rename(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	n.name = name

	return nil
}

// MarkExpanded flags the node as the root of a terminal tree.
func (n *Node) MarkExpanded() { n.expanded = true }

// Expanded reports whether the node carries the terminal marker.
func (n *Node) Expanded() bool { return n.expanded }
