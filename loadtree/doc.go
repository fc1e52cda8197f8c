// Package loadtree provides the single-owner, parent-linked tree primitive
// shared by every stage of load-combination generation: template
// construction, per-combination cloning, pruning, and exclusive-branch
// expansion.
//
// A Node is either a load group (additive or exclusive) or a load case
// (a leaf with unset additivity). Every node belongs to exactly one tree:
// children are owned by their parent, while the parent pointer is a weak
// back-reference used only for upward factor resolution.
//
// Two tree contexts exist. A template tree (ContextTemplate) is built once
// and is read-only afterwards; explicit load factors may only be set on
// nodes of a combination tree (ContextCombination), which is always a full
// deep clone of the template. LoadFactor resolves a node's factor by
// walking its ancestor chain, so a factor set on a group applies to every
// descendant case that does not override it.
//
// Structural surgery (AddChild, Detach, Replace, Promote) is implemented
// as atomic detach-then-attach operations validated against cycles and
// double ownership, and Clone is a full value-semantics copy: no node is
// ever shared by reference between two trees, so mutating one clone can
// never be observed from another.
package loadtree
