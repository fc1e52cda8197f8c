// Package expand resolves the exclusive branch points of a pruned
// combination tree into the full Cartesian product of terminal trees.
//
// A pruned tree may still contain exclusive groups with more than one
// surviving alternative. Expand locates the first such node breadth-first
// from the root, and for each alternative deep-clones the whole tree,
// promotes that alternative into the branch point's exact slot, renames
// the clone's root "{name}-{alternative}", and recurses. Every recursion
// resolves one branch point, so the process terminates with exactly
//
//	∏ (surviving child count of each multi-child exclusive node)
//
// terminal trees, keyed by their generated names. A tree with no branch
// point left is marked expanded and returned as-is, making Expand
// idempotent on terminal trees.
//
// Clones are fully independent (no node is shared by reference between
// two results), so callers may consume or mutate the returned trees in
// any order, or in parallel.
//
// Flatten and Rows serialize a terminal tree into the flat
// name-to-factor mapping and the tabular (combination, case, factor)
// rows consumed by external reporters; both insist on the expanded
// marker.
package expand
