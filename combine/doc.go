// Package combine turns the shared template tree into per-combination
// trees: it deep-clones the template under a root named after the
// combination, applies the combination's factor overrides, and prunes
// every branch the combination does not touch.
//
// Overrides address nodes by exact name: a group name for a scalar
// factor, or the qualified "{group}_{subgroup}" name for per-alternative
// factors. An override naming a node absent from the tree is silently
// skipped; generation of one combination never aborts or corrupts the
// others.
//
// Pruning removes a node (and its whole subtree) unless the node resolves
// a factor itself (explicitly or inherited from an ancestor) or at
// least one of its direct children does. The predicate is evaluated over
// a snapshot taken before any deletion, and removing a node whose
// ancestor is already gone is a no-op, so the pass is order-insensitive
// and idempotent.
package combine
