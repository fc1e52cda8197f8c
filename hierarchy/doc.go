// Package hierarchy builds the template load-group tree from an ordered
// group definition.
//
// A definition entry is either a flat list of load-case names (an additive
// group) or a list of named sub-groups (an exclusive group whose
// alternatives are additive sub-groups named "{group}_{subgroup}").
//
// After direct construction, Build runs a cross-reference pass: a leaf
// that bears the name of a top-level group stands for that group, and is
// replaced in place by the group's entire subtree. This lets an envelope
// group such as "Lateral" reference "Wind" and "Seismic" without
// restating their cases. The first reference receives the group itself
// (moved out of the top level); further references receive independent
// deep clones so that no node is shared between slots.
//
// The resulting template tree is validated for name uniqueness, is tagged
// ContextTemplate, and is intended to be built once and shared read-only
// by every combination instantiation.
package hierarchy
