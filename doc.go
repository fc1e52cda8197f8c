// Package loadcomb expands hierarchical engineering load-group
// definitions into the full enumerated set of concrete load combinations,
// each a flat mapping from load-case name to resolved load factor.
//
// A definition declares additive groups (children applied simultaneously)
// and exclusive groups (children are mutually-exclusive alternatives),
// and may reference whole groups by name from inside other groups. Named
// factor overrides then select and scale the relevant branches per
// combination.
//
// The pipeline is organized in subpackages, leaves first:
//
//	loadtree/  - the single-owner tree primitive: typed nodes, deep
//	             cloning, structural surgery, factor inheritance
//	hierarchy/ - builds the shared template tree from an ordered group
//	             definition and resolves group cross-references
//	combine/   - instantiates one combination tree per named override
//	             set and prunes branches the combination never touches
//	expand/    - resolves exclusive branch points into the Cartesian
//	             product of terminal trees and serializes them
//	loaddef/   - YAML and HCL definition loaders
//	report/    - CSV table and ASCII tree sinks
//
// The template is built once and shared read-only; every combination
// works on its own full deep clone, so per-combination work is
// independent by construction.
package loadcomb
