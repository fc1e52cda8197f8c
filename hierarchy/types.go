// Package hierarchy definition types and sentinel errors.
package hierarchy

import "errors"

// Sentinel errors for template construction.
var (
	// ErrEmptyDefinition indicates a definition with no groups.
	ErrEmptyDefinition = errors.New("hierarchy: definition has no groups")

	// ErrEmptyName indicates a group, sub-group, or case with an empty name.
	ErrEmptyName = errors.New("hierarchy: empty name in definition")

	// ErrMixedGroup indicates a group defining both cases and sub-groups.
	ErrMixedGroup = errors.New("hierarchy: group defines both cases and sub-groups")

	// ErrEmptyGroup indicates a group defining neither cases nor sub-groups.
	ErrEmptyGroup = errors.New("hierarchy: group defines neither cases nor sub-groups")

	// ErrDuplicateName indicates two nodes of the template would share a name.
	ErrDuplicateName = errors.New("hierarchy: duplicate name in template")
)

// RootName is the name of the synthetic template root.
const RootName = "Root"

// Definition is the ordered list of top-level group definitions. Order is
// significant: it fixes child order in the template and therefore the
// deterministic naming of expanded combinations.
type Definition []Group

// Group defines one top-level load group. Exactly one of Cases and
// SubGroups must be populated: Cases yields an additive group of load
// cases, SubGroups yields an exclusive group of additive alternatives.
type Group struct {
	Name      string
	Cases     []string
	SubGroups []SubGroup
}

// SubGroup defines one mutually-exclusive alternative within a group. In
// the template it becomes an additive group named "{group}_{name}".
type SubGroup struct {
	Name  string
	Cases []string
}

// QualifiedName returns the template node name of sub-group sub of group.
func QualifiedName(group, sub string) string {
	return group + "_" + sub
}
