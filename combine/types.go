// Package combine override types and sentinel errors.
package combine

import "errors"

// Sentinel errors for combination instantiation.
var (
	// ErrNilTemplate indicates Instantiate was called without a template.
	ErrNilTemplate = errors.New("combine: template tree is nil")

	// ErrEmptyName indicates an empty combination name.
	ErrEmptyName = errors.New("combine: combination name is empty")
)

// GroupFactor carries the factor override for one group of a combination:
// either a scalar Value applied to the group node itself, or per-sub-group
// factors keyed by the sub-group's short name (applied to the qualified
// "{group}_{subgroup}" node). Exactly one of the two is normally set;
// when both are, the scalar is applied first and sub-group entries
// override their alternatives.
type GroupFactor struct {
	Value     *float64
	SubGroups map[string]float64
}

// Scalar is a convenience constructor for a scalar group factor.
func Scalar(v float64) GroupFactor {
	return GroupFactor{Value: &v}
}

// PerSubGroup is a convenience constructor for per-sub-group factors.
func PerSubGroup(m map[string]float64) GroupFactor {
	return GroupFactor{SubGroups: m}
}

// FactorSpec assigns factor overrides for one combination, keyed by
// top-level group name.
type FactorSpec map[string]GroupFactor

// FactorSet maps combination names to their factor specs: the full
// override definition of a run.
type FactorSet map[string]FactorSpec
