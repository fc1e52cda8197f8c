// Package loaddef parses load-group and factor-override definitions from
// YAML or HCL documents into the types consumed by hierarchy.Build and
// combine.Instantiate.
//
// Both formats carry the same two sections: the group definitions (a flat
// case list for an additive group, named sub-group case lists for an
// exclusive group) and the named combinations with their factor overrides
// (a scalar on a group, or per-sub-group scalars).
//
// YAML documents are decoded through yaml.Node rather than plain maps:
// definition order is significant (it fixes template child order and
// therefore the deterministic naming of expanded combinations), and only
// the node API preserves it.
package loaddef
