// YAML definition parsing. Decoded through the yaml.Node API so mapping
// order survives; plain map decoding would randomize group order and with
// it the generated combination names.

package loaddef

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/structcalc/loadcomb/combine"
	"github.com/structcalc/loadcomb/hierarchy"
)

// ParseYAML parses a YAML definition document of the form:
//
//	groups:
//	  Dead: [DL, SDL]          # additive group: flat case list
//	  Live:                    # exclusive group: sub-group case lists
//	    Perm: [LL]
//	    Pattern: [LL_Pattern]
//	combinations:
//	  LRFD1:
//	    Dead: 1.4              # scalar factor on the group
//	  LRFD2:
//	    Dead: 1.2
//	    Live: {Perm: 1.6}      # per-sub-group factors
func ParseYAML(data []byte) (*Document, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("loaddef: yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping (line %d)", ErrMalformedDocument, top.Line)
	}
	doc := &Document{Combinations: combine.FactorSet{}}
	var err error
	for i := 0; i < len(top.Content)-1; i += 2 {
		key, val := top.Content[i], top.Content[i+1]
		switch key.Value {
		case "groups":
			doc.Groups, err = parseGroups(val)
		case "combinations":
			doc.Combinations, err = parseCombinations(val)
		default:
			err = fmt.Errorf("%w: unexpected section %q (line %d)", ErrMalformedDocument, key.Value, key.Line)
		}
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func parseGroups(n *yaml.Node) (hierarchy.Definition, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: groups must be a mapping (line %d)", ErrMalformedDocument, n.Line)
	}
	var def hierarchy.Definition
	for i := 0; i < len(n.Content)-1; i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		g := hierarchy.Group{Name: key.Value}
		switch val.Kind {
		case yaml.SequenceNode:
			cases, err := stringSeq(val)
			if err != nil {
				return nil, err
			}
			g.Cases = cases
		case yaml.MappingNode:
			for j := 0; j < len(val.Content)-1; j += 2 {
				sk, sv := val.Content[j], val.Content[j+1]
				cases, err := stringSeq(sv)
				if err != nil {
					return nil, err
				}
				g.SubGroups = append(g.SubGroups, hierarchy.SubGroup{Name: sk.Value, Cases: cases})
			}
		default:
			return nil, fmt.Errorf("%w: group %q must be a list or a mapping (line %d)", ErrMalformedDocument, key.Value, val.Line)
		}
		def = append(def, g)
	}

	return def, nil
}

func parseCombinations(n *yaml.Node) (combine.FactorSet, error) {
	if n.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: combinations must be a mapping (line %d)", ErrMalformedDocument, n.Line)
	}
	set := combine.FactorSet{}
	for i := 0; i < len(n.Content)-1; i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		if val.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: combination %q must be a mapping (line %d)", ErrMalformedDocument, key.Value, val.Line)
		}
		spec := combine.FactorSpec{}
		for j := 0; j < len(val.Content)-1; j += 2 {
			gk, gv := val.Content[j], val.Content[j+1]
			gf, err := parseGroupFactor(gk.Value, gv)
			if err != nil {
				return nil, err
			}
			spec[gk.Value] = gf
		}
		set[key.Value] = spec
	}

	return set, nil
}

func parseGroupFactor(group string, n *yaml.Node) (combine.GroupFactor, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := n.Decode(&v); err != nil {
			return combine.GroupFactor{}, fmt.Errorf("%w: group %q (line %d)", ErrBadFactor, group, n.Line)
		}

		return combine.Scalar(v), nil
	case yaml.MappingNode:
		subs := make(map[string]float64, len(n.Content)/2)
		for i := 0; i < len(n.Content)-1; i += 2 {
			sk, sv := n.Content[i], n.Content[i+1]
			var v float64
			if err := sv.Decode(&v); err != nil {
				return combine.GroupFactor{}, fmt.Errorf("%w: %s of group %q (line %d)", ErrBadFactor, sk.Value, group, sv.Line)
			}
			subs[sk.Value] = v
		}

		return combine.PerSubGroup(subs), nil
	default:
		return combine.GroupFactor{}, fmt.Errorf("%w: group %q must carry a scalar or a mapping (line %d)", ErrMalformedDocument, group, n.Line)
	}
}

func stringSeq(n *yaml.Node) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a list of case names (line %d)", ErrMalformedDocument, n.Line)
	}
	out := make([]string, 0, len(n.Content))
	for _, c := range n.Content {
		out = append(out, c.Value)
	}

	return out, nil
}
