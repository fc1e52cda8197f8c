// HCL definition parsing: group/subgroup and combination/factor blocks
// decoded with gohcl, factor values converted through cty numbers.

package loaddef

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/structcalc/loadcomb/combine"
	"github.com/structcalc/loadcomb/hierarchy"
)

// hclDocument mirrors the top level of a definition file.
type hclDocument struct {
	Groups       []hclGroup       `hcl:"group,block"`
	Combinations []hclCombination `hcl:"combination,block"`
}

type hclGroup struct {
	Name      string        `hcl:"name,label"`
	Cases     []string      `hcl:"cases,optional"`
	SubGroups []hclSubGroup `hcl:"subgroup,block"`
}

type hclSubGroup struct {
	Name  string   `hcl:"name,label"`
	Cases []string `hcl:"cases"`
}

type hclCombination struct {
	Name    string      `hcl:"name,label"`
	Factors []hclFactor `hcl:"factor,block"`
}

// hclFactor carries either a scalar value attribute or per-sub-group
// factor attributes, which land in the remaining body.
type hclFactor struct {
	Group string   `hcl:"group,label"`
	Value *float64 `hcl:"value,optional"`
	Rest  hcl.Body `hcl:",remain"`
}

// ParseHCL parses an HCL definition document of the form:
//
//	group "Dead" {
//	  cases = ["DL", "SDL"]
//	}
//	group "Live" {
//	  subgroup "Perm"    { cases = ["LL"] }
//	  subgroup "Pattern" { cases = ["LL_Pattern"] }
//	}
//	combination "LRFD2" {
//	  factor "Dead" { value = 1.2 }
//	  factor "Live" {
//	    Perm    = 1.6
//	    Pattern = 1.6
//	  }
//	}
//
// filename is used for diagnostic positions only.
func ParseHCL(filename string, data []byte) (*Document, error) {
	file, diags := hclparse.NewParser().ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("loaddef: hcl: %w", diags)
	}
	var raw hclDocument
	if diags = gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("loaddef: hcl: %w", diags)
	}

	doc := &Document{Combinations: combine.FactorSet{}}
	for _, g := range raw.Groups {
		def := hierarchy.Group{Name: g.Name, Cases: g.Cases}
		for _, sg := range g.SubGroups {
			def.SubGroups = append(def.SubGroups, hierarchy.SubGroup{Name: sg.Name, Cases: sg.Cases})
		}
		doc.Groups = append(doc.Groups, def)
	}
	for _, c := range raw.Combinations {
		spec := combine.FactorSpec{}
		for _, f := range c.Factors {
			gf := combine.GroupFactor{Value: f.Value}
			subs, err := subGroupFactors(f)
			if err != nil {
				return nil, err
			}
			if len(subs) > 0 {
				gf.SubGroups = subs
			}
			spec[f.Group] = gf
		}
		doc.Combinations[c.Name] = spec
	}

	return doc, nil
}

// subGroupFactors evaluates the leftover attributes of a factor block as
// per-sub-group factors.
func subGroupFactors(f hclFactor) (map[string]float64, error) {
	if f.Rest == nil {
		return nil, nil
	}
	attrs, diags := f.Rest.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("loaddef: hcl: factor %q: %w", f.Group, diags)
	}
	if len(attrs) == 0 {
		return nil, nil
	}
	subs := make(map[string]float64, len(attrs))
	for name, attr := range attrs {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("loaddef: hcl: factor %q.%s: %w", f.Group, name, diags)
		}
		num, err := convert.Convert(v, cty.Number)
		if err != nil {
			return nil, fmt.Errorf("%w: %s of group %q", ErrBadFactor, name, f.Group)
		}
		fv, _ := num.AsBigFloat().Float64()
		subs[name] = fv
	}

	return subs, nil
}
