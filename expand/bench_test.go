// File: expand/bench_test.go
package expand_test

import (
	"fmt"
	"testing"

	"github.com/structcalc/loadcomb/combine"
	"github.com/structcalc/loadcomb/expand"
	"github.com/structcalc/loadcomb/hierarchy"
)

// BenchmarkExpand measures expansion of a tree with three exclusive
// groups of four alternatives each: 64 terminal trees per run.
func BenchmarkExpand(b *testing.B) {
	var def hierarchy.Definition
	spec := combine.FactorSpec{}
	for g := 0; g < 3; g++ {
		name := fmt.Sprintf("G%d", g)
		var subs []hierarchy.SubGroup
		factors := make(map[string]float64, 4)
		for s := 0; s < 4; s++ {
			sub := fmt.Sprintf("S%d", s)
			subs = append(subs, hierarchy.SubGroup{
				Name:  sub,
				Cases: []string{fmt.Sprintf("%s_%s_case", name, sub)},
			})
			factors[sub] = 1.0
		}
		def = append(def, hierarchy.Group{Name: name, SubGroups: subs})
		spec[name] = combine.PerSubGroup(factors)
	}
	template, err := hierarchy.Build(def)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		root, err := combine.Instantiate(template, "bench", spec)
		if err != nil {
			b.Fatal(err)
		}
		combine.Prune(root)
		result, err := expand.Expand(root)
		if err != nil {
			b.Fatal(err)
		}
		if len(result) != 64 {
			b.Fatalf("expected 64 terminal trees, got %d", len(result))
		}
	}
}
