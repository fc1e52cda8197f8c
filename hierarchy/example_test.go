// File: hierarchy/example_test.go
package hierarchy_test

import (
	"fmt"

	"github.com/structcalc/loadcomb/hierarchy"
	"github.com/structcalc/loadcomb/loadtree"
)

// ExampleBuild shows cross-reference resolution: the "Lateral" envelope
// names the "Wind" group in a leaf, and Build replaces that leaf with the
// whole Wind subtree.
func ExampleBuild() {
	template, _ := hierarchy.Build(hierarchy.Definition{
		{Name: "Wind", SubGroups: []hierarchy.SubGroup{
			{Name: "North", Cases: []string{"WL_North"}},
			{Name: "West", Cases: []string{"WL_West"}},
		}},
		{Name: "Lateral", SubGroups: []hierarchy.SubGroup{
			{Name: "Wind", Cases: []string{"Wind"}},
		}},
	})

	wind := loadtree.FindByName(template, "Wind")
	fmt.Println("parent:", wind.Parent().Name())
	for _, c := range wind.Children() {
		fmt.Println("alternative:", c.Name())
	}
	// Output:
	// parent: Lateral_Wind
	// alternative: Wind_North
	// alternative: Wind_West
}
