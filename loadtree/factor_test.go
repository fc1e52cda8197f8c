// The inheritance law: a node's resolved factor is its own explicit
// factor when set, otherwise its parent's resolved factor; a root without
// an explicit factor has none.
package loadtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/loadcomb/loadtree"
)

func TestLoadFactor_Inheritance(t *testing.T) {
	root, _, _, _, _ := buildSmallTree(t)
	combo := root.CloneCombination("C")
	a := loadtree.FindByName(combo, "a")
	a1 := loadtree.FindByName(combo, "a1")
	a2 := loadtree.FindByName(combo, "a2")

	// No factor anywhere yet.
	_, ok := a1.LoadFactor()
	assert.False(t, ok)

	// Set on the group: both alternatives inherit.
	require.NoError(t, a.SetLoadFactor(1.2))
	for _, n := range []*loadtree.Node{a, a1, a2} {
		f, ok := n.LoadFactor()
		require.True(t, ok)
		assert.Equal(t, 1.2, f)
	}

	// Own explicit factor wins over the inherited one.
	require.NoError(t, a1.SetLoadFactor(1.6))
	f, _ := a1.LoadFactor()
	assert.Equal(t, 1.6, f)
	f, _ = a2.LoadFactor()
	assert.Equal(t, 1.2, f)

	// The root resolves nothing and stops the walk.
	_, ok = combo.LoadFactor()
	assert.False(t, ok)
}

func TestSetLoadFactor_TemplateRejected(t *testing.T) {
	root, a, _, _, _ := buildSmallTree(t)

	require.ErrorIs(t, a.SetLoadFactor(1.0), loadtree.ErrNotInCombinationContext)
	require.ErrorIs(t, root.SetLoadFactor(1.0), loadtree.ErrNotInCombinationContext)
	_, ok := a.LoadFactor()
	assert.False(t, ok, "rejected mutation must not leave a factor behind")
}

func TestAttach_AdoptsContext(t *testing.T) {
	root, _, _, _, _ := buildSmallTree(t)
	combo := root.CloneCombination("C")

	// A detached template node attached into a combination tree adopts
	// the combination context, subtree included.
	extra := loadtree.NewGroup("extra", loadtree.Additive)
	leaf := loadtree.NewCase("extra_case")
	require.NoError(t, extra.AddChild(leaf))
	require.NoError(t, combo.AddChild(extra))

	assert.Equal(t, loadtree.ContextCombination, extra.Context())
	assert.Equal(t, loadtree.ContextCombination, leaf.Context())
	require.NoError(t, leaf.SetLoadFactor(1.1))
}
