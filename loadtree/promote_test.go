// Promote bounds: levels must lie in [0, depth).
package loadtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/loadcomb/loadtree"
)

func TestPromote_OneLevel(t *testing.T) {
	root, a, a1, _, _ := buildSmallTree(t)

	// a1 at depth 2: lifting one level makes it a direct child of root.
	require.NoError(t, loadtree.Promote(a1, 1))
	assert.Same(t, root, a1.Parent())
	assert.Equal(t, 1, a1.Depth())
	assert.Equal(t, 1, a.ChildCount())
	// Appended after the existing children.
	children := root.Children()
	assert.Same(t, a1, children[len(children)-1])
}

func TestPromote_ZeroIsNoOp(t *testing.T) {
	_, a, a1, _, _ := buildSmallTree(t)

	require.NoError(t, loadtree.Promote(a1, 0))
	assert.Same(t, a, a1.Parent())
}

func TestPromote_Bounds(t *testing.T) {
	root, _, a1, _, _ := buildSmallTree(t)

	require.ErrorIs(t, loadtree.Promote(nil, 0), loadtree.ErrNilNode)
	require.ErrorIs(t, loadtree.Promote(a1, -1), loadtree.ErrInvalidPathLevels)
	// a1 has depth 2: levels 2 would move past the root.
	require.ErrorIs(t, loadtree.Promote(a1, 2), loadtree.ErrInvalidPathLevels)
	// A root (depth 0) cannot be promoted at all.
	require.ErrorIs(t, loadtree.Promote(root, 0), loadtree.ErrInvalidPathLevels)
}
