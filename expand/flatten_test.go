// Serializer contracts: the expanded marker gate and the tabular form.
package expand_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structcalc/loadcomb/combine"
	"github.com/structcalc/loadcomb/expand"
)

func TestFlatten_RequiresExpandedMarker(t *testing.T) {
	root := pruned(t, "LRFD1", combine.FactorSpec{"Dead": combine.Scalar(1.4)})

	_, err := expand.Flatten(root)
	require.ErrorIs(t, err, expand.ErrNotExpanded)
	_, err = expand.Rows(root)
	require.ErrorIs(t, err, expand.ErrNotExpanded)

	_, err = expand.Flatten(nil)
	require.ErrorIs(t, err, expand.ErrNilTree)
}

func TestRows_LeafPreorder(t *testing.T) {
	root := pruned(t, "LRFD1", combine.FactorSpec{"Dead": combine.Scalar(1.4)})
	result, err := expand.Expand(root)
	require.NoError(t, err)

	rows, err := expand.Rows(result["LRFD1"])
	require.NoError(t, err)
	assert.Equal(t, []expand.Row{
		{Combination: "LRFD1", LoadCase: "DL", Factor: 1.4},
		{Combination: "LRFD1", LoadCase: "SDL", Factor: 1.4},
	}, rows)
}

func TestFlatten_EmptyTree(t *testing.T) {
	// A combination with no overrides prunes down to a bare root, which
	// expands to itself and flattens to an empty mapping.
	root := pruned(t, "Bare", combine.FactorSpec{})
	result, err := expand.Expand(root)
	require.NoError(t, err)

	c, err := expand.Flatten(result["Bare"])
	require.NoError(t, err)
	assert.Equal(t, "Bare", c.Name)
	assert.Empty(t, c.LoadCases)
}
