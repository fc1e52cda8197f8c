package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDoc = `
groups:
  Dead: [DL, SDL]
  Live:
    Perm: [LL]
    Pattern: [LL_Pattern]
combinations:
  LRFD1:
    Dead: 1.4
  LRFD2:
    Dead: 1.2
    Live: {Perm: 1.6, Pattern: 1.6}
`

func writeDefinition(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDoc), 0o644))

	return path
}

func TestRun_WritesCSV(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run(&out, []string{"-f", writeDefinition(t)}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, "combination,load_case,factor", lines[0])
	// LRFD1 contributes 2 rows, each LRFD2 alternative 3: header + 8.
	assert.Len(t, lines, 9)
	assert.Contains(t, out.String(), "LRFD2-Live_Perm,LL,1.6")
	assert.Contains(t, out.String(), "LRFD2-Live_Pattern,LL_Pattern,1.6")
	assert.NotContains(t, out.String(), "LRFD2,", "non-terminal names must not appear")
}

func TestRun_PrintsTrees(t *testing.T) {
	var out strings.Builder
	require.NoError(t, run(&out, []string{"-f", writeDefinition(t), "-trees"}))

	assert.Contains(t, out.String(), "LRFD2-Live_Perm")
	assert.Contains(t, out.String(), "×1.4")
	assert.NotContains(t, out.String(), "combination,load_case,factor")
}

func TestRun_RequiresDefinitionFlag(t *testing.T) {
	var out strings.Builder
	require.Error(t, run(&out, nil))
}

func TestRun_CombinationCap(t *testing.T) {
	var out strings.Builder
	err := run(&out, []string{"-f", writeDefinition(t), "-max", "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "combination limit")
}
