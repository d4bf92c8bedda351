package tgff_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendse/opendse/tgff"
)

const sample = `
@HYPERPERIOD 200000

@TASK_GRAPH 0 {
  TASK t0_0 TYPE 0
  TASK t0_1 TYPE 1
  ARC a0_0 FROM t0_0 TO t0_1 TYPE 0
}

@CORE core_type {
  0 1.0 0.5
  1 2.0 0.7
}

@WIRING {
  core0 core1 1
}
`

func TestParseBlocks_Sample(t *testing.T) {
	blocks, err := tgff.ParseBlocks(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, blocks, 4)
	require.Equal(t, "HYPERPERIOD", blocks[0].Keyword)
	require.Equal(t, []string{"200000"}, blocks[0].Args)
	require.Equal(t, "TASK_GRAPH", blocks[1].Keyword)
	require.Len(t, blocks[1].Rows, 3)
}

func TestImport_BuildsSpecification(t *testing.T) {
	blocks, err := tgff.ParseBlocks(strings.NewReader(sample))
	require.NoError(t, err)

	spec, err := tgff.Import("s1", blocks)
	require.NoError(t, err)

	hp, ok := spec.Attrs.Get("hyperperiod")
	require.True(t, ok)
	i, ok := hp.AsInt()
	require.True(t, ok)
	require.EqualValues(t, 200000, i)

	require.ElementsMatch(t, []string{"t0_0", "t0_1", "a0_0"}, spec.Application.Nodes())
	require.ElementsMatch(t, []string{"core0", "core1"}, spec.Architecture.ResourceIDs())
	require.Len(t, spec.Architecture.LinkIDs(), 1)

	core0, err := spec.Architecture.Resource("core0")
	require.NoError(t, err)
	fields, ok := core0.Attributes().Get("fields")
	require.True(t, ok)
	s, ok := fields.AsString()
	require.True(t, ok)
	require.Contains(t, s, "1.0")
}
