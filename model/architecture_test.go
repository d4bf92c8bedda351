package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendse/opendse/model"
)

func TestArchitecture_AddResourceAndLink(t *testing.T) {
	arch := model.NewArchitecture()
	require.NoError(t, arch.AddResource(model.NewResource("r1")))
	require.NoError(t, arch.AddResource(model.NewResource("r2")))
	require.NoError(t, arch.AddLink("l1", "r1", "r2", model.NewLink("l1", true)))

	require.ElementsMatch(t, []string{"r1", "r2"}, arch.ResourceIDs())
	edge, err := arch.Link("l1")
	require.NoError(t, err)
	require.True(t, edge.Directed)
}

func TestResource_ProxyID(t *testing.T) {
	r := model.NewResource("r1")
	_, ok := r.Attributes().Get("proxyId")
	require.False(t, ok)
	require.Equal(t, "", r.ProxyID())
}
