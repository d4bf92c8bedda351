package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendse/opendse/model"
)

func TestRouting_SharesArchitectureIdentities(t *testing.T) {
	arch := model.NewArchitecture()
	r1 := model.NewResource("r1")
	r2 := model.NewResource("r2")
	require.NoError(t, arch.AddResource(r1))
	require.NoError(t, arch.AddResource(r2))
	link := model.NewLink("l1", true)
	require.NoError(t, arch.AddLink("l1", "r1", "r2", link))

	routing := model.NewRouting()
	require.NoError(t, routing.AddResource(r1))
	require.NoError(t, routing.AddResource(r2))
	require.NoError(t, routing.AddLink("l1", "r1", "r2", true, link))

	got, err := routing.Graph().Vertex("r1")
	require.NoError(t, err)
	require.Same(t, r1, got)
}

func TestRoutings_SetAndGet(t *testing.T) {
	rs := model.NewRoutings()
	routing := model.NewRouting()
	rs.Set("c1", routing)

	got, err := rs.Get("c1")
	require.NoError(t, err)
	require.Same(t, routing, got)
	require.Equal(t, []string{"c1"}, rs.CommunicationIDs())
	require.Equal(t, 1, rs.Len())
}

func TestRoutings_Get_MissingReturnsNotFound(t *testing.T) {
	rs := model.NewRoutings()
	_, err := rs.Get("missing")
	require.ErrorIs(t, err, model.ErrNotFound)
}
