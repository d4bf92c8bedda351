package graph_test

import (
	"testing"

	"github.com/opendse/opendse/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type strVertex string

func (s strVertex) ID() string { return string(s) }

type strEdge struct{ label string }

func newTestGraph(t *testing.T) *graph.Graph[strVertex, strEdge] {
	t.Helper()
	g := graph.New[strVertex, strEdge]()
	require.NoError(t, g.AddVertex(strVertex("A")))
	require.NoError(t, g.AddVertex(strVertex("B")))
	require.NoError(t, g.AddVertex(strVertex("C")))
	return g
}

func TestAddVertex_DuplicateRejected(t *testing.T) {
	g := newTestGraph(t)
	err := g.AddVertex(strVertex("A"))
	assert.ErrorIs(t, err, graph.ErrVertexExists)
}

func TestAddVertex_EmptyID(t *testing.T) {
	g := graph.New[strVertex, strEdge]()
	err := g.AddVertex(strVertex(""))
	assert.ErrorIs(t, err, graph.ErrEmptyID)
}

func TestAddEdge_DirectedAndUndirected(t *testing.T) {
	g := newTestGraph(t)
	require.NoError(t, g.AddEdge("e1", "A", "B", true, strEdge{"dir"}))
	require.NoError(t, g.AddEdge("e2", "B", "C", false, strEdge{"undir"}))

	// Directed edge only shows up as OUT of A, IN of B.
	assert.Contains(t, g.OutEdges("A"), "e1")
	assert.NotContains(t, g.InEdges("A"), "e1")
	assert.Contains(t, g.InEdges("B"), "e1")

	// Undirected edge shows up as both OUT and IN of both endpoints.
	assert.Contains(t, g.OutEdges("B"), "e2")
	assert.Contains(t, g.InEdges("B"), "e2")
	assert.Contains(t, g.OutEdges("C"), "e2")
	assert.Contains(t, g.InEdges("C"), "e2")
}

func TestAddEdge_MissingEndpoint(t *testing.T) {
	g := newTestGraph(t)
	err := g.AddEdge("e1", "A", "Z", true, strEdge{})
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestEndpointsAndOpposite(t *testing.T) {
	g := newTestGraph(t)
	require.NoError(t, g.AddEdge("e1", "A", "B", true, strEdge{}))

	from, to, err := g.Endpoints("e1")
	require.NoError(t, err)
	assert.Equal(t, "A", from)
	assert.Equal(t, "B", to)

	opp, err := g.Opposite("e1", "A")
	require.NoError(t, err)
	assert.Equal(t, "B", opp)

	_, err = g.Opposite("e1", "Z")
	assert.ErrorIs(t, err, graph.ErrVertexNotFound)
}

func TestRemoveVertex_DropsIncidentEdges(t *testing.T) {
	g := newTestGraph(t)
	require.NoError(t, g.AddEdge("e1", "A", "B", true, strEdge{}))
	require.NoError(t, g.AddEdge("e2", "B", "C", false, strEdge{}))

	require.NoError(t, g.RemoveVertex("B"))
	assert.False(t, g.HasVertex("B"))
	assert.False(t, g.HasEdge("e1"))
	assert.False(t, g.HasEdge("e2"))
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestVertexIDs_InsertionOrder(t *testing.T) {
	g := graph.New[strVertex, strEdge]()
	require.NoError(t, g.AddVertex(strVertex("Z")))
	require.NoError(t, g.AddVertex(strVertex("A")))
	require.NoError(t, g.AddVertex(strVertex("M")))
	assert.Equal(t, []string{"Z", "A", "M"}, g.VertexIDs())
}

func TestClone_IsStructurallyIndependent(t *testing.T) {
	g := newTestGraph(t)
	require.NoError(t, g.AddEdge("e1", "A", "B", true, strEdge{"x"}))
	clone := g.Clone()

	require.NoError(t, clone.RemoveVertex("A"))
	assert.True(t, g.HasVertex("A"), "mutating the clone must not affect the source graph")
	assert.True(t, g.HasEdge("e1"))
}
