// File: architecture.go
// Role: Architecture graph (Resources + Links).

package model

import "github.com/opendse/opendse/graph"

// Architecture is the resource/link graph of a specification: the
// hardware (or virtual) platform tasks may be mapped onto.
type Architecture struct {
	g *graph.Graph[*Resource, *Link]
}

// NewArchitecture returns an empty Architecture.
func NewArchitecture() *Architecture {
	return &Architecture{g: graph.New[*Resource, *Link]()}
}

// AddResource inserts r as a vertex.
func (a *Architecture) AddResource(r *Resource) error { return a.g.AddVertex(r) }

// AddLink inserts an edge between from and to, directed per l.Directed.
func (a *Architecture) AddLink(id, from, to string, l *Link) error {
	return a.g.AddEdge(id, from, to, l.Directed, l)
}

// Resource returns the resource vertex with the given ID.
func (a *Architecture) Resource(id string) (*Resource, error) { return a.g.Vertex(id) }

// ResourceIDs returns every resource ID in insertion order.
func (a *Architecture) ResourceIDs() []string { return a.g.VertexIDs() }

// Link returns the link edge with the given ID.
func (a *Architecture) Link(id string) (graph.Edge[*Link], error) { return a.g.Edge(id) }

// LinkIDs returns every link ID in insertion order.
func (a *Architecture) LinkIDs() []string { return a.g.EdgeIDs() }

// Graph exposes the underlying graph for ops/ and xmlio/.
func (a *Architecture) Graph() *graph.Graph[*Resource, *Link] { return a.g }
