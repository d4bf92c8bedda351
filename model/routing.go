// File: routing.go
// Role: Routings — per-Communication candidate sub-architectures.
// AI-HINT (file):
//   - A Routing's vertices/edges are the SAME *Resource/*Link instances as
//     in the owning Architecture (spec.md §3 "Ownership": elements are
//     shared by reference across Application/Architecture/Mappings/
//     Routings). This repo does not introduce a separate Java-style
//     "parent wrapper" class for routing elements; see DESIGN.md for the
//     open-question resolution.

package model

import "github.com/opendse/opendse/graph"

// Routing is the candidate sub-architecture a single Communication's
// message may travel over: a subset of the owning Architecture's
// resources and links, restricted to those this communication is allowed
// to route through.
type Routing struct {
	g *graph.Graph[*Resource, *Link]
}

// NewRouting returns an empty Routing.
func NewRouting() *Routing {
	return &Routing{g: graph.New[*Resource, *Link]()}
}

// AddResource inserts the given Architecture resource into the routing.
// r must be a resource already present in the owning Architecture; no
// copy is made.
func (r *Routing) AddResource(res *Resource) error { return r.g.AddVertex(res) }

// AddLink inserts the given Architecture link into the routing, traversed
// with the given directedness. directed is independent of l.Directed: an
// undirected architecture link may be traversed as a directed edge within
// one routing (spec.md §8 S1's undirected l1 traversed r1->can), since the
// actual orientation to use is a decision the constraint encoder makes via
// its link-direction variables (spec.md §4.F), not a property fixed on the
// shared Link instance.
func (r *Routing) AddLink(id, from, to string, directed bool, l *Link) error {
	return r.g.AddEdge(id, from, to, directed, l)
}

// Graph exposes the underlying graph.
func (r *Routing) Graph() *graph.Graph[*Resource, *Link] { return r.g }

// Routings maps Communication ID to its Routing, in insertion order.
type Routings struct {
	items map[string]*Routing
	order []string
}

// NewRoutings returns an empty Routings collection.
func NewRoutings() *Routings {
	return &Routings{items: make(map[string]*Routing)}
}

// Set assigns the routing for the given communication ID, replacing any
// existing entry but preserving its original insertion slot.
func (rs *Routings) Set(communicationID string, r *Routing) {
	if _, exists := rs.items[communicationID]; !exists {
		rs.order = append(rs.order, communicationID)
	}
	rs.items[communicationID] = r
}

// Remove deletes the routing for the given communication ID, if present.
func (rs *Routings) Remove(communicationID string) {
	if _, ok := rs.items[communicationID]; !ok {
		return
	}
	delete(rs.items, communicationID)
	for i, id := range rs.order {
		if id == communicationID {
			rs.order = append(rs.order[:i], rs.order[i+1:]...)
			break
		}
	}
}

// Get returns the routing for the given communication ID, or ErrNotFound.
func (rs *Routings) Get(communicationID string) (*Routing, error) {
	r, ok := rs.items[communicationID]
	if !ok {
		return nil, ErrNotFound
	}
	return r, nil
}

// CommunicationIDs returns every communication ID with a routing, in
// insertion order.
func (rs *Routings) CommunicationIDs() []string {
	out := make([]string, len(rs.order))
	copy(out, rs.order)
	return out
}

// Len returns the number of routings.
func (rs *Routings) Len() int { return len(rs.order) }
