// File: methods_clone.go
// Role: Shallow cloning of topology (structure rebuilt, payloads reused by
//       reference — see ops.ShallowClone for the Specification-level
//       analogue, which rebuilds its graphs itself rather than calling
//       Clone, spec.md §4.D "Shallow clone").
// AI-HINT (file):
//   - Clone copies vertex/edge slots into a fresh Graph but does not deep
//     copy V or E payloads; callers needing element-level isolation use
//     ops.DeepCopy instead, which rebuilds payloads before calling AddVertex.

package graph

// Clone returns a new Graph with the same vertex/edge identities,
// endpoints, and directedness as g, reusing the same V and E payload
// instances (structural rebuild, payload-level aliasing preserved).
//
// Complexity: O(V + E).
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	out := New[V, E]()
	for _, id := range g.vorder {
		// AddVertex cannot fail here: ids are unique by construction of g.
		_ = out.AddVertex(g.vertices[id])
	}
	for _, id := range g.eorder {
		e := g.edges[id]
		_ = out.AddEdge(e.ID, e.From, e.To, e.Directed, e.Value)
	}
	return out
}
