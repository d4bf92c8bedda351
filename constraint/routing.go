// File: routing.go
// Role: Abstract routing encoder: one-direction, cycle-break, and
//       hierarchy constraint generators over a single communication's
//       Routing (spec.md §4.G.1-3).
// AI-HINT (file):
//   - Grounded on model/application.go's three-color DFS for the shape of
//     a level-based acyclicity argument, adapted here from a yes/no check
//     into an order-encoded Boolean constraint set a SAT/PB solver can
//     enforce directly, since the solver — not this package — decides
//     which edges are actually used.

package constraint

import (
	"fmt"

	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

// routingEdge is a resolved view of one routing graph edge, independent of
// which orientation label ("from->to" vs "to->from") the caller cares
// about.
type routingEdge struct {
	id       string
	from, to string
	directed bool
}

func routingEdges(routing *model.Routing) ([]routingEdge, error) {
	g := routing.Graph()
	out := make([]routingEdge, 0, g.EdgeCount())
	for _, id := range g.EdgeIDs() {
		e, err := g.Edge(id)
		if err != nil {
			return nil, err
		}
		out = append(out, routingEdge{id: id, from: e.From, to: e.To, directed: e.Directed})
	}
	return out, nil
}

// OneDirection returns, for each undirected routing link, a constraint
// asserting at most one of its two directed incarnations is used
// (spec.md §4.G.1).
func OneDirection(in *variable.Interner, communicationID string, routing *model.Routing) ([]*PB, error) {
	edges, err := routingEdges(routing)
	if err != nil {
		return nil, err
	}
	var out []*PB
	for _, e := range edges {
		if e.directed {
			continue
		}
		fwd := in.P(variable.LinkDirection(communicationID, e.id, e.from, e.to))
		bwd := in.P(variable.LinkDirection(communicationID, e.id, e.to, e.from))
		out = append(out, AtMostOne(fmt.Sprintf("onedir[%s.%s]", communicationID, e.id), fwd, bwd))
	}
	return out, nil
}

// directedIncarnations returns every (linkID, from, to) orientation a
// routing edge may be used in: one for a directed link, two for undirected.
func directedIncarnations(edges []routingEdge) []routingEdge {
	out := make([]routingEdge, 0, len(edges))
	for _, e := range edges {
		out = append(out, e)
		if !e.directed {
			out = append(out, routingEdge{id: e.id, from: e.to, to: e.from, directed: e.directed})
		}
	}
	return out
}

// CycleBreak returns the order-encoded acyclicity constraints for the
// directed subgraph the solver selects: per-resource level variables with
// edge-implication used(u->v) => lvl(u) < lvl(v) (spec.md §4.G.2). maxLevel
// bounds the level order encoding; the routing's own vertex count is a safe
// choice since no acyclic path can exceed it.
func CycleBreak(in *variable.Interner, communicationID string, routing *model.Routing) ([]*PB, error) {
	edges, err := routingEdges(routing)
	if err != nil {
		return nil, err
	}
	maxLevel := routing.Graph().VertexCount()
	if maxLevel < 1 {
		maxLevel = 1
	}

	var out []*PB
	// Order-encoding consistency: lvl(r, k) => lvl(r, k-1) for every resource,
	// and every resource is at least on level 0.
	for _, rid := range routing.Graph().VertexIDs() {
		out = append(out, New(fmt.Sprintf("lvlbase[%s.%s]", communicationID, rid), OpGE, 1,
			Lit(1, in.P(variable.LevelAtLeast(communicationID, rid, 0)))))
		for k := 1; k < maxLevel; k++ {
			hi := in.P(variable.LevelAtLeast(communicationID, rid, k))
			lo := in.P(variable.LevelAtLeast(communicationID, rid, k-1))
			out = append(out, Implies(fmt.Sprintf("lvlorder[%s.%s.%d]", communicationID, rid, k), hi, lo))
		}
	}

	// used(u->v) => lvl(u) < lvl(v), encoded as used => NOT(lvl(u)>=maxLevel-1)
	// together with a per-k "used implies v is one level ahead of u" chain:
	// used(u->v) => lvl(v, k+1) whenever lvl(u, k) holds, for k in
	// [0, maxLevel-2].
	for _, e := range directedIncarnations(edges) {
		used := in.P(variable.LinkDirection(communicationID, e.id, e.from, e.to))
		// used => NOT lvl(u, maxLevel-1): Σ -used -lvlTop >= -1
		lvlTop := in.P(variable.LevelAtLeast(communicationID, e.from, maxLevel-1))
		out = append(out, New(
			fmt.Sprintf("cyclebreak[%s.%s.top]", communicationID, e.id),
			OpGE, -1,
			Lit(-1, used), Lit(-1, lvlTop),
		))
		for k := 0; k < maxLevel-1; k++ {
			lvlUK := in.P(variable.LevelAtLeast(communicationID, e.from, k))
			lvlVK1 := in.P(variable.LevelAtLeast(communicationID, e.to, k+1))
			// used AND lvl(u,k) => lvl(v,k+1): Σ -used -lvlUK +lvlVK1 >= -1
			out = append(out, New(
				fmt.Sprintf("cyclebreak[%s.%s.%d]", communicationID, e.id, k),
				OpGE, -1,
				Lit(-1, used), Lit(-1, lvlUK), Lit(1, lvlVK1),
			))
		}
	}
	return out, nil
}

// Hierarchy returns the constraints tying edge-used, vertex-used, and
// T(communicationID) together (spec.md §4.G.3): an edge is used iff at
// least one flow traverses it, a vertex is used iff incident to a used
// edge, and T(c) is active iff any routing vertex is used.
func Hierarchy(in *variable.Interner, communicationID string, routing *model.Routing, flowLinkUsage map[string][]variable.Literal) ([]*PB, error) {
	edges, err := routingEdges(routing)
	if err != nil {
		return nil, err
	}

	var out []*PB
	incident := make(map[string][]variable.Literal, routing.Graph().VertexCount())

	// Group the directed incarnations by link, so an undirected link is used
	// iff either of its two orientations is.
	dirLits := make(map[string][]variable.Literal, len(edges))
	for _, e := range directedIncarnations(edges) {
		dirLits[e.id] = append(dirLits[e.id], in.P(variable.LinkDirection(communicationID, e.id, e.from, e.to)))
	}

	for _, e := range edges {
		edgeUsed := in.P(variable.EdgeUsed(communicationID, e.id))
		lits := append(append([]variable.Literal(nil), flowLinkUsage[e.id]...), dirLits[e.id]...)
		out = append(out, IffOr(fmt.Sprintf("edgeused[%s.%s]", communicationID, e.id), edgeUsed, lits...)...)
		incident[e.from] = append(incident[e.from], edgeUsed)
		incident[e.to] = append(incident[e.to], edgeUsed)
	}

	var allVertexUsed []variable.Literal
	for _, rid := range routing.Graph().VertexIDs() {
		vertexUsed := in.P(variable.VertexUsed(communicationID, rid))
		lits := incident[rid]
		if len(lits) == 0 {
			// Isolated vertex: vertex-used is unconditionally false.
			out = append(out, Zero(fmt.Sprintf("vertexused[%s.%s]=0", communicationID, rid), vertexUsed))
			continue
		}
		out = append(out, IffOr(fmt.Sprintf("vertexused[%s.%s]", communicationID, rid), vertexUsed, lits...)...)
		allVertexUsed = append(allVertexUsed, vertexUsed)
	}

	if len(allVertexUsed) > 0 {
		active := in.P(variable.T(communicationID))
		out = append(out, IffOr(fmt.Sprintf("active[%s]", communicationID), active, allVertexUsed...)...)
	}
	return out, nil
}
