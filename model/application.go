// File: application.go
// Role: Application graph (Tasks/Communications + Dependencies), its
//       structural invariants, and Function derivation.
// Determinism:
//   - Functions() walks vertices in graph.VertexIDs() insertion order, so
//     component membership and member ordering are stable across calls.
//     Each Function's own ID is a fresh UUID (functions are recomputed on
//     demand and never persisted by ID), so only membership is stable.
// AI-HINT (file):
//   - Acyclicity (CheckAcyclic) is a three-color DFS, grounded on the
//     teacher's dfs/cycle.go walk but trimmed to a boolean+path report
//     since the encoder only needs the first violation, not every cycle.
//   - Functions() is a weakly-connected-components BFS, grounded on the
//     teacher's bfs/bfs.go walker shape (queue + visited set), adapted to
//     treat the Application graph as undirected for component purposes.

package model

import (
	"github.com/google/uuid"

	"github.com/opendse/opendse/attr"
	"github.com/opendse/opendse/graph"
)

// Application is the task/communication graph of a specification: what
// must be computed and how computation steps depend on one another.
type Application struct {
	g *graph.Graph[AppNode, *Dependency]

	// functionAttrs holds per-component attribute maps, keyed by the ID of
	// an "anchor" member task (spec.md §6 "<function anchor=taskId>").
	// Functions are recomputed on every Functions() call, so this is the
	// only persistent home for function-level attributes across a
	// read/write or filter cycle.
	functionAttrs map[string]*attr.Attributes
	functionOrder []string
}

// NewApplication returns an empty Application.
func NewApplication() *Application {
	return &Application{
		g:             graph.New[AppNode, *Dependency](),
		functionAttrs: make(map[string]*attr.Attributes),
	}
}

// SetFunctionAttributes attaches a attribute map to the function that
// contains anchorID, keyed by that anchor task's ID.
func (a *Application) SetFunctionAttributes(anchorID string, attrs *attr.Attributes) {
	if _, exists := a.functionAttrs[anchorID]; !exists {
		a.functionOrder = append(a.functionOrder, anchorID)
	}
	a.functionAttrs[anchorID] = attrs
}

// FunctionAnchors returns every anchor task ID with registered function
// attributes, in registration order.
func (a *Application) FunctionAnchors() []string {
	out := make([]string, len(a.functionOrder))
	copy(out, a.functionOrder)
	return out
}

// FunctionAttributesByAnchor returns the attribute map registered under
// anchorID, if any.
func (a *Application) FunctionAttributesByAnchor(anchorID string) (*attr.Attributes, bool) {
	attrs, ok := a.functionAttrs[anchorID]
	return attrs, ok
}

// AddTask inserts t as a vertex.
func (a *Application) AddTask(t AppNode) error { return a.g.AddVertex(t) }

// AddDependency inserts a directed edge from predecessor to successor.
// Dependencies are always directed per spec.md §3, so the edge is always
// added as directed; there is no way to add an undirected dependency.
func (a *Application) AddDependency(id, predecessor, successor string, d *Dependency) error {
	return a.g.AddEdge(id, predecessor, successor, true, d)
}

// Node returns the application vertex with the given ID.
func (a *Application) Node(id string) (AppNode, error) { return a.g.Vertex(id) }

// Nodes returns every application vertex ID in insertion order.
func (a *Application) Nodes() []string { return a.g.VertexIDs() }

// Graph exposes the underlying graph for ops/ and xmlio/ to traverse
// directly (edges, endpoints) without Application growing a pass-through
// method for every graph.Graph query.
func (a *Application) Graph() *graph.Graph[AppNode, *Dependency] { return a.g }

// FilterProcesses returns the IDs of every non-Communication vertex, in
// insertion order.
func (a *Application) FilterProcesses() []string {
	var out []string
	for _, id := range a.g.VertexIDs() {
		v, err := a.g.Vertex(id)
		if err == nil && !IsCommunication(v) {
			out = append(out, id)
		}
	}
	return out
}

// FilterCommunications returns the IDs of every Communication vertex, in
// insertion order.
func (a *Application) FilterCommunications() []string {
	var out []string
	for _, id := range a.g.VertexIDs() {
		v, err := a.g.Vertex(id)
		if err == nil && IsCommunication(v) {
			out = append(out, id)
		}
	}
	return out
}

// color marks DFS visitation state during acyclicity checking.
type color uint8

const (
	white color = iota // unvisited
	gray               // on the current recursion path
	black              // fully explored
)

// CheckAcyclic walks the Application as a directed graph and reports the
// first cycle found, if any. A nil path with ok==true means the graph is
// acyclic.
func (a *Application) CheckAcyclic() (ok bool, cyclePath []string, err error) {
	state := make(map[string]color, len(a.g.VertexIDs()))
	var path []string

	var visit func(id string) ([]string, error)
	visit = func(id string) ([]string, error) {
		state[id] = gray
		path = append(path, id)
		for _, eid := range a.g.OutEdges(id) {
			e, gerr := a.g.Edge(eid)
			if gerr != nil {
				return nil, gerr
			}
			next := e.To
			switch state[next] {
			case gray:
				// Found a back edge: extract the cycle from path.
				start := 0
				for i, n := range path {
					if n == next {
						start = i
						break
					}
				}
				cyc := append([]string{}, path[start:]...)
				cyc = append(cyc, next)
				return cyc, nil
			case white:
				if cyc, verr := visit(next); verr != nil || cyc != nil {
					return cyc, verr
				}
			}
		}
		path = path[:len(path)-1]
		state[id] = black
		return nil, nil
	}

	for _, id := range a.g.VertexIDs() {
		if state[id] == white {
			cyc, verr := visit(id)
			if verr != nil {
				return false, nil, verr
			}
			if cyc != nil {
				return false, cyc, nil
			}
		}
	}
	return true, nil, nil
}

// Functions partitions the Application into its weakly connected
// components, in discovery order, each returned as a Function whose ID is
// a fresh UUID.
func (a *Application) Functions() []*Function {
	visited := make(map[string]bool, len(a.g.VertexIDs()))
	var functions []*Function

	for _, root := range a.g.VertexIDs() {
		if visited[root] {
			continue
		}
		queue := []string{root}
		visited[root] = true
		var members []AppNode

		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			v, err := a.g.Vertex(id)
			if err != nil {
				continue
			}
			members = append(members, v)

			neighbors := append([]string{}, a.g.OutEdges(id)...)
			neighbors = append(neighbors, a.g.InEdges(id)...)
			for _, eid := range neighbors {
				e, eerr := a.g.Edge(eid)
				if eerr != nil {
					continue
				}
				other := e.To
				if other == id {
					other = e.From
				}
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}

		functions = append(functions, &Function{
			id:    uuid.NewString(),
			Nodes: members,
			Attrs: a.lookupFunctionAttrs(members),
		})
	}
	return functions
}

// lookupFunctionAttrs finds the registered function-attribute map anchored
// on any of members, returning an empty map if none was registered.
func (a *Application) lookupFunctionAttrs(members []AppNode) *attr.Attributes {
	for _, n := range members {
		if attrs, ok := a.functionAttrs[n.ID()]; ok {
			return attrs
		}
	}
	return attr.NewAttributes()
}
