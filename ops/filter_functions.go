// File: filter_functions.go
// Role: filter_by_functions (spec.md §4.D, §8 invariant 5).

package ops

import "github.com/opendse/opendse/model"

// FilterByFunctions mutates spec in place, keeping only application nodes
// whose ID is in keep (the union of the selected Functions' members).
// Mappings whose source is removed are dropped, as are routings for
// removed communications. Architecture resources are then trimmed to
// those still reachable as a surviving mapping's target or a surviving
// routing's vertex, and every surviving routing is pruned to match.
func FilterByFunctions(spec *model.Specification, keep map[string]bool) {
	for _, id := range spec.Application.Nodes() {
		if !keep[id] {
			_ = spec.Application.Graph().RemoveVertex(id)
		}
	}

	for _, m := range spec.Mappings.All() {
		if _, err := spec.Application.Node(m.Source.ID()); err != nil {
			spec.Mappings.Remove(m.ID())
		}
	}

	for _, cid := range spec.Routings.CommunicationIDs() {
		if _, err := spec.Application.Node(cid); err != nil {
			spec.Routings.Remove(cid)
		}
	}

	keepResources := make(map[string]bool)
	for _, m := range spec.Mappings.All() {
		keepResources[m.Target.ID()] = true
	}
	for _, cid := range spec.Routings.CommunicationIDs() {
		routing, err := spec.Routings.Get(cid)
		if err != nil {
			continue
		}
		for _, rid := range routing.Graph().VertexIDs() {
			keepResources[rid] = true
		}
	}

	for _, rid := range spec.Architecture.ResourceIDs() {
		if !keepResources[rid] {
			_ = spec.Architecture.Graph().RemoveVertex(rid)
		}
	}

	for _, cid := range spec.Routings.CommunicationIDs() {
		routing, err := spec.Routings.Get(cid)
		if err != nil {
			continue
		}
		g := routing.Graph()
		for _, rid := range g.VertexIDs() {
			if _, err := spec.Architecture.Resource(rid); err != nil {
				_ = g.RemoveVertex(rid)
			}
		}
	}
}
