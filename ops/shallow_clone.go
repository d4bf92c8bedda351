// File: shallow_clone.go
// Role: Shallow clone (spec.md §4.D, §8 invariant 3).

package ops

import "github.com/opendse/opendse/model"

// ShallowClone returns a Specification with freshly rebuilt Application,
// Architecture, Mappings, and Routings structure, but every element
// instance (task, resource, link, dependency, mapping, routing) is the
// SAME instance as in spec: identity is preserved.
func ShallowClone(spec *model.Specification) *model.Specification {
	out := model.NewSpecification(spec.ID)
	out.Attrs = spec.Attrs

	for _, id := range spec.Application.Nodes() {
		node, err := spec.Application.Node(id)
		if err != nil {
			continue
		}
		_ = out.Application.AddTask(node)
	}
	appGraph := spec.Application.Graph()
	for _, id := range appGraph.EdgeIDs() {
		e, err := appGraph.Edge(id)
		if err != nil {
			continue
		}
		_ = out.Application.AddDependency(e.ID, e.From, e.To, e.Value)
	}
	for _, anchor := range spec.Application.FunctionAnchors() {
		if attrs, ok := spec.Application.FunctionAttributesByAnchor(anchor); ok {
			out.Application.SetFunctionAttributes(anchor, attrs)
		}
	}

	for _, id := range spec.Architecture.ResourceIDs() {
		res, err := spec.Architecture.Resource(id)
		if err != nil {
			continue
		}
		_ = out.Architecture.AddResource(res)
	}
	archGraph := spec.Architecture.Graph()
	for _, id := range archGraph.EdgeIDs() {
		e, err := archGraph.Edge(id)
		if err != nil {
			continue
		}
		_ = out.Architecture.AddLink(e.ID, e.From, e.To, e.Value)
	}

	for _, m := range spec.Mappings.All() {
		_ = out.Mappings.Add(m)
	}

	for _, cid := range spec.Routings.CommunicationIDs() {
		routing, err := spec.Routings.Get(cid)
		if err != nil {
			continue
		}
		out.Routings.Set(cid, routing)
	}

	return out
}
