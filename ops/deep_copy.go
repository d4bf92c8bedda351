// File: deep_copy.go
// Role: Deep copy (spec.md §4.D, §8 invariant 2).
// AI-HINT (file):
//   - Routing vertices/edges are looked up in the freshly copied
//     Architecture, never re-copied a second time, per spec.md §4.D
//     "build a sub-architecture whose vertices are looked up in the new
//     architecture (not re-copied)".

package ops

import "github.com/opendse/opendse/model"

// DeepCopy returns an isomorphic Specification in which every element is a
// freshly constructed instance; no element is shared with spec.
func DeepCopy(spec *model.Specification) *model.Specification {
	out := model.NewSpecification(spec.ID)
	out.Attrs = spec.Attrs.Clone()

	nodes := copyApplication(spec, out)
	resources, links := copyArchitecture(spec, out)
	copyMappings(spec, out, nodes, resources)
	copyRoutings(spec, out, resources, links)

	return out
}

func copyApplication(spec, out *model.Specification) map[string]model.AppNode {
	nodes := make(map[string]model.AppNode, len(spec.Application.Nodes()))
	for _, id := range spec.Application.Nodes() {
		old, err := spec.Application.Node(id)
		if err != nil {
			continue
		}
		fresh := old.Copy().(model.AppNode)
		_ = out.Application.AddTask(fresh)
		nodes[id] = fresh
	}

	g := spec.Application.Graph()
	for _, id := range g.EdgeIDs() {
		e, err := g.Edge(id)
		if err != nil {
			continue
		}
		fresh := e.Value.Copy().(*model.Dependency)
		_ = out.Application.AddDependency(e.ID, e.From, e.To, fresh)
	}

	for _, anchor := range spec.Application.FunctionAnchors() {
		attrs, ok := spec.Application.FunctionAttributesByAnchor(anchor)
		if ok {
			out.Application.SetFunctionAttributes(anchor, attrs.Clone())
		}
	}

	return nodes
}

func copyArchitecture(spec, out *model.Specification) (map[string]*model.Resource, map[string]*model.Link) {
	resources := make(map[string]*model.Resource, len(spec.Architecture.ResourceIDs()))
	for _, id := range spec.Architecture.ResourceIDs() {
		old, err := spec.Architecture.Resource(id)
		if err != nil {
			continue
		}
		fresh := old.Copy().(*model.Resource)
		_ = out.Architecture.AddResource(fresh)
		resources[id] = fresh
	}

	links := make(map[string]*model.Link)
	g := spec.Architecture.Graph()
	for _, id := range g.EdgeIDs() {
		e, err := g.Edge(id)
		if err != nil {
			continue
		}
		fresh := e.Value.Copy().(*model.Link)
		_ = out.Architecture.AddLink(e.ID, e.From, e.To, fresh)
		links[id] = fresh
	}

	return resources, links
}

func copyMappings(spec, out *model.Specification, nodes map[string]model.AppNode, resources map[string]*model.Resource) {
	for _, m := range spec.Mappings.All() {
		srcNode, ok := nodes[m.Source.ID()]
		if !ok {
			continue
		}
		src, ok := srcNode.(*model.Task)
		if !ok {
			continue
		}
		tgt, ok := resources[m.Target.ID()]
		if !ok {
			continue
		}
		_ = out.AddMapping(m.Rebind(src, tgt))
	}
}

func copyRoutings(spec, out *model.Specification, resources map[string]*model.Resource, links map[string]*model.Link) {
	for _, cid := range spec.Routings.CommunicationIDs() {
		old, err := spec.Routings.Get(cid)
		if err != nil {
			continue
		}
		fresh := model.NewRouting()
		g := old.Graph()
		for _, vid := range g.VertexIDs() {
			if res, ok := resources[vid]; ok {
				_ = fresh.AddResource(res)
			}
		}
		for _, eid := range g.EdgeIDs() {
			e, eerr := g.Edge(eid)
			if eerr != nil {
				continue
			}
			link, ok := links[eid]
			if !ok {
				continue
			}
			_ = fresh.AddLink(e.ID, e.From, e.To, e.Directed, link)
		}
		out.Routings.Set(cid, fresh)
	}
}
