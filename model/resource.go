// File: resource.go
// Role: Resource architecture vertex.

package model

// ArchNode is the sealed interface satisfied by architecture vertices.
// Today the only implementation is *Resource. The Architecture and Routing
// graphs are typed on *Resource directly (graph.Graph[*Resource, *Link]),
// not on ArchNode.
type ArchNode interface {
	Element
	isArchNode()
}

// Resource represents a processing/communication resource vertex in the
// Architecture graph.
type Resource struct {
	base
}

// NewResource returns a Resource with the given ID and an empty attribute map.
func NewResource(id string) *Resource { return &Resource{newBase(id)} }

// Kind reports KindResource.
func (r *Resource) Kind() ElementKind { return KindResource }

// Copy returns a new Resource with the same ID and a deep copy of attributes.
func (r *Resource) Copy() Element {
	return &Resource{base{id: r.id, attrs: r.attrs.Clone()}}
}

func (r *Resource) isArchNode() {}

// ProxyID returns the identifier of the resource this one proxies for, or
// "" if it carries no "proxyId" attribute. Used by the end-node and proxy
// constraint generators (spec.md §4.G.4-5).
func (r *Resource) ProxyID() string {
	v, ok := r.Attributes().Get("proxyId")
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return s
}
