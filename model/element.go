// File: element.go
// Role: Element interface and ElementKind tag shared by every specification
//       entity (Task, Communication, Resource, Link, Dependency, Mapping).
// Determinism:
//   - ElementKind values are stable; do not renumber (would break any
//     persisted diagnostics keyed on the numeric value).
// AI-HINT (file):
//   - Element.Copy() is the polymorphic-copy protocol from spec.md §9:
//     "copy(e) := new_of_same_concrete_kind(e)". Mapping is the one
//     exception (see mapping.go, Rebind).

package model

import "github.com/opendse/opendse/attr"

// ElementKind discriminates the concrete kind behind an Element value.
type ElementKind int

const (
	// KindTask tags a process (non-message) application vertex.
	KindTask ElementKind = iota
	// KindCommunication tags a message application vertex (a Task subtype).
	KindCommunication
	// KindResource tags an architecture vertex.
	KindResource
	// KindLink tags an architecture edge.
	KindLink
	// KindDependency tags an application edge.
	KindDependency
	// KindMapping tags a task-to-resource binding.
	KindMapping
)

// String renders the ElementKind using the names used in diagnostics and
// error messages throughout this module.
func (k ElementKind) String() string {
	switch k {
	case KindTask:
		return "Task"
	case KindCommunication:
		return "Communication"
	case KindResource:
		return "Resource"
	case KindLink:
		return "Link"
	case KindDependency:
		return "Dependency"
	case KindMapping:
		return "Mapping"
	default:
		return "Unknown"
	}
}

// Element is the capability shared by every identified, attributed entity
// in a Specification: identifier, attribute map, kind tag, and polymorphic
// copy.
type Element interface {
	// ID returns the element's identifier, unique within its containing
	// collection.
	ID() string
	// Kind reports the concrete kind behind the Element value.
	Kind() ElementKind
	// Attributes returns the element's attribute map. The returned pointer
	// is shared; callers mutate it directly to set/unset attributes.
	Attributes() *attr.Attributes
	// Copy returns a new element of the same concrete kind with the same
	// ID and a deep copy of the attribute map. Mapping.Copy performs a
	// shallow rebind onto its existing Source/Target; use Mapping.Rebind
	// to bind new endpoints.
	Copy() Element
}

// base is embedded by every Element implementation; it supplies ID and
// Attributes so concrete types only need to add Kind and Copy.
type base struct {
	id    string
	attrs *attr.Attributes
}

func newBase(id string) base {
	return base{id: id, attrs: attr.NewAttributes()}
}

// ID returns the element's identifier.
func (b *base) ID() string { return b.id }

// Attributes returns the shared, mutable attribute map.
func (b *base) Attributes() *attr.Attributes { return b.attrs }
