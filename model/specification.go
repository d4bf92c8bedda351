// File: specification.go
// Role: Specification aggregate (Application + Architecture + Mappings +
//       Routings + top-level Attributes) and the cross-reference
//       validation that ties them together.
// AI-HINT (file):
//   - AddMapping validates source/target membership but deliberately does
//     NOT enforce "at most one mapping per (task, resource) pair": per
//     spec.md §3 that invariant belongs to the routing encoder
//     (constraint.ErrInvariantViolation), since Mappings.Add alone cannot see
//     which mappings are ever selected together.

package model

import "github.com/opendse/opendse/attr"

// Specification is the complete DSE problem instance: what to compute
// (Application), what to compute it on (Architecture), where it may run
// (Mappings), how its messages may travel (Routings), plus any top-level
// metadata (Attributes).
type Specification struct {
	ID           string
	Application  *Application
	Architecture *Architecture
	Mappings     *Mappings
	Routings     *Routings
	Attrs        *attr.Attributes
}

// NewSpecification returns a Specification with empty Application,
// Architecture, Mappings, Routings, and Attributes.
func NewSpecification(id string) *Specification {
	return &Specification{
		ID:           id,
		Application:  NewApplication(),
		Architecture: NewArchitecture(),
		Mappings:     NewMappings(),
		Routings:     NewRoutings(),
		Attrs:        attr.NewAttributes(),
	}
}

// AddMapping validates that m.Source belongs to s.Application and
// m.Target belongs to s.Architecture, then adds it to s.Mappings.
func (s *Specification) AddMapping(m *Mapping) error {
	if m.Source == nil || m.Target == nil {
		return ErrDanglingReference
	}
	if _, err := s.Application.Node(m.Source.ID()); err != nil {
		return ErrDanglingReference
	}
	if _, err := s.Architecture.Resource(m.Target.ID()); err != nil {
		return ErrDanglingReference
	}
	return s.Mappings.Add(m)
}

// Validate checks the structural invariants spanning the whole
// specification: the Application must be acyclic, and every Mapping and
// Routing must reference elements that actually exist in Application and
// Architecture respectively.
func (s *Specification) Validate() error {
	ok, _, err := s.Application.CheckAcyclic()
	if err != nil {
		return err
	}
	if !ok {
		return ErrCyclicApplication
	}

	for _, m := range s.Mappings.All() {
		if m.Source == nil || m.Target == nil {
			return ErrDanglingReference
		}
		if _, err := s.Application.Node(m.Source.ID()); err != nil {
			return ErrDanglingReference
		}
		if _, err := s.Architecture.Resource(m.Target.ID()); err != nil {
			return ErrDanglingReference
		}
	}

	for _, cid := range s.Routings.CommunicationIDs() {
		if _, err := s.Application.Node(cid); err != nil {
			return ErrDanglingReference
		}
		routing, _ := s.Routings.Get(cid)
		for _, rid := range routing.Graph().VertexIDs() {
			if _, err := s.Architecture.Resource(rid); err != nil {
				return ErrDanglingReference
			}
		}
	}

	return nil
}
