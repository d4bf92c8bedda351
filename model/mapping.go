// File: mapping.go
// Role: Mapping element (Task source -> Resource target binding) and the
//       Mappings collection.
// Determinism:
//   - Mappings.All() returns insertion order.
// AI-HINT (file):
//   - Mapping.Copy() is a shallow rebind onto the SAME Source/Target
//     pointers (used by ops.ShallowClone); ops.DeepCopy calls Rebind
//     explicitly with the copied specification's own Task/Resource
//     instances, per spec.md §9 "define Mapping.rebind(src, tgt) explicitly
//     rather than via reflection."

package model

// Mapping binds a Task source to a Resource target: a candidate placement
// of a task onto a resource. Multiple Mappings per task are allowed — they
// represent the search space explored by the encoder.
type Mapping struct {
	base
	Source *Task
	Target *Resource
}

// NewMapping returns a Mapping with the given ID, binding source to target.
// Neither pointer is copied; the Mapping shares identity with its endpoints
// (spec.md §3 "Ownership").
func NewMapping(id string, source *Task, target *Resource) *Mapping {
	return &Mapping{base: newBase(id), Source: source, Target: target}
}

// Kind reports KindMapping.
func (m *Mapping) Kind() ElementKind { return KindMapping }

// Copy returns a new Mapping with the same ID, attributes, and the SAME
// Source/Target pointers as m (shallow rebind). Use Rebind to point at
// fresh endpoint instances.
func (m *Mapping) Copy() Element {
	return m.Rebind(m.Source, m.Target)
}

// Rebind returns a new Mapping with the same ID and a deep copy of
// attributes, bound to the given source and target instead of m's own.
func (m *Mapping) Rebind(source *Task, target *Resource) *Mapping {
	return &Mapping{base: base{id: m.id, attrs: m.attrs.Clone()}, Source: source, Target: target}
}

// Mappings is an insertion-ordered collection of Mapping, keyed by
// Mapping.ID (unique per spec.md §3).
type Mappings struct {
	items map[string]*Mapping
	order []string
}

// NewMappings returns an empty Mappings collection.
func NewMappings() *Mappings {
	return &Mappings{items: make(map[string]*Mapping)}
}

// Add inserts m, returning ErrDuplicateID if m.ID() is already present.
func (ms *Mappings) Add(m *Mapping) error {
	if m.ID() == "" {
		return ErrEmptyID
	}
	if _, exists := ms.items[m.ID()]; exists {
		return ErrDuplicateID
	}
	ms.items[m.ID()] = m
	ms.order = append(ms.order, m.ID())
	return nil
}

// Remove deletes the mapping with the given ID, if present.
func (ms *Mappings) Remove(id string) {
	if _, ok := ms.items[id]; !ok {
		return
	}
	delete(ms.items, id)
	for i, n := range ms.order {
		if n == id {
			ms.order = append(ms.order[:i], ms.order[i+1:]...)
			break
		}
	}
}

// Get returns the mapping with the given ID, or ErrNotFound.
func (ms *Mappings) Get(id string) (*Mapping, error) {
	m, ok := ms.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m, nil
}

// All returns every mapping in insertion order.
func (ms *Mappings) All() []*Mapping {
	out := make([]*Mapping, len(ms.order))
	for i, id := range ms.order {
		out[i] = ms.items[id]
	}
	return out
}

// ForTask returns every mapping whose Source has the given task ID, in
// insertion order. Multiple mappings per task are expected (the search
// space); at most one per (task, resource) pair is enforced by the routing
// encoder, not here (spec.md §3).
func (ms *Mappings) ForTask(taskID string) []*Mapping {
	var out []*Mapping
	for _, id := range ms.order {
		m := ms.items[id]
		if m.Source != nil && m.Source.ID() == taskID {
			out = append(out, m)
		}
	}
	return out
}

// Len returns the number of mappings.
func (ms *Mappings) Len() int { return len(ms.order) }
