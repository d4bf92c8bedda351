// File: attributes.go
// Role: Ordered string-keyed attribute map shared by every model.Element.
// Determinism:
//   - Names() and Each() iterate in insertion order, never map order.
// Concurrency:
//   - Attributes is not safe for concurrent mutation; callers serialize
//     writes externally, per the single-threaded-core contract.
// AI-HINT (file):
//   - Set overwrites in place, preserving the original insertion position.
//   - Clone deep-copies every Value via Value.Clone.

package attr

// Attributes is an insertion-ordered name -> Value map.
type Attributes struct {
	order []string
	data  map[string]Value
}

// NewAttributes returns an empty Attributes map ready for use.
func NewAttributes() *Attributes {
	return &Attributes{data: make(map[string]Value)}
}

// Get returns the Value stored under name and true, or the zero Value and
// false if name is unset.
func (a *Attributes) Get(name string) (Value, bool) {
	if a == nil {
		return Value{}, false
	}
	v, ok := a.data[name]
	return v, ok
}

// Set stores v under name, preserving name's original position in Names()
// if it was already present, and appending it otherwise.
func (a *Attributes) Set(name string, v Value) {
	if _, exists := a.data[name]; !exists {
		a.order = append(a.order, name)
	}
	a.data[name] = v
}

// Delete removes name, if present, and its slot in iteration order.
func (a *Attributes) Delete(name string) {
	if _, exists := a.data[name]; !exists {
		return
	}
	delete(a.data, name)
	for i, n := range a.order {
		if n == name {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Names returns attribute names in insertion order.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the number of attributes stored.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.order)
}

// Each calls fn once per attribute, in insertion order, stopping early if
// fn returns false.
func (a *Attributes) Each(fn func(name string, v Value) bool) {
	if a == nil {
		return
	}
	for _, name := range a.order {
		if !fn(name, a.data[name]) {
			return
		}
	}
}

// Clone returns a deep, independent copy of a: every Value is cloned and
// insertion order is preserved. Calling Clone on a nil *Attributes returns
// a fresh empty map, matching "attributes are inherited on copy" even for
// elements constructed without one.
func (a *Attributes) Clone() *Attributes {
	out := NewAttributes()
	if a == nil {
		return out
	}
	for _, name := range a.order {
		out.order = append(out.order, name)
		out.data[name] = a.data[name].Clone()
	}
	return out
}

// Equal reports whether a and o carry the same names mapped to Equal
// values, irrespective of insertion order.
func (a *Attributes) Equal(o *Attributes) bool {
	an, on := a.Len(), o.Len()
	if an != on {
		return false
	}
	eq := true
	a.Each(func(name string, v Value) bool {
		ov, ok := o.Get(name)
		if !ok || !v.Equal(ov) {
			eq = false
			return false
		}
		return true
	})
	return eq
}
