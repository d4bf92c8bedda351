// File: types.go
// Role: Tagged-value sum type for attribute values (Kind, Value, constructors).
// Determinism:
//   - Value is comparable only through Equal; zero Value is KindString("").
// Concurrency:
//   - Value is immutable after construction; safe to share across goroutines.
// AI-HINT (file):
//   - Use the NewX constructors, never build Value{} by hand outside this package.
//   - Collection values MUST be homogeneous; NewCollection enforces it at construction.

package attr

import "fmt"

// Kind discriminates the variant carried by a Value.
type Kind int

const (
	// KindString carries a UTF-8 string payload.
	KindString Kind = iota
	// KindInt carries a signed 64-bit integer payload.
	KindInt
	// KindFloat carries a 64-bit floating point payload.
	KindFloat
	// KindBool carries a boolean payload.
	KindBool
	// KindBlob carries an opaque, serializable byte payload.
	KindBlob
	// KindParameter carries a typed Parameter (Range, Select, UID).
	KindParameter
	// KindCollection carries a homogeneous slice of Value.
	KindCollection
)

// String renders the Kind as its wire-format-adjacent name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "String"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	case KindBool:
		return "Bool"
	case KindBlob:
		return "Blob"
	case KindParameter:
		return "Parameter"
	case KindCollection:
		return "Collection"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a finite-kind tagged union for attribute payloads.
//
// Only the field matching Kind is meaningful; all others are zero. Values
// are constructed exclusively through the NewX functions below so that
// Kind and payload can never disagree.
type Value struct {
	kind  Kind
	str   string
	i64   int64
	f64   float64
	b     bool
	blob  []byte
	param Parameter
	items []Value
	// elemKind records the Kind of items when kind == KindCollection, so an
	// empty collection still reports what it is a collection of.
	elemKind Kind
}

// Kind reports the variant carried by v.
func (v Value) Kind() Kind { return v.kind }

// NewString constructs a KindString Value.
func NewString(s string) Value { return Value{kind: KindString, str: s} }

// NewInt constructs a KindInt Value.
func NewInt(i int64) Value { return Value{kind: KindInt, i64: i} }

// NewFloat constructs a KindFloat Value.
func NewFloat(f float64) Value { return Value{kind: KindFloat, f64: f} }

// NewBool constructs a KindBool Value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewBlob constructs a KindBlob Value. The byte slice is not copied; callers
// must treat blobs as immutable once wrapped.
func NewBlob(raw []byte) Value { return Value{kind: KindBlob, blob: raw} }

// NewParameter constructs a KindParameter Value wrapping p.
func NewParameter(p Parameter) Value { return Value{kind: KindParameter, param: p} }

// NewCollection constructs a KindCollection Value of the given element kind.
//
// Every item in items must report elemKind via Kind(), or ErrMixedCollection
// is returned. An empty items slice is allowed; elemKind is retained so the
// collection still knows what it is (empty) a collection of.
func NewCollection(elemKind Kind, items []Value) (Value, error) {
	for i, it := range items {
		if it.kind != elemKind {
			return Value{}, fmt.Errorf("attr: item %d has kind %s, want %s: %w", i, it.kind, elemKind, ErrMixedCollection)
		}
	}
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindCollection, items: cp, elemKind: elemKind}, nil
}

// MustCollection is NewCollection but panics on error; reserved for
// construction sites that already guarantee homogeneity (e.g. xmlio readers
// that validated each child against the declared element kind).
func MustCollection(elemKind Kind, items []Value) Value {
	v, err := NewCollection(elemKind, items)
	if err != nil {
		panic(err)
	}
	return v
}

// AsString returns the string payload and true if v.Kind() == KindString.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// AsInt returns the int payload and true if v.Kind() == KindInt.
func (v Value) AsInt() (int64, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.i64, true
}

// AsFloat returns the float payload and true if v.Kind() == KindFloat.
func (v Value) AsFloat() (float64, bool) {
	if v.kind != KindFloat {
		return 0, false
	}
	return v.f64, true
}

// AsBool returns the bool payload and true if v.Kind() == KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// AsBlob returns the blob payload and true if v.Kind() == KindBlob.
func (v Value) AsBlob() ([]byte, bool) {
	if v.kind != KindBlob {
		return nil, false
	}
	return v.blob, true
}

// AsParameter returns the Parameter payload and true if v.Kind() == KindParameter.
func (v Value) AsParameter() (Parameter, bool) {
	if v.kind != KindParameter {
		return nil, false
	}
	return v.param, true
}

// AsCollection returns the item slice and true if v.Kind() == KindCollection.
// The returned slice is a defensive copy.
func (v Value) AsCollection() ([]Value, bool) {
	if v.kind != KindCollection {
		return nil, false
	}
	cp := make([]Value, len(v.items))
	copy(cp, v.items)
	return cp, true
}

// ElemKind returns the declared element kind of a KindCollection Value.
func (v Value) ElemKind() Kind { return v.elemKind }

// Equal reports structural equality between v and o, recursing into
// collections and delegating to Parameter.Equal for KindParameter.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindString:
		return v.str == o.str
	case KindInt:
		return v.i64 == o.i64
	case KindFloat:
		return v.f64 == o.f64
	case KindBool:
		return v.b == o.b
	case KindBlob:
		return string(v.blob) == string(o.blob)
	case KindParameter:
		if v.param == nil || o.param == nil {
			return v.param == o.param
		}
		return v.param.Equal(o.param)
	case KindCollection:
		if v.elemKind != o.elemKind || len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of v. Blob payloads and collection items are
// copied; Parameter payloads are cloned via Parameter.Clone.
func (v Value) Clone() Value {
	out := v
	if v.kind == KindBlob {
		out.blob = append([]byte(nil), v.blob...)
	}
	if v.kind == KindParameter && v.param != nil {
		out.param = v.param.Clone()
	}
	if v.kind == KindCollection {
		out.items = make([]Value, len(v.items))
		for i, it := range v.items {
			out.items[i] = it.Clone()
		}
	}
	return out
}
