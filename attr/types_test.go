package attr_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendse/opendse/attr"
)

func TestValue_ScalarRoundTrip(t *testing.T) {
	s := attr.NewString("r1")
	got, ok := s.AsString()
	require.True(t, ok)
	assert.Equal(t, "r1", got)
	assert.Equal(t, attr.KindString, s.Kind())

	i := attr.NewInt(42)
	gi, ok := i.AsInt()
	require.True(t, ok)
	assert.EqualValues(t, 42, gi)

	f := attr.NewFloat(3.5)
	gf, ok := f.AsFloat()
	require.True(t, ok)
	assert.Equal(t, 3.5, gf)

	b := attr.NewBool(true)
	gb, ok := b.AsBool()
	require.True(t, ok)
	assert.True(t, gb)
}

func TestValue_CollectionHomogeneity(t *testing.T) {
	items := []attr.Value{attr.NewInt(1), attr.NewInt(2), attr.NewInt(3)}
	coll, err := attr.NewCollection(attr.KindInt, items)
	require.NoError(t, err)
	out, ok := coll.AsCollection()
	require.True(t, ok)
	assert.Len(t, out, 3)

	_, err = attr.NewCollection(attr.KindInt, []attr.Value{attr.NewInt(1), attr.NewString("x")})
	assert.ErrorIs(t, err, attr.ErrMixedCollection)
}

func TestValue_EqualAndClone(t *testing.T) {
	a := attr.NewBlob([]byte{1, 2, 3})
	b := a.Clone()
	assert.True(t, a.Equal(b))

	blob, _ := b.AsBlob()
	blob[0] = 9
	assert.True(t, a.Equal(a))
	orig, _ := a.AsBlob()
	assert.Equal(t, byte(1), orig[0], "Clone must not alias the original blob backing array")
}

func TestAttributes_OrderPreserved(t *testing.T) {
	a := attr.NewAttributes()
	a.Set("z", attr.NewInt(1))
	a.Set("a", attr.NewInt(2))
	a.Set("m", attr.NewInt(3))
	assert.Equal(t, []string{"z", "a", "m"}, a.Names())

	// Overwriting an existing name keeps its original slot.
	a.Set("a", attr.NewInt(20))
	assert.Equal(t, []string{"z", "a", "m"}, a.Names())
	v, ok := a.Get("a")
	require.True(t, ok)
	iv, _ := v.AsInt()
	assert.EqualValues(t, 20, iv)
}

func TestAttributes_CloneIsIndependent(t *testing.T) {
	a := attr.NewAttributes()
	a.Set("k", attr.NewString("v"))
	clone := a.Clone()
	clone.Set("k", attr.NewString("changed"))
	clone.Set("extra", attr.NewInt(1))

	orig, _ := a.Get("k")
	s, _ := orig.AsString()
	assert.Equal(t, "v", s, "mutating the clone must not affect the original")
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestValue_CloneMatchesOriginalViaCmp(t *testing.T) {
	items := []attr.Value{attr.NewInt(1), attr.NewInt(2), attr.NewInt(3)}
	coll, err := attr.NewCollection(attr.KindInt, items)
	require.NoError(t, err)

	// cmp.Diff picks up Value's own Equal method rather than comparing
	// unexported fields directly, so this exercises the same equality
	// contract Attributes.Equal relies on, recursively over collection items.
	clone := coll.Clone()
	if diff := cmp.Diff(coll, clone); diff != "" {
		t.Fatalf("clone diverged from original (-want +got):\n%s", diff)
	}

	other, err := attr.NewCollection(attr.KindInt, []attr.Value{attr.NewInt(1), attr.NewInt(9), attr.NewInt(3)})
	require.NoError(t, err)
	if diff := cmp.Diff(coll, other); diff == "" {
		t.Fatal("expected a diff between collections with different elements")
	}
}

func TestAttributes_Equal(t *testing.T) {
	a := attr.NewAttributes()
	a.Set("x", attr.NewInt(1))
	b := attr.NewAttributes()
	b.Set("x", attr.NewInt(1))
	assert.True(t, a.Equal(b))

	b.Set("y", attr.NewInt(2))
	assert.False(t, a.Equal(b))
}
