package xmlio_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendse/opendse/attr"
	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/xmlio"
)

// buildS1 mirrors the §8 S1 minimal-round-trip scenario.
func buildS1(t *testing.T) *model.Specification {
	t.Helper()
	spec := model.NewSpecification("s1")

	r1 := model.NewResource("r1")
	r2 := model.NewResource("r2")
	can := model.NewResource("can")
	require.NoError(t, spec.Architecture.AddResource(r1))
	require.NoError(t, spec.Architecture.AddResource(r2))
	require.NoError(t, spec.Architecture.AddResource(can))
	l1 := model.NewLink("l1", false)
	l2 := model.NewLink("l2", false)
	require.NoError(t, spec.Architecture.AddLink("l1", "r1", "can", l1))
	require.NoError(t, spec.Architecture.AddLink("l2", "r2", "can", l2))

	t1 := model.NewTask("t1")
	t2 := model.NewCommunication("t2")
	t3 := model.NewTask("t3")
	require.NoError(t, spec.Application.AddTask(t1))
	require.NoError(t, spec.Application.AddTask(t2))
	require.NoError(t, spec.Application.AddTask(t3))
	require.NoError(t, spec.Application.AddDependency("t1->t2", "t1", "t2", model.NewDependency("t1->t2")))
	require.NoError(t, spec.Application.AddDependency("t2->t3", "t2", "t3", model.NewDependency("t2->t3")))

	require.NoError(t, spec.AddMapping(model.NewMapping("m1", t1, r1)))
	require.NoError(t, spec.AddMapping(model.NewMapping("m2", t3, r2)))

	routing := model.NewRouting()
	require.NoError(t, routing.AddResource(r1))
	require.NoError(t, routing.AddResource(can))
	require.NoError(t, routing.AddResource(r2))
	require.NoError(t, routing.AddLink("l1", "r1", "can", true, l1))
	require.NoError(t, routing.AddLink("l2", "can", "r2", true, l2))
	spec.Routings.Set("t2", routing)

	return spec
}

func TestRoundTrip_S1(t *testing.T) {
	spec := buildS1(t)

	var buf bytes.Buffer
	require.NoError(t, xmlio.Write(&buf, spec))

	got, err := xmlio.Read(&buf)
	require.NoError(t, err)

	require.ElementsMatch(t, spec.Architecture.ResourceIDs(), got.Architecture.ResourceIDs())
	require.ElementsMatch(t, spec.Architecture.LinkIDs(), got.Architecture.LinkIDs())
	require.ElementsMatch(t, spec.Application.Nodes(), got.Application.Nodes())
	require.Equal(t, spec.Mappings.Len(), got.Mappings.Len())
	require.Equal(t, spec.Routings.Len(), got.Routings.Len())

	for _, id := range spec.Architecture.LinkIDs() {
		wantEdge, err := spec.Architecture.Link(id)
		require.NoError(t, err)
		gotEdge, err := got.Architecture.Link(id)
		require.NoError(t, err)
		require.Equal(t, wantEdge.From, gotEdge.From)
		require.Equal(t, wantEdge.To, gotEdge.To)
		require.Equal(t, wantEdge.Directed, gotEdge.Directed)
	}

	gotM1, err := got.Mappings.Get("m1")
	require.NoError(t, err)
	require.Equal(t, "t1", gotM1.Source.ID())
	require.Equal(t, "r1", gotM1.Target.ID())

	gotRouting, err := got.Routings.Get("t2")
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"r1", "can", "r2"}, gotRouting.Graph().VertexIDs())
}

func TestRoundTrip_AttributesAndParameter(t *testing.T) {
	spec := model.NewSpecification("spec1")
	r1 := model.NewResource("r1")
	require.NoError(t, spec.Architecture.AddResource(r1))

	rangeParam, err := attr.ParseRange("3.0 0.0 10.0 0.5")
	require.NoError(t, err)
	r1.Attributes().Set("frequency", attr.NewParameter(rangeParam))
	r1.Attributes().Set("label", attr.NewString("core0"))
	r1.Attributes().Set("count", attr.NewInt(7))
	r1.Attributes().Set("active", attr.NewBool(true))

	coll, err := attr.NewCollection(attr.KindInt, []attr.Value{attr.NewInt(1), attr.NewInt(2), attr.NewInt(3)})
	require.NoError(t, err)
	r1.Attributes().Set("ports", coll)

	var buf bytes.Buffer
	require.NoError(t, xmlio.Write(&buf, spec))

	got, err := xmlio.Read(&buf)
	require.NoError(t, err)

	gotR1, err := got.Architecture.Resource("r1")
	require.NoError(t, err)

	label, ok := gotR1.Attributes().Get("label")
	require.True(t, ok)
	s, _ := label.AsString()
	require.Equal(t, "core0", s)

	count, ok := gotR1.Attributes().Get("count")
	require.True(t, ok)
	i, _ := count.AsInt()
	require.EqualValues(t, 7, i)

	active, ok := gotR1.Attributes().Get("active")
	require.True(t, ok)
	b, _ := active.AsBool()
	require.True(t, b)

	freq, ok := gotR1.Attributes().Get("frequency")
	require.True(t, ok)
	p, ok := freq.AsParameter()
	require.True(t, ok)
	rp, ok := p.(attr.RangeParameter)
	require.True(t, ok)
	require.Equal(t, 3.0, rp.Default)
	require.Equal(t, 0.0, rp.Lower)
	require.Equal(t, 10.0, rp.Upper)
	require.Equal(t, 0.5, rp.Granularity)

	ports, ok := gotR1.Attributes().Get("ports")
	require.True(t, ok)
	items, ok := ports.AsCollection()
	require.True(t, ok)
	require.Len(t, items, 3)
}
