package constraint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opendse/opendse/constraint"
	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

// buildS1 mirrors the §8 S1 minimal scenario used across packages.
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

func TestAtMostOne_ShapesSumLEOne(t *testing.T) {
	in := variable.NewInterner()
	a := in.P(variable.T("t1"))
	b := in.P(variable.T("t2"))
	pb := constraint.AtMostOne("x", a, b)
	require.Equal(t, constraint.OpLE, pb.Op)
	require.Equal(t, 1, pb.K)
	require.Len(t, pb.Terms, 2)
}

func TestFlows_S1_OnePair(t *testing.T) {
	spec := buildS1(t)
	flows, err := constraint.Flows(spec.Application, "t2")
	require.NoError(t, err)
	require.Len(t, flows, 1)
	require.Equal(t, variable.Flow{Predecessor: "t1", Communication: "t2", Successor: "t3"}, flows[0])
}

func TestOneDirection_UndecidedRoutingLinksGetOneConstraintEach(t *testing.T) {
	// Unlike buildS1 (a fully resolved routing with directed links, the
	// shape persisted on the wire per §8 S1), a pre-solve routing template
	// still carries its links undirected: the solver's LinkDirection
	// variables are exactly what decides the orientation.
	spec := buildS1(t)
	r1, err := spec.Architecture.Resource("r1")
	require.NoError(t, err)
	can, err := spec.Architecture.Resource("can")
	require.NoError(t, err)
	r2, err := spec.Architecture.Resource("r2")
	require.NoError(t, err)
	l1, err := spec.Architecture.Link("l1")
	require.NoError(t, err)
	l2, err := spec.Architecture.Link("l2")
	require.NoError(t, err)

	routing := model.NewRouting()
	require.NoError(t, routing.AddResource(r1))
	require.NoError(t, routing.AddResource(can))
	require.NoError(t, routing.AddResource(r2))
	require.NoError(t, routing.AddLink("l1", "r1", "can", false, l1.Value))
	require.NoError(t, routing.AddLink("l2", "can", "r2", false, l2.Value))
	spec.Routings.Set("t2", routing)

	in := variable.NewInterner()
	cs, err := constraint.OneDirection(in, "t2", routing)
	require.NoError(t, err)
	require.Len(t, cs, 2) // l1 and l2, both left undecided
}

func TestOneDirection_ResolvedRoutingHasNoDecisionLeft(t *testing.T) {
	spec := buildS1(t)
	in := variable.NewInterner()
	routing, err := spec.Routings.Get("t2")
	require.NoError(t, err)

	cs, err := constraint.OneDirection(in, "t2", routing)
	require.NoError(t, err)
	require.Empty(t, cs)
}

func TestEndNode_S4_SingleMappingProducesAndGate(t *testing.T) {
	spec := buildS1(t)
	in := variable.NewInterner()
	routing, err := spec.Routings.Get("t2")
	require.NoError(t, err)

	f := variable.Flow{Predecessor: "t1", Communication: "t2", Successor: "t3"}
	cs, err := constraint.EndNode(in, spec.Mappings, routing, f, true)
	require.NoError(t, err)
	// r1 has exactly one candidate mapping (m1): AND-gate of 3 literals
	// produces len(lits)+1 constraints; r2 and "can" have zero candidates
	// on the source side, forced to zero.
	require.NotEmpty(t, cs)
}

func TestEndNode_S5_DuplicateMappingRaisesInvariantViolation(t *testing.T) {
	spec := buildS1(t)
	t1, err := spec.Application.Node("t1")
	require.NoError(t, err)
	r1, err := spec.Architecture.Resource("r1")
	require.NoError(t, err)
	require.NoError(t, spec.AddMapping(model.NewMapping("m1b", t1.(*model.Task), r1)))

	in := variable.NewInterner()
	routing, err := spec.Routings.Get("t2")
	require.NoError(t, err)

	f := variable.Flow{Predecessor: "t1", Communication: "t2", Successor: "t3"}
	_, err = constraint.EndNode(in, spec.Mappings, routing, f, true)
	require.True(t, errors.Is(err, constraint.ErrInvariantViolation))
}

func TestAssembleRouting_S1_NoError(t *testing.T) {
	spec := buildS1(t)
	in := variable.NewInterner()
	cs, err := constraint.AssembleRouting(in, spec, "t2", nil)
	require.NoError(t, err)
	require.NotEmpty(t, cs)
}

func TestAssembleRouting_NoRoutingIsNoop(t *testing.T) {
	spec := buildS1(t)
	in := variable.NewInterner()
	cs, err := constraint.AssembleRouting(in, spec, "nonexistent", nil)
	require.NoError(t, err)
	require.Nil(t, cs)
}
