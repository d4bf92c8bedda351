// File: encoder.go
// Role: Encoder façade (spec.md §4.H): walks a Specification, materializes
//       (T(c), flows, routings[c], mappingVars, applicationVars) for every
//       communication, and delegates to the routing-encoder assembly.
//       Also emits global mapping-exclusivity and task-activity
//       constraints.
// AI-HINT (file):
//   - Does not interpret the constraint set it returns (spec.md §4.G "The
//     encoder does not interpret the constraint set; it returns it to the
//     caller."); Result is a flat, solver-agnostic bag of PB constraints
//     plus the interner that names every variable inside them.

package encoder

import (
	"fmt"

	"github.com/opendse/opendse/constraint"
	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

// Result is the output of one Encode call: every pseudo-Boolean
// constraint generated, plus the interner that assigned them their
// literals (needed by any caller decoding a solver's answer back into
// domain terms).
type Result struct {
	Interner    *variable.Interner
	Constraints []*constraint.PB
}

// Options configures an Encode call. The zero value is a valid, minimal
// configuration (no extra per-communication constraints).
type Options struct {
	// Extras are invoked once per communication's routing assembly, in
	// addition to the built-in generators (spec.md §4.G.6).
	Extras []constraint.Extra
}

// Encode walks spec's application and emits the full pseudo-Boolean
// constraint system for it: per-communication routing assemblies plus
// global mapping-exclusivity and task-activity ties.
func Encode(spec *model.Specification, opts Options) (*Result, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("encoder: %w", err)
	}

	in := variable.NewInterner()
	var out []*constraint.PB

	for _, cid := range spec.Application.FilterCommunications() {
		cs, err := constraint.AssembleRouting(in, spec, cid, opts.Extras)
		if err != nil {
			return nil, fmt.Errorf("encoder: communication %q: %w", cid, err)
		}
		out = append(out, cs...)
	}

	out = append(out, mappingExclusivity(in, spec)...)
	out = append(out, taskActivity(in, spec)...)

	return &Result{Interner: in, Constraints: out}, nil
}

// mappingExclusivity returns, for each task, a constraint asserting at
// most one of its candidate mappings is selected: Σ M(m) <= 1.
func mappingExclusivity(in *variable.Interner, spec *model.Specification) []*constraint.PB {
	var out []*constraint.PB
	for _, taskID := range spec.Application.FilterProcesses() {
		mappings := spec.Mappings.ForTask(taskID)
		if len(mappings) == 0 {
			continue
		}
		lits := make([]variable.Literal, len(mappings))
		for i, m := range mappings {
			lits[i] = in.P(variable.M(m.ID()))
		}
		out = append(out, constraint.AtMostOne(fmt.Sprintf("mapex[%s]", taskID), lits...))
	}
	return out
}

// taskActivity returns, for each process task, a constraint tying T(task)
// to whether any of its mappings is selected: T(task) <=> OR(M(m) for m in
// mappings(task)). A task with zero candidate mappings is never active.
func taskActivity(in *variable.Interner, spec *model.Specification) []*constraint.PB {
	var out []*constraint.PB
	for _, taskID := range spec.Application.FilterProcesses() {
		mappings := spec.Mappings.ForTask(taskID)
		if len(mappings) == 0 {
			active := in.P(variable.T(taskID))
			out = append(out, constraint.Zero(fmt.Sprintf("taskact[%s]=0", taskID), active))
			continue
		}
		lits := make([]variable.Literal, len(mappings))
		for i, m := range mappings {
			lits[i] = in.P(variable.M(m.ID()))
		}
		active := in.P(variable.T(taskID))
		out = append(out, constraint.IffOr(fmt.Sprintf("taskact[%s]", taskID), active, lits...)...)
	}
	return out
}
