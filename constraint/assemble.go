// File: assemble.go
// Role: The abstract routing encoder (spec.md §4.G, composing 1-6 for a
//       single communication's routing).

package constraint

import (
	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

// AssembleRouting runs every routing constraint generator for
// communicationID's routing, in the order spec.md §4.G lists them
// (one-direction, cycle-break, hierarchy, end-node, proxy, extras), and
// returns their concatenated output. If communicationID has no routing
// (spec.Routings.Get returns ErrNotFound), it returns an empty result —
// a communication with a trivial (empty) routing contributes no routing
// constraints.
func AssembleRouting(in *variable.Interner, spec *model.Specification, communicationID string, extras []Extra) ([]*PB, error) {
	routing, err := spec.Routings.Get(communicationID)
	if err != nil {
		return nil, nil
	}

	flows, err := Flows(spec.Application, communicationID)
	if err != nil {
		return nil, err
	}

	var out []*PB

	oneDir, err := OneDirection(in, communicationID, routing)
	if err != nil {
		return nil, err
	}
	out = append(out, oneDir...)

	cycle, err := CycleBreak(in, communicationID, routing)
	if err != nil {
		return nil, err
	}
	out = append(out, cycle...)

	hier, err := Hierarchy(in, communicationID, routing, map[string][]variable.Literal{})
	if err != nil {
		return nil, err
	}
	out = append(out, hier...)

	for _, f := range flows {
		for _, srcSide := range []bool{true, false} {
			en, err := EndNode(in, spec.Mappings, routing, f, srcSide)
			if err != nil {
				return nil, err
			}
			out = append(out, en...)
		}
	}

	proxy, err := Proxy(in, communicationID, routing)
	if err != nil {
		return nil, err
	}
	out = append(out, proxy...)

	extraCs, err := RunExtras(in, communicationID, routing, flows, extras)
	if err != nil {
		return nil, err
	}
	out = append(out, extraCs...)

	return out, nil
}
