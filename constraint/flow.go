// File: flow.go
// Role: CommunicationFlow derivation (spec.md §4.G "For a communication c
//       with predecessor source-task s and successor destination-task d,
//       a flow is the pair (DTT(s,c), DTT(c,d))").

package constraint

import (
	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

// Flows returns one variable.Flow per (predecessor, successor) pair of
// communicationID in app, in deterministic insertion order (predecessors
// outer, successors inner). A communication with multiple predecessors
// and/or successors induces a flow per pair.
func Flows(app *model.Application, communicationID string) ([]variable.Flow, error) {
	g := app.Graph()

	var predecessors []string
	for _, eid := range g.InEdges(communicationID) {
		from, _, err := g.Endpoints(eid)
		if err != nil {
			return nil, err
		}
		predecessors = append(predecessors, from)
	}

	var successors []string
	for _, eid := range g.OutEdges(communicationID) {
		_, to, err := g.Endpoints(eid)
		if err != nil {
			return nil, err
		}
		successors = append(successors, to)
	}

	flows := make([]variable.Flow, 0, len(predecessors)*len(successors))
	for _, p := range predecessors {
		for _, s := range successors {
			flows = append(flows, variable.Flow{Predecessor: p, Communication: communicationID, Successor: s})
		}
	}
	return flows, nil
}
