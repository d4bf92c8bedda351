// File: proxy.go
// Role: Proxy constraint generator (spec.md §4.G.5): ties a proxied
//       resource's routing activity to its physical proxy's.

package constraint

import (
	"fmt"

	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

// Proxy returns, for every resource in routing that declares a proxyId
// attribute resolving to another vertex also present in routing, a
// constraint pair equating "resource is used" with "its proxy is used" —
// the two represent the same physical endpoint at the routing layer.
func Proxy(in *variable.Interner, communicationID string, routing *model.Routing) ([]*PB, error) {
	g := routing.Graph()
	var out []*PB
	for _, rid := range g.VertexIDs() {
		res, err := g.Vertex(rid)
		if err != nil {
			return nil, err
		}
		proxyID := res.ProxyID()
		if proxyID == "" || proxyID == rid {
			continue
		}
		if !g.HasVertex(proxyID) {
			continue
		}
		a := in.P(variable.VertexUsed(communicationID, rid))
		b := in.P(variable.VertexUsed(communicationID, proxyID))
		out = append(out,
			Implies(fmt.Sprintf("proxy[%s.%s->%s].fwd", communicationID, rid, proxyID), a, b),
			Implies(fmt.Sprintf("proxy[%s.%s->%s].bwd", communicationID, rid, proxyID), b, a),
		)
	}
	return out, nil
}
