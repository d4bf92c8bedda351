// File: endnode.go
// Role: EndNodeEncoderMapping — the per-flow end-node placement algorithm
//       (spec.md §4.G.4, §8 S4/S5).
// AI-HINT (file):
//   - proxyIdentity reads model.Resource.ProxyID (the "proxyId" attribute,
//     "" when absent) and falls back to the resource's own id, so an
//     unproxied resource is its own identity bucket, matching §4.G.5 Proxy.

package constraint

import (
	"fmt"

	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

func proxyIdentity(r *model.Resource) string {
	if pid := r.ProxyID(); pid != "" {
		return pid
	}
	return r.ID()
}

// EndNode returns the end-node placement constraints for every resource in
// routing, for the given flow, on the given side (srcSide selects the
// flow's predecessor task, otherwise its successor). It raises
// ErrInvariantViolation, naming the offending (task, resource) pair, the
// moment a resource's proxy bucket has more than one candidate mapping
// (spec.md §4.G.4 case 3, §8 S5).
func EndNode(in *variable.Interner, mappings *model.Mappings, routing *model.Routing, f variable.Flow, srcSide bool) ([]*PB, error) {
	task := f.Successor
	if srcSide {
		task = f.Predecessor
	}
	candidates := mappings.ForTask(task)

	dttSrc := in.P(variable.DTTSource(f))
	dttDst := in.P(variable.DTTDestination(f))

	var out []*PB
	for _, rid := range routing.Graph().VertexIDs() {
		endNodeVar := in.P(variable.EndNode(rid, f, srcSide))

		var matches []*model.Mapping
		for _, m := range candidates {
			if proxyIdentity(m.Target) == rid {
				matches = append(matches, m)
			}
		}

		switch len(matches) {
		case 0:
			out = append(out, Zero(fmt.Sprintf("endnode[%s.%v.%s]=0", rid, f, task), endNodeVar))
		case 1:
			mLit := in.P(variable.M(matches[0].ID()))
			label := fmt.Sprintf("endnode[%s.%v.%s]", rid, f, task)
			out = append(out, IffAndN(label, endNodeVar, mLit, dttSrc, dttDst)...)
		default:
			return nil, fmt.Errorf("%w: duplicate mapping for task %q onto resource %q", ErrInvariantViolation, task, rid)
		}
	}
	return out, nil
}
