// File: extras.go
// Role: Pluggable "additional constraints" passthrough (spec.md §4.G.6).
// AI-HINT (file):
//   - The encoder does not interpret the constraint set (spec.md §4.G);
//     an Extra is therefore opaque to this package too — it is invoked
//     and its output concatenated, nothing more.

package constraint

import (
	"github.com/opendse/opendse/model"
	"github.com/opendse/opendse/variable"
)

// Extra is a caller-supplied constraint generator invoked once per
// communication during routing assembly (spec.md §4.G.6 "Additional").
// It receives the same interner, routing, and flow set the built-in
// generators see, so extra constraints can reference the same interned
// variables, and returns any PB constraints it wants added verbatim.
type Extra func(in *variable.Interner, communicationID string, routing *model.Routing, flows []variable.Flow) ([]*PB, error)

// RunExtras invokes every extra generator in order and concatenates their
// output. A nil or empty extras slice is a no-op.
func RunExtras(in *variable.Interner, communicationID string, routing *model.Routing, flows []variable.Flow, extras []Extra) ([]*PB, error) {
	var out []*PB
	for _, ex := range extras {
		cs, err := ex(in, communicationID, routing, flows)
		if err != nil {
			return nil, err
		}
		out = append(out, cs...)
	}
	return out, nil
}
