// File: directed_links.go
// Role: Directed-link view over an Architecture (spec.md §4.D, §8 S2).

package ops

import "github.com/opendse/opendse/model"

// DirectedLink is one directed incarnation of an architecture Link: the
// link itself plus the (source, destination) pair it is being viewed as
// pointing along.
type DirectedLink struct {
	Link        *model.Link
	Source      string
	Destination string
}

// DirectedLinks returns every link in arch as its directed incarnation(s):
// a directed link once, an undirected link twice (once per orientation),
// in link insertion order.
func DirectedLinks(arch *model.Architecture) []DirectedLink {
	g := arch.Graph()
	var out []DirectedLink
	for _, id := range g.EdgeIDs() {
		e, err := g.Edge(id)
		if err != nil {
			continue
		}
		out = append(out, DirectedLink{Link: e.Value, Source: e.From, Destination: e.To})
		if !e.Directed {
			out = append(out, DirectedLink{Link: e.Value, Source: e.To, Destination: e.From})
		}
	}
	return out
}
