// File: elementtable.go
// Role: Per-namespace element table for shared-identity resolution during
//       a read (spec.md §4.E, §9 "Global state" — instance-local, not
//       process-wide).
// AI-HINT (file):
//   - Constructed fresh inside Read; never package-level, so concurrent
//     reads never interfere.

package xmlio

import "github.com/opendse/opendse/model"

// elementTable resolves an (namespace, id) pair to the same runtime object
// across every position it appears in a document: created the first time
// it is seen, reused thereafter.
type elementTable struct {
	tables map[namespace]map[string]model.Element
}

func newElementTable() *elementTable {
	return &elementTable{tables: make(map[namespace]map[string]model.Element)}
}

// getOrCreate returns the element registered under (ns, id), constructing
// it via build on first sight.
func (t *elementTable) getOrCreate(ns namespace, id string, build func() model.Element) model.Element {
	table, ok := t.tables[ns]
	if !ok {
		table = make(map[string]model.Element)
		t.tables[ns] = table
	}
	if existing, ok := table[id]; ok {
		return existing
	}
	fresh := build()
	table[id] = fresh
	return fresh
}

// get returns the element registered under (ns, id), if any.
func (t *elementTable) get(ns namespace, id string) (model.Element, bool) {
	table, ok := t.tables[ns]
	if !ok {
		return nil, false
	}
	e, ok := table[id]
	return e, ok
}
