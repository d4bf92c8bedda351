// File: function.go
// Role: Function — a weakly-connected component of the Application graph.
// AI-HINT (file):
//   - Functions are derived, not stored: Application.Functions() computes
//     them fresh via a weakly-connected-components walk (see
//     application.go).

package model

import "github.com/opendse/opendse/attr"

// Function groups the Tasks and Communications that form one weakly
// connected component of an Application graph: a single line of
// computation plus the messages it exchanges with itself, independent of
// any other component (spec.md §3 "Function").
type Function struct {
	id    string
	Nodes []AppNode
	// Attrs is the function's own attribute map, found by looking up any
	// member task registered as an anchor (Application.SetFunctionAttributes).
	Attrs *attr.Attributes
}

// ID returns the Function's synthetic identifier. It is a fresh UUID on
// every Application.Functions() call, not a stable handle across calls.
func (f *Function) ID() string { return f.id }

// Tasks returns the plain (non-Communication) nodes in the function, in
// discovery order.
func (f *Function) Tasks() []AppNode {
	var out []AppNode
	for _, n := range f.Nodes {
		if !IsCommunication(n) {
			out = append(out, n)
		}
	}
	return out
}

// Communications returns the Communication nodes in the function, in
// discovery order.
func (f *Function) Communications() []AppNode {
	var out []AppNode
	for _, n := range f.Nodes {
		if IsCommunication(n) {
			out = append(out, n)
		}
	}
	return out
}
