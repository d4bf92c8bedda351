// SPDX-License-Identifier: MIT
// Package: opendse/model
//
// errors.go — sentinel errors for the model package.
//
// Error policy: only sentinel variables, checked via errors.Is; context is
// attached with fmt.Errorf("%w: ...").

package model

import "errors"

// ErrEmptyID indicates an element was constructed with an empty identifier.
var ErrEmptyID = errors.New("model: identifier is empty")

// ErrDuplicateID indicates an identifier already exists in its containing
// collection (spec.md §3: "unique within its containing collection").
var ErrDuplicateID = errors.New("model: duplicate identifier")

// ErrNotFound indicates a lookup by identifier found nothing in the
// relevant collection.
var ErrNotFound = errors.New("model: not found")

// ErrDanglingReference indicates a Mapping's source or target identifier
// does not resolve within the current specification (spec.md §7,
// DanglingReference — fatal on construction).
var ErrDanglingReference = errors.New("model: dangling reference")

// ErrCommunicationEndpoints indicates a Communication was asked to join the
// application without at least one predecessor Task and one successor Task
// (spec.md §3: "a Communication has at least one predecessor Task and at
// least one successor Task").
var ErrCommunicationEndpoints = errors.New("model: communication requires predecessor and successor tasks")

// ErrCyclicApplication indicates the application graph contains a directed
// cycle, violating the DAG invariant (spec.md §3).
var ErrCyclicApplication = errors.New("model: application graph contains a cycle")

// ErrUndirectedDependency indicates a Dependency edge was added as
// undirected; spec.md §3 requires "every Dependency is directed".
var ErrUndirectedDependency = errors.New("model: dependency must be directed")
