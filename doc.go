// Package opendse is a design-space-exploration (DSE) framework for
// embedded systems: it models a hardware architecture, an application
// graph, candidate task-to-resource mappings, and communication routings,
// then compiles that specification into a pseudo-Boolean constraint
// system that an external SAT/PB solver can decide.
//
// The pipeline runs front-to-back through these packages:
//
//	attr/      — tagged-union attribute values attached to any model entity
//	graph/     — generic directed graph (vertices + edges) shared by Architecture and Application
//	model/     — Specification: Architecture, Application, Mappings, Routings, Function derivation
//	ops/       — filter_by_resources / filter_by_functions specification transforms
//	xmlio/     — specification document reader/writer (round-trip fidelity)
//	tgff/      — TGFF external-format adapter, producing a model.Specification
//	variable/  — structural-hash interning of decision variables (M, T, DTT, ...)
//	constraint/ — pseudo-Boolean constraint generators (routing, end-node, proxy, hierarchy)
//	encoder/   — façade tying validation, routing assembly, and global ties together
//	cmd/opendse-encode/ — CLI: roundtrip, filter, encode
//
// A typical run: read a specification with xmlio or tgff, optionally
// narrow it with ops, then hand it to encoder.Encode to obtain the
// variable interner and the full constraint set.
package opendse
