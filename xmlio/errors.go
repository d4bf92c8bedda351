// SPDX-License-Identifier: MIT
// Package: opendse/xmlio
//
// errors.go — sentinel errors for the XML reader/writer (spec.md §7).

package xmlio

import "errors"

// ErrMalformedInput indicates an XML schema violation: an unexpected
// element, a missing required attribute, or a structurally invalid document.
var ErrMalformedInput = errors.New("xmlio: malformed input")

// ErrUnknownClass indicates an element or attribute named a class the
// reader has no constructor for.
var ErrUnknownClass = errors.New("xmlio: unknown class")

// ErrMissingEndpoint indicates a link or dependency referenced an endpoint
// ID that was never declared.
var ErrMissingEndpoint = errors.New("xmlio: missing endpoint")

// ErrUnparseableParameter indicates a parameter attribute's text content
// did not match its declared format (RANGE/SELECT/UID).
var ErrUnparseableParameter = errors.New("xmlio: unparseable parameter")
