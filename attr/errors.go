// SPDX-License-Identifier: MIT
// Package: opendse/attr
//
// errors.go — sentinel errors for the attr package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site.

package attr

import "errors"

// ErrMixedCollection indicates a KindCollection Value was constructed from
// items that do not all share the same Kind.
var ErrMixedCollection = errors.New("attr: collection items are not homogeneous")

// ErrUnknownAttribute indicates a lookup for an attribute name that is not
// present in the map.
var ErrUnknownAttribute = errors.New("attr: unknown attribute")

// ErrMalformedParameter indicates a parameter literal failed to parse under
// its declared format (RANGE/SELECT/UID).
var ErrMalformedParameter = errors.New("attr: malformed parameter literal")
