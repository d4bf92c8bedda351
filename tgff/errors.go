// File: errors.go
// Role: Sentinel errors for the tgff adapter (spec.md §7 MalformedInput,
//       scoped to this external-collaborator format).

package tgff

import "errors"

// ErrMalformedInput indicates the TGFF text could not be tokenized into
// well-formed @KEYWORD blocks.
var ErrMalformedInput = errors.New("tgff: malformed input")
