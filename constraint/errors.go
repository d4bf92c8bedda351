// File: errors.go
// Role: Sentinel errors for the constraint package (spec.md §7).

package constraint

import "errors"

// ErrInvariantViolation is raised by the end-node encoder when a (task,
// resource) pair has more than one mapping (spec.md §4.G.4 case 3, §8 S5).
var ErrInvariantViolation = errors.New("constraint: invariant violation")
