// File: literal.go
// Role: PB-constraint literal type (spec.md §4.F/§4.G "Σ cᵢ·lᵢ OP k").
// AI-HINT (file):
//   - A Literal is a signed integer index into the solver's variable
//     space: positive means the variable asserted true, negative means
//     its negation, mirroring the DIMACS/PBO signed-literal convention.
//     The item has no DIMACS/PBO file writer; constraint.PB.String prints
//     terms as coefficient*literal.

package variable

// Literal is a signed reference to an interned Var: a positive value p(v)
// asserts v, a negative value asserts ¬v.
type Literal int

// Not returns the negation of l.
func (l Literal) Not() Literal { return -l }

// Var returns the non-negative variable index l refers to, discarding sign.
func (l Literal) Var() int {
	if l < 0 {
		return int(-l)
	}
	return int(l)
}

// Positive reports whether l asserts its variable true (as opposed to
// negated).
func (l Literal) Positive() bool { return l > 0 }
