// File: pb.go
// Role: Linear pseudo-Boolean constraint type (spec.md §4.G "Σ cᵢ·lᵢ OP k").
// AI-HINT (file):
//   - Op's const-block-plus-String() shape is grounded on dungo's
//     ConstraintKind/ConstraintSeverity enums (pkg/graph/constraint.go);
//     this package otherwise carries no DSL/AST layer, since pseudo-Boolean
//     terms are already a closed, linear shape with no expression grammar
//     to parse.

package constraint

import (
	"fmt"
	"strings"

	"github.com/opendse/opendse/variable"
)

// Op is the relational operator of a pseudo-Boolean constraint.
type Op int

const (
	// OpEq is "=".
	OpEq Op = iota
	// OpLE is "<=".
	OpLE
	// OpGE is ">=".
	OpGE
)

// String returns the operator's mathematical symbol.
func (o Op) String() string {
	switch o {
	case OpEq:
		return "="
	case OpLE:
		return "<="
	case OpGE:
		return ">="
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Term is one coefficient-literal pair in a pseudo-Boolean sum.
type Term struct {
	Coeff int
	Lit   variable.Literal
}

// PB is a linear pseudo-Boolean constraint: Σ Terms[i].Coeff * Terms[i].Lit
// Op K. Label is an optional human-readable tag for diagnostics; it plays
// no role in solving.
type PB struct {
	Terms []Term
	Op    Op
	K     int
	Label string
}

// New returns a PB constraint with the given label, terms, operator and
// bound.
func New(label string, op Op, k int, terms ...Term) *PB {
	return &PB{Terms: terms, Op: op, K: k, Label: label}
}

// Lit returns the term (coeff, lit).
func Lit(coeff int, lit variable.Literal) Term { return Term{Coeff: coeff, Lit: lit} }

// String renders the constraint as "c1*l1 + c2*l2 ... Op K", for logging.
func (c *PB) String() string {
	var sb strings.Builder
	if c.Label != "" {
		sb.WriteString(c.Label)
		sb.WriteString(": ")
	}
	for i, t := range c.Terms {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%d*%d", t.Coeff, int(t.Lit))
	}
	fmt.Fprintf(&sb, " %s %d", c.Op, c.K)
	return sb.String()
}

// AtMostOne returns a PB constraint asserting at most one of lits is true:
// Σ lits <= 1.
func AtMostOne(label string, lits ...variable.Literal) *PB {
	terms := make([]Term, len(lits))
	for i, l := range lits {
		terms[i] = Lit(1, l)
	}
	return New(label, OpLE, 1, terms...)
}

// ExactlyOne returns a PB constraint asserting exactly one of lits is true:
// Σ lits = 1.
func ExactlyOne(label string, lits ...variable.Literal) *PB {
	terms := make([]Term, len(lits))
	for i, l := range lits {
		terms[i] = Lit(1, l)
	}
	return New(label, OpEq, 1, terms...)
}

// Implies returns a PB constraint asserting a => b: -a + b >= 0.
func Implies(label string, a, b variable.Literal) *PB {
	return New(label, OpGE, 0, Lit(-1, a), Lit(1, b))
}

// AtLeastOneOf returns Σ lits >= 1 ("a is used iff at least one of lits is
// used" — the forward half; pair with ImpliesAny for the converse).
func AtLeastOneOf(label string, lits ...variable.Literal) *PB {
	terms := make([]Term, len(lits))
	for i, l := range lits {
		terms[i] = Lit(1, l)
	}
	return New(label, OpGE, 1, terms...)
}

// ImpliesAny returns one PB constraint per lit asserting lit => target,
// i.e. target is true whenever any one of lits is (the "OR implies"
// direction of an iff-over-OR gate, spec.md §4.G.3 hierarchy ties).
func ImpliesAny(label string, target variable.Literal, lits ...variable.Literal) []*PB {
	out := make([]*PB, len(lits))
	for i, l := range lits {
		out[i] = Implies(fmt.Sprintf("%s[%d]", label, i), l, target)
	}
	return out
}

// IffOr returns the full set of constraints encoding target <=> (lits[0]
// OR lits[1] OR ...): one Implies per disjunct (disjunct => target) plus
// one AtLeastOneOf-style constraint asserting target => Σ lits >= 1,
// written as -target + Σ lits >= 0.
func IffOr(label string, target variable.Literal, lits ...variable.Literal) []*PB {
	out := ImpliesAny(label+".fwd", target, lits...)
	terms := make([]Term, 0, len(lits)+1)
	terms = append(terms, Lit(-1, target))
	for _, l := range lits {
		terms = append(terms, Lit(1, l))
	}
	out = append(out, New(label+".bwd", OpGE, 0, terms...))
	return out
}

// IffAnd returns the full set of constraints encoding g <=> (a AND b), the
// standard AND-gate linearization: g<=a, g<=b, g>=a+b-1.
func IffAnd(label string, g, a, b variable.Literal) []*PB {
	return IffAndN(label, g, a, b)
}

// IffAndN is the n-ary generalization of IffAnd: g <=> (lits[0] AND
// lits[1] AND ...), linearized as g<=lits[i] for every i, plus
// g >= Σlits - (n-1).
func IffAndN(label string, g variable.Literal, lits ...variable.Literal) []*PB {
	out := make([]*PB, 0, len(lits)+1)
	for i, l := range lits {
		out = append(out, Implies(fmt.Sprintf("%s.g<=l%d", label, i), g, l))
	}
	terms := make([]Term, 0, len(lits)+1)
	terms = append(terms, Lit(1, g))
	for _, l := range lits {
		terms = append(terms, Lit(-1, l))
	}
	out = append(out, New(label+".g>=sum-n+1", OpGE, -(len(lits)-1), terms...))
	return out
}

// Zero returns a PB constraint forcing lit permanently false: 1*lit <= 0.
func Zero(label string, lit variable.Literal) *PB {
	return New(label, OpLE, 0, Lit(1, lit))
}
