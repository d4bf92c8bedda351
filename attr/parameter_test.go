package attr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/opendse/opendse/attr"
)

// TestParseRange_S6 locks in the scenario from spec.md S6: "3.0 0.0 10.0 0.5"
// parses to Range{default=3.0, lb=0.0, ub=10.0, gr=0.5}.
func TestParseRange_S6(t *testing.T) {
	p, err := attr.ParseRange("3.0 0.0 10.0 0.5")
	require.NoError(t, err)
	assert.Equal(t, attr.RangeParameter{Default: 3.0, Lower: 0.0, Upper: 10.0, Granularity: 0.5}, p)
	assert.Equal(t, "3 0 10 0.5", p.Text())

	// Round-trip through text is semantically identical even though the
	// canonical text form drops trailing ".0".
	reparsed, err := attr.ParseRange(p.Text())
	require.NoError(t, err)
	assert.True(t, p.Equal(reparsed))
}

func TestParseRange_Parens(t *testing.T) {
	p, err := attr.ParseRange("(1, 2, 3, 4)")
	require.NoError(t, err)
	assert.Equal(t, attr.RangeParameter{Default: 1, Lower: 2, Upper: 3, Granularity: 4}, p)
}

func TestParseRange_Malformed(t *testing.T) {
	_, err := attr.ParseRange("1 2 3")
	assert.ErrorIs(t, err, attr.ErrMalformedParameter)
}

func TestParseSelect(t *testing.T) {
	p, err := attr.ParseSelect("fast (fast, slow, medium) otherTaskId")
	require.NoError(t, err)
	assert.Equal(t, attr.SelectParameter{
		Default:   "fast",
		Choices:   []string{"fast", "slow", "medium"},
		Reference: "otherTaskId",
	}, p)
}

func TestParseSelect_NoReference(t *testing.T) {
	p, err := attr.ParseSelect("a (a, b)")
	require.NoError(t, err)
	assert.Equal(t, "", p.Reference)
	assert.Equal(t, "a (a, b)", p.Text())
}

func TestParseSelect_BracketsNormalized(t *testing.T) {
	p, err := attr.ParseSelect("a [a, b, c]")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, p.Choices)
}

func TestParseUID(t *testing.T) {
	p, err := attr.ParseUID("7 [UID:coreGroup]")
	require.NoError(t, err)
	assert.Equal(t, attr.UIDParameter{Default: 7, Identifier: "coreGroup"}, p)
	assert.Equal(t, "7 [UID:coreGroup]", p.Text())
}

func TestParseUID_Malformed(t *testing.T) {
	_, err := attr.ParseUID("not a uid")
	assert.ErrorIs(t, err, attr.ErrMalformedParameter)
}

func TestParseParameter_Dispatch(t *testing.T) {
	_, err := attr.ParseParameter("RANGE", "1 2 3 4")
	require.NoError(t, err)
	_, err = attr.ParseParameter("SELECT", "a (a, b)")
	require.NoError(t, err)
	_, err = attr.ParseParameter("UID", "1 [UID:g]")
	require.NoError(t, err)
	_, err = attr.ParseParameter("BOGUS", "x")
	assert.ErrorIs(t, err, attr.ErrMalformedParameter)
}

// TestParseRange_RoundTripsAnyFiniteValues checks the bit-exact round-trip
// promise in formatRange's doc comment (Parse(Format(p)) == p) against
// randomly generated RangeParameters, not just the handful of literal
// fixtures above.
func TestParseRange_RoundTripsAnyFiniteValues(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		bounded := rapid.Float64Range(-1e9, 1e9)
		p := attr.RangeParameter{
			Default:     bounded.Draw(rt, "default"),
			Lower:       bounded.Draw(rt, "lower"),
			Upper:       bounded.Draw(rt, "upper"),
			Granularity: bounded.Draw(rt, "granularity"),
		}

		reparsed, err := attr.ParseRange(p.Text())
		if err != nil {
			rt.Fatalf("ParseRange(%q): %v", p.Text(), err)
		}
		if !p.Equal(reparsed) {
			rt.Fatalf("round-trip mismatch: %+v formatted as %q reparsed as %+v", p, p.Text(), reparsed)
		}
	})
}

func TestParameter_EqualAcrossKinds(t *testing.T) {
	r := attr.RangeParameter{Default: 1, Lower: 0, Upper: 2, Granularity: 1}
	u := attr.UIDParameter{Default: 1, Identifier: "g"}
	assert.False(t, r.Equal(u))
}
