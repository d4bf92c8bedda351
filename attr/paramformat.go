// File: paramformat.go
// Role: Bit-exact text (de)serialization for the RANGE/SELECT/UID parameter literals.
// Determinism:
//   - Format* always normalizes whitespace and punctuation; callers relying on
//     byte-identical round-trip must compare Parse(Format(p)) == p, not the text.
// AI-HINT (file):
//   - RANGE literal: four whitespace-or-comma-separated doubles, optional parens: "(v, lb, ub, gr)".
//   - SELECT literal: "default (choice, choice, …) reference?"; "[...]" is accepted and normalized to "(...)".
//   - UID literal: "default [UID:identifier]" — identifier and default are \w+.

package attr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// rangeTokenRe splits a RANGE literal into up to four numeric tokens,
// accepting whitespace or commas as separators and ignoring a single
// optional enclosing paren pair.
var rangeTokenRe = regexp.MustCompile(`[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)

// ParseRange parses the bit-exact RANGE literal "v lb ub gr", optionally
// wrapped in parens and using commas or whitespace as separators.
func ParseRange(text string) (RangeParameter, error) {
	trimmed := strings.TrimSpace(text)
	trimmed = strings.TrimPrefix(trimmed, "(")
	trimmed = strings.TrimSuffix(trimmed, ")")
	tokens := rangeTokenRe.FindAllString(trimmed, -1)
	if len(tokens) != 4 {
		return RangeParameter{}, fmt.Errorf("attr: RANGE literal %q wants 4 numbers, got %d: %w", text, len(tokens), ErrMalformedParameter)
	}
	vals := make([]float64, 4)
	for i, tok := range tokens {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return RangeParameter{}, fmt.Errorf("attr: RANGE literal %q: %v: %w", text, err, ErrMalformedParameter)
		}
		vals[i] = f
	}
	return RangeParameter{Default: vals[0], Lower: vals[1], Upper: vals[2], Granularity: vals[3]}, nil
}

// formatRange renders a RangeParameter as "default lower upper granularity",
// matching the writer's canonical (unparenthesized, space-separated) form.
func formatRange(r RangeParameter) string {
	return fmt.Sprintf("%s %s %s %s",
		formatFloat(r.Default), formatFloat(r.Lower), formatFloat(r.Upper), formatFloat(r.Granularity))
}

// formatFloat renders f using the shortest round-tripping decimal form,
// matching strconv's 'g' verb with no forced exponent for typical DSE ranges.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// selectRe captures "default", the parenthesized choice list, and an
// optional trailing reference token from a normalized SELECT literal.
var selectRe = regexp.MustCompile(`^\s*(\S+)\s*\(([^)]*)\)\s*(\S*)\s*$`)

// ParseSelect parses the bit-exact SELECT literal
// "default (choice, choice, …) reference?". Square brackets are accepted in
// place of parens and normalized before matching.
func ParseSelect(text string) (SelectParameter, error) {
	normalized := strings.NewReplacer("[", "(", "]", ")").Replace(text)
	m := selectRe.FindStringSubmatch(normalized)
	if m == nil {
		return SelectParameter{}, fmt.Errorf("attr: SELECT literal %q does not match \"default (choices) reference?\": %w", text, ErrMalformedParameter)
	}
	def := m[1]
	rawChoices := strings.Split(m[2], ",")
	choices := make([]string, 0, len(rawChoices))
	for _, c := range rawChoices {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		choices = append(choices, c)
	}
	return SelectParameter{Default: def, Choices: choices, Reference: m[3]}, nil
}

// formatSelect renders a SelectParameter as "default (choice, choice, …) reference?",
// omitting the trailing reference token entirely when Reference == "".
func formatSelect(s SelectParameter) string {
	var sb strings.Builder
	sb.WriteString(s.Default)
	sb.WriteString(" (")
	sb.WriteString(strings.Join(s.Choices, ", "))
	sb.WriteString(")")
	if s.Reference != "" {
		sb.WriteString(" ")
		sb.WriteString(s.Reference)
	}
	return sb.String()
}

// uidRe matches the UID literal "default [UID:identifier]".
var uidRe = regexp.MustCompile(`^\s*(\w+)\s*\[UID:(\w+)\]\s*$`)

// ParseUID parses the bit-exact UID literal "default [UID:identifier]".
func ParseUID(text string) (UIDParameter, error) {
	m := uidRe.FindStringSubmatch(text)
	if m == nil {
		return UIDParameter{}, fmt.Errorf("attr: UID literal %q does not match \"default [UID:identifier]\": %w", text, ErrMalformedParameter)
	}
	def, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return UIDParameter{}, fmt.Errorf("attr: UID literal %q: %v: %w", text, err, ErrMalformedParameter)
	}
	return UIDParameter{Default: def, Identifier: m[2]}, nil
}

// formatUID renders a UIDParameter as "default [UID:identifier]".
func formatUID(u UIDParameter) string {
	return fmt.Sprintf("%d [UID:%s]", u.Default, u.Identifier)
}

// ParseParameter dispatches to ParseRange/ParseSelect/ParseUID based on kind,
// returning a Parameter interface value. kind is the XML `parameter=` token
// (RANGE/SELECT/UID, case-sensitive per the wire format).
func ParseParameter(kind string, text string) (Parameter, error) {
	switch kind {
	case "RANGE":
		return ParseRange(text)
	case "SELECT":
		return ParseSelect(text)
	case "UID":
		return ParseUID(text)
	default:
		return nil, fmt.Errorf("attr: unknown parameter kind %q: %w", kind, ErrMalformedParameter)
	}
}
