// Package rulefmt turns user-entered rule text into neighbour count sets.
package rulefmt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"lifelike/pkg/automaton"
)

// ErrSyntax is wrapped by every parse failure.
var ErrSyntax = errors.New("rulefmt: syntax error")

// ParseCounts reads non-negative integers separated by commas and/or
// whitespace. Empty input yields an empty set.
func ParseCounts(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrSyntax, f)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative count %d", ErrSyntax, v)
		}
		counts = append(counts, v)
	}
	return counts, nil
}

// ParseRule reads B/S notation: "B3/S23", "b36/s23", "S23/B3", "B3/S2,3,10"
// or the bare "3/23" form, which is read birth first.
func ParseRule(s string) (birth, survive []int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("%w: rule %q needs exactly one '/'", ErrSyntax, s)
	}
	var haveB, haveS bool
	for i, part := range parts {
		part = strings.TrimSpace(part)
		kind := byte(0)
		if part != "" {
			switch part[0] {
			case 'B', 'b':
				kind = 'B'
			case 'S', 's':
				kind = 'S'
			}
		}
		if kind == 0 {
			if i == 0 {
				kind = 'B'
			} else {
				kind = 'S'
			}
		} else {
			part = part[1:]
		}
		counts, err := parseDigits(part)
		if err != nil {
			return nil, nil, err
		}
		switch {
		case kind == 'B' && !haveB:
			birth, haveB = counts, true
		case kind == 'S' && !haveS:
			survive, haveS = counts, true
		default:
			return nil, nil, fmt.Errorf("%w: rule %q repeats %c", ErrSyntax, s, kind)
		}
	}
	return birth, survive, nil
}

// Format renders counts in the notation ParseRule accepts.
func Format(birth, survive []int) string {
	return automaton.NewRuleSet(birth, survive).String()
}

// parseDigits reads "23" as {2, 3} and anything with separators via ParseCounts.
func parseDigits(s string) ([]int, error) {
	if strings.ContainsAny(s, ", ;\t") {
		return ParseCounts(s)
	}
	counts := make([]int, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, r)
		}
		counts = append(counts, int(r-'0'))
	}
	return counts, nil
}
