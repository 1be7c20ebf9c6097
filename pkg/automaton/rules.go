package automaton

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RuleSet holds the neighbour counts that give birth to a dead cell and keep a
// live cell alive. Both slices are sorted and free of duplicates when built
// through NewRuleSet.
type RuleSet struct {
	Birth   []int
	Survive []int
}

// NewRuleSet normalizes the provided counts into sorted, unique sets.
func NewRuleSet(birth, survive []int) RuleSet {
	return RuleSet{Birth: normalizeCounts(birth), Survive: normalizeCounts(survive)}
}

// Conway returns B3/S23.
func Conway() RuleSet {
	return RuleSet{Birth: []int{3}, Survive: []int{2, 3}}
}

// Validate checks that every count lies in [0, maxCount].
func (r RuleSet) Validate(maxCount int) error {
	for _, c := range r.Birth {
		if c < 0 || c > maxCount {
			return fmt.Errorf("%w: birth count %d outside [0, %d]", ErrInvalidRuleSet, c, maxCount)
		}
	}
	for _, c := range r.Survive {
		if c < 0 || c > maxCount {
			return fmt.Errorf("%w: survive count %d outside [0, %d]", ErrInvalidRuleSet, c, maxCount)
		}
	}
	return nil
}

// Equal compares the normalized sets.
func (r RuleSet) Equal(o RuleSet) bool {
	return slices.Equal(normalizeCounts(r.Birth), normalizeCounts(o.Birth)) &&
		slices.Equal(normalizeCounts(r.Survive), normalizeCounts(o.Survive))
}

// String renders B/S notation such as "B3/S23". Counts above 9 switch the
// whole set to a comma separated list so it stays unambiguous.
func (r RuleSet) String() string {
	return "B" + formatCounts(r.Birth) + "/S" + formatCounts(r.Survive)
}

// table returns a lookup indexed by neighbour count.
func table(counts []int, maxCount int) []bool {
	t := make([]bool, maxCount+1)
	for _, c := range counts {
		if c >= 0 && c <= maxCount {
			t[c] = true
		}
	}
	return t
}

func normalizeCounts(counts []int) []int {
	out := slices.Clone(counts)
	slices.Sort(out)
	return slices.Compact(out)
}

func formatCounts(counts []int) string {
	counts = normalizeCounts(counts)
	sep := ""
	if len(counts) > 0 && counts[len(counts)-1] > 9 {
		sep = ","
	}
	parts := make([]string, len(counts))
	for i, c := range counts {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, sep)
}
