package automaton

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Offset is a neighbour position relative to the cell being evaluated.
type Offset struct {
	DR int
	DC int
}

func (o Offset) String() string { return fmt.Sprintf("(%d,%d)", o.DR, o.DC) }

// Mask is an immutable set of neighbour offsets. It never contains the origin.
// The zero value is an empty mask, which Configure rejects.
type Mask struct {
	offsets []Offset
}

// Moore returns the eight surrounding offsets.
func Moore() Mask {
	offsets := make([]Offset, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			offsets = append(offsets, Offset{DR: dr, DC: dc})
		}
	}
	return Mask{offsets: offsets}
}

// VonNeumann returns the four axis-aligned offsets.
func VonNeumann() Mask {
	return Mask{offsets: []Offset{{-1, 0}, {0, -1}, {0, 1}, {1, 0}}}
}

// Custom builds a mask from arbitrary offsets. Duplicates collapse; the
// origin is rejected.
func Custom(offsets ...Offset) (Mask, error) {
	out := make([]Offset, 0, len(offsets))
	for _, o := range offsets {
		if o.DR == 0 && o.DC == 0 {
			return Mask{}, fmt.Errorf("%w: origin is not a neighbour", ErrInvalidMask)
		}
		out = append(out, o)
	}
	slices.SortFunc(out, compareOffsets)
	return Mask{offsets: slices.Compact(out)}, nil
}

// FromPattern converts an odd square selection into a mask. The centre of the
// pattern is the origin and is ignored whatever its value.
func FromPattern(pattern [][]bool) (Mask, error) {
	size := len(pattern)
	if size == 0 || size%2 == 0 {
		return Mask{}, fmt.Errorf("%w: pattern size %d is not odd", ErrInvalidMask, size)
	}
	center := size / 2
	var offsets []Offset
	for i, row := range pattern {
		if len(row) != size {
			return Mask{}, fmt.Errorf("%w: pattern row %d has %d cells, want %d", ErrInvalidMask, i, len(row), size)
		}
		for j, on := range row {
			if !on || (i == center && j == center) {
				continue
			}
			offsets = append(offsets, Offset{DR: i - center, DC: j - center})
		}
	}
	return Custom(offsets...)
}

// Len returns the number of offsets, which is also the highest possible
// neighbour count.
func (m Mask) Len() int { return len(m.offsets) }

// Offsets returns a copy of the offsets in row-major order.
func (m Mask) Offsets() []Offset { return slices.Clone(m.offsets) }

// Contains reports whether the offset belongs to the mask.
func (m Mask) Contains(o Offset) bool {
	_, found := slices.BinarySearchFunc(m.sorted(), o, compareOffsets)
	return found
}

// Radius is the Chebyshev distance of the furthest offset.
func (m Mask) Radius() int {
	r := 0
	for _, o := range m.offsets {
		r = max(r, abs(o.DR), abs(o.DC))
	}
	return r
}

// Equal reports whether both masks hold the same offsets.
func (m Mask) Equal(o Mask) bool {
	return slices.Equal(m.sorted(), o.sorted())
}

// Name returns "moore", "von-neumann" or "custom".
func (m Mask) Name() string {
	switch {
	case m.Equal(Moore()):
		return "moore"
	case m.Equal(VonNeumann()):
		return "von-neumann"
	default:
		return "custom"
	}
}

// String renders the canonical shapes by name and custom masks as an offset list.
func (m Mask) String() string {
	name := m.Name()
	if name != "custom" {
		return fmt.Sprintf("%s(%d)", name, m.Len())
	}
	parts := make([]string, len(m.offsets))
	for i, o := range m.offsets {
		parts[i] = o.String()
	}
	return fmt.Sprintf("custom(%d)[%s]", m.Len(), strings.Join(parts, " "))
}

func (m Mask) sorted() []Offset {
	if slices.IsSortedFunc(m.offsets, compareOffsets) {
		return m.offsets
	}
	s := slices.Clone(m.offsets)
	slices.SortFunc(s, compareOffsets)
	return s
}

func compareOffsets(a, b Offset) int {
	if c := cmp.Compare(a.DR, b.DR); c != 0 {
		return c
	}
	return cmp.Compare(a.DC, b.DC)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
