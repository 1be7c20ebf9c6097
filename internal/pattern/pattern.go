// Package pattern models the neighbourhood editor: an odd square of cells
// around a fixed centre that the user toggles to pick neighbour offsets.
package pattern

import (
	"errors"
	"fmt"
	"strings"

	"lifelike/pkg/automaton"
)

const (
	MinSize     = 3
	MaxSize     = 7
	DefaultSize = 5
)

var (
	ErrSize   = errors.New("pattern: size must be odd and within range")
	ErrCenter = errors.New("pattern: centre cell is fixed")
	ErrRange  = errors.New("pattern: cell out of range")
	ErrEmpty  = errors.New("pattern: no neighbours selected")
	ErrSyntax = errors.New("pattern: syntax error")
)

// Pattern is a square selection of neighbour cells. The centre is the cell
// being evaluated and can never be selected.
type Pattern struct {
	size  int
	cells []bool
}

// New returns an empty pattern of the given odd size.
func New(size int) (*Pattern, error) {
	if size < MinSize || size > MaxSize || size%2 == 0 {
		return nil, fmt.Errorf("%w: %d (want odd %d..%d)", ErrSize, size, MinSize, MaxSize)
	}
	return &Pattern{size: size, cells: make([]bool, size*size)}, nil
}

// FromMask lays out a mask in the smallest pattern that holds it.
func FromMask(m automaton.Mask) (*Pattern, error) {
	p, err := New(max(2*m.Radius()+1, MinSize))
	if err != nil {
		return nil, err
	}
	c := p.Center()
	for row := 0; row < p.size; row++ {
		for col := 0; col < p.size; col++ {
			if row == c && col == c {
				continue
			}
			p.cells[row*p.size+col] = m.Contains(automaton.Offset{DR: row - c, DC: col - c})
		}
	}
	return p, nil
}

// Resized copies the selection into a pattern of another odd size around the
// same centre. Cells outside a smaller pattern are dropped.
func (p *Pattern) Resized(size int) (*Pattern, error) {
	q, err := New(size)
	if err != nil {
		return nil, err
	}
	shift := q.Center() - p.Center()
	for row := 0; row < p.size; row++ {
		for col := 0; col < p.size; col++ {
			if p.Selected(row, col) {
				_ = q.Set(row+shift, col+shift, true)
			}
		}
	}
	return q, nil
}

// Size returns the side length.
func (p *Pattern) Size() int { return p.size }

// Center returns the row and column index of the centre cell.
func (p *Pattern) Center() int { return p.size / 2 }

// Selected reports whether (row, col) is marked as a neighbour.
func (p *Pattern) Selected(row, col int) bool {
	if row < 0 || row >= p.size || col < 0 || col >= p.size {
		return false
	}
	return p.cells[row*p.size+col]
}

// Toggle flips (row, col). The centre cannot be toggled.
func (p *Pattern) Toggle(row, col int) error {
	if err := p.check(row, col); err != nil {
		return err
	}
	idx := row*p.size + col
	p.cells[idx] = !p.cells[idx]
	return nil
}

// Set marks or clears (row, col).
func (p *Pattern) Set(row, col int, on bool) error {
	if err := p.check(row, col); err != nil {
		return err
	}
	p.cells[row*p.size+col] = on
	return nil
}

// Count returns the number of selected neighbours.
func (p *Pattern) Count() int {
	n := 0
	for _, on := range p.cells {
		if on {
			n++
		}
	}
	return n
}

// Mask converts the selection into neighbour offsets relative to the centre.
func (p *Pattern) Mask() (automaton.Mask, error) {
	if p.Count() == 0 {
		return automaton.Mask{}, ErrEmpty
	}
	rows := make([][]bool, p.size)
	for i := range rows {
		rows[i] = p.cells[i*p.size : (i+1)*p.size]
	}
	return automaton.FromPattern(rows)
}

// String renders '#' for neighbours, '.' for unselected cells and 'O' for the
// centre, one row per line.
func (p *Pattern) String() string {
	var b strings.Builder
	c := p.Center()
	for row := 0; row < p.size; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < p.size; col++ {
			switch {
			case row == c && col == c:
				b.WriteByte('O')
			case p.cells[row*p.size+col]:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

// Parse reads the String format. Rows may also be separated by '/' so a
// pattern fits in a single flag value, e.g. "#.#/.O./#.#".
func Parse(text string) (*Pattern, error) {
	var rows []string
	for _, line := range strings.FieldsFunc(text, func(r rune) bool { return r == '\n' || r == '/' }) {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	p, err := New(len(rows))
	if err != nil {
		return nil, err
	}
	c := p.Center()
	for row, line := range rows {
		if len(line) != p.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrSyntax, row, len(line), p.size)
		}
		for col, r := range line {
			switch r {
			case '#', 'X', 'x', '1':
				if row == c && col == c {
					return nil, ErrCenter
				}
				p.cells[row*p.size+col] = true
			case 'O', 'o', '@':
				if row != c || col != c {
					return nil, fmt.Errorf("%w: centre marker at (%d,%d)", ErrSyntax, row, col)
				}
			case '.', '0':
			default:
				return nil, fmt.Errorf("%w: unexpected %q", ErrSyntax, r)
			}
		}
	}
	return p, nil
}

func (p *Pattern) check(row, col int) error {
	if row < 0 || row >= p.size || col < 0 || col >= p.size {
		return fmt.Errorf("%w: (%d,%d)", ErrRange, row, col)
	}
	if row == p.Center() && col == p.Center() {
		return ErrCenter
	}
	return nil
}
