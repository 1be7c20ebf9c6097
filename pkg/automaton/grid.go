package automaton

import (
	"fmt"
	"slices"
	"strings"
)

// Cell is the binary state of a single grid position.
type Cell uint8

const (
	Dead  Cell = 0
	Alive Cell = 1
)

// String renders the cell the way Grid.String does.
func (c Cell) String() string {
	if c == Alive {
		return "#"
	}
	return "."
}

// Grid stores an n×n square of cells in row-major order.
type Grid struct {
	N    int
	data []uint8
}

// NewGrid allocates an all-dead grid. Non-positive sizes yield an empty grid;
// callers that care validate the size first.
func NewGrid(n int) Grid {
	if n <= 0 {
		return Grid{}
	}
	return Grid{N: n, data: make([]uint8, n*n)}
}

// Cells exposes the backing slice so renderers can read values directly.
func (g Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for (row, col).
func (g Grid) Index(row, col int) int { return row*g.N + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.N && col >= 0 && col < g.N
}

// At returns the state at (row, col). The address must be in bounds.
func (g Grid) At(row, col int) Cell { return Cell(g.data[g.Index(row, col)]) }

// Set stores the state at (row, col). The address must be in bounds. Any
// non-dead value is stored as Alive.
func (g Grid) Set(row, col int, c Cell) { g.data[g.Index(row, col)] = uint8(normalize(c)) }

func normalize(c Cell) Cell {
	if c != Dead {
		return Alive
	}
	return Dead
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g Grid) Wrap(row, col int) (int, int) {
	return mod(row, g.N), mod(col, g.N)
}

// Clear fills the grid with dead cells.
func (g Grid) Clear() {
	for i := range g.data {
		g.data[i] = uint8(Dead)
	}
}

// Clone returns an independent copy of the grid.
func (g Grid) Clone() Grid {
	return Grid{N: g.N, data: slices.Clone(g.data)}
}

// Equal reports whether both grids have the same size and contents.
func (g Grid) Equal(o Grid) bool {
	return g.N == o.N && slices.Equal(g.data, o.data)
}

// Alive counts the live cells.
func (g Grid) Alive() int {
	total := 0
	for _, c := range g.data {
		if Cell(c) == Alive {
			total++
		}
	}
	return total
}

// String renders the grid as n lines of '#' (alive) and '.' (dead).
func (g Grid) String() string {
	var b strings.Builder
	b.Grow(g.N * (g.N + 1))
	for row := 0; row < g.N; row++ {
		for col := 0; col < g.N; col++ {
			b.WriteString(g.At(row, col).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid reads the format produced by Grid.String. Any of "#", "O", "X",
// "*" or "1" marks a live cell; "." and "0" are dead. Blank lines are ignored
// and every row must have the same length as the number of rows.
func ParseGrid(text string) (Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	n := len(rows)
	if n == 0 {
		return Grid{}, ErrInvalidDimension
	}
	g := NewGrid(n)
	for row, line := range rows {
		if len(line) != n {
			return Grid{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimension, row, len(line), n)
		}
		for col, r := range line {
			switch r {
			case '#', 'O', 'X', '*', '1':
				g.Set(row, col, Alive)
			case '.', '0':
			default:
				return Grid{}, fmt.Errorf("automaton: unexpected %q at row %d col %d", r, row, col)
			}
		}
	}
	return g, nil
}

func mod(v, n int) int {
	return (v%n + n) % n
}
