// Package automaton implements a configurable two-dimensional Life-like
// cellular automaton on a square grid.
//
// An Engine owns the grid, the neighbourhood mask, the birth/survival rules
// and the generation counter. It performs no locking and starts no
// goroutines; hosts that edit cells while another goroutine steps must
// serialize access themselves.
package automaton

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbour lookups behave at the grid edge.
type Boundary uint8

const (
	// Wrap reduces neighbour coordinates modulo n (toroidal grid).
	Wrap Boundary = iota
	// Clamp ignores neighbours that fall outside the grid.
	Clamp
)

func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Clamp:
		return "clamp"
	default:
		return fmt.Sprintf("Boundary(%d)", uint8(b))
	}
}

// ParseBoundary accepts "wrap"/"torus" and "clamp"/"fixed", case-insensitively.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "torus":
		return Wrap, nil
	case "clamp", "fixed":
		return Clamp, nil
	default:
		return Wrap, fmt.Errorf("automaton: unknown boundary %q", s)
	}
}

// Float64Source supplies uniform values in [0, 1). *rand.Rand satisfies it.
type Float64Source interface {
	Float64() float64
}

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithCountUnchanged makes Step advance the generation counter even when the
// grid did not change. Step still reports whether anything changed.
func WithCountUnchanged() Option {
	return func(e *Engine) { e.countUnchanged = true }
}

// Engine is a Life-like automaton. The zero value is not usable; call New.
type Engine struct {
	n        int
	cur      Grid
	nxt      Grid
	boundary Boundary

	mask    Mask
	rules   RuleSet
	birth   []bool
	survive []bool

	generation     int
	countUnchanged bool
}

// New returns an all-dead n×n engine running Conway's rules on the Moore
// neighbourhood.
func New(n int, boundary Boundary, opts ...Option) (*Engine, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}
	e := &Engine{
		n:        n,
		cur:      NewGrid(n),
		nxt:      NewGrid(n),
		boundary: boundary,
	}
	for _, opt := range opts {
		opt(e)
	}
	mask, rules := Moore(), Conway()
	e.setRules(mask, rules)
	return e, nil
}

// Configure replaces the neighbourhood and rule set atomically. The grid is
// kept and the generation counter resets to zero. On error nothing changes.
func (e *Engine) Configure(mask Mask, birth, survive []int) error {
	if mask.Len() == 0 {
		return fmt.Errorf("%w: no offsets", ErrInvalidMask)
	}
	rules := NewRuleSet(birth, survive)
	if err := rules.Validate(mask.Len()); err != nil {
		return err
	}
	e.setRules(mask, rules)
	e.generation = 0
	return nil
}

func (e *Engine) setRules(mask Mask, rules RuleSet) {
	e.mask = Mask{offsets: mask.Offsets()}
	e.rules = rules
	e.birth = table(rules.Birth, mask.Len())
	e.survive = table(rules.Survive, mask.Len())
}

// Resize replaces the grid with an all-dead n×n grid and resets the
// generation counter. On error nothing changes.
func (e *Engine) Resize(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDimension, n)
	}
	e.n = n
	e.cur = NewGrid(n)
	e.nxt = NewGrid(n)
	e.generation = 0
	return nil
}

// Load copies g into the engine and resets the generation counter. The grid
// must match the engine size. Any non-dead value is stored as Alive.
func (e *Engine) Load(g Grid) error {
	if g.N != e.n || len(g.data) != e.n*e.n {
		return fmt.Errorf("%w: grid is %d, engine is %d", ErrInvalidDimension, g.N, e.n)
	}
	for i, v := range g.data {
		e.cur.data[i] = uint8(normalize(Cell(v)))
	}
	e.generation = 0
	return nil
}

// SetCell stores a state directly. Manual edits do not touch the generation.
func (e *Engine) SetCell(row, col int, c Cell) error {
	if err := e.checkBounds(row, col); err != nil {
		return err
	}
	e.cur.Set(row, col, c)
	return nil
}

// ToggleCell flips the state at (row, col).
func (e *Engine) ToggleCell(row, col int) error {
	if err := e.checkBounds(row, col); err != nil {
		return err
	}
	if e.cur.At(row, col) == Alive {
		e.cur.Set(row, col, Dead)
	} else {
		e.cur.Set(row, col, Alive)
	}
	return nil
}

// Cell returns the state at (row, col).
func (e *Engine) Cell(row, col int) (Cell, error) {
	if err := e.checkBounds(row, col); err != nil {
		return Dead, err
	}
	return e.cur.At(row, col), nil
}

// Clear kills every cell and resets the generation counter.
func (e *Engine) Clear() {
	e.cur.Clear()
	e.generation = 0
}

// Randomize sets each cell alive with probability density, independently,
// and resets the generation counter.
func (e *Engine) Randomize(density float64, src Float64Source) error {
	if !(density >= 0 && density <= 1) {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	for i := range e.cur.data {
		e.cur.data[i] = uint8(Dead)
		if src.Float64() < density {
			e.cur.data[i] = uint8(Alive)
		}
	}
	e.generation = 0
	return nil
}

// CountLiveNeighbors counts live cells at the mask offsets around (row, col).
func (e *Engine) CountLiveNeighbors(row, col int) (int, error) {
	if err := e.checkBounds(row, col); err != nil {
		return 0, err
	}
	return e.countLive(e.cur, row, col), nil
}

func (e *Engine) countLive(g Grid, row, col int) int {
	n := e.n
	count := 0
	for _, o := range e.mask.offsets {
		r, c := row+o.DR, col+o.DC
		if e.boundary == Clamp {
			if r < 0 || r >= n || c < 0 || c >= n {
				continue
			}
		} else {
			r, c = g.Wrap(r, c)
		}
		count += int(g.data[r*n+c])
	}
	return count
}

// Step advances one generation. Every cell is evaluated against the same
// snapshot of the current grid. If nothing changed the grid is left alone,
// the counter is not advanced (unless WithCountUnchanged was given) and false
// is returned.
func (e *Engine) Step() bool {
	n := e.n
	cur, nxt := e.cur.data, e.nxt.data
	changed := false
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			idx := row*n + col
			count := e.countLive(e.cur, row, col)
			next := Dead
			if Cell(cur[idx]) == Alive {
				if e.survive[count] {
					next = Alive
				}
			} else if e.birth[count] {
				next = Alive
			}
			nxt[idx] = uint8(next)
			if nxt[idx] != cur[idx] {
				changed = true
			}
		}
	}
	if changed {
		e.cur, e.nxt = e.nxt, e.cur
		e.generation++
	} else if e.countUnchanged {
		e.generation++
	}
	return changed
}

// Generation returns the number of generations since the last reset.
func (e *Engine) Generation() int { return e.generation }

// Snapshot returns an independent copy of the current grid.
func (e *Engine) Snapshot() Grid { return e.cur.Clone() }

// Cells exposes the current grid's backing slice for rendering. It must not
// be modified and is only valid until the next Step or Resize.
func (e *Engine) Cells() []uint8 { return e.cur.data }

// Size returns n.
func (e *Engine) Size() int { return e.n }

// Boundary returns the boundary policy.
func (e *Engine) Boundary() Boundary { return e.boundary }

// Mask returns the active neighbourhood.
func (e *Engine) Mask() Mask { return e.mask }

// Rules returns the active rule set.
func (e *Engine) Rules() RuleSet {
	return NewRuleSet(e.rules.Birth, e.rules.Survive)
}

// CountsUnchanged reports whether unchanged steps advance the generation.
func (e *Engine) CountsUnchanged() bool { return e.countUnchanged }

// Population counts live cells in the current grid.
func (e *Engine) Population() int { return e.cur.Alive() }

func (e *Engine) checkBounds(row, col int) error {
	if !e.cur.InBounds(row, col) {
		return fmt.Errorf("%w: (%d,%d) with n=%d", ErrOutOfBounds, row, col, e.n)
	}
	return nil
}
