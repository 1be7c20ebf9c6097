package app

import (
	"fmt"

	"lifelike/internal/host"
	"lifelike/internal/pattern"
	"lifelike/pkg/automaton"
)

// Grid side bounds for the resize keys.
const (
	MinGridSize  = 4
	MaxGridSize  = 256
	GridSizeStep = 4
)

// NextGridSize moves n by delta resize steps, clamped to the allowed range.
func NextGridSize(n, delta int) int {
	return min(max(n+delta*GridSizeStep, MinGridSize), MaxGridSize)
}

// Editor holds a neighbourhood pattern while the user edits it. Nothing
// reaches the engine until Apply.
type Editor struct {
	p *pattern.Pattern
}

// NewEditor starts from the active mask. Masks too wide for the editor start
// from an empty pattern of the default size.
func NewEditor(m automaton.Mask) *Editor {
	p, err := pattern.FromMask(m)
	if err != nil {
		p, _ = pattern.New(pattern.DefaultSize)
	}
	return &Editor{p: p}
}

// Pattern returns the pattern being edited.
func (ed *Editor) Pattern() *pattern.Pattern { return ed.p }

// Toggle flips one pattern cell. The centre is fixed.
func (ed *Editor) Toggle(row, col int) error { return ed.p.Toggle(row, col) }

// Grow widens the pattern by one ring, or narrows it for negative delta.
func (ed *Editor) Grow(delta int) error {
	q, err := ed.p.Resized(ed.p.Size() + 2*delta)
	if err != nil {
		return err
	}
	ed.p = q
	return nil
}

// Apply installs the pattern as the engine's neighbourhood, keeping the
// active rules. The engine rejects rules that no longer fit the mask.
func (ed *Editor) Apply(r *host.Runner) error {
	m, err := ed.p.Mask()
	if err != nil {
		return err
	}
	return r.Do(func(e *automaton.Engine) error {
		rules := e.Rules()
		return e.Configure(m, rules.Birth, rules.Survive)
	})
}

// Status summarizes the pattern for the HUD.
func (ed *Editor) Status() string {
	return fmt.Sprintf("%dx%d, %d neighbours", ed.p.Size(), ed.p.Size(), ed.p.Count())
}

// EditorCell returns the on-screen side of one pattern cell when a pattern
// of the given size is drawn across side pixels.
func EditorCell(side, size int) int {
	if size <= 0 {
		return 1
	}
	return max(side/size, 1)
}
