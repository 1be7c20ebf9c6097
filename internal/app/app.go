//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifelike/internal/host"
	"lifelike/internal/render"
	"lifelike/internal/ui"
	"lifelike/pkg/automaton"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a host runner to the ebiten.Game interface.
type Game struct {
	runner  *host.Runner
	title   string
	n       int
	painter *render.GridPainter
	hud     *ui.HUD

	editor   *Editor
	editErr  string
	patterns *render.PatternPainter

	onColor  color.Color
	offColor color.Color

	scale int
	seed  int64
}

// New constructs a Game for the provided runner.
func New(runner *host.Runner, title string, scale, hudWidth int, seed int64) *Game {
	n := runner.Snapshot().N
	return &Game{
		runner:   runner,
		title:    title,
		n:        n,
		painter:  render.NewGridPainter(n),
		hud:      ui.NewHUD(hudWidth),
		patterns: render.NewPatternPainter(),
		onColor:  color.RGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff},
		offColor: color.White,
		scale:    scale,
		seed:     seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.runner.Reset(seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.editor != nil {
		g.updateEditor()
	} else {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		g.updateSession()
	}

	g.runner.Tick()
	g.hud.Update(g.lines())
	return nil
}

func (g *Game) updateSession() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.runner.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.runner.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.runner.Clear()
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyNumpadAdd):
		g.resize(NextGridSize(g.n, 1))
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyNumpadSubtract):
		g.resize(NextGridSize(g.n, -1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.runner.Pause()
		var mask automaton.Mask
		_ = g.runner.Do(func(e *automaton.Engine) error {
			mask = e.Mask()
			return nil
		})
		g.editor = NewEditor(mask)
		g.editErr = ""
		return
	}
	g.paint()
}

// updateEditor handles the neighbourhood editor: clicks toggle cells, the
// bracket keys change the pattern size, Enter applies and Escape cancels.
func (g *Game) updateEditor() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.editor = nil
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter):
		if err := g.editor.Apply(g.runner); err != nil {
			g.editErr = err.Error()
			return
		}
		g.editor = nil
		return
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		g.editErr = errText(g.editor.Grow(-1))
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		g.editErr = errText(g.editor.Grow(1))
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	size := g.editor.Pattern().Size()
	x, y := ebiten.CursorPosition()
	row, col, ok := render.CellAt(x, y, EditorCell(g.n*g.scale, size), size)
	if !ok {
		return
	}
	// The centre cell is fixed; clicks on it do nothing.
	_ = g.editor.Toggle(row, col)
}

func (g *Game) resize(n int) {
	if n == g.n {
		return
	}
	if err := g.runner.Resize(n); err != nil {
		return
	}
	g.n = n
	g.painter = render.NewGridPainter(n)
	ebiten.SetWindowSize(n*g.scale+g.hud.Width(), n*g.scale)
}

func (g *Game) lines() []ui.Line {
	lines := ui.BuildLines(g.title, g.runner.Parameters(), g.runner.Running())
	if g.editor == nil {
		return lines
	}
	lines = append(lines, ui.Line{}, ui.Line{Text: "EDIT " + g.editor.Status(), Header: true})
	if g.editErr != "" {
		lines = append(lines, ui.Line{Text: g.editErr})
	}
	return lines
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// paint applies mouse edits: left button sets cells alive, right sets them dead.
func (g *Game) paint() {
	state := automaton.Dead
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		state = automaton.Alive
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
	default:
		return
	}
	x, y := ebiten.CursorPosition()
	row, col, ok := render.CellAt(x, y, g.scale, g.n)
	if !ok {
		return
	}
	_ = g.runner.Do(func(e *automaton.Engine) error {
		return e.SetCell(row, col, state)
	})
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.runner.Snapshot()
	g.painter.Blit(screen, snap.Cells(), g.onColor, g.offColor, g.scale)
	if g.editor != nil {
		p := g.editor.Pattern()
		g.patterns.Draw(screen, p, EditorCell(g.n*g.scale, p.Size()), g.onColor, g.offColor, color.RGBA{R: 0xcc, G: 0x22, B: 0x22, A: 0xff})
	}
	g.hud.Draw(screen, g.n*g.scale, g.n*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.n*g.scale + g.hud.Width(), g.n * g.scale
}
