//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	width int
	panel *ebiten.Image
	lines []Line
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update replaces the lines shown on the next Draw.
func (h *HUD) Update(lines []Line) {
	if h == nil {
		return
	}
	h.lines = lines
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + 12
	for _, l := range h.lines {
		if y > height {
			break
		}
		fg := color.RGBA{R: 160, G: 160, B: 170, A: 255}
		if l.Header {
			fg = color.RGBA{R: 220, G: 220, B: 230, A: 255}
		}
		if l.Text != "" {
			text.Draw(h.panel, l.Text, face, panelPadding, y, fg)
		}
		y += lineHeight
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
