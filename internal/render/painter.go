//go:build ebiten

package render

import (
	"image/color"

	"lifelike/internal/pattern"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	n    int
	img  *ebiten.Image
	buf  []byte
	line *ebiten.Image
}

// NewGridPainter allocates a painter for an n×n grid.
func NewGridPainter(n int) *GridPainter {
	gp := &GridPainter{n: n, buf: make([]byte, 4*n*n)}
	gp.img = ebiten.NewImage(n, n)
	gp.line = ebiten.NewImage(1, 1)
	gp.line.Fill(color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff})
	return gp
}

// Blit uploads the provided cells into the painter image and draws it scaled.
// Grid lines are drawn when each cell is at least 6 pixels wide.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, on, off color.Color, scale int) {
	if len(cells) != gp.n*gp.n {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)

	if scale < 6 {
		return
	}
	span := float64(gp.n * scale)
	for i := 0; i <= gp.n; i++ {
		pos := float64(i * scale)
		h := &ebiten.DrawImageOptions{}
		h.GeoM.Scale(span, 1)
		h.GeoM.Translate(0, pos)
		dst.DrawImage(gp.line, h)
		v := &ebiten.DrawImageOptions{}
		v.GeoM.Scale(1, span)
		v.GeoM.Translate(pos, 0)
		dst.DrawImage(gp.line, v)
	}
}

// Size returns the side length of the grid.
func (gp *GridPainter) Size() int { return gp.n }

// PatternPainter draws a neighbourhood pattern as a block of cells with the
// centre highlighted.
type PatternPainter struct {
	px *ebiten.Image
}

// NewPatternPainter allocates the painter's one-pixel brush.
func NewPatternPainter() *PatternPainter {
	px := ebiten.NewImage(1, 1)
	px.Fill(color.White)
	return &PatternPainter{px: px}
}

// Draw paints p with cells of the given pixel size starting at the origin.
func (pp *PatternPainter) Draw(dst *ebiten.Image, p *pattern.Pattern, cell int, on, off, centre color.Color) {
	size, c := p.Size(), p.Center()
	side := float64(max(cell-1, 1))
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			clr := off
			switch {
			case row == c && col == c:
				clr = centre
			case p.Selected(row, col):
				clr = on
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(side, side)
			op.GeoM.Translate(float64(col*cell), float64(row*cell))
			op.ColorScale.ScaleWithColor(clr)
			dst.DrawImage(pp.px, op)
		}
	}
}
