//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on board cells.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	cells   []uint8
	palette []color.RGBA
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, palette []color.RGBA) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: palette}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the board into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, board *Board, scale int) {
	gp.cells = board.CopyCells(gp.cells)
	if len(gp.cells) != gp.w*gp.h {
		return
	}
	fillPaletteRGBA(gp.buf, gp.cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
