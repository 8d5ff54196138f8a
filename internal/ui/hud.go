//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"plague/internal/core"
	"plague/internal/render"
)

const (
	lineHeight = 16
	padding    = 10
)

var (
	panelColor    = render.DefaultPalette()[render.CellPadding]
	healthyColor  = render.DefaultPalette()[render.CellHealthy]
	infectedColor = render.DefaultPalette()[render.CellInfected]
	textColor     = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	groupColor    = color.RGBA{R: 150, G: 150, B: 160, A: 255}
)

// HUD renders the counters and parameter panel to the right of the grid.
type HUD struct {
	board    *render.Board
	params   core.ParameterSnapshot
	width    int
	panel    *ebiten.Image
	lastH    int
	healthy  int
	infected int
	tick     uint64
	paused   bool
}

// NewHUD constructs a HUD for the board and panel width.
func NewHUD(board *render.Board, params core.ParameterSnapshot, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{board: board, params: params, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// MinHeight returns the height needed to list every line.
func (h *HUD) MinHeight() int {
	if h == nil {
		return 0
	}
	lines := 4
	for _, g := range h.params.Groups {
		lines += 1 + len(g.Params)
	}
	return padding*2 + lines*lineHeight
}

// Update refreshes the cached counters from the board.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.healthy, h.infected, h.tick = h.board.Counts()
	h.paused = h.board.Paused()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.lastH != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastH = height
	}
	h.panel.Fill(panelColor)

	y := padding + lineHeight
	line := func(s string, clr color.Color) {
		text.Draw(h.panel, s, basicfont.Face7x13, padding, y, clr)
		y += lineHeight
	}
	line(fmt.Sprintf("Healthy:  %d", h.healthy), healthyColor)
	line(fmt.Sprintf("Infected: %d", h.infected), infectedColor)
	line(fmt.Sprintf("Tick:     %d", h.tick), textColor)
	if h.paused {
		line("PAUSED", groupColor)
	} else {
		y += lineHeight
	}
	for _, g := range h.params.Groups {
		line(g.Name, groupColor)
		for _, p := range g.Params {
			line(fmt.Sprintf("  %s: %s", p.Label, p.Value), textColor)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
