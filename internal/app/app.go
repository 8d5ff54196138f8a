//go:build ebiten

package app

import (
	"log/slog"

	"plague/internal/logging"
	"plague/internal/plague"
	"plague/internal/render"
	"plague/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a running simulation to the ebiten.Game interface. The board
// must be registered as the simulation's delta handler.
type Game struct {
	sim     *plague.Simulation
	board   *render.Board
	painter *render.GridPainter
	hud     *ui.HUD
	log     *slog.Logger

	scale int
}

// New constructs a Game for the provided simulation.
func New(sim *plague.Simulation, board *render.Board, cfg *Config, logger *slog.Logger) *Game {
	size := board.Size()
	var hud *ui.HUD
	if cfg.HUDWidth > 0 {
		hud = ui.NewHUD(board, sim.Parameters(), cfg.HUDWidth)
	}
	return &Game{
		sim:     sim,
		board:   board,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:     hud,
		log:     logging.OrDiscard(logger),
		scale:   cfg.Scale,
	}
}

// Update handles input. Simulation ticks run on their own clock, so pausing
// only holds what the board shows.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		paused := !g.board.Paused()
		g.board.SetPaused(paused)
		g.log.Debug("viewer pause toggled", "paused", paused)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		if i, ok := g.board.IndexAt(mx, my, g.scale); ok {
			if _, err := g.sim.InfectSingle(i); err != nil {
				g.log.Warn("manual infection rejected", "index", i, "err", err)
			}
		}
	}
	g.hud.Update()
	return nil
}

// Draw renders the current board and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.board, g.scale)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.board.Size().W*g.scale, h)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.board.Size()
	w, h := s.W*g.scale, s.H*g.scale
	if hh := g.hud.MinHeight(); hh > h {
		h = hh
	}
	return w + g.hud.Width(), h
}
