package render

import (
	"sync"

	"plague/internal/core"
	"plague/internal/plague"
)

// Cell values stored in a Board.
const (
	CellHealthy uint8 = iota
	CellInfected
	// CellPadding fills grid positions past the end of a partial final row.
	CellPadding
)

type frame struct {
	cells    []uint8
	healthy  int
	infected int
	tick     uint64
}

// Board is the display-side copy of the population, kept current from
// delta batches. Apply is called on the simulation's mutation goroutine while
// the renderer reads from its own, so every access is locked.
//
// While paused, readers see the frame captured when the pause began; Apply
// keeps recording batches underneath.
type Board struct {
	mu   sync.Mutex
	topo core.Topology
	live frame
	held *frame
}

// NewBoard returns a board with every individual healthy.
func NewBoard(topo core.Topology) *Board {
	cells := make([]uint8, topo.Size().Cells())
	for i := topo.Len; i < len(cells); i++ {
		cells[i] = CellPadding
	}
	return &Board{topo: topo, live: frame{cells: cells, healthy: topo.Len}}
}

// SetPaused freezes or resumes what readers of the board see.
func (b *Board) SetPaused(paused bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch {
	case paused && b.held == nil:
		held := b.live
		held.cells = append([]uint8(nil), b.live.cells...)
		b.held = &held
	case !paused:
		b.held = nil
	}
}

// Paused reports whether the board is showing a held frame.
func (b *Board) Paused() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.held != nil
}

func (b *Board) visible() *frame {
	if b.held != nil {
		return b.held
	}
	return &b.live
}

// Apply records a batch. It can be passed to plague.WithDeltaHandler.
func (b *Board) Apply(batch plague.Batch) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, i := range batch.Changed {
		if b.topo.Contains(i) {
			b.live.cells[i] = CellInfected
		}
	}
	b.live.healthy, b.live.infected = batch.Healthy, batch.Infected
	if batch.Tick > b.live.tick {
		b.live.tick = batch.Tick
	}
}

// CopyCells copies the cell buffer into dst, growing it as needed.
func (b *Board) CopyCells(dst []uint8) []uint8 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append(dst[:0], b.visible().cells...)
}

// Counts returns the counters of the latest batch and the last applied tick.
func (b *Board) Counts() (healthy, infected int, tick uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	f := b.visible()
	return f.healthy, f.infected, f.tick
}

// Size returns the grid dimensions in cells.
func (b *Board) Size() core.Size { return b.topo.Size() }

// IndexAt maps a pixel position on a view drawn at the given scale to an
// individual.
func (b *Board) IndexAt(px, py, scale int) (int, bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, false
	}
	return b.topo.Index(px/scale, py/scale)
}
