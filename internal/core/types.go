package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cells returns the number of grid positions, including any padding in a
// partial final row.
func (s Size) Cells() int { return s.W * s.H }
