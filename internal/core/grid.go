package core

// Topology maps linear indices of a row-major population onto a grid with a
// fixed column count. The final row may be partial when the population size
// is not a multiple of the column count; indices at or beyond Len never
// appear as neighbours.
type Topology struct {
	Columns int
	Rows    int
	Len     int
}

// neighborOffsets lists (row, column) deltas: right, down, left, up.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// NewTopology builds the grid for n individuals laid out in the given number
// of columns. Non-positive inputs are clamped to 1 column and 0 individuals.
func NewTopology(n, columns int) Topology {
	if columns <= 0 {
		columns = 1
	}
	if n < 0 {
		n = 0
	}
	return Topology{Columns: columns, Rows: (n + columns - 1) / columns, Len: n}
}

// Size returns the bounding grid dimensions.
func (t Topology) Size() Size { return Size{W: t.Columns, H: t.Rows} }

// Contains reports whether i addresses an individual.
func (t Topology) Contains(i int) bool { return i >= 0 && i < t.Len }

// Index returns the linear index for (col, row) and whether it is in bounds.
func (t Topology) Index(col, row int) (int, bool) {
	if col < 0 || col >= t.Columns || row < 0 || row >= t.Rows {
		return 0, false
	}
	i := row*t.Columns + col
	return i, i < t.Len
}

// Coords returns the column and row of index i.
func (t Topology) Coords(i int) (col, row int) {
	return i % t.Columns, i / t.Columns
}

// Neighbors returns the 4-connected neighbours of i. There is no wraparound.
// It returns nil when i is out of range.
func (t Topology) Neighbors(i int) []int {
	if !t.Contains(i) {
		return nil
	}
	return t.AppendNeighbors(make([]int, 0, 4), i)
}

// AppendNeighbors appends the neighbours of i to dst and returns the
// extended slice.
func (t Topology) AppendNeighbors(dst []int, i int) []int {
	if !t.Contains(i) {
		return dst
	}
	col, row := t.Coords(i)
	for _, off := range neighborOffsets {
		if n, ok := t.Index(col+off[1], row+off[0]); ok {
			dst = append(dst, n)
		}
	}
	return dst
}
