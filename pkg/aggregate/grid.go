package aggregate

import "github.com/matzehuels/dla/pkg/lattice"

// Grid is a dense square occupancy raster. Cell (row, col) is 1 when the
// lattice site (x=col, y=row) is a cluster site and 0 otherwise.
type Grid struct {
	size  int
	cells []uint8
	count int
}

// NewGrid creates an empty size×size grid.
func NewGrid(size int) *Grid {
	return &Grid{size: size, cells: make([]uint8, size*size)}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// At returns the value of cell (row, col), or 0 outside the grid.
func (g *Grid) At(row, col int) uint8 {
	if !g.inside(row, col) {
		return 0
	}
	return g.cells[row*g.size+col]
}

// Occupied reports whether lattice site p is marked.
func (g *Grid) Occupied(p lattice.Point) bool {
	return g.At(p.Y, p.X) == 1
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int { return g.count }

// Points returns the occupied sites in row-major order.
func (g *Grid) Points() []lattice.Point {
	out := make([]lattice.Point, 0, g.count)
	for i, v := range g.cells {
		if v == 1 {
			out = append(out, lattice.Point{X: i % g.size, Y: i / g.size})
		}
	}
	return out
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]uint8 {
	rows := make([][]uint8, g.size)
	for r := range rows {
		rows[r] = make([]uint8, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{size: g.size, cells: make([]uint8, len(g.cells)), count: g.count}
	copy(c.cells, g.cells)
	return c
}

// mark sets the cell of p. Marking is idempotent; sites outside the grid are
// ignored.
func (g *Grid) mark(p lattice.Point) {
	if !g.inside(p.Y, p.X) {
		return
	}
	i := p.Y*g.size + p.X
	if g.cells[i] == 0 {
		g.cells[i] = 1
		g.count++
	}
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}
