package core

import "fmt"

// Grid stores a fixed-size 2D arrangement of cells in row-major order. A Grid
// never changes after construction; each generation is a new Grid.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid builds a cols*rows grid, asking fill for the cell at every
// coordinate. Non-positive dimensions produce an empty grid.
func NewGrid(cols, rows int, fill func(x, y int) Cell) *Grid {
	if cols <= 0 || rows <= 0 {
		return &Grid{}
	}
	g := &Grid{cols: cols, rows: rows, cells: make([]Cell, cols*rows)}
	if fill == nil {
		return g
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			g.cells[g.Index(x, y)] = fill(x, y)
		}
	}
	return g
}

// Columns returns the grid width in cells.
func (g *Grid) Columns() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.cols, H: g.rows} }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.cols + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// CellAt returns the cell at (x, y). Out-of-range coordinates are a
// programming error and panic.
func (g *Grid) CellAt(x, y int) Cell {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.cols, g.rows))
	}
	return g.cells[g.Index(x, y)]
}

// AliveNeighbors counts live cells in the Moore neighbourhood of (x, y).
// Neighbours outside the grid are skipped, there is no wrapping.
func (g *Grid) AliveNeighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.rows {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.cols {
				continue
			}
			if g.cells[ny*g.cols+nx].Alive() {
				n++
			}
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(x, y int, c Cell)) {
	for i, c := range g.cells {
		fn(i%g.cols, i/g.cols, c)
	}
}

// AliveCount returns the number of live cells.
func (g *Grid) AliveCount() int {
	n := 0
	for _, c := range g.cells {
		if c.Alive() {
			n++
		}
	}
	return n
}
