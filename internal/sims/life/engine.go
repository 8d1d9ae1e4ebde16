package life

import (
	"colorlife/internal/core"
	rng "colorlife/pkg/core"
)

// Cell colours are fixed at population time: a dim red/green base with a
// random blue channel.
const (
	baseRed   = 0.1
	baseGreen = 0.2
	blueMin   = 0.5
	blueMax   = 1.0
)

// Populate creates a cols*rows grid where each cell is alive with
// probability aliveRatio. Every cell gets its own colour regardless of state.
func Populate(cols, rows int, aliveRatio float64, r *rng.RNG) *core.Grid {
	return core.NewGrid(cols, rows, func(x, y int) core.Cell {
		state := core.Dead
		if r.Chance(aliveRatio) {
			state = core.Alive
		}
		return core.Cell{
			State: state,
			Color: core.Color{R: baseRed, G: baseGreen, B: r.Range(blueMin, blueMax)},
		}
	})
}

// Next returns the state a cell with the given number of live neighbours has
// in the following generation.
func Next(state core.CellState, neighbors int) core.CellState {
	switch state {
	case core.Alive:
		switch neighbors {
		case 2, 3:
			return core.Alive
		default:
			// 0-1 underpopulation, 4+ overcrowding
			return core.Dead
		}
	default:
		if neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
}

// Advance computes the next generation of g. The input grid is only read, so
// every cell sees the neighbours of the current generation. Colours are
// carried over unchanged.
func Advance(g *core.Grid) *core.Grid {
	return core.NewGrid(g.Columns(), g.Rows(), func(x, y int) core.Cell {
		cell := g.CellAt(x, y)
		return cell.WithState(Next(cell.State, g.AliveNeighbors(x, y)))
	})
}
