package core

// CellState is the life state of a single cell.
type CellState uint8

const (
	// Dead marks an empty cell.
	Dead CellState = iota
	// Alive marks a populated cell.
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Color is an RGB triple with channels in [0, 1].
type Color struct {
	R, G, B float32
}

// RGBA implements color.Color. Channels are clamped to [0, 1] and the result
// is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel16(c.R), channel16(c.G), channel16(c.B), 0xffff
}

func channel16(v float32) uint32 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// Cell pairs a life state with the colour assigned when the grid was
// populated. The colour never changes when the state does.
type Cell struct {
	State CellState
	Color Color
}

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.State == Alive }

// WithState returns a copy of c carrying the given state and the same colour.
func (c Cell) WithState(s CellState) Cell {
	c.State = s
	return c
}
