package core

import "time"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// GridSource exposes the current generation to renderers. Implementations
// hand out a complete snapshot which callers must treat as read-only.
type GridSource interface {
	Grid() *Grid
}

// Sim is the contract the front ends drive every frame.
type Sim interface {
	GridSource
	Name() string
	Size() Size
	Generation() int
	Reset(seed int64)
	Tick(now time.Duration) bool
	Step()
	Parameters() ParameterSnapshot
}
