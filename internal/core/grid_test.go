package core

import (
	"image/color"
	"testing"
)

func gridWith(cols, rows int, alive ...[2]int) *Grid {
	set := map[[2]int]bool{}
	for _, p := range alive {
		set[p] = true
	}
	return NewGrid(cols, rows, func(x, y int) Cell {
		if set[[2]int{x, y}] {
			return Cell{State: Alive}
		}
		return Cell{State: Dead}
	})
}

func TestNewGridDimensions(t *testing.T) {
	g := NewGrid(5, 3, nil)
	if g.Columns() != 5 || g.Rows() != 3 || g.Len() != 15 {
		t.Fatalf("grid %dx%d len %d, want 5x3 len 15", g.Columns(), g.Rows(), g.Len())
	}
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 2}} {
		empty := NewGrid(dims[0], dims[1], func(int, int) Cell { return Cell{State: Alive} })
		if empty.Len() != 0 || empty.Columns() != 0 || empty.Rows() != 0 {
			t.Fatalf("NewGrid(%d,%d) should be empty, got %dx%d", dims[0], dims[1], empty.Columns(), empty.Rows())
		}
		if empty.AliveCount() != 0 {
			t.Fatal("empty grid reports live cells")
		}
	}
}

func TestCellAtRowMajor(t *testing.T) {
	g := NewGrid(3, 2, func(x, y int) Cell {
		return Cell{Color: Color{R: float32(x), G: float32(y)}}
	})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			c := g.CellAt(x, y)
			if c.Color.R != float32(x) || c.Color.G != float32(y) {
				t.Fatalf("CellAt(%d,%d) returned cell built for (%v,%v)", x, y, c.Color.R, c.Color.G)
			}
		}
	}
}

func TestCellAtOutOfRangePanics(t *testing.T) {
	g := NewGrid(2, 2, nil)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("CellAt(%d,%d) did not panic", p[0], p[1])
				}
			}()
			g.CellAt(p[0], p[1])
		}()
	}
}

func TestAliveNeighborsClipsAtEdges(t *testing.T) {
	full := NewGrid(4, 4, func(int, int) Cell { return Cell{State: Alive} })

	tests := []struct {
		name string
		x, y int
		want int
	}{
		{"top-left corner", 0, 0, 3},
		{"bottom-right corner", 3, 3, 3},
		{"top edge", 1, 0, 5},
		{"left edge", 0, 2, 5},
		{"interior", 1, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := full.AliveNeighbors(tt.x, tt.y); got != tt.want {
				t.Errorf("AliveNeighbors(%d,%d) = %d, want %d", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestAliveNeighborsIgnoresSelfAndOppositeEdge(t *testing.T) {
	g := gridWith(5, 5, [2]int{0, 0}, [2]int{4, 0}, [2]int{0, 4}, [2]int{4, 4})
	if n := g.AliveNeighbors(0, 0); n != 0 {
		t.Fatalf("corner counted %d neighbours, opposite corners must not wrap", n)
	}
	if n := g.AliveNeighbors(1, 1); n != 1 {
		t.Fatalf("AliveNeighbors(1,1) = %d, want 1", n)
	}
}

func TestEachVisitsEveryCell(t *testing.T) {
	g := gridWith(3, 4, [2]int{2, 3})
	seen := map[[2]int]bool{}
	g.Each(func(x, y int, c Cell) {
		seen[[2]int{x, y}] = true
		if c.Alive() != (x == 2 && y == 3) {
			t.Fatalf("Each reported wrong cell at (%d,%d)", x, y)
		}
	})
	if len(seen) != 12 {
		t.Fatalf("Each visited %d cells, want 12", len(seen))
	}
	if g.AliveCount() != 1 {
		t.Fatalf("AliveCount() = %d, want 1", g.AliveCount())
	}
}

func TestCellWithStateKeepsColour(t *testing.T) {
	c := Cell{State: Alive, Color: Color{R: 0.1, G: 0.2, B: 0.7}}
	d := c.WithState(Dead)
	if d.Alive() || d.Color != c.Color {
		t.Fatalf("WithState(Dead) = %+v", d)
	}
	if !c.Alive() {
		t.Fatal("WithState must not modify the receiver")
	}
}

func TestColorRGBA(t *testing.T) {
	got := color.RGBAModel.Convert(Color{R: 1, G: 0, B: 2}).(color.RGBA)
	want := color.RGBA{R: 255, G: 0, B: 255, A: 255}
	if got != want {
		t.Fatalf("RGBA conversion = %+v, want %+v", got, want)
	}
	mid := color.RGBAModel.Convert(Color{R: 0.5}).(color.RGBA)
	if mid.R != 127 && mid.R != 128 {
		t.Fatalf("half red converted to %d", mid.R)
	}
}
