package render

import (
	"image/color"

	"colorlife/internal/core"

	"github.com/gdamore/tcell/v2"
)

// TerminalView draws grid snapshots onto a tcell screen, two columns per
// cell so cells come out roughly square.
type TerminalView struct {
	screen tcell.Screen
	bg     tcell.Color
}

// NewTerminalView wraps an initialised screen.
func NewTerminalView(screen tcell.Screen) *TerminalView {
	return &TerminalView{screen: screen, bg: tcellColor(Background)}
}

// Draw paints g and a one-line status footer, then shows the frame. Cells
// beyond the screen size are clipped.
func (v *TerminalView) Draw(g *core.Grid, status string) {
	v.screen.Clear()
	sw, sh := v.screen.Size()
	bgStyle := tcell.StyleDefault.Background(v.bg)

	g.Each(func(x, y int, c core.Cell) {
		col := x * 2
		if col+1 >= sw || y >= sh-1 {
			return
		}
		style := bgStyle
		if c.Alive() {
			style = tcell.StyleDefault.Background(tcellColor(c.Color))
		}
		v.screen.SetContent(col, y, ' ', nil, style)
		v.screen.SetContent(col+1, y, ' ', nil, style)
	})

	if sh > 0 {
		footer := min(g.Rows(), sh-1)
		for i, r := range status {
			if i >= sw {
				break
			}
			v.screen.SetContent(i, footer, r, nil, tcell.StyleDefault)
		}
	}
	v.screen.Show()
}

func tcellColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
