package render

import (
	"bufio"
	"io"

	"colorlife/internal/core"
)

// WriteText dumps g as rows of alive/dead runes, one line per grid row.
func WriteText(w io.Writer, g *core.Grid, alive, dead rune) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			r := dead
			if g.CellAt(x, y).Alive() {
				r = alive
			}
			bw.WriteRune(r)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
