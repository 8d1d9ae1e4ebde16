package render

import (
	"image/color"

	"colorlife/internal/core"
)

// Background is the colour drawn behind dead cells.
var Background = color.RGBA{R: 28, G: 31, B: 33, A: 255}

// fillCellRGBA converts a grid into RGBA pixels in buf, one pixel per cell.
// Live cells use their own colour, dead cells the background.
func fillCellRGBA(buf []byte, g *core.Grid, bg color.Color) {
	rBg, gBg, bBg, aBg := bg.RGBA()
	g.Each(func(x, y int, c core.Cell) {
		base := g.Index(x, y) * 4
		if c.Alive() {
			r, gr, b, a := c.Color.RGBA()
			buf[base+0] = uint8(r >> 8)
			buf[base+1] = uint8(gr >> 8)
			buf[base+2] = uint8(b >> 8)
			buf[base+3] = uint8(a >> 8)
			return
		}
		buf[base+0] = uint8(rBg >> 8)
		buf[base+1] = uint8(gBg >> 8)
		buf[base+2] = uint8(bBg >> 8)
		buf[base+3] = uint8(aBg >> 8)
	})
}

// DensityPalette maps live-neighbour counts 0..8 to translucent overlay
// colours, from clear through blue to red.
var DensityPalette = []color.NRGBA{
	{R: 0, G: 0, B: 0, A: 0},
	{R: 20, G: 40, B: 120, A: 60},
	{R: 30, G: 90, B: 160, A: 90},
	{R: 40, G: 160, B: 120, A: 110},
	{R: 200, G: 180, B: 40, A: 130},
	{R: 220, G: 120, B: 30, A: 150},
	{R: 230, G: 70, B: 30, A: 170},
	{R: 240, G: 40, B: 40, A: 190},
	{R: 255, G: 0, B: 0, A: 210},
}

// fillDensityRGBA writes the live-neighbour count of every cell as a palette
// colour, premultiplied as ebiten expects. When the palette is empty the
// buffer is cleared to transparent black.
func fillDensityRGBA(buf []byte, g *core.Grid, palette []color.NRGBA) {
	if len(palette) == 0 {
		for i := 0; i < g.Len()*4; i++ {
			buf[i] = 0
		}
		return
	}

	last := len(palette) - 1
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Columns(); x++ {
			idx := g.AliveNeighbors(x, y)
			if idx > last {
				idx = last
			}
			base := g.Index(x, y) * 4
			col := color.RGBAModel.Convert(palette[idx]).(color.RGBA)
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}
