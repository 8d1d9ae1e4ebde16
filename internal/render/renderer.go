//go:build ebiten

package render

import (
	"image/color"

	"colorlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a grid snapshot.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	if w > 0 && h > 0 {
		gp.img = ebiten.NewImage(w, h)
	}
	return gp
}

// Blit uploads the live cells of g into the painter image and draws it
// scaled so that each cell covers scale*scale pixels.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, bg color.Color, scale int) {
	if gp.img == nil || g.Columns() != gp.w || g.Rows() != gp.h {
		return
	}
	fillCellRGBA(gp.buf, g, bg)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, scale)
}

// BlitDensity draws the live-neighbour density of g using palette.
func (gp *GridPainter) BlitDensity(dst *ebiten.Image, g *core.Grid, palette []color.NRGBA, scale int) {
	if gp.img == nil || g.Columns() != gp.w || g.Rows() != gp.h {
		return
	}
	fillDensityRGBA(gp.buf, g, palette)
	gp.img.WritePixels(gp.buf)
	gp.draw(dst, scale)
}

func (gp *GridPainter) draw(dst *ebiten.Image, scale int) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
