//go:build ebiten

package ui

import (
	"colorlife/internal/core"
	"colorlife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals on top of the base simulation.
// D toggles a heat map of live-neighbour counts.
type Overlay struct {
	src         core.GridSource
	scale       int
	showDensity bool
	painter     *render.GridPainter
}

// NewOverlay constructs an overlay for a grid of the given size.
func NewOverlay(src core.GridSource, size core.Size, scale int) *Overlay {
	return &Overlay{
		src:     src,
		scale:   scale,
		painter: render.NewGridPainter(size.W, size.H),
	}
}

// Update handles overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		o.showDensity = !o.showDensity
	}
}

// Draw paints enabled overlays over the simulation view.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.showDensity {
		return
	}
	o.painter.BlitDensity(screen, o.src.Grid(), render.DensityPalette, o.scale)
}
