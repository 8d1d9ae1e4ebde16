//go:build ebiten

package ui

import (
	"image/color"

	"colorlife/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	visible    bool
	panel      *ebiten.Image
	lastHeight int
	lines      []hudLine
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width, visible: width > 0}
}

// Width returns the horizontal space reserved for the panel.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter lines and handles the H toggle.
func (h *HUD) Update() {
	if h == nil || h.width <= 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
	h.lines = hudLines(h.sim.Name(), h.sim.Parameters())
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	if h.visible {
		h.drawLines()
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawLines() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.lines {
		switch line.kind {
		case lineTitle:
			text.Draw(h.panel, line.text, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
		case lineGroup:
			y += groupSpacing
			text.Draw(h.panel, line.text, face, panelPadding, y, color.RGBA{R: 150, G: 170, B: 220, A: 255})
		default:
			text.Draw(h.panel, line.text, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, line.value)
			text.Draw(h.panel, line.value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
		y += lineHeight
	}
}

const (
	panelPadding   = 12
	headerBaseline = 13
	groupSpacing   = 6
	lineHeight     = 16
)
