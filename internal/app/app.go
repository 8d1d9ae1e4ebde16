//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/render"
	"colorlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	clock   *core.Clock
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	background color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config, seed int64, logger *slog.Logger) *Game {
	size := sim.Size()
	hudWidth := 0
	if cfg.HUD {
		hudWidth = HUDWidth
	}
	return &Game{
		sim:        sim,
		clock:      core.NewClock(),
		painter:    render.NewGridPainter(size.W, size.H),
		hud:        ui.NewHUD(sim, hudWidth),
		overlay:    ui.NewOverlay(sim, size, cfg.Scale),
		log:        logger,
		background: render.Background,
		scale:      cfg.Scale,
		seed:       seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation when the step
// interval has elapsed.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.log.Debug("pause toggled", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.hud.Update()
	g.overlay.Update()

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case !g.paused:
		g.sim.Tick(g.clock.Elapsed())
	}
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.painter.Blit(screen, g.sim.Grid(), g.background, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// Run opens the window and drives the simulation until it is closed.
func Run(sim core.Sim, cfg *Config, seed int64, logger *slog.Logger) error {
	game := New(sim, cfg, seed, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("colorlife — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	logger.Info("window opened", "width", w, "height", h, "tps", cfg.TPS)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
