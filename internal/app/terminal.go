package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/logging"
	"colorlife/internal/render"

	"github.com/gdamore/tcell/v2"
)

// Terminal drives a simulation on a tcell screen. Key events arrive on a
// separate goroutine and are handed to the loop over a channel, so only the
// loop touches the simulation.
type Terminal struct {
	sim    core.Sim
	screen tcell.Screen
	view   *render.TerminalView
	clock  *core.Clock
	frame  time.Duration
	log    *slog.Logger

	paused bool
	seed   int64
}

// NewTerminal prepares a terminal front end redrawing tps times per second.
// The screen must already be initialised.
func NewTerminal(sim core.Sim, screen tcell.Screen, tps int, seed int64, logger *slog.Logger) *Terminal {
	if tps <= 0 {
		tps = 60
	}
	return &Terminal{
		sim:    sim,
		screen: screen,
		view:   render.NewTerminalView(screen),
		clock:  core.NewClock(),
		frame:  time.Second / time.Duration(tps),
		log:    logger,
		seed:   seed,
	}
}

// Run loops until q/Esc is pressed, the event source closes or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	go t.screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(t.frame)
	defer ticker.Stop()

	t.draw(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || t.handle(ev) {
				return nil
			}
			t.draw(ctx)
		case <-ticker.C:
			if !t.paused {
				t.sim.Tick(t.clock.Elapsed())
			}
			t.draw(ctx)
		}
	}
}

// handle applies a key or resize event and reports whether to quit.
func (t *Terminal) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				t.paused = !t.paused
				t.log.Debug("pause toggled", "paused", t.paused)
			case 'n':
				t.sim.Step()
			case 'r':
				t.sim.Reset(t.seed)
			case 's':
				t.seed = time.Now().UnixNano()
				t.sim.Reset(t.seed)
			}
		}
	}
	return false
}

func (t *Terminal) draw(ctx context.Context) {
	grid := t.sim.Grid()
	alive := grid.AliveCount()
	status := fmt.Sprintf("gen %d  alive %d/%d", t.sim.Generation(), alive, grid.Len())
	if t.paused {
		status += "  [paused]"
	}
	t.view.Draw(grid, status)
	t.log.Log(ctx, logging.LevelTrace, "frame", "generation", t.sim.Generation(), "alive", alive)
}
