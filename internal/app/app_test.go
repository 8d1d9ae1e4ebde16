package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/sims/life"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	if err := os.WriteFile(path, []byte("columns: 40\nrows: 30\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"--config", path, "--set", "rows=12", "--set", "alive_ratio=0.5", "--scale", "4"})
	if err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	sim, err := cfg.Simulation()
	if err != nil {
		t.Fatalf("Simulation(): %v", err)
	}
	if sim.Columns != 40 {
		t.Errorf("columns = %d, want 40 from file", sim.Columns)
	}
	if sim.Rows != 12 {
		t.Errorf("rows = %d, want 12 from --set", sim.Rows)
	}
	if sim.AliveRatio != 0.5 {
		t.Errorf("alive_ratio = %v, want 0.5", sim.AliveRatio)
	}
	if sim.StepInterval != life.DefaultConfig().StepInterval {
		t.Errorf("step_interval = %v, want default", sim.StepInterval)
	}
	if cfg.Scale != 4 {
		t.Errorf("scale = %d, want 4", cfg.Scale)
	}
}

func TestConfigMissingFile(t *testing.T) {
	cfg := NewConfig()
	cfg.ConfigPath = filepath.Join(t.TempDir(), "nope.yaml")
	if _, err := cfg.Simulation(); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		scale   int
		tps     int
		wantErr bool
	}{
		{"defaults", 8, 60, false},
		{"zero scale", 0, 60, true},
		{"negative tps", 8, -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Scale, cfg.TPS = tt.scale, tt.tps
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func newSim(t *testing.T, cols, rows int, ratio float64) *life.Life {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Columns, cfg.Rows, cfg.AliveRatio = cols, rows, ratio
	cfg.StepInterval = time.Hour
	return life.New(cfg, quietLogger())
}

func TestRunBatch(t *testing.T) {
	sim := newSim(t, 24, 24, 0.3)
	start := sim.Grid().AliveCount()

	res, err := RunBatch(context.Background(), sim, 15, quietLogger())
	if err != nil {
		t.Fatalf("RunBatch: %v", err)
	}
	if res.Generations != sim.Generation() {
		t.Fatalf("result generations %d, sim generation %d", res.Generations, sim.Generation())
	}
	if res.Population != sim.Grid().AliveCount() {
		t.Fatalf("result population %d, grid %d", res.Population, sim.Grid().AliveCount())
	}
	if res.Peak < start || res.Peak < res.Population {
		t.Fatalf("peak %d below start %d or final %d", res.Peak, start, res.Population)
	}
}

func TestRunBatchStopsWhenExtinct(t *testing.T) {
	sim := newSim(t, 10, 10, 0)
	res, err := RunBatch(context.Background(), sim, 50, quietLogger())
	if err != nil {
		t.Fatal(err)
	}
	if !res.Extinct || res.Generations != 0 {
		t.Fatalf("result %+v, want extinct after 0 generations", res)
	}
}

func TestRunBatchCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunBatch(ctx, newSim(t, 8, 8, 0.5), 10, quietLogger()); err == nil {
		t.Fatal("expected context error")
	}
}

func runTerminal(t *testing.T, sim core.Sim, keys ...rune) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 30)

	term := NewTerminal(sim, screen, 120, 1, quietLogger())
	done := make(chan error, 1)
	go func() { done <- term.Run(context.Background()) }()

	for _, k := range keys {
		screen.InjectKey(tcell.KeyRune, k, tcell.ModNone)
	}
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop did not exit on q")
	}
}

func TestTerminalSingleStepAndQuit(t *testing.T) {
	sim := newSim(t, 20, 10, 0.4)
	runTerminal(t, sim, ' ', 'n', 'n')
	if sim.Generation() != 2 {
		t.Fatalf("generation = %d, want 2 after two single steps", sim.Generation())
	}
}

func TestTerminalReset(t *testing.T) {
	sim := newSim(t, 20, 10, 0.4)
	runTerminal(t, sim, 'n', 'r')
	if sim.Generation() != 0 {
		t.Fatalf("generation = %d, want 0 after reset", sim.Generation())
	}
}

func TestTerminalExitsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(context.Background())
	term := NewTerminal(newSim(t, 4, 4, 0.5), screen, 60, 1, quietLogger())
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx) }()
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("terminal loop ignored cancellation")
	}
}
