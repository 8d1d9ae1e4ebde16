package life

import (
	"log/slog"
	"strconv"
	"time"

	"colorlife/internal/core"
	rng "colorlife/pkg/core"
)

// Life owns the current generation of a colour-preserving Game of Life with
// clipped edges, and the scheduler that decides when to advance it.
type Life struct {
	cfg        Config
	grid       *core.Grid
	sched      *core.StepScheduler
	generation int
	log        *slog.Logger
}

// New returns a Life simulation populated from cfg.Seed.
func New(cfg Config, logger *slog.Logger) *Life {
	if logger == nil {
		logger = slog.Default()
	}
	cfg = cfg.Normalize()
	l := &Life{
		cfg:   cfg,
		sched: core.NewStepScheduler(cfg.StepInterval),
		log:   logger.With("sim", "life"),
	}
	l.Reset(cfg.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Grid returns the current generation. The grid is immutable; a step
// replaces it rather than changing it.
func (l *Life) Grid() *core.Grid { return l.grid }

// Generation returns the number of generations advanced since the last reset.
func (l *Life) Generation() int { return l.generation }

// Population returns the number of live cells in the current generation.
func (l *Life) Population() int { return l.grid.AliveCount() }

// Config returns the normalized configuration.
func (l *Life) Config() Config { return l.cfg }

// Reset repopulates the board using the provided seed.
func (l *Life) Reset(seed int64) {
	l.grid = Populate(l.cfg.Columns, l.cfg.Rows, l.cfg.AliveRatio, rng.NewRNG(seed))
	l.generation = 0
	l.log.Info("reset",
		"seed", seed,
		"columns", l.cfg.Columns,
		"rows", l.cfg.Rows,
		"alive", l.grid.AliveCount(),
	)
}

// Tick advances one generation if the step interval has elapsed by now, the
// time since the simulation clock started. It reports whether a step ran.
func (l *Life) Tick(now time.Duration) bool {
	if !l.sched.ShouldStep(now) {
		return false
	}
	l.Step()
	return true
}

// Step advances the simulation by one generation unconditionally.
func (l *Life) Step() {
	l.grid = Advance(l.grid)
	l.generation++
	l.log.Debug("step", "generation", l.generation, "alive", l.grid.AliveCount())
}

// Parameters exposes the configuration and live counters for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("columns", "Columns", l.cfg.Columns),
				intParam("rows", "Rows", l.cfg.Rows),
				int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				floatParam("alive_ratio", "Initial alive ratio", l.cfg.AliveRatio),
				{
					Key:   "step_interval",
					Label: "Step interval",
					Type:  core.ParamTypeDuration,
					Value: l.cfg.StepInterval.String(),
				},
			},
		},
		{
			Name: "Status",
			Params: []core.Parameter{
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.Population()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
