package app

import (
	"context"
	"log/slog"

	"colorlife/internal/core"
)

// BatchResult summarises a headless run.
type BatchResult struct {
	Generations int
	Population  int
	Peak        int
	Extinct     bool
}

// RunBatch advances sim up to generations times as fast as possible,
// ignoring the step interval. It stops early once every cell is dead, since
// an empty grid never changes again.
func RunBatch(ctx context.Context, sim core.Sim, generations int, logger *slog.Logger) (BatchResult, error) {
	res := BatchResult{Population: sim.Grid().AliveCount()}
	res.Peak = res.Population
	for i := 0; i < generations; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if res.Population == 0 {
			res.Extinct = true
			break
		}
		sim.Step()
		res.Generations++
		res.Population = sim.Grid().AliveCount()
		if res.Population > res.Peak {
			res.Peak = res.Population
		}
	}
	if res.Population == 0 {
		res.Extinct = true
	}
	logger.Info("batch finished",
		"generations", res.Generations,
		"population", res.Population,
		"peak", res.Peak,
		"extinct", res.Extinct,
	)
	return res, nil
}
