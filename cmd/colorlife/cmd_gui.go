package main

import (
	"colorlife/internal/app"

	"github.com/spf13/cobra"
)

func newGUICmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the simulation in a window (build with -tags ebiten)",
		Long: `Open the simulation in a window.

Keys: space pause, n single step, r reset, s new seed, h toggle panel,
d toggle neighbour density, q/Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, logger, err := setup(cmd, cfg)
			if err != nil {
				return err
			}
			return app.Run(sim, cfg, sim.Config().Seed, logger)
		},
	}
}
