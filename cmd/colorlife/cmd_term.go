package main

import (
	"fmt"

	"colorlife/internal/app"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newTermCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "term",
		Short: "Run the simulation in the terminal",
		Long: `Run the simulation in the terminal.

Keys: space pause, n single step, r reset, s new seed, q/Esc quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, logger, err := setup(cmd, cfg)
			if err != nil {
				return err
			}
			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("create screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("init screen: %w", err)
			}
			defer screen.Fini()

			return app.NewTerminal(sim, screen, cfg.TPS, sim.Config().Seed, logger).Run(cmd.Context())
		},
	}
}
