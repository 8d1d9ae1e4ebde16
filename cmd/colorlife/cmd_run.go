package main

import (
	"colorlife/internal/app"
	"colorlife/internal/render"

	"github.com/spf13/cobra"
)

func newRunCmd(cfg *app.Config) *cobra.Command {
	var (
		generations int
		printGrid   bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Advance the simulation headlessly and report the outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, logger, err := setup(cmd, cfg)
			if err != nil {
				return err
			}
			if _, err := app.RunBatch(cmd.Context(), sim, generations, logger); err != nil {
				return err
			}
			if printGrid {
				return render.WriteText(cmd.OutOrStdout(), sim.Grid(), '#', '.')
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&generations, "generations", "g", 100, "number of generations to advance")
	cmd.Flags().BoolVar(&printGrid, "print", false, "print the final grid as text")
	return cmd
}
