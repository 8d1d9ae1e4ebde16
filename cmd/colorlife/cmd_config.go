package main

import (
	"colorlife/internal/app"

	"github.com/spf13/cobra"
)

func newConfigCmd(cfg *app.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective simulation configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			simCfg, err := cfg.Simulation()
			if err != nil {
				return err
			}
			data, err := simCfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
