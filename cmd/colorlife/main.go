package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"colorlife/internal/app"
	"colorlife/internal/logging"
	"colorlife/internal/sims/life"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := app.NewConfig()
	rootCmd := &cobra.Command{
		Use:   "colorlife",
		Short: "Colour-preserving Game of Life on a bounded grid",
		Long: `colorlife runs Conway's Game of Life on a grid with hard edges.
Each cell keeps the colour it was given when the grid was populated,
and generations advance at a fixed wall-clock interval independent of
the frame rate.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cfg.Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRunCmd(cfg),
		newTermCmd(cfg),
		newGUICmd(cfg),
		newConfigCmd(cfg),
		newVersionCmd(),
	)
	return rootCmd
}

// setup resolves configuration and builds the logger and simulation shared
// by every front end.
func setup(cmd *cobra.Command, cfg *app.Config) (*life.Life, *slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	simCfg, err := cfg.Simulation()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogger(cfg.LogLevel, cmd.ErrOrStderr())
	return life.New(simCfg, logger), logger, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "colorlife %s\n", version)
		},
	}
}
