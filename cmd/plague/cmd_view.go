//go:build ebiten

package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"plague/internal/app"
	"plague/internal/core"
	"plague/internal/plague"
	"plague/internal/render"
)

func newViewCmd() *cobra.Command {
	viewCfg := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Run a simulation in a window",
		Long: `Open a window showing the population grid. Click an individual to
infect it. Press Q or Esc to quit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("scale") {
				viewCfg.Scale = cfg.Viewer.Scale
			}
			if !cmd.Flags().Changed("tps") {
				viewCfg.TPS = cfg.Viewer.TPS
			}

			engineCfg := cfg.Simulation.Engine()
			board := render.NewBoard(core.NewTopology(engineCfg.GroupSize, engineCfg.Columns))
			sim, err := plague.New(engineCfg, plague.WithLogger(logger), plague.WithDeltaHandler(board.Apply))
			if err != nil {
				return err
			}
			defer sim.Stop()

			if err := seedInfections(sim, cfg, logger); err != nil {
				return err
			}
			if err := sim.Start(); err != nil {
				return err
			}

			game := app.New(sim, board, viewCfg, logger)
			ebiten.SetWindowTitle("plague")
			ebiten.SetTPS(viewCfg.TPS)
			ebiten.SetWindowSize(game.Layout(0, 0))
			if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
				return err
			}
			return nil
		},
	}
	addSimulationFlags(cmd)
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	viewCfg.Bind(fs)
	cmd.Flags().AddGoFlagSet(fs)
	return cmd
}
