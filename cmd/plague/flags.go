package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	errgo "gopkg.in/errgo.v1"

	"plague/internal/config"
	"plague/internal/core"
	"plague/internal/logging"
	"plague/internal/plague"
)

// addSimulationFlags registers the startup parameters shared by run and view.
func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().Int("group-size", 0, "Number of individuals")
	cmd.Flags().Int("infection-factor", 0, "Maximum infections caused by one individual per tick")
	cmd.Flags().Float64("period", 0, "Seconds between ticks")
	cmd.Flags().Int("columns", 0, "Grid width")
	cmd.Flags().Int64("seed", 0, "Random seed")
	cmd.Flags().IntSlice("infect", nil, "Individuals infected before the first tick")
}

// loadConfig reads the config file and environment, then applies any flags
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.PlagueConfig, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level, _ = flags.GetString("log-level")
	}
	if flags.Lookup("group-size") != nil {
		if flags.Changed("group-size") {
			cfg.Simulation.GroupSize, _ = flags.GetInt("group-size")
		}
		if flags.Changed("infection-factor") {
			cfg.Simulation.InfectionFactor, _ = flags.GetInt("infection-factor")
		}
		if flags.Changed("period") {
			cfg.Simulation.Period, _ = flags.GetFloat64("period")
		}
		if flags.Changed("columns") {
			cfg.Simulation.Columns, _ = flags.GetInt("columns")
		}
		if flags.Changed("seed") {
			cfg.Simulation.Seed, _ = flags.GetInt64("seed")
		}
		if flags.Changed("infect") {
			cfg.Simulation.InitialInfected, _ = flags.GetIntSlice("infect")
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewLogger(cfg.Logging.Level, os.Stderr), nil
}

// seedInfections issues the configured initial infections. With none
// configured a single individual is picked from the seed.
func seedInfections(sim *plague.Simulation, cfg *config.PlagueConfig, logger *slog.Logger) error {
	initial := cfg.Simulation.InitialInfected
	if len(initial) == 0 {
		i := core.NewRNG(cfg.Simulation.Seed).IntN(cfg.Simulation.GroupSize)
		logger.Info("no initial infections configured, picking one", "index", i)
		initial = []int{i}
	}
	for _, i := range initial {
		if _, err := sim.InfectSingle(i); err != nil {
			return errgo.Notef(err, "cannot infect %d", i)
		}
	}
	return nil
}
