package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"plague/internal/sweep"
)

func newSweepCmd() *cobra.Command {
	defaults := sweep.DefaultParams()
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure ticks to saturation across infection factors",
		Long: `Run many headless simulations, without the clock, for each infection
factor and report how many ticks the population takes to become fully
infected.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := defaults
			flags := cmd.Flags()
			p.GroupSize, _ = flags.GetInt("group-size")
			p.Columns, _ = flags.GetInt("columns")
			p.Factors, _ = flags.GetIntSlice("factors")
			p.Seeds, _ = flags.GetInt("seeds")
			p.BaseSeed, _ = flags.GetInt64("seed")
			p.MaxTicks, _ = flags.GetInt("max-ticks")
			p.Start, _ = flags.GetInt("start")
			p.Workers, _ = flags.GetInt("workers")

			results, err := sweep.Sweep(cmd.Context(), p)
			if err != nil {
				return err
			}

			jsonOut, _ := flags.GetBool("json")
			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FACTOR\tRUNS\tSATURATED\tMIN\tMEAN\tMAX")
			for _, r := range results {
				fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.1f\t%d\n", r.Factor, r.Runs, r.Saturated, r.MinTicks, r.MeanTicks, r.MaxTicks)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int("group-size", defaults.GroupSize, "Number of individuals")
	cmd.Flags().Int("columns", defaults.Columns, "Grid width")
	cmd.Flags().IntSlice("factors", defaults.Factors, "Infection factors to compare")
	cmd.Flags().Int("seeds", defaults.Seeds, "Runs per factor")
	cmd.Flags().Int64("seed", defaults.BaseSeed, "Seed of the first run")
	cmd.Flags().Int("max-ticks", defaults.MaxTicks, "Tick cap per run")
	cmd.Flags().Int("start", defaults.Start, "First infected individual (-1 for the grid centre)")
	cmd.Flags().Int("workers", defaults.Workers, "Number of worker goroutines")
	return cmd
}
