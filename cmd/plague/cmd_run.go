package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"plague/internal/plague"
)

type runSummary struct {
	GroupSize int          `json:"group_size"`
	Columns   int          `json:"columns"`
	Rows      int          `json:"rows"`
	Healthy   int          `json:"healthy"`
	Infected  int          `json:"infected"`
	Saturated bool         `json:"saturated"`
	Stats     plague.Stats `json:"stats"`
	Reason    string       `json:"reason"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation headless and print each tick",
		Long: `Run a simulation without a GUI. Each applied tick is printed as it
happens. The run ends when every individual is infected, when --ticks ticks
have been applied, or on interrupt.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			maxTicks, _ := cmd.Flags().GetUint64("ticks")
			quiet, _ := cmd.Flags().GetBool("quiet")

			out := cmd.OutOrStdout()
			progress := out
			if jsonOut || quiet {
				progress = io.Discard
			}

			engineCfg := cfg.Simulation.Engine()
			finished := make(chan string, 1)
			var once sync.Once
			finish := func(reason string) {
				once.Do(func() { finished <- reason })
			}
			handler := func(b plague.Batch) {
				if b.Manual {
					fmt.Fprintf(progress, "infect %v: healthy=%d infected=%d\n", b.Changed, b.Healthy, b.Infected)
				} else {
					fmt.Fprintf(progress, "tick %d: +%d healthy=%d infected=%d\n", b.Tick, len(b.Changed), b.Healthy, b.Infected)
				}
				switch {
				case b.Infected == engineCfg.GroupSize:
					finish("saturated")
				case maxTicks > 0 && b.Tick >= maxTicks:
					finish("tick limit")
				}
			}

			sim, err := plague.New(engineCfg, plague.WithDeltaHandler(handler), plague.WithLogger(logger))
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

			sigCh := make(chan os.Signal, 1)
			notifySignals(sigCh)
			defer stopSignals(sigCh)
			var reason string
			select {
			case reason = <-finished:
			case sig := <-sigCh:
				reason = "signal " + sig.String()
			case <-cmd.Context().Done():
				reason = "cancelled"
			}

			healthy, infected, err := sim.Counts()
			if err != nil {
				return err
			}
			sim.Stop()
			<-sim.Done()

			topo := sim.Topology()
			summary := runSummary{
				GroupSize: sim.Config().GroupSize,
				Columns:   topo.Columns,
				Rows:      topo.Rows,
				Healthy:   healthy,
				Infected:  infected,
				Saturated: infected == topo.Len,
				Stats:     sim.Stats(),
				Reason:    reason,
			}
			if jsonOut {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			}
			fmt.Fprintf(out, "stopped (%s) after %d ticks, %d skipped: healthy=%d infected=%d\n",
				summary.Reason, summary.Stats.Ticks, summary.Stats.Skipped, summary.Healthy, summary.Infected)
			return nil
		},
	}
	addSimulationFlags(cmd)
	cmd.Flags().Uint64("ticks", 0, "Stop after this many ticks (0 runs until saturated)")
	cmd.Flags().BoolP("quiet", "q", false, "Only print the summary")
	return cmd
}
