// Package sweep runs batches of headless simulations across infection
// factors and seeds and summarizes how quickly each population saturates.
package sweep

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	errgo "gopkg.in/errgo.v1"

	"plague/internal/core"
	"plague/internal/plague"
)

// Params describes a sweep.
type Params struct {
	GroupSize int
	Columns   int
	Factors   []int
	// Seeds is the number of runs per factor; run k uses BaseSeed+k.
	Seeds    int
	BaseSeed int64
	// MaxTicks caps every run.
	MaxTicks int
	// Start is the first infected individual; negative means the centre of
	// the grid.
	Start   int
	Workers int
}

// DefaultParams returns a small sweep over factors 1 to 4.
func DefaultParams() Params {
	return Params{
		GroupSize: 400,
		Columns:   20,
		Factors:   []int{1, 2, 3, 4},
		Seeds:     16,
		BaseSeed:  1,
		MaxTicks:  1000,
		Start:     -1,
		Workers:   runtime.NumCPU(),
	}
}

// Run is the outcome of one simulation.
type Run struct {
	Factor    int
	Seed      int64
	Ticks     int
	Saturated bool
	// Curve holds the infected count after each tick.
	Curve []int
}

// Result summarizes the runs for one infection factor.
type Result struct {
	Factor    int     `json:"factor"`
	Runs      int     `json:"runs"`
	Saturated int     `json:"saturated"`
	MinTicks  int     `json:"min_ticks"`
	MaxTicks  int     `json:"max_ticks"`
	MeanTicks float64 `json:"mean_ticks"`
}

func (p Params) validate() error {
	if len(p.Factors) == 0 {
		return errgo.New("no infection factors to sweep")
	}
	if p.Seeds <= 0 {
		return errgo.Newf("seeds must be positive, got %d", p.Seeds)
	}
	if p.MaxTicks <= 0 {
		return errgo.Newf("max ticks must be positive, got %d", p.MaxTicks)
	}
	if p.Start >= p.GroupSize {
		return errgo.WithCausef(nil, plague.ErrIndexOutOfRange, "start index %d out of range [0, %d)", p.Start, p.GroupSize)
	}
	for _, f := range p.Factors {
		cfg := plague.Config{GroupSize: p.GroupSize, InfectionFactor: f, Period: 1, Columns: p.Columns}
		if err := cfg.Validate(); err != nil {
			return errgo.Mask(err, errgo.Is(plague.ErrInvalidConfiguration))
		}
	}
	return nil
}

// Sweep runs every factor/seed combination on a bounded worker pool and
// returns one Result per factor in ascending factor order.
func Sweep(ctx context.Context, p Params) ([]Result, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := p.Start
	if start < 0 {
		topo := core.NewTopology(p.GroupSize, p.Columns)
		var ok bool
		if start, ok = topo.Index(topo.Columns/2, topo.Rows/2); !ok {
			start = p.GroupSize / 2
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var (
		mu   sync.Mutex
		runs = map[int][]Run{}
	)
	for _, factor := range p.Factors {
		for k := 0; k < p.Seeds; k++ {
			factor, seed := factor, p.BaseSeed+int64(k)
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				run, err := RunOne(plague.Config{
					GroupSize:       p.GroupSize,
					InfectionFactor: factor,
					Columns:         p.Columns,
					Seed:            seed,
				}, start, p.MaxTicks)
				if err != nil {
					return err
				}
				mu.Lock()
				runs[factor] = append(runs[factor], run)
				mu.Unlock()
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summarize(runs), nil
}

// RunOne steps a fresh population from a single infected individual until
// it saturates, stops spreading, or reaches maxTicks. A start outside the
// population fails with plague.ErrIndexOutOfRange as the cause.
func RunOne(cfg plague.Config, start, maxTicks int) (Run, error) {
	topo := core.NewTopology(cfg.GroupSize, cfg.Columns)
	pop := plague.NewPopulation(cfg.GroupSize)
	if _, err := pop.SetInfected(start); err != nil {
		return Run{}, errgo.Mask(err, errgo.Is(plague.ErrIndexOutOfRange))
	}
	engine := plague.NewEngine(cfg.InfectionFactor, core.NewRNG(cfg.Seed))

	run := Run{Factor: cfg.InfectionFactor, Seed: cfg.Seed}
	for run.Ticks < maxTicks && pop.Healthy() > 0 {
		changed := engine.Step(pop, topo)
		run.Ticks++
		run.Curve = append(run.Curve, pop.Infected())
		if len(changed) == 0 {
			break
		}
	}
	run.Saturated = pop.Healthy() == 0
	return run, nil
}

func summarize(runs map[int][]Run) []Result {
	results := make([]Result, 0, len(runs))
	for factor, rs := range runs {
		r := Result{Factor: factor, Runs: len(rs)}
		total := 0
		for i, run := range rs {
			if i == 0 || run.Ticks < r.MinTicks {
				r.MinTicks = run.Ticks
			}
			if run.Ticks > r.MaxTicks {
				r.MaxTicks = run.Ticks
			}
			if run.Saturated {
				r.Saturated++
			}
			total += run.Ticks
		}
		if len(rs) > 0 {
			r.MeanTicks = float64(total) / float64(len(rs))
		}
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Factor < results[j].Factor })
	return results
}
