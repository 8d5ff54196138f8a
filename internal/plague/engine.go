package plague

import "plague/internal/core"

// Engine computes the next generation's newly infected individuals.
//
// Each infected individual in the snapshot picks min(factor, |candidates|)
// of its healthy neighbours uniformly without replacement; the picks of all
// infected individuals are unioned. Only the snapshot is consulted, so an
// individual infected during a tick cannot spread until the next one.
//
// Engine reuses internal buffers and its RNG and is not safe for concurrent
// use.
type Engine struct {
	factor int
	rng    *core.RNG

	neighbors  []int
	candidates []int
}

// NewEngine returns an engine with the given infection factor.
func NewEngine(factor int, rng *core.RNG) *Engine {
	if rng == nil {
		rng = core.NewRNG(1)
	}
	return &Engine{factor: factor, rng: rng}
}

// ComputeDelta returns the individuals infected by one tick.
func (e *Engine) ComputeDelta(s Snapshot, topo core.Topology) Delta {
	var picked []int
	for i, st := range s.statuses {
		if st != Infected {
			continue
		}
		e.neighbors = topo.AppendNeighbors(e.neighbors[:0], i)
		e.candidates = e.candidates[:0]
		for _, n := range e.neighbors {
			if n < len(s.statuses) && s.statuses[n] == Healthy {
				e.candidates = append(e.candidates, n)
			}
		}
		if len(e.candidates) == 0 {
			continue
		}
		picked = e.rng.Sample(picked, e.candidates, e.factor)
	}
	return NewDelta(picked)
}

// Step computes one tick against pop and applies it immediately, returning
// the indices that changed. It is the single-goroutine path used by batch
// experiments; pop must not be shared.
func (e *Engine) Step(pop *Population, topo core.Topology) []int {
	delta := e.ComputeDelta(pop.Snapshot(), topo)
	changed := make([]int, 0, len(delta))
	for _, i := range delta {
		if ok, _ := pop.SetInfected(i); ok {
			changed = append(changed, i)
		}
	}
	return changed
}
