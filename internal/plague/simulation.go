package plague

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	errgo "gopkg.in/errgo.v1"

	"plague/internal/core"
	"plague/internal/logging"
)

// Stats counts tick outcomes.
type Stats struct {
	Ticks   uint64 `json:"ticks"`
	Skipped uint64 `json:"skipped"`
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithDeltaHandler registers the consumer notified after every applied batch.
// The handler runs on the mutation goroutine.
func WithDeltaHandler(fn func(Batch)) Option {
	return func(s *Simulation) { s.handler = fn }
}

// WithLogger sets the logger used for tick and request events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Simulation) { s.log = l }
}

// WithTicker replaces the wall-clock tick source.
func WithTicker(t core.Ticker) Option {
	return func(s *Simulation) { s.ticker = t }
}

// Simulation drives infection spread over a population on a grid.
//
// Ticks compute their delta on a separate goroutine from a snapshot taken on
// the mutation context and apply it back through the Publisher. At most one
// computation is outstanding: a tick that comes due while one is in flight is
// dropped, never queued.
type Simulation struct {
	cfg     Config
	topo    core.Topology
	pop     *Population
	engine  *Engine
	pub     *Publisher
	ticker  core.Ticker
	handler func(Batch)
	log     *slog.Logger

	busy    *semaphore.Weighted
	ticks   atomic.Uint64
	skipped atomic.Uint64
	started atomic.Bool
	stop    sync.Once
}

// New validates cfg and builds a stopped simulation with every individual
// healthy.
func New(cfg Config, opts ...Option) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errgo.Mask(err, errgo.Is(ErrInvalidConfiguration))
	}
	s := &Simulation{
		cfg:  cfg,
		topo: core.NewTopology(cfg.GroupSize, cfg.Columns),
		pop:  NewPopulation(cfg.GroupSize),
		busy: semaphore.NewWeighted(1),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = logging.OrDiscard(s.log)
	if s.ticker == nil {
		s.ticker = core.NewClock()
	}
	s.engine = NewEngine(cfg.InfectionFactor, core.NewRNG(cfg.Seed))
	s.pub = NewPublisher(s.pop, s.handler, s.log)
	return s, nil
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() Config { return s.cfg }

// Topology returns the grid layout.
func (s *Simulation) Topology() core.Topology { return s.topo }

// Start begins ticking every Config.Period.
func (s *Simulation) Start() error {
	select {
	case <-s.pub.done:
		return ErrStopped
	default:
	}
	if !s.started.CompareAndSwap(false, true) {
		return errgo.New("simulation already started")
	}
	s.log.Info("simulation started",
		"group_size", s.cfg.GroupSize,
		"columns", s.cfg.Columns,
		"rows", s.topo.Rows,
		"infection_factor", s.cfg.InfectionFactor,
		"period", s.cfg.Period,
	)
	if err := s.ticker.Start(s.cfg.Period, s.tick); err != nil {
		s.started.Store(false)
		return errgo.Notef(err, "cannot start clock")
	}
	return nil
}

// Stop halts the clock and the mutation context. It is idempotent.
func (s *Simulation) Stop() {
	s.stop.Do(func() {
		// Close first so a tick blocked on the mutation context returns
		// before the clock waits for it.
		s.pub.Close()
		s.ticker.Stop()
		s.log.Info("simulation stopped", "ticks", s.ticks.Load(), "skipped", s.skipped.Load())
	})
}

func (s *Simulation) tick() {
	if !s.busy.TryAcquire(1) {
		n := s.skipped.Add(1)
		s.log.Debug("tick skipped, computation in flight", "skipped", n)
		return
	}
	var snap Snapshot
	if err := s.pub.Do(func(pop *Population) { snap = pop.Snapshot() }); err != nil {
		s.busy.Release(1)
		return
	}
	go s.compute(snap)
}

func (s *Simulation) compute(snap Snapshot) {
	defer s.busy.Release(1)
	delta := s.engine.ComputeDelta(snap, s.topo)
	n := s.ticks.Add(1)
	b, err := s.pub.Apply(delta, n)
	if err != nil {
		return
	}
	s.log.Debug("tick applied", "tick", n, "new", len(b.Changed), "healthy", b.Healthy, "infected", b.Infected)
	s.log.Log(context.Background(), logging.LevelTrace, "tick delta", "tick", n, "changed", b.Changed)
}

// InfectSingle handles a manual infection request for individual i. It is
// serialized with tick application on the mutation context.
func (s *Simulation) InfectSingle(i int) (Batch, error) {
	b, err := s.pub.InfectSingle(i)
	if err != nil {
		return Batch{}, errgo.Mask(err, errgo.Is(ErrIndexOutOfRange), errgo.Is(ErrStopped))
	}
	s.log.Info("manual infection", "index", i, "changed", len(b.Changed) > 0, "infected", b.Infected)
	return b, nil
}

// Counts returns the healthy and infected counters as of the latest batch.
func (s *Simulation) Counts() (healthy, infected int, err error) {
	err = s.pub.Do(func(pop *Population) {
		healthy, infected = pop.Healthy(), pop.Infected()
	})
	return healthy, infected, err
}

// Snapshot copies the current statuses.
func (s *Simulation) Snapshot() (Snapshot, error) {
	var snap Snapshot
	err := s.pub.Do(func(pop *Population) { snap = pop.Snapshot() })
	return snap, err
}

// Verify recounts the population and reports a mismatch with the running
// counters.
func (s *Simulation) Verify() error {
	var (
		h, i, rh, ri int
	)
	if err := s.pub.Do(func(pop *Population) {
		h, i = pop.Healthy(), pop.Infected()
		rh, ri = pop.Recount()
	}); err != nil {
		return err
	}
	if h != rh || i != ri || h+i != s.cfg.GroupSize {
		return errgo.Newf("counter mismatch: healthy=%d infected=%d, recount healthy=%d infected=%d, group size %d", h, i, rh, ri, s.cfg.GroupSize)
	}
	return nil
}

// Saturated reports whether every individual is infected.
func (s *Simulation) Saturated() (bool, error) {
	_, infected, err := s.Counts()
	return infected == s.cfg.GroupSize, err
}

// Stats returns tick counters.
func (s *Simulation) Stats() Stats {
	return Stats{Ticks: s.ticks.Load(), Skipped: s.skipped.Load()}
}

// Done is closed once the mutation context has shut down after Stop.
func (s *Simulation) Done() <-chan struct{} { return s.pub.Done() }
