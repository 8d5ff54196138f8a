package plague

import (
	"log/slog"
	"sync"

	"plague/internal/logging"
)

// Batch describes one applied mutation: a tick's delta or a manual
// infection request.
type Batch struct {
	// Changed holds exactly the indices whose status changed in this batch.
	Changed  []int
	Healthy  int
	Infected int

	// Tick numbers applied ticks from 1; it is 0 for manual batches.
	Tick   uint64
	Manual bool
}

// Publisher owns the mutation context: a single goroutine that performs
// every read and write of the population, one request at a time. Ticks and
// manual infections therefore never interleave.
//
// Handlers run on the mutation goroutine and must not call back into the
// publisher synchronously.
type Publisher struct {
	pop     *Population
	handler func(Batch)
	log     *slog.Logger

	queue  chan func()
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

// NewPublisher starts the mutation goroutine for pop. handler may be nil.
func NewPublisher(pop *Population, handler func(Batch), logger *slog.Logger) *Publisher {
	p := &Publisher{
		pop:     pop,
		handler: handler,
		log:     logging.OrDiscard(logger),
		queue:   make(chan func()),
		done:    make(chan struct{}),
		exited:  make(chan struct{}),
	}
	go p.loop()
	return p
}

func (p *Publisher) loop() {
	defer close(p.exited)
	for {
		select {
		case fn := <-p.queue:
			fn()
		case <-p.done:
			return
		}
	}
}

// Do runs fn on the mutation context and waits for it to return.
func (p *Publisher) Do(fn func(pop *Population)) error {
	ran := make(chan struct{})
	select {
	case p.queue <- func() {
		defer close(ran)
		fn(p.pop)
	}:
	case <-p.done:
		return ErrStopped
	}
	<-ran
	return nil
}

// Apply infects every index of d as one batch and notifies the handler.
func (p *Publisher) Apply(d Delta, tick uint64) (Batch, error) {
	var b Batch
	err := p.Do(func(pop *Population) {
		b = p.commit(d, tick, false)
	})
	return b, err
}

// InfectSingle infects individual i as its own batch. An out-of-range index
// is rejected without touching the population or notifying the handler.
func (p *Publisher) InfectSingle(i int) (Batch, error) {
	var (
		b      Batch
		reject error
	)
	err := p.Do(func(pop *Population) {
		if i < 0 || i >= pop.Len() {
			reject = outOfRange(i, pop.Len())
			return
		}
		b = p.commit([]int{i}, 0, true)
	})
	if err != nil {
		return Batch{}, err
	}
	if reject != nil {
		return Batch{}, reject
	}
	return b, nil
}

// commit must run on the mutation goroutine.
func (p *Publisher) commit(indices []int, tick uint64, manual bool) Batch {
	changed := make([]int, 0, len(indices))
	for _, i := range indices {
		ok, err := p.pop.SetInfected(i)
		if err != nil {
			p.log.Warn("dropping out of range index", "index", i, "err", err)
			continue
		}
		if ok {
			changed = append(changed, i)
		}
	}
	b := Batch{
		Changed:  changed,
		Healthy:  p.pop.Healthy(),
		Infected: p.pop.Infected(),
		Tick:     tick,
		Manual:   manual,
	}
	if p.handler != nil {
		p.handler(b)
	}
	return b
}

// Close stops the mutation goroutine. Pending and future requests fail with
// ErrStopped. A batch already running may complete after Close returns.
func (p *Publisher) Close() {
	p.once.Do(func() { close(p.done) })
}

// Done is closed once the mutation goroutine has exited.
func (p *Publisher) Done() <-chan struct{} { return p.exited }
