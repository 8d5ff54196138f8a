package core

import (
	"sync"
	"time"

	errgo "gopkg.in/errgo.v1"
)

// ErrClockRunning is returned by Start when the clock is already ticking.
var ErrClockRunning = errgo.New("clock already running")

// Ticker is a source of periodic ticks. Clock implements it with a wall-clock
// timer; tests substitute a manual source.
type Ticker interface {
	Start(period time.Duration, onTick func()) error
	Stop()
}

// Clock fires a callback on a fixed period until stopped. onTick runs on the
// clock's own goroutine and ticks never overlap: while onTick is busy, ticks
// that come due are dropped by the underlying time.Ticker.
type Clock struct {
	mu     sync.Mutex
	ticker *time.Ticker
	done   chan struct{}
	exited chan struct{}
}

// NewClock returns a stopped clock.
func NewClock() *Clock { return &Clock{} }

// Start begins firing onTick every period. The clock can be restarted after
// Stop.
func (c *Clock) Start(period time.Duration, onTick func()) error {
	if period <= 0 {
		return errgo.New("clock period must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ticker != nil {
		return ErrClockRunning
	}
	c.ticker = time.NewTicker(period)
	c.done = make(chan struct{})
	c.exited = make(chan struct{})
	go c.run(c.ticker, c.done, c.exited, onTick)
	return nil
}

func (c *Clock) run(t *time.Ticker, done <-chan struct{}, exited chan<- struct{}, onTick func()) {
	defer close(exited)
	for {
		select {
		case <-done:
			return
		case <-t.C:
			select {
			case <-done:
				return
			default:
			}
			onTick()
		}
	}
}

// Stop halts the clock and waits for an in-progress tick to return. It is
// safe to call more than once. Stop must not be called from inside onTick.
func (c *Clock) Stop() {
	c.mu.Lock()
	if c.ticker == nil {
		c.mu.Unlock()
		return
	}
	c.ticker.Stop()
	close(c.done)
	exited := c.exited
	c.ticker, c.done, c.exited = nil, nil, nil
	c.mu.Unlock()
	<-exited
}

// Running reports whether the clock is currently started.
func (c *Clock) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticker != nil
}
