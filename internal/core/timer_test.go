package core

import (
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"
)

func TestClockFiresUntilStopped(t *testing.T) {
	c := qt.New(t)
	clock := NewClock()
	var n atomic.Int32
	c.Assert(clock.Start(5*time.Millisecond, func() { n.Add(1) }), qt.IsNil)
	c.Assert(clock.Running(), qt.IsTrue)

	deadline := time.Now().Add(2 * time.Second)
	for n.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	clock.Stop()
	c.Assert(n.Load() >= 3, qt.IsTrue)

	after := n.Load()
	time.Sleep(30 * time.Millisecond)
	c.Assert(n.Load(), qt.Equals, after)
	c.Assert(clock.Running(), qt.IsFalse)
}

func TestClockStopIsIdempotent(t *testing.T) {
	c := qt.New(t)
	clock := NewClock()
	clock.Stop()
	c.Assert(clock.Start(time.Millisecond, func() {}), qt.IsNil)
	clock.Stop()
	clock.Stop()
	c.Assert(clock.Start(time.Millisecond, func() {}), qt.IsNil)
	clock.Stop()
}

func TestClockRejectsDoubleStartAndBadPeriod(t *testing.T) {
	c := qt.New(t)
	clock := NewClock()
	c.Assert(clock.Start(0, func() {}), qt.ErrorMatches, "clock period must be positive")
	c.Assert(clock.Start(time.Hour, func() {}), qt.IsNil)
	defer clock.Stop()
	c.Assert(clock.Start(time.Hour, func() {}), qt.Equals, ErrClockRunning)
}

func TestClockErrorsCarryLocation(t *testing.T) {
	c := qt.New(t)
	clock := NewClock()
	err := clock.Start(-time.Second, func() {})
	loc, ok := err.(errgo.Locationer)
	c.Assert(ok, qt.IsTrue)
	file, _ := loc.Location()
	c.Assert(filepath.Base(file), qt.Equals, "timer.go")

	loc, ok = ErrClockRunning.(errgo.Locationer)
	c.Assert(ok, qt.IsTrue)
	file, _ = loc.Location()
	c.Assert(filepath.Base(file), qt.Equals, "timer.go")
}

func TestClockTicksDoNotOverlap(t *testing.T) {
	c := qt.New(t)
	clock := NewClock()
	var active, overlaps, fired atomic.Int32
	c.Assert(clock.Start(time.Millisecond, func() {
		if active.Add(1) > 1 {
			overlaps.Add(1)
		}
		time.Sleep(5 * time.Millisecond)
		active.Add(-1)
		fired.Add(1)
	}), qt.IsNil)
	deadline := time.Now().Add(2 * time.Second)
	for fired.Load() < 4 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	clock.Stop()
	c.Assert(overlaps.Load(), qt.Equals, int32(0))
}
