package sweep

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"

	"plague/internal/plague"
)

func TestRunOneSaturates(t *testing.T) {
	c := qt.New(t)
	cfg := plague.Config{GroupSize: 25, InfectionFactor: 4, Columns: 5, Seed: 1}
	run, err := RunOne(cfg, 12, 100)
	c.Assert(err, qt.IsNil)
	c.Assert(run.Saturated, qt.IsTrue)
	// With an unlimited factor the infection front advances one step of
	// Manhattan distance per tick; the corners are 4 steps from the centre.
	c.Assert(run.Ticks, qt.Equals, 4)
	c.Assert(run.Curve, qt.DeepEquals, []int{5, 13, 21, 25})
}

func TestRunOneCurveIsMonotonic(t *testing.T) {
	c := qt.New(t)
	cfg := plague.Config{GroupSize: 95, InfectionFactor: 1, Columns: 10, Seed: 8}
	run, err := RunOne(cfg, 0, 500)
	c.Assert(err, qt.IsNil)
	c.Assert(run.Saturated, qt.IsTrue)
	for i := 1; i < len(run.Curve); i++ {
		c.Assert(run.Curve[i] >= run.Curve[i-1], qt.IsTrue)
	}
	c.Assert(run.Curve[len(run.Curve)-1], qt.Equals, 95)
}

func TestRunOneRespectsTickCap(t *testing.T) {
	c := qt.New(t)
	cfg := plague.Config{GroupSize: 400, InfectionFactor: 1, Columns: 20, Seed: 3}
	run, err := RunOne(cfg, 0, 3)
	c.Assert(err, qt.IsNil)
	c.Assert(run.Ticks, qt.Equals, 3)
	c.Assert(run.Saturated, qt.IsFalse)
}

func TestRunOneRejectsStartOutsidePopulation(t *testing.T) {
	c := qt.New(t)
	cfg := plague.Config{GroupSize: 4, InfectionFactor: 2, Columns: 2, Seed: 1}
	for _, start := range []int{4, 9, -1} {
		run, err := RunOne(cfg, start, 10)
		c.Assert(err, qt.ErrorMatches, `index -?\d+ out of range \[0, 4\)`, qt.Commentf("start %d", start))
		c.Assert(errgo.Cause(err), qt.Equals, plague.ErrIndexOutOfRange)
		c.Assert(run, qt.DeepEquals, Run{})
	}
}

func TestSweep(t *testing.T) {
	c := qt.New(t)
	p := DefaultParams()
	p.GroupSize = 100
	p.Columns = 10
	p.Factors = []int{4, 1}
	p.Seeds = 5
	p.Workers = 3

	results, err := Sweep(context.Background(), p)
	c.Assert(err, qt.IsNil)
	c.Assert(results, qt.HasLen, 2)
	c.Assert(results[0].Factor, qt.Equals, 1)
	c.Assert(results[1].Factor, qt.Equals, 4)
	for _, r := range results {
		c.Assert(r.Runs, qt.Equals, 5)
		c.Assert(r.Saturated, qt.Equals, 5)
		c.Assert(r.MinTicks <= r.MaxTicks, qt.IsTrue)
	}
	// Factor 4 always infects every healthy neighbour.
	c.Assert(results[1].MinTicks, qt.Equals, results[1].MaxTicks)
	c.Assert(results[0].MeanTicks >= results[1].MeanTicks, qt.IsTrue)
}

func TestSweepValidation(t *testing.T) {
	c := qt.New(t)
	p := DefaultParams()
	p.Factors = []int{0}
	_, err := Sweep(context.Background(), p)
	c.Assert(errgo.Cause(err), qt.Equals, plague.ErrInvalidConfiguration)

	p = DefaultParams()
	p.Start = p.GroupSize
	_, err = Sweep(context.Background(), p)
	c.Assert(errgo.Cause(err), qt.Equals, plague.ErrIndexOutOfRange)

	p = DefaultParams()
	p.Factors = nil
	_, err = Sweep(context.Background(), p)
	c.Assert(err, qt.ErrorMatches, "no infection factors to sweep")
}

func TestSweepCancelled(t *testing.T) {
	c := qt.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Sweep(ctx, DefaultParams())
	c.Assert(err, qt.Equals, context.Canceled)
}
