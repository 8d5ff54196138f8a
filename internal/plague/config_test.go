package plague

import (
	"testing"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := qt.New(t)
	cfg := DefaultConfig()
	c.Assert(cfg.Validate(), qt.IsNil)
	c.Assert(cfg.Columns, qt.Equals, DefaultColumns)
}

func TestConfigValidate(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		testName    string
		mutate      func(*Config)
		expectError string
	}{{
		testName:    "zero group size",
		mutate:      func(cfg *Config) { cfg.GroupSize = 0 },
		expectError: "invalid configuration: group size must be positive, got 0",
	}, {
		testName:    "negative infection factor",
		mutate:      func(cfg *Config) { cfg.InfectionFactor = -2 },
		expectError: "invalid configuration: infection factor must be positive, got -2",
	}, {
		testName:    "zero period",
		mutate:      func(cfg *Config) { cfg.Period = 0 },
		expectError: "invalid configuration: period must be positive, got 0s",
	}, {
		testName:    "zero columns",
		mutate:      func(cfg *Config) { cfg.Columns = 0 },
		expectError: "invalid configuration: columns must be positive, got 0",
	}}
	for _, test := range tests {
		c.Run(test.testName, func(c *qt.C) {
			cfg := DefaultConfig()
			test.mutate(&cfg)
			err := cfg.Validate()
			c.Assert(err, qt.ErrorMatches, test.expectError)
			c.Assert(errgo.Cause(err), qt.Equals, ErrInvalidConfiguration)

			_, err = New(cfg)
			c.Assert(errgo.Cause(err), qt.Equals, ErrInvalidConfiguration)
		})
	}
}
