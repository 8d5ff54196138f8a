package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	errgo "gopkg.in/errgo.v1"

	"plague/internal/plague"
)

func TestDefault(t *testing.T) {
	c := qt.New(t)
	config := Default()
	c.Assert(config.Validate(), qt.IsNil)
	c.Assert(config.Simulation.Columns, qt.Equals, 10)
	c.Assert(config.Logging.Level, qt.Equals, "info")
	c.Assert(config.Simulation.Engine(), qt.Equals, plague.DefaultConfig())
}

func TestLoadFromFile(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "plague.yaml")
	content := `
simulation:
  group_size: 95
  infection_factor: 2
  period: 0.5
  initial_infected: [0, 94]
logging:
  level: debug
`
	c.Assert(os.WriteFile(path, []byte(content), 0600), qt.IsNil)

	config, err := LoadFromFile(path)
	c.Assert(err, qt.IsNil)
	c.Assert(config.Validate(), qt.IsNil)
	c.Assert(config.Simulation.Engine(), qt.Equals, plague.Config{
		GroupSize:       95,
		InfectionFactor: 2,
		Period:          500 * time.Millisecond,
		Columns:         10,
		Seed:            1,
	})
	c.Assert(config.Simulation.InitialInfected, qt.DeepEquals, []int{0, 94})
	c.Assert(config.Logging.Level, qt.Equals, "debug")
	c.Assert(config.Viewer.TPS, qt.Equals, 60)
}

func TestLoadFromFileErrors(t *testing.T) {
	c := qt.New(t)
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	c.Assert(err, qt.ErrorMatches, "reading config file: .*")

	path := filepath.Join(t.TempDir(), "bad.yaml")
	c.Assert(os.WriteFile(path, []byte("simulation: [nope"), 0600), qt.IsNil)
	_, err = LoadFromFile(path)
	c.Assert(err, qt.ErrorMatches, "parsing config file: .*")
}

func TestLoadEnvOverrides(t *testing.T) {
	c := qt.New(t)
	t.Setenv("PLAGUE_GROUP_SIZE", "40")
	t.Setenv("PLAGUE_INFECTION_FACTOR", "1")
	t.Setenv("PLAGUE_PERIOD", "0.1")
	t.Setenv("PLAGUE_COLUMNS", "8")
	t.Setenv("PLAGUE_SEED", "12")
	t.Setenv("PLAGUE_LOG_LEVEL", "trace")

	config, err := Load("")
	c.Assert(err, qt.IsNil)
	c.Assert(config.Simulation.Engine(), qt.Equals, plague.Config{
		GroupSize:       40,
		InfectionFactor: 1,
		Period:          100 * time.Millisecond,
		Columns:         8,
		Seed:            12,
	})
	c.Assert(config.Logging.Level, qt.Equals, "trace")
}

func TestLoadEnvOverrideInvalid(t *testing.T) {
	c := qt.New(t)
	t.Setenv("PLAGUE_GROUP_SIZE", "many")
	_, err := Load("")
	c.Assert(err, qt.ErrorMatches, `invalid PLAGUE_GROUP_SIZE: .*`)
}

func TestValidate(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		testName    string
		mutate      func(*PlagueConfig)
		expectError string
		expectCause error
	}{{
		testName:    "engine parameters",
		mutate:      func(p *PlagueConfig) { p.Simulation.Period = 0 },
		expectError: "invalid configuration: period must be positive, got 0s",
		expectCause: plague.ErrInvalidConfiguration,
	}, {
		testName:    "initial infected out of range",
		mutate:      func(p *PlagueConfig) { p.Simulation.InitialInfected = []int{100} },
		expectError: `initial infected index 100 out of range \[0, 100\)`,
		expectCause: plague.ErrIndexOutOfRange,
	}, {
		testName:    "log level",
		mutate:      func(p *PlagueConfig) { p.Logging.Level = "loud" },
		expectError: `invalid log level: loud .*`,
	}, {
		testName:    "viewer scale",
		mutate:      func(p *PlagueConfig) { p.Viewer.Scale = 0 },
		expectError: "viewer scale must be positive, got 0",
	}}
	for _, test := range tests {
		c.Run(test.testName, func(c *qt.C) {
			config := Default()
			test.mutate(config)
			err := config.Validate()
			c.Assert(err, qt.ErrorMatches, test.expectError)
			if test.expectCause != nil {
				c.Assert(errgo.Cause(err), qt.Equals, test.expectCause)
			}
		})
	}
}
