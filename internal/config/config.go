// Package config provides configuration loading for plague.
// It supports loading from YAML files and environment variables.
package config

import (
	"os"
	"strconv"

	errgo "gopkg.in/errgo.v1"
	"gopkg.in/yaml.v3"

	"plague/internal/logging"
	"plague/internal/plague"
)

// PlagueConfig contains all plague configuration settings.
type PlagueConfig struct {
	// Simulation contains the startup parameters of the engine.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Logging contains settings for operational logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`

	// Viewer contains settings for the GUI.
	Viewer ViewerConfig `json:"viewer" yaml:"viewer"`
}

// SimulationConfig mirrors plague.Config in file form.
type SimulationConfig struct {
	GroupSize       int `json:"group_size" yaml:"group_size"`
	InfectionFactor int `json:"infection_factor" yaml:"infection_factor"`

	// Period is the number of seconds between ticks; fractions are allowed.
	Period  float64 `json:"period" yaml:"period"`
	Columns int     `json:"columns" yaml:"columns"`
	Seed    int64   `json:"seed" yaml:"seed"`

	// InitialInfected lists individuals infected before the first tick.
	InitialInfected []int `json:"initial_infected,omitempty" yaml:"initial_infected,omitempty"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	Level string `json:"level" yaml:"level"`
}

// ViewerConfig configures the GUI.
type ViewerConfig struct {
	// Scale is the number of screen pixels per individual.
	Scale int `json:"scale" yaml:"scale"`
	// TPS is the GUI update rate; it does not affect the simulation period.
	TPS int `json:"tps" yaml:"tps"`
}

// Default returns a PlagueConfig with sensible defaults.
func Default() *PlagueConfig {
	d := plague.DefaultConfig()
	return &PlagueConfig{
		Simulation: SimulationConfig{
			GroupSize:       d.GroupSize,
			InfectionFactor: d.InfectionFactor,
			Period:          d.Period.Seconds(),
			Columns:         d.Columns,
			Seed:            d.Seed,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Viewer: ViewerConfig{
			Scale: 24,
			TPS:   60,
		},
	}
}

// Load returns the defaults overlaid with the file at path (when path is not
// empty) and then with environment variables.
func Load(path string) (*PlagueConfig, error) {
	config := Default()
	if path != "" {
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, errgo.Notef(err, "loading config file")
		}
		config = fileConfig
	}
	if err := applyEnvOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*PlagueConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errgo.Notef(err, "reading config file")
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errgo.Notef(err, "parsing config file")
	}
	return config, nil
}

// Validate checks that the configuration is valid.
func (c *PlagueConfig) Validate() error {
	if err := c.Simulation.Engine().Validate(); err != nil {
		return errgo.Mask(err, errgo.Is(plague.ErrInvalidConfiguration))
	}
	for _, i := range c.Simulation.InitialInfected {
		if i < 0 || i >= c.Simulation.GroupSize {
			return errgo.WithCausef(nil, plague.ErrIndexOutOfRange, "initial infected index %d out of range [0, %d)", i, c.Simulation.GroupSize)
		}
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return errgo.Newf("invalid log level: %s (valid: info, debug, trace, warn, error, or empty for default)", c.Logging.Level)
	}
	if c.Viewer.Scale <= 0 {
		return errgo.Newf("viewer scale must be positive, got %d", c.Viewer.Scale)
	}
	if c.Viewer.TPS <= 0 {
		return errgo.Newf("viewer tps must be positive, got %d", c.Viewer.TPS)
	}
	return nil
}

// Engine converts the file form into the engine configuration.
func (s SimulationConfig) Engine() plague.Config {
	return plague.Config{
		GroupSize:       s.GroupSize,
		InfectionFactor: s.InfectionFactor,
		Period:          plague.Seconds(s.Period),
		Columns:         s.Columns,
		Seed:            s.Seed,
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *PlagueConfig) error {
	if v := os.Getenv("PLAGUE_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}
	ints := []struct {
		name string
		dst  *int
	}{
		{"PLAGUE_GROUP_SIZE", &config.Simulation.GroupSize},
		{"PLAGUE_INFECTION_FACTOR", &config.Simulation.InfectionFactor},
		{"PLAGUE_COLUMNS", &config.Simulation.Columns},
	}
	for _, e := range ints {
		v := os.Getenv(e.name)
		if v == "" {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return errgo.Notef(err, "invalid %s", e.name)
		}
		*e.dst = parsed
	}
	if v := os.Getenv("PLAGUE_PERIOD"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errgo.Notef(err, "invalid PLAGUE_PERIOD")
		}
		config.Simulation.Period = parsed
	}
	if v := os.Getenv("PLAGUE_SEED"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errgo.Notef(err, "invalid PLAGUE_SEED")
		}
		config.Simulation.Seed = parsed
	}
	return nil
}
