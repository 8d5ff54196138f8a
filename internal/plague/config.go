package plague

import "time"

// DefaultColumns matches the grid width used when no column count is given.
const DefaultColumns = 10

// Config holds the startup parameters of a simulation. It is treated as
// immutable once a Simulation has been built from it.
type Config struct {
	GroupSize int
	// InfectionFactor caps how many neighbours one infected individual can
	// infect per tick.
	InfectionFactor int
	Period          time.Duration
	Columns         int

	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		GroupSize:       100,
		InfectionFactor: 3,
		Period:          time.Second,
		Columns:         DefaultColumns,
		Seed:            1,
	}
}

// Seconds converts a period expressed in (possibly fractional) seconds.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// Validate reports the first parameter that is out of range. The returned
// error has ErrInvalidConfiguration as its cause.
func (c Config) Validate() error {
	switch {
	case c.GroupSize <= 0:
		return invalidf("group size must be positive, got %d", c.GroupSize)
	case c.InfectionFactor <= 0:
		return invalidf("infection factor must be positive, got %d", c.InfectionFactor)
	case c.Period <= 0:
		return invalidf("period must be positive, got %v", c.Period)
	case c.Columns <= 0:
		return invalidf("columns must be positive, got %d", c.Columns)
	}
	return nil
}
