package app

import "flag"

// Config represents the viewer's command-line parameters.
type Config struct {
	Scale    int
	TPS      int
	HUDWidth int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 24, TPS: 60, HUDWidth: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per individual")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer updates per second")
	fs.IntVar(&c.HUDWidth, "hud-width", c.HUDWidth, "width of the counters panel in pixels (0 hides it)")
}
