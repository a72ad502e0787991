package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters of the viewer.
type Config struct {
	WorldFile string
	Scale     int
	TPS       int
	Seed      int64
	HUDWidth  int
	Cycle     time.Duration
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 1, TPS: 30, Seed: 42, HUDWidth: 260}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.WorldFile, "config", c.WorldFile, "world document (YAML); defaults when empty")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "updates per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "world seed; overrides the document seed when set")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels, 0 hides it")
	fs.DurationVar(&c.Cycle, "cycle", c.Cycle, "advance the seed at this interval, 0 disables")
}
