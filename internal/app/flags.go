package app

import (
	"flag"

	"popnum/internal/popnum"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale   int
	TPS     int
	Divider int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 1, TPS: 60, Divider: popnum.TickDivider, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "window size multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.Divider, "divider", c.Divider, "frames per game tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for circle spawning (0 picks one from the clock)")
}
