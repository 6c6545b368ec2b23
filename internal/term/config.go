package term

import (
	"flag"

	"popnum/internal/popnum"
)

// Config represents the command-line parameters for the terminal frontend.
type Config struct {
	FPS     int
	Divider int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{FPS: 60, Divider: popnum.TickDivider}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.FPS, "fps", c.FPS, "frames per second")
	fs.IntVar(&c.Divider, "divider", c.Divider, "frames per game tick")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for circle spawning (0 picks one from the clock)")
}

// TPS returns the game tick rate implied by the frame rate and divider.
func (c *Config) TPS() int {
	fps, div := c.FPS, c.Divider
	if fps <= 0 {
		fps = 60
	}
	if div <= 0 {
		div = 1
	}
	if tps := fps / div; tps > 0 {
		return tps
	}
	return 1
}
