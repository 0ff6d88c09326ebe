package app

import "flag"

// Config represents the command-line parameters for the game. Gameplay
// tuning lives in core constants; only ambient knobs are exposed here.
type Config struct {
	TPS  int
	Seed int64
}

// NewConfig returns a Config populated with sensible defaults. A zero seed
// means "derive one from the wall clock at startup".
func NewConfig() *Config {
	return &Config{TPS: 60, Seed: 0}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for serves and AI error (0 = time-based)")
}
