package app

import (
	"flag"
	"fmt"
	"strings"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
	"torus-life/pkg/sims/life/patterns"
)

// Config represents the command-line parameters shared by the drivers.
type Config struct {
	Width   int
	Height  int
	Scale   int
	TPS     int
	Seed    int64
	Pattern string
}

// NewConfig returns a Config populated with sensible defaults. A zero Seed
// means every run starts from a different random board.
func NewConfig() *Config {
	return &Config{Width: 128, Height: 128, Scale: 5, TPS: 60, Seed: 0, Pattern: patterns.Random}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random board (0 picks one at random)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(patterns.Names(), ", "))
}

// Validate reports configuration errors that would otherwise surface as a
// panic when the grid is built.
func (c *Config) Validate() error {
	if err := life.ValidateSize(c.Width, c.Height); err != nil {
		return err
	}
	if c.Scale <= 0 {
		return fmt.Errorf("app: scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("app: tps must be positive, got %d", c.TPS)
	}
	if _, err := patterns.Lookup(c.Pattern); err != nil {
		return err
	}
	return nil
}

// Source returns the boolean source used to seed random boards.
func (c *Config) Source() core.BoolSource {
	if c.Seed == 0 {
		return core.NewRandomRNG()
	}
	return core.NewRNG(c.Seed)
}

// NewGrid validates the configuration and builds the initial grid. Named
// patterns are centered on an otherwise dead board.
func (c *Config) NewGrid() (*life.Grid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	p, _ := patterns.Lookup(c.Pattern)
	if p.Empty() {
		return life.NewWithSource(c.Width, c.Height, c.Source()), nil
	}
	cells, err := p.Center(c.Width, c.Height)
	if err != nil {
		return nil, err
	}
	return life.FromCells(c.Width, c.Height, cells), nil
}
