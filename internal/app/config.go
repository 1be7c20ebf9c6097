package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64
	Limit int
	HUD   int

	Size           int
	Boundary       string
	Rule           string
	Birth          string
	Survive        string
	Pattern        string
	Density        float64
	CountUnchanged bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "life",
		Scale:    12,
		TPS:      8,
		Seed:     42,
		HUD:      220,
		Size:     48,
		Boundary: "wrap",
		Density:  0.25,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run: life, cross or custom")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Limit, "limit", c.Limit, "stop after this many generations (0 = no limit)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.IntVar(&c.Size, "n", c.Size, "grid side length")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge policy: wrap or clamp")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule in B/S notation, e.g. B3/S23")
	fs.StringVar(&c.Birth, "birth", c.Birth, "birth counts, comma or space separated")
	fs.StringVar(&c.Survive, "survive", c.Survive, "survival counts, comma or space separated")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "custom neighbourhood, rows separated by '/', centre 'O'")
	fs.Float64Var(&c.Density, "density", c.Density, "live cell probability for randomize")
	fs.BoolVar(&c.CountUnchanged, "count-unchanged", c.CountUnchanged, "advance the generation even when nothing changes")
}

// SimConfig converts the flags into the string map the sim registry expects.
// Empty rule fields are left out so mode defaults apply.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"n":               strconv.Itoa(c.Size),
		"boundary":        c.Boundary,
		"density":         strconv.FormatFloat(c.Density, 'f', -1, 64),
		"seed":            strconv.FormatInt(c.Seed, 10),
		"count_unchanged": strconv.FormatBool(c.CountUnchanged),
	}
	if c.Rule != "" {
		m["rule"] = c.Rule
	}
	if c.Birth != "" {
		m["birth"] = c.Birth
	}
	if c.Survive != "" {
		m["survive"] = c.Survive
	}
	if c.Pattern != "" {
		m["pattern"] = c.Pattern
	}
	return m
}
