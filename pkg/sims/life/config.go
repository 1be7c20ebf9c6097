package life

import (
	"strconv"

	"lifelike/internal/pattern"
	"lifelike/internal/rulefmt"
	"lifelike/pkg/automaton"
)

const (
	ModeLife   = "life"
	ModeCross  = "cross"
	ModeCustom = "custom"
)

// Config controls the Life simulation.
type Config struct {
	Size     int
	Boundary automaton.Boundary
	Mode     string

	// Pattern is the custom neighbourhood in pattern.Parse format. Only
	// used by ModeCustom; an empty pattern falls back to Moore.
	Pattern string
	Birth   []int
	Survive []int

	Density float64
	Seed    int64

	CountUnchanged bool
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:     64,
		Boundary: automaton.Wrap,
		Mode:     ModeLife,
		Birth:    []int{3},
		Survive:  []int{2, 3},
		Density:  0.25,
		Seed:     42,
	}
}

// FromMap populates a Config from a string map. Unparsable values are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["boundary"]; ok {
		if parsed, err := automaton.ParseBoundary(v); err == nil {
			c.Boundary = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		switch v {
		case ModeLife, ModeCross, ModeCustom:
			c.Mode = v
		}
	}
	if v, ok := cfg["pattern"]; ok {
		if _, err := pattern.Parse(v); err == nil {
			c.Pattern = v
		}
	}
	if v, ok := cfg["rule"]; ok {
		if birth, survive, err := rulefmt.ParseRule(v); err == nil {
			c.Birth, c.Survive = birth, survive
		}
	}
	if v, ok := cfg["birth"]; ok {
		if parsed, err := rulefmt.ParseCounts(v); err == nil {
			c.Birth = parsed
		}
	}
	if v, ok := cfg["survive"]; ok {
		if parsed, err := rulefmt.ParseCounts(v); err == nil {
			c.Survive = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["count_unchanged"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.CountUnchanged = parsed
		}
	}
	return c
}

// Mask resolves the neighbourhood for the configured mode.
func (c Config) Mask() (automaton.Mask, error) {
	switch c.Mode {
	case ModeCross:
		return automaton.VonNeumann(), nil
	case ModeCustom:
		if c.Pattern == "" {
			return automaton.Moore(), nil
		}
		p, err := pattern.Parse(c.Pattern)
		if err != nil {
			return automaton.Mask{}, err
		}
		return p.Mask()
	default:
		return automaton.Moore(), nil
	}
}
