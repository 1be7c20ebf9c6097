// Package life adapts the automaton engine to the simulation registry. It
// registers one entry per neighbourhood mode: "life" (Moore), "cross"
// (von Neumann) and "custom" (user pattern and rule).
package life

import (
	"fmt"
	"strconv"

	"lifelike/internal/core"
	"lifelike/pkg/automaton"
	pkgcore "lifelike/pkg/core"
)

// Life runs a Life-like automaton through the core.Sim contract.
type Life struct {
	cfg    Config
	engine *automaton.Engine
}

// New builds an engine from cfg and applies its mask and rules.
func New(cfg Config) (*Life, error) {
	var opts []automaton.Option
	if cfg.CountUnchanged {
		opts = append(opts, automaton.WithCountUnchanged())
	}
	engine, err := automaton.New(cfg.Size, cfg.Boundary, opts...)
	if err != nil {
		return nil, err
	}
	mask, err := cfg.Mask()
	if err != nil {
		return nil, fmt.Errorf("%s neighbourhood: %w", cfg.Mode, err)
	}
	if err := engine.Configure(mask, cfg.Birth, cfg.Survive); err != nil {
		return nil, fmt.Errorf("%s rules: %w", cfg.Mode, err)
	}
	return &Life{cfg: cfg, engine: engine}, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return l.cfg.Mode }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size {
	n := l.engine.Size()
	return core.Size{W: n, H: n}
}

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.engine.Cells() }

// Engine exposes the underlying automaton for hosts that edit cells.
func (l *Life) Engine() *automaton.Engine { return l.engine }

// Config returns the configuration the sim was built with.
func (l *Life) Config() Config { return l.cfg }

// Reset randomizes the board at the configured density. A zero seed uses the
// configured one.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	// Density is validated by FromMap; a hand-built config gets clamped.
	density := min(max(l.cfg.Density, 0), 1)
	_ = l.engine.Randomize(density, pkgcore.NewRNG(seed))
}

// Resize replaces the board with an empty n×n grid.
func (l *Life) Resize(n int) error {
	if err := l.engine.Resize(n); err != nil {
		return err
	}
	l.cfg.Size = n
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() bool { return l.engine.Step() }

// Parameters reports the active configuration for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	e := l.engine
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "n", Label: "Size", Type: core.ParamTypeInt, Value: strconv.Itoa(e.Size())},
				{Key: "boundary", Label: "Boundary", Type: core.ParamTypeString, Value: e.Boundary().String()},
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.cfg.Density, 'f', -1, 64)},
				{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(l.cfg.Seed, 10)},
				{Key: "count_unchanged", Label: "Count still", Type: core.ParamTypeBool, Value: strconv.FormatBool(e.CountsUnchanged())},
			},
		},
		{
			Name: "Rules",
			Params: []core.Parameter{
				{Key: "mode", Label: "Mode", Type: core.ParamTypeString, Value: l.cfg.Mode},
				{Key: "mask", Label: "Neighbours", Type: core.ParamTypeString, Value: e.Mask().String()},
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: e.Rules().String()},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(e.Generation())},
				{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(e.Population())},
			},
		},
	}}
}

func init() {
	for _, mode := range []string{ModeLife, ModeCross, ModeCustom} {
		mode := mode
		core.Register(mode, func(cfg map[string]string) (core.Sim, error) {
			c := FromMap(cfg)
			c.Mode = mode
			return New(c)
		})
	}
}
