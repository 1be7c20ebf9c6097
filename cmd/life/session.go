package main

import (
	"flag"
	"fmt"

	"lifelike/internal/app"
	"lifelike/internal/core"
	"lifelike/internal/host"
	"lifelike/pkg/sims/life"
)

// newSession parses args into a config and builds a seeded runner.
func newSession(fs *flag.FlagSet, args []string) (*app.Config, *life.Life, *host.Runner, error) {
	cfg := app.NewConfig()
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, nil, nil, err
	}

	sim, err := core.NewSim(cfg.Sim, cfg.SimConfig())
	if err != nil {
		return nil, nil, nil, err
	}
	l, ok := sim.(*life.Life)
	if !ok {
		return nil, nil, nil, fmt.Errorf("sim %q is not a life-like automaton", cfg.Sim)
	}
	l.Reset(cfg.Seed)

	runner := host.NewRunner(l, cfg.TPS)
	runner.SetLimit(cfg.Limit)
	return cfg, l, runner, nil
}
