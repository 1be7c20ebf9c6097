//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"lifelike/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, sim, runner, err := newSession(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	e := sim.Engine()
	title := fmt.Sprintf("lifelike: %s %s", sim.Name(), e.Rules())
	game := app.New(runner, title, cfg.Scale, cfg.HUD, cfg.Seed)

	side := e.Size() * cfg.Scale
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(side+max(cfg.HUD, 0), side)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
