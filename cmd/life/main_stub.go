//go:build !ebiten

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"lifelike/internal/host"
)

// Without the ebiten tag the session runs in the terminal, printing each
// generation until it settles, hits -limit or is interrupted.
func main() {
	_, sim, runner, err := newSession(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stderr, "The GUI build of lifelike requires the ebiten build tag; running in the terminal.")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	e := sim.Engine()
	fmt.Printf("%s %s %s n=%d\n", sim.Name(), e.Mask(), e.Rules(), e.Size())
	fmt.Print(runner.Snapshot())
	st, err := runner.Run(ctx, func(st host.Status) {
		if !st.Changed {
			return
		}
		fmt.Printf("\ngeneration %d population %d\n", st.Generation, st.Population)
		fmt.Print(runner.Snapshot())
	})
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	fmt.Printf("\nstopped at generation %d (%s)\n", st.Generation, st.Reason)
}
