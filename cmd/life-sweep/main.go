package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/google/uuid"

	"lifelike/internal/rulefmt"
	"lifelike/pkg/automaton"
	"lifelike/pkg/sims/life"
)

func main() {
	runs := flag.Int("runs", 64, "number of random soups")
	steps := flag.Int("steps", 1000, "maximum generations per soup")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel soups")
	size := flag.Int("n", 64, "grid side length")
	density := flag.Float64("density", 0.25, "initial live cell probability")
	seed := flag.Int64("seed", 1, "first seed; soups use seed, seed+1, ...")
	mode := flag.String("mode", life.ModeLife, "neighbourhood mode: life, cross or custom")
	rule := flag.String("rule", "B3/S23", "rule in B/S notation")
	boundary := flag.String("boundary", "wrap", "edge policy: wrap or clamp")
	pattern := flag.String("pattern", "", "custom neighbourhood for -mode custom")
	verbose := flag.Bool("v", false, "print every soup")
	flag.Parse()

	cfg := life.DefaultConfig()
	cfg.Size = *size
	cfg.Density = *density
	cfg.Mode = *mode
	cfg.Pattern = *pattern
	b, err := automaton.ParseBoundary(*boundary)
	if err != nil {
		log.Fatal(err)
	}
	cfg.Boundary = b
	cfg.Birth, cfg.Survive, err = rulefmt.ParseRule(*rule)
	if err != nil {
		log.Fatal(err)
	}

	seeds := make([]int64, *runs)
	for i := range seeds {
		seeds[i] = *seed + int64(i)
	}

	id := uuid.New()
	fmt.Printf("Sweep %s: %d soups of %dx%d %s %s at density %.2f (%d workers, %d steps)\n",
		id, *runs, *size, *size, *mode, rulefmt.Format(cfg.Birth, cfg.Survive), *density, *workers, *steps)

	start := time.Now()
	results, err := sweep(cfg, seeds, *steps, *workers)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	if *verbose {
		for _, r := range results {
			fmt.Printf("  seed %d: %s after %d generations, population %d -> %d\n",
				r.seed, r.outcome, r.generations, r.initialPop, r.finalPop)
		}
	}

	s := summarize(results)
	fmt.Printf("\nSweep %s finished in %s\n", id, elapsed.Round(time.Millisecond))
	for _, o := range []soupOutcome{outcomeDead, outcomeStill, outcomeOscillator, outcomeActive} {
		fmt.Printf("  %-9s %d\n", o, s.outcomes[o])
	}
	fmt.Printf("  generations mean %.1f sd %.1f\n", s.genMean, s.genStdDev)
	fmt.Printf("  final population mean %.1f sd %.1f\n", s.popMean, s.popStdDev)
	fmt.Printf("  survival ratio range [%.3f, %.3f]\n", s.survivalMin, s.survivalMax)
}
