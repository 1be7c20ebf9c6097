package main

import (
	"fmt"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"lifelike/pkg/automaton"
	"lifelike/pkg/sims/life"
)

// soupOutcome classifies how a random soup ended.
type soupOutcome string

const (
	outcomeStill      soupOutcome = "still"
	outcomeOscillator soupOutcome = "period-2"
	outcomeDead       soupOutcome = "dead"
	outcomeActive     soupOutcome = "active"
)

type soupResult struct {
	seed        int64
	outcome     soupOutcome
	generations int
	initialPop  int
	finalPop    int
}

type summary struct {
	runs        int
	outcomes    map[soupOutcome]int
	genMean     float64
	genStdDev   float64
	popMean     float64
	popStdDev   float64
	survivalMin float64
	survivalMax float64
}

// runSoup randomizes a fresh sim with seed and steps until it dies out,
// settles into a still life or period-2 oscillator, or runs out of steps.
func runSoup(cfg life.Config, seed int64, steps int) (soupResult, error) {
	sim, err := life.New(cfg)
	if err != nil {
		return soupResult{}, err
	}
	sim.Reset(seed)
	e := sim.Engine()
	res := soupResult{seed: seed, outcome: outcomeActive, initialPop: e.Population()}

	var prev automaton.Grid
	for i := 0; i < steps; i++ {
		before := e.Snapshot()
		if !e.Step() {
			res.outcome = outcomeStill
			break
		}
		if prev.N != 0 && prev.Equal(e.Snapshot()) {
			res.outcome = outcomeOscillator
			break
		}
		prev = before
	}
	res.generations = e.Generation()
	res.finalPop = e.Population()
	if res.finalPop == 0 {
		res.outcome = outcomeDead
	}
	return res, nil
}

// sweep runs one soup per seed across workers goroutines. Results come back
// sorted by seed.
func sweep(cfg life.Config, seeds []int64, steps, workers int) ([]soupResult, error) {
	if _, err := life.New(cfg); err != nil {
		return nil, err
	}
	workers = max(workers, 1)

	jobs := make(chan int64)
	results := make(chan soupResult)
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				res, err := runSoup(cfg, seed, steps)
				if err != nil {
					select {
					case errs <- fmt.Errorf("seed %d: %w", seed, err):
					default:
					}
					continue
				}
				results <- res
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	var all []soupResult
	for res := range results {
		all = append(all, res)
	}
	close(errs)
	if err, ok := <-errs; ok {
		return nil, err
	}
	sort.Slice(all, func(i, j int) bool { return all[i].seed < all[j].seed })
	return all, nil
}

func summarize(results []soupResult) summary {
	s := summary{runs: len(results), outcomes: map[soupOutcome]int{}}
	if len(results) == 0 {
		return s
	}
	gens := make([]float64, len(results))
	pops := make([]float64, len(results))
	survival := make([]float64, len(results))
	for i, r := range results {
		s.outcomes[r.outcome]++
		gens[i] = float64(r.generations)
		pops[i] = float64(r.finalPop)
		if r.initialPop > 0 {
			survival[i] = float64(r.finalPop) / float64(r.initialPop)
		}
	}
	s.genMean, s.genStdDev = stat.MeanStdDev(gens, nil)
	s.popMean, s.popStdDev = stat.MeanStdDev(pops, nil)
	sort.Float64s(survival)
	s.survivalMin = survival[0]
	s.survivalMax = survival[len(survival)-1]
	return s
}
