// Package host drives a Life session on behalf of a user interface: it owns
// the running flag, the pacing between generations and the optional
// generation limit, and serializes every engine access behind one mutex.
package host

import (
	"context"
	"sync"
	"time"

	"lifelike/internal/core"
	"lifelike/pkg/automaton"
	"lifelike/pkg/sims/life"
)

// StopReason explains why a runner stopped by itself.
type StopReason int

const (
	ReasonNone StopReason = iota
	ReasonFixedPoint
	ReasonLimit
)

func (r StopReason) String() string {
	switch r {
	case ReasonFixedPoint:
		return "fixed point"
	case ReasonLimit:
		return "generation limit"
	default:
		return "none"
	}
}

// Status describes the session after a tick or step request.
type Status struct {
	Generation int
	Population int
	Stepped    bool
	Changed    bool
	Running    bool
	Reason     StopReason
}

// Runner owns one simulation and serializes access to it.
type Runner struct {
	mu    sync.Mutex
	sim   *life.Life
	clock *core.FixedStep

	running bool
	limit   int
}

// NewRunner wraps sim and paces ticks at tps generations per second.
func NewRunner(sim *life.Life, tps int) *Runner {
	return &Runner{
		sim:   sim,
		clock: core.NewFixedStep(tps),
	}
}

// SetLimit stops the runner once the generation counter reaches n. Zero means
// no limit. The limit applies to running ticks only; StepOnce always steps.
func (r *Runner) SetLimit(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = max(n, 0)
}

// SetInterval changes the delay between generations.
func (r *Runner) SetInterval(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock.SetInterval(d)
}

// Interval returns the delay between generations.
func (r *Runner) Interval() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clock.Interval()
}

// Start resumes ticking. The next Tick steps immediately.
func (r *Runner) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		r.running = true
		r.clock.Reset()
	}
}

// Pause stops ticking. Step requests still work.
func (r *Runner) Pause() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
}

// Toggle flips between running and paused.
func (r *Runner) Toggle() {
	if r.Running() {
		r.Pause()
		return
	}
	r.Start()
}

// Running reports whether ticks advance the simulation.
func (r *Runner) Running() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

// Tick advances one generation if running and the cadence allows it.
func (r *Runner) Tick() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running || !r.clock.ShouldStep() {
		return r.statusLocked()
	}
	return r.advanceLocked()
}

// StepOnce advances one generation whether or not the runner is running. It
// ignores the generation limit and never stops the runner.
func (r *Runner) StepOnce() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	changed := r.sim.Step()
	st := r.statusLocked()
	st.Stepped = true
	st.Changed = changed
	return st
}

// Run steps at the configured interval until the runner stops by itself, is
// paused from elsewhere or ctx is done. onStep, if set, sees every step and
// is called without the lock held.
func (r *Runner) Run(ctx context.Context, onStep func(Status)) (Status, error) {
	r.Start()
	ticker := time.NewTicker(r.Interval())
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			r.Pause()
			return r.Status(), ctx.Err()
		case <-ticker.C:
			r.mu.Lock()
			if !r.running {
				st := r.statusLocked()
				r.mu.Unlock()
				return st, nil
			}
			st := r.advanceLocked()
			r.mu.Unlock()
			if onStep != nil {
				onStep(st)
			}
			if !st.Running {
				return st, nil
			}
		}
	}
}

// Reset randomizes the grid with the sim's density and the given seed.
func (r *Runner) Reset(seed int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sim.Reset(seed)
}

// Clear kills every cell and pauses the runner.
func (r *Runner) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.running = false
	r.sim.Engine().Clear()
}

// Resize replaces the grid with an empty n×n one and pauses the runner.
func (r *Runner) Resize(n int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.sim.Resize(n); err != nil {
		return err
	}
	r.running = false
	return nil
}

// Do runs fn with exclusive access to the engine, for edits such as
// SetCell, ToggleCell or Configure.
func (r *Runner) Do(fn func(e *automaton.Engine) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(r.sim.Engine())
}

// Snapshot copies the current grid.
func (r *Runner) Snapshot() automaton.Grid {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim.Engine().Snapshot()
}

// Parameters returns the sim's parameter snapshot.
func (r *Runner) Parameters() core.ParameterSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sim.Parameters()
}

// Status reports the current generation and population.
func (r *Runner) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.statusLocked()
}

func (r *Runner) statusLocked() Status {
	e := r.sim.Engine()
	return Status{
		Generation: e.Generation(),
		Population: e.Population(),
		Running:    r.running,
	}
}

// advanceLocked performs one running tick. An unchanged step stops the runner
// unless the engine counts unchanged generations, in which case the limit
// governs stopping.
func (r *Runner) advanceLocked() Status {
	e := r.sim.Engine()
	if r.limitReachedLocked() {
		r.stopLocked(ReasonLimit)
		st := r.statusLocked()
		st.Reason = ReasonLimit
		return st
	}
	changed := r.sim.Step()
	reason := ReasonNone
	switch {
	case !changed && !e.CountsUnchanged():
		reason = ReasonFixedPoint
	case r.limitReachedLocked():
		reason = ReasonLimit
	}
	if reason != ReasonNone {
		r.stopLocked(reason)
	}
	st := r.statusLocked()
	st.Stepped = true
	st.Changed = changed
	st.Reason = reason
	return st
}

func (r *Runner) limitReachedLocked() bool {
	return r.limit > 0 && r.sim.Engine().Generation() >= r.limit
}

func (r *Runner) stopLocked(reason StopReason) {
	if r.running {
		Logf("%s: stopped at generation %d: %s", r.sim.Name(), r.sim.Engine().Generation(), reason)
	}
	r.running = false
}
