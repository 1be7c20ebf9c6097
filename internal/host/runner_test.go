package host

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifelike/pkg/automaton"
	"lifelike/pkg/sims/life"
)

func quiet(t *testing.T) *[]string {
	t.Helper()
	prev := Logf
	t.Cleanup(func() { Logf = prev })
	var lines []string
	var mu sync.Mutex
	SetLogger(func(format string, v ...interface{}) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, fmt.Sprintf(format, v...))
	})
	return &lines
}

func newRunner(t *testing.T, n int, cells ...[2]int) *Runner {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Size = n
	return newRunnerFrom(t, cfg, cells...)
}

func newRunnerFrom(t *testing.T, cfg life.Config, cells ...[2]int) *Runner {
	t.Helper()
	sim, err := life.New(cfg)
	require.NoError(t, err)
	r := NewRunner(sim, 1000)
	require.NoError(t, r.Do(func(e *automaton.Engine) error {
		for _, rc := range cells {
			if err := e.SetCell(rc[0], rc[1], automaton.Alive); err != nil {
				return err
			}
		}
		return nil
	}))
	return r
}

var (
	blinker = [][2]int{{2, 1}, {2, 2}, {2, 3}}
	block   = [][2]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}}
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

// withFakeClock makes every tick call due by moving time forward first.
func withFakeClock(r *Runner) func() Status {
	clock := &fakeClock{t: time.Unix(0, 0)}
	r.clock.SetClock(clock.now)
	return func() Status {
		clock.t = clock.t.Add(time.Hour)
		return r.Tick()
	}
}

func TestTickOnlyAdvancesWhenRunning(t *testing.T) {
	quiet(t)
	r := newRunner(t, 5, blinker...)
	clock := &fakeClock{t: time.Unix(0, 0)}
	r.clock.SetClock(clock.now)
	r.SetInterval(100 * time.Millisecond)

	st := r.Tick()
	assert.False(t, st.Stepped)
	assert.Equal(t, 0, st.Generation)

	r.Start()
	st = r.Tick()
	assert.True(t, st.Stepped)
	assert.Equal(t, 1, st.Generation)

	st = r.Tick()
	assert.False(t, st.Stepped, "cadence not yet elapsed")

	clock.t = clock.t.Add(100 * time.Millisecond)
	st = r.Tick()
	assert.True(t, st.Stepped)
	assert.Equal(t, 2, st.Generation)
	assert.Equal(t, 3, st.Population)
}

func TestStopsAtFixedPoint(t *testing.T) {
	lines := quiet(t)
	r := newRunner(t, 6, block...)
	tick := withFakeClock(r)
	r.Start()

	st := tick()
	assert.True(t, st.Stepped)
	assert.False(t, st.Changed)
	assert.False(t, st.Running)
	assert.Equal(t, ReasonFixedPoint, st.Reason)
	assert.Equal(t, 0, st.Generation)
	require.Len(t, *lines, 1)
	assert.Contains(t, (*lines)[0], "fixed point")
}

func TestCountUnchangedKeepsRunningUntilLimit(t *testing.T) {
	quiet(t)
	cfg := life.DefaultConfig()
	cfg.Size = 6
	cfg.CountUnchanged = true
	r := newRunnerFrom(t, cfg, block...)
	r.SetLimit(3)
	tick := withFakeClock(r)
	r.Start()

	st := tick()
	assert.True(t, st.Running)
	assert.Equal(t, ReasonNone, st.Reason)
	assert.Equal(t, 1, st.Generation)

	tick()
	st = tick()
	assert.Equal(t, 3, st.Generation)
	assert.Equal(t, ReasonLimit, st.Reason)
	assert.False(t, st.Running)
}

func TestGenerationLimit(t *testing.T) {
	quiet(t)
	r := newRunner(t, 5, blinker...)
	r.SetLimit(2)
	tick := withFakeClock(r)
	r.Start()

	assert.Equal(t, ReasonNone, tick().Reason)
	st := tick()
	assert.Equal(t, 2, st.Generation)
	assert.Equal(t, ReasonLimit, st.Reason)
	assert.False(t, st.Running)

	r.Start()
	st = tick()
	assert.False(t, st.Stepped)
	assert.Equal(t, 2, st.Generation)
	assert.Equal(t, ReasonLimit, st.Reason)
	assert.False(t, st.Running)
}

func TestStepOnceIgnoresLimitAndFixedPoint(t *testing.T) {
	quiet(t)
	r := newRunner(t, 5, blinker...)
	r.SetLimit(1)

	for want := 1; want <= 3; want++ {
		st := r.StepOnce()
		assert.True(t, st.Stepped)
		assert.True(t, st.Changed)
		assert.Equal(t, want, st.Generation)
		assert.Equal(t, ReasonNone, st.Reason)
	}

	s := newRunner(t, 6, block...)
	s.Start()
	st := s.StepOnce()
	assert.True(t, st.Stepped)
	assert.False(t, st.Changed)
	assert.True(t, st.Running)
}

func TestRunUntilLimit(t *testing.T) {
	quiet(t)
	r := newRunner(t, 5, blinker...)
	r.SetInterval(time.Millisecond)
	r.SetLimit(3)

	var seen []int
	st, err := r.Run(context.Background(), func(s Status) { seen = append(seen, s.Generation) })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
	assert.Equal(t, ReasonLimit, st.Reason)
	assert.False(t, r.Running())
}

func TestRunCancelled(t *testing.T) {
	quiet(t)
	r := newRunner(t, 5, blinker...)
	r.SetInterval(time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	st, err := r.Run(ctx, func(s Status) {
		if s.Generation == 4 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, st.Generation, 4)
	assert.False(t, r.Running())
}

func TestConcurrentEditsAreSerialized(t *testing.T) {
	quiet(t)
	cfg := life.DefaultConfig()
	cfg.Size = 16
	cfg.CountUnchanged = true
	r := newRunnerFrom(t, cfg, blinker...)
	r.SetInterval(time.Millisecond)
	r.SetLimit(50)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			_ = r.Do(func(e *automaton.Engine) error { return e.ToggleCell(10, 10) })
			_ = r.Snapshot()
		}
	}()
	_, err := r.Run(context.Background(), nil)
	wg.Wait()
	require.NoError(t, err)
	assert.Equal(t, 50, r.Status().Generation)
}

func TestClearPausesAndResets(t *testing.T) {
	quiet(t)
	r := newRunner(t, 5, blinker...)
	r.Start()
	r.StepOnce()
	r.Clear()

	st := r.Status()
	assert.False(t, st.Running)
	assert.Equal(t, 0, st.Generation)
	assert.Equal(t, 0, st.Population)

	r.Reset(5)
	assert.Equal(t, 0, r.Status().Generation)
	p, ok := r.Parameters().Lookup("generation")
	require.True(t, ok)
	assert.Equal(t, "0", p.Value)
}

func TestResizePausesAndEmptiesGrid(t *testing.T) {
	quiet(t)
	r := newRunner(t, 5, blinker...)
	r.Start()
	r.StepOnce()

	require.NoError(t, r.Resize(11))
	st := r.Status()
	assert.False(t, st.Running)
	assert.Equal(t, 0, st.Generation)
	assert.Equal(t, 0, st.Population)
	assert.Equal(t, 11, r.Snapshot().N)

	r.Start()
	assert.ErrorIs(t, r.Resize(0), automaton.ErrInvalidDimension)
	assert.True(t, r.Running(), "failed resize leaves the runner alone")
	assert.Equal(t, 11, r.Snapshot().N)
}

func TestToggle(t *testing.T) {
	r := newRunner(t, 5)
	r.Toggle()
	assert.True(t, r.Running())
	r.Toggle()
	assert.False(t, r.Running())
}
