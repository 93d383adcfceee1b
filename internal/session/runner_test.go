package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/games/snake"
)

const wait = 2 * time.Second

type fakeTicker struct {
	c       chan time.Time
	stopped atomic.Bool
}

func (f *fakeTicker) C() <-chan time.Time { return f.c }
func (f *fakeTicker) Stop() { f.stopped.Store(true) }

type fakeClock struct {
	mu      sync.Mutex
	tickers []*fakeTicker
}

func (fc *fakeClock) New(time.Duration) Ticker {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	t := &fakeTicker{c: make(chan time.Time)}
	fc.tickers = append(fc.tickers, t)
	return t
}

func (fc *fakeClock) count() int {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return len(fc.tickers)
}

func (fc *fakeClock) last() *fakeTicker {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.tickers[len(fc.tickers)-1]
}

func (fc *fakeClock) fire(t *testing.T) {
	t.Helper()
	select {
	case fc.last().c <- time.Now():
	case <-time.After(wait):
		t.Fatal("tick was not consumed")
	}
}

// counterGame ends after limit steps that carry no actions.
type counterGame struct {
	interval time.Duration
	limit    int
	steps    int
	seen     []core.Action
	status   core.Status
}

func (g *counterGame) ID() string { return "counter" }
func (g *counterGame) Title() string { return "Counter" }
func (g *counterGame) Reset(core.RuntimeConfig) { g.steps, g.status = 0, core.StatusActive }
func (g *counterGame) TickInterval() time.Duration { return g.interval }
func (g *counterGame) Render(*core.Screen) {}
func (g *counterGame) Observe() any { return g.steps }

func (g *counterGame) State() core.GameState {
	return core.GameState{Score: g.steps, Status: g.status}
}

func (g *counterGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in.Actions()...)
	if in.Has(core.ActionRestart) {
		g.Reset(core.RuntimeConfig{})
		return core.StepResult{State: g.State(), Changed: true}
	}
	if g.status == core.StatusOver {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	if g.steps >= g.limit {
		g.status = core.StatusOver
	}
	return core.StepResult{State: g.State(), Changed: true}
}

func recv(t *testing.T, ch <-chan Frame) Frame {
	t.Helper()
	select {
	case f, ok := <-ch:
		require.True(t, ok, "frame channel closed")
		return f
	case <-time.After(wait):
		t.Fatal("no frame published")
		return Frame{}
	}
}

func start(t *testing.T, r *Runner) (cancel func(), done <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- r.Run(ctx) }()
	return cancel, errc
}

func TestTimedGameTicksAndReleasesTickerOnGameOver(t *testing.T) {
	clock := &fakeClock{}
	game := &counterGame{interval: time.Millisecond, limit: 3}
	game.Reset(core.RuntimeConfig{})

	var overCalls atomic.Int32
	r := New(game, WithTicker(clock.New), WithGameOver(func(id string, st core.GameState) {
		assert.Equal(t, "counter", id)
		assert.Equal(t, 3, st.Score)
		overCalls.Add(1)
	}))
	frames, unsubscribe := r.Subscribe(16)
	defer unsubscribe()

	cancel, done := start(t, r)
	defer cancel()

	assert.Equal(t, uint64(1), recv(t, frames).Seq)
	require.Eventually(t, func() bool { return clock.count() == 1 }, wait, time.Millisecond)

	for i := 1; i <= 3; i++ {
		clock.fire(t)
		f := recv(t, frames)
		assert.Equal(t, i, f.State.Score)
	}

	first := clock.last()
	assert.Eventually(t, first.stopped.Load, wait, time.Millisecond, "ticker must stop on game over")
	assert.Eventually(t, func() bool { return overCalls.Load() == 1 }, wait, time.Millisecond)

	// With no ticker, restart is applied straight away and re-arms a new ticker.
	require.True(t, r.Send(core.ActionRestart))
	f := recv(t, frames)
	assert.False(t, f.State.Over())
	assert.Eventually(t, func() bool { return clock.count() == 2 }, wait, time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(wait):
		t.Fatal("Run did not return after cancel")
	}
	assert.True(t, clock.last().stopped.Load(), "ticker must stop on cancel")
}

func TestInputsQueuedUntilNextTick(t *testing.T) {
	clock := &fakeClock{}
	game := &counterGame{interval: time.Millisecond, limit: 100}
	game.Reset(core.RuntimeConfig{})

	r := New(game, WithTicker(clock.New))
	frames, unsubscribe := r.Subscribe(16)
	defer unsubscribe()
	cancel, _ := start(t, r)
	defer cancel()

	recv(t, frames)
	require.Eventually(t, func() bool { return clock.count() == 1 }, wait, time.Millisecond)

	require.True(t, r.Send(core.ActionUp))
	require.True(t, r.Send(core.ActionLeft))
	require.Eventually(t, func() bool { return len(r.input) == 0 }, wait, time.Millisecond)

	clock.fire(t)
	recv(t, frames)
	cancel()

	assert.Equal(t, []core.Action{core.ActionUp, core.ActionLeft}, game.seen)
}

func TestUntimedGameStepsPerInput(t *testing.T) {
	clock := &fakeClock{}
	game := &counterGame{limit: 100}
	game.Reset(core.RuntimeConfig{})

	r := New(game, WithTicker(clock.New))
	frames, unsubscribe := r.Subscribe(16)
	defer unsubscribe()
	cancel, _ := start(t, r)
	defer cancel()

	recv(t, frames)
	r.Send(core.ActionRight)
	assert.Equal(t, 1, recv(t, frames).State.Score)
	r.Send(core.ActionDown)
	assert.Equal(t, 2, recv(t, frames).State.Score)

	assert.Zero(t, clock.count(), "untimed game must not acquire a ticker")
}

func TestSendDropsWhenFull(t *testing.T) {
	r := New(&counterGame{}, WithInputBuffer(1))

	assert.True(t, r.Send(core.ActionUp))
	assert.False(t, r.Send(core.ActionDown))
	assert.False(t, r.Send(core.ActionNone))
}

func TestRunTwiceFails(t *testing.T) {
	game := &counterGame{limit: 1}
	r := New(game)
	frames, _ := r.Subscribe(1)
	cancel, _ := start(t, r)
	defer cancel()

	recv(t, frames)
	assert.ErrorIs(t, r.Run(context.Background()), ErrRunning)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	r := New(&counterGame{})
	frames, unsubscribe := r.Subscribe(1)
	unsubscribe()
	unsubscribe()

	_, ok := <-frames
	assert.False(t, ok)
}

func TestSnakeSession(t *testing.T) {
	clock := &fakeClock{}
	game := snake.NewWithConfig(config.DefaultSnakeConfig())
	game.Reset(core.RuntimeConfig{Seed: 1})

	r := New(game, WithTicker(clock.New))
	frames, unsubscribe := r.Subscribe(16)
	defer unsubscribe()
	cancel, _ := start(t, r)
	defer cancel()

	first := recv(t, frames).Snapshot.(snake.Snapshot)
	assert.Equal(t, core.Point{X: 5, Y: 5}, first.Snake[0])
	require.Eventually(t, func() bool { return clock.count() == 1 }, wait, time.Millisecond)

	r.Send(core.ActionDown)
	require.Eventually(t, func() bool { return len(r.input) == 0 }, wait, time.Millisecond)
	clock.fire(t)

	snap := recv(t, frames).Snapshot.(snake.Snapshot)
	assert.Equal(t, core.Point{X: 5, Y: 6}, snap.Snake[0])
	assert.Equal(t, snake.Down, snap.Heading)
}

func TestPauseIsPublished(t *testing.T) {
	clock := &fakeClock{}
	game := snake.NewWithConfig(config.DefaultSnakeConfig())
	game.Reset(core.RuntimeConfig{Seed: 1})

	r := New(game, WithTicker(clock.New))
	frames, unsubscribe := r.Subscribe(16)
	defer unsubscribe()
	cancel, _ := start(t, r)
	defer cancel()

	recv(t, frames)
	require.Eventually(t, func() bool { return clock.count() == 1 }, wait, time.Millisecond)

	r.Send(core.ActionPause)
	require.Eventually(t, func() bool { return len(r.input) == 0 }, wait, time.Millisecond)
	clock.fire(t)

	paused := recv(t, frames)
	assert.True(t, paused.State.Paused)
	assert.Equal(t, core.Point{X: 5, Y: 5}, paused.Snapshot.(snake.Snapshot).Snake[0])

	clock.fire(t)
	select {
	case f := <-frames:
		t.Fatalf("paused tick published a frame: %+v", f)
	case <-time.After(20 * time.Millisecond):
	}

	r.Send(core.ActionPause)
	require.Eventually(t, func() bool { return len(r.input) == 0 }, wait, time.Millisecond)
	clock.fire(t)

	resumed := recv(t, frames)
	assert.False(t, resumed.State.Paused)
	assert.Equal(t, core.Point{X: 6, Y: 5}, resumed.Snapshot.(snake.Snapshot).Snake[0])
}
