// Package session drives one game instance from a single goroutine.
// Inputs arrive on a channel, ticks come from a ticker that only exists
// while the game is active and timed, and every change is published to
// subscribers as a Frame.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/logging"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// ErrRunning is returned when Run is called on a runner already running.
var ErrRunning = errors.New("session: already running")

// Frame is one published view of the game.
type Frame struct {
	Seq      uint64         `json:"seq"`
	Game     string         `json:"game"`
	State    core.GameState `json:"state"`
	Snapshot any            `json:"snapshot"`
}

// Ticker is the tick source. *time.Ticker satisfies it through realTicker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker firing every d.
type TickerFunc func(d time.Duration) Ticker

type realTicker struct{ t *time.Ticker }

func (r realTicker) C() <-chan time.Time { return r.t.C }
func (r realTicker) Stop() { r.t.Stop() }

// NewTicker returns a Ticker backed by time.Ticker.
func NewTicker(d time.Duration) Ticker {
	return realTicker{t: time.NewTicker(d)}
}

// Option configures a Runner.
type Option func(*Runner)

// WithTicker replaces the tick source.
func WithTicker(f TickerFunc) Option {
	return func(r *Runner) { r.newTicker = f }
}

// WithLogger sets the runner's logger.
func WithLogger(l *log.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithGameOver registers a callback run on the loop goroutine each time
// the game reaches its terminal state.
func WithGameOver(fn func(game string, st core.GameState)) Option {
	return func(r *Runner) { r.onOver = fn }
}

// WithInputBuffer sets the input channel capacity.
func WithInputBuffer(n int) Option {
	return func(r *Runner) { r.inputBuf = n }
}

// Runner owns a game, its tick source and its input queue.
type Runner struct {
	game      registry.Game
	newTicker TickerFunc
	logger    *log.Logger
	onOver    func(string, core.GameState)
	inputBuf  int
	input     chan core.Action

	mu      sync.Mutex
	running bool
	subs    map[int]chan Frame
	nextSub int
	seq     uint64
}

// New creates a runner for a game that has already been Reset.
func New(game registry.Game, opts ...Option) *Runner {
	r := &Runner{
		game:      game,
		newTicker: NewTicker,
		inputBuf:  64,
		subs:      make(map[int]chan Frame),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = logging.Discard()
	}
	r.input = make(chan core.Action, r.inputBuf)
	return r
}

// Game returns the game being driven. Only the loop goroutine may mutate it.
func (r *Runner) Game() registry.Game {
	return r.game
}

// Send queues an input action without blocking. It returns false when
// the queue is full and the action was dropped.
func (r *Runner) Send(a core.Action) bool {
	if a == core.ActionNone {
		return false
	}
	select {
	case r.input <- a:
		return true
	default:
		r.logger.Debug("input dropped", "game", r.game.ID(), "action", a)
		return false
	}
}

// Subscribe registers for frames. A slow subscriber misses frames rather
// than stalling the loop. The returned cancel func unsubscribes and
// closes the channel.
func (r *Runner) Subscribe(buf int) (<-chan Frame, func()) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextSub
	r.nextSub++
	ch := make(chan Frame, buf)
	r.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			if c, ok := r.subs[id]; ok {
				delete(r.subs, id)
				close(c)
			}
		})
	}
}

// Run drives the game until ctx is cancelled. Timed games are stepped on
// every tick with the actions queued since the previous tick; untimed or
// finished games are stepped once per action. The ticker is held only
// while the game is active and is released on every return path.
func (r *Runner) Run(ctx context.Context) error {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return ErrRunning
	}
	r.running = true
	r.mu.Unlock()

	var (
		ticker Ticker
		tickC  <-chan time.Time
	)
	arm := func() {
		interval := r.game.TickInterval()
		if ticker != nil || interval <= 0 || r.game.State().Over() {
			return
		}
		ticker = r.newTicker(interval)
		tickC = ticker.C()
	}
	disarm := func() {
		if ticker == nil {
			return
		}
		ticker.Stop()
		ticker, tickC = nil, nil
	}

	defer func() {
		disarm()
		r.closeSubscribers()
	}()

	r.logger.Info("session started", "game", r.game.ID())
	r.publish()
	arm()

	pending := core.NewInputFrame()
	wasOver := r.game.State().Over()

	apply := func(in core.InputFrame) {
		res := r.game.Step(in)
		if res.Changed {
			r.publish()
		}

		over := res.State.Over()
		switch {
		case over && !wasOver:
			disarm()
			r.logger.Info("game over", "game", r.game.ID(), "score", res.State.Score)
			if r.onOver != nil {
				r.onOver(r.game.ID(), res.State)
			}
		case !over:
			arm()
		}
		wasOver = over
	}

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("session stopped", "game", r.game.ID())
			return nil

		case a := <-r.input:
			if ticker != nil {
				pending.Set(a)
				continue
			}
			apply(core.NewInputFrame(a))

		case <-tickC:
			in := pending.Clone()
			pending.Clear()
			apply(in)
		}
	}
}

// publish fans the current state out to subscribers without blocking.
func (r *Runner) publish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	f := Frame{
		Seq:      r.seq,
		Game:     r.game.ID(),
		State:    r.game.State(),
		Snapshot: r.game.Observe(),
	}
	for _, ch := range r.subs {
		select {
		case ch <- f:
		default:
		}
	}
}

func (r *Runner) closeSubscribers() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, ch := range r.subs {
		delete(r.subs, id)
		close(ch)
	}
	r.running = false
}
