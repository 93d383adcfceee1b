// Package snake implements the classic Snake game on a fixed grid.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// Unit headings.
var (
	Up    = core.Point{X: 0, Y: -1}
	Down  = core.Point{X: 0, Y: 1}
	Left  = core.Point{X: -1, Y: 0}
	Right = core.Point{X: 1, Y: 0}
)

// noFood marks a board with no free cell left for food.
var noFood = core.Point{X: -1, Y: -1}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Snake game.
type Game struct {
	cfg      config.SnakeConfig
	fixedCfg bool
	rng      *rand.Rand
	tick     uint64

	score   int
	body    *body
	heading core.Point // Applied on the last tick
	nextDir core.Point // Takes effect on the next tick
	food    core.Point
	status  core.Status
	paused  bool
}

// New creates a Snake game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Snake game with a fixed config.
func NewWithConfig(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// TickInterval returns the fixed move period.
func (g *Game) TickInterval() time.Duration {
	ms := g.cfg.Timing.TickMs
	if ms <= 0 {
		ms = config.DefaultSnakeConfig().Timing.TickMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Reset loads config, seeds the RNG and starts a fresh game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadSnake(configPath)
		if err != nil {
			cfg = config.DefaultSnakeConfig()
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.body = newBody(g.cfg.Board.Width, g.cfg.Board.Height)
	g.restart()
}

// restart rebuilds the initial state. The RNG stream continues.
func (g *Game) restart() {
	start := g.cfg.Start
	g.tick = 0
	g.score = 0
	g.body.reset(core.Point{X: start.Head.X, Y: start.Head.Y})
	g.heading = core.Point{X: start.Heading.X, Y: start.Heading.Y}
	g.nextDir = g.heading
	g.food = core.Point{X: start.Food.X, Y: start.Food.Y}
	g.status = core.StatusActive
	g.paused = false
}

// Step applies the frame's actions in order and then advances one tick.
// A frame carrying Restart only restarts; the fresh game waits for the
// next tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	restarted, toggled := false, false
	for _, a := range in.Actions() {
		switch a {
		case core.ActionRestart:
			g.restart()
			restarted = true
		case core.ActionPause:
			if g.status == core.StatusActive {
				g.paused = !g.paused
				toggled = true
			}
		case core.ActionUp:
			g.Turn(Up)
		case core.ActionDown:
			g.Turn(Down)
		case core.ActionLeft:
			g.Turn(Left)
		case core.ActionRight:
			g.Turn(Right)
		}
	}

	if restarted || g.paused || g.status == core.StatusOver {
		return core.StepResult{State: g.State(), Changed: restarted || toggled}
	}

	g.advance()
	return core.StepResult{State: g.State(), Changed: true}
}

// Turn requests a heading for the next tick. A request anti-parallel to
// the heading applied on the last tick is rejected. Returns whether the
// request was accepted.
func (g *Game) Turn(dir core.Point) bool {
	if g.status == core.StatusOver {
		return false
	}
	if dir.X == -g.heading.X && dir.Y == -g.heading.Y {
		return false
	}
	g.nextDir = dir
	return true
}

// advance moves the snake one cell. Hitting a wall or any segment ends the
// game and leaves the snake, its heading and the tick count as they were.
func (g *Game) advance() {
	next := g.body.head().Add(g.nextDir)

	if !g.inBounds(next) || g.body.contains(next) {
		g.status = core.StatusOver
		return
	}

	g.tick++
	g.heading = g.nextDir
	g.body.pushHead(next)
	if next == g.food {
		g.score += g.cfg.Food.Points
		g.spawnFood()
		return
	}
	g.body.popTail()
}

func (g *Game) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.cfg.Board.Width && p.Y >= 0 && p.Y < g.cfg.Board.Height
}

// spawnFood picks a uniformly random cell. With avoid_body the choice is
// limited to cells the snake does not cover.
func (g *Game) spawnFood() {
	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	if !g.cfg.Food.AvoidBody {
		g.food = core.Point{X: g.rng.Intn(w), Y: g.rng.Intn(h)}
		return
	}

	free := w*h - g.body.len()
	if free <= 0 {
		g.food = noFood
		return
	}

	n := g.rng.Intn(free)
	for y := range h {
		for x := range w {
			p := core.Point{X: x, Y: y}
			if g.body.contains(p) {
				continue
			}
			if n == 0 {
				g.food = p
				return
			}
			n--
		}
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Status: g.status,
		Paused: g.paused,
	}
}
