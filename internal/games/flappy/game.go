// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Flappy Bird game logic. Positions are world units
// with y growing downwards.
type Game struct {
	cfg      config.FlappyConfig
	fixedCfg bool
	frame    time.Duration
	rng      *rand.Rand
	tick     uint64

	birdY    float64
	velocity float64
	pipes    *PipeQueue
	score    int
	status   core.Status
	paused   bool
}

// New creates a Flappy Bird game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a Flappy Bird game with a fixed config.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// TickInterval is one rendering frame.
func (g *Game) TickInterval() time.Duration {
	if g.frame <= 0 {
		return core.DefaultConfig().FrameInterval()
	}
	return g.frame
}

// Reset loads config, seeds the RNG and starts a fresh game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
		}
		g.cfg = cfg
	}

	g.frame = runtime.FrameInterval()
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.pipes = NewPipeQueue(g.rng, g.cfg.Pipes, g.cfg.Field.Width)
	g.restart()
}

// restart restores position, velocity, pipes, score and status.
func (g *Game) restart() {
	g.tick = 0
	g.birdY = g.cfg.Bird.StartY
	g.velocity = 0
	g.pipes.Reset()
	g.score = 0
	g.status = core.StatusActive
	g.paused = false
}

// Step applies the frame's actions in order and then advances one frame.
// A frame carrying Restart only restarts.
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
		case core.ActionJump, core.ActionUp:
			g.Jump()
		}
	}

	if restarted || g.paused || g.status == core.StatusOver {
		return core.StepResult{State: g.State(), Changed: restarted || toggled}
	}

	g.advance()
	return core.StepResult{State: g.State(), Changed: true}
}

// Jump sets the upward velocity. It has no effect once the game is over
// or while paused. Returns whether the jump was applied.
func (g *Game) Jump() bool {
	if g.status == core.StatusOver || g.paused {
		return false
	}
	g.velocity = g.cfg.Physics.JumpImpulse
	return true
}

// advance integrates one frame and evaluates collisions.
func (g *Game) advance() {
	g.tick++

	g.velocity += g.cfg.Physics.Gravity
	g.birdY += g.velocity

	g.score += g.pipes.Scroll(g.cfg.Physics.ScrollSpeed)

	if g.collides() {
		g.status = core.StatusOver
	}
}

// band is the bird's fixed horizontal extent.
func (g *Game) band() core.Span {
	return core.Span{Lo: g.cfg.Bird.BandLeft, Hi: g.cfg.Bird.BandRight}
}

func (g *Game) collides() bool {
	field := core.Span{Lo: 0, Hi: g.cfg.Field.Height}
	if !field.Contains(g.birdY) {
		return true
	}
	return g.pipes.Collides(g.band(), g.birdY)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Status: g.status,
		Paused: g.paused,
	}
}
