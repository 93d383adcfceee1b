// Package t2048 implements the 2048 sliding tile puzzle.
package t2048

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

// Game implements the 2048 puzzle game.
type Game struct {
	cfg      config.T2048Config
	fixedCfg bool
	rng      *rand.Rand
	spawn    Spawner
	moves    uint64

	score      int
	mergeTotal int
	board      Board
	status     core.Status
}

// New creates a 2048 game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a 2048 game with a fixed config.
func NewWithConfig(cfg config.T2048Config) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

func init() {
	registry.Register("2048", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "2048"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// TickInterval is zero: the board only changes on input.
func (g *Game) TickInterval() time.Duration {
	return 0
}

// Reset initializes the game and seeds its RNG.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if !g.fixedCfg {
		cfg, err := config.LoadT2048(configPath)
		if err != nil {
			cfg = config.DefaultT2048Config()
		}
		g.cfg = cfg
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.spawn = RandomSpawner(g.rng, g.cfg.Spawn.FourProbability)
	g.restart()
}

// restart rebuilds the board from scratch. The RNG stream continues so a
// restarted game does not replay the previous one.
func (g *Game) restart() {
	g.moves = 0
	g.score = 0
	g.mergeTotal = 0
	g.status = core.StatusActive
	g.board = place(Board{}, g.spawn)
}

// SetSpawner replaces the tile spawner. Intended for tests and replays.
func (g *Game) SetSpawner(s Spawner) {
	g.spawn = s
}

// Step applies the frame's actions in order. Restart is honoured in any
// state; moves are ignored once the game is over.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	changed := false

	for _, a := range in.Actions() {
		if a == core.ActionRestart {
			g.restart()
			changed = true
			continue
		}

		if g.status == core.StatusOver {
			continue
		}

		dir, ok := directionFor(a)
		if !ok {
			continue
		}
		if g.move(dir) {
			changed = true
		}
	}

	return core.StepResult{State: g.State(), Changed: changed}
}

// directionFor maps an input action to a move direction.
func directionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	default:
		return 0, false
	}
}

// move applies one accepted or rejected move. Returns true if accepted.
func (g *Game) move(dir Direction) bool {
	slid, merged, changed := Slide(g.board, dir)
	if !changed {
		return false
	}

	g.board = place(slid, g.spawn)
	g.moves++
	g.score += g.cfg.Scoring.MovePoints
	g.mergeTotal += merged

	if IsGameOver(g.board) {
		g.status = core.StatusOver
	}
	return true
}

// Board returns a copy of the current board.
func (g *Game) Board() Board {
	return g.board
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.score,
		Status: g.status,
	}
}
