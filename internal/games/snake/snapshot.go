package snake

import "github.com/vovakirdan/folio-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64       `json:"tick"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Score   int          `json:"score"`
	Snake   []core.Point `json:"snake"` // Head first
	Heading core.Point   `json:"heading"`
	Food    core.Point   `json:"food"`
	HasFood bool         `json:"has_food"`
	Status  core.Status  `json:"status"`
	Paused  bool         `json:"paused"`
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:    g.tick,
		Width:   g.cfg.Board.Width,
		Height:  g.cfg.Board.Height,
		Score:   g.score,
		Snake:   g.body.snapshot(),
		Heading: g.heading,
		Food:    g.food,
		HasFood: g.food != noFood,
		Status:  g.status,
		Paused:  g.paused,
	}
}

// Observe returns the snapshot as a value safe to share.
func (g *Game) Observe() any {
	return g.Snapshot()
}
