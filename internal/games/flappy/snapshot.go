package flappy

import "github.com/vovakirdan/folio-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64      `json:"tick"`
	Width    float64     `json:"width"`
	Height   float64     `json:"height"`
	BirdY    float64     `json:"bird_y"`
	Velocity float64     `json:"velocity"`
	Band     core.Span   `json:"band"`
	Pipes    []Pipe      `json:"pipes"`
	PipeW    float64     `json:"pipe_width"`
	Gap      float64     `json:"gap"`
	Score    int         `json:"score"`
	Status   core.Status `json:"status"`
	Paused   bool        `json:"paused"`
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:     g.tick,
		Width:    g.cfg.Field.Width,
		Height:   g.cfg.Field.Height,
		BirdY:    g.birdY,
		Velocity: g.velocity,
		Band:     g.band(),
		Pipes:    g.pipes.Pipes(),
		PipeW:    g.cfg.Pipes.Width,
		Gap:      g.cfg.Pipes.Gap,
		Score:    g.score,
		Status:   g.status,
		Paused:   g.paused,
	}
}

// Observe returns the snapshot as a value safe to share.
func (g *Game) Observe() any {
	return g.Snapshot()
}
