package t2048

import "github.com/vovakirdan/folio-arcade/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Moves      uint64      `json:"moves"`
	Score      int         `json:"score"`
	MergeTotal int         `json:"merge_total"`
	Board      Board       `json:"board"`
	MaxTile    int         `json:"max_tile"`
	Status     core.Status `json:"status"`
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Moves:      g.moves,
		Score:      g.score,
		MergeTotal: g.mergeTotal,
		Board:      g.board,
		MaxTile:    MaxTile(g.board),
		Status:     g.status,
	}
}

// Observe returns the snapshot as a value safe to share.
func (g *Game) Observe() any {
	return g.Snapshot()
}
