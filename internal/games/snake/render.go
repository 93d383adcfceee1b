package snake

import (
	"fmt"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

const (
	hudHeight = 2
	cellW     = 2 // Terminal cells are roughly twice as tall as wide
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	w, h := g.cfg.Board.Width, g.cfg.Board.Height
	field := core.NewRect(0, 0, w*cellW+2, h+2)
	field.X = (dst.Width() - field.W) / 2
	field.Y = hudHeight

	if field.X < 0 || field.Bottom() > dst.Height() {
		dst.DrawMessageBox("Window too small", "Resize to continue")
		return
	}

	dst.DrawBox(field)
	originX, originY := field.X+1, field.Y+1

	if g.food != noFood {
		g.drawCell(dst, originX, originY, g.food, '●', core.ColorRed)
	}
	for i, seg := range g.body.segments {
		r, c := '█', core.ColorGreen
		if i == 0 {
			c = core.ColorBrightGreen
		}
		g.drawCell(dst, originX, originY, seg, r, c)
	}

	switch {
	case g.status == core.StatusOver:
		dst.DrawMessageBox("Game Over", fmt.Sprintf("Score %d - press R to restart", g.score))
	case g.paused:
		dst.DrawMessageBox("Paused", "Press P to continue")
	}
}

func (g *Game) drawCell(dst *core.Screen, ox, oy int, p core.Point, r rune, c core.Color) {
	for i := range cellW {
		dst.SetColored(ox+p.X*cellW+i, oy+p.Y, r, c)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Length: %d", g.score, g.body.len())
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Turn | P: Pause | R: Restart | B: Back | Q: Quit"
}
