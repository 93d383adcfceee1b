package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	GroundChar    = '═'
)

// viewport maps world units onto the screen rows below the HUD.
type viewport struct {
	top    int
	sx, sy float64
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y*v.sy))
}

// Render draws the current game state scaled to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	playH := dst.Height() - 2 // HUD line and ground line
	if playH < 4 || dst.Width() < 10 {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	vp := viewport{
		top: 1,
		sx:  float64(dst.Width()) / g.cfg.Field.Width,
		sy:  float64(playH) / g.cfg.Field.Height,
	}

	groundY := dst.Height() - 1
	dst.DrawHLine(0, groundY, dst.Width(), GroundChar)

	for _, p := range g.pipes.pipes {
		g.drawPipe(dst, vp, p, groundY)
	}

	birdRow := core.Clamp(vp.row(g.birdY), vp.top, groundY-1)
	for x := vp.col(g.cfg.Bird.BandLeft); x < max(vp.col(g.cfg.Bird.BandRight), vp.col(g.cfg.Bird.BandLeft)+1); x++ {
		dst.SetColored(x, birdRow, BirdChar, core.ColorBrightYellow)
	}

	scoreText := fmt.Sprintf(" Score: %d ", g.score)
	dst.DrawText(2, 0, scoreText)

	switch {
	case g.status == core.StatusOver:
		dst.DrawMessageBox("GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.score))
	case g.paused:
		dst.DrawMessageBox("PAUSED", "Press P to resume")
	}
}

// drawPipe renders one pipe: the top column down to the gap and the bottom
// column from below the gap to the ground.
func (g *Game) drawPipe(dst *core.Screen, vp viewport, p Pipe, groundY int) {
	left := vp.col(p.X)
	right := max(vp.col(p.X+g.cfg.Pipes.Width), left+1)
	gapTop := vp.row(p.Height)
	gapBottom := vp.row(p.Height + g.cfg.Pipes.Gap)

	for x := left; x < right; x++ {
		for y := vp.top; y < gapTop; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if gapTop > vp.top {
			dst.SetColored(x, gapTop-1, PipeCapTop, core.ColorBrightGreen)
		}
		for y := gapBottom + 1; y < groundY; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if gapBottom+1 < groundY {
			dst.SetColored(x, gapBottom+1, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Space/W/Up: Flap | P: Pause | R: Restart | B: Back | Q: Quit"
}
