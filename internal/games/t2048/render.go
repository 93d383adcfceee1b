package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if tooSmall(dst) {
		renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight := 3

	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight + 1

	// Render HUD
	g.renderHUD(dst, boardX, boardW)

	// Render board
	g.renderBoard(dst, boardX, boardY)

	// Render overlays
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// tooSmall reports whether the board and HUD (21x9 plus 3 lines) do not fit.
func tooSmall(dst *core.Screen) bool {
	return dst.Width() < 25 || dst.Height() < 13
}

// renderHUD draws the score and best tile.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	infoStr := fmt.Sprintf("Best: %d", MaxTile(g.board))
	infoX := max(boardX+boardW-len(infoStr), boardX)
	dst.DrawText(infoX, 1, infoStr)

	mergeStr := fmt.Sprintf("Merged: %d", g.mergeTotal)
	dst.DrawTextColored(boardX+(boardW-len(mergeStr))/2, 2, mergeStr, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Draw grid borders
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			// Draw horizontal line to the right
			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Draw vertical line down
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := range BoardSize {
		for x := range BoardSize {
			val := g.board[y][x]
			if val == 0 {
				continue
			}

			// Calculate cell center position
			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			// Format value (right-aligned in cell)
			valStr := strconv.Itoa(val)
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	if g.status != core.StatusOver {
		return
	}
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2
	maxStr := fmt.Sprintf("Best tile: %d", MaxTile(g.board))
	g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
}

// tileColor follows the warm palette of the classic board.
func tileColor(val int) core.Color {
	switch {
	case val <= 4:
		return core.ColorWhite
	case val <= 16:
		return core.ColorOrange
	case val <= 64:
		return core.ColorRed
	case val <= 512:
		return core.ColorYellow
	default:
		return core.ColorBrightYellow
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	// Draw box
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	// Draw text
	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Move | R: Restart | B: Back | Q: Quit"
}
