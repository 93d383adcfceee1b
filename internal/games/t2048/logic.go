package t2048

import (
	"math/rand"

	"github.com/vovakirdan/folio-arcade/internal/core"
)

// Direction represents a move direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// BoardSize is the board dimension.
const BoardSize = 4

// Board represents a 4x4 game board. Zero is an empty cell.
type Board [BoardSize][BoardSize]int

// Row is a single board row.
type Row = [BoardSize]int

// Spawner places one new tile on a board that has at least one empty cell.
// It receives the empty cells in row-major order.
type Spawner func(empty []core.Point) (cell core.Point, value int)

// RandomSpawner picks a uniformly random empty cell and places a 4 with
// probability fourProb, otherwise a 2.
func RandomSpawner(rng *rand.Rand, fourProb float64) Spawner {
	return func(empty []core.Point) (core.Point, int) {
		cell := empty[rng.Intn(len(empty))]
		value := 2
		if rng.Float64() < fourProb {
			value = 4
		}
		return cell, value
	}
}

// SlideRow slides and merges a single row to the left.
// Each tile takes part in at most one merge. Returns the updated row and
// the sum of the merged tile values.
func SlideRow(row Row) (result Row, merged int) {
	writePos := 0
	canMerge := false

	for i := range BoardSize {
		if row[i] == 0 {
			continue
		}

		if canMerge && result[writePos-1] == row[i] {
			result[writePos-1] *= 2
			merged += result[writePos-1]
			canMerge = false
			continue
		}

		result[writePos] = row[i]
		writePos++
		canMerge = true
	}

	return result, merged
}

// Rotate turns the board clockwise by the given number of quarter-turns.
func Rotate(board Board, quarterTurns int) Board {
	turns := ((quarterTurns % 4) + 4) % 4
	for range turns {
		var next Board
		for y := range BoardSize {
			for x := range BoardSize {
				next[y][x] = board[BoardSize-1-x][y]
			}
		}
		board = next
	}
	return board
}

// turnsToLeft is the clockwise rotation that makes dir point left.
func turnsToLeft(dir Direction) int {
	switch dir {
	case DirDown:
		return 1
	case DirRight:
		return 2
	case DirUp:
		return 3
	default:
		return 0
	}
}

// Slide slides every row in the given direction without spawning.
// Returns the new board, the merged value total, and whether anything moved.
func Slide(board Board, dir Direction) (Board, int, bool) {
	turns := turnsToLeft(dir)
	rotated := Rotate(board, turns)

	total := 0
	for y := range BoardSize {
		row, merged := SlideRow(rotated[y])
		rotated[y] = row
		total += merged
	}

	result := Rotate(rotated, 4-turns)
	if result == board {
		return board, 0, false
	}
	return result, total, true
}

// Move performs one move. An unchanged board is returned as is with no spawn;
// a changed board gets exactly one new tile from spawn.
func Move(board Board, dir Direction, spawn Spawner) (Board, bool) {
	next, _, changed := Slide(board, dir)
	if !changed {
		return board, false
	}
	return place(next, spawn), true
}

// place adds one spawned tile if the board has room.
func place(board Board, spawn Spawner) Board {
	empty := EmptyCells(board)
	if len(empty) == 0 || spawn == nil {
		return board
	}
	cell, value := spawn(empty)
	board[cell.Y][cell.X] = value
	return board
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(board Board) []core.Point {
	var cells []core.Point
	for y := range BoardSize {
		for x := range BoardSize {
			if board[y][x] == 0 {
				cells = append(cells, core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

var neighbours = [4]core.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}

// IsGameOver returns true if the board is full and no tile has an equal
// neighbour in any of the four directions.
func IsGameOver(board Board) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := board[y][x]
			if val == 0 {
				return false
			}
			for _, d := range neighbours {
				nx, ny := x+d.X, y+d.Y
				if nx < 0 || nx >= BoardSize || ny < 0 || ny >= BoardSize {
					continue
				}
				if board[ny][nx] == val {
					return false
				}
			}
		}
	}
	return true
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(board Board) int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			maxVal = max(maxVal, board[y][x])
		}
	}
	return maxVal
}
