package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/games/snake"
	"github.com/vovakirdan/folio-arcade/internal/games/t2048"
	"github.com/vovakirdan/folio-arcade/internal/logging"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// nearWallSnake dies on its second tick unless it turns.
func nearWallSnake() *snake.Game {
	cfg := config.DefaultSnakeConfig()
	cfg.Board = config.SnakeBoard{Width: 10, Height: 10}
	cfg.Start.Head = config.Coord{X: 8, Y: 5}
	cfg.Start.Heading = config.Coord{X: 1, Y: 0}
	cfg.Start.Food = config.Coord{X: 0, Y: 0}
	return snake.NewWithConfig(cfg)
}

func newSnakeModel(t *testing.T) (GameModel, *snake.Game) {
	t.Helper()
	game := nearWallSnake()
	m := NewGameModel(game, nil, "tester", core.DefaultConfig(), logging.Discard())
	return m, game
}

func TestGameModelTickReleasedOnGameOver(t *testing.T) {
	m, game := newSnakeModel(t)
	require.True(t, m.Armed())
	require.NotNil(t, m.Init())

	m, cmd := m.Update(TickMsg{Gen: m.gen})
	assert.NotNil(t, cmd, "active game should schedule the next tick")
	assert.Equal(t, 9, game.Snapshot().Snake[0].X)

	m, _ = m.Update(TickMsg{Gen: m.gen})
	assert.True(t, m.State().Over())
	assert.False(t, m.Armed())

	staleGen := m.gen - 1
	m, cmd = m.Update(TickMsg{Gen: staleGen})
	assert.Nil(t, cmd)
	assert.True(t, m.State().Over())
}

func TestGameModelRestartDropsStaleTick(t *testing.T) {
	m, game := newSnakeModel(t)
	oldGen := m.gen

	m, _ = m.Update(TickMsg{Gen: m.gen})
	m, _ = m.Update(TickMsg{Gen: m.gen})
	require.True(t, m.State().Over())

	m, cmd := m.Update(runeKey("r"))
	require.NotNil(t, cmd, "restart should re-arm the tick")
	assert.True(t, m.Armed())
	assert.False(t, m.State().Over())
	assert.Equal(t, uint64(0), game.Snapshot().Tick)

	m, cmd = m.Update(TickMsg{Gen: oldGen})
	assert.Nil(t, cmd)
	assert.Equal(t, uint64(0), game.Snapshot().Tick, "tick from before the restart must not advance the new game")

	m, _ = m.Update(TickMsg{Gen: m.gen})
	assert.Equal(t, uint64(1), game.Snapshot().Tick)
}

func TestGameModelQueuesInputUntilTick(t *testing.T) {
	m, game := newSnakeModel(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Nil(t, cmd)
	assert.Equal(t, snake.Right, game.Snapshot().Heading, "input must wait for the tick")

	_, _ = m.Update(TickMsg{Gen: m.gen})
	assert.Equal(t, snake.Up, game.Snapshot().Heading)
	assert.Equal(t, core.Point{X: 8, Y: 4}, game.Snapshot().Snake[0])
}

func TestGameModelBackDisarms(t *testing.T) {
	m, _ := newSnakeModel(t)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, backMsg{}, cmd())
	assert.False(t, m.Armed())
}

func TestGameModelUntimedStepsOnKey(t *testing.T) {
	game := t2048.NewWithConfig(config.DefaultT2048Config())
	m := NewGameModel(game, nil, "", core.DefaultConfig(), logging.Discard())

	assert.False(t, m.Armed())
	assert.Nil(t, m.Init(), "2048 has no tick")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.False(t, m.Armed())
	assert.GreaterOrEqual(t, game.Snapshot().Moves, uint64(1), "one of two opposite moves must change a single-tile board")
}

func TestGameModelViewShowsControls(t *testing.T) {
	m, game := newSnakeModel(t)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})

	view := m.View()
	assert.Contains(t, view, game.Controls())
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{runeKey("d"), core.ActionRight, false},
		{tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump, false},
		{runeKey("p"), core.ActionPause, false},
		{runeKey("r"), core.ActionRestart, false},
		{runeKey("b"), core.ActionBack, false},
		{runeKey("q"), core.ActionQuit, true},
		{runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		got, quit := km.MapKey(tt.msg)
		assert.Equal(t, tt.want, got, tt.msg.String())
		assert.Equal(t, tt.quit, quit, tt.msg.String())
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "score")
	s.SetColored(0, 1, '█', core.ColorGreen)

	out := RenderScreen(s)
	assert.Contains(t, out, "score")
	assert.Contains(t, out, "█")
}
