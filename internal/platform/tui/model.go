package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

// controller is implemented by games that publish their key hints.
type controller interface {
	Controls() string
}

// scoreSavedMsg reports the result of recording a finished game.
type scoreSavedMsg struct {
	game  string
	score int
	err   error
}

// GameModel plays one game inside the terminal.
//
// Timed games are driven by tea.Tick. The tick is armed only while the
// game is active; every arming bumps gen so a tick still in flight from
// an earlier arming is ignored. Inputs are queued into a pending frame
// while the tick runs and applied immediately otherwise.
type GameModel struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	player    string
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	logger    *log.Logger
	pending   core.InputFrame
	state     core.GameState
	gen       uint64
	armed     bool
	back      bool
	quitting  bool
}

// NewGameModel resets game with cfg and returns a model ready to run it.
func NewGameModel(game registry.Game, store *storage.Store, player string, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:     store,
		player:    player,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		logger:    logger,
		pending:   core.NewInputFrame(),
	}
	m.game.Reset(cfg)
	m.state = m.game.State()
	m.armed = m.timed() && !m.state.Over()
	return m
}

// Init starts the tick loop for timed games.
func (m GameModel) Init() tea.Cmd {
	if !m.armed {
		return nil
	}
	return tickCmd(m.game.TickInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (GameModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		return m, nil

	case TickMsg:
		return m.handleTick(msg)

	case scoreSavedMsg:
		if msg.err != nil {
			m.logger.Warn("could not save score", "game", msg.game, "score", msg.score, "error", msg.err)
		} else {
			m.logger.Info("score saved", "game", msg.game, "score", msg.score, "player", m.player)
		}
		return m, nil
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (GameModel, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.disarm()
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		m.disarm()
		return m, back
	case action == core.ActionNone, action == core.ActionConfirm:
		return m, nil
	}

	if m.armed {
		m.pending.Set(action)
		return m, nil
	}
	return m, m.apply(core.NewInputFrame(action))
}

func (m GameModel) handleTick(msg TickMsg) (GameModel, tea.Cmd) {
	if !m.armed || msg.Gen != m.gen {
		return m, nil
	}

	frame := m.pending.Clone()
	m.pending.Clear()
	cmd := m.apply(frame)
	if m.armed {
		cmd = tea.Batch(cmd, tickCmd(m.game.TickInterval(), m.gen))
	}
	return m, cmd
}

// apply steps the game with one frame and moves the tick to match the
// resulting status.
func (m *GameModel) apply(frame core.InputFrame) tea.Cmd {
	wasOver := m.state.Over()
	m.state = m.game.Step(frame).State

	switch {
	case m.state.Over():
		m.disarm()
		if !wasOver {
			return m.recordScore()
		}
	case m.timed() && !m.armed:
		m.gen++
		m.armed = true
		return tickCmd(m.game.TickInterval(), m.gen)
	}
	return nil
}

// disarm releases the tick; any TickMsg already scheduled goes stale.
func (m *GameModel) disarm() {
	if m.armed {
		m.armed = false
		m.gen++
	}
	m.pending.Clear()
}

func (m GameModel) timed() bool {
	return m.game.TickInterval() > 0
}

func (m GameModel) recordScore() tea.Cmd {
	if m.store == nil || m.state.Score <= 0 {
		return nil
	}
	store, game, player, score := m.store, m.game.ID(), m.player, m.state.Score
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_, err := store.SaveScore(ctx, game, player, score)
		return scoreSavedMsg{game: game, score: score, err: err}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".folio", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot directory", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
	}
}

// State returns the last observed game state.
func (m GameModel) State() core.GameState {
	return m.state
}

// Armed reports whether a tick is currently scheduled.
func (m GameModel) Armed() bool {
	return m.armed
}

// View renders the game plus a line of key hints.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if c, ok := m.game.(controller); ok {
		out += "\n" + subtleStyle.Render(centerText(c.Controls(), m.config.ScreenW))
	}
	return out
}
