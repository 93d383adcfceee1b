package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

// scoresMsg carries one game's table and totals.
type scoresMsg struct {
	gameID string
	scores []storage.ScoreEntry
	stats  storage.GameStats
	err    error
}

type scoreKeys struct {
	Scroll key.Binding
	Game   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Game, k.Back, k.Quit}
}

func (k scoreKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var scoreKeyMap = scoreKeys{
	Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("↑/↓", "scroll")),
	Game:   key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab", "shift+tab"), key.WithHelp("←/→", "game")),
	Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// ScoreboardModel lists the best results of one game at a time, with
// that game's totals above the table.
type ScoreboardModel struct {
	store   *storage.Store
	games   []registry.GameInfo
	cursor  int
	scores  []storage.ScoreEntry
	stats   storage.GameStats
	err     error
	loading bool
	table   table.Model
	help    help.Model
	width   int
	height  int
}

// NewScoreboardModel creates the scoreboard on gameID, or on the first game
// when gameID is unknown. Call Load to fetch.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	games := registry.List()
	cursor := 0
	for i, g := range games {
		if g.ID == gameID {
			cursor = i
		}
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Player", Width: 14},
			{Title: "Date", Width: 12},
		}),
		table.WithFocused(true),
		table.WithHeight(storage.DefaultTopLimit+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true)
	styles.Selected = selectedStyle
	t.SetStyles(styles)

	return ScoreboardModel{
		store:  store,
		games:  games,
		cursor: cursor,
		table:  t,
		help:   help.New(),
		width:  width,
		height: height,
	}
}

// Load fetches the selected game's scores and totals. A result for a game
// that is no longer selected is dropped.
func (m ScoreboardModel) Load() (ScoreboardModel, tea.Cmd) {
	gameID := m.GameID()
	if m.store == nil || gameID == "" {
		m.scores, m.stats, m.err = nil, storage.GameStats{GameID: gameID}, nil
		m.table.SetRows(nil)
		return m, nil
	}

	m.loading = true
	store := m.store
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		msg := scoresMsg{gameID: gameID}
		msg.scores, msg.err = store.TopScores(ctx, gameID, storage.DefaultTopLimit)
		if msg.err == nil {
			msg.stats, msg.err = store.Stats(ctx, gameID)
		}
		return msg
	}
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, scoreKeyMap.Quit):
			return m, tea.Quit
		case key.Matches(msg, scoreKeyMap.Back):
			return m, back
		case key.Matches(msg, scoreKeyMap.Game):
			if len(m.games) == 0 {
				return m, nil
			}
			step := 1
			switch msg.String() {
			case "left", "h", "shift+tab":
				step = len(m.games) - 1
			}
			m.cursor = (m.cursor + step) % len(m.games)
			return m.Load()
		}

	case scoresMsg:
		if msg.gameID != m.GameID() {
			return m, nil
		}
		m.loading = false
		m.scores, m.stats, m.err = msg.scores, msg.stats, msg.err
		m.table.SetRows(scoreRows(msg.scores))
		m.table.GotoTop()
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func scoreRows(scores []storage.ScoreEntry) []table.Row {
	rows := make([]table.Row, len(scores))
	for i, s := range scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprint(i + 1),
			fmt.Sprint(s.Score),
			player,
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("HIGH SCORES"))
	b.WriteString("\n\n")

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.cursor {
			tabs[i] = selectedStyle.Render(" " + g.Title + " ")
		} else {
			tabs[i] = subtleStyle.Render(" " + g.Title + " ")
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n\n")

	switch {
	case m.store == nil:
		b.WriteString(errStyle.Render("Scores are not being saved."))
	case m.err != nil:
		b.WriteString(errStyle.Render("Could not load scores."))
	case m.loading && len(m.scores) == 0:
		b.WriteString(subtleStyle.Render("Loading..."))
	case len(m.scores) == 0:
		b.WriteString(subtleStyle.Render("No scores yet. Play a round to set one!"))
	default:
		b.WriteString(m.statsLine())
		b.WriteString("\n\n")
		b.WriteString(m.table.View())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(scoreKeyMap))
	return place(m.width, m.height, panelStyle.Render(b.String()))
}

func (m ScoreboardModel) statsLine() string {
	s := m.stats
	line := fmt.Sprintf("Best %d · Played %d · Average %.1f", s.HighScore, s.GamesCount, s.AvgScore)
	if !s.LastPlayed.IsZero() {
		line += " · Last " + s.LastPlayed.Format("Jan 02")
	}
	return subtleStyle.Render(line)
}

// Scores returns the rows currently shown.
func (m ScoreboardModel) Scores() []storage.ScoreEntry {
	return m.scores
}

// Stats returns the totals of the game shown.
func (m ScoreboardModel) Stats() storage.GameStats {
	return m.stats
}

// GameID returns the game whose scores are shown.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.cursor].ID
}
