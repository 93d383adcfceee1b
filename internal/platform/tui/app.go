package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/folio-arcade/internal/catfact"
	"github.com/vovakirdan/folio-arcade/internal/config"
	"github.com/vovakirdan/folio-arcade/internal/contact"
	"github.com/vovakirdan/folio-arcade/internal/core"
	"github.com/vovakirdan/folio-arcade/internal/logging"
	"github.com/vovakirdan/folio-arcade/internal/registry"
	"github.com/vovakirdan/folio-arcade/internal/storage"
)

// Deps are the collaborators shared by every screen. Nil Store disables
// score saving; nil Facts or Contact get default clients.
type Deps struct {
	Store   *storage.Store
	Facts   *catfact.Client
	Contact *contact.Client
	Logger  *log.Logger
	Player  string
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	if d.Facts == nil {
		d.Facts = catfact.New(catfact.WithLogger(d.Logger))
	}
	if d.Contact == nil {
		d.Contact = contact.New(config.DefaultContactConfig(), contact.WithLogger(d.Logger))
	}
	return d
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
	screenFact
	screenContact
)

// App is the top-level model: menu -> game/extras -> menu.
// The same model runs locally and once per SSH session.
type App struct {
	deps     Deps
	config   core.RuntimeConfig
	screen   screen
	direct   bool // started on a single screen; leaving it quits
	menu     MenuModel
	game     GameModel
	scores   ScoreboardModel
	fact     FactModel
	contact  ContactModel
	quitting bool
}

// NewApp creates an App that opens on the main menu.
func NewApp(deps Deps, cfg core.RuntimeConfig) App {
	deps = deps.withDefaults()
	return App{
		deps:   deps,
		config: cfg,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
}

// NewGameApp creates an App that opens directly on one game.
func NewGameApp(deps Deps, cfg core.RuntimeConfig, gameID string) (App, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return App{}, err
	}
	a := NewApp(deps, cfg)
	a.direct = true
	a.screen = screenGame
	a.game = NewGameModel(game, a.deps.Store, a.deps.Player, cfg, a.deps.Logger)
	return a, nil
}

// NewContactApp creates an App that opens directly on the contact form.
func NewContactApp(deps Deps, cfg core.RuntimeConfig) App {
	a := NewApp(deps, cfg)
	a.direct = true
	a.screen = screenContact
	a.contact = NewContactModel(a.deps.Contact, cfg.ScreenW, cfg.ScreenH)
	return a
}

// Init initializes the active screen.
func (a App) Init() tea.Cmd {
	switch a.screen {
	case screenGame:
		return a.game.Init()
	case screenContact:
		return a.contact.Init()
	}
	return nil
}

// Update routes messages to the active screen.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.config.ScreenW = msg.Width
		a.config.ScreenH = msg.Height
		a.menu, _ = a.menu.Update(msg)

	case backMsg:
		if a.direct {
			a.quitting = true
			return a, tea.Quit
		}
		a.screen = screenMenu
		return a, nil

	case selectMsg:
		return a.open(msg.item)
	}

	var cmd tea.Cmd
	switch a.screen {
	case screenMenu:
		a.menu, cmd = a.menu.Update(msg)
	case screenGame:
		a.game, cmd = a.game.Update(msg)
	case screenScores:
		a.scores, cmd = a.scores.Update(msg)
	case screenFact:
		a.fact, cmd = a.fact.Update(msg)
	case screenContact:
		a.contact, cmd = a.contact.Update(msg)
	}
	return a, cmd
}

func (a App) open(item MenuItem) (tea.Model, tea.Cmd) {
	w, h := a.config.ScreenW, a.config.ScreenH

	switch item.Kind {
	case ItemGame:
		game, err := registry.Create(item.GameID)
		if err != nil {
			a.deps.Logger.Error("cannot start game", "game", item.GameID, "error", err)
			return a, nil
		}
		cfg := a.config
		cfg.Seed = 0
		a.game = NewGameModel(game, a.deps.Store, a.deps.Player, cfg, a.deps.Logger)
		a.screen = screenGame
		a.deps.Logger.Info("game started", "game", item.GameID, "player", a.deps.Player)
		return a, a.game.Init()

	case ItemScores:
		a.scores = NewScoreboardModel(a.deps.Store, "", w, h)
		a.screen = screenScores
		var cmd tea.Cmd
		a.scores, cmd = a.scores.Load()
		return a, cmd

	case ItemCatFact:
		a.fact = NewFactModel(a.deps.Facts, w, h)
		a.screen = screenFact
		var cmd tea.Cmd
		a.fact, cmd = a.fact.Load()
		return a, cmd

	case ItemContact:
		a.contact = NewContactModel(a.deps.Contact, w, h)
		a.screen = screenContact
		return a, a.contact.Init()
	}

	return a, nil
}

// View renders the active screen.
func (a App) View() string {
	if a.quitting {
		return ""
	}

	switch a.screen {
	case screenGame:
		return a.game.View()
	case screenScores:
		return a.scores.View()
	case screenFact:
		return a.fact.View()
	case screenContact:
		return a.contact.View()
	}
	return a.menu.View()
}

// Run starts a Bubble Tea program for the App on the local terminal.
func Run(a App) error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
