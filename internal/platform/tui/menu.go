package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/folio-arcade/internal/registry"
)

// ItemKind tells the App which screen a menu entry opens.
type ItemKind int

const (
	ItemGame ItemKind = iota
	ItemScores
	ItemCatFact
	ItemContact
)

// MenuItem is one selectable menu entry.
type MenuItem struct {
	Kind   ItemKind
	GameID string
	Title  string
}

// selectMsg is emitted when the user picks a menu entry.
type selectMsg struct {
	item MenuItem
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	quitting  bool
}

// NewMenuModel lists every registered game followed by the extra screens.
func NewMenuModel(width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)
	for _, g := range games {
		items = append(items, MenuItem{Kind: ItemGame, GameID: g.ID, Title: g.Title})
	}
	items = append(items,
		MenuItem{Kind: ItemScores, Title: "High Scores"},
		MenuItem{Kind: ItemCatFact, Title: "Cat Fact"},
		MenuItem{Kind: ItemContact, Title: "Contact"},
	)

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keyMapper.MapKeyToMenuAction(msg) {
		case MenuActionQuit:
			m.quitting = true
			return m, tea.Quit
		case MenuActionUp:
			if m.cursor > 0 {
				m.cursor--
			}
		case MenuActionDown:
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case MenuActionSelect:
			if len(m.items) > 0 {
				item := m.items[m.cursor]
				return m, func() tea.Msg { return selectMsg{item: item} }
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// Cursor returns the highlighted item.
func (m MenuModel) Cursor() MenuItem {
	return m.items[m.cursor]
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("F O L I O   A R C A D E"))
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("Pick something"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if item.Kind != ItemGame && i > 0 && m.items[i-1].Kind == ItemGame {
			b.WriteString("\n")
		}
		line := fmt.Sprintf("  %s  ", item.Title)
		if i == m.cursor {
			line = selectedStyle.Render(fmt.Sprintf("> %s  ", item.Title))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"))

	return place(m.width, m.height, panelStyle.Render(b.String()))
}
