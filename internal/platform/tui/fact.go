package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/folio-arcade/internal/catfact"
)

const factWidth = 50

// factMsg carries a fetched fact. Seq matches the request that produced it.
type factMsg struct {
	seq  int
	fact string
}

// FactModel shows one cat fact with a spinner while it loads.
type FactModel struct {
	client  *catfact.Client
	spinner spinner.Model
	fact    string
	loading bool
	seq     int
	width   int
	height  int
}

// NewFactModel creates the cat fact screen. Call Load to fetch.
func NewFactModel(client *catfact.Client, width, height int) FactModel {
	return FactModel{
		client:  client,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   width,
		height:  height,
	}
}

// Load starts fetching a new fact. Results of earlier loads are dropped.
func (m FactModel) Load() (FactModel, tea.Cmd) {
	m.seq++
	m.loading = true
	seq, client := m.seq, m.client
	fetch := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return factMsg{seq: seq, fact: client.Fetch(ctx)}
	}
	return m, tea.Batch(m.spinner.Tick, fetch)
}

// Update handles messages for the cat fact screen.
func (m FactModel) Update(msg tea.Msg) (FactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "b", "esc":
			return m, back
		case "n", "enter":
			if !m.loading {
				return m.Load()
			}
		}

	case factMsg:
		if msg.seq == m.seq {
			m.fact = msg.fact
			m.loading = false
		}

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// Fact returns the last fact shown, empty while the first one loads.
func (m FactModel) Fact() string {
	return m.fact
}

// Loading reports whether a fetch is in flight.
func (m FactModel) Loading() bool {
	return m.loading
}

// View renders the cat fact screen.
func (m FactModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Cat Fact"))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(factWidth)
	if m.loading {
		b.WriteString(body.Render(m.spinner.View() + " Fetching a cat fact..."))
	} else {
		b.WriteString(body.Render(m.fact))
	}

	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("N: New fact  |  B: Back  |  Q: Quit"))
	return place(m.width, m.height, panelStyle.Render(b.String()))
}
