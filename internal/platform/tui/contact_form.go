package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/folio-arcade/internal/contact"
)

// Focus positions on the contact form.
const (
	fieldName = iota
	fieldEmail
	fieldCompany
	fieldMessage
	fieldSubmit
	fieldCount
)

// sentMsg reports the result of a submission.
type sentMsg struct {
	err error
}

// ContactModel is the terminal contact form.
type ContactModel struct {
	client  *contact.Client
	inputs  []textinput.Model // name, email, company
	message textarea.Model
	spinner spinner.Model
	focus   int
	sending bool
	banner  string
	ok      bool
	width   int
	height  int
}

// NewContactModel creates an empty form with the name field focused.
func NewContactModel(client *contact.Client, width, height int) ContactModel {
	placeholders := []string{"Name *", "Email *", "Company"}
	inputs := make([]textinput.Model, len(placeholders))
	for i, p := range placeholders {
		ti := textinput.New()
		ti.Placeholder = p
		ti.CharLimit = 120
		ti.Width = 40
		inputs[i] = ti
	}
	inputs[fieldName].Focus()

	msg := textarea.New()
	msg.Placeholder = "Message *"
	msg.ShowLineNumbers = false
	msg.SetWidth(44)
	msg.SetHeight(5)

	return ContactModel{
		client:  client,
		inputs:  inputs,
		message: msg,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		width:   width,
		height:  height,
	}
}

// Init starts the cursor blink.
func (m ContactModel) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns the current field values.
func (m ContactModel) Form() contact.Form {
	return contact.Form{
		Name:    strings.TrimSpace(m.inputs[fieldName].Value()),
		Email:   strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Company: strings.TrimSpace(m.inputs[fieldCompany].Value()),
		Message: strings.TrimSpace(m.message.Value()),
	}
}

// Banner returns the status line and whether it reports success.
func (m ContactModel) Banner() (string, bool) {
	return m.banner, m.ok
}

// Update handles messages for the contact form.
func (m ContactModel) Update(msg tea.Msg) (ContactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			return m, back
		case "tab", "down":
			if m.focus != fieldMessage || msg.String() == "tab" {
				return m.moveFocus(1)
			}
		case "shift+tab", "up":
			if m.focus != fieldMessage || msg.String() == "shift+tab" {
				return m.moveFocus(-1)
			}
		case "ctrl+s":
			return m.submit()
		case "enter":
			if m.focus == fieldSubmit {
				return m.submit()
			}
			if m.focus != fieldMessage {
				return m.moveFocus(1)
			}
		}

	case sentMsg:
		m.sending = false
		m.ok = msg.err == nil
		m.banner = contact.Banner(msg.err)
		if m.ok {
			m.clear()
		}
		return m, nil

	case spinner.TickMsg:
		if m.sending {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m ContactModel) updateFocused(msg tea.Msg) (ContactModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus < fieldMessage:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus == fieldMessage:
		m.message, cmd = m.message.Update(msg)
	}
	return m, cmd
}

func (m ContactModel) moveFocus(delta int) (ContactModel, tea.Cmd) {
	m.focus = (m.focus + delta + fieldCount) % fieldCount

	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()

	switch {
	case m.focus < fieldMessage:
		return m, m.inputs[m.focus].Focus()
	case m.focus == fieldMessage:
		return m, m.message.Focus()
	}
	return m, nil
}

// submit validates locally, then sends in the background.
func (m ContactModel) submit() (ContactModel, tea.Cmd) {
	if m.sending {
		return m, nil
	}

	form := m.Form()
	if m.client.Configured() {
		if err := form.Validate(); err != nil {
			m.ok = false
			m.banner = validationText(err)
			return m, nil
		}
	}

	m.sending = true
	m.banner = ""
	client := m.client
	send := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		return sentMsg{err: client.Submit(ctx, form)}
	}
	return m, tea.Batch(m.spinner.Tick, send)
}

func (m *ContactModel) clear() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
}

func validationText(err error) string {
	if !errors.Is(err, contact.ErrInvalidForm) {
		return err.Error()
	}
	text := strings.TrimPrefix(err.Error(), contact.ErrInvalidForm.Error()+": ")
	return strings.ToUpper(text[:1]) + text[1:]
}

// View renders the form.
func (m ContactModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Get in touch"))
	b.WriteString("\n\n")

	for _, in := range m.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.message.View())
	b.WriteString("\n\n")

	button := "[ Send ]"
	if m.focus == fieldSubmit {
		button = selectedStyle.Render(button)
	}
	b.WriteString(button)

	switch {
	case m.sending:
		b.WriteString("  " + m.spinner.View() + " Sending...")
	case m.banner != "" && m.ok:
		b.WriteString("\n\n" + okStyle.Render(m.banner))
	case m.banner != "":
		b.WriteString("\n\n" + errStyle.Render(m.banner))
	}

	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("Tab: Next field  |  Ctrl+S: Send  |  Esc: Back"))
	return place(m.width, m.height, panelStyle.Render(b.String()))
}
