package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/qdm12/guestbook/internal/constants"
	"github.com/qdm12/guestbook/internal/guestbook"
)

// Model is the bubbletea model rendering a guestbook view.
type Model struct {
	ctx    context.Context //nolint:containedctx
	view   View
	links  []string
	input  textinput.Model
	state  guestbook.State
	styles styles
}

type (
	changedMsg   struct{}
	submittedMsg struct{}
)

// NewModel creates a model for the view given. The context given
// bounds the lifetime of the commands issued by the model.
func NewModel(ctx context.Context, view View, baseURL string) Model {
	state := view.Snapshot()

	input := textinput.New()
	input.Placeholder = "Write an entry"
	input.SetValue(state.Draft)
	input.Focus()

	baseURL = strings.TrimSuffix(baseURL, "/")

	return Model{
		ctx:    ctx,
		view:   view,
		links:  []string{baseURL + constants.EnvPath, baseURL + constants.InfoPath},
		input:  input,
		state:  state,
		styles: newStyles(state.AccentColor),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitForChange())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type { //nolint:exhaustive
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m, m.submit(m.input.Value())
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.view.SetDraft(m.input.Value())
		return m, cmd
	case changedMsg:
		m.state = m.view.Snapshot()
		if m.state.Draft != m.input.Value() {
			m.input.SetValue(m.state.Draft)
		}
		return m, m.waitForChange()
	case submittedMsg:
		return m, nil
	case tea.WindowSizeMsg:
		const margin = 4
		m.input.Width = max(msg.Width-margin, 0)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render(constants.Title))
	b.WriteString("\n\n")

	if m.state.Waiting() {
		b.WriteString(m.styles.waiting.Render(constants.WaitingText))
		b.WriteString("\n")
	} else {
		for _, entry := range m.state.Entries {
			b.WriteString(m.styles.entry.Render(entry))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	b.WriteString(m.styles.address.Render(m.state.HostAddress))
	b.WriteString("\n")
	renderedLinks := make([]string, len(m.links))
	for i, link := range m.links {
		renderedLinks[i] = m.styles.link.Render(link)
	}
	b.WriteString(strings.Join(renderedLinks, "  "))
	b.WriteString("\n\n")

	b.WriteString(m.styles.help.Render("enter: submit • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// waitForChange returns a command waiting for the view state to change,
// or for the model context to be done.
func (m Model) waitForChange() tea.Cmd {
	changed := m.view.Changed()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-changed:
			return changedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// submit returns a command submitting the draft to the backend.
// Errors are logged by the view, and the draft is kept.
func (m Model) submit(draft string) tea.Cmd {
	ctx := m.ctx
	view := m.view
	return func() tea.Msg {
		_ = view.HandleSubmit(ctx, draft)
		return submittedMsg{}
	}
}
