package cli

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/situs/internal/model"
	"github.com/idilsaglam/situs/internal/ui"
)

type keyMap struct {
	Submit key.Binding
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
}

var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "save & quit")),
	Up:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	Down:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
}

func (k keyMap) helpLine() string {
	var parts []string
	for _, b := range []key.Binding{k.Submit, k.Up, k.Down, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}

// modelTUI is the interactive session: a scrolling transcript above a
// single input line.
type modelTUI struct {
	session    *Session
	input      textinput.Model
	view       viewport.Model
	transcript []string
	ready      bool
	quitting   bool
	err        error
}

func newModelTUI(s *Session) modelTUI {
	ti := textinput.New()
	ti.Prompt = ui.Current().Prompt
	ti.Placeholder = `type a command, e.g. "help"`
	ti.CharLimit = 200
	ti.Focus()

	return modelTUI{
		session:    s,
		input:      ti,
		view:       viewport.New(80, 20),
		transcript: []string{ui.Welcome(model.FormatDate(s.State().Today))},
	}
}

// RunTUI starts the Bubble Tea session. It returns the save error, if any,
// from the final exit.
func RunTUI(s *Session) error {
	p := tea.NewProgram(newModelTUI(s), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(modelTUI); ok {
		return fm.err
	}
	return nil
}

func (m modelTUI) Init() tea.Cmd { return textinput.Blink }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.view.Width = msg.Width
		m.view.Height = msg.Height - 3
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 1
		m.ready = true
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m.submit("exit")
		case key.Matches(msg, keys.Submit):
			line := m.input.Value()
			m.input.SetValue("")
			return m.submit(line)
		case key.Matches(msg, keys.Up), key.Matches(msg, keys.Down):
			var cmd tea.Cmd
			m.view, cmd = m.view.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m modelTUI) submit(line string) (tea.Model, tea.Cmd) {
	m.transcript = append(m.transcript, ui.Current().Muted.Render(ui.Current().Prompt+line))
	r := m.session.Handle(line)
	if text := r.Render(); text != "" {
		m.transcript = append(m.transcript, text)
	}
	if r.Exit {
		m.transcript = append(m.transcript, ui.Goodbye())
		m.quitting = true
		m.err = r.Err
		m.refresh()
		return m, tea.Quit
	}
	m.refresh()
	return m, nil
}

func (m *modelTUI) refresh() {
	m.view.SetContent(strings.Join(m.transcript, "\n"))
	m.view.GotoBottom()
}

func (m modelTUI) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return strings.Join(m.transcript, "\n") + "\n" + m.input.View()
	}
	return m.view.View() + "\n" + m.input.View() + "\n" + ui.Current().Muted.Render(keys.helpLine())
}
