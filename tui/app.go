// Package tui implements the interactive tagging session as a bubbletea
// program. It owns no tagging logic: every input line is parsed and
// applied through the csvt package, and the state file is rewritten after
// every applied action so that quitting, or crashing, loses at most the
// action in flight.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jdoucet/csvt"
)

// Model is the bubbletea model for one tagging session.
type Model struct {
	state    *csvt.SheetState
	path     string // state file, rewritten after every action
	currency string

	input     []rune
	status    string
	statusErr bool
	showHelp  bool
	quitting  bool
}

// New returns a session over the given state, persisting to path.
func New(state *csvt.SheetState, path, currency string) Model {
	return Model{state: state, path: path, currency: currency}
}

// Run starts the interactive session and blocks until the user quits.
func Run(state *csvt.SheetState, path, currency string) error {
	_, err := tea.NewProgram(New(state, path, currency)).Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}
	}
	return m, nil
}

// submit consumes the input line: quit and help are handled here, anything
// else becomes an Action applied to the state and persisted.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(string(m.input))
	m.input = nil

	switch line {
	case "q", "quit":
		m.quitting = true
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	m.status, m.statusErr = "", false
	action := csvt.ParseAction(line)
	if action.Kind == csvt.ActionAssign {
		if near, ok := m.state.NearestTag(action.Tag, 2); ok {
			m.status = fmt.Sprintf("%q recorded. Close to existing tag %q, was that a typo?", action.Tag, near)
		}
	}
	if err := m.state.Apply(action); err != nil {
		m.status, m.statusErr = err.Error(), true
		return m, nil
	}
	if err := csvt.SaveState(m.path, m.state); err != nil {
		m.status, m.statusErr = "save failed: "+err.Error(), true
	}
	return m, nil
}
