package task

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var doneStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("10")).
	Bold(true)

// Task runs a callback behind a spinner so long helm operations don't look
// hung.
type Task struct {
	message string
	cb      func() error
}

func New(message string, cb func() error) *Task {
	return &Task{message: message, cb: cb}
}

type doneMsg struct {
	err error
}

type model struct {
	spinner  spinner.Model
	message  string
	cb       func() error
	err      error
	quitting bool
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return doneMsg{err: m.cb()}
		},
	)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case doneMsg:
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		if m.err == nil {
			return doneStyle.Render("✓ "+m.message) + "\n"
		}
		return ""
	}
	return fmt.Sprintf("%s %s...", m.spinner.View(), m.message)
}

// Run blocks until the callback finishes and returns its error.
func (t *Task) Run() (tea.Model, error) {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	m := model{
		spinner: s,
		message: t.message,
		cb:      t.cb,
	}

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return finalModel, err
	}

	return finalModel, finalModel.(model).err
}
