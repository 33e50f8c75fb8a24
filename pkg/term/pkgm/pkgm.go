package pkgm

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var currentStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("12"))

// Manager walks a list of packages (container images here) and invokes the
// callback for each one, rendering a progress bar as it goes.
type Manager struct {
	packages []string
	cb       func(pkg string)
}

func New(packages []string, cb func(pkg string)) *Manager {
	return &Manager{packages: packages, cb: cb}
}

type pkgDoneMsg struct{}

type model struct {
	spinner  spinner.Model
	progress progress.Model
	packages []string
	cb       func(pkg string)
	index    int
	quitting bool
}

func (m model) processCmd() tea.Cmd {
	pkg := m.packages[m.index]
	return func() tea.Msg {
		m.cb(pkg)
		return pkgDoneMsg{}
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.processCmd())
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

	case pkgDoneMsg:
		m.index++
		if m.index >= len(m.packages) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.processCmd()
	}

	return m, nil
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	percent := float64(m.index) / float64(len(m.packages))
	return fmt.Sprintf(
		"%s %s\n%s %d/%d\n",
		m.spinner.View(),
		currentStyle.Render(m.packages[m.index]),
		m.progress.ViewAs(percent),
		m.index,
		len(m.packages),
	)
}

// Run processes every package in order. It returns once all callbacks have
// completed or the user aborted.
func (p *Manager) Run() (tea.Model, error) {
	if len(p.packages) == 0 {
		return nil, nil
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))

	m := model{
		spinner:  s,
		progress: progress.New(progress.WithDefaultGradient()),
		packages: p.packages,
		cb:       p.cb,
	}

	return tea.NewProgram(m).Run()
}
