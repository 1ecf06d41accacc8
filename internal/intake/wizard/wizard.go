// Package wizard runs an intake session as a terminal form.
package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lifeos/governance/internal/engine"
	"github.com/lifeos/governance/internal/intake"
)

// ErrAborted is returned when the user quits before the last step.
var ErrAborted = errors.New("wizard aborted")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5B8DEF"))
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(1, 2)
)

// Model is the bubbletea model driving one session.
type Model struct {
	session *intake.Session
	input   textinput.Model
	bar     progress.Model
	err     string
	aborted bool
	width   int
}

// New wraps a session.
func New(session *intake.Session) *Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 280
	ti.Focus()

	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	m := &Model{session: session, input: ti, bar: bar, width: 60}
	m.syncPlaceholder()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.bar.Width = max(20, min(60, msg.Width-10))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "ctrl+b":
			if m.session.Back() {
				m.err = ""
				m.input.Reset()
				m.syncPlaceholder()
			}
			return m, nil
		case "enter":
			if err := m.session.Answer(m.input.Value()); err != nil {
				m.err = err.Error()
				return m, nil
			}
			m.err = ""
			m.input.Reset()
			if m.session.Done() {
				return m, tea.Quit
			}
			m.syncPlaceholder()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) View() string {
	if m.session.Done() {
		return titleStyle.Render("✅ Avaliação completa") + "\n"
	}
	step, _ := m.session.Current()
	done, total := m.session.Progress()

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("LIFEOS · %d/%d", done+1, total)))
	b.WriteString("\n")
	b.WriteString(m.bar.ViewAs(float64(done) / float64(total)))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(step.Prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	if m.err != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(m.err))
	}
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("enter confirma · ctrl+b volta · esc sai"))

	return boxStyle.Width(max(30, m.width-4)).Render(b.String())
}

// Aborted reports whether the user quit early.
func (m *Model) Aborted() bool {
	return m.aborted
}

func (m *Model) syncPlaceholder() {
	step, ok := m.session.Current()
	if !ok {
		return
	}
	switch step.Kind {
	case intake.KindChoice:
		m.input.Placeholder = strings.Join(step.Choices, " / ")
	case intake.KindText:
		m.input.Placeholder = "texto livre"
	default:
		m.input.Placeholder = "número"
	}
}

// Run drives session interactively and returns the resulting input.
func Run(session *intake.Session, opts ...tea.ProgramOption) (engine.Input, error) {
	m := New(session)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return engine.Input{}, fmt.Errorf("run wizard: %w", err)
	}
	if m.aborted {
		return engine.Input{}, ErrAborted
	}
	return session.Input()
}
