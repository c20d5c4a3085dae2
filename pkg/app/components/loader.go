package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/gita/pkg/app/styles"
)

// Loader is a spinner with a message, shown while an answer is prepared.
type Loader struct {
	spinner spinner.Model
	Message string
	active  bool
}

func NewLoader(message string) *Loader {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &Loader{spinner: s, Message: message}
}

// Start activates the loader and returns the command driving the spinner.
func (l *Loader) Start() tea.Cmd {
	l.active = true
	return l.spinner.Tick
}

func (l *Loader) Stop() {
	l.active = false
}

func (l *Loader) Active() bool {
	return l.active
}

func (l *Loader) Update(msg tea.Msg) tea.Cmd {
	if !l.active {
		return nil
	}
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

func (l *Loader) View(theme *styles.Theme) string {
	if !l.active {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		theme.SpinnerStyle.Render(l.spinner.View()),
		" ",
		theme.SubtitleStyle.Render(l.Message),
	)
}
