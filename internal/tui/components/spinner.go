package components

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dbmrq/catsays/internal/tui/styles"
)

// Spinner shows an animated spinner with status text while a fetch is outstanding.
type Spinner struct {
	spinner    spinner.Model
	statusText string
	startTime  time.Time
}

// NewSpinner creates a new Spinner component with default styling.
func NewSpinner() *Spinner {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Secondary)
	return &Spinner{spinner: s}
}

// SetStatusText sets the status text to display next to the spinner.
func (s *Spinner) SetStatusText(text string) {
	s.statusText = text
}

// Start marks the start time for elapsed time tracking.
func (s *Spinner) Start() {
	s.startTime = time.Now()
}

// Elapsed returns the elapsed time since Start was called.
func (s *Spinner) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Tick returns the command that starts the animation.
func (s *Spinner) Tick() tea.Cmd {
	return s.spinner.Tick
}

// Update handles spinner tick messages.
func (s *Spinner) Update(msg tea.Msg) (*Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner with status text, plus elapsed time once started.
func (s *Spinner) View() string {
	line := fmt.Sprintf("%s %s", s.spinner.View(), s.statusText)

	if !s.startTime.IsZero() {
		elapsed := s.Elapsed().Round(100 * time.Millisecond)
		line += " " + styles.MutedTextStyle.Render(fmt.Sprintf("(%s)", elapsed))
	}
	return line
}
