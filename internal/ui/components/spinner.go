package components

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 100 * time.Millisecond

// SpinnerTickMsg advances a Spinner by one frame.
type SpinnerTickMsg struct{}

// Spinner is a braille activity indicator driven by tea.Tick.
type Spinner struct {
	Label string
	frame int
}

// NewSpinner creates a spinner with the given label.
func NewSpinner(label string) Spinner {
	return Spinner{Label: label}
}

// Tick schedules the next frame.
func (s Spinner) Tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(time.Time) tea.Msg {
		return SpinnerTickMsg{}
	})
}

// Advance moves to the next frame.
func (s Spinner) Advance() Spinner {
	s.frame = (s.frame + 1) % len(spinnerFrames)
	return s
}

// View renders the current frame and label.
func (s Spinner) View() string {
	glyph := lipgloss.NewStyle().Foreground(theme.Primary).Render(spinnerFrames[s.frame])
	if s.Label == "" {
		return glyph
	}
	return glyph + " " + theme.Hint.Render(s.Label)
}
