package components

import (
	"fmt"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/ui/theme"
)

const minBarWidth = 4

// ProgressBar is a labelled horizontal meter. Percent is a fraction in
// [0, 1]; values outside are clamped when drawn.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a progress bar that fits in width columns.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// Whole returns Percent as an integer percentage clamped to [0, 100].
func (p ProgressBar) Whole() int {
	return min(max(int(math.Round(p.Percent*100)), 0), 100)
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var label, suffix string
	if p.Label != "" {
		label = lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}
	if p.ShowPercent {
		suffix = lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %3d%%", p.Whole()))
	}

	track := max(p.Width-lipgloss.Width(label)-lipgloss.Width(suffix), minBarWidth)
	filled := track * p.Whole() / 100

	return label +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", track-filled)) +
		suffix
}
