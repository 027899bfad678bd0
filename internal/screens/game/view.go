package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	gm "github.com/abhisek/iq360/internal/game"
	"github.com/abhisek/iq360/internal/levels"
	"github.com/abhisek/iq360/internal/ui/components"
	"github.com/abhisek/iq360/internal/ui/theme"
)

const maxPanelWidth = 76

func (s *GameScreen) View(width, height int) string {
	if s.quitting {
		return renderQuitConfirm(width, height)
	}

	snap := s.session.Snapshot()
	w := panelWidth(width)

	var body string
	switch st := snap.State.(type) {
	case gm.PlayingState:
		body = s.renderPlaying(st, snap, w)
	case gm.TransitionState:
		body = s.renderTransition(st, w)
	default:
		body = theme.Hint.Render("Preparing your journey...")
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

func panelWidth(width int) int {
	w := min(width-4, maxPanelWidth)
	if w < 30 {
		w = 30
	}
	return w
}

func (s *GameScreen) renderPlaying(st gm.PlayingState, snap gm.Snapshot, w int) string {
	var b strings.Builder

	progress := components.NewProgressBar(
		fmt.Sprintf("Level %d of %d", st.Level.Index, snap.TotalLevels),
		float64(snap.Progress())/100, true, w)
	b.WriteString(progress.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Eyebrow.Render(strings.ToUpper(st.Level.Category)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(st.Level.Title))
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Width(w).Render(theme.Body.Render(st.Level.Puzzle)))
	b.WriteString("\n\n")

	b.WriteString(s.input.View())
	b.WriteString("\n")

	if st.Notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Notice.Width(w).Render(st.Notice))
		b.WriteString("\n")
	}
	if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.hint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.pending {
		b.WriteString(s.spinner.View())
	} else {
		b.WriteString(components.NewButton("Submit Answer", "").View())
	}

	return b.String()
}

func (s *GameScreen) renderTransition(st gm.TransitionState, w int) string {
	var b strings.Builder
	o := st.Outcome

	b.WriteString(theme.Eyebrow.Render(fmt.Sprintf("LEVEL %d COMPLETE", st.Level.Index)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(st.Level.Title))
	b.WriteString("\n\n")

	score := theme.Highlight.Render(fmt.Sprintf("%d", o.Score)) +
		theme.Hint.Render(" / 100")
	b.WriteString(score)
	b.WriteString("\n\n")

	stats := []string{
		statLine("IQ Segment", o.IQEstimate),
		statLine("Trait", o.PersonalityTrait),
		statLine("Critical Thinking", fmt.Sprintf("%d/10", o.CriticalThinkingRating)),
	}
	b.WriteString(strings.Join(stats, "\n"))
	b.WriteString("\n\n")

	b.WriteString(theme.Card.Width(w).Render(theme.Body.Render(o.Feedback)))
	b.WriteString("\n")

	if st.Notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Notice.Width(w).Render(st.Notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.pending {
		b.WriteString(s.spinner.View())
	} else {
		b.WriteString(components.NewButton(nextLabel(st.Level.Index), "").View())
	}

	return b.String()
}

func nextLabel(index int) string {
	if levels.IsLast(index) {
		return "Generate Final Profile"
	}
	return "Move to Next Level"
}

func statLine(label, value string) string {
	return theme.Hint.Render(fmt.Sprintf("%-18s", label)) + theme.Body.Render(value)
}

func renderQuitConfirm(width, height int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	lines := []string{
		center.Foreground(theme.Text).Bold(true).Render("Leave 360IQ?"),
		center.Foreground(theme.TextDim).Render("Your answers are not saved anywhere."),
		"",
		center.Foreground(theme.Error).Render("[Y] Yes, quit"),
		center.Foreground(theme.Primary).Render("[N] No, keep going"),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
