// Package report is the final thinking-profile screen.
package report

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/content"
	gm "github.com/abhisek/iq360/internal/game"
	"github.com/abhisek/iq360/internal/levels"
	rpt "github.com/abhisek/iq360/internal/report"
	"github.com/abhisek/iq360/internal/router"
	"github.com/abhisek/iq360/internal/screen"
	"github.com/abhisek/iq360/internal/ui/components"
	"github.com/abhisek/iq360/internal/ui/layout"
	"github.com/abhisek/iq360/internal/ui/theme"
)

const maxPanelWidth = 76

// Session is the part of the game machine this screen needs.
type Session interface {
	Snapshot() gm.Snapshot
	Restart() error
}

// ReportScreen shows the final report with a per-level breakdown. Long
// reports scroll with the arrow keys.
type ReportScreen struct {
	session Session
	offset  int
	notice  string
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)
var _ screen.EscapeCapturer = (*ReportScreen)(nil)
var _ screen.ProgressProvider = (*ReportScreen)(nil)

// New creates a ReportScreen.
func New(session Session) *ReportScreen {
	return &ReportScreen{session: session}
}

func (r *ReportScreen) Init() tea.Cmd {
	return nil
}

func (r *ReportScreen) Title() string {
	return "Thinking Profile"
}

func (r *ReportScreen) Progress() int {
	return r.session.Snapshot().Progress()
}

// CapturesEscape keeps Esc from popping back to an intro the machine has
// not returned to yet.
func (r *ReportScreen) CapturesEscape() bool {
	return true
}

func (r *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Restart journey"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Q", Description: "Quit"},
	}
}

func (r *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "r", "R", "enter":
		if err := r.session.Restart(); err != nil {
			r.notice = err.Error()
			return r, nil
		}
		r.notice = ""
		r.offset = 0
		return r, func() tea.Msg { return router.PopToRootMsg{} }
	case "q", "Q":
		return r, tea.Quit
	case "up", "k":
		if r.offset > 0 {
			r.offset--
		}
	case "down", "j":
		r.offset++
	}
	return r, nil
}

func (r *ReportScreen) View(width, height int) string {
	snap := r.session.Snapshot()
	rs, ok := snap.State.(gm.ReportState)
	if !ok {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No report yet."))
	}

	w := min(width-4, maxPanelWidth)
	if w < 30 {
		w = 30
	}

	body := renderReport(rs.Report, snap.Results, w)
	if r.notice != "" {
		body += "\n\n" + theme.Notice.Render(r.notice)
	}

	lines := strings.Split(body, "\n")
	if height > 0 && len(lines) > height {
		maxOffset := len(lines) - height
		if r.offset > maxOffset {
			r.offset = maxOffset
		}
		lines = lines[r.offset : r.offset+height]
	} else {
		r.offset = 0
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

func renderReport(rep rpt.FinalReport, results []gm.LevelResult, w int) string {
	center := func(st lipgloss.Style) lipgloss.Style {
		return st.Width(w).Align(lipgloss.Center)
	}

	var b strings.Builder
	b.WriteString(center(theme.Eyebrow).Render(strings.ToUpper(content.ReportHeading)))
	b.WriteString("\n")
	b.WriteString(center(theme.Subtitle).Render(content.ReportSubheading))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Hint).Render("Estimated IQ"))
	b.WriteString("\n")
	b.WriteString(center(theme.Highlight).Render(rep.OverallIQ))
	b.WriteString("\n\n")

	ct := components.NewProgressBar("Critical Thinking", float64(rep.CriticalThinkingScore)/100, true, w)
	b.WriteString(ct.View())
	b.WriteString("\n\n")

	b.WriteString(theme.Eyebrow.Render("LEVEL BREAKDOWN"))
	b.WriteString("\n")
	for _, res := range results {
		b.WriteString(renderResult(res, w))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Eyebrow.Render("PERSONALITY PROFILE"))
	b.WriteString("\n")
	b.WriteString(theme.Card.Width(w).Render(theme.Body.Render(rep.PersonalityProfile)))
	b.WriteString("\n\n")

	b.WriteString(theme.Eyebrow.Render("GROWTH AREAS"))
	b.WriteString("\n")
	for _, g := range rep.GrowthAreas {
		b.WriteString(theme.Body.Width(w).Render("• " + g))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(center(theme.Quote).Render(content.ClosingQuote))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle()).Render(components.NewButton("Restart Journey", "").View()))

	return b.String()
}

func renderResult(res gm.LevelResult, w int) string {
	label := levelLabel(res.Level)
	bar := components.NewProgressBar(label, float64(res.Score)/100, true, w-24)
	trait := theme.Hint.Render(truncate(res.PersonalityTrait, 20))
	return bar.View() + "  " + trait
}

func levelLabel(index int) string {
	if index >= 1 && index <= len(levels.Pillars) {
		return fmt.Sprintf("L%d %-12s", index, levels.Pillars[index-1])
	}
	return fmt.Sprintf("L%d %-12s", index, "")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
