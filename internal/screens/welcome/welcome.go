package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/content"
	"github.com/abhisek/iq360/internal/router"
	"github.com/abhisek/iq360/internal/screen"
	"github.com/abhisek/iq360/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	bannerAt     = 600 * time.Millisecond
	totalDur     = 2000 * time.Millisecond
)

// orbit is the ring drawn around the banner; one dot lights up per tick.
var orbit = []string{"·", "∙", "•", "●", "•", "∙"}

type tickMsg time.Time

// WelcomeScreen plays a short splash before handing over to the intro
// screen. Any key skips ahead.
type WelcomeScreen struct {
	next         func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen built by next.
func New(next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{next: next}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.next()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// Done reports whether the splash has finished animating.
func (w *WelcomeScreen) Done() bool {
	return w.elapsed >= totalDur
}

func (w *WelcomeScreen) View(width, height int) string {
	dot := lipgloss.NewStyle().Foreground(theme.Secondary)
	var ring strings.Builder
	for i := range len(orbit) {
		ring.WriteString(dot.Render(orbit[(i+w.tickCount)%len(orbit)]))
		ring.WriteString(" ")
	}

	sections := []string{ring.String()}

	if w.elapsed >= bannerAt {
		sections = append(sections,
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(content.Tagline),
		)
	}

	if w.Done() {
		sections = append(sections, "", theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
