// Package intro is the landing screen: the pitch, the five pillars and the
// entry points into the game and the informational pages.
package intro

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/content"
	"github.com/abhisek/iq360/internal/levels"
	"github.com/abhisek/iq360/internal/router"
	"github.com/abhisek/iq360/internal/screen"
	gamescreen "github.com/abhisek/iq360/internal/screens/game"
	"github.com/abhisek/iq360/internal/screens/info"
	reportscreen "github.com/abhisek/iq360/internal/screens/report"
	"github.com/abhisek/iq360/internal/ui/components"
	"github.com/abhisek/iq360/internal/ui/layout"
	"github.com/abhisek/iq360/internal/ui/theme"
)

const maxPanelWidth = 72

// Session is everything the game flow needs from the machine.
type Session interface {
	gamescreen.Session
	Start() error
	Restart() error
}

// IntroScreen is the root screen of the app.
type IntroScreen struct {
	session Session
	menu    components.Menu
	notice  string
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates the intro screen for session.
func New(session Session) *IntroScreen {
	s := &IntroScreen{session: session}
	s.menu = components.NewMenu([]components.MenuItem{
		{Label: "Begin Your Journey", Hint: "five levels, about ten minutes", Action: s.begin},
		{Label: "How It Works", Action: pushPage(content.HowItWorks)},
		{Label: "Privacy", Action: pushPage(content.Privacy)},
		{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	})
	return s
}

func pushPage(page content.Page) func() tea.Cmd {
	return func() tea.Cmd {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: info.New(page)}
		}
	}
}

func (s *IntroScreen) begin() tea.Cmd {
	if err := s.session.Start(); err != nil {
		s.notice = err.Error()
		return nil
	}
	s.notice = ""
	sess := s.session
	game := gamescreen.New(sess, func() screen.Screen {
		return reportscreen.New(sess)
	})
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: game}
	}
}

func (s *IntroScreen) Init() tea.Cmd {
	s.menu.Selected = 0
	return nil
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *IntroScreen) View(width, height int) string {
	w := min(width-4, maxPanelWidth)
	if w < 30 {
		w = 30
	}
	center := func(st lipgloss.Style) lipgloss.Style {
		return st.Width(w).Align(lipgloss.Center)
	}

	sections := []string{
		center(theme.Eyebrow).Render(content.Strapline),
		center(theme.Title).Render("360IQ"),
		center(theme.Subtitle).Render(content.Tagline),
		center(theme.Body).Render(content.Welcome),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, renderPillars()),
		lipgloss.PlaceHorizontal(w, lipgloss.Center, s.menu.View()),
	}
	if s.notice != "" {
		sections = append(sections, center(theme.Notice).Render(s.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}

func renderPillars() string {
	badges := make([]string, len(levels.Pillars))
	for i, p := range levels.Pillars {
		badges[i] = theme.Badge.Render(p)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

func (s *IntroScreen) Title() string {
	return "Welcome"
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "ctrl+c", Description: "Quit"},
	}
}
