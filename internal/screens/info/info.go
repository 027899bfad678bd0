// Package info renders the static informational pages.
package info

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/iq360/internal/content"
	"github.com/abhisek/iq360/internal/router"
	"github.com/abhisek/iq360/internal/screen"
	"github.com/abhisek/iq360/internal/ui/layout"
	"github.com/abhisek/iq360/internal/ui/theme"
)

const maxTextWidth = 72

// InfoScreen shows one content.Page.
type InfoScreen struct {
	page content.Page
}

var _ screen.Screen = (*InfoScreen)(nil)
var _ screen.KeyHintProvider = (*InfoScreen)(nil)

// New creates an InfoScreen for page.
func New(page content.Page) *InfoScreen {
	return &InfoScreen{page: page}
}

func (s *InfoScreen) Init() tea.Cmd {
	return nil
}

func (s *InfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "b", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *InfoScreen) View(width, height int) string {
	w := min(width-4, maxTextWidth)
	if w < 20 {
		w = 20
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(w).Render(s.page.Title))
	b.WriteString("\n\n")
	for i, sec := range s.page.Sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(sec.Heading))
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(w).Render(sec.Text))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *InfoScreen) Title() string {
	return s.page.Title
}

func (s *InfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Back"},
		{Key: "Esc", Description: "Back"},
	}
}
