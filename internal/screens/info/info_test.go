package info

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/iq360/internal/content"
	"github.com/abhisek/iq360/internal/router"
)

func TestView_RendersEverySection(t *testing.T) {
	for _, page := range []content.Page{content.HowItWorks, content.Privacy} {
		t.Run(page.Title, func(t *testing.T) {
			s := New(page)
			view := s.View(120, 60)
			assert.Contains(t, view, page.Title)
			for _, sec := range page.Sections {
				assert.Contains(t, view, sec.Heading)
			}
			assert.Equal(t, page.Title, s.Title())
		})
	}
}

func TestUpdate_EnterGoesBack(t *testing.T) {
	s := New(content.Privacy)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopScreenMsg{}, cmd())
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	s := New(content.Privacy)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Nil(t, cmd)
}
