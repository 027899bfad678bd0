// Package game is the screen for the five puzzle levels and the result
// shown after each one.
package game

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/iq360/internal/content"
	gm "github.com/abhisek/iq360/internal/game"
	"github.com/abhisek/iq360/internal/router"
	"github.com/abhisek/iq360/internal/screen"
	"github.com/abhisek/iq360/internal/ui/components"
	"github.com/abhisek/iq360/internal/ui/layout"
)

// Session is the part of the game machine this screen drives.
type Session interface {
	Snapshot() gm.Snapshot
	SetDraft(answer string)
	Submit(ctx context.Context, answer string) error
	Advance(ctx context.Context) error
}

// GameScreen renders PLAYING and LEVEL_TRANSITION. It replaces itself with
// the report screen once the final report is ready.
type GameScreen struct {
	session      Session
	reportScreen func() screen.Screen

	input    components.TextInput
	spinner  components.Spinner
	level    int
	pending  bool
	hint     string
	quitting bool
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.EscapeCapturer = (*GameScreen)(nil)
var _ screen.ProgressProvider = (*GameScreen)(nil)

// New creates a GameScreen. reportScreen builds the screen shown after the
// last level.
func New(session Session, reportScreen func() screen.Screen) *GameScreen {
	s := &GameScreen{
		session:      session,
		reportScreen: reportScreen,
		input:        components.NewTextInput(content.Placeholder, 0),
	}
	s.syncInput(session.Snapshot())
	return s
}

func (s *GameScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *GameScreen) Title() string {
	switch st := s.session.Snapshot().State.(type) {
	case gm.PlayingState:
		return st.Level.Title
	case gm.TransitionState:
		return "Level Complete"
	}
	return "360IQ"
}

func (s *GameScreen) Progress() int {
	return s.session.Snapshot().Progress()
}

// CapturesEscape is always true: Esc opens the leave confirmation.
func (s *GameScreen) CapturesEscape() bool {
	return true
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	if s.quitting {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.pending {
		return []layout.KeyHint{{Key: "ctrl+c", Description: "Quit"}}
	}
	if s.session.Snapshot().Phase() == gm.PhaseTransition {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
			{Key: "Esc", Description: "Leave"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case evaluatedMsg:
		return s.handleEvaluated(msg)

	case advancedMsg:
		return s.handleAdvanced(msg)

	case components.SpinnerTickMsg:
		if !s.pending {
			return s, nil
		}
		s.spinner = s.spinner.Advance()
		return s, s.spinner.Tick()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *GameScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.quitting {
		switch key {
		case "y", "Y":
			return s, tea.Quit
		case "n", "N", "esc":
			s.quitting = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitting = true
		return s, nil
	}

	if s.pending {
		return s, nil
	}

	switch s.session.Snapshot().Phase() {
	case gm.PhasePlaying:
		if key == "enter" {
			return s.submit()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		s.session.SetDraft(s.input.Value())
		s.hint = ""
		return s, cmd

	case gm.PhaseTransition:
		if key == "enter" {
			return s.advance()
		}
	}

	return s, nil
}

func (s *GameScreen) submit() (screen.Screen, tea.Cmd) {
	if s.input.Blank() {
		s.hint = "Write an answer before submitting."
		return s, nil
	}

	answer := s.input.Value()
	s.pending = true
	s.hint = ""
	s.input.Lock(true)
	s.spinner = components.NewSpinner("Running the brain-scan...")

	session := s.session
	evaluate := func() tea.Msg {
		return evaluatedMsg{Err: session.Submit(context.Background(), answer)}
	}
	return s, tea.Batch(evaluate, s.spinner.Tick())
}

func (s *GameScreen) advance() (screen.Screen, tea.Cmd) {
	s.pending = true
	s.spinner = components.NewSpinner("Compiling your master profile...")

	session := s.session
	advance := func() tea.Msg {
		return advancedMsg{Err: session.Advance(context.Background())}
	}
	return s, tea.Batch(advance, s.spinner.Tick())
}

func (s *GameScreen) handleEvaluated(msg evaluatedMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	s.input.Lock(false)
	if errors.Is(msg.Err, gm.ErrEmptyAnswer) {
		s.hint = "Write an answer before submitting."
	}
	s.syncInput(s.session.Snapshot())
	return s, nil
}

func (s *GameScreen) handleAdvanced(msg advancedMsg) (screen.Screen, tea.Cmd) {
	s.pending = false
	snap := s.session.Snapshot()
	if snap.Phase() == gm.PhaseReport && s.reportScreen != nil {
		next := s.reportScreen()
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: next}
		}
	}
	s.syncInput(snap)
	return s, nil
}

// syncInput resets the answer box whenever a new level opens and restores
// the machine's draft into it.
func (s *GameScreen) syncInput(snap gm.Snapshot) {
	ps, ok := snap.State.(gm.PlayingState)
	if !ok || ps.Level.Index == s.level {
		return
	}
	s.level = ps.Level.Index
	s.input.SetValue(ps.Answer)
	s.input.Lock(false)
	s.hint = ""
}
