package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/iq360/internal/evaluation"
	gm "github.com/abhisek/iq360/internal/game"
	"github.com/abhisek/iq360/internal/levels"
	rpt "github.com/abhisek/iq360/internal/report"
	"github.com/abhisek/iq360/internal/router"
)

type stubEvaluator struct{}

func (stubEvaluator) Evaluate(_ context.Context, level levels.Level, _ string) (*evaluation.Outcome, error) {
	return &evaluation.Outcome{
		Score:                  60 + level.Index*5,
		Feedback:               "ok",
		PersonalityTrait:       "Methodical",
		IQEstimate:             "115-125",
		CriticalThinkingRating: 8,
	}, nil
}

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, []rpt.Input) (*rpt.FinalReport, error) {
	return &rpt.FinalReport{
		OverallIQ:             "120-130",
		PersonalityProfile:    "A steady strategist who weighs risk carefully.",
		CriticalThinkingScore: 80,
		GrowthAreas:           []string{"Take bolder bets", "Delegate sooner", "Sketch before solving"},
	}, nil
}

func finishedMachine(t *testing.T) *gm.Machine {
	t.Helper()
	ids := 0
	m := gm.NewMachine(stubEvaluator{}, stubGenerator{}, gm.WithSessionIDs(func() string {
		ids++
		return strings.Repeat("x", ids)
	}))
	require.NoError(t, m.Start())
	ctx := context.Background()
	for i := 0; i < levels.Count(); i++ {
		require.NoError(t, m.Submit(ctx, "answer"))
		require.NoError(t, m.Advance(ctx))
	}
	require.Equal(t, gm.PhaseReport, m.Snapshot().Phase())
	return m
}

type failingSession struct{}

func (failingSession) Snapshot() gm.Snapshot { return gm.Snapshot{State: gm.IntroState{}} }
func (failingSession) Restart() error        { return errors.New("invalid transition: restart during intro") }

func TestView_ShowsReport(t *testing.T) {
	s := New(finishedMachine(t))
	view := s.View(100, 200)

	assert.Contains(t, view, "ANALYSIS COMPLETE")
	assert.Contains(t, view, "120-130")
	assert.Contains(t, view, "Critical Thinking")
	assert.Contains(t, view, "80%")
	assert.Contains(t, view, "A steady strategist")
	for _, g := range []string{"Take bolder bets", "Delegate sooner", "Sketch before solving"} {
		assert.Contains(t, view, g)
	}
	for _, p := range levels.Pillars {
		assert.Contains(t, view, p)
	}
	assert.Contains(t, view, "Methodical")
	assert.Contains(t, view, "Restart Journey")
	assert.Equal(t, 100, s.Progress())
}

func TestView_WithoutReport(t *testing.T) {
	s := New(failingSession{})
	assert.Contains(t, s.View(80, 24), "No report yet.")
}

func TestRestart_PopsToRoot(t *testing.T) {
	m := finishedMachine(t)
	before := m.SessionID()
	s := New(m)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	require.NotNil(t, cmd)
	assert.IsType(t, router.PopToRootMsg{}, cmd())
	assert.Equal(t, gm.PhaseIntro, m.Snapshot().Phase())
	assert.NotEqual(t, before, m.SessionID())
}

func TestRestart_FailureShowsNotice(t *testing.T) {
	s := New(failingSession{})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	assert.Nil(t, cmd)
	assert.Contains(t, s.notice, "restart during intro")
}

func TestScroll_ClampsOffset(t *testing.T) {
	s := New(finishedMachine(t))
	top := s.View(100, 10)

	for i := 0; i < 500; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	bottom := s.View(100, 10)
	assert.NotEqual(t, top, bottom)
	assert.Contains(t, bottom, "Restart Journey")
	assert.Less(t, s.offset, 500)

	for i := 0; i < 500; i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	assert.Zero(t, s.offset)
}

func TestQuit(t *testing.T) {
	s := New(finishedMachine(t))
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, s.CapturesEscape())
}
