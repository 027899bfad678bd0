package game

import (
	"github.com/abhisek/iq360/internal/evaluation"
	"github.com/abhisek/iq360/internal/levels"
	"github.com/abhisek/iq360/internal/report"
)

// Phase identifies which of the four game states is active.
type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseTransition
	PhaseReport
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseTransition:
		return "level_transition"
	case PhaseReport:
		return "final_report"
	}
	return "unknown"
}

// State is the data attached to the current phase. The concrete type is
// one of IntroState, PlayingState, TransitionState or ReportState.
type State interface {
	Phase() Phase
	isState()
}

// IntroState is the welcome state before a journey starts.
type IntroState struct{}

// PlayingState is an open puzzle waiting for, or evaluating, an answer.
type PlayingState struct {
	Level levels.Level

	// Answer is the current draft, kept across failed evaluations.
	Answer string

	// Evaluating is set while the answer is with the evaluator.
	Evaluating bool

	// Notice is a user-facing message from the last failed submit.
	Notice string
}

// TransitionState shows the outcome of the level just answered.
type TransitionState struct {
	Level   levels.Level
	Outcome evaluation.Outcome

	// Generating is set while the final report is being produced.
	Generating bool

	// Notice is a user-facing message from the last failed advance.
	Notice string
}

// ReportState holds the finished thinking profile.
type ReportState struct {
	Report report.FinalReport
}

func (IntroState) Phase() Phase      { return PhaseIntro }
func (PlayingState) Phase() Phase    { return PhasePlaying }
func (TransitionState) Phase() Phase { return PhaseTransition }
func (ReportState) Phase() Phase     { return PhaseReport }

func (IntroState) isState()      {}
func (PlayingState) isState()    {}
func (TransitionState) isState() {}
func (ReportState) isState()     {}

// LevelResult is the write-once record of one evaluated level.
type LevelResult struct {
	Level            int
	Score            int
	Feedback         string
	PersonalityTrait string
	IQSegment        string
	UserAnswer       string
}

// Snapshot is a point-in-time copy of the machine for rendering. Mutating
// it has no effect on the machine.
type Snapshot struct {
	SessionID   string
	State       State
	Results     []LevelResult
	TotalLevels int
}

// Phase returns the phase of the captured state.
func (s Snapshot) Phase() Phase {
	return s.State.Phase()
}

// Busy reports whether an evaluation or report request was in flight.
func (s Snapshot) Busy() bool {
	switch st := s.State.(type) {
	case PlayingState:
		return st.Evaluating
	case TransitionState:
		return st.Generating
	}
	return false
}

// Progress returns the share of levels completed, as a percentage.
func (s Snapshot) Progress() int {
	if s.TotalLevels == 0 {
		return 0
	}
	return len(s.Results) * 100 / s.TotalLevels
}

func toReportInputs(results []LevelResult) []report.Input {
	out := make([]report.Input, len(results))
	for i, r := range results {
		out[i] = report.Input{
			Level:            r.Level,
			Score:            r.Score,
			PersonalityTrait: r.PersonalityTrait,
			IQSegment:        r.IQSegment,
			UserAnswer:       r.UserAnswer,
		}
	}
	return out
}
