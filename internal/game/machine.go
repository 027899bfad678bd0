package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/abhisek/iq360/internal/evaluation"
	"github.com/abhisek/iq360/internal/levels"
	"github.com/abhisek/iq360/internal/report"
)

// Trigger guard errors.
var (
	ErrEmptyAnswer       = errors.New("answer is empty")
	ErrInvalidTransition = errors.New("invalid transition")
)

// User-facing notices for failed requests.
const (
	EvaluationNotice = "Something went wrong with the brain-scan. Please try again."
	ReportNotice     = "Failed to generate your master profile. Please try again."
)

// Machine owns one game session: the current state, the accumulated level
// results and the single in-flight request slot shared by evaluation and
// report generation. It is safe for concurrent use; triggers that arrive
// while a request is in flight are ignored.
type Machine struct {
	evaluator evaluation.Evaluator
	generator report.Generator
	logger    *slog.Logger
	newID     func() string

	mu        sync.Mutex
	sessionID string
	state     State
	results   []LevelResult
	busy      bool
}

// Option configures a Machine.
type Option func(*Machine)

// WithLogger sets the logger used for transition logs.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithSessionIDs overrides how session IDs are generated.
func WithSessionIDs(fn func() string) Option {
	return func(m *Machine) {
		if fn != nil {
			m.newID = fn
		}
	}
}

// NewMachine creates a Machine in the intro state.
func NewMachine(ev evaluation.Evaluator, gen report.Generator, opts ...Option) *Machine {
	m := &Machine{
		evaluator: ev,
		generator: gen,
		logger:    slog.New(slog.DiscardHandler),
		newID:     func() string { return uuid.New().String() },
		state:     IntroState{},
	}
	for _, opt := range opts {
		opt(m)
	}
	m.sessionID = m.newID()
	return m
}

// Start begins the journey at level 1.
func (m *Machine) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.state.(IntroState); !ok {
		return m.invalid("start")
	}
	first, err := levels.Get(1)
	if err != nil {
		return err
	}
	m.transition(PlayingState{Level: first})
	return nil
}

// SetDraft records the in-progress answer for the open level. It is ignored
// outside PLAYING and while an evaluation is running.
func (m *Machine) SetDraft(answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ps, ok := m.state.(PlayingState); ok && !ps.Evaluating {
		ps.Answer = answer
		m.state = ps
	}
}

// Submit sends answer for evaluation. A blank answer returns ErrEmptyAnswer
// without contacting the evaluator. While a request is in flight Submit does
// nothing and returns nil. On failure the machine stays in PLAYING with the
// answer preserved and a notice set, and the *evaluation.EvaluationError is
// returned.
func (m *Machine) Submit(ctx context.Context, answer string) error {
	level, ok, err := m.beginSubmit(answer)
	if err != nil || !ok {
		return err
	}

	outcome, evalErr := m.evaluator.Evaluate(ctx, level, answer)
	return m.finishSubmit(level, answer, outcome, evalErr)
}

func (m *Machine) beginSubmit(answer string) (levels.Level, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy {
		return levels.Level{}, false, nil
	}
	ps, ok := m.state.(PlayingState)
	if !ok {
		return levels.Level{}, false, m.invalid("submit")
	}
	if strings.TrimSpace(answer) == "" {
		return levels.Level{}, false, ErrEmptyAnswer
	}

	ps.Answer = answer
	ps.Evaluating = true
	ps.Notice = ""
	m.state = ps
	m.busy = true

	m.logger.Info("evaluating answer",
		slog.String("session_id", m.sessionID),
		slog.Int("level", ps.Level.Index),
		slog.Int("answer_len", len(answer)))
	return ps.Level, true, nil
}

func (m *Machine) finishSubmit(level levels.Level, answer string, outcome *evaluation.Outcome, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.busy = false

	if err == nil && outcome == nil {
		err = errors.New("evaluator returned no outcome")
	}
	if err != nil {
		var evalErr *evaluation.EvaluationError
		if !errors.As(err, &evalErr) {
			evalErr = &evaluation.EvaluationError{Level: level.Index, Err: err}
		}
		m.state = PlayingState{Level: level, Answer: answer, Notice: EvaluationNotice}
		m.logger.Warn("evaluation failed",
			slog.String("session_id", m.sessionID),
			slog.Int("level", level.Index),
			slog.Any("error", evalErr))
		return evalErr
	}

	m.results = append(m.results, LevelResult{
		Level:            level.Index,
		Score:            outcome.Score,
		Feedback:         outcome.Feedback,
		PersonalityTrait: outcome.PersonalityTrait,
		IQSegment:        outcome.IQEstimate,
		UserAnswer:       answer,
	})
	m.transition(TransitionState{Level: level, Outcome: *outcome})
	return nil
}

// Advance moves past the level transition. Before the last level it opens
// the next puzzle; after the last level it requests the final report. A
// failed report leaves the machine in LEVEL_TRANSITION with a notice set and
// returns the *report.ReportError; calling Advance again retries. While a
// request is in flight Advance does nothing and returns nil.
func (m *Machine) Advance(ctx context.Context) error {
	ts, inputs, ok, err := m.beginAdvance()
	if err != nil || !ok {
		return err
	}

	rep, genErr := m.generator.Generate(ctx, inputs)
	return m.finishAdvance(ts, rep, genErr)
}

// beginAdvance handles the non-final case in full. It returns ok only when
// a report request must be made.
func (m *Machine) beginAdvance() (TransitionState, []report.Input, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.busy {
		return TransitionState{}, nil, false, nil
	}
	ts, ok := m.state.(TransitionState)
	if !ok {
		return TransitionState{}, nil, false, m.invalid("advance")
	}

	if !levels.IsLast(ts.Level.Index) {
		next, err := levels.Get(ts.Level.Index + 1)
		if err != nil {
			return TransitionState{}, nil, false, err
		}
		m.transition(PlayingState{Level: next})
		return TransitionState{}, nil, false, nil
	}

	ts.Generating = true
	ts.Notice = ""
	m.state = ts
	m.busy = true

	m.logger.Info("generating final report",
		slog.String("session_id", m.sessionID),
		slog.Int("results", len(m.results)))
	return ts, toReportInputs(m.results), true, nil
}

func (m *Machine) finishAdvance(ts TransitionState, rep *report.FinalReport, err error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.busy = false

	if err == nil && rep == nil {
		err = errors.New("generator returned no report")
	}
	if err != nil {
		var repErr *report.ReportError
		if !errors.As(err, &repErr) {
			repErr = &report.ReportError{Err: err}
		}
		ts.Generating = false
		ts.Notice = ReportNotice
		m.state = ts
		m.logger.Warn("report generation failed",
			slog.String("session_id", m.sessionID),
			slog.Any("error", repErr))
		return repErr
	}

	final := *rep
	final.GrowthAreas = slices.Clone(rep.GrowthAreas)
	m.transition(ReportState{Report: final})
	return nil
}

// Restart discards the finished session and returns to the intro with a
// fresh session ID.
func (m *Machine) Restart() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.state.(ReportState); !ok {
		return m.invalid("restart")
	}

	old := m.sessionID
	m.sessionID = m.newID()
	m.results = nil
	m.state = IntroState{}
	m.logger.Info("session restarted",
		slog.String("previous_session_id", old),
		slog.String("session_id", m.sessionID))
	return nil
}

// Snapshot returns a copy of the current state and results.
func (m *Machine) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	st := m.state
	if rs, ok := st.(ReportState); ok {
		rs.Report.GrowthAreas = slices.Clone(rs.Report.GrowthAreas)
		st = rs
	}
	return Snapshot{
		SessionID:   m.sessionID,
		State:       st,
		Results:     slices.Clone(m.results),
		TotalLevels: levels.Count(),
	}
}

// SessionID returns the current session's ID.
func (m *Machine) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessionID
}

// transition sets the new state and logs it. Callers hold m.mu.
func (m *Machine) transition(next State) {
	from := m.state.Phase()
	m.state = next

	attrs := []any{
		slog.String("session_id", m.sessionID),
		slog.String("from", from.String()),
		slog.String("to", next.Phase().String()),
		slog.Int("results", len(m.results)),
	}
	switch st := next.(type) {
	case PlayingState:
		attrs = append(attrs, slog.Int("level", st.Level.Index))
	case TransitionState:
		attrs = append(attrs, slog.Int("level", st.Level.Index), slog.Int("score", st.Outcome.Score))
	}
	m.logger.Info("game transition", attrs...)
}

// invalid builds an ErrInvalidTransition for trigger. Callers hold m.mu.
func (m *Machine) invalid(trigger string) error {
	return fmt.Errorf("%w: %s during %s", ErrInvalidTransition, trigger, m.state.Phase())
}
