package evaluation

import (
	"fmt"
)

// Outcome is the evaluator's verdict on one answered level.
type Outcome struct {
	// Score is the level score in [0, 100].
	Score int

	Feedback         string
	PersonalityTrait string

	// IQEstimate is a range label such as "115-125".
	IQEstimate string

	// CriticalThinkingRating is in [1, 10].
	CriticalThinkingRating int
}

// EvaluationError reports that a level could not be evaluated. The cause
// (transport failure, malformed JSON, schema violation) is kept for logging
// but callers are expected to treat every EvaluationError the same way.
type EvaluationError struct {
	Level int
	Err   error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluate level %d: %v", e.Level, e.Err)
}

func (e *EvaluationError) Unwrap() error { return e.Err }
