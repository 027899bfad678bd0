package report

import "fmt"

// Input is one completed level as seen by the report generator.
type Input struct {
	Level            int
	Score            int
	PersonalityTrait string
	IQSegment        string
	UserAnswer       string
}

// FinalReport is the end-of-journey thinking profile.
type FinalReport struct {
	// OverallIQ is a range label such as "120-130".
	OverallIQ          string
	PersonalityProfile string

	// CriticalThinkingScore is in [0, 100].
	CriticalThinkingScore int

	// GrowthAreas holds three or four non-empty suggestions.
	GrowthAreas []string
}

// ReportError reports that the final profile could not be generated.
type ReportError struct {
	Err error
}

func (e *ReportError) Error() string {
	return fmt.Sprintf("generate final report: %v", e.Err)
}

func (e *ReportError) Unwrap() error { return e.Err }
