package game

// evaluatedMsg is sent when a submitted answer has been scored or failed.
type evaluatedMsg struct {
	Err error
}

// advancedMsg is sent when the transition step has finished, whether it
// opened the next level or produced (or failed to produce) the report.
type advancedMsg struct {
	Err error
}
