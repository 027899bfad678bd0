package llm

import (
	"sort"
	"sync"
	"time"
)

// UsageRecord describes one successful LLM request.
type UsageRecord struct {
	Provider string
	Model    string
	Purpose  string
	Usage    Usage
	Latency  time.Duration
}

// UsageRecorder receives a record for every successful request.
type UsageRecorder interface {
	Record(rec UsageRecord)
}

// ModelUsage aggregates usage for a single model.
type ModelUsage struct {
	Model        string
	Requests     int
	InputTokens  int
	OutputTokens int
	// Cost is in USD. Zero when the model has no pricing entry.
	Cost  float64
	Known bool
}

// UsageLedger is an in-memory UsageRecorder. It is safe for concurrent use.
type UsageLedger struct {
	mu      sync.Mutex
	byModel map[string]*ModelUsage
	last    string
}

// NewUsageLedger returns an empty ledger.
func NewUsageLedger() *UsageLedger {
	return &UsageLedger{byModel: make(map[string]*ModelUsage)}
}

// Record adds rec to the per-model totals.
func (u *UsageLedger) Record(rec UsageRecord) {
	u.mu.Lock()
	defer u.mu.Unlock()

	m, ok := u.byModel[rec.Model]
	if !ok {
		m = &ModelUsage{Model: rec.Model}
		u.byModel[rec.Model] = m
	}
	u.last = rec.Model
	m.Requests++
	m.InputTokens += rec.Usage.InputTokens
	m.OutputTokens += rec.Usage.OutputTokens
	if c := LookupCost(rec.Model); c != nil {
		m.Cost += c.Cost(rec.Usage.InputTokens, rec.Usage.OutputTokens)
		m.Known = true
	}
}

// LastModel returns the model of the most recent request, or "".
func (u *UsageLedger) LastModel() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.last
}

// Summary returns per-model totals sorted by model ID.
func (u *UsageLedger) Summary() []ModelUsage {
	u.mu.Lock()
	defer u.mu.Unlock()

	out := make([]ModelUsage, 0, len(u.byModel))
	for _, m := range u.byModel {
		out = append(out, *m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out
}

// TotalCost returns the summed USD cost over all priced models.
func (u *UsageLedger) TotalCost() float64 {
	u.mu.Lock()
	defer u.mu.Unlock()

	var total float64
	for _, m := range u.byModel {
		total += m.Cost
	}
	return total
}

// Requests returns the number of recorded requests.
func (u *UsageLedger) Requests() int {
	u.mu.Lock()
	defer u.mu.Unlock()

	n := 0
	for _, m := range u.byModel {
		n += m.Requests
	}
	return n
}
