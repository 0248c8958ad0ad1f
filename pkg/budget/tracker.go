// Package budget bounds what a single pipeline run may spend, in integer
// cents. Every phase checks Has before issuing a paid operation and records
// the spend unconditionally afterwards, so a run can overshoot its limit by
// at most one operation's cost.
package budget

import "sync/atomic"

// Cost constants per paid operation, in cents. Published here so every phase
// prices operations identically.
const (
	CostPageFetch      int64 = 1
	CostFeedFetch      int64 = 1
	CostSocialPage     int64 = 2
	CostSearchQuery    int64 = 3
	CostLLMExtraction  int64 = 5
	CostLLMChat        int64 = 3
	CostEmbeddingBatch int64 = 1
)

// Tracker is an atomic spend counter against a per-run cent limit.
// A limit of zero disables the cap.
type Tracker struct {
	limitCents int64
	spent      atomic.Int64
}

// NewTracker creates a tracker with the given per-run limit in cents.
func NewTracker(limitCents int64) *Tracker {
	return &Tracker{limitCents: limitCents}
}

// Has reports whether spending cost more cents would stay within the limit.
func (t *Tracker) Has(cost int64) bool {
	if t.limitCents <= 0 {
		return true
	}
	return t.spent.Load()+cost <= t.limitCents
}

// Spend unconditionally records the cost and reports whether the post-spend
// total is still within the limit.
func (t *Tracker) Spend(cost int64) bool {
	total := t.spent.Add(cost)
	if t.limitCents <= 0 {
		return true
	}
	return total <= t.limitCents
}

// Spent returns the total cents recorded so far.
func (t *Tracker) Spent() int64 {
	return t.spent.Load()
}

// Limit returns the configured cap in cents (zero means uncapped).
func (t *Tracker) Limit() int64 {
	return t.limitCents
}

// Exhausted reports whether the limit has been reached or passed.
func (t *Tracker) Exhausted() bool {
	return t.limitCents > 0 && t.spent.Load() >= t.limitCents
}
