package engine

import "sync/atomic"

// CancelFlag is the shared cancellation signal for a run. Phases poll it at
// phase boundaries and between concurrent fetch units; on cancel the current
// phase drains in-flight work and completes with partial stats.
type CancelFlag struct {
	cancelled atomic.Bool
}

// Cancel requests a clean shutdown of the run.
func (f *CancelFlag) Cancel() {
	f.cancelled.Store(true)
}

// Cancelled reports whether cancellation was requested.
func (f *CancelFlag) Cancelled() bool {
	return f.cancelled.Load()
}
