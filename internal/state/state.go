package state

import (
	"sync"

	"cityweather/internal/weather"
)

// Holder is a concurrency-safe holder of the single current view state.
//
// Each flow obtains a sequence number from Begin; terminal results are applied
// only when they belong to the newest flow, so a slow, superseded request can
// never overwrite the state of a newer one.
type Holder struct {
	mu  sync.RWMutex
	seq uint64
	cur weather.Status
}

// NewHolder creates a Holder in the idle state.
func NewHolder() *Holder {
	return &Holder{cur: weather.Status{Phase: weather.PhaseIdle}}
}

// Begin opens a new flow: the state moves to loading, any previous error is
// cleared, and the flow's sequence number is returned.
func (h *Holder) Begin() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.seq++
	h.cur.Phase = weather.PhaseLoading
	h.cur.Message = ""
	return h.seq
}

// Complete publishes a successful result for the flow identified by seq.
// It reports false when a newer flow has begun since seq was issued; the
// result is then discarded.
func (h *Holder) Complete(seq uint64, loc weather.Location, snap weather.Snapshot) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if seq != h.seq {
		return false
	}

	h.cur = weather.Status{
		Phase:    weather.PhaseReady,
		Location: loc,
		Snapshot: snap,
	}
	return true
}

// Fail publishes a failure message under the same recency rule as Complete.
func (h *Holder) Fail(seq uint64, message string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if seq != h.seq {
		return false
	}

	h.cur.Phase = weather.PhaseFailed
	h.cur.Message = message
	return true
}

// Current returns the current view state.
func (h *Holder) Current() weather.Status {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.cur
}
