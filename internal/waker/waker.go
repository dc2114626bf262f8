// Package waker maintains the set of goroutines parked on a channel
// endpoint (all senders waiting for space, or all receivers waiting for a
// message) and wakes them when that endpoint becomes usable.
//
// It is a mutex-guarded slice of outstanding rendezvous handles, woken one
// at a time or all at once on close.
package waker

import (
	"sync"

	"github.com/rishav/mpmcchan/internal/selectctx"
)

// Registry tracks parked select contexts for one side (senders or
// receivers) of a channel.
type Registry struct {
	mu     sync.Mutex
	parked []*selectctx.Context
	closed bool
}

// NewRegistry returns an empty, open registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register enrolls cx to be woken by a future WakeOne or Close. If the
// registry is already closed, cx is woken immediately with Closed.
func (r *Registry) Register(cx *selectctx.Context) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		cx.TrySelect(selectctx.Closed, 0)
		return
	}
	r.parked = append(r.parked, cx)
	r.mu.Unlock()
}

// Unregister removes cx from the parked set, if still present. It is a
// no-op if WakeOne or Close already removed cx; a cx that selected itself
// (e.g. Aborted) is still in the parked set and is removed here.
func (r *Registry) Unregister(cx *selectctx.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, p := range r.parked {
		if p == cx {
			r.parked = append(r.parked[:i], r.parked[i+1:]...)
			return
		}
	}
}

// WakeOne wakes at most one parked context that has not already been
// selected (e.g. aborted its own park, or was woken by a concurrent
// WakeOne/Close). It tries candidates in FIFO registration order until
// one accepts.
func (r *Registry) WakeOne() {
	for {
		r.mu.Lock()
		if len(r.parked) == 0 {
			r.mu.Unlock()
			return
		}
		cx := r.parked[0]
		r.parked = r.parked[1:]
		r.mu.Unlock()

		if cx.TrySelect(selectctx.Operation, 0) {
			return
		}
		// cx was already selected by someone else (self-abort or a
		// racing Close); try the next one.
	}
}

// Close marks the registry closed and wakes every currently parked
// context with Closed. Safe to call multiple times; only the first call
// has any effect on the parked set (callers are expected to call it
// behind the channel's own once-only closed flag).
func (r *Registry) Close() {
	r.mu.Lock()
	parked := r.parked
	r.parked = nil
	r.closed = true
	r.mu.Unlock()

	for _, cx := range parked {
		cx.TrySelect(selectctx.Closed, 0)
	}
}
