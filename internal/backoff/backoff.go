// Package backoff implements exponential backoff for retrying lock-free
// operations: spin a few times, then start yielding the processor.
//
// Design:
//   - Spin() is used by callers that are still inside a fast-path retry
//     loop. It is not a pure CPU pause: each iteration calls
//     runtime.Gosched(), and it never reports exhaustion.
//   - Snooze() escalates: it calls runtime.Gosched() 2^step times while
//     the step count is small, then once per call, and reports whether the
//     backoff is exhausted (so the caller should stop retrying and block
//     instead).
package backoff

import "runtime"

const (
	spinLimit  = 6
	yieldLimit = 10
)

// Backoff tracks how many times a caller has retried an operation.
type Backoff struct {
	step int
}

// New returns a fresh Backoff at step zero.
func New() *Backoff {
	return &Backoff{}
}

// Reset returns the backoff to its initial state.
func (b *Backoff) Reset() {
	b.step = 0
}

// Spin calls runtime.Gosched() 2^step times (step capped at spinLimit),
// then advances the step counter until it reaches spinLimit. Used inside
// the fast-path reservation loops where every retry already implies
// contention.
func (b *Backoff) Spin() {
	step := b.step
	if step > spinLimit {
		step = spinLimit
	}
	n := 1 << uint(step)
	for i := 0; i < n; i++ {
		runtime.Gosched()
	}
	if b.step < spinLimit {
		b.step++
	}
}

// Snooze spins while step is small, then yields the current goroutine.
// Returns false once the backoff has escalated past yieldLimit, signaling
// that the caller should stop retrying and park instead.
func (b *Backoff) Snooze() bool {
	if b.step <= spinLimit {
		n := 1 << uint(b.step)
		for i := 0; i < n; i++ {
			runtime.Gosched()
		}
	} else {
		runtime.Gosched()
	}
	b.step++
	return b.step <= yieldLimit
}
