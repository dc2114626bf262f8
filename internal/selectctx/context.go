// Package selectctx implements the parking side of the blocking send/recv
// and multi-channel select protocol: a one-shot rendezvous between a
// parked goroutine and whichever waker.Registry (see internal/waker)
// eventually has something for it.
//
// A Context is created fresh for every blocking call. It is registered
// into one or more registries, then the caller re-checks readiness and
// either aborts the park (readiness already arrived) or calls WaitUntil
// to sleep until some registry calls TrySelect.
package selectctx

import "sync"

// Outcome describes why a parked Context woke up.
type Outcome int

const (
	// Waiting means no outcome has been decided yet.
	Waiting Outcome = iota
	// Aborted means the caller canceled its own park because readiness
	// appeared during the register/re-check window.
	Aborted
	// Closed means the channel closed while this Context was parked.
	Closed
	// Operation means a registry woke this Context because the
	// operation it was parked on became performable.
	Operation
)

// Context is a single-use park handle. The zero value is not usable; use
// New.
type Context struct {
	mu       sync.Mutex
	done     chan struct{}
	selected bool
	outcome  Outcome
	opIndex  int
}

// New returns a fresh, unselected Context.
func New() *Context {
	return &Context{done: make(chan struct{})}
}

// TrySelect attempts to decide this Context's outcome. It succeeds only
// once; subsequent calls (from a second registry, or a racing close)
// return false. opIndex is meaningful only for Operation outcomes in a
// multi-case select and is ignored otherwise.
func (c *Context) TrySelect(outcome Outcome, opIndex int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected {
		return false
	}
	c.selected = true
	c.outcome = outcome
	c.opIndex = opIndex
	close(c.done)
	return true
}

// WaitUntil blocks until some call to TrySelect decides the outcome, then
// returns it along with the selected case index (0 for single-case
// blocking send/recv).
func (c *Context) WaitUntil() (Outcome, int) {
	<-c.done
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome, c.opIndex
}
