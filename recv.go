package mpmcchan

import (
	"github.com/rishav/mpmcchan/internal/backoff"
	"github.com/rishav/mpmcchan/internal/selectctx"
)

// TryRecv attempts to dequeue a message without blocking. It fails with
// ErrEmpty if no message is currently available, or ErrDisconnected if
// the channel is closed and has been fully drained.
func (ch *Channel[T]) TryRecv() (T, error) {
	var tok token[T]
	if ch.startRecv(&tok) {
		return ch.read(&tok)
	}
	var zero T
	return zero, ErrEmpty
}

// Recv blocks until a message is available or the channel closes and has
// been fully drained.
func (ch *Channel[T]) Recv() (T, error) {
	var tok token[T]
	for {
		bo := backoff.New()
		for {
			if ch.startRecv(&tok) {
				return ch.read(&tok)
			}
			if !bo.Snooze() {
				break
			}
		}

		cx := selectctx.New()
		ch.receivers.Register(cx)

		if !ch.IsEmpty() || ch.IsClosed() {
			cx.TrySelect(selectctx.Aborted, 0)
		}

		outcome, _ := cx.WaitUntil()
		switch outcome {
		case selectctx.Aborted, selectctx.Closed:
			ch.receivers.Unregister(cx)
		case selectctx.Operation:
		}
	}
}
