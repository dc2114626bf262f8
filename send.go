package mpmcchan

import (
	"github.com/rishav/mpmcchan/internal/backoff"
	"github.com/rishav/mpmcchan/internal/selectctx"
)

// TrySend attempts to enqueue msg without blocking. It fails with
// ErrFull if the channel has no free slot, or ErrDisconnected if the
// channel is closed; either way msg comes back in the returned
// *SendError[T].
func (ch *Channel[T]) TrySend(msg T) error {
	var tok token[T]
	if ch.startSend(&tok) {
		return ch.write(&tok, msg)
	}
	return &SendError[T]{Value: msg, Err: ErrFull}
}

// Send blocks until msg is enqueued or the channel closes.
func (ch *Channel[T]) Send(msg T) error {
	var tok token[T]
	for {
		bo := backoff.New()
		for {
			if ch.startSend(&tok) {
				return ch.write(&tok, msg)
			}
			if !bo.Snooze() {
				break
			}
		}

		cx := selectctx.New()
		ch.senders.Register(cx)

		// Re-check: readiness may have appeared between the last
		// startSend attempt and registration.
		if !ch.IsFull() {
			cx.TrySelect(selectctx.Aborted, 0)
		}

		outcome, _ := cx.WaitUntil()
		switch outcome {
		case selectctx.Aborted, selectctx.Closed:
			ch.senders.Unregister(cx)
		case selectctx.Operation:
			// The registry already removed cx from its parked set.
		}
	}
}
