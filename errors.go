package mpmcchan

import "errors"

// ErrFull is returned by TrySend when the channel has no free slot. The
// caller retains ownership of the message it tried to send.
var ErrFull = errors.New("mpmcchan: channel is full")

// ErrEmpty is returned by TryRecv when no message is currently available
// and the channel has not been closed.
var ErrEmpty = errors.New("mpmcchan: channel is empty")

// ErrDisconnected is returned, wrapped in SendError or directly, once a
// channel has been closed: sends can no longer be committed, and receives
// fail once every already-queued message has been drained.
var ErrDisconnected = errors.New("mpmcchan: channel is disconnected")

// SendError reports why a send failed and hands the message back to the
// caller. Err is either ErrFull (TrySend only) or ErrDisconnected.
type SendError[T any] struct {
	Value T
	Err   error
}

func (e *SendError[T]) Error() string {
	return e.Err.Error()
}

func (e *SendError[T]) Unwrap() error {
	return e.Err
}
