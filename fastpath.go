package mpmcchan

import "github.com/rishav/mpmcchan/internal/backoff"

// startSend reserves the tail slot for a write. Returns false only when
// the channel is observed full; a true return with a nil token slot means
// the channel is closed and the caller should treat this as a committed
// disconnect (see write).
func (ch *Channel[T]) startSend(tok *token[T]) bool {
	if ch.closed.Load() {
		tok.slot = nil
		tok.stamp = 0
		return true
	}

	bo := backoff.New()
	for {
		tail := ch.tail.v.Load()
		index := tail & (ch.oneLap - 1)
		lap := tail &^ (ch.oneLap - 1)

		s := &ch.buffer[index]
		stamp := s.stamp.Load()

		if tail == stamp {
			var newTail uint64
			if index+1 < ch.cap {
				newTail = tail + 1
			} else {
				newTail = lap + ch.oneLap*2
			}
			if ch.tail.v.CompareAndSwap(tail, newTail) {
				tok.slot = s
				tok.stamp = stamp + ch.oneLap
				return true
			}
		} else if stamp+ch.oneLap == tail {
			head := ch.head.v.Load()
			if head+ch.oneLap == tail {
				return false
			}
		}

		bo.Spin()
	}
}

// write commits a reserved slot: stores the value, then publishes the
// token's stamp, making the message visible to receivers. The stamp
// publish is the release half of the acquire/release edge formed with
// the acquire load in startSend/startRecv.
func (ch *Channel[T]) write(tok *token[T], msg T) error {
	if tok.slot == nil {
		return &SendError[T]{Value: msg, Err: ErrDisconnected}
	}
	tok.slot.value = msg
	tok.slot.stamp.Store(tok.stamp)
	ch.receivers.WakeOne()
	return nil
}

// startRecv reserves the head slot for a read. Returns false only when
// the channel is observed empty and open; a true return with a nil token
// slot means the channel is closed and drained.
func (ch *Channel[T]) startRecv(tok *token[T]) bool {
	bo := backoff.New()
	for {
		head := ch.head.v.Load()
		index := head & (ch.oneLap - 1)
		lap := head &^ (ch.oneLap - 1)

		s := &ch.buffer[index]
		stamp := s.stamp.Load()

		if head == stamp {
			var newHead uint64
			if index+1 < ch.cap {
				newHead = head + 1
			} else {
				newHead = lap + ch.oneLap*2
			}
			if ch.head.v.CompareAndSwap(head, newHead) {
				tok.slot = s
				tok.stamp = stamp + ch.oneLap
				return true
			}
		} else if stamp+ch.oneLap == head {
			tail := ch.tail.v.Load()
			if tail+ch.oneLap == head {
				if ch.closed.Load() {
					if ch.tail.v.Load() == tail {
						tok.slot = nil
						tok.stamp = 0
						return true
					}
				} else {
					return false
				}
			}
		}

		bo.Spin()
	}
}

// read commits a reserved slot: moves the value out, then publishes the
// token's stamp, making the slot available to the next writer.
func (ch *Channel[T]) read(tok *token[T]) (T, error) {
	if tok.slot == nil {
		var zero T
		return zero, ErrDisconnected
	}
	msg := tok.slot.value
	var zero T
	tok.slot.value = zero // drop the reference now rather than next lap
	tok.slot.stamp.Store(tok.stamp)
	ch.senders.WakeOne()
	return msg, nil
}
