package mpmcchan

import (
	"fmt"
	"math/bits"
	"sync/atomic"

	"github.com/rishav/mpmcchan/internal/waker"
)

// cacheLineSize is the assumed cache line width (64 bytes on every
// mainstream target).
const cacheLineSize = 64

// paddedUint64 cache-aligns an atomic counter so that head and tail never
// share a cache line under contention.
type paddedUint64 struct {
	v atomic.Uint64
	_ [cacheLineSize - 8]byte
}

// slot is one cell of the ring: a value plus the atomic stamp that
// determines, relative to head/tail, whether the cell is empty or full.
type slot[T any] struct {
	stamp atomic.Uint64
	value T
}

// maxCapacity is MAX/4: leaves two spare high bits in
// the stamp word so lap and index never collide.
const maxCapacity = ^uint64(0) / 4

// Channel is a bounded, lock-free-on-the-fast-path MPMC queue. The zero
// value is not usable; construct with NewChannel.
type Channel[T any] struct {
	head   paddedUint64
	tail   paddedUint64
	closed atomic.Bool

	cap    uint64
	oneLap uint64
	buffer []slot[T]

	senders   *waker.Registry
	receivers *waker.Registry
}

// NewChannel builds a channel with room for exactly capacity messages.
// Panics if capacity is not in [1, MAX/4].
func NewChannel[T any](capacity int) *Channel[T] {
	if capacity <= 0 {
		panic("mpmcchan: capacity must be positive")
	}
	cap64 := uint64(capacity)
	if cap64 > maxCapacity {
		panic(fmt.Sprintf("mpmcchan: capacity %d exceeds maximum %d", capacity, maxCapacity))
	}

	oneLap := nextPowerOfTwo(cap64)

	ch := &Channel[T]{
		cap:       cap64,
		oneLap:    oneLap,
		buffer:    make([]slot[T], cap64),
		senders:   waker.NewRegistry(),
		receivers: waker.NewRegistry(),
	}
	// Head starts at lap 1 (odd), tail at lap 0 (even).
	ch.head.v.Store(oneLap)
	ch.tail.v.Store(0)
	for i := uint64(0); i < cap64; i++ {
		ch.buffer[i].stamp.Store(i)
	}
	return ch
}

func nextPowerOfTwo(n uint64) uint64 {
	if n <= 1 {
		return 1
	}
	return uint64(1) << bits.Len64(n-1)
}

// Cap returns the channel's fixed capacity.
func (ch *Channel[T]) Cap() int {
	return int(ch.cap)
}

// IsClosed reports whether Close has been called.
func (ch *Channel[T]) IsClosed() bool {
	return ch.closed.Load()
}

// IsEmpty reports whether the channel currently holds no messages.
func (ch *Channel[T]) IsEmpty() bool {
	head := ch.head.v.Load()
	tail := ch.tail.v.Load()
	// The tail lags one lap behind the head exactly when empty: head's
	// lap is always odd and tail's always even, so equal laps can only
	// mean "one full lap apart", never "equal".
	return tail+ch.oneLap == head
}

// IsFull reports whether the channel currently holds Cap() messages.
func (ch *Channel[T]) IsFull() bool {
	tail := ch.tail.v.Load()
	head := ch.head.v.Load()
	return head+ch.oneLap == tail
}

// Len returns a snapshot of the number of queued messages. It may be
// stale the instant it returns.
func (ch *Channel[T]) Len() int {
	for {
		tail := ch.tail.v.Load()
		head := ch.head.v.Load()
		if ch.tail.v.Load() != tail {
			continue
		}
		hix := head & (ch.oneLap - 1)
		tix := tail & (ch.oneLap - 1)
		switch {
		case hix < tix:
			return int(tix - hix)
		case hix > tix:
			return int(ch.cap - hix + tix)
		case tail+ch.oneLap == head:
			return 0
		default:
			return int(ch.cap)
		}
	}
}

// Close is idempotent. The first call wakes every parked sender and
// receiver with a disconnect outcome; subsequent calls are no-ops.
// Sends made after Close fail with ErrDisconnected; receives drain any
// messages already queued, then fail with ErrDisconnected.
func (ch *Channel[T]) Close() bool {
	if !ch.closed.CompareAndSwap(false, true) {
		return false
	}
	ch.senders.Close()
	ch.receivers.Close()
	return true
}
