// Package mpmcchan implements a bounded, multi-producer multi-consumer
// message-passing channel backed by a preallocated ring of slots.
//
// The algorithm is a Go port of Dmitry Vyukov's bounded MPMC queue, the
// same design crossbeam-channel's array flavor is built on:
//
//   - http://www.1024cores.net/home/lock-free-algorithms/queues/bounded-mpmc-queue
//
// Producers CAS-reserve a slot at the tail, write the value, then publish
// a stamp; consumers CAS-reserve a slot at the head, read the value, then
// publish a stamp. FIFO order is determined by the linearization of the
// head/tail CAS operations. The fast path (TrySend/TryRecv) never blocks;
// Send/Recv back off with spin-then-yield and, failing that, park the
// calling goroutine via the internal waker registry until the opposite
// end signals progress or the channel closes.
//
// Like the ring buffer this is ported from, capacity is fixed at
// construction and rounds up internally to the next power of two (the
// "lap") without changing the caller-visible Cap().
package mpmcchan
