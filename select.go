package mpmcchan

import (
	"github.com/rishav/mpmcchan/internal/backoff"
	"github.com/rishav/mpmcchan/internal/selectctx"
)

// SelectHandle is the capability set a channel endpoint exposes to a
// multi-channel Select. Construct one with SendCase or RecvCase.
type SelectHandle interface {
	// try attempts the non-blocking reservation and reports success.
	try() bool
	// register enrolls cx to be woken when this endpoint becomes ready,
	// and reports whether the caller should still consider parking
	// (i.e. this endpoint was not already ready).
	register(cx *selectctx.Context) bool
	// unregister removes a prior registration.
	unregister(cx *selectctx.Context)
	// commit performs the write/read against a slot already reserved by
	// a successful try(), returning the received value (nil for a send
	// case) and any error.
	commit() (any, error)
	// state returns the opposite end's counter: tail for receivers,
	// head for senders. An observed change signals a
	// retry is warranted.
	state() uint64
}

type senderCase[T any] struct {
	ch  *Channel[T]
	msg T
	tok token[T]
}

// SendCase builds a select case that sends msg on ch.
func SendCase[T any](ch *Channel[T], msg T) SelectHandle {
	return &senderCase[T]{ch: ch, msg: msg}
}

func (c *senderCase[T]) try() bool { return c.ch.startSend(&c.tok) }

func (c *senderCase[T]) register(cx *selectctx.Context) bool {
	c.ch.senders.Register(cx)
	return c.ch.IsFull() && !c.ch.IsClosed()
}

func (c *senderCase[T]) unregister(cx *selectctx.Context) { c.ch.senders.Unregister(cx) }

func (c *senderCase[T]) commit() (any, error) {
	return nil, c.ch.write(&c.tok, c.msg)
}

func (c *senderCase[T]) state() uint64 { return c.ch.head.v.Load() }

type receiverCase[T any] struct {
	ch  *Channel[T]
	tok token[T]
}

// RecvCase builds a select case that receives from ch.
func RecvCase[T any](ch *Channel[T]) SelectHandle {
	return &receiverCase[T]{ch: ch}
}

func (c *receiverCase[T]) try() bool { return c.ch.startRecv(&c.tok) }

func (c *receiverCase[T]) register(cx *selectctx.Context) bool {
	c.ch.receivers.Register(cx)
	return c.ch.IsEmpty() && !c.ch.IsClosed()
}

func (c *receiverCase[T]) unregister(cx *selectctx.Context) { c.ch.receivers.Unregister(cx) }

func (c *receiverCase[T]) commit() (any, error) {
	return c.ch.read(&c.tok)
}

func (c *receiverCase[T]) state() uint64 { return c.ch.tail.v.Load() }

// Select blocks until exactly one of cases can commit, then does so and
// returns its index together with the commit's result. Cases are polled
// in order on each pass; Select does not attempt to randomize the
// starting case, so under sustained contention across many goroutines
// earlier cases may win more often (fairness across goroutines is still
// provided by each case's own CAS-based reservation).
func Select(cases ...SelectHandle) (int, any, error) {
	if len(cases) == 0 {
		panic("mpmcchan: select requires at least one case")
	}

	for {
		bo := backoff.New()
		for {
			for i, c := range cases {
				if c.try() {
					v, err := c.commit()
					return i, v, err
				}
			}
			if !bo.Snooze() {
				break
			}
		}

		cx := selectctx.New()
		anyReady := false
		for _, c := range cases {
			if !c.register(cx) {
				anyReady = true
			}
		}
		if anyReady {
			cx.TrySelect(selectctx.Aborted, 0)
		}

		cx.WaitUntil()
		for _, c := range cases {
			c.unregister(cx)
		}
		// Loop back to the fast pass: whichever case woke us (or
		// nothing, on a stale wakeup) gets tried again there.
	}
}
