// Package fanout distributes a stream of values to many bounded
// mpmcchan.Channel subscribers at once.
//
// Each subscriber gets its own mpmcchan.Channel; a publish that finds a
// subscriber's channel full drops that update for that subscriber rather
// than blocking the publisher, so the "drop when full" policy falls
// directly out of TrySend's ErrFull case.
package fanout

import (
	"log"
	"sync"

	"github.com/rishav/mpmcchan"
)

// Publisher broadcasts values of type T to every currently subscribed
// channel. Subscribers that fall behind have updates dropped rather than
// stalling the publisher.
type Publisher[T any] struct {
	mu          sync.RWMutex
	subs        map[int]*mpmcchan.Channel[T]
	nextID      int
	bufferSize  int
	dropCounter func(subID int)
}

// NewPublisher creates a publisher whose per-subscriber buffers hold
// bufferSize values; a non-positive bufferSize is replaced by 100.
func NewPublisher[T any](bufferSize int) *Publisher[T] {
	if bufferSize <= 0 {
		bufferSize = 100
	}
	return &Publisher[T]{
		subs:       make(map[int]*mpmcchan.Channel[T]),
		bufferSize: bufferSize,
	}
}

// OnDrop installs a callback invoked whenever a publish is dropped
// because TrySend on a subscriber's channel failed (the channel is full,
// or it has been closed).
func (p *Publisher[T]) OnDrop(f func(subID int)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dropCounter = f
}

// Subscribe registers a new subscriber and returns its id plus the
// channel it should Recv from.
func (p *Publisher[T]) Subscribe() (int, *mpmcchan.Channel[T]) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	ch := mpmcchan.NewChannel[T](p.bufferSize)
	p.subs[id] = ch
	return id, ch
}

// Unsubscribe removes and closes a subscriber's channel.
func (p *Publisher[T]) Unsubscribe(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if ch, ok := p.subs[id]; ok {
		ch.Close()
		delete(p.subs, id)
	}
}

// Publish sends value to every current subscriber without blocking.
// Subscribers whose channel is full simply miss this value.
func (p *Publisher[T]) Publish(value T) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	for id, ch := range p.subs {
		if err := ch.TrySend(value); err != nil {
			if p.dropCounter != nil {
				p.dropCounter(id)
			} else {
				log.Printf("fanout: dropped update for subscriber %d: %v", id, err)
			}
		}
	}
}

// Close closes every subscriber's channel and clears the subscriber set.
func (p *Publisher[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, ch := range p.subs {
		ch.Close()
	}
	p.subs = make(map[int]*mpmcchan.Channel[T])
}
