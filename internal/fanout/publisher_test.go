package fanout

import "testing"

func TestPublisher_BroadcastsToAllSubscribers(t *testing.T) {
	p := NewPublisher[int](4)
	_, chA := p.Subscribe()
	_, chB := p.Subscribe()

	p.Publish(7)

	va, err := chA.TryRecv()
	if err != nil || va != 7 {
		t.Fatalf("subscriber A: (%d, %v), want (7, nil)", va, err)
	}
	vb, err := chB.TryRecv()
	if err != nil || vb != 7 {
		t.Fatalf("subscriber B: (%d, %v), want (7, nil)", vb, err)
	}
}

func TestPublisher_DropsWhenSubscriberFull(t *testing.T) {
	p := NewPublisher[int](1)
	var dropped int
	p.OnDrop(func(int) { dropped++ })

	_, ch := p.Subscribe()
	p.Publish(1)
	p.Publish(2) // ch's single slot is still full of 1

	if dropped != 1 {
		t.Fatalf("dropped = %d, want 1", dropped)
	}
	v, err := ch.TryRecv()
	if err != nil || v != 1 {
		t.Fatalf("TryRecv() = (%d, %v), want (1, nil)", v, err)
	}
}

func TestPublisher_UnsubscribeClosesChannel(t *testing.T) {
	p := NewPublisher[int](1)
	id, ch := p.Subscribe()
	p.Unsubscribe(id)

	if !ch.IsClosed() {
		t.Fatal("channel should be closed after Unsubscribe")
	}
}

func TestPublisher_CloseClosesAllSubscribers(t *testing.T) {
	p := NewPublisher[int](1)
	_, chA := p.Subscribe()
	_, chB := p.Subscribe()

	p.Close()

	if !chA.IsClosed() || !chB.IsClosed() {
		t.Fatal("all subscriber channels should be closed")
	}
}
