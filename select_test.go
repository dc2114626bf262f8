package mpmcchan

import (
	"testing"
	"time"
)

func TestSelect_RecvFirstReadyCase(t *testing.T) {
	a := NewChannel[string](1)
	b := NewChannel[string](1)

	if err := b.TrySend("from-b"); err != nil {
		t.Fatalf("TrySend: %v", err)
	}

	idx, v, err := Select(RecvCase(a), RecvCase(b))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if idx != 1 {
		t.Fatalf("Select index = %d, want 1", idx)
	}
	if v.(string) != "from-b" {
		t.Fatalf("Select value = %v, want from-b", v)
	}
}

func TestSelect_SendCase(t *testing.T) {
	full := NewChannel[int](1)
	if err := full.TrySend(1); err != nil {
		t.Fatalf("TrySend: %v", err)
	}
	ready := NewChannel[int](1)

	idx, _, err := Select(SendCase(full, 99), SendCase(ready, 7))
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if idx != 1 {
		t.Fatalf("Select index = %d, want 1", idx)
	}
	v, err := ready.TryRecv()
	if err != nil || v != 7 {
		t.Fatalf("TryRecv() = (%d, %v), want (7, nil)", v, err)
	}
}

func TestSelect_BlocksUntilReady(t *testing.T) {
	a := NewChannel[int](1)
	b := NewChannel[int](1)

	result := make(chan int, 1)
	go func() {
		_, v, err := Select(RecvCase(a), RecvCase(b))
		if err != nil {
			t.Errorf("Select: %v", err)
			return
		}
		result <- v.(int)
	}()

	time.Sleep(20 * time.Millisecond)
	if err := b.Send(42); err != nil {
		t.Fatalf("Send: %v", err)
	}

	select {
	case v := <-result:
		if v != 42 {
			t.Fatalf("Select result = %d, want 42", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Select never observed the send")
	}
}

func TestSelect_PanicsOnNoCases(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty Select")
		}
	}()
	Select()
}
