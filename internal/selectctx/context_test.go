package selectctx

import (
	"testing"
	"time"
)

func TestContext_TrySelectOnlyOnceWins(t *testing.T) {
	cx := New()
	if !cx.TrySelect(Operation, 3) {
		t.Fatal("first TrySelect should succeed")
	}
	if cx.TrySelect(Closed, 0) {
		t.Fatal("second TrySelect should fail")
	}

	outcome, idx := cx.WaitUntil()
	if outcome != Operation || idx != 3 {
		t.Fatalf("WaitUntil() = (%v, %d), want (Operation, 3)", outcome, idx)
	}
}

func TestContext_WaitUntilBlocksUntilSelected(t *testing.T) {
	cx := New()
	done := make(chan Outcome, 1)
	go func() {
		outcome, _ := cx.WaitUntil()
		done <- outcome
	}()

	select {
	case <-done:
		t.Fatal("WaitUntil returned before TrySelect was called")
	case <-time.After(20 * time.Millisecond):
	}

	cx.TrySelect(Aborted, 0)

	select {
	case outcome := <-done:
		if outcome != Aborted {
			t.Fatalf("WaitUntil() = %v, want Aborted", outcome)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("WaitUntil never returned after TrySelect")
	}
}
