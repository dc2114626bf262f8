package backoff

import "testing"

func TestBackoff_SnoozeEventuallyExhausts(t *testing.T) {
	b := New()
	calls := 0
	for b.Snooze() {
		calls++
		if calls > 1000 {
			t.Fatal("Snooze never reported exhaustion")
		}
	}
	if calls == 0 {
		t.Fatal("Snooze exhausted on the very first call")
	}
}

func TestBackoff_ResetRestartsEscalation(t *testing.T) {
	b := New()
	for i := 0; i < yieldLimit+1; i++ {
		b.Snooze()
	}
	b.Reset()
	if !b.Snooze() {
		t.Fatal("Snooze exhausted immediately after Reset")
	}
}

func TestBackoff_SpinDoesNotPanic(t *testing.T) {
	b := New()
	for i := 0; i < 20; i++ {
		b.Spin()
	}
}
