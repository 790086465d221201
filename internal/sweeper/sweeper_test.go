package sweeper

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSweeperTicks(t *testing.T) {
	var calls int64
	s := New(20*time.Millisecond, func(time.Time) {
		atomic.AddInt64(&calls, 1)
	})
	s.Start()

	deadline := time.After(time.Second)
	for atomic.LoadInt64(&calls) < 2 {
		select {
		case <-deadline:
			t.Fatalf("expected at least two sweeps, got %d", atomic.LoadInt64(&calls))
		case <-time.After(5 * time.Millisecond):
		}
	}
	s.Stop()

	settled := atomic.LoadInt64(&calls)
	time.Sleep(60 * time.Millisecond)
	if got := atomic.LoadInt64(&calls); got != settled {
		t.Fatalf("sweeper kept ticking after stop: %d -> %d", settled, got)
	}
}

func TestStopBeforeStartIsSafe(t *testing.T) {
	s := New(time.Second, func(time.Time) {})
	s.Stop()
	s.Start()
	s.Stop()
	s.Stop()
}
