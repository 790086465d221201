package scheduler

import (
	"testing"
	"time"
)

func TestEngineEmitsInDueOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Arm("later", now.Add(80*time.Millisecond)); err != nil {
		t.Fatalf("arm later: %v", err)
	}
	if err := engine.Arm("sooner", now.Add(20*time.Millisecond)); err != nil {
		t.Fatalf("arm sooner: %v", err)
	}

	first := waitFire(t, engine.C(), time.Second)
	second := waitFire(t, engine.C(), time.Second)
	if first.TaskID != "sooner" || second.TaskID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.TaskID, second.TaskID)
	}
}

func TestArmReplacesExistingTrigger(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Arm("task-1", now.Add(20*time.Millisecond)); err != nil {
		t.Fatalf("first arm: %v", err)
	}
	replaced := now.Add(60 * time.Millisecond)
	if err := engine.Arm("task-1", replaced); err != nil {
		t.Fatalf("second arm: %v", err)
	}

	if got := len(engine.Pending()); got != 1 {
		t.Fatalf("expected one pending trigger, got %d", got)
	}

	fire := waitFire(t, engine.C(), time.Second)
	if !fire.Due.Equal(replaced) {
		t.Fatalf("fired with stale due time: %v", fire.Due)
	}
	select {
	case extra := <-engine.C():
		t.Fatalf("unexpected second fire: %+v", extra)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDisarmCancelsBeforeFire(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	if err := engine.Arm("task-1", time.Now().Add(30*time.Millisecond)); err != nil {
		t.Fatalf("arm: %v", err)
	}
	engine.Disarm("task-1")
	if engine.Armed("task-1") {
		t.Fatal("task should no longer be armed")
	}

	select {
	case fire := <-engine.C():
		t.Fatalf("disarmed trigger fired: %+v", fire)
	case <-time.After(150 * time.Millisecond):
	}

	// Disarming an absent id is a no-op.
	engine.Disarm("ghost")
}

func TestDisarmAllEmptiesPendingSet(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	for _, id := range []string{"a", "b", "c"} {
		if err := engine.Arm(id, now.Add(time.Minute)); err != nil {
			t.Fatalf("arm %s: %v", id, err)
		}
	}
	engine.DisarmAll()
	if got := len(engine.Pending()); got != 0 {
		t.Fatalf("expected empty pending set, got %d", got)
	}
}

func TestSnapshotCapturesArmedSet(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	due := time.Now().Add(time.Hour)
	if err := engine.Arm("task-1", due); err != nil {
		t.Fatalf("arm: %v", err)
	}

	state := engine.Snapshot(now)
	if !state.LastCheck().Equal(now) {
		t.Fatalf("last check = %v, want %v", state.LastCheck(), now)
	}
	if len(state.Pending) != 1 || state.Pending[0].TaskID != "task-1" {
		t.Fatalf("unexpected pending: %+v", state.Pending)
	}
	if state.Pending[0].DueMillis != due.UnixMilli() {
		t.Fatalf("due millis = %d, want %d", state.Pending[0].DueMillis, due.UnixMilli())
	}
}

func TestArmValidatesDueTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Arm("bad", time.Time{}); err != ErrInvalidDueTime {
		t.Fatalf("expected ErrInvalidDueTime, got %v", err)
	}
}

func TestNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	due := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Arm(taskID(i), due); err != nil {
			t.Fatalf("arm: %v", err)
		}
	}

	time.Sleep(150 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped fires > 0, got %d", engine.Dropped())
	}
}

func taskID(i int) string {
	return "task-" + string(rune('a'+i%26)) + string(rune('a'+i/26))
}

func waitFire(t *testing.T, ch <-chan Fire, timeout time.Duration) Fire {
	t.Helper()
	select {
	case fire := <-ch:
		return fire
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for fire")
		return Fire{}
	}
}
