package model

import (
	"testing"
	"time"
)

func pendingTask(due time.Time) Task {
	return Task{
		ID:        "task-1",
		Name:      "Classify me",
		List:      DefaultList,
		Due:       &due,
		CreatedAt: time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC),
	}
}

func TestClassifyFuture(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	if got := Classify(pendingTask(now.Add(10*time.Second)), now); got != DueStateFuture {
		t.Fatalf("expected future, got %s", got)
	}
}

func TestClassifyDueSoonWithinWindow(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	if got := Classify(pendingTask(now.Add(-120*time.Second)), now); got != DueStateDueSoon {
		t.Fatalf("expected due_soon, got %s", got)
	}
	// Exactly at the window edge still fires.
	if got := Classify(pendingTask(now.Add(-DueSoonWindow)), now); got != DueStateDueSoon {
		t.Fatalf("expected due_soon at window edge, got %s", got)
	}
	// Due exactly now counts as already due.
	if got := Classify(pendingTask(now), now); got != DueStateDueSoon {
		t.Fatalf("expected due_soon at zero delta, got %s", got)
	}
}

func TestClassifyOverduePastWindow(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	if got := Classify(pendingTask(now.Add(-600*time.Second)), now); got != DueStateOverdue {
		t.Fatalf("expected overdue, got %s", got)
	}
	if got := Classify(pendingTask(now.Add(-DueSoonWindow-time.Millisecond)), now); got != DueStateOverdue {
		t.Fatalf("expected overdue just past window, got %s", got)
	}
}

func TestClassifyInert(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)

	task := pendingTask(now.Add(time.Minute))
	task.Completed = true
	if got := Classify(task, now); got != DueStateInert {
		t.Fatalf("completed: expected inert, got %s", got)
	}

	task = pendingTask(now.Add(time.Minute))
	task.Notified = true
	if got := Classify(task, now); got != DueStateInert {
		t.Fatalf("notified: expected inert, got %s", got)
	}

	task = pendingTask(now)
	task.Due = nil
	if got := Classify(task, now); got != DueStateInert {
		t.Fatalf("no due: expected inert, got %s", got)
	}
}
