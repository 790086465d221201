package model

import "time"

// DueSoonWindow is how long after its due time a task is still fired
// immediately on scheduling. Older tasks are left to the sweeper so a
// stale dataset does not produce a notification storm.
const DueSoonWindow = 5 * time.Minute

type DueState string

const (
	// DueStateInert means the task cannot fire: no due time, already
	// completed, or already notified.
	DueStateInert DueState = "inert"
	// DueStateFuture means the due time has not arrived yet.
	DueStateFuture DueState = "future"
	// DueStateDueSoon means the due time passed within DueSoonWindow.
	DueStateDueSoon DueState = "due_soon"
	// DueStateOverdue means the due time passed more than
	// DueSoonWindow ago.
	DueStateOverdue DueState = "overdue"
)

// Classify is the single due-state decision shared by the scheduler,
// the sweeper, and the presenter's urgency choice.
func Classify(t Task, now time.Time) DueState {
	if !t.Pending() {
		return DueStateInert
	}
	delta := t.Due.Sub(now)
	switch {
	case delta > 0:
		return DueStateFuture
	case delta >= -DueSoonWindow:
		return DueStateDueSoon
	default:
		return DueStateOverdue
	}
}
