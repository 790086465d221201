package model

import "time"

// PendingReminder is one armed trigger captured for recovery. Times
// are epoch milliseconds on the wire, matching the persisted layout.
type PendingReminder struct {
	TaskID    string `json:"taskId"`
	DueMillis int64  `json:"dueTime"`
}

func (p PendingReminder) Due() time.Time {
	return time.UnixMilli(p.DueMillis)
}

// ReminderState is the scheduler's transient recovery record. It is
// written when the app backgrounds or shuts down and consumed exactly
// once on resume. It is never the source of truth for whether a
// reminder should fire; the task's own fields are.
type ReminderState struct {
	Pending         []PendingReminder `json:"scheduledNotifications"`
	LastCheckMillis int64             `json:"lastCheck"`
}

func (s ReminderState) LastCheck() time.Time {
	return time.UnixMilli(s.LastCheckMillis)
}

func NewReminderState(pending []PendingReminder, lastCheck time.Time) ReminderState {
	return ReminderState{
		Pending:         pending,
		LastCheckMillis: lastCheck.UnixMilli(),
	}
}
