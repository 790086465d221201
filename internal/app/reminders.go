package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/notify"
	"github.com/sandeepkv93/tingtong/internal/scheduler"
	"github.com/sandeepkv93/tingtong/internal/storage"
)

// present delivers queued notices outside the state lock, since the
// system notifier and chime player shell out.
func (a *App) present(notices []notify.Notice) {
	for _, n := range notices {
		a.presenter.Present(n)
	}
}

// scheduleReminderLocked decides what to do with one task's reminder.
// Future deadlines arm a timer; deadlines already inside the late-fire
// window fire immediately; anything older stays silent until the
// sweeper picks it up. Callers hold a.mu and present the returned
// notices after unlocking.
func (a *App) scheduleReminderLocked(ctx context.Context, id string) []notify.Notice {
	i := a.taskIndex(id)
	if i < 0 {
		return nil
	}
	task := a.tasks[i]

	switch model.Classify(task, a.now()) {
	case model.DueStateFuture:
		if err := a.engine.Arm(task.ID, *task.Due); err != nil {
			a.log.Warn("arm reminder failed", zap.String("task", task.ID), zap.Error(err))
		}
		return nil
	case model.DueStateDueSoon:
		// Recently lapsed: fire now rather than waiting for the sweep.
		return a.fireLocked(ctx, task.ID, true)
	default:
		a.engine.Disarm(task.ID)
		return nil
	}
}

// scheduleAllLocked rebuilds the armed set from scratch. Replays are
// idempotent: every pending task ends up with exactly one trigger, and
// completed or already-notified tasks end up with none.
func (a *App) scheduleAllLocked(ctx context.Context) []notify.Notice {
	a.engine.DisarmAll()
	var notices []notify.Notice
	for i := range a.tasks {
		notices = append(notices, a.scheduleReminderLocked(ctx, a.tasks[i].ID)...)
	}
	return notices
}

// ScheduleAll re-arms reminders for every pending task, dropping
// whatever was armed before.
func (a *App) ScheduleAll(ctx context.Context) {
	a.mu.Lock()
	notices := a.scheduleAllLocked(ctx)
	a.mu.Unlock()
	a.present(notices)
}

// CancelReminder disarms a single task's timer without touching the
// task itself.
func (a *App) CancelReminder(id string) {
	a.engine.Disarm(id)
}

// fireLocked marks the task notified, persists, and builds the notice.
// A task that is completed, already notified, or gone is skipped, so
// racing fire sources (timer, sweeper, restore) deliver at most once.
func (a *App) fireLocked(ctx context.Context, id string, overdue bool) []notify.Notice {
	i := a.taskIndex(id)
	if i < 0 || !a.tasks[i].Pending() {
		return nil
	}
	a.tasks[i].Notified = true
	a.persistTasks(ctx)
	a.engine.Disarm(id)

	task := a.tasks[i]
	title := "⏰ Due Now: " + task.Name
	if overdue {
		title = "⚠️ Overdue: " + task.Name
	}
	a.log.Info("reminder fired",
		zap.String("task", task.ID),
		zap.Bool("overdue", overdue))
	return []notify.Notice{{
		Title:       title,
		Body:        task.List,
		Urgent:      overdue,
		Tone:        task.Ringtone,
		CustomSound: task.CustomSound,
	}}
}

// HandleFire processes a trigger emitted by the engine. Timer fires
// land on time, so they present as routine rather than overdue.
func (a *App) HandleFire(ctx context.Context, fire scheduler.Fire) {
	a.mu.Lock()
	notices := a.fireLocked(ctx, fire.TaskID, false)
	a.mu.Unlock()
	a.present(notices)
}

// SweepOnce fires every pending task whose deadline has passed,
// however old. This is the safety net behind the timers: a missed or
// dropped trigger is caught on the next sweep.
func (a *App) SweepOnce(ctx context.Context) {
	now := a.now()

	a.mu.Lock()
	var notices []notify.Notice
	for i := range a.tasks {
		t := a.tasks[i]
		if !t.Pending() || t.Due.After(now) {
			continue
		}
		notices = append(notices, a.fireLocked(ctx, t.ID, true)...)
	}
	a.mu.Unlock()
	a.present(notices)
}

// Backgrounded persists the armed set so reminders survive the app
// being suspended or killed.
func (a *App) Backgrounded() {
	a.persistReminderState(context.Background())
}

// ShuttingDown persists the armed set one last time.
func (a *App) ShuttingDown() {
	a.persistReminderState(context.Background())
}

// Foregrounded restores persisted reminders when the app regains
// focus.
func (a *App) Foregrounded() {
	a.Restore(context.Background())
}

func (a *App) persistReminderState(ctx context.Context) {
	state := a.engine.Snapshot(a.now())
	if err := storage.SaveReminderState(ctx, a.store, state); err != nil {
		a.log.Warn("persist reminder state failed", zap.Error(err))
		return
	}
	a.log.Debug("reminder state persisted", zap.Int("pending", len(state.Pending)))
}

// Restore replays the persisted armed set after the app comes back.
// Entries that lapsed while backgrounded fire as overdue; everything
// else is re-armed. The persisted record is consumed exactly once: it
// is cleared before any replay, so a second restore is a no-op.
func (a *App) Restore(ctx context.Context) {
	state, ok := storage.LoadReminderState(ctx, a.store)
	if ok {
		if err := storage.ClearReminderState(ctx, a.store); err != nil {
			a.log.Warn("clear reminder state failed", zap.Error(err))
		}
	}
	now := a.now()
	lastCheck := state.LastCheck()

	a.mu.Lock()
	var notices []notify.Notice
	if ok {
		for _, p := range state.Pending {
			due := p.Due()
			// Missed while away: lapsed after the snapshot was taken.
			if due.After(now) || !due.After(lastCheck) {
				continue
			}
			notices = append(notices, a.fireLocked(ctx, p.TaskID, true)...)
		}
	}
	notices = append(notices, a.scheduleAllLocked(ctx)...)
	a.mu.Unlock()
	a.present(notices)
}
