package app

import (
	"context"
	"strings"
	"time"

	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/notify"
)

// AddTask creates a task and arms its reminder in one operation.
func (a *App) AddTask(ctx context.Context, name string, due *time.Time, list string, tone model.Tone, customSound string) (model.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Task{}, ErrEmptyName
	}
	if list == "" {
		list = model.DefaultList
	}

	a.mu.Lock()
	if _, ok := a.lists[list]; !ok {
		a.mu.Unlock()
		return model.Task{}, ErrCollectionNotFound
	}
	task := model.Task{
		ID:          a.newID(),
		Name:        name,
		Due:         due,
		List:        list,
		Ringtone:    tone,
		CustomSound: customSound,
		CreatedAt:   a.now(),
	}
	if err := task.Validate(); err != nil {
		a.mu.Unlock()
		return model.Task{}, err
	}
	a.tasks = append(a.tasks, task)
	a.persistTasks(ctx)
	notices := a.scheduleReminderLocked(ctx, task.ID)
	a.mu.Unlock()

	a.present(notices)
	return task, nil
}

// ToggleTask flips completion. Completing a task disarms its timer in
// the same operation; un-completing resets the notified flag and
// re-arms.
func (a *App) ToggleTask(ctx context.Context, id string) error {
	a.mu.Lock()
	i := a.taskIndex(id)
	if i < 0 {
		a.mu.Unlock()
		return ErrTaskNotFound
	}
	a.tasks[i].Completed = !a.tasks[i].Completed
	a.tasks[i].Notified = false

	var notices []notify.Notice
	if a.tasks[i].Completed {
		a.engine.Disarm(id)
	} else {
		notices = a.scheduleReminderLocked(ctx, id)
	}
	a.persistTasks(ctx)
	a.mu.Unlock()

	a.present(notices)
	return nil
}

// EditTask renames and/or reschedules a task. Changing the due time
// resets the notified flag so the new deadline can fire again.
func (a *App) EditTask(ctx context.Context, id, name string, due *time.Time, list string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	a.mu.Lock()
	i := a.taskIndex(id)
	if i < 0 {
		a.mu.Unlock()
		return ErrTaskNotFound
	}
	if list == "" {
		list = a.tasks[i].List
	}
	if _, ok := a.lists[list]; !ok {
		a.mu.Unlock()
		return ErrCollectionNotFound
	}

	if !sameDue(a.tasks[i].Due, due) {
		a.tasks[i].Notified = false
	}
	a.tasks[i].Name = name
	a.tasks[i].Due = due
	a.tasks[i].List = list
	a.persistTasks(ctx)
	notices := a.scheduleAllLocked(ctx)
	a.mu.Unlock()

	a.present(notices)
	return nil
}

// DeleteTask removes a task, disarming its timer in the same
// operation so nothing fires for a dead task.
func (a *App) DeleteTask(ctx context.Context, id string) error {
	a.mu.Lock()
	i := a.taskIndex(id)
	if i < 0 {
		a.mu.Unlock()
		return ErrTaskNotFound
	}
	a.engine.Disarm(id)
	a.tasks = append(a.tasks[:i], a.tasks[i+1:]...)
	a.persistTasks(ctx)
	a.mu.Unlock()
	return nil
}

// Tasks returns a copy of the task list.
func (a *App) Tasks() []model.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Task, len(a.tasks))
	copy(out, a.tasks)
	return out
}

func (a *App) TaskByID(id string) (model.Task, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if i := a.taskIndex(id); i >= 0 {
		return a.tasks[i], true
	}
	return model.Task{}, false
}

func sameDue(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}
