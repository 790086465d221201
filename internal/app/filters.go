package app

import (
	"time"

	"github.com/sandeepkv93/tingtong/internal/model"
)

// Filter selects a slice of the task list for display.
type Filter string

const (
	FilterAll   Filter = "all"
	FilterToday Filter = "today"
	FilterWeek  Filter = "week"
	FilterInbox Filter = "inbox"
)

// FilterTasks returns tasks matching the filter. Anything that is not
// a recognized filter name is treated as a list key.
func (a *App) FilterTasks(f Filter) []model.Task {
	now := a.now()
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]model.Task, 0, len(a.tasks))
	for _, t := range a.tasks {
		if matchesFilter(t, f, now) {
			out = append(out, t)
		}
	}
	return out
}

func matchesFilter(t model.Task, f Filter, now time.Time) bool {
	switch f {
	case FilterAll, "":
		return true
	case FilterToday:
		return t.Due != nil && sameDay(*t.Due, now)
	case FilterWeek:
		if t.Due == nil {
			return false
		}
		start := startOfDay(now)
		return !t.Due.Before(start) && t.Due.Before(start.AddDate(0, 0, 7))
	case FilterInbox:
		return t.List == model.DefaultList
	default:
		return t.List == string(f)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
