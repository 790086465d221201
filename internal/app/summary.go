package app

import "github.com/sandeepkv93/tingtong/internal/model"

// Summary is the at-a-glance status line rendered in the UI footer.
type Summary struct {
	Total     int
	Completed int
	Pending   int
	Overdue   int
	Cards     int
	CardsDone int
}

func (a *App) Summarize() Summary {
	now := a.now()
	a.mu.Lock()
	defer a.mu.Unlock()

	var s Summary
	s.Total = len(a.tasks)
	for _, t := range a.tasks {
		if t.Completed {
			s.Completed++
			continue
		}
		s.Pending++
		if model.Classify(t, now) == model.DueStateOverdue {
			s.Overdue++
		}
	}
	s.Cards = len(a.cards)
	for _, c := range a.cards {
		if c.Stage == model.StageDone {
			s.CardsDone++
		}
	}
	return s
}
