package app

import (
	"context"
	"sort"
	"strings"

	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/notify"
)

// CreateCollection adds a list or board. The key is derived from the
// name; collisions within the same namespace are rejected.
func (a *App) CreateCollection(ctx context.Context, name, emoji string, mode model.Mode) (model.Collection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Collection{}, ErrEmptyName
	}
	if !mode.IsValid() {
		return model.Collection{}, model.ErrInvalidMode
	}
	key := model.Slugify(name)
	if key == "" {
		return model.Collection{}, ErrEmptyName
	}

	a.mu.Lock()
	ns := a.namespace(mode)
	if _, ok := ns[key]; ok {
		a.mu.Unlock()
		return model.Collection{}, ErrCollectionExists
	}
	c := model.Collection{Key: key, Name: name, Emoji: emoji, Mode: mode}
	ns[key] = c
	a.persistNamespace(ctx, mode)
	a.mu.Unlock()

	a.present([]notify.Notice{{
		Title: "✅ Created: " + name,
		Body:  string(mode) + " " + key,
	}})
	return c, nil
}

// RenameCollection changes the display name and emoji. The key stays
// stable so tasks and cards keep pointing at it.
func (a *App) RenameCollection(ctx context.Context, key string, mode model.Mode, name, emoji string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	ns := a.namespace(mode)
	c, ok := ns[key]
	if !ok {
		return ErrCollectionNotFound
	}
	c.Name = name
	if emoji != "" {
		c.Emoji = emoji
	}
	ns[key] = c
	a.persistNamespace(ctx, mode)
	return nil
}

// DeleteCollection removes a list or board and everything inside it.
// Deleting a list disarms the timers of its tasks so nothing fires for
// contents that no longer exist.
func (a *App) DeleteCollection(ctx context.Context, key string, mode model.Mode) error {
	a.mu.Lock()
	ns := a.namespace(mode)
	c, ok := ns[key]
	if !ok {
		a.mu.Unlock()
		return ErrCollectionNotFound
	}
	delete(ns, key)
	a.persistNamespace(ctx, mode)

	switch mode {
	case model.ModeList:
		kept := a.tasks[:0]
		for _, t := range a.tasks {
			if t.List == key {
				a.engine.Disarm(t.ID)
				continue
			}
			kept = append(kept, t)
		}
		a.tasks = kept
		a.persistTasks(ctx)
	case model.ModeBoard:
		kept := a.cards[:0]
		for _, card := range a.cards {
			if card.Board != key {
				kept = append(kept, card)
			}
		}
		a.cards = kept
		a.persistCards(ctx)
	}
	a.mu.Unlock()

	a.present([]notify.Notice{{
		Title: "🗑️ Deleted: " + c.Name,
		Body:  string(mode) + " " + key,
	}})
	return nil
}

// Lists returns the list collections sorted by key.
func (a *App) Lists() []model.Collection {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sortedCollections(a.lists)
}

// Boards returns the board collections sorted by key.
func (a *App) Boards() []model.Collection {
	a.mu.Lock()
	defer a.mu.Unlock()
	return sortedCollections(a.boards)
}

func (a *App) namespace(mode model.Mode) map[string]model.Collection {
	if mode == model.ModeBoard {
		return a.boards
	}
	return a.lists
}

func (a *App) persistNamespace(ctx context.Context, mode model.Mode) {
	if mode == model.ModeBoard {
		a.persistBoards(ctx)
		return
	}
	a.persistLists(ctx)
}

func sortedCollections(ns map[string]model.Collection) []model.Collection {
	out := make([]model.Collection, 0, len(ns))
	for _, c := range ns {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
