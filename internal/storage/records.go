package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sandeepkv93/tingtong/internal/model"
)

// Typed load/save helpers over the raw key-value space. Loading an
// absent record yields the type's empty value, not an error; callers
// that care about presence use the Store directly.

func LoadTasks(ctx context.Context, s Store) ([]model.Task, error) {
	var out []model.Task
	if err := loadJSON(ctx, s, KeyTasks, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]model.Task, 0)
	}
	return out, nil
}

func SaveTasks(ctx context.Context, s Store, tasks []model.Task) error {
	return saveJSON(ctx, s, KeyTasks, tasks)
}

func LoadLists(ctx context.Context, s Store) (map[string]model.Collection, error) {
	return loadCollections(ctx, s, KeyLists)
}

func SaveLists(ctx context.Context, s Store, lists map[string]model.Collection) error {
	return saveJSON(ctx, s, KeyLists, lists)
}

func LoadBoards(ctx context.Context, s Store) (map[string]model.Collection, error) {
	return loadCollections(ctx, s, KeyBoards)
}

func SaveBoards(ctx context.Context, s Store, boards map[string]model.Collection) error {
	return saveJSON(ctx, s, KeyBoards, boards)
}

func LoadCards(ctx context.Context, s Store) ([]model.Card, error) {
	var out []model.Card
	if err := loadJSON(ctx, s, KeyKanbanTasks, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = make([]model.Card, 0)
	}
	return out, nil
}

func SaveCards(ctx context.Context, s Store, cards []model.Card) error {
	return saveJSON(ctx, s, KeyKanbanTasks, cards)
}

// LoadReminderState returns the persisted recovery record. A missing
// or malformed record is reported as absent, never as an error: the
// record is transient and restoration simply skips when it is gone.
func LoadReminderState(ctx context.Context, s Store) (model.ReminderState, bool) {
	raw, err := s.Get(ctx, KeyReminderState)
	if err != nil {
		return model.ReminderState{}, false
	}
	var state model.ReminderState
	if err := json.Unmarshal(raw, &state); err != nil {
		return model.ReminderState{}, false
	}
	return state, true
}

func SaveReminderState(ctx context.Context, s Store, state model.ReminderState) error {
	return saveJSON(ctx, s, KeyReminderState, state)
}

func ClearReminderState(ctx context.Context, s Store) error {
	return s.Delete(ctx, KeyReminderState)
}

func loadCollections(ctx context.Context, s Store, key string) (map[string]model.Collection, error) {
	out := make(map[string]model.Collection)
	if err := loadJSON(ctx, s, key, &out); err != nil {
		return nil, err
	}
	for k, c := range out {
		c.Key = k
		out[k] = c
	}
	return out, nil
}

func loadJSON(ctx context.Context, s Store, key string, dst any) error {
	raw, err := s.Get(ctx, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func saveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.Put(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
