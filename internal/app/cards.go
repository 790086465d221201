package app

import (
	"context"
	"strings"

	"github.com/sandeepkv93/tingtong/internal/model"
)

// AddCard creates a kanban card in the backlog stage of the given
// board.
func (a *App) AddCard(ctx context.Context, name, board string) (model.Card, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Card{}, ErrEmptyName
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.boards[board]; !ok {
		return model.Card{}, ErrCollectionNotFound
	}
	card := model.Card{
		ID:        a.newID(),
		Name:      name,
		Stage:     model.StageBacklog,
		Board:     board,
		CreatedAt: a.now(),
	}
	a.cards = append(a.cards, card)
	a.persistCards(ctx)
	return card, nil
}

// MoveCard puts the card in a different stage.
func (a *App) MoveCard(ctx context.Context, id string, stage model.Stage) error {
	if !stage.IsValid() {
		return model.ErrInvalidStage
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	i := a.cardIndex(id)
	if i < 0 {
		return ErrCardNotFound
	}
	a.cards[i].Stage = stage
	a.persistCards(ctx)
	return nil
}

// EditCard renames the card and optionally moves it to another board.
func (a *App) EditCard(ctx context.Context, id, name, board string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	i := a.cardIndex(id)
	if i < 0 {
		return ErrCardNotFound
	}
	if board != "" {
		if _, ok := a.boards[board]; !ok {
			return ErrCollectionNotFound
		}
		a.cards[i].Board = board
	}
	a.cards[i].Name = name
	a.persistCards(ctx)
	return nil
}

// DeleteCard removes the card.
func (a *App) DeleteCard(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	i := a.cardIndex(id)
	if i < 0 {
		return ErrCardNotFound
	}
	a.cards = append(a.cards[:i], a.cards[i+1:]...)
	a.persistCards(ctx)
	return nil
}

// Cards returns the cards for one board grouped by stage, in workflow
// order within each stage slice by creation order.
func (a *App) Cards(board string) map[model.Stage][]model.Card {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make(map[model.Stage][]model.Card, len(model.Stages))
	for _, s := range model.Stages {
		out[s] = make([]model.Card, 0)
	}
	for _, c := range a.cards {
		if c.Board == board {
			out[c.Stage] = append(out[c.Stage], c)
		}
	}
	return out
}
