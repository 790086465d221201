package app

import (
	"context"

	"github.com/sandeepkv93/tingtong/internal/model"
	"github.com/sandeepkv93/tingtong/internal/notify"
	"github.com/sandeepkv93/tingtong/internal/share"
)

// AcceptShare imports a shared list or board from an inbound link.
// Accepting the same link twice is a no-op: the existing collection is
// kept untouched and no second confirmation is shown.
func (a *App) AcceptShare(ctx context.Context, rawURL string) (model.Collection, error) {
	link, err := share.Parse(rawURL)
	if err != nil {
		return model.Collection{}, err
	}

	a.mu.Lock()
	ns := a.namespace(link.Mode)
	c, ok := ns[link.Key]
	if !ok {
		c = model.Collection{
			Key:        link.Key,
			Name:       share.SharedTitle(link.Key),
			Emoji:      "🔗",
			Mode:       link.Mode,
			Shared:     true,
			SharedFrom: link.Key,
		}
		ns[link.Key] = c
		a.persistNamespace(ctx, link.Mode)
	}
	a.mu.Unlock()

	if !ok {
		a.present([]notify.Notice{{
			Title: "🔗 Shared " + string(link.Mode) + " added",
			Body:  c.Name,
		}})
	}
	return c, nil
}

// ShareLink builds the outbound share URL for a list or board.
func (a *App) ShareLink(key string, mode model.Mode) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.namespace(mode)[key]; !ok {
		return "", ErrCollectionNotFound
	}
	return share.Build(a.shareBase, key, mode), nil
}
