package share

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/sandeepkv93/tingtong/internal/model"
)

// Ref marks a link as one of ours; anything else is ignored.
const Ref = "tingtong"

var ErrNotShareLink = errors.New("share: not a share link")

// Link is a parsed inbound share.
type Link struct {
	Key  string
	Mode model.Mode
}

// Parse extracts a share link from a raw URL. Links without the
// tingtong ref or a shared key are rejected; an unknown type falls
// back to list, matching the outbound default.
func Parse(raw string) (Link, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Link{}, fmt.Errorf("share: parse url: %w", err)
	}
	q := u.Query()
	if q.Get("ref") != Ref {
		return Link{}, ErrNotShareLink
	}
	key := q.Get("shared")
	if key == "" {
		return Link{}, ErrNotShareLink
	}
	mode := model.Mode(q.Get("type"))
	if !mode.IsValid() {
		mode = model.ModeList
	}
	return Link{Key: key, Mode: mode}, nil
}

// Build constructs the outbound share URL for a list or board key.
func Build(base string, key string, mode model.Mode) string {
	q := url.Values{}
	q.Set("type", string(mode))
	q.Set("shared", key)
	q.Set("ref", Ref)
	return base + "?" + q.Encode()
}

// SharedTitle is the display name given to an accepted share.
func SharedTitle(key string) string {
	return model.Capitalize(key) + " (Shared)"
}
