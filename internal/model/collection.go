package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMode = errors.New("model: invalid collection mode")

type Mode string

const (
	ModeList  Mode = "list"
	ModeBoard Mode = "board"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeList, ModeBoard:
		return true
	default:
		return false
	}
}

// Collection is a list or a kanban board. The key is derived from the
// display name and is unique within its own namespace only; a list
// and a board may share a key.
type Collection struct {
	Key        string `json:"-"`
	Name       string `json:"name"`
	Emoji      string `json:"emoji"`
	Mode       Mode   `json:"mode"`
	Shared     bool   `json:"shared"`
	SharedFrom string `json:"sharedFrom,omitempty"`
}

func (c Collection) Validate() error {
	if strings.TrimSpace(c.Key) == "" {
		return errors.New("model: collection key is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: collection name is required")
	}
	if !c.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
	return nil
}

// Slugify derives a collection key from a display name: lowercase
// letters and digits only, everything else stripped.
func Slugify(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Capitalize upper-cases the first byte of a key, matching the title
// given to accepted shares.
func Capitalize(key string) string {
	if key == "" {
		return ""
	}
	return strings.ToUpper(key[:1]) + key[1:]
}
