package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTone = errors.New("model: invalid ringtone")

// DefaultList is the list new tasks land in when none is chosen.
const DefaultList = "inbox"

type Tone string

const (
	ToneNone         Tone = ""
	ToneBell         Tone = "bell"
	ToneChime        Tone = "chime"
	ToneNotification Tone = "notification"
	ToneCustom       Tone = "custom"
)

func (t Tone) IsValid() bool {
	switch t {
	case ToneNone, ToneBell, ToneChime, ToneNotification, ToneCustom:
		return true
	default:
		return false
	}
}

// Pitch returns the frequency and duration of a built-in tone.
// Custom and empty tones have no pitch.
func (t Tone) Pitch() (hz int, d time.Duration, ok bool) {
	switch t {
	case ToneBell:
		return 800, time.Second, true
	case ToneChime:
		return 600, 1200 * time.Millisecond, true
	case ToneNotification:
		return 1000, 800 * time.Millisecond, true
	default:
		return 0, 0, false
	}
}

type Task struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Completed   bool       `json:"completed"`
	Due         *time.Time `json:"due"`
	List        string     `json:"list"`
	Ringtone    Tone       `json:"ringtone"`
	CustomSound string     `json:"customSrc"`
	Notified    bool       `json:"notified"`
	CreatedAt   time.Time  `json:"created"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("model: task name is required")
	}
	if strings.TrimSpace(t.List) == "" {
		return errors.New("model: task list is required")
	}
	if !t.Ringtone.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTone, t.Ringtone)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created is required")
	}
	return nil
}

// Pending reports whether the task is still waiting on its reminder:
// not completed, not yet notified, and carrying a due time.
func (t Task) Pending() bool {
	return !t.Completed && !t.Notified && t.Due != nil
}
