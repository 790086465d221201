package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidStage = errors.New("model: invalid card stage")

type Stage string

const (
	StageBacklog Stage = "backlog"
	StageTodo    Stage = "todo"
	StageDoing   Stage = "doing"
	StageDone    Stage = "done"
)

// Stages is the workflow order boards render their columns in.
var Stages = []Stage{StageBacklog, StageTodo, StageDoing, StageDone}

func (s Stage) IsValid() bool {
	switch s {
	case StageBacklog, StageTodo, StageDoing, StageDone:
		return true
	default:
		return false
	}
}

// Card is a kanban entry. Cards move between stages by user action
// only; they carry no due time and never fire reminders.
type Card struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Stage     Stage     `json:"status"`
	Board     string    `json:"board"`
	CreatedAt time.Time `json:"created"`
}

func (c Card) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: card id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("model: card name is required")
	}
	if strings.TrimSpace(c.Board) == "" {
		return errors.New("model: card board is required")
	}
	if !c.Stage.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStage, c.Stage)
	}
	if c.CreatedAt.IsZero() {
		return errors.New("model: card created is required")
	}
	return nil
}
