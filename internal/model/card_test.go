package model

import (
	"errors"
	"testing"
	"time"
)

func TestCardValidate(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	card := Card{ID: "card-1", Name: "Ship release", Stage: StageBacklog, Board: "main", CreatedAt: now}
	if err := card.Validate(); err != nil {
		t.Fatalf("expected valid card, got: %v", err)
	}

	card.Stage = Stage("parked")
	err := card.Validate()
	if err == nil || !errors.Is(err, ErrInvalidStage) {
		t.Fatalf("expected ErrInvalidStage, got: %v", err)
	}
}

func TestStageOrder(t *testing.T) {
	want := []Stage{StageBacklog, StageTodo, StageDoing, StageDone}
	if len(Stages) != len(want) {
		t.Fatalf("unexpected stage count: %d", len(Stages))
	}
	for i, s := range want {
		if Stages[i] != s {
			t.Fatalf("stage %d = %q, want %q", i, Stages[i], s)
		}
	}
}
