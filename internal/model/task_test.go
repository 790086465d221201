package model

import (
	"errors"
	"testing"
	"time"
)

func TestTaskValidateSuccess(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	due := now.Add(time.Hour)
	task := Task{
		ID:        "task-1",
		Name:      "Pay electricity bill",
		Due:       &due,
		List:      DefaultList,
		Ringtone:  ToneBell,
		CreatedAt: now,
	}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got error: %v", err)
	}
}

func TestTaskValidateRejectsEmptyName(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{ID: "task-1", Name: "   ", List: DefaultList, CreatedAt: now}
	if err := task.Validate(); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestTaskValidateInvalidTone(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	task := Task{ID: "task-1", Name: "Bad tone", List: DefaultList, Ringtone: Tone("klaxon"), CreatedAt: now}
	err := task.Validate()
	if err == nil || !errors.Is(err, ErrInvalidTone) {
		t.Fatalf("expected ErrInvalidTone, got: %v", err)
	}
}

func TestTonePitch(t *testing.T) {
	hz, d, ok := ToneBell.Pitch()
	if !ok || hz != 800 || d != time.Second {
		t.Fatalf("unexpected bell pitch: %d %v %v", hz, d, ok)
	}
	if _, _, ok := ToneCustom.Pitch(); ok {
		t.Fatal("custom tone should have no pitch")
	}
	if _, _, ok := ToneNone.Pitch(); ok {
		t.Fatal("empty tone should have no pitch")
	}
}

func TestTaskPending(t *testing.T) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	due := now.Add(time.Minute)
	task := Task{ID: "task-1", Name: "Pending", List: DefaultList, Due: &due, CreatedAt: now}
	if !task.Pending() {
		t.Fatal("task with future due should be pending")
	}
	task.Notified = true
	if task.Pending() {
		t.Fatal("notified task must not be pending")
	}
	task.Notified = false
	task.Completed = true
	if task.Pending() {
		t.Fatal("completed task must not be pending")
	}
	task.Completed = false
	task.Due = nil
	if task.Pending() {
		t.Fatal("task without due must not be pending")
	}
}
