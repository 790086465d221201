package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Persisted record keys. The layout is a flat key-value space of
// JSON documents.
const (
	KeyTasks         = "tasks"
	KeyLists         = "lists"
	KeyBoards        = "boards"
	KeyKanbanTasks   = "kanbanTasks"
	KeyReminderState = "notificationState"
)

// Store is a durable key-value space of JSON documents. A missing key
// is reported as ErrNotFound, never as an empty value.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
