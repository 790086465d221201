package storage

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/sandeepkv93/tingtong/internal/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "tingtong-test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPutGetDelete(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := store.Put(ctx, "tasks", []byte(`[]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "tasks", []byte(`[{"id":"a"}]`)); err != nil {
		t.Fatalf("put overwrite: %v", err)
	}
	got, err := store.Get(ctx, "tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"a"}]` {
		t.Fatalf("unexpected value: %s", got)
	}

	if err := store.Delete(ctx, "tasks"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	// Deleting an absent key is not an error.
	if err := store.Delete(ctx, "tasks"); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}

func TestMigrateRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate-roundtrip.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := MigrateUp(db); err != nil {
		t.Fatalf("first migrate up failed: %v", err)
	}
	if err := MigrateDown(db); err != nil {
		t.Fatalf("migrate down failed: %v", err)
	}
	if err := MigrateUp(db); err != nil {
		t.Fatalf("second migrate up failed: %v", err)
	}

	store, err := NewSQLiteStore(db)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := store.Put(context.Background(), "k", []byte("v")); err != nil {
		t.Fatalf("put after remigrate: %v", err)
	}
}

func TestTaskRecordsRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	loaded, err := LoadTasks(ctx, store)
	if err != nil {
		t.Fatalf("load empty tasks: %v", err)
	}
	if len(loaded) != 0 {
		t.Fatalf("expected no tasks, got %d", len(loaded))
	}

	due := time.Date(2026, 2, 9, 15, 30, 0, 0, time.UTC)
	tasks := []model.Task{
		{
			ID:        "task-1",
			Name:      "Water plants",
			Due:       &due,
			List:      "personal",
			Ringtone:  model.ToneChime,
			CreatedAt: time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
		},
	}
	if err := SaveTasks(ctx, store, tasks); err != nil {
		t.Fatalf("save tasks: %v", err)
	}

	loaded, err = LoadTasks(ctx, store)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(loaded) != 1 || loaded[0].ID != "task-1" {
		t.Fatalf("unexpected tasks: %+v", loaded)
	}
	if loaded[0].Due == nil || !loaded[0].Due.Equal(due) {
		t.Fatalf("due time lost in round trip: %+v", loaded[0].Due)
	}
	if loaded[0].Ringtone != model.ToneChime {
		t.Fatalf("ringtone lost: %q", loaded[0].Ringtone)
	}
}

func TestCollectionRecordsCarryMapKey(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	lists := map[string]model.Collection{
		"work": {Key: "work", Name: "Work", Emoji: "💼", Mode: model.ModeList},
	}
	if err := SaveLists(ctx, store, lists); err != nil {
		t.Fatalf("save lists: %v", err)
	}
	loaded, err := LoadLists(ctx, store)
	if err != nil {
		t.Fatalf("load lists: %v", err)
	}
	if loaded["work"].Key != "work" {
		t.Fatalf("collection key not restored from map key: %+v", loaded["work"])
	}
}

func TestReminderStateAbsentAndMalformed(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, ok := LoadReminderState(ctx, store); ok {
		t.Fatal("absent reminder state should be reported as missing")
	}

	// A corrupt record is treated as absence, not an error.
	if err := store.Put(ctx, KeyReminderState, []byte(`{not json`)); err != nil {
		t.Fatalf("put corrupt: %v", err)
	}
	if _, ok := LoadReminderState(ctx, store); ok {
		t.Fatal("malformed reminder state should be reported as missing")
	}

	lastCheck := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	state := model.NewReminderState([]model.PendingReminder{
		{TaskID: "task-1", DueMillis: lastCheck.Add(10 * time.Second).UnixMilli()},
	}, lastCheck)
	if err := SaveReminderState(ctx, store, state); err != nil {
		t.Fatalf("save state: %v", err)
	}
	got, ok := LoadReminderState(ctx, store)
	if !ok {
		t.Fatal("expected reminder state present")
	}
	if !got.LastCheck().Equal(lastCheck) {
		t.Fatalf("last check lost: %v", got.LastCheck())
	}
	if len(got.Pending) != 1 || got.Pending[0].TaskID != "task-1" {
		t.Fatalf("pending lost: %+v", got.Pending)
	}

	if err := ClearReminderState(ctx, store); err != nil {
		t.Fatalf("clear state: %v", err)
	}
	if _, ok := LoadReminderState(ctx, store); ok {
		t.Fatal("reminder state should be gone after clear")
	}
}
