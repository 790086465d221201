package model

import (
	"errors"
	"testing"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Groceries":      "groceries",
		"Side Projects!": "sideprojects",
		"Q3 2026 Plan":   "q32026plan",
		"  ":             "",
	}
	for in, want := range cases {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCapitalize(t *testing.T) {
	if got := Capitalize("groceries"); got != "Groceries" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := Capitalize(""); got != "" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestCollectionValidate(t *testing.T) {
	c := Collection{Key: "work", Name: "Work", Emoji: "💼", Mode: ModeList}
	if err := c.Validate(); err != nil {
		t.Fatalf("expected valid collection, got: %v", err)
	}

	c.Mode = Mode("pile")
	err := c.Validate()
	if err == nil || !errors.Is(err, ErrInvalidMode) {
		t.Fatalf("expected ErrInvalidMode, got: %v", err)
	}
}

func TestSeedListsAndBoards(t *testing.T) {
	lists := map[string]Collection{
		"custom": {Name: "Custom"},
	}
	SeedLists(lists)
	if _, ok := lists["inbox"]; !ok {
		t.Fatal("inbox list should be seeded")
	}
	if lists["custom"].Emoji == "" {
		t.Fatal("missing emoji should be backfilled")
	}
	if lists["custom"].Key != "custom" {
		t.Fatalf("key should be set from map key, got %q", lists["custom"].Key)
	}

	boards := map[string]Collection{}
	SeedBoards(boards)
	main, ok := boards["main"]
	if !ok {
		t.Fatal("main board should be seeded")
	}
	if main.Mode != ModeBoard {
		t.Fatalf("seeded board mode = %q", main.Mode)
	}
}
