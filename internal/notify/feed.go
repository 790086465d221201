package notify

import (
	"sync"
	"time"
)

const feedCapacity = 20

// FeedEntry is an in-surface notification rendered by the UI until it
// expires or the user dismisses it.
type FeedEntry struct {
	Title     string
	Body      string
	Urgent    bool
	At        time.Time
	ExpiresAt time.Time
}

// Feed is the in-surface notification area. Bounded: the oldest entry
// is evicted once capacity is reached.
type Feed struct {
	mu      sync.Mutex
	entries []FeedEntry
}

func NewFeed() *Feed {
	return &Feed{}
}

func (f *Feed) Push(entry FeedEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, entry)
	if len(f.entries) > feedCapacity {
		f.entries = f.entries[len(f.entries)-feedCapacity:]
	}
}

// Active returns entries that have not expired yet, pruning the rest.
func (f *Feed) Active(now time.Time) []FeedEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.ExpiresAt.After(now) {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	out := make([]FeedEntry, len(kept))
	copy(out, kept)
	return out
}

func (f *Feed) Dismiss(i int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i < 0 || i >= len(f.entries) {
		return
	}
	f.entries = append(f.entries[:i], f.entries[i+1:]...)
}
