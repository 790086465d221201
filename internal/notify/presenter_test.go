package notify

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/tingtong/internal/model"
)

type fakeSystem struct {
	err        error
	calls      int
	lastUrgent bool
	lastClose  time.Duration
}

func (f *fakeSystem) Notify(_, _ string, urgent bool, closeAfter time.Duration) error {
	f.calls++
	f.lastUrgent = urgent
	f.lastClose = closeAfter
	return f.err
}

type fakeChime struct {
	calls      int
	lastTone   model.Tone
	lastVolume float64
}

func (f *fakeChime) Play(tone model.Tone, _ string, volume float64) error {
	f.calls++
	f.lastTone = tone
	f.lastVolume = volume
	return nil
}

func newTestPresenter(system SystemNotifier, chime ChimePlayer, visible bool) (*Presenter, time.Time) {
	now := time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC)
	p := NewPresenter(system, chime, NewFeed(), func() bool { return visible }, DefaultPolicy(), nil)
	p.SetClock(func() time.Time { return now })
	return p, now
}

func TestPresentSystemShownBackgroundSkipsFeed(t *testing.T) {
	system := &fakeSystem{}
	p, now := newTestPresenter(system, nil, false)

	shown := p.Present(Notice{Title: "Due Now: laundry"})
	if !shown {
		t.Fatal("expected system notification shown")
	}
	if got := len(p.Feed().Active(now)); got != 0 {
		t.Fatalf("backgrounded app with shown system notice should not hit the feed, got %d entries", got)
	}
}

func TestPresentFallsBackToFeedOnSystemFailure(t *testing.T) {
	system := &fakeSystem{err: errors.New("denied")}
	p, now := newTestPresenter(system, nil, false)

	if shown := p.Present(Notice{Title: "Due Now: laundry"}); shown {
		t.Fatal("failed system notification reported as shown")
	}
	if got := len(p.Feed().Active(now)); got != 1 {
		t.Fatalf("expected feed fallback entry, got %d", got)
	}
}

func TestPresentForegroundAlwaysFeedsInSurface(t *testing.T) {
	system := &fakeSystem{}
	p, now := newTestPresenter(system, nil, true)

	p.Present(Notice{Title: "Due Now: laundry"})
	if got := len(p.Feed().Active(now)); got != 1 {
		t.Fatalf("foregrounded app should always see the in-surface copy, got %d", got)
	}
}

func TestUrgencyTimingsOrdering(t *testing.T) {
	system := &fakeSystem{}
	p, now := newTestPresenter(system, nil, true)

	p.Present(Notice{Title: "routine"})
	routineClose := system.lastClose
	p.Present(Notice{Title: "urgent", Urgent: true})
	urgentClose := system.lastClose
	if urgentClose <= routineClose {
		t.Fatalf("urgent close %v must exceed routine close %v", urgentClose, routineClose)
	}

	entries := p.Feed().Active(now)
	if len(entries) != 2 {
		t.Fatalf("expected two feed entries, got %d", len(entries))
	}
	routineLife := entries[0].ExpiresAt.Sub(entries[0].At)
	urgentLife := entries[1].ExpiresAt.Sub(entries[1].At)
	if urgentLife <= routineLife {
		t.Fatalf("urgent feed life %v must exceed routine %v", urgentLife, routineLife)
	}
}

func TestChimeVolumeDropsInBackground(t *testing.T) {
	chime := &fakeChime{}
	p, _ := newTestPresenter(&fakeSystem{}, chime, true)
	p.Present(Notice{Title: "t", Tone: model.ToneBell})
	foreground := chime.lastVolume

	p, _ = newTestPresenter(&fakeSystem{}, chime, false)
	p.Present(Notice{Title: "t", Tone: model.ToneBell})
	background := chime.lastVolume

	if background > foreground {
		t.Fatalf("background volume %v louder than foreground %v", background, foreground)
	}
	if chime.calls != 2 || chime.lastTone != model.ToneBell {
		t.Fatalf("unexpected chime calls: %d tone %q", chime.calls, chime.lastTone)
	}
}

func TestNoChimeWithoutTone(t *testing.T) {
	chime := &fakeChime{}
	p, _ := newTestPresenter(&fakeSystem{}, chime, true)
	p.Present(Notice{Title: "silent"})
	if chime.calls != 0 {
		t.Fatalf("notice without tone played a chime %d times", chime.calls)
	}
}

func TestFeedExpiry(t *testing.T) {
	p, now := newTestPresenter(&fakeSystem{err: ErrUnsupported}, nil, false)
	p.Present(Notice{Title: "short lived"})

	if got := len(p.Feed().Active(now.Add(5 * time.Second))); got != 1 {
		t.Fatalf("entry expired too early, got %d", got)
	}
	if got := len(p.Feed().Active(now.Add(7 * time.Second))); got != 0 {
		t.Fatalf("routine entry should expire after 6s, got %d", got)
	}
}
