package notify

import (
	"time"

	"go.uber.org/zap"

	"github.com/sandeepkv93/tingtong/internal/model"
)

// Policy holds the tunable presentation timings and volumes. Urgent
// notices must outlive routine ones on both surfaces, and the
// background cue must not be louder than the foreground one.
type Policy struct {
	SystemUrgentClose  time.Duration
	SystemRoutineClose time.Duration
	FeedUrgentExpire   time.Duration
	FeedRoutineExpire  time.Duration
	ForegroundVolume   float64
	BackgroundVolume   float64
}

func DefaultPolicy() Policy {
	return Policy{
		SystemUrgentClose:  15 * time.Second,
		SystemRoutineClose: 8 * time.Second,
		FeedUrgentExpire:   12 * time.Second,
		FeedRoutineExpire:  6 * time.Second,
		ForegroundVolume:   0.7,
		BackgroundVolume:   0.5,
	}
}

type Notice struct {
	Title       string
	Body        string
	Urgent      bool
	Tone        model.Tone
	CustomSound string
}

// Presenter delivers a fired reminder: system-level notification when
// possible, in-surface feed entry whenever the system one was not
// shown or the user is looking at the app anyway, audible cue first.
// No path through Present can fail the caller.
type Presenter struct {
	system  SystemNotifier
	chime   ChimePlayer
	feed    *Feed
	visible func() bool
	now     func() time.Time
	policy  Policy
	log     *zap.Logger
}

func NewPresenter(system SystemNotifier, chime ChimePlayer, feed *Feed, visible func() bool, policy Policy, log *zap.Logger) *Presenter {
	if system == nil {
		system = NoopSystemNotifier{}
	}
	if chime == nil {
		chime = NoopChimePlayer{}
	}
	if feed == nil {
		feed = NewFeed()
	}
	if visible == nil {
		visible = func() bool { return true }
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Presenter{
		system:  system,
		chime:   chime,
		feed:    feed,
		visible: visible,
		now:     time.Now,
		policy:  policy,
		log:     log,
	}
}

func (p *Presenter) Feed() *Feed {
	return p.feed
}

// SetClock overrides the presenter's clock; used by tests.
func (p *Presenter) SetClock(now func() time.Time) {
	if now != nil {
		p.now = now
	}
}

// Present shows the notice. Returns whether the system-level
// notification was shown.
func (p *Presenter) Present(n Notice) bool {
	visible := p.visible()

	if n.Tone != model.ToneNone {
		volume := p.policy.ForegroundVolume
		if !visible {
			volume = p.policy.BackgroundVolume
		}
		if err := p.chime.Play(n.Tone, n.CustomSound, volume); err != nil {
			p.log.Debug("chime failed", zap.String("tone", string(n.Tone)), zap.Error(err))
		}
	}

	closeAfter := p.policy.SystemRoutineClose
	if n.Urgent {
		closeAfter = p.policy.SystemUrgentClose
	}
	shown := false
	if err := p.system.Notify(n.Title, n.Body, n.Urgent, closeAfter); err != nil {
		p.log.Debug("system notification not shown", zap.String("title", n.Title), zap.Error(err))
	} else {
		shown = true
	}

	// The system surface is often suppressed while the app is focused,
	// so a visible app always gets the in-surface copy too.
	if visible || !shown {
		expire := p.policy.FeedRoutineExpire
		if n.Urgent {
			expire = p.policy.FeedUrgentExpire
		}
		now := p.now()
		p.feed.Push(FeedEntry{
			Title:     n.Title,
			Body:      n.Body,
			Urgent:    n.Urgent,
			At:        now,
			ExpiresAt: now.Add(expire),
		})
	}

	return shown
}
