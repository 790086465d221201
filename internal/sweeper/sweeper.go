package sweeper

import (
	"sync"
	"time"
)

// DefaultInterval is the backstop poll period.
const DefaultInterval = 30 * time.Second

// Sweeper invokes a sweep function on a fixed period, foreground or
// background alike. It is the catch-all for triggers the timer path
// missed: throttled timers, long suspensions, clock jumps.
type Sweeper struct {
	mu       sync.Mutex
	interval time.Duration
	sweep    func(now time.Time)
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	stopped  bool
}

func New(interval time.Duration, sweep func(now time.Time)) *Sweeper {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Sweeper{
		interval: interval,
		sweep:    sweep,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started || s.sweep == nil {
		return
	}
	s.started = true
	go s.loop()
}

func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.started || s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	close(s.stopCh)
	s.mu.Unlock()
	<-s.doneCh
}

func (s *Sweeper) loop() {
	defer close(s.doneCh)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case tick := <-ticker.C:
			s.sweep(tick)
		case <-s.stopCh:
			return
		}
	}
}
