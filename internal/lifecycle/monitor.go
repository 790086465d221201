package lifecycle

import "sync"

type State string

const (
	StateForeground State = "foreground"
	StateBackground State = "background"
)

// Observer receives lifecycle transitions. Handlers run synchronously
// on the caller's goroutine and are expected to return without
// blocking.
type Observer interface {
	Foregrounded()
	Backgrounded()
	ShuttingDown()
}

// Monitor tracks whether the application surface is foregrounded and
// fans transitions out to observers. Repeated signals for the current
// state are swallowed; shutdown always fans out, regardless of state,
// as a safety net before teardown.
type Monitor struct {
	mu        sync.Mutex
	state     State
	observers []Observer
}

func NewMonitor() *Monitor {
	return &Monitor{state: StateForeground}
}

func (m *Monitor) Subscribe(o Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) Visible() bool {
	return m.State() == StateForeground
}

// OnVisibilityChange feeds a focus/visibility signal into the state
// machine.
func (m *Monitor) OnVisibilityChange(visible bool) {
	m.mu.Lock()
	next := StateBackground
	if visible {
		next = StateForeground
	}
	if m.state == next {
		m.mu.Unlock()
		return
	}
	m.state = next
	observers := append([]Observer(nil), m.observers...)
	m.mu.Unlock()

	for _, o := range observers {
		if visible {
			o.Foregrounded()
		} else {
			o.Backgrounded()
		}
	}
}

// Shutdown announces imminent teardown.
func (m *Monitor) Shutdown() {
	m.mu.Lock()
	observers := append([]Observer(nil), m.observers...)
	m.mu.Unlock()

	for _, o := range observers {
		o.ShuttingDown()
	}
}
