package scheduler

import (
	"container/heap"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sandeepkv93/tingtong/internal/model"
)

var (
	ErrInvalidDueTime = errors.New("scheduler: invalid due time")
	ErrStopped        = errors.New("scheduler: engine stopped")
)

// Fire is emitted when an armed reminder reaches its due time.
type Fire struct {
	TaskID string
	Due    time.Time
}

type queueItem struct {
	taskID string
	due    time.Time
	gen    uint64
}

type priorityQueue []queueItem

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool {
	return pq[i].due.Before(pq[j].due)
}

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *priorityQueue) Push(x any) {
	*pq = append(*pq, x.(queueItem))
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}

type armedEntry struct {
	due time.Time
	gen uint64
}

// Engine holds at most one armed one-shot trigger per task id. Arming
// an id that already has a trigger replaces it; stale heap entries are
// invalidated through generation tokens and skipped on pop.
type Engine struct {
	mu      sync.Mutex
	queue   priorityQueue
	armed   map[string]armedEntry
	nextGen uint64
	out     chan Fire
	wakeup  chan struct{}
	stopCh  chan struct{}
	doneCh  chan struct{}
	started bool
	stopped bool
	dropped uint64
}

func NewEngine(bufferSize int) *Engine {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &Engine{
		queue:  make(priorityQueue, 0),
		armed:  make(map[string]armedEntry),
		out:    make(chan Fire, bufferSize),
		wakeup: make(chan struct{}, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (e *Engine) C() <-chan Fire {
	return e.out
}

func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.started {
		return
	}
	e.started = true
	heap.Init(&e.queue)
	go e.loop()
}

func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.started || e.stopped {
		e.mu.Unlock()
		return
	}
	e.stopped = true
	close(e.stopCh)
	e.mu.Unlock()
	<-e.doneCh
}

// Arm schedules a one-shot trigger for the task id, replacing any
// trigger already armed for it.
func (e *Engine) Arm(taskID string, due time.Time) error {
	if due.IsZero() {
		return ErrInvalidDueTime
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return ErrStopped
	}

	e.nextGen++
	e.armed[taskID] = armedEntry{due: due, gen: e.nextGen}
	heap.Push(&e.queue, queueItem{taskID: taskID, due: due, gen: e.nextGen})
	e.signalWakeup()
	return nil
}

// Disarm cancels the pending trigger for the task id. Safe to call
// for an id with nothing armed.
func (e *Engine) Disarm(taskID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.armed, taskID)
	e.signalWakeup()
}

// DisarmAll drops every pending trigger.
func (e *Engine) DisarmAll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.armed = make(map[string]armedEntry)
	e.queue = e.queue[:0]
	e.signalWakeup()
}

// Armed reports whether the task id has a pending trigger.
func (e *Engine) Armed(taskID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.armed[taskID]
	return ok
}

// Pending returns the current armed set. Order is unspecified.
func (e *Engine) Pending() []model.PendingReminder {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.PendingReminder, 0, len(e.armed))
	for id, entry := range e.armed {
		out = append(out, model.PendingReminder{TaskID: id, DueMillis: entry.due.UnixMilli()})
	}
	return out
}

// Snapshot captures the armed set plus the capture instant as the
// recovery record persisted across backgrounding.
func (e *Engine) Snapshot(now time.Time) model.ReminderState {
	return model.NewReminderState(e.Pending(), now)
}

func (e *Engine) Dropped() uint64 {
	return atomic.LoadUint64(&e.dropped)
}

func (e *Engine) loop() {
	defer close(e.doneCh)
	defer close(e.out)

	var timer *time.Timer
	for {
		next, hasNext := e.peek()
		if !hasNext {
			select {
			case <-e.wakeup:
				continue
			case <-e.stopCh:
				return
			}
		}

		wait := time.Until(next.due)
		if wait < 0 {
			wait = 0
		}
		timer = resetTimer(timer, wait)

		select {
		case <-timer.C:
			for _, fire := range e.popDue(time.Now()) {
				select {
				case e.out <- fire:
				default:
					atomic.AddUint64(&e.dropped, 1)
				}
			}
		case <-e.wakeup:
			continue
		case <-e.stopCh:
			if timer != nil {
				stopTimer(timer)
			}
			return
		}
	}
}

func (e *Engine) signalWakeup() {
	select {
	case e.wakeup <- struct{}{}:
	default:
	}
}

// peek returns the next live heap entry, discarding stale ones.
func (e *Engine) peek() (queueItem, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for len(e.queue) > 0 {
		next := e.queue[0]
		if entry, ok := e.armed[next.taskID]; ok && entry.gen == next.gen {
			return next, true
		}
		heap.Pop(&e.queue)
	}
	return queueItem{}, false
}

func (e *Engine) popDue(now time.Time) []Fire {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]Fire, 0)
	for len(e.queue) > 0 {
		next := e.queue[0]
		entry, ok := e.armed[next.taskID]
		if !ok || entry.gen != next.gen {
			heap.Pop(&e.queue)
			continue
		}
		if next.due.After(now) {
			break
		}
		heap.Pop(&e.queue)
		delete(e.armed, next.taskID)
		out = append(out, Fire{TaskID: next.taskID, Due: next.due})
	}
	return out
}

func resetTimer(timer *time.Timer, d time.Duration) *time.Timer {
	if timer == nil {
		return time.NewTimer(d)
	}
	stopTimer(timer)
	timer.Reset(d)
	return timer
}

func stopTimer(timer *time.Timer) {
	if timer == nil {
		return
	}
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
}
