package session

import (
	"sync"
	"time"
)

// TimerState enumerates the countdown states.
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerExpired
)

// Scheduler abstracts the tick source so the countdown can be driven by
// virtual time in tests. The returned cancel func must be safe to call after
// the callback has already fired.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) (cancel func())
}

type systemScheduler struct{}

func (systemScheduler) AfterFunc(d time.Duration, fn func()) func() {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// SystemScheduler returns a Scheduler backed by time.AfterFunc.
func SystemScheduler() Scheduler { return systemScheduler{} }

// Timer is the idle-logout countdown: a state machine over Idle, Running and
// Expired that decrements once per second. Invariant: at most one tick chain
// is live at a time — Reset and Stop cancel the pending tick under the same
// lock that installs the new state, and a generation counter turns any tick
// that raced the cancellation into a no-op.
type Timer struct {
	mu        sync.Mutex
	state     TimerState
	remaining int
	gen       uint64
	cancel    func()
	sched     Scheduler
	onTick    func(remaining int)
	onExpire  func()
}

// NewTimer builds an idle timer. onTick receives the remaining seconds after
// every transition (including the initial value on Start); onExpire fires
// exactly once per countdown that reaches zero. Either callback may be nil.
// Callbacks are invoked without the timer lock held.
func NewTimer(sched Scheduler, onTick func(remaining int), onExpire func()) *Timer {
	return &Timer{sched: sched, onTick: onTick, onExpire: onExpire}
}

// Start begins a fresh countdown from the given number of seconds. Starting
// over a running countdown behaves like Reset.
func (t *Timer) Start(seconds int) {
	t.mu.Lock()
	t.cancelPending()
	t.state = TimerRunning
	t.remaining = seconds
	t.schedule()
	onTick := t.onTick
	t.mu.Unlock()

	if onTick != nil {
		onTick(seconds)
	}
}

// Reset cancels the pending tick and restarts the countdown. Called on every
// qualifying user action to extend the session.
func (t *Timer) Reset(seconds int) {
	t.Start(seconds)
}

// Stop cancels the countdown without notification and returns to Idle.
func (t *Timer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cancelPending()
	t.state = TimerIdle
	t.remaining = 0
}

// State reports the current state and remaining seconds.
func (t *Timer) State() (TimerState, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state, t.remaining
}

// cancelPending must be called with t.mu held.
func (t *Timer) cancelPending() {
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.gen++
}

// schedule must be called with t.mu held.
func (t *Timer) schedule() {
	gen := t.gen
	t.cancel = t.sched.AfterFunc(time.Second, func() { t.tick(gen) })
}

func (t *Timer) tick(gen uint64) {
	t.mu.Lock()
	if gen != t.gen || t.state != TimerRunning {
		// A Reset or Stop won the race; this tick belongs to a dead chain.
		t.mu.Unlock()
		return
	}
	t.remaining--
	remaining := t.remaining
	expired := remaining <= 0
	if expired {
		t.state = TimerExpired
		t.cancel = nil
		t.gen++
	} else {
		t.schedule()
	}
	onTick, onExpire := t.onTick, t.onExpire
	t.mu.Unlock()

	if onTick != nil {
		onTick(remaining)
	}
	if expired && onExpire != nil {
		onExpire()
	}
}
